// Copyright ©2024 The GUDA Authors. All rights reserved.
// Copyright ©2024 The bgrt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bgrt implements Binary Guided Random Testing, a search over the
// input domain of a user-supplied floating-point kernel for inputs that
// maximize its numerical error.
//
// A caller describes a rectangular input domain as a Configuration, a
// map from variable identifier to an Interval Variable, and supplies a
// Kernel that evaluates the domain in both a low-precision type and a
// wider shadow type carried alongside it. The search repeatedly bisects
// and recombines the domain, guided by the largest error observed so
// far, with random restarts to escape local maxima.
//
// The package traces its worker-pool and error-handling idioms back to
// an earlier life as a CUDA-compatible CPU execution engine; that
// heritage survives in the channel-based WorkerPool and the structured
// SearchError type.
package bgrt
