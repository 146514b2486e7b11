// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU backend for the add primitive.
package cpu

import (
	internalcpu "github.com/born-ml/addext/internal/backend/cpu"
	"github.com/born-ml/addext/tensor"
)

// Backend represents the CPU backend implementation.
//
// CPU backend provides a pure Go implementation of the add primitive with
// vectorized and inplace fast paths.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
func New() *Backend {
	return internalcpu.New()
}
