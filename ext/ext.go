// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ext provides the public API for the custom element-wise add
// extension op.
//
// The extension exposes exactly two functions:
//   - Forward: element-wise sum of two tensors
//   - Backward: gradient passthrough, one independently owned copy per input
//
// For gradient tracking through a tape, wrap a backend with the autodiff
// package instead of calling these directly.
//
// Example:
//
//	backend := cpu.New()
//	a, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
//	b, _ := tensor.FromSlice([]float32{4, 5, 6}, tensor.Shape{3}, backend)
//
//	sum := ext.Forward(backend, a.Raw(), b.Raw())       // [5, 7, 9]
//	gradA, gradB := ext.Backward(sum)                    // two owned copies
package ext

import (
	"io"

	internalext "github.com/born-ml/addext/internal/ext"
	"github.com/born-ml/addext/tensor"
)

// Forward computes the element-wise sum of input1 and input2 as a newly
// allocated tensor. Inputs are never mutated. Shape, broadcasting and dtype
// rules are enforced by the backend.
func Forward(b tensor.Backend, input1, input2 *tensor.RawTensor) *tensor.RawTensor {
	return internalext.Forward(b, input1, input2)
}

// Backward produces the downstream gradients for both addends given the
// upstream gradient. Both returned tensors are numerically equal to
// gradOutput and each is an independently owned deep copy.
func Backward(gradOutput *tensor.RawTensor) (*tensor.RawTensor, *tensor.RawTensor) {
	return internalext.Backward(gradOutput)
}

// EnableTrace turns on per-call diagnostic output to the trace stream.
func EnableTrace() {
	internalext.EnableTrace()
}

// DisableTrace turns off per-call diagnostic output.
func DisableTrace() {
	internalext.DisableTrace()
}

// SetTraceWriter redirects diagnostic output to w. Passing nil restores the
// default stream (stdout).
func SetTraceWriter(w io.Writer) {
	internalext.SetTraceWriter(w)
}
