// Package autodiff implements automatic differentiation for the custom add
// op using the decorator pattern.
//
// AutodiffBackend wraps any Backend implementation (CPU, GPU) and adds
// gradient tracking through a GradientTape. The forward pass delegates to the
// low-level extension (ext.Forward); the backward pass replays recorded
// AddOps in reverse, applying the extension's gradient rule (ext.Backward).
//
// Usage:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//
//	x, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
//	y, _ := tensor.FromSlice([]float32{4, 5, 6}, tensor.Shape{3}, backend)
//	z := x.Add(y)
//
//	grads := autodiff.Backward(z, backend)
package autodiff

import (
	"github.com/born-ml/addext/internal/autodiff/ops"
	"github.com/born-ml/addext/internal/ext"
	"github.com/born-ml/addext/internal/tensor"
)

// AutodiffBackend wraps a Backend and adds automatic differentiation.
// It implements the tensor.Backend interface and records operations in a GradientTape.
//
// Type parameter B must satisfy the tensor.Backend interface.
type AutodiffBackend[B tensor.Backend] struct {
	inner B             // Wrapped backend (CPU, GPU)
	tape  *GradientTape // Records operations for backpropagation
}

// New creates a new AutodiffBackend wrapping the given backend.
func New[B tensor.Backend](backend B) *AutodiffBackend[B] {
	return &AutodiffBackend[B]{
		inner: backend,
		tape:  NewGradientTape(),
	}
}

// Tape returns the gradient tape for manual control.
// Useful for:
//   - Starting/stopping recording
//   - Clearing tape between iterations
//   - Inspecting recorded operations
func (b *AutodiffBackend[B]) Tape() *GradientTape {
	return b.tape
}

// Inner returns the wrapped backend for direct access.
func (b *AutodiffBackend[B]) Inner() B {
	return b.inner
}

// Name returns the backend name.
func (b *AutodiffBackend[B]) Name() string {
	return "Autodiff(" + b.inner.Name() + ")"
}

// Device returns the compute device.
func (b *AutodiffBackend[B]) Device() tensor.Device {
	return b.inner.Device()
}

// Add performs element-wise addition through the extension op and records
// the operation.
//
// ext.Forward already suppresses the wrapped backend's inplace fast path, so
// the recorded input tensors keep their original values for the backward pass.
func (b *AutodiffBackend[B]) Add(a, c *tensor.RawTensor) *tensor.RawTensor {
	result := ext.Forward(b.inner, a, c)

	if b.tape.IsRecording() {
		op := ops.NewAddOp(a, c, result)
		b.tape.Record(op)
	}

	return result
}
