package ops

import (
	"testing"

	"github.com/born-ml/addext/internal/backend/cpu"
	"github.com/born-ml/addext/internal/tensor"
)

func rawFloat32(t *testing.T, data []float32, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()

	raw, err := tensor.NewRaw(shape, tensor.Float32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	copy(raw.AsFloat32(), data)
	return raw
}

func float32Equal(a, b []float32, epsilon float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		diff := a[i] - b[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > epsilon {
			return false
		}
	}
	return true
}

func TestAddOpBackwardSameShape(t *testing.T) {
	backend := cpu.New()

	a := rawFloat32(t, []float32{1, 2, 3}, tensor.Shape{3})
	b := rawFloat32(t, []float32{4, 5, 6}, tensor.Shape{3})
	output := backend.Add(a.Clone(), b)

	op := NewAddOp(a, b, output)

	outputGrad := rawFloat32(t, []float32{1, 1, 1}, tensor.Shape{3})
	grads := op.Backward(outputGrad, backend)

	if len(grads) != 2 {
		t.Fatalf("expected 2 gradients, got %d", len(grads))
	}
	if !float32Equal(grads[0].AsFloat32(), []float32{1, 1, 1}, 1e-6) {
		t.Errorf("grad_a = %v, want [1 1 1]", grads[0].AsFloat32())
	}
	if !float32Equal(grads[1].AsFloat32(), []float32{1, 1, 1}, 1e-6) {
		t.Errorf("grad_b = %v, want [1 1 1]", grads[1].AsFloat32())
	}
}

func TestAddOpBackwardGradsIndependent(t *testing.T) {
	backend := cpu.New()

	a := rawFloat32(t, []float32{1, 2}, tensor.Shape{2})
	b := rawFloat32(t, []float32{3, 4}, tensor.Shape{2})
	output := backend.Add(a.Clone(), b)

	op := NewAddOp(a, b, output)

	outputGrad := rawFloat32(t, []float32{1, 1}, tensor.Shape{2})
	grads := op.Backward(outputGrad, backend)

	grads[0].AsFloat32()[0] = 50
	if grads[1].AsFloat32()[0] != 1 {
		t.Error("gradients must not share storage")
	}
	if outputGrad.AsFloat32()[0] != 1 {
		t.Error("upstream gradient must not be mutated")
	}
}

func TestAddOpBackwardBroadcastScalarLike(t *testing.T) {
	backend := cpu.New()

	// a[3] + b[1] -> output[3]; grad_b sums over the broadcast dim.
	a := rawFloat32(t, []float32{1, 2, 3}, tensor.Shape{3})
	b := rawFloat32(t, []float32{10}, tensor.Shape{1})
	output := backend.Add(a.Clone(), b)

	op := NewAddOp(a, b, output)

	outputGrad := rawFloat32(t, []float32{1, 2, 3}, tensor.Shape{3})
	grads := op.Backward(outputGrad, backend)

	if !grads[0].Shape().Equal(tensor.Shape{3}) {
		t.Errorf("grad_a shape = %v, want [3]", grads[0].Shape())
	}
	if !grads[1].Shape().Equal(tensor.Shape{1}) {
		t.Errorf("grad_b shape = %v, want [1]", grads[1].Shape())
	}
	if !float32Equal(grads[1].AsFloat32(), []float32{6}, 1e-6) {
		t.Errorf("grad_b = %v, want [6]", grads[1].AsFloat32())
	}
}

func TestAddOpBackwardBroadcast2D(t *testing.T) {
	backend := cpu.New()

	// a[3,1] + b[3,4] -> output[3,4]; grad_a sums along dim 1.
	a := rawFloat32(t, []float32{1, 2, 3}, tensor.Shape{3, 1})
	b := rawFloat32(t, []float32{
		1, 1, 1, 1,
		1, 1, 1, 1,
		1, 1, 1, 1,
	}, tensor.Shape{3, 4})
	output := backend.Add(a, b.Clone())

	op := NewAddOp(a, b, output)

	outputGrad := rawFloat32(t, []float32{
		1, 2, 3, 4,
		1, 1, 1, 1,
		2, 2, 2, 2,
	}, tensor.Shape{3, 4})
	grads := op.Backward(outputGrad, backend)

	if !grads[0].Shape().Equal(tensor.Shape{3, 1}) {
		t.Fatalf("grad_a shape = %v, want [3 1]", grads[0].Shape())
	}
	if !float32Equal(grads[0].AsFloat32(), []float32{10, 4, 8}, 1e-6) {
		t.Errorf("grad_a = %v, want [10 4 8]", grads[0].AsFloat32())
	}
	if !float32Equal(grads[1].AsFloat32(), outputGrad.AsFloat32(), 1e-6) {
		t.Errorf("grad_b = %v, want outputGrad unchanged", grads[1].AsFloat32())
	}
}

func TestAddOpBackwardBroadcastRankExpanding(t *testing.T) {
	backend := cpu.New()

	// a[3,1] + b[2,3,4] -> output[2,3,4]; grad_a sums the new leading dim
	// and the size-1 dim, grad_b passes through.
	a := rawFloat32(t, []float32{1, 2, 3}, tensor.Shape{3, 1})
	b := rawFloat32(t, make([]float32, 24), tensor.Shape{2, 3, 4})
	output := backend.Add(a, b.Clone())

	op := NewAddOp(a, b, output)

	outputGrad := rawFloat32(t, []float32{
		1, 1, 1, 1,
		1, 1, 1, 1,
		1, 1, 1, 1,

		1, 1, 1, 1,
		1, 1, 1, 1,
		1, 1, 1, 1,
	}, tensor.Shape{2, 3, 4})
	grads := op.Backward(outputGrad, backend)

	if !grads[0].Shape().Equal(tensor.Shape{3, 1}) {
		t.Fatalf("grad_a shape = %v, want [3 1]", grads[0].Shape())
	}
	if !float32Equal(grads[0].AsFloat32(), []float32{8, 8, 8}, 1e-6) {
		t.Errorf("grad_a = %v, want [8 8 8]", grads[0].AsFloat32())
	}
	if !grads[1].Shape().Equal(tensor.Shape{2, 3, 4}) {
		t.Fatalf("grad_b shape = %v, want [2 3 4]", grads[1].Shape())
	}
}

func TestAddOpBackwardRankExpandingUnevenGrad(t *testing.T) {
	backend := cpu.New()

	// a[2] + b[3,2] -> output[3,2]; grad_a sums the leading dim only.
	a := rawFloat32(t, []float32{1, 2}, tensor.Shape{2})
	b := rawFloat32(t, make([]float32, 6), tensor.Shape{3, 2})
	output := backend.Add(a, b.Clone())

	op := NewAddOp(a, b, output)

	outputGrad := rawFloat32(t, []float32{
		1, 2,
		3, 4,
		5, 6,
	}, tensor.Shape{3, 2})
	grads := op.Backward(outputGrad, backend)

	if !grads[0].Shape().Equal(tensor.Shape{2}) {
		t.Fatalf("grad_a shape = %v, want [2]", grads[0].Shape())
	}
	if !float32Equal(grads[0].AsFloat32(), []float32{9, 12}, 1e-6) {
		t.Errorf("grad_a = %v, want [9 12]", grads[0].AsFloat32())
	}
}

func TestAddOpInputsAndOutput(t *testing.T) {
	a := rawFloat32(t, []float32{1}, tensor.Shape{1})
	b := rawFloat32(t, []float32{2}, tensor.Shape{1})
	out := rawFloat32(t, []float32{3}, tensor.Shape{1})

	op := NewAddOp(a, b, out)

	inputs := op.Inputs()
	if len(inputs) != 2 || inputs[0] != a || inputs[1] != b {
		t.Error("Inputs() should return [a, b]")
	}
	if op.Output() != out {
		t.Error("Output() should return the forward result")
	}
}
