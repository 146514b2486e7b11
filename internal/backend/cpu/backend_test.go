package cpu

import (
	"testing"

	"github.com/born-ml/addext/internal/tensor"
)

// Helper to check float32 slices are equal within epsilon.
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

func TestAddSameShape(t *testing.T) {
	backend := New()

	a, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	b, _ := tensor.FromSlice([]float32{4, 5, 6}, tensor.Shape{3}, backend)

	// Guard inputs so the inplace fast path is not taken.
	defer a.Raw().ForceNonUnique()()
	defer b.Raw().ForceNonUnique()()

	result := backend.Add(a.Raw(), b.Raw())

	want := []float32{5, 7, 9}
	if !float32Equal(result.AsFloat32(), want, 1e-6) {
		t.Errorf("Add = %v, want %v", result.AsFloat32(), want)
	}
	if !float32Equal(a.Raw().AsFloat32(), []float32{1, 2, 3}, 0) {
		t.Errorf("input a mutated: %v", a.Raw().AsFloat32())
	}
}

func TestAddFloat64(t *testing.T) {
	backend := New()

	a, _ := tensor.FromSlice([]float64{1.5, 2.5}, tensor.Shape{2}, backend)
	b, _ := tensor.FromSlice([]float64{0.5, 0.5}, tensor.Shape{2}, backend)
	defer a.Raw().ForceNonUnique()()
	defer b.Raw().ForceNonUnique()()

	result := backend.Add(a.Raw(), b.Raw())

	got := result.AsFloat64()
	if got[0] != 2.0 || got[1] != 3.0 {
		t.Errorf("Add = %v, want [2 3]", got)
	}
}

func TestAddIntDtypes(t *testing.T) {
	backend := New()

	a32, _ := tensor.FromSlice([]int32{1, -2}, tensor.Shape{2}, backend)
	b32, _ := tensor.FromSlice([]int32{10, 20}, tensor.Shape{2}, backend)
	defer a32.Raw().ForceNonUnique()()
	defer b32.Raw().ForceNonUnique()()

	r32 := backend.Add(a32.Raw(), b32.Raw())
	if got := r32.AsInt32(); got[0] != 11 || got[1] != 18 {
		t.Errorf("int32 Add = %v, want [11 18]", got)
	}

	a64, _ := tensor.FromSlice([]int64{1 << 40, 2}, tensor.Shape{2}, backend)
	b64, _ := tensor.FromSlice([]int64{1, 3}, tensor.Shape{2}, backend)
	defer a64.Raw().ForceNonUnique()()
	defer b64.Raw().ForceNonUnique()()

	r64 := backend.Add(a64.Raw(), b64.Raw())
	if got := r64.AsInt64(); got[0] != (1<<40)+1 || got[1] != 5 {
		t.Errorf("int64 Add = %v", got)
	}
}

func TestAddInplaceWhenUnique(t *testing.T) {
	backend := New()

	a, _ := tensor.NewRaw(tensor.Shape{3}, tensor.Float32, tensor.CPU)
	copy(a.AsFloat32(), []float32{1, 2, 3})
	b, _ := tensor.NewRaw(tensor.Shape{3}, tensor.Float32, tensor.CPU)
	copy(b.AsFloat32(), []float32{4, 5, 6})

	// a is unique, so the backend may reuse its buffer.
	result := backend.Add(a, b)

	if result != a {
		t.Error("expected inplace fast path to return the first operand")
	}
	if !float32Equal(result.AsFloat32(), []float32{5, 7, 9}, 1e-6) {
		t.Errorf("inplace Add = %v, want [5 7 9]", result.AsFloat32())
	}
}

func TestAddBroadcastScalarLike(t *testing.T) {
	backend := New()

	a, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	b, _ := tensor.FromSlice([]float32{10}, tensor.Shape{1}, backend)

	result := backend.Add(a.Raw(), b.Raw())

	want := []float32{11, 12, 13}
	if !float32Equal(result.AsFloat32(), want, 1e-6) {
		t.Errorf("broadcast Add = %v, want %v", result.AsFloat32(), want)
	}
}

func TestAddBroadcast2D(t *testing.T) {
	backend := New()

	// a[3,1] + b[3,4] -> [3,4]
	a, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3, 1}, backend)
	b, _ := tensor.FromSlice([]float32{
		10, 20, 30, 40,
		10, 20, 30, 40,
		10, 20, 30, 40,
	}, tensor.Shape{3, 4}, backend)

	result := backend.Add(a.Raw(), b.Raw())

	want := []float32{
		11, 21, 31, 41,
		12, 22, 32, 42,
		13, 23, 33, 43,
	}
	if !result.Shape().Equal(tensor.Shape{3, 4}) {
		t.Fatalf("broadcast Add shape = %v, want [3 4]", result.Shape())
	}
	if !float32Equal(result.AsFloat32(), want, 1e-6) {
		t.Errorf("broadcast Add = %v, want %v", result.AsFloat32(), want)
	}
}

func TestAddShapeMismatchPanics(t *testing.T) {
	backend := New()

	a, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	b, _ := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, backend)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for incompatible shapes")
		}
	}()
	backend.Add(a.Raw(), b.Raw())
}

func TestAddDTypeMismatchPanics(t *testing.T) {
	backend := New()

	a, _ := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, backend)
	b, _ := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2}, backend)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for dtype mismatch")
		}
	}()
	backend.Add(a.Raw(), b.Raw())
}
