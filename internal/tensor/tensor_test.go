package tensor

import "testing"

func TestFromSlice(t *testing.T) {
	backend := NewMockBackend()

	x, err := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, backend)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	if !x.Shape().Equal(Shape{2, 3}) {
		t.Errorf("shape = %v, want [2 3]", x.Shape())
	}
	if x.At(1, 2) != 6 {
		t.Errorf("At(1, 2) = %f, want 6", x.At(1, 2))
	}
}

func TestFromSliceLengthMismatch(t *testing.T) {
	backend := NewMockBackend()

	if _, err := FromSlice([]float32{1, 2, 3}, Shape{2, 3}, backend); err == nil {
		t.Error("expected error for length/shape mismatch")
	}
}

func TestZerosOnesFull(t *testing.T) {
	backend := NewMockBackend()

	z := Zeros[float32](Shape{2, 2}, backend)
	for _, v := range z.Data() {
		if v != 0 {
			t.Fatalf("Zeros produced %v", z.Data())
		}
	}

	o := Ones[float64](Shape{3}, backend)
	for _, v := range o.Data() {
		if v != 1 {
			t.Fatalf("Ones produced %v", o.Data())
		}
	}

	f := Full[int64](Shape{2}, 42, backend)
	for _, v := range f.Data() {
		if v != 42 {
			t.Fatalf("Full produced %v", f.Data())
		}
	}
}

func TestTensorAdd(t *testing.T) {
	backend := NewMockBackend()

	x, _ := FromSlice([]float32{1, 2, 3}, Shape{3}, backend)
	y, _ := FromSlice([]float32{4, 5, 6}, Shape{3}, backend)

	z := x.Add(y)

	want := []float32{5, 7, 9}
	for i, v := range z.Data() {
		if v != want[i] {
			t.Fatalf("Add = %v, want %v", z.Data(), want)
		}
	}
}

func TestTensorSetAndAt(t *testing.T) {
	backend := NewMockBackend()

	x := Zeros[float32](Shape{2, 2}, backend)
	x.Set(3.5, 1, 0)

	if x.At(1, 0) != 3.5 {
		t.Errorf("At(1, 0) = %f, want 3.5", x.At(1, 0))
	}
}
