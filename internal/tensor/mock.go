package tensor

import "fmt"

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing.
// It implements the add primitive naively for correctness verification.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Add performs element-wise addition.
// Only same-shape float32/float64 tensors are supported; that is all the
// in-package tests need.
func (m *MockBackend) Add(a, b *RawTensor) *RawTensor {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("mock add: shape mismatch: %v vs %v", a.Shape(), b.Shape()))
	}

	result, err := NewRaw(a.Shape(), a.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	switch a.DType() {
	case Float32:
		av, bv, rv := a.AsFloat32(), b.AsFloat32(), result.AsFloat32()
		for i := range av {
			rv[i] = av[i] + bv[i]
		}
	case Float64:
		av, bv, rv := a.AsFloat64(), b.AsFloat64(), result.AsFloat64()
		for i := range av {
			rv[i] = av[i] + bv[i]
		}
	default:
		panic(fmt.Sprintf("mock add: unsupported dtype %s", a.DType()))
	}

	return result
}
