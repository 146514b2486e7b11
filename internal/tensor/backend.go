package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// The extension op binds exactly one compute primitive, element-wise
// addition; the same primitive also serves gradient accumulation during
// the backward pass.
//
// Implementations:
//   - CPU: Pure Go with vectorized and inplace fast paths
//   - WebGPU: GPU compute via WGSL shaders
type Backend interface {
	// Add performs element-wise addition with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
