//go:build windows

package webgpu

import (
	"github.com/born-ml/addext/internal/tensor"
)

// Add performs element-wise addition on GPU.
func (b *Backend) Add(a, other *tensor.RawTensor) *tensor.RawTensor {
	result, err := b.runAdd(a, other)
	if err != nil {
		panic("webgpu: Add: " + err.Error())
	}
	return result
}
