package ops

import (
	"fmt"

	"github.com/born-ml/addext/internal/tensor"
)

// reduceBroadcast reduces a gradient tensor to match the target shape.
// This is necessary when broadcasting was used in the forward pass.
//
// Example:
//
//	Forward: a[3,1] + b[3,4] -> c[3,4]  (a was broadcast along dim 1)
//	Backward: grad_c[3,4] -> grad_a[3,1] (sum along dim 1)
//
// The caller owns grad; when shapes already match it is returned unchanged.
func reduceBroadcast(grad *tensor.RawTensor, targetShape tensor.Shape, _ tensor.Backend) *tensor.RawTensor {
	gradShape := grad.Shape()

	if gradShape.Equal(targetShape) {
		return grad
	}

	// Handle scalar target (empty shape)
	if len(targetShape) == 0 {
		return sumAll(grad)
	}

	// NumPy broadcasting aligns shapes from the right. Sum away the leading
	// dimensions the target does not have, then drop them (sumAlongDimension
	// keeps each summed dim at size 1) so both shapes share the target's rank
	// before the size-1 reduction below.
	result := grad
	if dimsToSum := len(gradShape) - len(targetShape); dimsToSum > 0 {
		for i := 0; i < dimsToSum; i++ {
			result = sumAlongDimension(result, 0)
		}
		result = reshapeTo(result, result.Shape()[dimsToSum:])
	}

	// Sum along dimensions where the target is 1
	for i := 0; i < len(targetShape); i++ {
		if targetShape[i] == 1 && result.Shape()[i] > 1 {
			result = sumAlongDimension(result, i)
		}
	}

	// Reshape if necessary to match target shape exactly
	if !result.Shape().Equal(targetShape) {
		result = reshapeTo(result, targetShape)
	}

	return result
}

// reshapeTo copies a tensor into a new one with the target shape.
// Element counts must match.
func reshapeTo(t *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	if t.NumElements() != shape.NumElements() {
		panic(fmt.Sprintf("reshapeTo: incompatible shapes: %v -> %v", t.Shape(), shape))
	}

	result, err := tensor.NewRaw(shape, t.DType(), t.Device())
	if err != nil {
		panic(fmt.Sprintf("reshapeTo: %v", err))
	}
	copy(result.Data(), t.Data())
	return result
}

// sumAll sums all elements of a tensor to a scalar.
func sumAll(t *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{}, t.DType(), t.Device())
	if err != nil {
		panic(fmt.Sprintf("sumAll: failed to create result: %v", err))
	}

	switch t.DType() {
	case tensor.Float32:
		data := t.AsFloat32()
		var sum float32
		for _, v := range data {
			sum += v
		}
		result.AsFloat32()[0] = sum

	case tensor.Float64:
		data := t.AsFloat64()
		var sum float64
		for _, v := range data {
			sum += v
		}
		result.AsFloat64()[0] = sum

	default:
		panic(fmt.Sprintf("sumAll: unsupported dtype %s", t.DType()))
	}

	return result
}

// sumAlongDimension sums a tensor along the specified dimension.
// The dimension is kept with size 1.
func sumAlongDimension(t *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := t.Shape()
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("sumAlongDimension: invalid dimension %d for shape %v", dim, shape))
	}

	outShape := shape.Clone()
	outShape[dim] = 1

	result, err := tensor.NewRaw(outShape, t.DType(), t.Device())
	if err != nil {
		panic(fmt.Sprintf("sumAlongDimension: failed to create result: %v", err))
	}

	switch t.DType() {
	case tensor.Float32:
		sumFloat32AlongDimension(t.AsFloat32(), result.AsFloat32(), shape, dim)
	case tensor.Float64:
		sumFloat64AlongDimension(t.AsFloat64(), result.AsFloat64(), shape, dim)
	default:
		panic(fmt.Sprintf("sumAlongDimension: unsupported dtype %s", t.DType()))
	}

	return result
}

// sumFloat32AlongDimension sums float32 data along a dimension.
func sumFloat32AlongDimension(data, result []float32, shape tensor.Shape, dim int) {
	strides := shape.ComputeStrides()
	outShape := shape.Clone()
	outShape[dim] = 1
	outStrides := outShape.ComputeStrides()

	numElements := shape.NumElements()
	for i := 0; i < numElements; i++ {
		// Map the flat source index to the reduced tensor's flat index by
		// zeroing the coordinate along dim.
		reducedIdx := 0
		temp := i
		for d := 0; d < len(shape); d++ {
			coord := temp / strides[d]
			temp %= strides[d]
			if d != dim {
				reducedIdx += coord * outStrides[d]
			}
		}
		result[reducedIdx] += data[i]
	}
}

// sumFloat64AlongDimension sums float64 data along a dimension.
func sumFloat64AlongDimension(data, result []float64, shape tensor.Shape, dim int) {
	strides := shape.ComputeStrides()
	outShape := shape.Clone()
	outShape[dim] = 1
	outStrides := outShape.ComputeStrides()

	numElements := shape.NumElements()
	for i := 0; i < numElements; i++ {
		reducedIdx := 0
		temp := i
		for d := 0; d < len(shape); d++ {
			coord := temp / strides[d]
			temp %= strides[d]
			if d != dim {
				reducedIdx += coord * outStrides[d]
			}
		}
		result[reducedIdx] += data[i]
	}
}
