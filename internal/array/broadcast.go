package array

import "fmt"

// View interprets a flat row-major buffer as an array of the given shape.
type View struct {
	Data     any
	DataType DataType // inferred with DTypeOf; Generic for unrecognized buffers
	Shape    Shape
}

// NewView checks that data holds exactly shape.NumElements() elements.
func NewView(data any, shape Shape) (View, error) {
	if err := shape.Validate(); err != nil {
		return View{}, fmt.Errorf("view: %w", err)
	}
	if n := Len(data); n != shape.NumElements() {
		return View{}, fmt.Errorf("view: %w: shape %v requires %d elements, got %d",
			ErrShapeMismatch, shape, shape.NumElements(), n)
	}
	dt, _ := DTypeOf(data)
	return View{Data: data, DataType: dt, Shape: shape.Clone()}, nil
}

// Offset returns the flat index of the element at idx.
func (v View) Offset(idx ...int) (int, error) {
	if len(idx) != len(v.Shape) {
		return 0, fmt.Errorf("%w: expected %d indices, got %d", ErrRank, len(v.Shape), len(idx))
	}
	strides := v.Shape.ComputeStrides()
	off := 0
	for i, k := range idx {
		if k < 0 || k >= v.Shape[i] {
			return 0, fmt.Errorf("%w: index %d for dimension %d (size %d)", ErrIndexOutOfRange, k, i, v.Shape[i])
		}
		off += k * strides[i]
	}
	return off, nil
}

// Broadcast is a read-only broadcast of an array to a larger shape.
//
// Ref is the original input. Data views the same storage with the input shape
// left-padded by singleton dimensions. Shape is owned by the Broadcast and
// Strides holds one entry per dimension of Shape: 1 where the view advances
// through its data and 0 where a singleton dimension is stretched.
type Broadcast struct {
	Ref     any
	Data    View
	Shape   Shape
	Strides []int
}

// BroadcastArray broadcasts x, an array of shape inShape, to outShape.
//
// No element data is copied. It fails with a *DimensionError when outShape has
// fewer dimensions than inShape and with a *BroadcastError when an input
// dimension is neither 1 nor equal to the right-aligned output dimension.
func BroadcastArray(x any, inShape, outShape Shape) (*Broadcast, error) {
	outDim := len(outShape)
	inDim := len(inShape)
	offset := outDim - inDim
	if offset < 0 {
		return nil, &DimensionError{InShape: inShape.Clone(), OutShape: outShape.Clone()}
	}

	strides := make([]int, outDim)
	for i := outDim - 1; i >= 0; i-- {
		j := i - offset
		if j < 0 {
			// Prepended dimension
			strides[i] = 0
			continue
		}
		in, out := inShape[j], outShape[i]
		switch {
		case in == out:
			strides[i] = 1
		case in == 1:
			strides[i] = 0
		default:
			return nil, &BroadcastError{
				InShape:  inShape.Clone(),
				OutShape: outShape.Clone(),
				Dim:      i,
				InDim:    in,
				OutDim:   out,
			}
		}
	}

	dt, _ := DTypeOf(x)
	return &Broadcast{
		Ref:     x,
		Data:    View{Data: x, DataType: dt, Shape: inShape.PadLeft(outDim)},
		Shape:   outShape.Clone(),
		Strides: strides,
	}, nil
}

// ElementStrides returns strides into the flat backing buffer for each
// dimension of Shape. Stretched dimensions have stride 0.
func (b *Broadcast) ElementStrides() []int {
	rowMajor := b.Data.Shape.ComputeStrides()
	out := make([]int, len(b.Strides))
	for i, s := range b.Strides {
		out[i] = s * rowMajor[i]
	}
	return out
}

// Offset returns the flat index into Data for the element at idx of the
// broadcast shape.
func (b *Broadcast) Offset(idx ...int) (int, error) {
	if len(idx) != len(b.Shape) {
		return 0, fmt.Errorf("%w: expected %d indices, got %d", ErrRank, len(b.Shape), len(idx))
	}
	strides := b.ElementStrides()
	off := 0
	for i, k := range idx {
		if k < 0 || k >= b.Shape[i] {
			return 0, fmt.Errorf("%w: index %d for dimension %d (size %d)", ErrIndexOutOfRange, k, i, b.Shape[i])
		}
		off += k * strides[i]
	}
	return off, nil
}

// At reads the element at idx of the broadcast shape.
func (b *Broadcast) At(idx ...int) (any, error) {
	off, err := b.Offset(idx...)
	if err != nil {
		return nil, err
	}
	obj := Arraylike2Object(b.Ref)
	return obj.Getter(obj.Data, off), nil
}

// BroadcastShapes implements NumPy-style broadcasting rules for any number of shapes.
//
// Rules:
// 1. Compare shapes element-wise from right to left
// 2. Dimensions are compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. Missing dimensions are treated as 1
//
// Examples:
//
//	(3, 1) + (3, 5)    → (3, 5)
//	(5,) + (2, 1, 5)   → (2, 1, 5)
//	(0, 1) + (1, 4)    → (0, 4)
//	(3, 4) + (3, 5)    → Error
func BroadcastShapes(shapes ...Shape) (Shape, error) {
	maxLen := 0
	for _, s := range shapes {
		maxLen = max(maxLen, len(s))
	}
	result := make(Shape, maxLen)

	for i := 0; i < maxLen; i++ {
		dim := 1
		for _, s := range shapes {
			idx := len(s) - maxLen + i
			if idx < 0 {
				continue
			}
			d := s[idx]
			switch {
			case d == 1 || d == dim:
			case dim == 1:
				dim = d
			default:
				return nil, fmt.Errorf("%w: %v (dimension %d: %d vs %d)", ErrBroadcast, shapes, i, dim, d)
			}
		}
		result[i] = dim
	}

	return result, nil
}
