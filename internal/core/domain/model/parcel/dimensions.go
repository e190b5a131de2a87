package parcel

import (
	"errors"
	"fmt"

	"parcelchain/internal/pkg/guard"
)

// ErrInvalidDimensions is returned when any dimension is zero.
var ErrInvalidDimensions = errors.New("invalid dimensions")

// ErrDimensionsAreNotConstructed indicates a zero-value Dimensions.
var ErrDimensionsAreNotConstructed = errors.New("Dimensions must be created via NewDimensions constructor")

// Dimensions is a value object holding a parcel's length, width and height
// in centimeters. All three must be positive.
type Dimensions struct {
	length uint32
	width  uint32
	height uint32

	guard guard.ConstructorGuard
}

// NewDimensions creates Dimensions, rejecting any zero side.
func NewDimensions(length, width, height uint32) (Dimensions, error) {
	if length == 0 || width == 0 || height == 0 {
		return Dimensions{}, fmt.Errorf("%w: %dx%dx%d", ErrInvalidDimensions, length, width, height)
	}

	return Dimensions{
		length: length,
		width:  width,
		height: height,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Length returns the length in centimeters.
func (d Dimensions) Length() uint32 {
	return d.length
}

// Width returns the width in centimeters.
func (d Dimensions) Width() uint32 {
	return d.width
}

// Height returns the height in centimeters.
func (d Dimensions) Height() uint32 {
	return d.height
}

// String renders the dimensions as "LxWxH".
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%dx%d", d.length, d.width, d.height)
}

// Validate returns an error for a zero-value Dimensions.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}
