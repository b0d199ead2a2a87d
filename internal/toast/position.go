package toast

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPosition = errors.New("unknown toast position")
	ErrUnknownVariant  = errors.New("unknown toast variant")
)

// Position is the screen anchor a toast is placed at.
// It only matters to renderers; the queue never looks at it.
type Position string

const (
	TopLeft      Position = "top-left"
	TopCenter    Position = "top-center"
	TopRight     Position = "top-right"
	MiddleLeft   Position = "middle-left"
	MiddleRight  Position = "middle-right"
	BottomLeft   Position = "bottom-left"
	BottomCenter Position = "bottom-center"
	BottomRight  Position = "bottom-right"
)

// DefaultPosition is used when neither the toast nor the queue names one.
const DefaultPosition = BottomRight

var positions = []Position{
	TopLeft, TopCenter, TopRight,
	MiddleLeft, MiddleRight,
	BottomLeft, BottomCenter, BottomRight,
}

// Positions returns every recognized position.
func Positions() []Position {
	out := make([]Position, len(positions))
	copy(out, positions)
	return out
}

// Valid reports whether p is one of the recognized positions.
func (p Position) Valid() bool {
	for _, known := range positions {
		if p == known {
			return true
		}
	}
	return false
}

// IsTop reports whether toasts at p stack downward from the top edge.
func (p Position) IsTop() bool {
	return p == TopLeft || p == TopCenter || p == TopRight
}

// IsBottom reports whether toasts at p stack upward from the bottom edge.
func (p Position) IsBottom() bool {
	return p == BottomLeft || p == BottomCenter || p == BottomRight
}

// IsLeft reports whether p hugs the left edge.
func (p Position) IsLeft() bool {
	return p == TopLeft || p == MiddleLeft || p == BottomLeft
}

// IsRight reports whether p hugs the right edge.
func (p Position) IsRight() bool {
	return p == TopRight || p == MiddleRight || p == BottomRight
}

// ParsePosition converts a config or CLI string to a Position.
func ParsePosition(s string) (Position, error) {
	p := Position(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPosition, s)
	}
	return p, nil
}

// Variant selects the visual treatment of a toast.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
	VariantClear       Variant = "clear"
)

// Valid reports whether v is a recognized variant.
func (v Variant) Valid() bool {
	switch v {
	case VariantDefault, VariantDestructive, VariantClear:
		return true
	}
	return false
}

// ParseVariant converts a config or CLI string to a Variant.
func ParseVariant(s string) (Variant, error) {
	v := Variant(s)
	if !v.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
	return v, nil
}
