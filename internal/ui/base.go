package ui

// Base provides common UI component functionality for size management.
// Embed this in component models to get standard methods automatically.
//
// Example:
//
//	type Model struct {
//	    ui.Base
//	    queue *toast.Queue
//	}
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// ToastWidth returns the width a toast may use on this screen: the
// configured width, shrunk to fit inside the edge margins.
func (b Base) ToastWidth(configured int) int {
	w := min(configured, b.width-2*EdgeMarginX)
	return max(w, 0)
}
