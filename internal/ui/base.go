package ui

// Base holds the focus and size shared by panel components.
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the component receives keys.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused reports whether the component receives keys.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the outer dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the outer width.
func (b Base) Width() int {
	return b.width
}

// Height returns the outer height.
func (b Base) Height() int {
	return b.height
}

// ListHeight returns the rows left for list content.
func (b Base) ListHeight() int {
	return max(b.height-PanelOverhead, 0)
}
