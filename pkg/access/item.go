package access

import "go.uber.org/atomic"

// Item represents a single navigable entry in a Menu.
//
// Text is re-evaluated on every read and never cached, because the game data
// behind it may have changed since the last announcement. Visible is nil for
// always-visible items; VisibleWhen, when set, takes precedence and can be
// toggled from another item's action. Items are owned exclusively by the
// Menu that contains them.
type Item struct {
	Text        func() string // Spoken text, re-evaluated every read
	OnConfirm   func()        // Fired when the item is confirmed
	OnRead      func()        // Optional side effect fired before Text (e.g. lazy refresh)
	OnAdjust    func(dir int) // Optional slider-style adjust, dir is -1 or +1
	Visible     func() bool   // nil = always visible
	VisibleWhen *atomic.Bool  // if set, takes precedence over Visible
}

// NewItem creates an always-visible item with fixed text.
func NewItem(text string, onConfirm func()) *Item {
	return &Item{
		Text:      func() string { return text },
		OnConfirm: onConfirm,
	}
}

// IsVisible returns whether the item should currently be offered.
// If VisibleWhen is set, it takes precedence. A panicking Visible predicate
// counts as not visible.
func (it *Item) IsVisible() bool {
	if it.VisibleWhen != nil {
		return it.VisibleWhen.Load()
	}
	if it.Visible == nil {
		return true
	}
	return guardBool("item_visible", false, it.Visible)
}
