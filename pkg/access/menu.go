package access

import (
	"fmt"

	"github.com/oasis1701/bazaar-access-sub001/pkg/access/constants"
	"github.com/oasis1701/bazaar-access-sub001/pkg/access/speech"
)

// Menu is an ordered list of Items with a cursor, navigated by logical keys.
//
// The cursor indexes the full item sequence. Navigation, paging and position
// announcements all operate on the visible subsequence, which is recomputed
// on every operation because visibility predicates may depend on game state
// that changed since the last key press. The cursor clamps at list ends;
// it never wraps.
type Menu struct {
	speaker speech.Speaker
	title   string
	items   []*Item
	current int
	onBack  func()
}

// NewMenu creates an empty menu. A nil speaker silences announcements.
func NewMenu(title string, sp speech.Speaker) *Menu {
	if sp == nil {
		sp = speech.Null{}
	}
	return &Menu{speaker: sp, title: title}
}

// Title returns the menu title, announced by surfaces that host this menu.
func (m *Menu) Title() string { return m.title }

// SetOnBack sets the callback fired on the Back key. This is the menu's own
// back action, distinct from any item.
func (m *Menu) SetOnBack(fn func()) { m.onBack = fn }

// AddOption appends an item. Order defines both display order and the
// default cursor position. Nil items are ignored.
func (m *Menu) AddOption(it *Item) {
	if it == nil {
		return
	}
	m.items = append(m.items, it)
}

// AddOptions appends items in order.
func (m *Menu) AddOptions(items ...*Item) {
	for _, it := range items {
		m.AddOption(it)
	}
}

// Len returns the number of items, visible or not.
func (m *Menu) Len() int { return len(m.items) }

// CurrentIndex returns the cursor position in the full sequence.
func (m *Menu) CurrentIndex() int { return m.current }

// SetIndex moves the cursor without announcing. Out-of-range values are
// ignored.
func (m *Menu) SetIndex(i int) {
	if i >= 0 && i < len(m.items) {
		m.current = i
	}
}

// Clear removes all items and resets the cursor.
func (m *Menu) Clear() {
	m.items = nil
	m.current = 0
}

// Current returns the item under the cursor, or nil if the menu is empty or
// the cursor is out of range (possible after Clear followed by a stale call).
func (m *Menu) Current() *Item {
	if m.current < 0 || m.current >= len(m.items) {
		return nil
	}
	return m.items[m.current]
}

// visibleIndices returns the absolute indices of currently visible items, in
// display order. Recomputed per call, never cached.
func (m *Menu) visibleIndices() []int {
	vis := make([]int, 0, len(m.items))
	for i, it := range m.items {
		if it.IsVisible() {
			vis = append(vis, i)
		}
	}
	return vis
}

// HandleInput maps a logical key to a menu operation. Returns true if the
// key was consumed. On an empty menu every operation is a no-op.
func (m *Menu) HandleInput(k constants.Key) bool {
	switch k {
	case constants.KeyUp:
		return m.navigate(-1)
	case constants.KeyDown:
		return m.navigate(1)
	case constants.KeyPageUp:
		return m.navigate(-constants.PageJump)
	case constants.KeyPageDown:
		return m.navigate(constants.PageJump)
	case constants.KeyHome:
		return m.jumpEdge(false)
	case constants.KeyEnd:
		return m.jumpEdge(true)
	case constants.KeyLeft:
		return m.adjust(-1)
	case constants.KeyRight:
		return m.adjust(1)
	case constants.KeyConfirm:
		return m.confirm()
	case constants.KeyBack:
		if m.onBack == nil {
			return false
		}
		guard("menu_back", m.onBack)
		return true
	}
	return false
}

// navigate moves the cursor step positions over the visible subsequence,
// clamped at both ends, then reads the landing item. If the current item
// just became invisible its position is treated as 0.
func (m *Menu) navigate(step int) bool {
	vis := m.visibleIndices()
	if len(vis) == 0 {
		return false
	}

	pos := 0
	for i, idx := range vis {
		if idx == m.current {
			pos = i
			break
		}
	}

	pos += step
	if pos < 0 {
		pos = 0
	}
	if pos > len(vis)-1 {
		pos = len(vis) - 1
	}

	m.current = vis[pos]
	m.Read()
	return true
}

// jumpEdge moves to the first or last visible item.
func (m *Menu) jumpEdge(last bool) bool {
	vis := m.visibleIndices()
	if len(vis) == 0 {
		return false
	}
	if last {
		m.current = vis[len(vis)-1]
	} else {
		m.current = vis[0]
	}
	m.Read()
	return true
}

// Read announces the current item as "{text}, item {pos} of {count}", with
// position and count taken over the visible subsequence. If the current item
// is not visible (race with an external state change) the read is silently
// suppressed. The read side effect, if any, fires before the text is
// computed.
func (m *Menu) Read() {
	it := m.Current()
	if it == nil || !it.IsVisible() {
		return
	}

	if it.OnRead != nil {
		guard("item_on_read", it.OnRead)
	}

	// Recompute after the side effect; it may have shifted visibility.
	vis := m.visibleIndices()
	pos := -1
	for i, idx := range vis {
		if idx == m.current {
			pos = i
			break
		}
	}
	if pos < 0 {
		return
	}

	var text string
	if it.Text != nil {
		text = guardString("item_text", "", it.Text)
	}

	m.speaker.Speak(fmt.Sprintf("%s, item %d of %d", text, pos+1, len(vis)))
}

// adjust fires the current item's adjust action, then always re-reads so the
// new state is spoken. Items without an adjust action ignore the request.
func (m *Menu) adjust(dir int) bool {
	it := m.Current()
	if it == nil || it.OnAdjust == nil {
		return false
	}
	guard("item_adjust", func() { it.OnAdjust(dir) })
	m.Read()
	return true
}

func (m *Menu) confirm() bool {
	it := m.Current()
	if it == nil || it.OnConfirm == nil {
		return false
	}
	guard("item_confirm", it.OnConfirm)
	return true
}
