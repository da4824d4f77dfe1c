package focus

import (
	"github.com/oasis1701/bazaar-access-sub001/pkg/access/constants"
	"github.com/oasis1701/bazaar-access-sub001/pkg/access/internal"
	"github.com/oasis1701/bazaar-access-sub001/pkg/access/speech"
)

// Focusable is the capability set a surface needs to participate in focus
// routing. Screens and modal UIs implement the same interface; the manager
// does not distinguish beyond stack position.
type Focusable interface {
	// Name identifies the surface in logs.
	Name() string
	// HandleInput processes one logical key. Returns true if consumed.
	HandleInput(k constants.Key) bool
	// Help returns the text spoken when the global help key is pressed.
	Help() string
	// OnFocus is called when the surface gains focus, including when focus
	// returns to it after a popup above it closed.
	OnFocus()
	// IsValid reports whether the underlying live object still exists.
	// The manager re-checks this before every dispatch.
	IsValid() bool
}

// Manager routes input to the focused surface: the top of the modal UI
// stack, or the base Screen when the stack is empty.
//
// One manager instance is constructed per process and passed explicitly to
// whatever drains the input loop; there is no package-level instance. All
// methods must be called from the single thread that owns input handling.
type Manager struct {
	speaker   speech.Speaker
	screen    Focusable
	stack     []Focusable
	returning bool
}

// NewManager creates a Manager. A nil speaker silences help announcements.
func NewManager(sp speech.Speaker) *Manager {
	if sp == nil {
		sp = speech.Null{}
	}
	return &Manager{speaker: sp}
}

// SetScreen installs the base screen and unconditionally clears the UI
// stack: a full-screen transition invalidates every open popup. A nil screen
// is permitted (clears focus) and still clears the stack.
func (m *Manager) SetScreen(s Focusable) {
	m.stack = nil
	m.screen = s
	if s != nil {
		internal.GetLogger().Debug("screen focused", "screen", s.Name())
		m.focusInto(s, false)
	}
}

// Screen returns the current base screen, which may be nil.
func (m *Manager) Screen() Focusable { return m.screen }

// ShowUI pushes a modal UI onto the stack and focuses it. Nil is ignored.
func (m *Manager) ShowUI(u Focusable) {
	if u == nil {
		return
	}
	m.stack = append(m.stack, u)
	internal.GetLogger().Debug("ui shown", "ui", u.Name(), "depth", len(m.stack))
	m.focusInto(u, false)
}

// PopUI removes the top of the stack and refocuses whatever is revealed: the
// new top if the stack is still non-empty, else the screen. No-op on an
// empty stack.
func (m *Manager) PopUI() {
	if len(m.stack) == 0 {
		return
	}
	m.stack = m.stack[:len(m.stack)-1]
	m.refocus()
}

// HideUI removes the given UI wherever it sits in the stack, preserving the
// relative order of the remaining entries. If the UI is not on the stack
// nothing happens, including no refocus.
func (m *Manager) HideUI(u Focusable) {
	for i, entry := range m.stack {
		if entry == u {
			m.stack = append(m.stack[:i], m.stack[i+1:]...)
			m.refocus()
			return
		}
	}
}

// Clear resets the manager: no screen, empty stack.
func (m *Manager) Clear() {
	m.screen = nil
	m.stack = nil
	m.returning = false
}

// Depth returns the number of stacked UIs.
func (m *Manager) Depth() int { return len(m.stack) }

// Focused returns the surface that would receive input: the top of the
// stack, else the screen, else nil. Validity is not checked here.
func (m *Manager) Focused() Focusable {
	if len(m.stack) > 0 {
		return m.stack[len(m.stack)-1]
	}
	return m.screen
}

// Returning reports whether the OnFocus call currently in progress is a
// return from a closed popup rather than a fresh focus. Only meaningful
// inside an OnFocus callback; surfaces use it to keep their position instead
// of resetting to a default section.
func (m *Manager) Returning() bool { return m.returning }

// HandleInput dispatches one logical key. The global help key is intercepted
// first, regardless of stack state. Otherwise the top of the stack gets the
// key if it is still valid; an invalid entry is popped instead of receiving
// input. With an empty stack the screen gets the key under the same check,
// and an invalid screen is cleared. Returns true if the key was consumed,
// including by self-healing.
func (m *Manager) HandleInput(k constants.Key) bool {
	if k == constants.KeyHelp {
		m.speakHelp()
		return true
	}

	if len(m.stack) > 0 {
		top := m.stack[len(m.stack)-1]
		if !m.valid(top) {
			internal.GetLogger().Info("popping invalid ui", "ui", top.Name())
			m.PopUI()
			return true
		}
		return internal.GuardValue("ui_handle_input", false, func() bool {
			return top.HandleInput(k)
		})
	}

	if m.screen == nil {
		return false
	}
	if !m.valid(m.screen) {
		internal.GetLogger().Info("clearing invalid screen", "screen", m.screen.Name())
		m.screen = nil
		return true
	}
	return internal.GuardValue("screen_handle_input", false, func() bool {
		return m.screen.HandleInput(k)
	})
}

// refocus hands focus to whatever the last removal revealed, flagging the
// OnFocus call as a return from a popup.
func (m *Manager) refocus() {
	if len(m.stack) > 0 {
		m.focusInto(m.stack[len(m.stack)-1], true)
		return
	}
	if m.screen != nil {
		m.focusInto(m.screen, true)
	}
}

func (m *Manager) focusInto(f Focusable, returning bool) {
	m.returning = returning
	internal.Guard("on_focus", f.OnFocus)
	m.returning = false
}

func (m *Manager) speakHelp() {
	f := m.Focused()
	if f == nil || !m.valid(f) {
		return
	}
	help := internal.GuardValue("help_text", "", f.Help)
	if help != "" {
		m.speaker.Speak(help)
	}
}

func (m *Manager) valid(f Focusable) bool {
	return internal.GuardValue("is_valid", false, f.IsValid)
}
