package access

import (
	"github.com/oasis1701/bazaar-access-sub001/pkg/access/constants"
	"github.com/oasis1701/bazaar-access-sub001/pkg/access/focus"
	"github.com/oasis1701/bazaar-access-sub001/pkg/access/speech"
)

// MenuUI is a focusable surface backed by a Menu. It serves as either a
// modal popup or a base screen; the focus manager does not care which.
//
// On fresh focus the menu title is announced followed by the current item;
// when focus returns after a popup above it closed, only the current item is
// re-read.
type MenuUI struct {
	name    string
	menu    *Menu
	speaker speech.Speaker
	manager *focus.Manager // optional, read for the returning flag
	help    string
	valid   func() bool // nil = always valid
}

var _ focus.Focusable = (*MenuUI)(nil)

// NewMenuUI wraps menu as a focusable surface. A nil speaker silences the
// title announcement; the menu keeps its own speaker for item reads.
func NewMenuUI(name string, menu *Menu, sp speech.Speaker) *MenuUI {
	if sp == nil {
		sp = speech.Null{}
	}
	return &MenuUI{name: name, menu: menu, speaker: sp}
}

// BindFocus lets the surface observe the manager's returning-from-popup
// flag.
func (u *MenuUI) BindFocus(m *focus.Manager) { u.manager = m }

// SetHelp sets the text spoken for the global help key.
func (u *MenuUI) SetHelp(text string) { u.help = text }

// SetValid installs a validity predicate. Without one the surface always
// reports valid.
func (u *MenuUI) SetValid(fn func() bool) { u.valid = fn }

// Menu returns the backing menu.
func (u *MenuUI) Menu() *Menu { return u.menu }

func (u *MenuUI) Name() string { return u.name }

func (u *MenuUI) HandleInput(k constants.Key) bool {
	if u.menu == nil {
		return false
	}
	return u.menu.HandleInput(k)
}

func (u *MenuUI) Help() string {
	if u.help != "" {
		return u.help
	}
	return "Up and down navigate, enter confirms, escape goes back."
}

func (u *MenuUI) OnFocus() {
	if u.menu == nil {
		return
	}
	if u.manager != nil && u.manager.Returning() {
		u.menu.Read()
		return
	}
	if title := u.menu.Title(); title != "" {
		u.speaker.Speak(title)
	}
	u.menu.Read()
}

func (u *MenuUI) IsValid() bool {
	if u.valid == nil {
		return true
	}
	return guardBool("menu_ui_valid", false, u.valid)
}
