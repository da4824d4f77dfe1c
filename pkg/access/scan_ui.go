package access

import (
	"github.com/oasis1701/bazaar-access-sub001/pkg/access/constants"
	"github.com/oasis1701/bazaar-access-sub001/pkg/access/focus"
	"github.com/oasis1701/bazaar-access-sub001/pkg/access/speech"
)

// ScanUI is a focusable surface backed by a Scanner over a live subtree,
// used for host popups the layer has no dedicated screen for: it rescans on
// focus and lets the player walk whatever interactive controls are there.
type ScanUI struct {
	name    string
	scanner *Scanner
	speaker speech.Speaker
	root    Node
	title   string
	help    string
	onBack  func()
}

var _ focus.Focusable = (*ScanUI)(nil)

// NewScanUI wraps scanner as a focusable surface rooted at root. A nil root
// scans the whole scene.
func NewScanUI(name string, scanner *Scanner, root Node, sp speech.Speaker) *ScanUI {
	if sp == nil {
		sp = speech.Null{}
	}
	return &ScanUI{name: name, scanner: scanner, speaker: sp, root: root}
}

// SetTitle sets the text announced when the surface gains focus, before the
// current control is read.
func (u *ScanUI) SetTitle(text string) { u.title = text }

// SetHelp sets the text spoken for the global help key.
func (u *ScanUI) SetHelp(text string) { u.help = text }

// SetOnBack sets the callback fired on the Back key, typically closing the
// host popup and hiding this surface.
func (u *ScanUI) SetOnBack(fn func()) { u.onBack = fn }

func (u *ScanUI) Name() string { return u.name }

func (u *ScanUI) HandleInput(k constants.Key) bool {
	if k == constants.KeyBack && u.onBack != nil {
		guard("scan_ui_back", u.onBack)
		return true
	}
	if u.scanner == nil {
		return false
	}
	return u.scanner.HandleInput(k)
}

func (u *ScanUI) Help() string {
	if u.help != "" {
		return u.help
	}
	return "Up and down walk the controls, enter activates, " +
		"left and right adjust sliders and dropdowns."
}

func (u *ScanUI) OnFocus() {
	if u.scanner == nil {
		return
	}
	if u.title != "" {
		u.speaker.Speak(u.title)
	}
	u.scanner.Rescan(u.root)
	u.scanner.ReadCurrent()
}

// IsValid reports whether the scanned root still exists. A scene-wide
// surface (nil root) is always valid.
func (u *ScanUI) IsValid() bool {
	if u.root == nil {
		return true
	}
	return guardBool("scan_ui_valid", false, u.root.Exists)
}
