// Package constants defines shared constants and types used throughout the
// bazaar-access accessibility layer.
package constants

import (
	"os"
	"strings"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// VerboseEnvVar forces debug logging when set, regardless of config.
const VerboseEnvVar = "BAZAAR_ACCESS_DEBUG"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Key represents an abstract logical key, mapped from physical input by a
// platform decoder. The navigation core never sees raw device input.
type Key int

const (
	KeyUnassigned Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyConfirm
	KeyBack
	KeyHelp
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyRepeat
	KeyDetails
	KeyNextSection
	KeyPrevSection
	KeyJumpSelection
	KeyJumpBoard
	KeyJumpStash
	KeyJumpSkills
	KeyJumpHero
)

func (k Key) String() string {
	switch k {
	case KeyUnassigned:
		return "Unassigned"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyConfirm:
		return "Confirm"
	case KeyBack:
		return "Back"
	case KeyHelp:
		return "Help"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyRepeat:
		return "Repeat"
	case KeyDetails:
		return "Details"
	case KeyNextSection:
		return "NextSection"
	case KeyPrevSection:
		return "PrevSection"
	case KeyJumpSelection:
		return "JumpSelection"
	case KeyJumpBoard:
		return "JumpBoard"
	case KeyJumpStash:
		return "JumpStash"
	case KeyJumpSkills:
		return "JumpSkills"
	case KeyJumpHero:
		return "JumpHero"
	default:
		return "Unknown"
	}
}

// ParseKey maps a lowercase action name, as used in config key bindings,
// back to its Key. Unknown names return KeyUnassigned.
func ParseKey(name string) Key {
	switch strings.ToLower(name) {
	case "up":
		return KeyUp
	case "down":
		return KeyDown
	case "left":
		return KeyLeft
	case "right":
		return KeyRight
	case "confirm":
		return KeyConfirm
	case "back":
		return KeyBack
	case "help":
		return KeyHelp
	case "home":
		return KeyHome
	case "end":
		return KeyEnd
	case "pageup":
		return KeyPageUp
	case "pagedown":
		return KeyPageDown
	case "repeat":
		return KeyRepeat
	case "details":
		return KeyDetails
	case "nextsection":
		return KeyNextSection
	case "prevsection":
		return KeyPrevSection
	case "jumpselection":
		return KeyJumpSelection
	case "jumpboard":
		return KeyJumpBoard
	case "jumpstash":
		return KeyJumpStash
	case "jumpskills":
		return KeyJumpSkills
	case "jumphero":
		return KeyJumpHero
	default:
		return KeyUnassigned
	}
}

// PageJump is the number of visible positions PageUp/PageDown move the cursor.
const PageJump = 10
