// Package sdlinput decodes SDL keyboard events into the layer's logical
// keys, for hosts whose input loop surfaces SDL events.
package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/oasis1701/bazaar-access-sub001/pkg/access/constants"
	"github.com/oasis1701/bazaar-access-sub001/pkg/access/internal"
)

// Decoder maps SDL keycodes to logical keys.
type Decoder struct {
	bindings map[sdl.Keycode]constants.Key
}

func defaultBindings() map[sdl.Keycode]constants.Key {
	return map[sdl.Keycode]constants.Key{
		sdl.K_UP:           constants.KeyUp,
		sdl.K_DOWN:         constants.KeyDown,
		sdl.K_LEFT:         constants.KeyLeft,
		sdl.K_RIGHT:        constants.KeyRight,
		sdl.K_RETURN:       constants.KeyConfirm,
		sdl.K_ESCAPE:       constants.KeyBack,
		sdl.K_h:            constants.KeyHelp,
		sdl.K_HOME:         constants.KeyHome,
		sdl.K_END:          constants.KeyEnd,
		sdl.K_PAGEUP:       constants.KeyPageUp,
		sdl.K_PAGEDOWN:     constants.KeyPageDown,
		sdl.K_r:            constants.KeyRepeat,
		sdl.K_d:            constants.KeyDetails,
		sdl.K_RIGHTBRACKET: constants.KeyNextSection,
		sdl.K_LEFTBRACKET:  constants.KeyPrevSection,
		sdl.K_1:            constants.KeyJumpSelection,
		sdl.K_2:            constants.KeyJumpBoard,
		sdl.K_3:            constants.KeyJumpStash,
		sdl.K_4:            constants.KeyJumpSkills,
		sdl.K_5:            constants.KeyJumpHero,
	}
}

// New builds a decoder with the default bindings, then applies overrides
// from config: action name (e.g. "confirm") to SDL key name (e.g.
// "Return"). Unknown actions or key names are logged and skipped.
func New(overrides map[string]string) *Decoder {
	d := &Decoder{bindings: defaultBindings()}
	for action, keyName := range overrides {
		k := constants.ParseKey(action)
		if k == constants.KeyUnassigned {
			internal.GetLogger().Warn("unknown action in key bindings", "action", action)
			continue
		}
		code := sdl.GetKeyFromName(keyName)
		if code == sdl.K_UNKNOWN {
			internal.GetLogger().Warn("unknown key name in key bindings", "key", keyName)
			continue
		}
		// Unbind the action's previous key so a remap moves it rather
		// than duplicating it.
		for old, bound := range d.bindings {
			if bound == k {
				delete(d.bindings, old)
			}
		}
		d.bindings[code] = k
	}
	return d
}

// Decode maps one keyboard event to a logical key. Only key-down events
// decode; everything else returns KeyUnassigned.
func (d *Decoder) Decode(e *sdl.KeyboardEvent) constants.Key {
	if e == nil || e.Type != sdl.KEYDOWN {
		return constants.KeyUnassigned
	}
	return d.bindings[e.Keysym.Sym]
}
