// Package evdevinput reads logical keys straight from a Linux input device,
// for hosts that give the layer no usable input hook. The layer then sees
// every keypress, including ones the game also handles.
package evdevinput

import (
	"fmt"
	"strings"
	"sync"

	"github.com/holoplot/go-evdev"

	"github.com/oasis1701/bazaar-access-sub001/pkg/access/constants"
	"github.com/oasis1701/bazaar-access-sub001/pkg/access/internal"
)

// Listener owns one input device and a reader goroutine.
type Listener struct {
	dev      *evdev.InputDevice
	bindings map[evdev.EvCode]constants.Key
	wg       sync.WaitGroup
}

func defaultBindings() map[evdev.EvCode]constants.Key {
	return map[evdev.EvCode]constants.Key{
		evdev.KEY_UP:         constants.KeyUp,
		evdev.KEY_DOWN:       constants.KeyDown,
		evdev.KEY_LEFT:       constants.KeyLeft,
		evdev.KEY_RIGHT:      constants.KeyRight,
		evdev.KEY_ENTER:      constants.KeyConfirm,
		evdev.KEY_ESC:        constants.KeyBack,
		evdev.KEY_H:          constants.KeyHelp,
		evdev.KEY_HOME:       constants.KeyHome,
		evdev.KEY_END:        constants.KeyEnd,
		evdev.KEY_PAGEUP:     constants.KeyPageUp,
		evdev.KEY_PAGEDOWN:   constants.KeyPageDown,
		evdev.KEY_R:          constants.KeyRepeat,
		evdev.KEY_D:          constants.KeyDetails,
		evdev.KEY_RIGHTBRACE: constants.KeyNextSection,
		evdev.KEY_LEFTBRACE:  constants.KeyPrevSection,
		evdev.KEY_1:          constants.KeyJumpSelection,
		evdev.KEY_2:          constants.KeyJumpBoard,
		evdev.KEY_3:          constants.KeyJumpStash,
		evdev.KEY_4:          constants.KeyJumpSkills,
		evdev.KEY_5:          constants.KeyJumpHero,
	}
}

// Open opens the input device at path and applies binding overrides from
// config: action name to evdev key name ("KEY_ENTER", or just "enter").
func Open(path string, overrides map[string]string) (*Listener, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input device %s: %w", path, err)
	}

	bindings := defaultBindings()
	for action, keyName := range overrides {
		k := constants.ParseKey(action)
		if k == constants.KeyUnassigned {
			internal.GetLogger().Warn("unknown action in key bindings", "action", action)
			continue
		}
		code, ok := evdevCode(keyName)
		if !ok {
			internal.GetLogger().Warn("unknown key name in key bindings", "key", keyName)
			continue
		}
		for old, bound := range bindings {
			if bound == k {
				delete(bindings, old)
			}
		}
		bindings[code] = k
	}

	return &Listener{dev: dev, bindings: bindings}, nil
}

// evdevCode resolves a key name to its event code, accepting both the raw
// constant name and a bare lowercase form.
func evdevCode(name string) (evdev.EvCode, bool) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if !strings.HasPrefix(n, "KEY_") {
		n = "KEY_" + n
	}
	code, ok := evdev.KEYFromString[n]
	return code, ok
}

// Run starts the reader goroutine, calling fn for every press and
// auto-repeat of a bound key. fn runs on the reader goroutine.
func (l *Listener) Run(fn func(constants.Key)) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		for {
			ev, err := l.dev.ReadOne()
			if err != nil {
				// Device closed or unplugged, either way we are done.
				internal.GetLogger().Info("input device reader stopped", "error", err)
				return
			}
			if ev.Type != evdev.EV_KEY {
				continue
			}
			if ev.Value != 1 && ev.Value != 2 {
				continue
			}
			if k, ok := l.bindings[ev.Code]; ok {
				fn(k)
			}
		}
	}()
}

// Close releases the device and waits for the reader goroutine to exit.
func (l *Listener) Close() error {
	err := l.dev.Close()
	l.wg.Wait()
	return err
}
