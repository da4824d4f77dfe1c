package access

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/oasis1701/bazaar-access-sub001/pkg/access/constants"
	"github.com/oasis1701/bazaar-access-sub001/pkg/access/internal"
	"github.com/oasis1701/bazaar-access-sub001/pkg/access/speech"
)

// selectable is one scanned control plus everything computed at scan time:
// the derived label and the position sort key. The control reference itself
// stays live and is re-validated before use.
type selectable struct {
	control Control
	label   string
	sortKey float64
}

// Scanner builds a navigable list of live interactive controls by scanning
// the host UI tree. The list is a snapshot: it is not kept in sync with the
// tree, staleness is detected lazily before each navigation and the list is
// rebuilt when found stale.
type Scanner struct {
	tree    Tree
	speaker speech.Speaker

	root    Node
	entries []selectable
	index   int
}

// NewScanner creates a scanner over tree. A nil speaker silences
// announcements.
func NewScanner(tree Tree, sp speech.Speaker) *Scanner {
	if sp == nil {
		sp = speech.Null{}
	}
	return &Scanner{tree: tree, speaker: sp}
}

// Len returns the number of cached selectables.
func (s *Scanner) Len() int { return len(s.entries) }

// Index returns the cursor position within the cached list.
func (s *Scanner) Index() int { return s.index }

// Rescan rebuilds the selectable list. With a root, every interactive
// control in that subtree is considered; with a nil root the whole scene is
// enumerated, restricted to active objects. Decorative objects and controls
// with no speakable label are filtered out, the rest are ordered
// top-to-bottom then left-to-right.
func (s *Scanner) Rescan(root Node) {
	s.root = root
	s.entries = s.entries[:0]

	if s.tree == nil {
		return
	}

	controls := internal.GuardValue("tree_controls", nil, func() []Control {
		return s.tree.Controls(root)
	})

	for _, c := range controls {
		if c == nil {
			continue
		}
		// One dying control must not abort the whole scan.
		internal.Guard("scan_control", func() {
			if !c.Exists() || !c.Active() {
				return
			}
			if _, deny := decorativeNames[strings.ToLower(c.ID())]; deny {
				return
			}
			label, ok := deriveLabel(c)
			if !ok {
				return
			}
			p := c.Position()
			s.entries = append(s.entries, selectable{
				control: c,
				label:   label,
				// Descending Y then ascending X, collapsed into one
				// sortable scalar.
				sortKey: -p.Y*10000 + p.X,
			})
		})
	}

	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].sortKey < s.entries[j].sortKey
	})

	if s.index >= len(s.entries) {
		s.index = 0
	}

	internal.GetLogger().Debug("rescan complete", "count", len(s.entries))
}

// Invalidate drops the cached list. The next navigation rescans.
func (s *Scanner) Invalidate() {
	s.entries = s.entries[:0]
	s.index = 0
}

// HandleInput maps logical keys onto scanner operations. Returns true if
// the key was consumed.
func (s *Scanner) HandleInput(k constants.Key) bool {
	switch k {
	case constants.KeyUp:
		return s.move(-1)
	case constants.KeyDown:
		return s.move(1)
	case constants.KeyLeft:
		return s.Adjust(-1)
	case constants.KeyRight:
		return s.Adjust(1)
	case constants.KeyConfirm:
		return s.Activate()
	}
	return false
}

// ReadCurrent announces the control under the cursor.
func (s *Scanner) ReadCurrent() {
	if s.index < 0 || s.index >= len(s.entries) {
		return
	}
	text := s.announcement(s.entries[s.index])
	if text != "" {
		s.speaker.Speak(text)
	}
}

// move steps the cursor over the pruned list, clamped at both ends, and
// announces the landing control. With nothing to land on it stays silent:
// transient UI gaps should not produce "empty" chatter.
func (s *Scanner) move(step int) bool {
	if !s.ensure() {
		return false
	}
	s.index += step
	if s.index < 0 {
		s.index = 0
	}
	if s.index > len(s.entries)-1 {
		s.index = len(s.entries) - 1
	}
	s.ReadCurrent()
	return true
}

// Activate operates the control under the cursor. Triggers click and
// invalidate the scan, since the tree may have changed underneath us;
// toggles flip and announce; ranged and choice controls just announce their
// current state.
func (s *Scanner) Activate() bool {
	if !s.ensure() {
		return false
	}
	e := s.entries[s.index]

	switch c := e.control.(type) {
	case ToggleControl:
		internal.Guard("toggle_set", func() { c.SetOn(!c.On()) })
		s.ReadCurrent()
	case RangeControl:
		s.ReadCurrent()
	case ChoiceControl:
		s.ReadCurrent()
	default:
		err := internal.GuardValue("activate", error(nil), e.control.Activate)
		if err != nil {
			if IsStale(err) {
				// Died between the scan and the click. Routine during
				// screen transitions, so no failure speech.
				internal.GetLogger().Info("activated stale control", "control", e.label)
				s.Invalidate()
				return true
			}
			internal.GetLogger().Warn("activation failed", "error", NewHostError("activate", err))
			s.speaker.Speak(fmt.Sprintf("%s failed", e.label))
			return true
		}
		s.Invalidate()
	}
	return true
}

// Adjust steps the control under the cursor: ranged controls by 10% of
// their span, choice controls by one option, both clamped; toggles flip on
// either direction. Plain triggers ignore adjustment.
func (s *Scanner) Adjust(dir int) bool {
	if !s.ensure() {
		return false
	}
	e := s.entries[s.index]

	switch c := e.control.(type) {
	case RangeControl:
		internal.Guard("range_adjust", func() {
			span := c.Max() - c.Min()
			v := c.Value() + float64(dir)*span*0.10
			if v < c.Min() {
				v = c.Min()
			}
			if v > c.Max() {
				v = c.Max()
			}
			c.SetValue(v)
		})
		s.ReadCurrent()
	case ChoiceControl:
		internal.Guard("choice_adjust", func() {
			i := c.Selected() + dir
			if i < 0 {
				i = 0
			}
			if max := c.OptionCount() - 1; i > max {
				i = max
			}
			c.Select(i)
		})
		s.ReadCurrent()
	case ToggleControl:
		internal.Guard("toggle_set", func() { c.SetOn(!c.On()) })
		s.ReadCurrent()
	default:
		return false
	}
	return true
}

// ensure prunes dead entries and, if nothing is left, rescans once from the
// last root. Returns false when there is still nothing to navigate.
func (s *Scanner) ensure() bool {
	s.prune()
	if len(s.entries) == 0 {
		s.Rescan(s.root)
		s.prune()
	}
	return len(s.entries) > 0
}

// prune removes entries whose live object is gone or inactive, keeping the
// cursor on the same control when it survives.
func (s *Scanner) prune() {
	var cur Control
	if s.index >= 0 && s.index < len(s.entries) {
		cur = s.entries[s.index].control
	}

	kept := s.entries[:0]
	for _, e := range s.entries {
		c := e.control
		alive := internal.GuardValue("control_alive", false, func() bool {
			return c.Exists() && c.Active()
		})
		if alive {
			kept = append(kept, e)
		}
	}
	s.entries = kept

	s.index = 0
	for i, e := range s.entries {
		if e.control == cur {
			s.index = i
			break
		}
	}
}

// announcement builds the spoken string for one entry: label alone for
// triggers, "label: on|off" for toggles, "label: N%" for ranged controls,
// "label: selected text" for choices, with ", disabled" appended for
// non-interactable controls.
func (s *Scanner) announcement(e selectable) string {
	return internal.GuardValue("announce", "", func() string {
		var text string
		switch c := e.control.(type) {
		case ToggleControl:
			state := "off"
			if c.On() {
				state = "on"
			}
			text = fmt.Sprintf("%s: %s", e.label, state)
		case RangeControl:
			text = fmt.Sprintf("%s: %d%%", e.label, rangePercent(c))
		case ChoiceControl:
			text = fmt.Sprintf("%s: %s", e.label, c.SelectedText())
		default:
			text = e.label
		}
		if !e.control.Interactable() {
			text += ", disabled"
		}
		return text
	})
}

// rangePercent normalizes a ranged control's value to its min/max, rounded
// to the nearest integer percent.
func rangePercent(c RangeControl) int {
	span := c.Max() - c.Min()
	if span <= 0 {
		return 0
	}
	return int(math.Round((c.Value() - c.Min()) / span * 100))
}
