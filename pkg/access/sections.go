package access

import (
	"errors"
	"fmt"

	"github.com/oasis1701/bazaar-access-sub001/pkg/access/constants"
	"github.com/oasis1701/bazaar-access-sub001/pkg/access/focus"
	"github.com/oasis1701/bazaar-access-sub001/pkg/access/internal"
	"github.com/oasis1701/bazaar-access-sub001/pkg/access/speech"
)

// Section identifies a named grouping of navigable game entities.
type Section int

const (
	SectionSelection Section = iota
	SectionBoard
	SectionStash
	SectionSkills
	SectionHero
)

func (s Section) String() string {
	switch s {
	case SectionSelection:
		return "Selection"
	case SectionBoard:
		return "Board"
	case SectionStash:
		return "Stash"
	case SectionSkills:
		return "Skills"
	case SectionHero:
		return "Hero"
	default:
		return "Unknown"
	}
}

// sectionOrder is the cyclic traversal order for section switching.
var sectionOrder = []Section{
	SectionSelection, SectionBoard, SectionStash, SectionSkills, SectionHero,
}

// Entity is one navigable game entity (a selection choice, a board or stash
// item, a skill).
type Entity struct {
	Name        string
	Description string
}

// Stat is one entry of the hero's fixed-length stat list.
type Stat struct {
	Label string
	Value string
}

// GameData is the external provider of current run state. It is pulled on
// demand; the navigator never receives pushes.
type GameData interface {
	// Active reports whether a run is in progress.
	Active() bool
	Selections() []Entity
	Board() []Entity
	Stash() []Entity
	Skills() []Entity
	HeroStats() []Stat
	// Select commits the selection choice at index. The game may refuse
	// (return ErrRejected); any error is spoken as a failure, never
	// propagated.
	Select(index int) error
}

// SectionNavigator is a higher-level cursor over grouped game entities. Each
// section keeps its own rebuilt item cache and its own cursor; Hero
// additionally keeps a stat cursor and always counts as having content, so
// cyclic section switching always terminates. It implements focus.Focusable
// and normally serves as the in-run base screen.
type SectionNavigator struct {
	data    GameData
	speaker speech.Speaker
	manager *focus.Manager // optional, read for the returning-from-popup flag

	section Section
	cursors map[Section]int
	caches  map[Section][]Entity

	stats     []Stat
	statIndex int
}

// NewSectionNavigator creates a navigator over data. A nil speaker silences
// announcements.
func NewSectionNavigator(data GameData, sp speech.Speaker) *SectionNavigator {
	if sp == nil {
		sp = speech.Null{}
	}
	return &SectionNavigator{
		data:    data,
		speaker: sp,
		section: SectionSelection,
		cursors: make(map[Section]int),
		caches:  make(map[Section][]Entity),
	}
}

// BindFocus lets the navigator observe the manager's returning-from-popup
// flag, so regaining focus after a popup keeps the current section instead
// of resetting it.
func (n *SectionNavigator) BindFocus(m *focus.Manager) { n.manager = m }

// Section returns the currently selected section.
func (n *SectionNavigator) Section() Section { return n.section }

// Refresh rebuilds every section's cache from the data provider, then
// re-validates the cursor. If the current section lost all content the
// navigator reassigns itself to the first non-empty of Selection, Board,
// Skills — falling back to Hero — with the cursor reset to 0. A surviving
// cursor that is now out of range also goes back to 0, never to the new
// last item: after an external removal, top of the list is the useful
// place to be.
func (n *SectionNavigator) Refresh() {
	n.rebuild()
	n.revalidate()
}

func (n *SectionNavigator) rebuild() {
	if n.data == nil {
		return
	}
	n.caches[SectionSelection] = internal.GuardValue("data_selections", nil, n.data.Selections)
	n.caches[SectionBoard] = internal.GuardValue("data_board", nil, n.data.Board)
	n.caches[SectionStash] = internal.GuardValue("data_stash", nil, n.data.Stash)
	n.caches[SectionSkills] = internal.GuardValue("data_skills", nil, n.data.Skills)
	n.stats = internal.GuardValue("data_hero_stats", nil, n.data.HeroStats)
}

func (n *SectionNavigator) revalidate() {
	if !n.hasContent(n.section) {
		n.section = n.defaultSection()
		n.cursors[n.section] = 0
	} else if n.cursors[n.section] >= len(n.caches[n.section]) && n.section != SectionHero {
		n.cursors[n.section] = 0
	}
	if n.statIndex >= len(n.stats) {
		n.statIndex = 0
	}
}

// defaultSection is the first non-empty of Selection, Board, Skills, with
// Hero as the unconditional fallback.
func (n *SectionNavigator) defaultSection() Section {
	for _, sec := range []Section{SectionSelection, SectionBoard, SectionSkills} {
		if n.hasContent(sec) {
			return sec
		}
	}
	return SectionHero
}

// hasContent tests a section against the current caches. Hero always has
// content.
func (n *SectionNavigator) hasContent(sec Section) bool {
	if sec == SectionHero {
		return true
	}
	return len(n.caches[sec]) > 0
}

// JumpTo switches to the named section if it currently has content, testing
// against freshly rebuilt caches. An empty target falls back to the next
// content-bearing section in cyclic order, and the substitution is named in
// the announcement.
func (n *SectionNavigator) JumpTo(sec Section) {
	n.rebuild()

	if n.hasContent(sec) {
		n.section = sec
		n.revalidate()
		n.speaker.Speak(fmt.Sprintf("%s: %s", sec, n.currentText()))
		return
	}

	fallback := n.nextWithContent(sec, 1)
	n.section = fallback
	n.revalidate()
	n.speaker.Speak(fmt.Sprintf("%s empty. %s: %s", sec, fallback, n.currentText()))
}

// NextSection moves to the next section that currently has content.
func (n *SectionNavigator) NextSection() { n.cycleSection(1) }

// PrevSection moves to the previous section that currently has content.
func (n *SectionNavigator) PrevSection() { n.cycleSection(-1) }

func (n *SectionNavigator) cycleSection(dir int) {
	n.rebuild()
	n.section = n.nextWithContent(n.section, dir)
	n.revalidate()
	n.speaker.Speak(fmt.Sprintf("%s: %s", n.section, n.currentText()))
}

// nextWithContent walks the section order cyclically from sec until a
// section with content is found. Terminates because Hero always qualifies.
func (n *SectionNavigator) nextWithContent(sec Section, dir int) Section {
	start := 0
	for i, s := range sectionOrder {
		if s == sec {
			start = i
			break
		}
	}
	for step := 1; step <= len(sectionOrder); step++ {
		idx := (start + dir*step%len(sectionOrder) + len(sectionOrder)) % len(sectionOrder)
		if n.hasContent(sectionOrder[idx]) {
			return sectionOrder[idx]
		}
	}
	return SectionHero
}

// HandleInput maps logical keys onto navigator operations.
func (n *SectionNavigator) HandleInput(k constants.Key) bool {
	switch k {
	case constants.KeyUp:
		return n.moveItem(-1)
	case constants.KeyDown:
		return n.moveItem(1)
	case constants.KeyHome:
		return n.jumpItem(false)
	case constants.KeyEnd:
		return n.jumpItem(true)
	case constants.KeyConfirm:
		return n.confirm()
	case constants.KeyDetails:
		return n.details()
	case constants.KeyNextSection:
		n.NextSection()
		return true
	case constants.KeyPrevSection:
		n.PrevSection()
		return true
	case constants.KeyJumpSelection:
		n.JumpTo(SectionSelection)
		return true
	case constants.KeyJumpBoard:
		n.JumpTo(SectionBoard)
		return true
	case constants.KeyJumpStash:
		n.JumpTo(SectionStash)
		return true
	case constants.KeyJumpSkills:
		n.JumpTo(SectionSkills)
		return true
	case constants.KeyJumpHero:
		n.JumpTo(SectionHero)
		return true
	}
	return false
}

// moveItem steps the active section's cursor, clamped at both ends. On Hero
// it steps the stat cursor instead.
func (n *SectionNavigator) moveItem(step int) bool {
	if n.section == SectionHero {
		if len(n.stats) == 0 {
			return false
		}
		n.statIndex = clampIndex(n.statIndex+step, len(n.stats))
		n.speaker.Speak(n.currentText())
		return true
	}

	items := n.caches[n.section]
	if len(items) == 0 {
		return false
	}
	n.cursors[n.section] = clampIndex(n.cursors[n.section]+step, len(items))
	n.speaker.Speak(n.currentText())
	return true
}

func (n *SectionNavigator) jumpItem(last bool) bool {
	if n.section == SectionHero {
		if len(n.stats) == 0 {
			return false
		}
		if last {
			n.statIndex = len(n.stats) - 1
		} else {
			n.statIndex = 0
		}
		n.speaker.Speak(n.currentText())
		return true
	}

	items := n.caches[n.section]
	if len(items) == 0 {
		return false
	}
	if last {
		n.cursors[n.section] = len(items) - 1
	} else {
		n.cursors[n.section] = 0
	}
	n.speaker.Speak(n.currentText())
	return true
}

// confirm commits the current selection choice. Rejections are spoken as a
// failure distinct from the success message; the navigator stays in a
// consistent, re-readable state either way.
func (n *SectionNavigator) confirm() bool {
	if n.section != SectionSelection || n.data == nil {
		return false
	}
	items := n.caches[SectionSelection]
	cur := n.cursors[SectionSelection]
	if cur < 0 || cur >= len(items) {
		return false
	}

	err := internal.GuardValue("data_select", error(nil), func() error {
		return n.data.Select(cur)
	})
	if err != nil {
		if errors.Is(err, ErrRejected) {
			internal.GetLogger().Info("selection rejected", "index", cur)
		} else {
			internal.GetLogger().Warn("selection failed", "error", NewHostError("select", err))
		}
		n.speaker.Speak("Selection failed")
		return true
	}

	name := items[cur].Name
	n.Refresh()
	n.speaker.Speak(fmt.Sprintf("Selected %s", name))
	return true
}

// details speaks the current entity's long description, or the stat on
// Hero. Entities without a description stay silent.
func (n *SectionNavigator) details() bool {
	if n.section == SectionHero {
		if n.statIndex < 0 || n.statIndex >= len(n.stats) {
			return false
		}
		n.speaker.Speak(n.currentText())
		return true
	}

	items := n.caches[n.section]
	cur := n.cursors[n.section]
	if cur < 0 || cur >= len(items) {
		return false
	}
	if items[cur].Description == "" {
		return false
	}
	n.speaker.Speak(items[cur].Description)
	return true
}

// currentText builds the announcement for the item under the cursor:
// "{name}, item {x} of {y}" for entity sections, "{label}: {value}" for
// hero stats.
func (n *SectionNavigator) currentText() string {
	if n.section == SectionHero {
		if n.statIndex < 0 || n.statIndex >= len(n.stats) {
			return "no stats"
		}
		st := n.stats[n.statIndex]
		return fmt.Sprintf("%s: %s", st.Label, st.Value)
	}

	items := n.caches[n.section]
	cur := n.cursors[n.section]
	if cur < 0 || cur >= len(items) {
		return "empty"
	}
	return fmt.Sprintf("%s, item %d of %d", items[cur].Name, cur+1, len(items))
}

// Name implements focus.Focusable.
func (n *SectionNavigator) Name() string { return "game" }

// Help implements focus.Focusable.
func (n *SectionNavigator) Help() string {
	return "Arrows navigate items. Tab and shift tab switch sections. " +
		"Section keys jump to selection, board, stash, skills or hero. " +
		"Enter confirms a selection choice, D reads details."
}

// OnFocus implements focus.Focusable. Fresh focus refreshes the data and
// resets to the default section; focus returning from a popup keeps the
// current section and just re-announces it.
func (n *SectionNavigator) OnFocus() {
	if n.manager != nil && n.manager.Returning() {
		n.rebuild()
		n.revalidate()
		n.speaker.Speak(fmt.Sprintf("%s: %s", n.section, n.currentText()))
		return
	}

	n.rebuild()
	n.section = n.defaultSection()
	n.cursors[n.section] = 0
	n.revalidate()
	n.speaker.Speak(fmt.Sprintf("%s: %s", n.section, n.currentText()))
}

// IsValid implements focus.Focusable: the navigator is valid while a run is
// in progress.
func (n *SectionNavigator) IsValid() bool {
	if n.data == nil {
		return false
	}
	return internal.GuardValue("data_active", false, n.data.Active)
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length-1 {
		return length - 1
	}
	return i
}
