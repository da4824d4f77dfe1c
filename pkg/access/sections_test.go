package access

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oasis1701/bazaar-access-sub001/pkg/access/constants"
	"github.com/oasis1701/bazaar-access-sub001/pkg/access/focus"
	"github.com/oasis1701/bazaar-access-sub001/pkg/access/speech"
)

type fakeGameData struct {
	active     bool
	selections []Entity
	board      []Entity
	stash      []Entity
	skills     []Entity
	stats      []Stat

	selected  []int
	selectErr error
}

func (d *fakeGameData) Active() bool { return d.active }

func (d *fakeGameData) Selections() []Entity { return d.selections }

func (d *fakeGameData) Board() []Entity { return d.board }

func (d *fakeGameData) Stash() []Entity { return d.stash }

func (d *fakeGameData) Skills() []Entity { return d.skills }

func (d *fakeGameData) HeroStats() []Stat { return d.stats }

func (d *fakeGameData) Select(index int) error {
	if d.selectErr != nil {
		return d.selectErr
	}
	d.selected = append(d.selected, index)
	return nil
}

func entities(names ...string) []Entity {
	out := make([]Entity, len(names))
	for i, n := range names {
		out[i] = Entity{Name: n}
	}
	return out
}

func TestNavigatorMovesWithinSection(t *testing.T) {
	data := &fakeGameData{
		active: true,
		board:  entities("Sword", "Shield", "Potion"),
	}
	mem := &speech.Memory{}
	n := NewSectionNavigator(data, mem)
	n.JumpTo(SectionBoard)
	require.Equal(t, "Board: Sword, item 1 of 3", mem.Last())

	require.True(t, n.HandleInput(constants.KeyDown))
	require.Equal(t, "Shield, item 2 of 3", mem.Last())

	require.True(t, n.HandleInput(constants.KeyEnd))
	require.Equal(t, "Potion, item 3 of 3", mem.Last())

	// Clamped, no wrap.
	require.True(t, n.HandleInput(constants.KeyDown))
	require.Equal(t, "Potion, item 3 of 3", mem.Last())

	require.True(t, n.HandleInput(constants.KeyHome))
	require.Equal(t, "Sword, item 1 of 3", mem.Last())
}

func TestNavigatorJumpToEmptySectionFallsBack(t *testing.T) {
	data := &fakeGameData{
		active: true,
		stash:  entities("Gem"),
	}
	mem := &speech.Memory{}
	n := NewSectionNavigator(data, mem)

	n.JumpTo(SectionBoard)
	require.Equal(t, SectionStash, n.Section())
	require.Equal(t, "Board empty. Stash: Gem, item 1 of 1", mem.Last())
}

func TestNavigatorJumpToHeroAlwaysWorks(t *testing.T) {
	data := &fakeGameData{
		active: true,
		stats:  []Stat{{Label: "Health", Value: "100"}, {Label: "Gold", Value: "12"}},
	}
	mem := &speech.Memory{}
	n := NewSectionNavigator(data, mem)

	n.JumpTo(SectionHero)
	require.Equal(t, "Hero: Health: 100", mem.Last())

	require.True(t, n.HandleInput(constants.KeyDown))
	require.Equal(t, "Gold: 12", mem.Last())
	require.True(t, n.HandleInput(constants.KeyDown))
	require.Equal(t, "Gold: 12", mem.Last())
}

func TestNavigatorCycleSkipsEmptySections(t *testing.T) {
	data := &fakeGameData{
		active: true,
		board:  entities("Sword"),
		skills: entities("Burn"),
	}
	mem := &speech.Memory{}
	n := NewSectionNavigator(data, mem)
	n.JumpTo(SectionBoard)

	// Stash is empty: next lands on Skills.
	n.NextSection()
	require.Equal(t, SectionSkills, n.Section())

	n.NextSection()
	require.Equal(t, SectionHero, n.Section())

	// Selection is empty too, so wrapping back skips it.
	n.NextSection()
	require.Equal(t, SectionBoard, n.Section())

	n.PrevSection()
	require.Equal(t, SectionHero, n.Section())
}

func TestNavigatorRefreshReassignsEmptiedSection(t *testing.T) {
	data := &fakeGameData{
		active: true,
		board:  entities("Sword"),
		skills: entities("Burn"),
	}
	n := NewSectionNavigator(data, &speech.Memory{})
	n.JumpTo(SectionBoard)

	data.board = nil
	n.Refresh()
	require.Equal(t, SectionSkills, n.Section())
}

func TestNavigatorRefreshClampsCursorToTop(t *testing.T) {
	data := &fakeGameData{
		active: true,
		board:  entities("Sword", "Shield", "Potion"),
	}
	mem := &speech.Memory{}
	n := NewSectionNavigator(data, mem)
	n.JumpTo(SectionBoard)
	n.HandleInput(constants.KeyEnd)

	// Two items vanish out from under the cursor: back to the top, not to
	// the new last item.
	data.board = entities("Sword")
	n.Refresh()
	n.HandleInput(constants.KeyDown)
	require.Equal(t, "Sword, item 1 of 1", mem.Last())
}

func TestNavigatorConfirmSelection(t *testing.T) {
	data := &fakeGameData{
		active:     true,
		selections: entities("Vendor", "Fight", "Event"),
	}
	mem := &speech.Memory{}
	n := NewSectionNavigator(data, mem)
	n.JumpTo(SectionSelection)
	n.HandleInput(constants.KeyDown)

	require.True(t, n.HandleInput(constants.KeyConfirm))
	require.Equal(t, []int{1}, data.selected)
	require.Equal(t, "Selected Fight", mem.Last())
}

func TestNavigatorConfirmRejectionSpoken(t *testing.T) {
	data := &fakeGameData{
		active:     true,
		selections: entities("Vendor"),
		selectErr:  errors.New("not your turn"),
	}
	mem := &speech.Memory{}
	n := NewSectionNavigator(data, mem)
	n.JumpTo(SectionSelection)

	require.True(t, n.HandleInput(constants.KeyConfirm))
	require.Equal(t, "Selection failed", mem.Last())
	require.Empty(t, data.selected)
}

func TestNavigatorConfirmOutsideSelectionIgnored(t *testing.T) {
	data := &fakeGameData{
		active: true,
		board:  entities("Sword"),
	}
	n := NewSectionNavigator(data, &speech.Memory{})
	n.JumpTo(SectionBoard)

	require.False(t, n.HandleInput(constants.KeyConfirm))
	require.Empty(t, data.selected)
}

func TestNavigatorDetails(t *testing.T) {
	data := &fakeGameData{
		active: true,
		board: []Entity{
			{Name: "Sword", Description: "Deals 10 damage every 4 seconds."},
			{Name: "Rock"},
		},
	}
	mem := &speech.Memory{}
	n := NewSectionNavigator(data, mem)
	n.JumpTo(SectionBoard)

	require.True(t, n.HandleInput(constants.KeyDetails))
	require.Equal(t, "Deals 10 damage every 4 seconds.", mem.Last())

	// No description, nothing spoken.
	n.HandleInput(constants.KeyDown)
	require.False(t, n.HandleInput(constants.KeyDetails))
}

func TestNavigatorFreshFocusResetsReturningKeeps(t *testing.T) {
	data := &fakeGameData{
		active: true,
		board:  entities("Sword"),
		skills: entities("Burn", "Freeze"),
	}
	mem := &speech.Memory{}
	m := focus.NewManager(mem)
	n := NewSectionNavigator(data, mem)
	n.BindFocus(m)

	// Fresh focus lands on the default section: Board, since Selection is
	// empty.
	m.SetScreen(n)
	require.Equal(t, SectionBoard, n.Section())
	require.Equal(t, "Board: Sword, item 1 of 1", mem.Last())

	n.JumpTo(SectionSkills)
	n.HandleInput(constants.KeyDown)

	// A popup opens and closes: the navigator keeps its place.
	popup := NewMenuUI("pause", NewMenu("Pause", mem), mem)
	m.ShowUI(popup)
	m.PopUI()
	require.Equal(t, SectionSkills, n.Section())
	require.Equal(t, "Skills: Freeze, item 2 of 2", mem.Last())
}

func TestNavigatorValidityTracksRun(t *testing.T) {
	data := &fakeGameData{active: true}
	n := NewSectionNavigator(data, nil)
	require.True(t, n.IsValid())

	data.active = false
	require.False(t, n.IsValid())
}
