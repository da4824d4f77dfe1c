package access

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/oasis1701/bazaar-access-sub001/pkg/access/constants"
	"github.com/oasis1701/bazaar-access-sub001/pkg/access/speech"
)

func TestMenuNavigateAnnouncesPosition(t *testing.T) {
	mem := &speech.Memory{}
	m := NewMenu("Main", mem)
	m.AddOptions(
		NewItem("Start Run", nil),
		NewItem("Options", nil),
		NewItem("Quit", nil),
	)

	require.True(t, m.HandleInput(constants.KeyDown))
	require.Equal(t, "Options, item 2 of 3", mem.Last())

	require.True(t, m.HandleInput(constants.KeyDown))
	require.Equal(t, "Quit, item 3 of 3", mem.Last())
}

func TestMenuCursorClampsAtEnds(t *testing.T) {
	mem := &speech.Memory{}
	m := NewMenu("Main", mem)
	m.AddOptions(NewItem("First", nil), NewItem("Last", nil))

	// Up from the top stays on the top, no wrap.
	require.True(t, m.HandleInput(constants.KeyUp))
	require.Equal(t, 0, m.CurrentIndex())
	require.Equal(t, "First, item 1 of 2", mem.Last())

	m.HandleInput(constants.KeyDown)
	require.True(t, m.HandleInput(constants.KeyDown))
	require.Equal(t, 1, m.CurrentIndex())
	require.Equal(t, "Last, item 2 of 2", mem.Last())
}

func TestMenuSkipsInvisibleItems(t *testing.T) {
	mem := &speech.Memory{}
	m := NewMenu("Main", mem)
	hidden := false
	mid := NewItem("Continue", nil)
	mid.Visible = func() bool { return !hidden }
	m.AddOptions(NewItem("Start Run", nil), mid, NewItem("Quit", nil))

	require.True(t, m.HandleInput(constants.KeyDown))
	require.Equal(t, "Continue, item 2 of 3", mem.Last())

	m.HandleInput(constants.KeyUp)
	hidden = true

	// Middle item vanished: Down lands on Quit, counted over 2 visible.
	require.True(t, m.HandleInput(constants.KeyDown))
	require.Equal(t, "Quit, item 2 of 2", mem.Last())
	require.Equal(t, 2, m.CurrentIndex())
}

func TestMenuVisibleWhenOverridesPredicate(t *testing.T) {
	mem := &speech.Memory{}
	m := NewMenu("Main", mem)
	it := NewItem("Secret", nil)
	it.Visible = func() bool { return false }
	it.VisibleWhen = atomic.NewBool(true)
	m.AddOptions(NewItem("First", nil), it)

	require.True(t, m.HandleInput(constants.KeyDown))
	require.Equal(t, "Secret, item 2 of 2", mem.Last())

	it.VisibleWhen.Store(false)
	require.True(t, m.HandleInput(constants.KeyUp))
	require.Equal(t, "First, item 1 of 1", mem.Last())
}

func TestMenuReadSuppressedWhenCurrentInvisible(t *testing.T) {
	mem := &speech.Memory{}
	m := NewMenu("Main", mem)
	visible := true
	it := NewItem("Flaky", nil)
	it.Visible = func() bool { return visible }
	m.AddOption(it)

	m.Read()
	require.Equal(t, "Flaky, item 1 of 1", mem.Last())

	mem.Reset()
	visible = false
	m.Read()
	require.Empty(t, mem.Spoken)
}

func TestMenuReadSideEffectBeforeText(t *testing.T) {
	mem := &speech.Memory{}
	m := NewMenu("Main", mem)
	value := "stale"
	it := &Item{
		Text:   func() string { return value },
		OnRead: func() { value = "fresh" },
	}
	m.AddOption(it)

	m.Read()
	require.Equal(t, "fresh, item 1 of 1", mem.Last())
}

func TestMenuHomeEndJumpVisibleEdges(t *testing.T) {
	mem := &speech.Memory{}
	m := NewMenu("Main", mem)
	last := NewItem("Hidden Last", nil)
	last.Visible = func() bool { return false }
	m.AddOptions(NewItem("First", nil), NewItem("Middle", nil), last)

	require.True(t, m.HandleInput(constants.KeyEnd))
	require.Equal(t, "Middle, item 2 of 2", mem.Last())

	require.True(t, m.HandleInput(constants.KeyHome))
	require.Equal(t, "First, item 1 of 2", mem.Last())
}

func TestMenuPageMovement(t *testing.T) {
	mem := &speech.Memory{}
	m := NewMenu("Main", mem)
	names := []string{
		"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N", "O",
	}
	for _, name := range names {
		m.AddOption(NewItem(name, nil))
	}

	require.True(t, m.HandleInput(constants.KeyPageDown))
	require.Equal(t, "K, item 11 of 15", mem.Last())

	// Second page down clamps to the last item.
	require.True(t, m.HandleInput(constants.KeyPageDown))
	require.Equal(t, "O, item 15 of 15", mem.Last())

	require.True(t, m.HandleInput(constants.KeyPageUp))
	require.Equal(t, "E, item 5 of 15", mem.Last())

	require.True(t, m.HandleInput(constants.KeyPageUp))
	require.Equal(t, "A, item 1 of 15", mem.Last())
}

func TestMenuEmptyIgnoresInput(t *testing.T) {
	mem := &speech.Memory{}
	m := NewMenu("Main", mem)

	require.False(t, m.HandleInput(constants.KeyDown))
	require.False(t, m.HandleInput(constants.KeyConfirm))
	require.False(t, m.HandleInput(constants.KeyHome))
	require.Empty(t, mem.Spoken)
}

func TestMenuConfirmFiresAction(t *testing.T) {
	m := NewMenu("Main", nil)
	fired := false
	m.AddOption(NewItem("Start Run", func() { fired = true }))

	require.True(t, m.HandleInput(constants.KeyConfirm))
	require.True(t, fired)
}

func TestMenuConfirmWithoutActionIgnored(t *testing.T) {
	m := NewMenu("Main", nil)
	m.AddOption(NewItem("Label Only", nil))

	require.False(t, m.HandleInput(constants.KeyConfirm))
}

func TestMenuAdjustReReads(t *testing.T) {
	mem := &speech.Memory{}
	m := NewMenu("Options", mem)
	volume := 50
	m.AddOption(&Item{
		Text:     func() string { return "Volume" },
		OnAdjust: func(dir int) { volume += dir * 10 },
	})

	require.True(t, m.HandleInput(constants.KeyRight))
	require.Equal(t, 60, volume)
	require.Equal(t, "Volume, item 1 of 1", mem.Last())

	require.True(t, m.HandleInput(constants.KeyLeft))
	require.Equal(t, 50, volume)
}

func TestMenuAdjustWithoutActionIgnored(t *testing.T) {
	m := NewMenu("Main", nil)
	m.AddOption(NewItem("Plain", nil))

	require.False(t, m.HandleInput(constants.KeyLeft))
	require.False(t, m.HandleInput(constants.KeyRight))
}

func TestMenuBackCallback(t *testing.T) {
	m := NewMenu("Sub", nil)
	m.AddOption(NewItem("Entry", nil))

	require.False(t, m.HandleInput(constants.KeyBack))

	called := false
	m.SetOnBack(func() { called = true })
	require.True(t, m.HandleInput(constants.KeyBack))
	require.True(t, called)
}

func TestMenuPanickingPredicateHidesItem(t *testing.T) {
	mem := &speech.Memory{}
	m := NewMenu("Main", mem)
	bad := NewItem("Broken", nil)
	bad.Visible = func() bool { panic("host object gone") }
	m.AddOptions(NewItem("First", nil), bad)

	require.True(t, m.HandleInput(constants.KeyDown))
	require.Equal(t, "First, item 1 of 1", mem.Last())
}

func TestMenuClearResetsCursor(t *testing.T) {
	m := NewMenu("Main", nil)
	m.AddOptions(NewItem("A", nil), NewItem("B", nil))
	m.SetIndex(1)

	m.Clear()
	require.Equal(t, 0, m.Len())
	require.Equal(t, 0, m.CurrentIndex())
	require.Nil(t, m.Current())
}
