package access

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLabelFromID(t *testing.T) {
	cases := []struct {
		id   string
		want string
	}{
		{"btnStartRun", "Start Run"},
		{"buttonOpenStash", "Open Stash"},
		{"sound_volume", "Sound Volume"},
		{"drpGraphicsQuality", "Graphics Quality"},
		{"tglMusic", "Music"},
		{"HPBar", "Hp Bar"},
		{"wave3Counter", "Wave 3 Counter"},
		{"close-button", "Close Button"},
		{"", ""},
	}
	for _, c := range cases {
		require.Equal(t, c.want, labelFromID(c.id), "id %q", c.id)
	}
}

func TestSplitWords(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"StartRun", []string{"Start", "Run"}},
		{"HPBar", []string{"HP", "Bar"}},
		{"sound_volume", []string{"sound", "volume"}},
		{"wave3", []string{"wave", "3"}},
		{"a.b-c d", []string{"a", "b", "c", "d"}},
	}
	for _, c := range cases {
		require.Equal(t, c.want, splitWords(c.in), "input %q", c.in)
	}
}

func TestDeriveLabelPrefersPrecedingSibling(t *testing.T) {
	c := newFakeControl("sldVolume", "", 0, 0)
	c.preceding = []string{"Volume:", "Audio Settings"}

	label, ok := deriveLabel(c)
	require.True(t, ok)
	require.Equal(t, "Volume", label)
}

func TestDeriveLabelFallsBackThroughChain(t *testing.T) {
	// Own text beats parent text and the identifier.
	c := newFakeControl("btnX", "Continue", 0, 0)
	c.parentText = "Dialog"
	label, ok := deriveLabel(c)
	require.True(t, ok)
	require.Equal(t, "Continue", label)

	// Parent text beats the identifier.
	c = newFakeControl("btnX", "", 0, 0)
	c.parentText = "Confirm Purchase"
	label, ok = deriveLabel(c)
	require.True(t, ok)
	require.Equal(t, "Confirm Purchase", label)

	// Identifier as the last resort.
	c = newFakeControl("btnOpenStash", "", 0, 0)
	label, ok = deriveLabel(c)
	require.True(t, ok)
	require.Equal(t, "Open Stash", label)
}

func TestDeriveLabelGlyphButton(t *testing.T) {
	c := newFakeControl("", "×", 0, 0)
	label, ok := deriveLabel(c)
	require.True(t, ok)
	require.Equal(t, "close", label)
}

func TestDeriveLabelRejectsUnlabeled(t *testing.T) {
	c := newFakeControl("", "", 0, 0)
	_, ok := deriveLabel(c)
	require.False(t, ok)

	// Single-letter text is not a speakable label.
	c = newFakeControl("x", "i", 0, 0)
	_, ok = deriveLabel(c)
	require.False(t, ok)
}

func TestDeriveLabelStripsTrailingColon(t *testing.T) {
	c := newFakeControl("", "Damage:", 0, 0)
	label, ok := deriveLabel(c)
	require.True(t, ok)
	require.Equal(t, "Damage", label)
}
