package access

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// decorativeNames is the denylist of object names that are never worth
// announcing, matched case-insensitively and exactly.
var decorativeNames = map[string]struct{}{
	"background": {},
	"frame":      {},
	"border":     {},
	"mask":       {},
	"template":   {},
	"viewport":   {},
	"scrollbar":  {},
}

// glyphWords maps single meaningful glyphs to spoken words, for icon-only
// buttons whose entire text is one symbol.
var glyphWords = map[rune]string{
	'+': "plus",
	'-': "minus",
	'−': "minus",
	'×': "close",
	'✕': "close",
	'✖': "close",
	'✓': "confirm",
	'?': "help",
	'<': "previous",
	'>': "next",
	'←': "left",
	'→': "right",
	'↑': "up",
	'↓': "down",
}

// idPrefixes are control-type prefixes stripped from raw identifiers before
// the identifier is turned into words. Longer prefixes first so "button"
// wins over "btn"-style overlaps.
var idPrefixes = []string{
	"dropdown", "checkbox", "button", "slider", "toggle",
	"drp", "btn", "tgl", "chk", "sld", "opt",
}

var labelCaser = cases.Title(language.English)

// deriveLabel builds a human label for a control, trying in order: up to 3
// preceding siblings' text (trailing colon stripped), the control's own
// text, the parent's text, and finally the raw identifier with camel-case
// boundaries split and type prefixes stripped. A trigger whose entire text
// is one recognized glyph speaks that glyph's word. Controls with no
// derivable label are rejected.
func deriveLabel(c Control) (string, bool) {
	for _, t := range c.PrecedingTexts(3) {
		if label := cleanLabel(t); validLabel(label) {
			return label, true
		}
	}

	own := strings.TrimSpace(c.Text())
	if label := cleanLabel(own); validLabel(label) {
		return label, true
	}
	if label := cleanLabel(c.ParentText()); validLabel(label) {
		return label, true
	}

	// Icon-only buttons: a single recognized glyph as the whole text.
	if isTrigger(c) {
		if word, ok := glyphWord(own); ok {
			return word, true
		}
	}

	if label := labelFromID(c.ID()); validLabel(label) {
		return label, true
	}
	return "", false
}

func isTrigger(c Control) bool {
	switch c.(type) {
	case ToggleControl, RangeControl, ChoiceControl:
		return false
	}
	return true
}

// cleanLabel trims whitespace and strips a trailing colon.
func cleanLabel(s string) string {
	return strings.TrimSuffix(strings.TrimSpace(s), ":")
}

// validLabel requires more than one rune and at least one letter.
func validLabel(s string) bool {
	if s == "" || utf8.RuneCountInString(s) < 2 {
		return false
	}
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// glyphWord returns the spoken word for a single-rune non-alphanumeric
// glyph, if it is one we recognize.
func glyphWord(s string) (string, bool) {
	if utf8.RuneCountInString(s) != 1 {
		return "", false
	}
	r, _ := utf8.DecodeRuneInString(s)
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return "", false
	}
	word, ok := glyphWords[r]
	return word, ok
}

// labelFromID turns a raw identifier like "btnStartRun" or "sound_volume"
// into "Start Run" / "Sound Volume".
func labelFromID(id string) string {
	s := strings.TrimSpace(id)
	lower := strings.ToLower(s)
	for _, p := range idPrefixes {
		if strings.HasPrefix(lower, p) && len(s) > len(p) {
			s = s[len(p):]
			break
		}
	}

	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	return labelCaser.String(strings.ToLower(strings.Join(words, " ")))
}

// splitWords breaks an identifier on separators, camel-case boundaries and
// letter/digit transitions. "HPBar" splits as "HP", "Bar".
func splitWords(s string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.':
			flush()
			continue
		case i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]):
			flush()
		case i > 0 && unicode.IsUpper(r) && i+1 < len(runes) &&
			unicode.IsUpper(runes[i-1]) && unicode.IsLower(runes[i+1]):
			// End of an acronym run: "HPBar" -> "HP" | "Bar"
			flush()
		case i > 0 && unicode.IsDigit(r) != unicode.IsDigit(runes[i-1]):
			flush()
		}
		cur = append(cur, r)
	}
	flush()
	return words
}
