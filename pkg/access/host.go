package access

// The scanner never inspects host internals through reflection; the host
// implements these accessor interfaces over its live UI tree and the scanner
// only calls declared methods. Every method reads the live object at call
// time — returned values must not be cached by implementations.

// Point is a screen position. Y grows upward, matching the host scene
// coordinates; X grows rightward.
type Point struct {
	X float64
	Y float64
}

// Node is a reference into the live UI tree.
type Node interface {
	// ID returns the raw object identifier, e.g. "btnStartRun".
	ID() string
	// Exists reports whether the backing live object is still alive.
	Exists() bool
}

// Control is one live interactive control discovered by the scanner.
// A control that implements none of the capability interfaces below is a
// plain trigger (button): Activate is its only operation.
type Control interface {
	Node
	// Active reports whether the object is active in the hierarchy.
	Active() bool
	// Interactable reports whether the control currently accepts input.
	Interactable() bool
	// Position returns the control's screen position, used for scan order.
	Position() Point
	// Text returns the control's own inner text, "" if none.
	Text() string
	// ParentText returns the parent object's text, "" if none.
	ParentText() string
	// PrecedingTexts returns the texts of up to max preceding siblings,
	// nearest first. Siblings without text contribute "".
	PrecedingTexts(max int) []string
	// Activate invokes the control's primary action. Implementations
	// return ErrStale when the backing object died before the click
	// landed; the scanner heals silently instead of announcing a failure.
	Activate() error
}

// ToggleControl is a two-state control (checkbox).
type ToggleControl interface {
	Control
	On() bool
	SetOn(on bool)
}

// RangeControl is a ranged-value control (slider, volume bar).
type RangeControl interface {
	Control
	Value() float64
	Min() float64
	Max() float64
	SetValue(v float64)
}

// ChoiceControl selects one option among several (dropdown).
type ChoiceControl interface {
	Control
	Selected() int
	OptionCount() int
	Select(i int)
	SelectedText() string
}

// Tree enumerates interactive controls in the live UI.
type Tree interface {
	// Controls returns the interactive controls under root, nested ones
	// included. A nil root enumerates the whole scene, restricted to
	// active objects.
	Controls(root Node) []Control
}
