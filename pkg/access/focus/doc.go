// Package focus tracks which navigable surface currently receives input.
//
// A Manager holds one base Screen and a last-in-first-out stack of modal UIs.
// The top of the stack always takes input priority over the Screen; setting a
// new Screen is a full-screen transition and unconditionally empties the
// stack. There is no inheritance hierarchy: anything implementing Focusable
// qualifies as a Screen or a UI.
//
// # Basic Usage
//
//	mgr := focus.NewManager(speaker)
//
//	mgr.SetScreen(shopScreen)   // base surface, stack cleared
//	mgr.ShowUI(confirmPopup)    // modal above the screen
//
//	// Every decoded key goes through the manager; it dispatches to the
//	// top of the stack, or to the screen when the stack is empty.
//	consumed := mgr.HandleInput(constants.KeyDown)
//
//	mgr.PopUI() // closes confirmPopup, refocuses shopScreen
//
// # Stale references
//
// The manager holds references into a live, externally mutated object graph
// and never assumes they are still good: IsValid is re-checked immediately
// before every dispatch. An invalid UI is popped instead of receiving input;
// an invalid Screen is cleared. Both heal silently — a destroyed popup is
// routine during game screen transitions, not an error.
//
// # Returning flag
//
// When focus falls back to a lower surface because a popup closed, the
// manager sets a transient flag for the duration of that OnFocus call
// (see [Manager.Returning]). Surfaces use it to re-announce their current
// position instead of resetting to their default section.
package focus
