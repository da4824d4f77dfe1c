// Package speech defines the sink the navigation core emits announcements to.
//
// The core assumes Speak interrupts any in-progress utterance; queuing policy
// belongs to the sink, not to the caller.
package speech

// Speaker accepts one announcement at a time.
type Speaker interface {
	Speak(text string)
}

// Func adapts an ordinary function to the Speaker interface.
type Func func(text string)

func (f Func) Speak(text string) { f(text) }

// Null discards all announcements.
type Null struct{}

func (Null) Speak(string) {}

// Memory records announcements in order. Useful for tests and for host-side
// diagnostics of what would have been spoken.
type Memory struct {
	Spoken []string
}

func (m *Memory) Speak(text string) {
	m.Spoken = append(m.Spoken, text)
}

// Last returns the most recent announcement, or "" if nothing was spoken.
func (m *Memory) Last() string {
	if len(m.Spoken) == 0 {
		return ""
	}
	return m.Spoken[len(m.Spoken)-1]
}

// Reset discards recorded announcements.
func (m *Memory) Reset() {
	m.Spoken = m.Spoken[:0]
}

// Repeater forwards announcements to an inner Speaker and retains the most
// recent one so it can be spoken again on demand.
type Repeater struct {
	inner Speaker
	last  string
}

// NewRepeater wraps sp. A nil sp behaves like Null.
func NewRepeater(sp Speaker) *Repeater {
	if sp == nil {
		sp = Null{}
	}
	return &Repeater{inner: sp}
}

func (r *Repeater) Speak(text string) {
	if text == "" {
		return
	}
	r.last = text
	r.inner.Speak(text)
}

// Repeat speaks the retained announcement again. No-op if nothing has been
// spoken yet.
func (r *Repeater) Repeat() {
	if r.last == "" {
		return
	}
	r.inner.Speak(r.last)
}

// Last returns the retained announcement.
func (r *Repeater) Last() string { return r.last }
