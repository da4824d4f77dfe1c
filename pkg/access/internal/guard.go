package internal

// Guard runs fn, which calls into host-owned code. A panic inside the host
// (destroyed object, bad state mid-transition) is logged and swallowed: a
// crash here would leave the game uncontrollable for a non-sighted player.
// Returns false if fn panicked.
func Guard(op string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			GetLogger().Error("host call panicked", "op", op, "panic", r)
			ok = false
		}
	}()
	fn()
	return true
}

// GuardValue runs fn and returns its result, or fallback if fn panicked.
func GuardValue[T any](op string, fallback T, fn func() T) T {
	v := fallback
	Guard(op, func() { v = fn() })
	return v
}
