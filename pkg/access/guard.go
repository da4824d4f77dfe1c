package access

import "github.com/oasis1701/bazaar-access-sub001/pkg/access/internal"

// Thin wrappers over the internal host-call guard, so call sites stay short.

func guard(op string, fn func()) bool {
	return internal.Guard(op, fn)
}

func guardBool(op string, fallback bool, fn func() bool) bool {
	return internal.GuardValue(op, fallback, fn)
}

func guardString(op string, fallback string, fn func() string) string {
	return internal.GuardValue(op, fallback, fn)
}
