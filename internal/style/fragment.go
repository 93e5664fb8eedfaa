package style

import "strings"

// Fragment is zero or more CSS declarations, each written as
// "property: value;" and separated by a single space.
type Fragment string

// IsEmpty reports whether the fragment carries no declarations.
func (f Fragment) IsEmpty() bool {
	return strings.TrimSpace(string(f)) == ""
}

func (f Fragment) String() string {
	return string(f)
}

// Resolver maps a flag bag to a fragment. Resolvers must be pure.
type Resolver func(Flags) Fragment

// Declaration formats a single declaration.
func Declaration(property, value string) Fragment {
	return Fragment(property + ": " + value + ";")
}

// Join concatenates fragments in order, skipping empty ones.
func Join(fragments ...Fragment) Fragment {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f.IsEmpty() {
			continue
		}
		parts = append(parts, strings.TrimSpace(string(f)))
	}
	return Fragment(strings.Join(parts, " "))
}

// Const returns a resolver that ignores its flags.
func Const(fragment Fragment) Resolver {
	return func(Flags) Fragment { return fragment }
}
