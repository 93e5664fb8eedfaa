package style

import "fmt"

// Breakpoint is a named viewport-width condition.
type Breakpoint int

const (
	// BreakpointPhone covers viewports up to 640px wide.
	BreakpointPhone Breakpoint = iota
	// BreakpointDesktop covers viewports from 641px up.
	BreakpointDesktop
)

const phoneMaxWidth = 640

func (b Breakpoint) String() string {
	switch b {
	case BreakpointPhone:
		return "phone"
	case BreakpointDesktop:
		return "desktop"
	default:
		return fmt.Sprintf("breakpoint(%d)", int(b))
	}
}

// Query returns the media query prelude for the breakpoint.
func (b Breakpoint) Query() string {
	switch b {
	case BreakpointDesktop:
		return fmt.Sprintf("@media (min-width: %dpx)", phoneMaxWidth+1)
	default:
		return fmt.Sprintf("@media (max-width: %dpx)", phoneMaxWidth)
	}
}

// Matches reports whether a viewport of the given width in pixels activates
// the breakpoint. Exactly one breakpoint matches any width.
func (b Breakpoint) Matches(width int) bool {
	switch b {
	case BreakpointDesktop:
		return width > phoneMaxWidth
	default:
		return width <= phoneMaxWidth
	}
}

// Wrap scopes a fragment to the breakpoint. An empty fragment stays empty.
func (b Breakpoint) Wrap(body Fragment) Fragment {
	if body.IsEmpty() {
		return ""
	}
	return Fragment(b.Query() + " { " + string(Join(body)) + " }")
}

// WrapBreakpoint returns a resolver that emits the producers' output inside
// the breakpoint's media block.
func WrapBreakpoint(b Breakpoint, producers ...Resolver) Resolver {
	return func(f Flags) Fragment {
		return b.Wrap(resolveAll(producers, f))
	}
}

func resolveAll(producers []Resolver, f Flags) Fragment {
	parts := make([]Fragment, 0, len(producers))
	for _, p := range producers {
		parts = append(parts, p(f))
	}
	return Join(parts...)
}
