package style

import "strings"

// StepKind says where a step's declarations land.
type StepKind int

const (
	// StepDeclarations adds declarations to the element itself.
	StepDeclarations StepKind = iota
	// StepMedia wraps declarations in a breakpoint.
	StepMedia
	// StepNested targets a child selector of the element.
	StepNested
)

// Step is one entry of a template's ordered composition.
type Step struct {
	Kind       StepKind
	Breakpoint Breakpoint
	Selector   string
	Producers  []Resolver
}

// Use adds resolver output as element declarations.
func Use(producers ...Resolver) Step {
	return Step{Kind: StepDeclarations, Producers: producers}
}

// Literal adds a fixed declaration.
func Literal(property, value string) Step {
	return Use(Const(Declaration(property, value)))
}

// Media scopes resolver output to a breakpoint.
func Media(b Breakpoint, producers ...Resolver) Step {
	return Step{Kind: StepMedia, Breakpoint: b, Producers: producers}
}

// Nested scopes resolver output to a child selector. A leading "&" in the
// selector stands for the element itself.
func Nested(selector string, producers ...Resolver) Step {
	return Step{Kind: StepNested, Selector: selector, Producers: producers}
}

func (s Step) prelude() string {
	switch s.Kind {
	case StepMedia:
		return s.Breakpoint.Query()
	case StepNested:
		return s.Selector
	default:
		return ""
	}
}

// Section is a run of resolved fragments sharing one prelude.
type Section struct {
	Kind      StepKind
	Prelude   string
	Fragments []Fragment
}

// Body joins the section's fragments.
func (s Section) Body() Fragment {
	return Join(s.Fragments...)
}

// Fragment renders the section in nested block form.
func (s Section) Fragment() Fragment {
	if s.Kind == StepDeclarations {
		return s.Body()
	}
	return Fragment(s.Prelude + " { " + string(s.Body()) + " }")
}

// Template is a named, ordered composition of steps bound to an HTML element.
type Template struct {
	Name    string
	Element string
	Steps   []Step
}

// Sections resolves every step against f. Adjacent declaration steps share a
// section; media and nested steps that resolve to nothing are dropped. Step
// order is kept.
func (t Template) Sections(f Flags) []Section {
	var sections []Section

	for _, step := range t.Steps {
		var fragments []Fragment
		for _, produce := range step.Producers {
			if frag := produce(f); !frag.IsEmpty() {
				fragments = append(fragments, frag)
			}
		}
		if len(fragments) == 0 {
			continue
		}

		if step.Kind == StepDeclarations {
			if n := len(sections); n > 0 && sections[n-1].Kind == StepDeclarations {
				sections[n-1].Fragments = append(sections[n-1].Fragments, fragments...)
				continue
			}
		}

		sections = append(sections, Section{
			Kind:      step.Kind,
			Prelude:   step.prelude(),
			Fragments: fragments,
		})
	}

	return sections
}

// Resolve returns the template's block for f in nested form, fragments in
// step order.
func (t Template) Resolve(f Flags) Fragment {
	sections := t.Sections(f)
	parts := make([]Fragment, 0, len(sections))
	for _, s := range sections {
		parts = append(parts, s.Fragment())
	}
	return Join(parts...)
}

// Scope flattens sections into plain CSS rules for selector. Rules come out in
// section order, so declarations that follow a media block get a rule of
// their own and still take precedence over it.
func Scope(selector string, sections []Section) string {
	var b strings.Builder

	for _, s := range sections {
		switch s.Kind {
		case StepMedia:
			b.WriteString(s.Prelude)
			b.WriteString(" {\n")
			writeRule(&b, selector, s.Fragments, "  ")
			b.WriteString("}\n")
		case StepNested:
			writeRule(&b, childSelector(selector, s.Prelude), s.Fragments, "")
		default:
			writeRule(&b, selector, s.Fragments, "")
		}
	}

	return b.String()
}

func writeRule(b *strings.Builder, selector string, fragments []Fragment, indent string) {
	b.WriteString(indent)
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, frag := range fragments {
		b.WriteString(indent)
		b.WriteString("  ")
		b.WriteString(strings.TrimSpace(string(frag)))
		b.WriteString("\n")
	}
	b.WriteString(indent)
	b.WriteString("}\n")
}

// childSelector scopes child under every selector of a grouped parent, so
// ".a, .b" with "*" gives ".a *, .b *".
func childSelector(parent, child string) string {
	parts := splitSelectorList(parent)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.Contains(child, "&") {
			out = append(out, strings.ReplaceAll(child, "&", p))
			continue
		}
		out = append(out, p+" "+child)
	}
	return strings.Join(out, ", ")
}

// splitSelectorList splits on commas outside parentheses, brackets and
// quotes, as in ":is(.a, .b)" or "[title='a,b']".
func splitSelectorList(list string) []string {
	var (
		parts []string
		depth int
		quote rune
		start int
	)

	for i, r := range list {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'', r == '"':
			quote = r
		case r == '(', r == '[':
			depth++
		case r == ')', r == ']':
			if depth > 0 {
				depth--
			}
		case r == ',' && depth == 0:
			if part := strings.TrimSpace(list[start:i]); part != "" {
				parts = append(parts, part)
			}
			start = i + 1
		}
	}
	if part := strings.TrimSpace(list[start:]); part != "" {
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return []string{strings.TrimSpace(list)}
	}
	return parts
}
