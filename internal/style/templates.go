package style

import (
	"sort"
	"strings"
)

// Layout elements

var Container = Template{
	Name:    "container",
	Element: "div",
	Steps: []Step{
		Use(Display, BackgroundColour, BackgroundImage, FlexControls),
		Literal("max-width", "1124px"),
		Literal("margin", "0 auto"),
		Literal("padding", "0 24px"),
	},
}

var Wrapper = Template{
	Name:    "wrapper",
	Element: "div",
	Steps: []Step{
		Use(Display, BackgroundColour, BackgroundImage, FlexControls, ElementSizing),
		Nested("*", childSpacing("24px")),
		Nested("*:first-child", childSpacing("0px")),
		Use(wrapperMargin, wrapperPadding, wrapperOverflow),
	},
}

func childSpacing(gap string) Resolver {
	return func(f Flags) Fragment {
		if f.SpaceChildren {
			return Declaration("margin-left", gap)
		}
		return ""
	}
}

func wrapperMargin(f Flags) Fragment {
	switch {
	case f.Margin:
		return Declaration("margin", "24px 0")
	case f.ThinMargin:
		return Declaration("margin", "16px 0")
	default:
		return ""
	}
}

func wrapperPadding(f Flags) Fragment {
	switch {
	case f.Padding:
		return Declaration("padding", "24px 0")
	case f.ThinPadding:
		return Declaration("padding", "16px 0")
	default:
		return ""
	}
}

func wrapperOverflow(f Flags) Fragment {
	if f.OverflowAuto {
		return Declaration("overflow", "auto")
	}
	return ""
}

// Text elements

var Title = Template{
	Name:    "title",
	Element: "h1",
	Steps: []Step{
		Use(FontFamily, FontSizeOf, ColourOf),
		Literal("margin", "24px 0 8px"),
	},
}

// SubTitle pins its size after the size resolver, so the fontsize flag never
// changes it.
var SubTitle = Template{
	Name:    "subtitle",
	Element: "h3",
	Steps: []Step{
		Use(FontFamily, FontSizeOf, ColourOf),
		Literal("font-size", "32px"),
		Literal("margin", "16px 0 8px"),
	},
}

// P justifies text on phones unless it is centred. TextAlign must stay after
// the media step.
var P = Template{
	Name:    "p",
	Element: "p",
	Steps: []Step{
		Use(FontFamily, FontSizeOf, FontWeightOf, ColourOf),
		Literal("margin", "8px 0"),
		Media(BreakpointPhone, phoneTextAlign),
		Use(TextAlign),
	},
}

func phoneTextAlign(f Flags) Fragment {
	if f.Center {
		return Declaration("text-align", "center")
	}
	return Declaration("text-align", "justify")
}

var Text = Template{
	Name:    "text",
	Element: "span",
	Steps: []Step{
		Use(FontFamily, FontSizeOf, FontWeightOf, ColourOf, TextAlign),
	},
}

var templates = map[string]Template{
	Container.Name: Container,
	Wrapper.Name:   Wrapper,
	Title.Name:     Title,
	SubTitle.Name:  SubTitle,
	P.Name:         P,
	Text.Name:      Text,
}

// Lookup finds a template by name, case-insensitively.
func Lookup(name string) (Template, bool) {
	t, ok := templates[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// Templates returns every template sorted by name.
func Templates() []Template {
	out := make([]Template, 0, len(templates))
	for _, t := range templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// TemplateNames returns the sorted template names.
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
