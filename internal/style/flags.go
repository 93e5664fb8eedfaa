package style

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// FontSize names one of the type scale steps.
type FontSize string

const (
	FontSizeTitle    FontSize = "title"
	FontSizeSubtitle FontSize = "subtitle"
	FontSizeLead     FontSize = "lead"
	FontSizeSmall    FontSize = "small"
	FontSizeXSmall   FontSize = "xsmall"
)

// FontWeight names a supported font weight.
type FontWeight string

const FontWeightBold FontWeight = "bold"

// Colour names a supported text colour.
type Colour string

const (
	ColourBlue  Colour = "blue"
	ColourRed   Colour = "red"
	ColourWhite Colour = "white"
)

// Background names a supported background colour.
type Background string

const BackgroundSlate Background = "slate"

// Flags is the per-element flag bag that drives style resolution. The zero
// value is valid and resolves to the documented defaults. Flags are owned by
// the caller; resolvers never retain them.
type Flags struct {
	// Display
	Flex        bool `yaml:"flex,omitempty"`
	InlineBlock bool `yaml:"inlineblock,omitempty"`

	// Flex controls
	RowReverse          bool `yaml:"rowreverse,omitempty"`
	CenterBoth          bool `yaml:"centerboth,omitempty"`
	AlignCenter         bool `yaml:"aligncenter,omitempty"`
	JustifyCenter       bool `yaml:"justifycenter,omitempty"`
	JustifySpaceBetween bool `yaml:"justifyspacebetween,omitempty"`

	// Sizing, CSS lengths
	Width     string `yaml:"width,omitempty" validate:"omitempty,css_length"`
	Height    string `yaml:"height,omitempty" validate:"omitempty,css_length"`
	MinWidth  string `yaml:"minwidth,omitempty" validate:"omitempty,css_length"`
	MinHeight string `yaml:"minheight,omitempty" validate:"omitempty,css_length"`
	MaxWidth  string `yaml:"maxwidth,omitempty" validate:"omitempty,css_length"`
	MaxHeight string `yaml:"maxheight,omitempty" validate:"omitempty,css_length"`

	// Typography
	Title      bool       `yaml:"title,omitempty"`
	FontSize   FontSize   `yaml:"fontsize,omitempty"`
	FontWeight FontWeight `yaml:"fontweight,omitempty"`
	Center     bool       `yaml:"center,omitempty"`
	Colour     Colour     `yaml:"colour,omitempty"`

	// Background
	BGC Background `yaml:"bgc,omitempty"`
	BGI string     `yaml:"bgi,omitempty"`

	// Wrapper spacing
	SpaceChildren bool `yaml:"spacechildren,omitempty"`
	Margin        bool `yaml:"margin,omitempty"`
	ThinMargin    bool `yaml:"thinmargin,omitempty"`
	Padding       bool `yaml:"padding,omitempty"`
	ThinPadding   bool `yaml:"thinpadding,omitempty"`
	OverflowAuto  bool `yaml:"overflowauto,omitempty"`
}

// FlagKind classifies how a flag is set.
type FlagKind int

const (
	FlagBool FlagKind = iota
	FlagEnum
	FlagText
)

func (k FlagKind) String() string {
	switch k {
	case FlagBool:
		return "bool"
	case FlagEnum:
		return "enum"
	case FlagText:
		return "text"
	default:
		return "unknown"
	}
}

// FlagSpec documents one recognized flag.
type FlagSpec struct {
	Name    string
	Kind    FlagKind
	Options []string
	Default string
}

var flagSpecs = []FlagSpec{
	{Name: "flex", Kind: FlagBool, Default: "false"},
	{Name: "inlineblock", Kind: FlagBool, Default: "false"},
	{Name: "rowreverse", Kind: FlagBool, Default: "false"},
	{Name: "centerboth", Kind: FlagBool, Default: "false"},
	{Name: "aligncenter", Kind: FlagBool, Default: "false"},
	{Name: "justifycenter", Kind: FlagBool, Default: "false"},
	{Name: "justifyspacebetween", Kind: FlagBool, Default: "false"},
	{Name: "width", Kind: FlagText, Default: "auto"},
	{Name: "height", Kind: FlagText, Default: "auto"},
	{Name: "minwidth", Kind: FlagText, Default: "auto"},
	{Name: "minheight", Kind: FlagText, Default: "auto"},
	{Name: "maxwidth", Kind: FlagText, Default: "auto"},
	{Name: "maxheight", Kind: FlagText, Default: "auto"},
	{Name: "title", Kind: FlagBool, Default: "false"},
	{Name: "fontsize", Kind: FlagEnum, Options: []string{"title", "subtitle", "lead", "small", "xsmall"}, Default: "16px"},
	{Name: "fontweight", Kind: FlagEnum, Options: []string{"bold"}, Default: "unset"},
	{Name: "center", Kind: FlagBool, Default: "false"},
	{Name: "colour", Kind: FlagEnum, Options: []string{"blue", "red", "white"}, Default: "rgba(0,0,0,0.7)"},
	{Name: "bgc", Kind: FlagEnum, Options: []string{"slate"}, Default: "none"},
	{Name: "bgi", Kind: FlagText, Default: "none"},
	{Name: "spacechildren", Kind: FlagBool, Default: "false"},
	{Name: "margin", Kind: FlagBool, Default: "false"},
	{Name: "thinmargin", Kind: FlagBool, Default: "false"},
	{Name: "padding", Kind: FlagBool, Default: "false"},
	{Name: "thinpadding", Kind: FlagBool, Default: "false"},
	{Name: "overflowauto", Kind: FlagBool, Default: "false"},
}

// FlagSpecs returns every recognized flag in declaration order.
func FlagSpecs() []FlagSpec {
	out := make([]FlagSpec, len(flagSpecs))
	copy(out, flagSpecs)
	return out
}

// LookupFlag returns the spec for a flag name. Names are case-insensitive.
func LookupFlag(name string) (FlagSpec, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, spec := range flagSpecs {
		if spec.Name == name {
			return spec, true
		}
	}
	return FlagSpec{}, false
}

var (
	fieldIndexOnce sync.Once
	fieldIndex     map[string]int
)

func flagFields() map[string]int {
	fieldIndexOnce.Do(func() {
		t := reflect.TypeOf(Flags{})
		fieldIndex = make(map[string]int, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			tag := t.Field(i).Tag.Get("yaml")
			name, _, _ := strings.Cut(tag, ",")
			if name != "" {
				fieldIndex[name] = i
			}
		}
	})
	return fieldIndex
}

// Set assigns a flag by name. Only flags listed by FlagSpecs are settable;
// unknown names are ignored and reported with ok=false; a boolean flag with an unparsable value is an error.
func (f *Flags) Set(name, value string) (ok bool, err error) {
	spec, known := LookupFlag(name)
	if !known {
		return false, nil
	}
	name = spec.Name
	idx, found := flagFields()[name]
	if !found {
		return false, nil
	}

	field := reflect.ValueOf(f).Elem().Field(idx)
	switch field.Kind() {
	case reflect.Bool:
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return true, fmt.Errorf("flag %q: %w", name, err)
		}
		field.SetBool(parsed)
	case reflect.String:
		field.SetString(strings.TrimSpace(value))
	}
	return true, nil
}

// Value returns the current value of a flag as text, or "" when unset.
func (f Flags) Value(name string) string {
	idx, found := flagFields()[strings.ToLower(strings.TrimSpace(name))]
	if !found {
		return ""
	}

	field := reflect.ValueOf(f).Field(idx)
	switch field.Kind() {
	case reflect.Bool:
		if field.Bool() {
			return "true"
		}
		return ""
	default:
		return field.String()
	}
}

// ParseFlags builds a flag bag from key=value pairs. A bare key sets a boolean
// flag to true. Unrecognized keys are ignored and returned sorted so callers
// can report them.
func ParseFlags(pairs []string) (Flags, []string, error) {
	var flags Flags
	var unknown []string

	for _, pair := range pairs {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		name, value, hasValue := strings.Cut(pair, "=")
		if !hasValue {
			value = "true"
		}

		ok, err := flags.Set(name, value)
		if err != nil {
			return Flags{}, nil, err
		}
		if !ok {
			unknown = append(unknown, strings.TrimSpace(name))
		}
	}

	sort.Strings(unknown)
	return flags, unknown, nil
}
