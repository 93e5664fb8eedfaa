package style

// FontFamilyName is the single family every text element uses.
const FontFamilyName = "TimesNewRoman"

const (
	defaultFontSize = "16px"
	defaultColour   = "rgba(0,0,0,0.7)"
	slateBackground = "rgba(61, 73, 95, 0.75)"
	defaultLength   = "auto"
)

// Display picks the display mode. flex wins over inlineblock.
func Display(f Flags) Fragment {
	switch {
	case f.Flex:
		return Declaration("display", "flex")
	case f.InlineBlock:
		return Declaration("display", "inline-block")
	default:
		return Declaration("display", "block")
	}
}

// FlexControls emits flex-direction, align-items and justify-content. A
// control that resolves to nothing is left out of the fragment.
func FlexControls(f Flags) Fragment {
	var direction, align, justify Fragment

	if f.RowReverse {
		direction = Declaration("flex-direction", "row-reverse")
	}
	if f.CenterBoth || f.AlignCenter {
		align = Declaration("align-items", "center")
	}

	switch {
	case f.CenterBoth || f.JustifyCenter:
		justify = Declaration("justify-content", "center")
	case f.JustifySpaceBetween:
		justify = Declaration("justify-content", "space-between")
	}

	return Join(direction, align, justify)
}

// ElementSizing emits all six box dimensions, each defaulting to auto. Values
// are emitted verbatim.
func ElementSizing(f Flags) Fragment {
	return Join(
		Declaration("width", lengthOrAuto(f.Width)),
		Declaration("height", lengthOrAuto(f.Height)),
		Declaration("min-width", lengthOrAuto(f.MinWidth)),
		Declaration("min-height", lengthOrAuto(f.MinHeight)),
		Declaration("max-width", lengthOrAuto(f.MaxWidth)),
		Declaration("max-height", lengthOrAuto(f.MaxHeight)),
	)
}

func lengthOrAuto(v string) string {
	if v == "" {
		return defaultLength
	}
	return v
}

// FontFamily always resolves to the house font. The title flag is accepted
// and has no effect.
func FontFamily(Flags) Fragment {
	return Declaration("font-family", FontFamilyName)
}

// FontSizeFor maps a size step to its pixel value; unknown steps get 16px.
func FontSizeFor(size FontSize) string {
	switch size {
	case FontSizeTitle:
		return "40px"
	case FontSizeSubtitle:
		return "32px"
	case FontSizeLead:
		return "24px"
	case FontSizeSmall:
		return "12px"
	case FontSizeXSmall:
		return "8px"
	default:
		return defaultFontSize
	}
}

func FontSizeOf(f Flags) Fragment {
	return Declaration("font-size", FontSizeFor(f.FontSize))
}

func FontWeightOf(f Flags) Fragment {
	switch f.FontWeight {
	case FontWeightBold:
		return Declaration("font-weight", "bold")
	default:
		return Declaration("font-weight", "unset")
	}
}

// TextAlign centres text when asked and otherwise leaves alignment to
// earlier rules.
func TextAlign(f Flags) Fragment {
	if f.Center {
		return Declaration("text-align", "center")
	}
	return ""
}

func ColourOf(f Flags) Fragment {
	switch f.Colour {
	case ColourBlue:
		return Declaration("color", "blue")
	case ColourRed:
		return Declaration("color", "red")
	case ColourWhite:
		return Declaration("color", "white")
	default:
		return Declaration("color", defaultColour)
	}
}

// BackgroundColour has no default: an unknown or missing value emits nothing.
func BackgroundColour(f Flags) Fragment {
	switch f.BGC {
	case BackgroundSlate:
		return Declaration("background-color", slateBackground)
	default:
		return ""
	}
}

func BackgroundImage(f Flags) Fragment {
	if f.BGI == "" {
		return ""
	}
	return Declaration("background-image", "url("+f.BGI+")")
}
