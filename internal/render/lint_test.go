package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

func TestParserLinterAcceptsGlobalRules(t *testing.T) {
	t.Parallel()

	report, err := ParserLinter{}.Lint(style.GlobalRules("/fonts/Font.ttf"))
	require.NoError(t, err)
	require.Equal(t, 3, report.Rules)
	require.Equal(t, 6, report.Declarations)
}

func TestParserLinterAcceptsScopedTemplates(t *testing.T) {
	t.Parallel()

	flags := style.Flags{Flex: true, CenterBoth: true, SpaceChildren: true, Margin: true, Center: true, BGI: "/img/a.png"}
	for _, tmpl := range style.Templates() {
		css := style.Scope(".x", tmpl.Sections(flags))
		_, err := ParserLinter{}.Lint(css)
		require.NoError(t, err, tmpl.Name)
	}
}

func TestParserLinterRejectsBrokenCSS(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"stray brace":   ".a { color: red; }\n}",
		"missing value": ".a { width: ; }",
		"missing name":  ".a { : red; }",
	}

	for name, css := range tests {
		css := css
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := ParserLinter{}.Lint(css)
			require.Error(t, err)
		})
	}
}
