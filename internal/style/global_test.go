package style

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGlobalRules(t *testing.T) {
	t.Parallel()

	css := GlobalRules("/static/fonts/Font.ttf")
	require.Contains(t, css, "html, body {")
	require.Contains(t, css, "src: url('/static/fonts/Font.ttf') format('opentype');")
	require.Contains(t, css, "font-family: Font;")
	require.Contains(t, css, "@keyframes flash {")
	require.Contains(t, css, "0%, 100% {\n    opacity: 0;")
	require.Contains(t, css, "50% {\n    opacity: 1;")
}

func TestInjectorFiresOnce(t *testing.T) {
	t.Parallel()

	sheet := &Sheet{}
	injector := NewInjector()

	require.True(t, injector.Initialize(sheet, "a.ttf"))
	require.False(t, injector.Initialize(sheet, "b.ttf"))
	require.False(t, injector.Initialize(&Sheet{}, "c.ttf"))

	require.Equal(t, 1, sheet.Len())
	require.Equal(t, 1, strings.Count(sheet.String(), "@keyframes flash"))
	require.NotContains(t, sheet.String(), "b.ttf")
}

func TestInjectorConcurrentInitialize(t *testing.T) {
	t.Parallel()

	sheet := &Sheet{}
	injector := NewInjector()

	var wg sync.WaitGroup
	fired := make(chan bool, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fired <- injector.Initialize(sheet, "font.ttf")
		}()
	}
	wg.Wait()
	close(fired)

	count := 0
	for f := range fired {
		if f {
			count++
		}
	}
	require.Equal(t, 1, count)
	require.Equal(t, 1, sheet.Len())
}

func TestSheetIgnoresBlankInput(t *testing.T) {
	t.Parallel()

	sheet := &Sheet{}
	sheet.Inject("  \n")
	sheet.Inject("a { color: red; }\n")
	sheet.Inject("b { color: blue; }\n")

	require.Equal(t, 2, sheet.Len())
	require.Equal(t, "a { color: red; }\nb { color: blue; }\n", sheet.String())
}

func TestInitializeGlobalStylesWritesOnce(t *testing.T) {
	first, second := &Sheet{}, &Sheet{}

	require.True(t, InitializeGlobalStyles(first, "/fonts/Font.ttf"))
	require.False(t, InitializeGlobalStyles(second, "/fonts/Other.ttf"))

	require.Equal(t, 1, first.Len()+second.Len())
	require.Equal(t, GlobalRules("/fonts/Font.ttf"), first.String())
	require.Zero(t, second.Len())
}
