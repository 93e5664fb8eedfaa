package style

import (
	"strings"
	"sync"
)

// Sink receives global CSS text.
type Sink interface {
	Inject(css string)
}

// Sheet is an in-memory Sink. It is safe for concurrent use.
type Sheet struct {
	mu    sync.Mutex
	rules []string
}

// Inject appends css as one entry. Blank input is ignored.
func (s *Sheet) Inject(css string) {
	if strings.TrimSpace(css) == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = append(s.rules, css)
}

// Len returns the number of injected entries.
func (s *Sheet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rules)
}

// String returns all entries in injection order.
func (s *Sheet) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Join(s.rules, "")
}

// GlobalRules returns the base resets, the @font-face rule for fontURL and
// the flash keyframes. fontURL is embedded verbatim.
func GlobalRules(fontURL string) string {
	var b strings.Builder

	b.WriteString("html, body {\n  margin: 0;\n  padding: 0;\n}\n")
	b.WriteString("@font-face {\n  font-family: Font;\n  src: url('")
	b.WriteString(fontURL)
	b.WriteString("') format('opentype');\n}\n")
	b.WriteString("@keyframes flash {\n")
	b.WriteString("  0%, 100% {\n    opacity: 0;\n  }\n")
	b.WriteString("  50% {\n    opacity: 1;\n  }\n")
	b.WriteString("}\n")

	return b.String()
}

// Injector registers the global rules at most once.
type Injector struct {
	once sync.Once
}

// NewInjector returns an injector that has not fired yet.
func NewInjector() *Injector {
	return &Injector{}
}

// Initialize writes the global rules to sink on the first call and reports
// whether this call did so. Later calls are no-ops regardless of arguments.
func (i *Injector) Initialize(sink Sink, fontURL string) bool {
	fired := false
	i.once.Do(func() {
		sink.Inject(GlobalRules(fontURL))
		fired = true
	})
	return fired
}

var globalInjector = NewInjector()

// InitializeGlobalStyles runs the process-wide injector.
func InitializeGlobalStyles(sink Sink, fontURL string) bool {
	return globalInjector.Initialize(sink, fontURL)
}
