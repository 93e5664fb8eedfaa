package render

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/stylekit/internal/config"
	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// Service turns validated sheets into stylesheets.
type Service struct {
	log    *logger.Logger
	linter Linter
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(log *logger.Logger) Option {
	return func(s *Service) { s.log = log }
}

func WithLinter(l Linter) Option {
	return func(s *Service) { s.linter = l }
}

// NewService constructs a Service that lints with ParserLinter.
func NewService(opts ...Option) *Service {
	s := &Service{linter: ParserLinter{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result is a rendered stylesheet.
type Result struct {
	CSS          string
	Elements     int
	Globals      bool
	Linted       bool
	Rules        int
	Declarations int
}

// Render writes the global rules once, then each element's scoped rules in
// document order, and lints the result. Each call renders a separate
// document with its own injector, so every result carries the global rules
// exactly once.
func (s *Service) Render(ctx context.Context, cfg *config.Config) (*Result, error) {
	if cfg == nil {
		return nil, stylekiterrors.NewValidationError("", "sheet is nil", nil)
	}

	log := s.log.WithFields(map[string]any{"sheet": cfg.Name})
	sheet := &style.Sheet{}
	result := &Result{}

	if !cfg.Settings.SkipGlobals {
		result.Globals = style.NewInjector().Initialize(sheet, cfg.FontURL)
		log.Debug("global rules injected")
	}

	for _, el := range cfg.Elements {
		if err := ctx.Err(); err != nil {
			return nil, stylekiterrors.NewRenderError(el.Selector, err)
		}

		css, err := RenderElement(el)
		if err != nil {
			log.Error(err, "element failed")
			return nil, err
		}
		sheet.Inject(css)
		result.Elements++
		log.WithElement(el.Selector, el.Template).Debug("element rendered")
	}

	result.CSS = sheet.String()

	if cfg.Settings.SkipLint || s.linter == nil {
		log.Info("stylesheet rendered without lint")
		return result, nil
	}

	report, err := s.linter.Lint(result.CSS)
	if err != nil {
		log.Error(err, "lint failed")
		return nil, stylekiterrors.NewRenderError("", fmt.Errorf("lint: %w", err))
	}
	result.Linted = true
	result.Rules = report.Rules
	result.Declarations = report.Declarations

	log.WithFields(map[string]any{"elements": result.Elements, "rules": result.Rules}).Info("stylesheet rendered")
	return result, nil
}

// RenderElement resolves one element and scopes it under its selector.
func RenderElement(el config.Element) (string, error) {
	tmpl, ok := style.Lookup(el.Template)
	if !ok {
		return "", stylekiterrors.NewRenderError(el.Selector, fmt.Errorf("unknown template %q", el.Template))
	}
	return style.Scope(el.Selector, tmpl.Sections(el.Flags)), nil
}
