package render

import (
	"fmt"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// LintReport summarises a stylesheet that passed linting.
type LintReport struct {
	// Rules counts top-level rules.
	Rules int
	// Declarations counts declarations at every nesting level.
	Declarations int
}

// Linter checks generated CSS before it leaves the service.
type Linter interface {
	Lint(text string) (LintReport, error)
}

// ParserLinter parses the stylesheet and rejects declarations without a
// value.
type ParserLinter struct{}

func (ParserLinter) Lint(text string) (LintReport, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return LintReport{}, err
	}

	report := LintReport{Rules: len(sheet.Rules)}
	if err := walkRules(sheet.Rules, &report); err != nil {
		return LintReport{}, err
	}
	return report, nil
}

func walkRules(rules []*css.Rule, report *LintReport) error {
	for _, rule := range rules {
		for _, decl := range rule.Declarations {
			if decl.Value == "" {
				return fmt.Errorf("%s: declaration %q has no value", rulePrelude(rule), decl.Property)
			}
			report.Declarations++
		}
		if err := walkRules(rule.Rules, report); err != nil {
			return err
		}
	}
	return nil
}

func rulePrelude(rule *css.Rule) string {
	if rule.Kind == css.AtRule {
		return rule.Name + " " + rule.Prelude
	}
	return rule.Prelude
}
