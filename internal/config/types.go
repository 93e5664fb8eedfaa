package config

import (
	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

// Config is a stylekit sheet document: the elements to style and the
// settings for the global rules.
type Config struct {
	Version     string    `yaml:"version" validate:"required,semver"`
	Name        string    `yaml:"name" validate:"required,min=1,max=100"`
	Description string    `yaml:"description,omitempty"`
	FontURL     string    `yaml:"font_url,omitempty"`
	Settings    Settings  `yaml:"settings,omitempty"`
	Elements    []Element `yaml:"elements" validate:"required,min=1,dive"`
}

// Settings tunes rendering.
type Settings struct {
	// SkipGlobals leaves out the resets, @font-face and keyframes.
	SkipGlobals bool `yaml:"skip_globals,omitempty"`
	// SkipLint turns off the CSS grammar check of the output.
	SkipLint bool `yaml:"skip_lint,omitempty"`
}

// Element binds a selector to a template and its flags.
type Element struct {
	Selector string      `yaml:"selector" validate:"required,css_selector"`
	Template string      `yaml:"template" validate:"required,template_name"`
	Flags    style.Flags `yaml:"flags,omitempty"`
}
