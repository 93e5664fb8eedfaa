package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a sheet from disk, validates it, and returns it.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, stylekiterrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates sheet data. name is used in error messages.
// Keys the schema does not know are ignored.
func Parse(name string, data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, stylekiterrors.NewParseError(name, extractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
