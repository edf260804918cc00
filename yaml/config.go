// Package yaml loads helpdex configuration from YAML files.
package yaml

import (
	"os"

	"github.com/fwojciec/helpdex"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors helpdex.Config with YAML tags.
type fileConfig struct {
	Sources     []sourceGroup `yaml:"sources"`
	ExpandLinks bool          `yaml:"expand_links"`
	Parsers     []parserRule  `yaml:"parsers"`
}

type sourceGroup struct {
	Modes []string     `yaml:"modes"`
	Files []sourceFile `yaml:"files"`
}

type sourceFile struct {
	Path   string `yaml:"path"`
	Prefix string `yaml:"prefix"`
}

type parserRule struct {
	Pattern string `yaml:"pattern"`
	Format  string `yaml:"format"`
}

// LoadConfig reads and validates a configuration file.
func LoadConfig(path string) (*helpdex.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, helpdex.Errorf(helpdex.EINVALID, "read config %s: %v", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig parses and validates YAML configuration data.
func ParseConfig(data []byte) (*helpdex.Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, helpdex.Errorf(helpdex.EINVALID, "parse config: %v", err)
	}

	cfg := &helpdex.Config{ExpandLinks: fc.ExpandLinks}
	for _, group := range fc.Sources {
		g := helpdex.SourceGroup{Modes: group.Modes}
		for _, f := range group.Files {
			g.Files = append(g.Files, helpdex.SourceFile{Path: f.Path, Prefix: f.Prefix})
		}
		cfg.Sources = append(cfg.Sources, g)
	}
	for _, rule := range fc.Parsers {
		cfg.Parsers = append(cfg.Parsers, helpdex.ParserRule{Pattern: rule.Pattern, Format: rule.Format})
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
