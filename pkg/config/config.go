package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlast/pkg/consts"
	"github.com/pseudomuto/sqlast/pkg/format"
	"github.com/pseudomuto/sqlast/pkg/parser"
	"github.com/pseudomuto/sqlast/pkg/utils"
	"gopkg.in/yaml.v3"
)

type (
	// Parser holds settings passed to every parse call.
	Parser struct {
		// MaxDepth limits how deeply parentheses and prefix operators may nest
		MaxDepth int `yaml:"max_depth,omitempty"`
	}

	// Format holds the options used by the fmt and parse commands when printing SQL.
	Format struct {
		// IndentSize specifies the number of spaces for each indent level
		IndentSize int `yaml:"indent_size,omitempty"`

		// UppercaseKeywords controls keyword casing. Defaults to true when omitted.
		UppercaseKeywords *bool `yaml:"uppercase_keywords,omitempty"`

		// BacktickIdentifiers quotes every identifier, not only those that require it
		BacktickIdentifiers bool `yaml:"backtick_identifiers,omitempty"`
	}

	// Check holds settings for the check command.
	Check struct {
		// Concurrency is the number of files parsed in parallel
		Concurrency int `yaml:"concurrency,omitempty"`
	}

	// Config represents the sqlast.yaml configuration file.
	Config struct {
		Parser Parser `yaml:"parser"`
		Format Format `yaml:"format"`
		Check  Check  `yaml:"check"`
	}
)

// Default returns a configuration with every value set to its default.
func Default() *Config {
	cfg := new(Config)
	cfg.setDefaults()
	return cfg
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// The function expects YAML-formatted configuration data. Missing values, including
// entirely empty input, are filled with their defaults.
//
// Example:
//
//	yamlData := `
//	parser:
//	  max_depth: 64
//	format:
//	  indent_size: 2
//	  uppercase_keywords: false
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	stmt, err := parser.ParseString(sql, cfg.ParserOptions()...)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	cfg.setDefaults()
	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
//
// Example:
//
//	cfg, err := config.LoadConfigFile("sqlast.yaml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
//
//	fmt.Printf("Indent: %d\n", cfg.Format.IndentSize)
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// LoadConfigFileIfExists behaves like LoadConfigFile, but returns the default
// configuration when path does not exist. This lets commands run without a config file.
func LoadConfigFileIfExists(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	return LoadConfigFile(path)
}

// ParserOptions returns the parser options described by the configuration.
func (c *Config) ParserOptions() []parser.Option {
	return []parser.Option{parser.WithMaxDepth(c.Parser.MaxDepth)}
}

// FormatterOptions returns the formatter options described by the configuration.
func (c *Config) FormatterOptions() format.FormatterOptions {
	return format.FormatterOptions{
		IndentSize:          c.Format.IndentSize,
		UppercaseKeywords:   c.Format.UppercaseKeywords == nil || *c.Format.UppercaseKeywords,
		BacktickIdentifiers: c.Format.BacktickIdentifiers,
	}
}

// GetFormatter returns a formatter configured from the format section.
func (c *Config) GetFormatter() *format.Formatter {
	return format.New(c.FormatterOptions())
}

func (c *Config) setDefaults() {
	if c.Parser.MaxDepth <= 0 {
		c.Parser.MaxDepth = consts.DefaultMaxDepth
	}
	if c.Format.IndentSize <= 0 {
		c.Format.IndentSize = consts.DefaultIndentSize
	}
	if c.Format.UppercaseKeywords == nil {
		c.Format.UppercaseKeywords = utils.Ptr(true)
	}
	if c.Check.Concurrency <= 0 {
		c.Check.Concurrency = consts.DefaultConcurrency
	}
}
