package config

import (
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"unicode/utf8"

	"JMeterDataGen/internal/generator"
	"JMeterDataGen/internal/model"
	"JMeterDataGen/internal/sampler"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// unsetCount marks generation.count as absent from the file.
const unsetCount = math.MinInt

// PasswordEntry is one password pool entry as written in the config file.
type PasswordEntry struct {
	Value   string  `yaml:"value"`
	Weight  float64 `yaml:"weight"`
	Correct bool    `yaml:"correct"`
}

// BandEntry is one amount band as written in the config file.
type BandEntry struct {
	Low    float64 `yaml:"low"`
	High   float64 `yaml:"high"`
	Weight float64 `yaml:"weight"`
}

// Config holds all application configuration.
type Config struct {
	Output struct {
		Path      string `yaml:"path"`
		Delimiter string `yaml:"delimiter"`
		Manifest  bool   `yaml:"manifest"`
	} `yaml:"output"`
	Generation struct {
		Count int     `yaml:"count"`
		Seed  *uint64 `yaml:"seed"`
	} `yaml:"generation"`
	Identifier struct {
		Prefix       string `yaml:"prefix"`
		IndexWidth   int    `yaml:"index_width"`
		SuffixLength int    `yaml:"suffix_length"`
	} `yaml:"identifier"`
	Passwords   []PasswordEntry `yaml:"passwords"`
	AmountBands []BandEntry     `yaml:"amount_bands"`
	Database    struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error: defaults describe the reference data set.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Generation.Count = unsetCount

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TESTDATA_OUTPUT"); v != "" {
		cfg.Output.Path = v
	}
	if v := os.Getenv("TESTDATA_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse TESTDATA_COUNT: %w", err)
		}
		cfg.Generation.Count = n
	}
	if v := os.Getenv("TESTDATA_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse TESTDATA_SEED: %w", err)
		}
		cfg.Generation.Seed = &seed
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Generation.Count = unsetCount
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Output.Path == "" {
		c.Output.Path = "JMeter_test_data.csv"
	}
	if c.Output.Delimiter == "" {
		c.Output.Delimiter = ","
	}
	if c.Generation.Count == unsetCount {
		c.Generation.Count = 1000
	}
	def := generator.DefaultOptions()
	if c.Identifier.Prefix == "" {
		c.Identifier.Prefix = def.Prefix
	}
	if c.Identifier.IndexWidth == 0 {
		c.Identifier.IndexWidth = def.IndexWidth
	}
	if c.Identifier.SuffixLength == 0 {
		c.Identifier.SuffixLength = def.SuffixLength
	}
	if len(c.Passwords) == 0 {
		for _, p := range sampler.ReferencePool() {
			c.Passwords = append(c.Passwords, PasswordEntry{Value: p.Value, Weight: p.Weight, Correct: p.Correct})
		}
	}
	if len(c.AmountBands) == 0 {
		for _, b := range sampler.ReferenceBands() {
			c.AmountBands = append(c.AmountBands, BandEntry{
				Low:    b.Low.InexactFloat64(),
				High:   b.High.InexactFloat64(),
				Weight: b.Weight,
			})
		}
	}
}

// Validate checks the settings that sampler construction does not cover.
func (c *Config) Validate() error {
	if c.Generation.Count < 0 {
		return &model.GenerationError{Field: "generation.count", Reason: "must not be negative"}
	}
	if utf8.RuneCountInString(c.Output.Delimiter) != 1 {
		return &model.GenerationError{Field: "output.delimiter", Reason: fmt.Sprintf("%q must be a single character", c.Output.Delimiter)}
	}
	if d := c.DelimiterRune(); d == '"' || d == '\r' || d == '\n' || d == utf8.RuneError {
		return &model.GenerationError{Field: "output.delimiter", Reason: fmt.Sprintf("%q is not a valid delimiter", c.Output.Delimiter)}
	}
	if c.Identifier.IndexWidth < 0 || c.Identifier.SuffixLength < 0 {
		return &model.GenerationError{Field: "identifier", Reason: "widths must not be negative"}
	}

	total := 0.0
	for _, b := range c.AmountBands {
		total += b.Weight
	}
	if math.Abs(total-1) > 1e-6 {
		log.Printf("[WARN] amount band weights sum to %.4f, relative proportions apply", total)
	}
	return nil
}

// DelimiterRune returns the output delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Output.Delimiter)
	return r
}

// Pool converts the configured passwords to the sampler's model.
func (c *Config) Pool() []model.WeightedPassword {
	pool := make([]model.WeightedPassword, len(c.Passwords))
	for i, p := range c.Passwords {
		pool[i] = model.WeightedPassword{Value: p.Value, Weight: p.Weight, Correct: p.Correct}
	}
	return pool
}

// Bands converts the configured amount bands to the sampler's model.
func (c *Config) Bands() []model.AmountBand {
	bands := make([]model.AmountBand, len(c.AmountBands))
	for i, b := range c.AmountBands {
		bands[i] = model.AmountBand{
			Low:    decimal.NewFromFloat(b.Low),
			High:   decimal.NewFromFloat(b.High),
			Weight: b.Weight,
		}
	}
	return bands
}

// GeneratorOptions returns identifier layout options.
func (c *Config) GeneratorOptions() generator.Options {
	opts := generator.DefaultOptions()
	opts.Prefix = c.Identifier.Prefix
	opts.IndexWidth = c.Identifier.IndexWidth
	opts.SuffixLength = c.Identifier.SuffixLength
	return opts
}
