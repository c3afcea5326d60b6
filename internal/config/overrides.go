package config

import "JMeterDataGen/internal/model"

// Overrides holds values given on the command line. A nil field was not
// given and leaves the file or environment value in place.
type Overrides struct {
	Count      *int
	Output     *string
	Seed       *uint64
	SQLitePath *string
}

// ApplyOverrides lays command-line values over the loaded config.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Count != nil {
		c.Generation.Count = *o.Count
	}
	if o.Output != nil {
		c.Output.Path = *o.Output
	}
	if o.Seed != nil {
		seed := *o.Seed
		c.Generation.Seed = &seed
	}
	if o.SQLitePath != nil {
		c.Database.SQLitePath = *o.SQLitePath
	}
}

// ApplyReplay takes seed and count from a recorded run. The recorded output
// path is used only when no output was given on the command line.
func (c *Config) ApplyReplay(run *model.RunInfo, o Overrides) {
	seed := run.Seed
	c.Generation.Seed = &seed
	c.Generation.Count = run.Count
	if o.Output == nil && run.Output != "" {
		c.Output.Path = run.Output
	}
}
