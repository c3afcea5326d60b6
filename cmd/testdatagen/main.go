package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"JMeterDataGen/internal/config"
	"JMeterDataGen/internal/exporter"
	"JMeterDataGen/internal/manifest"
	"JMeterDataGen/internal/notifier"
	"JMeterDataGen/internal/recorder"
	"JMeterDataGen/internal/runner"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	var (
		count      int
		output     string
		seed       uint64
		cfgPath    string
		sqlitePath string
		replayPath string
	)
	flag.IntVar(&count, "n", 1000, "Number of test records to generate")
	flag.IntVar(&count, "num-records", 1000, "Number of test records to generate (alias of -n)")
	flag.StringVar(&output, "o", "JMeter_test_data.csv", "Output filename")
	flag.StringVar(&output, "output", "JMeter_test_data.csv", "Output filename (alias of -o)")
	flag.Uint64Var(&seed, "seed", 0, "Random seed for reproducible test data")
	flag.StringVar(&cfgPath, "config", "configs/config.yaml", "Path to the YAML config file")
	flag.StringVar(&sqlitePath, "sqlite", "", "Also store the batch in this SQLite database")
	flag.StringVar(&replayPath, "replay", "", "Repeat the run described by a manifest file")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if v := os.Getenv("CONFIG_PATH"); v != "" && !set["config"] {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}

	// Flags override the config file
	var ov config.Overrides
	if set["n"] || set["num-records"] {
		ov.Count = &count
	}
	if set["o"] || set["output"] {
		ov.Output = &output
	}
	if set["seed"] {
		ov.Seed = &seed
	}
	if set["sqlite"] {
		ov.SQLitePath = &sqlitePath
	}
	cfg.ApplyOverrides(ov)

	if replayPath != "" {
		m, err := manifest.Load(replayPath)
		if err != nil {
			log.Fatalf("[FATAL] replay: %v", err)
		}
		cfg.ApplyReplay(m, ov)
		log.Printf("[INFO] replaying run %s", m.ID)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	var runSeed uint64
	if cfg.Generation.Seed != nil {
		runSeed = *cfg.Generation.Seed
		log.Printf("[INFO] using random seed: %d", runSeed)
	} else {
		runSeed = uint64(time.Now().UnixNano())
		log.Printf("[INFO] no seed given, using %d (pass -seed %d to reproduce)", runSeed, runSeed)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	r := runner.NewRunner(
		cfg.Pool(),
		cfg.Bands(),
		cfg.GeneratorOptions(),
		exporter.NewCSVExporter(cfg.DelimiterRune()),
		rec,
		notifier.NewConsoleNotifier(os.Stdout),
	)

	_, err = r.Run(runner.Options{
		Count:    cfg.Generation.Count,
		Seed:     runSeed,
		Output:   cfg.Output.Path,
		Manifest: cfg.Output.Manifest,
	})
	if cerr := rec.Close(); cerr != nil {
		log.Printf("[WARN] close recorder: %v", cerr)
	}

	if err != nil {
		var exportErr *exporter.ExportError
		if errors.As(err, &exportErr) {
			log.Printf("[ERROR] export failed, re-run with -seed %d to reproduce: %v", runSeed, err)
		} else {
			log.Printf("[ERROR] %v", err)
		}
		os.Exit(1)
	}
}
