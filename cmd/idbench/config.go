package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/idpool/idpool"
	"github.com/idpool/idpool/idgen"
)

// config carries everything one idbench invocation needs. Flags win over the
// config file, the file wins over the built-in defaults.
type config struct {
	Trials       int    `yaml:"trials"`
	IDsPerTrial  int    `yaml:"ids_per_trial"`
	Capacity     int    `yaml:"capacity"`
	Refill       string `yaml:"refill"`
	Generator    string `yaml:"generator"`
	UUIDRandPool bool   `yaml:"uuid_rand_pool"`
	Format       string `yaml:"format"`
	Verbose      bool   `yaml:"verbose"`
}

func defaultConfig() config {
	return config{
		Trials:      10,
		IDsPerTrial: 1000,
		Capacity:    4096,
		Refill:      "sync",
		Generator:   "uuid",
		Format:      "table",
	}
}

// loadConfig resolves the effective config from args and the optional
// -config YAML file.
func loadConfig(args []string) (config, error) {
	flags := defaultConfig()

	// ExitOnError makes the flag set report bad flags and exit by itself, so
	// every error returned from here is a config file problem the caller must
	// still surface.
	fs := flag.NewFlagSet("idbench", flag.ExitOnError)
	var configPath string
	fs.StringVar(&configPath, "config", "", "YAML config file")
	fs.IntVar(&flags.Trials, "trials", flags.Trials, "number of trials per source")
	fs.IntVar(&flags.IDsPerTrial, "ids", flags.IDsPerTrial, "timed calls per trial")
	fs.IntVar(&flags.Capacity, "capacity", flags.Capacity, "pool capacity")
	fs.StringVar(&flags.Refill, "refill", flags.Refill, "refill policy: sync or async")
	fs.StringVar(&flags.Generator, "generator", flags.Generator, "identifier generator: uuid or ulid")
	fs.BoolVar(&flags.UUIDRandPool, "uuid-rand-pool", flags.UUIDRandPool, "use the uuid library's pooled rand reader")
	fs.StringVar(&flags.Format, "format", flags.Format, "output format: table or json")
	fs.BoolVar(&flags.Verbose, "v", flags.Verbose, "verbose progress logging")
	_ = fs.Parse(args) // ExitOnError: Parse never returns an error

	cfg := defaultConfig()
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return config{}, fmt.Errorf("can't read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return config{}, fmt.Errorf("can't parse config file: %w", err)
		}
	}

	// Only flags passed explicitly override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trials":
			cfg.Trials = flags.Trials
		case "ids":
			cfg.IDsPerTrial = flags.IDsPerTrial
		case "capacity":
			cfg.Capacity = flags.Capacity
		case "refill":
			cfg.Refill = flags.Refill
		case "generator":
			cfg.Generator = flags.Generator
		case "uuid-rand-pool":
			cfg.UUIDRandPool = flags.UUIDRandPool
		case "format":
			cfg.Format = flags.Format
		case "v":
			cfg.Verbose = flags.Verbose
		}
	})

	return cfg, nil
}

func (c config) refillPolicy() (idpool.RefillPolicy, error) {
	switch c.Refill {
	case "sync":
		return idpool.RefillSynchronous, nil
	case "async":
		return idpool.RefillAsynchronous, nil
	}
	return 0, fmt.Errorf("unknown refill policy %q, want sync or async", c.Refill)
}

func (c config) generator() (idpool.Generator, error) {
	switch c.Generator {
	case "uuid":
		return idgen.UUID, nil
	case "ulid":
		return idgen.ULID, nil
	}
	return nil, fmt.Errorf("unknown generator %q, want uuid or ulid", c.Generator)
}
