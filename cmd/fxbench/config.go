package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/fxbench/internal/bench/app"
)

type cliConfig struct {
	ConfigPath string
	EnvFile    string
	StatusJSON string
	Verbose    bool
	Args       []string

	configSet  bool
	envFileSet bool
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.ConfigPath, "config", "configs/fxbench.yaml", "Path to the tool and build parameter YAML")
	flag.StringVar(&cfg.EnvFile, "env-file", ".env", "Path to a .env file with tool path overrides")
	flag.StringVar(&cfg.StatusJSON, "status-json", "", "Also write the status report as JSON to this path")
	flag.BoolVar(&cfg.Verbose, "v", false, "Debug logging and tool output on stderr")

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, app.Usage)
		fmt.Fprintln(os.Stderr, "\nflags:")
		flag.PrintDefaults()
	}

	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "config":
			cfg.configSet = true
		case "env-file":
			cfg.envFileSet = true
		}
	})
	cfg.Args = flag.Args()
	return cfg
}
