package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"

	"github.com/mordilloSan/go-phklogger/backend"
	"github.com/mordilloSan/go-phklogger/config"
	"github.com/mordilloSan/go-phklogger/logger"
)

// Writes one message through a configured logger.
// Usage: ./go-phklogger [flags] message...
// Example: ./go-phklogger -file ./app.log -level error disk full
func main() {
	configPath := flag.String("config", "", "load settings from a .toml, .json or .json5 file")
	file := flag.String("file", "", "log to this file instead of the system log")
	threshold := flag.String("threshold", "", "minimum level written (name or integer)")
	level := flag.String("level", "info", "level of the message (name or integer)")
	name := flag.String("name", "", "backend sink name")
	cli := flag.Bool("cli", isatty.IsTerminal(os.Stdout.Fd()), "echo the message to the console")
	colorName := flag.String("color", "", "override the console color")
	light := flag.Bool("light", false, "render the console echo bold")
	verbose := flag.Bool("v", false, "print backend diagnostics to stderr")
	flag.Parse()

	cfg := logger.Config{Console: *cli}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fail(err)
		}
		cfg = loaded
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		fail(err)
	}

	var opts []logger.Option
	// Flags given on the command line win over the file and the environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "file":
			cfg.Target = *file
		case "threshold":
			cfg.Threshold = config.ParseLevelSpec(*threshold)
		case "name":
			cfg.Name = *name
		case "cli":
			cfg.Console = *cli
		case "color":
			opts = append(opts, logger.WithColor(logger.Color(*colorName)))
		case "light":
			opts = append(opts, logger.WithLight(*light))
		}
	})

	if *verbose {
		cfg.Registry = backend.NewRegistry(backend.WithLogger(hclog.New(&hclog.LoggerOptions{
			Name:   "phklogger",
			Level:  hclog.Debug,
			Output: os.Stderr,
		})))
	}

	log, err := logger.New(cfg)
	if err != nil {
		fail(err)
	}
	defer log.Close()

	message := strings.Join(flag.Args(), " ")
	if message == "" {
		message = fmt.Sprintf("logging to %s as %s", destination(cfg), log.Name())
	}
	if err := log.Log(message, config.ParseLevelSpec(*level), opts...); err != nil {
		log.Close()
		fail(err)
	}
}

func destination(cfg logger.Config) string {
	if cfg.Target == "" {
		return "the system log"
	}
	return cfg.Target
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
