// Command xsvectors logs reproducible vectors of the xorshift160 engine, its
// uniform projections and the standard samplers for a set of named streams.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/rs/zerolog"
)

var (
	configFlag = flag.String("config", "", "path to a toml file describing the streams")
	countFlag  = flag.Int("n", DefaultConfig.Count, "number of vectors per stream")
	jsonFlag   = flag.Bool("json", false, "log json lines instead of the console format")
	levelFlag  = flag.String("log-level", "info", "minimum level to log")
)

func newLogger(w io.Writer, json bool, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, Error.Wrap(err)
	}
	if !json {
		out := w
		w = zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
			cw.Out = out
			cw.TimeFormat = "15:04:05.000"
		})
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// loadConfig reads the file at path, or returns the defaults when path is
// empty. A count given on the command line wins over the file.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, Error.Wrap(err)
		}
		cfg, err = ParseConfig(string(data))
		if err != nil {
			return Config{}, Error.New("%s: %v", path, err)
		}
	}

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "n" {
			cfg.Count = *countFlag
		}
	})
	return cfg, cfg.validate()
}

func main() {
	flag.Parse()

	log, err := newLogger(os.Stderr, *jsonFlag, *levelFlag)
	if err != nil {
		log = zerolog.New(os.Stderr)
		log.Error().Err(err).Msg("invalid log level")
		os.Exit(2)
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Error().Err(err).Msg("unable to load config")
		os.Exit(1)
	}

	if err := run(log, cfg); err != nil {
		log.Error().Err(err).Msg("dump failed")
		os.Exit(1)
	}
}
