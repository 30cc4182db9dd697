package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/colortransfer"
)

// config holds the command settings. A YAML file given with -config sets
// the base values; flags given on the command line override them.
type config struct {
	Source      string `yaml:"source"`
	Target      string `yaml:"target"`
	Output      string `yaml:"output"`
	Method      string `yaml:"method"`
	Workers     int    `yaml:"workers"`
	LinearLight bool   `yaml:"linear_light"`
	Quality     int    `yaml:"quality"`
	Stats       bool   `yaml:"stats"`
	Verbose     bool   `yaml:"verbose"`

	ConfigFile string `yaml:"-"`
	List       bool   `yaml:"-"`
}

func defaultConfig() config {
	return config{
		Method:  colortransfer.MethodCholesky,
		Quality: colortransfer.DefaultJPEGQuality,
	}
}

func newFlagSet(cfg *config, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("colortransfer", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: colortransfer -source palette.jpg -target image.png -output result.png [flags]\n\n")
		fs.PrintDefaults()
	}

	fs.StringVar(&cfg.Source, "source", cfg.Source, "image whose colors are transferred")
	fs.StringVar(&cfg.Target, "target", cfg.Target, "image that receives the colors")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output file (.png, .jpg, .bmp, .tif)")
	fs.StringVar(&cfg.Method, "method", cfg.Method, "transfer method, see -list")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "worker goroutines (0 = GOMAXPROCS)")
	fs.BoolVar(&cfg.LinearLight, "linear", cfg.LinearLight, "compute the transfer in linear light")
	fs.IntVar(&cfg.Quality, "quality", cfg.Quality, "JPEG quality (1-100)")
	fs.BoolVar(&cfg.Stats, "stats", cfg.Stats, "print color statistics of source and target")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML config file")
	fs.BoolVar(&cfg.List, "list", cfg.List, "list transfer methods and exit")
	return fs
}

// parseConfig parses args, loading the -config file first when one is
// named so explicit flags take precedence over it.
func parseConfig(args []string, stderr io.Writer) (config, error) {
	cfg := defaultConfig()
	if err := newFlagSet(&cfg, stderr).Parse(args); err != nil {
		return config{}, err
	}
	if cfg.ConfigFile == "" {
		return cfg, nil
	}

	fileCfg, err := loadConfig(cfg.ConfigFile)
	if err != nil {
		return config{}, err
	}
	// Arguments already parsed once, so this cannot fail.
	_ = newFlagSet(&fileCfg, io.Discard).Parse(args)
	return fileCfg, nil
}

// loadConfig reads a YAML config file on top of the defaults. Unknown keys
// are rejected.
func loadConfig(path string) (config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := defaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c config) options() []colortransfer.Option {
	return []colortransfer.Option{
		colortransfer.WithWorkers(c.Workers),
		colortransfer.WithLinearLight(c.LinearLight),
	}
}
