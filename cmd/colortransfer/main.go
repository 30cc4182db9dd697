// Command colortransfer gives an image the color statistics of another.
//
//	colortransfer -source palette.jpg -target stylized.png -output result.png
//
// The exit status is 3 when the method could not transfer the colors; the
// output then holds an unchanged copy of the target.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/colortransfer"
)

var (
	errUsage          = errors.New("usage")
	errTransferFailed = errors.New("color transfer failed, target copied unchanged")
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errTransferFailed):
		os.Exit(3)
	default:
		fmt.Fprintf(os.Stderr, "colortransfer: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	colortransfer.SetLogger(logger)
	defer colortransfer.SetLogger(nil)

	reg := colortransfer.DefaultRegistry()
	if cfg.List {
		for _, name := range reg.Names() {
			desc, _ := reg.Description(name)
			fmt.Fprintf(stdout, "%-16s %s\n", name, desc)
		}
		return nil
	}

	if cfg.Source == "" || cfg.Target == "" {
		return fmt.Errorf("%w: -source and -target are required", errUsage)
	}
	if cfg.Output == "" && !cfg.Stats {
		return fmt.Errorf("%w: -output is required unless -stats is set", errUsage)
	}

	method, err := reg.Create(cfg.Method, cfg.options()...)
	if err != nil {
		return err
	}

	source, target, err := loadPair(cfg.Source, cfg.Target)
	if err != nil {
		return err
	}
	logger.Debug("images loaded",
		"source", cfg.Source, "source_size", fmt.Sprintf("%dx%d", source.Width(), source.Height()),
		"target", cfg.Target, "target_size", fmt.Sprintf("%dx%d", target.Width(), target.Height()))

	if cfg.Stats {
		if err := printStats(stdout, "source", source, cfg); err != nil {
			return err
		}
		if err := printStats(stdout, "target", target, cfg); err != nil {
			return err
		}
	}
	if cfg.Output == "" {
		return nil
	}

	output, err := colortransfer.NewImage(target.Width(), target.Height(), target.Channels())
	if err != nil {
		return err
	}

	start := time.Now()
	ok, err := method.TransferColor(source, target, output)
	if err != nil {
		return err
	}
	logger.Info("transfer done", "method", method.Name(), "ok", ok, "elapsed", time.Since(start))

	if err := output.Save(cfg.Output, cfg.Quality); err != nil {
		return err
	}
	if !ok {
		logger.Warn(errTransferFailed.Error(), "output", cfg.Output)
		return errTransferFailed
	}
	return nil
}

// loadPair decodes the source and target images concurrently.
func loadPair(sourcePath, targetPath string) (source, target *colortransfer.Image, err error) {
	var g errgroup.Group
	g.Go(func() error {
		var err error
		source, err = colortransfer.LoadImage(sourcePath)
		return err
	})
	g.Go(func() error {
		var err error
		target, err = colortransfer.LoadImage(targetPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return source, target, nil
}

func printStats(w io.Writer, label string, img *colortransfer.Image, cfg config) error {
	s, err := colortransfer.ComputeStats(img, cfg.options()...)
	if err != nil {
		return err
	}

	mean := colorful.Color{R: s.Mean[0], G: s.Mean[1], B: s.Mean[2]}
	if cfg.LinearLight {
		mean = colorful.LinearRgb(s.Mean[0], s.Mean[1], s.Mean[2])
	}
	h, c, l := mean.Clamped().Hcl()

	fmt.Fprintf(w, "%s: mean %s (%.4f %.4f %.4f) stddev (%.4f %.4f %.4f) hcl (%.1f %.3f %.3f)\n",
		label, mean.Clamped().Hex(),
		s.Mean[0], s.Mean[1], s.Mean[2],
		s.StdDev[0], s.StdDev[1], s.StdDev[2],
		h, c, l)
	return nil
}
