// Command boardgeom reads coordinates, one per line, applies an optional
// offset, scale and rotation, and prints each point in canonical output form.
//
//	boardgeom -rotate 90 -pivot center -center 1,1 < points.txt
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/hnimtadd/boardgeom"
	"github.com/hnimtadd/boardgeom/config"
	"github.com/hnimtadd/boardgeom/geometry/point"
	"github.com/hnimtadd/boardgeom/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "boardgeom:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("boardgeom", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "board configuration JSON (reads params.significant-digits)")
		digits     = fs.Int("digits", -1, "significant digits, overrides the configuration")
		offset     = fs.String("offset", "", "offset added to every point, as x,y")
		scale      = fs.Float64("scale", 1, "scale factor")
		rotate     = fs.Float64("rotate", 0, "rotation in degrees")
		center     = fs.String("center", "0,0", "rotation center, as x,y")
		pivot      = fs.String("pivot", "origin", "rotation pivot: origin (compatible) or center")
		round      = fs.Bool("round", false, "round coordinates to the significant digits")
		invertY    = fs.Bool("invert-y", false, "negate y in the SVG transform column")
		unique     = fs.Bool("unique", false, "drop points already written")
		strict     = fs.Bool("strict", false, "fail on the first malformed line")
		logLevel   = fs.String("log-level", "info", "debug, info, warn or error")
		logJSON    = fs.Bool("log-json", false, "log as JSON")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	logType := logger.TypeText
	if *logJSON {
		logType = logger.TypeJSON
	}
	log := logger.New(logger.Options{
		Buffer: stderr,
		Level:  logger.ParseLevel(*logLevel),
		Type:   logType,
	})

	if *configPath != "" {
		cfg, err := config.LoadFile(*configPath)
		if err != nil {
			return err
		}
		if err := cfg.Apply(); err != nil {
			return err
		}
	}

	opts := boardgeom.Options{
		Rotate:  *rotate,
		Round:   *round,
		InvertY: *invertY,
		Unique:  *unique,
		Strict:  *strict,
		Logger:  log,
	}
	if *digits >= 0 {
		opts.Digits = digits
	}
	if *offset != "" {
		pt, err := point.Parse(*offset)
		if err != nil {
			return fmt.Errorf("-offset: %w", err)
		}
		opts.Offset = &pt
	}
	if *scale != 1 {
		opts.Scale = scale
	}
	c, err := point.Parse(*center)
	if err != nil {
		return fmt.Errorf("-center: %w", err)
	}
	opts.Center = c
	if opts.Mode, err = point.ParseRotationMode(*pivot); err != nil {
		return fmt.Errorf("-pivot: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, err := boardgeom.NewProcessor(opts).Process(ctx, stdin, stdout)
	log.Debug("done",
		"read", stats.Read,
		"written", stats.Written,
		"skipped", stats.Skipped,
		"duplicates", stats.Duplicates,
	)
	return err
}
