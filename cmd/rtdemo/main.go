// Command rtdemo renders a projectile trajectory to an image file.
//
// Without -script it draws the default 900×550 red arc. With -script it
// evaluates a scene script first (see package script).
//
//	rtdemo -output chapter02.ppm
//	rtdemo -format p6 -output chapter02_binary.ppm
//	rtdemo -script arc.zy -format png -scale 2 -output arc.png
//	rtdemo -version
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/rt"
	"github.com/gogpu/rt/script"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("rtdemo: %v", err)
	}
}

// encoders maps -format values to canvas writers.
var encoders = map[string]func(*rt.Canvas, io.Writer) error{
	"p3":   func(c *rt.Canvas, w io.Writer) error { return c.WritePPM(w) },
	"p6":   (*rt.Canvas).WriteBinaryPPM,
	"png":  (*rt.Canvas).EncodePNG,
	"bmp":  (*rt.Canvas).EncodeBMP,
	"tiff": (*rt.Canvas).EncodeTIFF,
}

type config struct {
	script  string
	output  string
	format  string
	scale   int
	verbose bool
	version bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("rtdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.script, "script", "", "scene script to evaluate (default: built-in scene)")
	fs.StringVar(&cfg.output, "output", "chapter02.ppm", "output file")
	fs.StringVar(&cfg.format, "format", "p3", "output format: p3, p6, png, bmp or tiff")
	fs.IntVar(&cfg.scale, "scale", 1, "enlarge every cell to a scale×scale block")
	fs.BoolVar(&cfg.verbose, "v", false, "log debug output to stderr")
	fs.BoolVar(&cfg.version, "version", false, "print the library version and exit")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	cfg.format = strings.ToLower(cfg.format)
	if _, ok := encoders[cfg.format]; !ok {
		return cfg, fmt.Errorf("unknown format %q", cfg.format)
	}
	if cfg.scale < 1 {
		return cfg, fmt.Errorf("scale must be at least 1, got %d", cfg.scale)
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if cfg.version {
		_, err := fmt.Fprintf(stdout, "rtdemo %s\n", rt.Version)
		return err
	}
	if cfg.verbose {
		rt.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer rt.SetLogger(nil)
	}

	scene := script.DefaultScene()
	if cfg.script != "" {
		src, err := os.ReadFile(cfg.script)
		if err != nil {
			return err
		}
		if scene, err = script.Evaluate(string(src)); err != nil {
			return fmt.Errorf("%s: %w", cfg.script, err)
		}
	}

	c, stats := scene.Render()
	if cfg.scale > 1 {
		c = c.Scaled(cfg.scale)
	}
	if err := save(c, cfg.output, encoders[cfg.format]); err != nil {
		return fmt.Errorf("write %s: %w", cfg.output, err)
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(stdout, "wrote %s (%s, %d×%d)\n", cfg.output, strings.ToUpper(cfg.format), c.Width(), c.Height())
	p.Fprintf(stdout, "%d ticks, %d plotted, %d off canvas, peak height %.2f\n",
		stats.Ticks, stats.Plotted, stats.Clipped, stats.MaxHeight.Float64())
	p.Fprintf(stdout, "landed at %v moving %v\n", stats.Final.Position, stats.Final.Velocity)
	return nil
}

func save(c *rt.Canvas, path string, encode func(*rt.Canvas, io.Writer) error) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	w := bufio.NewWriter(f)
	if err := encode(c, w); err != nil {
		return err
	}
	return w.Flush()
}
