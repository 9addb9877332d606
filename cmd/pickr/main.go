// Command pickr parses, converts and previews colors with the pickr
// color picker, driving it through a headless view.
//
// Usage:
//
//	pickr [flags] color...
//	pickr [flags] -script events.txt
//
// Each color argument is printed in every output format. A script replays
// picker events (set, hsva, palette, hue, opacity, format, save, clear,
// restore, show, hide, toggle, resize, print) and prints the picker's
// notifications.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	"github.com/gogpu/pickr"
	"github.com/gogpu/pickr/render"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML configuration file")
		formatName = flag.String("format", "", "print only this format (hex, rgba, hsla, hsva, cmyk)")
		script     = flag.String("script", "", "replay picker events from a file, - for stdin")
		pngPath    = flag.String("png", "", "write the palette, hue and opacity tracks to a PNG file")
		copyOut    = flag.Bool("copy", false, "copy the final output to the clipboard")
		verbose    = flag.Bool("v", false, "log picker events to stderr")
	)
	flag.Parse()

	if *verbose {
		pickr.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var (
		final pickr.HSVA
		text  string
	)
	switch {
	case *script != "":
		final, text, err = runScript(cfg, *script, os.Stdout)
	case flag.NArg() > 0:
		final, text, err = printColors(os.Stdout, flag.Args(), *formatName, isTerminal())
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}

	if *copyOut {
		if err := clipboard.WriteAll(text); err != nil {
			log.Fatalf("Failed to copy: %v", err)
		}
	}
	if *pngPath != "" {
		if err := writeTracks(*pngPath, final, cfg); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Tracks saved to %s\n", *pngPath)
	}
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func runScript(cfg config, path string, out io.Writer) (pickr.HSVA, string, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return pickr.HSVA{}, "", err
		}
		defer f.Close()
		r = f
	}

	s, err := newSession(cfg, out)
	if err != nil {
		return pickr.HSVA{}, "", err
	}
	defer s.p.DestroyAndRemove()
	if err := s.run(r); err != nil {
		return pickr.HSVA{}, "", err
	}
	return s.p.GetColor(), s.p.Output(), nil
}

// printColors prints each color in every format, or only in the named one.
// It returns the last color and its printed text.
func printColors(w io.Writer, args []string, formatName string, swatch bool) (pickr.HSVA, string, error) {
	only := -1
	if formatName != "" {
		f, err := pickr.ParseFormat(formatName)
		if err != nil {
			return pickr.HSVA{}, "", err
		}
		only = int(f)
	}

	var (
		last pickr.HSVA
		text string
	)
	for _, arg := range args {
		c, ok := pickr.Parse(arg)
		if !ok {
			return last, text, fmt.Errorf("not a color: %q", arg)
		}
		last = c
		if only >= 0 {
			text = c.Text(pickr.Format(only))
			fmt.Fprintln(w, text)
			continue
		}
		text = c.HEX()
		printTable(w, c, swatch)
	}
	return last, text, nil
}

// printTable writes one row per format with the values aligned. With
// swatch set, each label is prefixed by a truecolor block.
func printTable(w io.Writer, c pickr.HSVA, swatch bool) {
	labels := make([]string, 0, len(pickr.Formats()))
	for _, f := range pickr.Formats() {
		label := f.String()
		if swatch {
			label = ansi.Style{}.BackgroundColor(c.WithAlpha(1)).Styled("  ") + " " + label
		}
		labels = append(labels, label)
	}

	width := 0
	for _, l := range labels {
		width = max(width, ansi.StringWidth(l))
	}
	for i, f := range pickr.Formats() {
		pad := strings.Repeat(" ", width-ansi.StringWidth(labels[i])+2)
		fmt.Fprintf(w, "%s%s%s\n", labels[i], pad, c.Text(f))
	}
}

func writeTracks(path string, c pickr.HSVA, cfg config) error {
	const stripW, gap = 16, 4
	img := render.Tracks(c, int(cfg.Palette.W), stripW, int(cfg.Palette.H), gap)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
