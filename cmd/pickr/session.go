package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/pickr"
)

// session is one picker bound to a headless view. Notifications and
// command results are written to out, one per line.
type session struct {
	p       *pickr.Picker
	view    *headless
	palette *handle
	out     io.Writer
}

func newSession(cfg config, out io.Writer) (*session, error) {
	s := &session{
		view: &headless{
			anchor:       cfg.Anchor.toRect(),
			popup:        cfg.Popup.toSize(),
			viewport:     cfg.Viewport.toSize(),
			appendToBody: cfg.Picker.AppendToBody,
		},
		palette: &handle{},
		out:     out,
	}
	controls := pickr.Controls{
		Palette: pickr.Slider{Handle: s.palette, Track: track(cfg.Palette.toSize())},
		Hue:     pickr.Slider{Handle: &handle{}, Track: track{H: cfg.Hue}},
		Opacity: pickr.Slider{Handle: &handle{}, Track: track{H: cfg.Opacity}},
		Formats: &buttons{},
	}

	p, err := pickr.New(s.view, controls,
		pickr.WithOptions(cfg.Picker),
		pickr.WithOnChange(func(c pickr.HSVA) {
			fmt.Fprintf(s.out, "change %s\n", c)
		}),
		pickr.WithOnSave(func(c *pickr.HSVA) {
			if c == nil {
				fmt.Fprintln(s.out, "cleared")
				return
			}
			fmt.Fprintf(s.out, "saved %s\n", c.Text(pickr.FormatRGBA))
		}),
	)
	if err != nil {
		return nil, err
	}
	s.p = p
	return s, nil
}

// run executes a script, one command per line. Blank lines and lines
// starting with '#' are skipped.
func (s *session) run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := s.exec(strings.Fields(text)); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return sc.Err()
}

func (s *session) exec(f []string) error {
	cmd, args := f[0], f[1:]
	switch cmd {
	case "set":
		text := strings.Join(args, " ")
		if !s.p.SetColor(text) {
			fmt.Fprintf(s.out, "rejected %q\n", text)
		}
	case "hsva":
		v, err := floats(args, 4)
		if err != nil {
			return fmt.Errorf("hsva: %w", err)
		}
		if !s.p.SetHSVA(v[0], v[1], v[2], v[3]) {
			fmt.Fprintf(s.out, "rejected hsva %s\n", strings.Join(args, " "))
		}
	case "palette":
		v, err := floats(args, 2)
		if err != nil {
			return fmt.Errorf("palette: %w", err)
		}
		s.p.BeginDrag()
		s.palette.at = pickr.Pt(v[0], v[1])
		s.p.MovePalette(v[0], v[1])
	case "hue":
		v, err := floats(args, 1)
		if err != nil {
			return fmt.Errorf("hue: %w", err)
		}
		s.p.BeginDrag()
		s.p.MoveHue(v[0])
	case "opacity":
		v, err := floats(args, 1)
		if err != nil {
			return fmt.Errorf("opacity: %w", err)
		}
		s.p.BeginDrag()
		s.p.MoveOpacity(v[0])
	case "format":
		if len(args) != 1 {
			return fmt.Errorf("format: want 1 argument, got %d", len(args))
		}
		fm, err := pickr.ParseFormat(args[0])
		if err != nil {
			return err
		}
		if !s.p.SelectFormat(fm) {
			fmt.Fprintf(s.out, "format %v disabled\n", fm)
		}
	case "save":
		s.p.Save()
	case "clear":
		s.p.Clear()
	case "restore":
		s.p.RestoreSaved()
	case "show":
		s.p.Show()
	case "hide":
		s.p.Hide()
	case "toggle":
		s.p.Toggle()
	case "resize":
		v, err := floats(args, 2)
		if err != nil {
			return fmt.Errorf("resize: %w", err)
		}
		s.view.viewport = pickr.Size{W: v[0], H: v[1]}
		s.p.Resize()
		fmt.Fprintf(s.out, "offset top=%g left=%g\n", s.view.offset.Top, s.view.offset.Left)
	case "print":
		fmt.Fprintf(s.out, "output %s\n", s.p.Output())
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func floats(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("want %d arguments, got %d", n, len(args))
	}
	v := make([]float64, n)
	for i, a := range args {
		x, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, err
		}
		v[i] = x
	}
	return v, nil
}
