package layout

import (
	"fmt"
	"io"

	"github.com/gogpu/shapes"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Label position and spacing used by Render.
const (
	labelX       = 10.0
	labelY       = 20.0
	labelSpacing = 15.0
)

// Lines formats one summary line per layout.
func Lines(layouts []TypeLayout) []string {
	p := message.NewPrinter(language.English)
	lines := make([]string, 0, len(layouts))
	for _, l := range layouts {
		line := p.Sprintf("Size of %-24s %3d bytes", l.Name+":", l.Size)
		if pad := l.PaddingBytes(); pad > 0 {
			line += p.Sprintf(" (%d padding)", pad)
		}
		lines = append(lines, line)
	}
	return lines
}

// DispatchLines formats the dispatch size comparison.
func DispatchLines(d Dispatch) []string {
	p := message.NewPrinter(language.English)
	return []string{
		p.Sprintf("Size of %-24s %3d bytes", "PlainShape:", d.PlainBase),
		p.Sprintf("Size of %-24s %3d bytes", "PlainCircle:", d.PlainCircle),
		p.Sprintf("Size of %-24s %3d bytes", "*PlainShape handle:", d.PlainHandle),
		p.Sprintf("Size of %-24s %3d bytes", "Shape handle:", d.VirtualHandle),
		p.Sprintf("Size of %-24s %3d bytes", "Circle:", d.Circle),
		p.Sprintf("Size of %-24s %3d bytes", "Rectangle:", d.Rectangle),
	}
}

// WriteReport writes the summary lines followed by a per-field breakdown of
// every struct layout.
func WriteReport(w io.Writer, layouts []TypeLayout) error {
	for _, line := range Lines(layouts) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	p := message.NewPrinter(language.English)
	for _, l := range layouts {
		if len(l.Fields) == 0 {
			continue
		}
		if _, err := p.Fprintf(w, "\n%s (size %d, align %d)\n", l.Name, l.Size, l.Align); err != nil {
			return err
		}
		for _, f := range l.Fields {
			if _, err := p.Fprintf(w, "  %-10s %-16s offset %3d size %3d padding %d\n",
				f.Name, f.Type, f.Offset, f.Size, f.Padding); err != nil {
				return err
			}
		}
		if l.TrailingPadding > 0 {
			if _, err := p.Fprintf(w, "  %-10s %-16s padding %d\n", "(end)", "", l.TrailingPadding); err != nil {
				return err
			}
		}
	}
	return nil
}

// Render draws lines on c, one every 15 pixels starting at (10, 20).
func Render(c *shapes.Canvas, lines []string) error {
	y := labelY
	for _, line := range lines {
		if err := c.DrawLabel(line, labelX, y); err != nil {
			return fmt.Errorf("layout: render: %w", err)
		}
		y += labelSpacing
	}
	return nil
}
