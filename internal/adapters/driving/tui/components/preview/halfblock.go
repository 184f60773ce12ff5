// Package preview renders image previews in the terminal.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/suneye-cli/internal/core/domain"
)

// upperHalf is drawn with the top pixel as foreground and the bottom pixel
// as background, so each cell shows two pixel rows.
const upperHalf = "▀"

// Render draws img with one cell per pixel column and two pixel rows per line.
// An odd last row is paired with the terminal background.
func Render(img image.Image) string {
	if img == nil {
		return ""
	}
	b := img.Bounds()
	if b.Empty() {
		return ""
	}

	lines := make([]string, 0, (b.Dy()+1)/2)
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		var line strings.Builder
		for x := b.Min.X; x < b.Max.X; x++ {
			cell := lipgloss.NewStyle().Foreground(hex(img.At(x, y)))
			if y+1 < b.Max.Y {
				cell = cell.Background(hex(img.At(x, y+1)))
			}
			line.WriteString(cell.Render(upperHalf))
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

func hex(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}

// Card renders the preview with its caption and any EXIF facts.
// A nil preview renders the reason it is missing, if any.
func Card(s *styles.Styles, p *domain.ImagePreview, reason error) string {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if p == nil {
		if reason != nil {
			return s.Muted.Render("No preview: " + reason.Error())
		}
		return ""
	}

	parts := []string{Render(p.Pixels)}
	caption := fmt.Sprintf("%s  %dx%d", p.Name, p.SourceWidth, p.SourceHeight)
	if p.Format != "" {
		caption += " " + p.Format
	}
	parts = append(parts, s.Muted.Render(caption))

	keys := make([]string, 0, len(p.Metadata))
	for k := range p.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, s.Normal.Render(fmt.Sprintf("%s: %s", k, p.Metadata[k])))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
