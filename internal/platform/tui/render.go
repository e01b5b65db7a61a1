package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/learnquest/internal/config"
	"github.com/vovakirdan/learnquest/internal/core"
	"github.com/vovakirdan/learnquest/internal/quest"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Field glyphs.
const (
	glyphObstacle    = '█'
	glyphCollectible = '●'
	glyphAvatar      = '@'
)

// styleFor returns the lipgloss style of a color, falling back to default.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// fieldLayout maps field units onto the character cells inside the field
// box. The box occupies the whole screen; its border takes one cell per side.
type fieldLayout struct {
	inner  core.Rect
	scaleX float64
	scaleY float64
}

func newFieldLayout(field config.FieldConfig, cols, rows int) fieldLayout {
	inner := core.NewRect(1, 1, max(cols-2, 1), max(rows-2, 1))
	return fieldLayout{
		inner:  inner,
		scaleX: float64(inner.W) / field.Width,
		scaleY: float64(inner.H) / field.Height,
	}
}

// cell returns the screen cell a field point falls into, clamped to the box.
func (l fieldLayout) cell(p core.Vec) (x, y int) {
	x = l.inner.X + int(p.X*l.scaleX)
	y = l.inner.Y + int(p.Y*l.scaleY)
	return core.Clamp(x, l.inner.X, l.inner.Right()-1), core.Clamp(y, l.inner.Y, l.inner.Bottom()-1)
}

// span returns the cell rectangle covered by a square entity. It is at least
// one cell in each direction.
func (l fieldLayout) span(e quest.Entity) core.Rect {
	x0, y0 := l.cell(e.Pos)
	x1, y1 := l.cell(e.Pos.Add(e.Size, e.Size))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// drawField draws the snapshot's field, entities and avatar into s.
func drawField(s *core.Screen, l fieldLayout, snap quest.Snapshot) {
	s.Clear()
	s.DrawBox(core.NewRect(0, 0, s.Width(), s.Height()), core.ColorGray)

	for _, o := range snap.Field.Obstacles {
		s.DrawRect(l.span(o), glyphObstacle, core.ColorRed)
	}
	for _, c := range snap.Field.Collectibles {
		x, y := l.cell(c.Center())
		s.SetColored(x, y, glyphCollectible, core.ColorBrightYellow)
	}

	x, y := l.cell(snap.Avatar)
	s.SetColored(x, y, glyphAvatar, core.ColorBrightBlue)
}

// timeColor colours the remaining time: red at 10 or less, orange at 30 or
// less.
func timeColor(remaining int) core.Color {
	switch {
	case remaining <= 10:
		return core.ColorBrightRed
	case remaining <= 30:
		return core.ColorOrange
	default:
		return core.ColorBrightWhite
	}
}

// progressBar renders a fixed-width bar for a fraction in [0, 1].
func progressBar(theme Theme, width int, fraction float64) string {
	if width <= 0 {
		return ""
	}
	filled := core.Clamp(int(fraction*float64(width)+0.5), 0, width)
	return theme.ProgressFull.Render(strings.Repeat("█", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat("░", width-filled))
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
