package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/learnquest/internal/config"
	"github.com/vovakirdan/learnquest/internal/core"
	"github.com/vovakirdan/learnquest/internal/quest"
)

func testLayout() fieldLayout {
	// 800x450 field in an 82x47 box: one cell per ten units
	return newFieldLayout(config.FieldConfig{Width: 800, Height: 450}, 82, 47)
}

func TestFieldLayoutCell(t *testing.T) {
	l := testLayout()

	tests := []struct {
		name  string
		p     core.Vec
		wantX int
		wantY int
	}{
		{"origin", core.V(0, 0), 1, 1},
		{"start position", core.V(400, 400), 41, 41},
		{"clamped low", core.V(-10, -10), 1, 1},
		{"clamped high", core.V(900, 1000), 80, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := l.cell(tt.p)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("cell(%v) = (%d, %d), want (%d, %d)", tt.p, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestFieldLayoutSpan(t *testing.T) {
	l := testLayout()

	got := l.span(quest.Entity{Kind: quest.KindObstacle, Pos: core.V(100, 100), Size: 40})
	want := core.NewRect(11, 11, 4, 4)
	if got != want {
		t.Errorf("span = %+v, want %+v", got, want)
	}

	tiny := l.span(quest.Entity{Pos: core.V(100, 100), Size: 1})
	if tiny.W != 1 || tiny.H != 1 {
		t.Errorf("tiny span = %+v, want at least 1x1", tiny)
	}
}

func TestDrawField(t *testing.T) {
	l := testLayout()
	s := core.NewScreen(82, 47)

	snap := quest.Snapshot{
		Avatar: core.V(400, 400),
		Field: quest.Field{
			Obstacles:    []quest.Entity{{Kind: quest.KindObstacle, Pos: core.V(100, 100), Size: 40}},
			Collectibles: []quest.Entity{{Kind: quest.KindCollectible, Pos: core.V(600, 200), Size: 30}},
		},
	}
	drawField(s, l, snap)

	if got := s.GetCell(41, 41); got.Rune != glyphAvatar || got.Color != core.ColorBrightBlue {
		t.Errorf("avatar cell = %+v", got)
	}
	if got := s.GetCell(12, 12); got.Rune != glyphObstacle || got.Color != core.ColorRed {
		t.Errorf("obstacle cell = %+v", got)
	}
	// collectible centre (615, 215)
	if got := s.GetCell(62, 22); got.Rune != glyphCollectible {
		t.Errorf("collectible cell = %+v", got)
	}
	if got := s.GetCell(0, 0); got.Color != core.ColorGray {
		t.Errorf("border colour = %v, want gray", got.Color)
	}
}

func TestTimeColor(t *testing.T) {
	tests := []struct {
		remaining int
		want      core.Color
	}{
		{60, core.ColorBrightWhite},
		{31, core.ColorBrightWhite},
		{30, core.ColorOrange},
		{11, core.ColorOrange},
		{10, core.ColorBrightRed},
		{0, core.ColorBrightRed},
	}

	for _, tt := range tests {
		if got := timeColor(tt.remaining); got != tt.want {
			t.Errorf("timeColor(%d) = %v, want %v", tt.remaining, got, tt.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		fraction float64
		full     int
	}{
		{0, 0},
		{0.5, 5},
		{1, 10},
		{2, 10},
	}

	for _, tt := range tests {
		bar := progressBar(theme, 10, tt.fraction)
		if got := strings.Count(bar, "█"); got != tt.full {
			t.Errorf("progressBar(%v) has %d full cells, want %d", tt.fraction, got, tt.full)
		}
		if got := strings.Count(bar, "░"); got != 10-tt.full {
			t.Errorf("progressBar(%v) has %d empty cells, want %d", tt.fraction, got, 10-tt.full)
		}
	}

	if progressBar(theme, 0, 1) != "" {
		t.Error("zero-width bar should be empty")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("abcd", 10); got != "   abcd" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("too long", 4); got != "too long" {
		t.Errorf("centerText overflow = %q", got)
	}
}
