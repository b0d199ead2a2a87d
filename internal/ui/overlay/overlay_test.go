package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func screen(rows, width int) string {
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = strings.Repeat(".", width)
	}
	return strings.Join(lines, "\n")
}

func TestPlace(t *testing.T) {
	tests := []struct {
		name  string
		block string
		x, y  int
		want  []string
	}{
		{
			name:  "top left",
			block: "ab\ncd",
			x:     0, y: 0,
			want: []string{"ab....", "cd....", "......"},
		},
		{
			name:  "bottom right",
			block: "ab\ncd",
			x:     4, y: 1,
			want: []string{"......", "....ab", "....cd"},
		},
		{
			name:  "spaces overwrite",
			block: "a b",
			x:     1, y: 1,
			want: []string{"......", ".a b..", "......"},
		},
		{
			name:  "clipped right",
			block: "abcd",
			x:     4, y: 0,
			want: []string{"....ab", "......", "......"},
		},
		{
			name:  "clipped left",
			block: "abcd",
			x:     -2, y: 0,
			want: []string{"cd....", "......", "......"},
		},
		{
			name:  "rows past the bottom are dropped",
			block: "ab\ncd\nef",
			x:     0, y: 2,
			want: []string{"......", "......", "ab...."},
		},
		{
			name:  "negative row",
			block: "ab\ncd",
			x:     0, y: -1,
			want: []string{"cd....", "......", "......"},
		},
		{
			name:  "entirely off screen",
			block: "ab",
			x:     10, y: 0,
			want: []string{"......", "......", "......"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Place(screen(3, 6), tt.block, tt.x, tt.y, 6)
			if got != strings.Join(tt.want, "\n") {
				t.Errorf("Place() =\n%s\nwant\n%s", got, strings.Join(tt.want, "\n"))
			}
		})
	}
}

func TestPlaceStyledBlock(t *testing.T) {
	block := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")).Render("hi")
	got := Place(screen(1, 6), block, 2, 0, 6)

	if plain := ansi.Strip(got); plain != "..hi.." {
		t.Errorf("stripped = %q, want %q", plain, "..hi..")
	}
	if ansi.StringWidth(got) != 6 {
		t.Errorf("width = %d, want 6", ansi.StringWidth(got))
	}
}

func TestPlacePadsShortBase(t *testing.T) {
	got := Place("ab", "X", 4, 0, 6)
	if got != "ab  X " {
		t.Errorf("Place() = %q, want %q", got, "ab  X ")
	}
}
