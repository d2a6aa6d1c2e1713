package viz

import (
	"strings"
	"testing"
)

func TestCanvas_SetAndString(t *testing.T) {
	c := NewCanvas(4, 2)

	out := c.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, r := range lines[0] {
		if r != 0x2800 {
			t.Fatalf("fresh canvas should be blank braille, got %U", r)
		}
	}

	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("top-left dot = %U, want U+2801", c.Grid[0][0])
	}

	c.Set(7, 7)
	if c.Grid[1][3] == 0x2800 {
		t.Error("bottom-right dot not set")
	}
}

func TestCanvas_SetOutOfBounds(t *testing.T) {
	c := NewCanvas(4, 2)

	// Must not panic or wrap.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(8, 0)
	c.Set(0, 8)

	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatalf("out-of-bounds set leaked into the canvas: %U", r)
			}
		}
	}
}

func TestCanvas_Clear(t *testing.T) {
	c := NewCanvas(4, 2)
	c.DrawLine(0, 0, 7, 7)
	c.Clear()

	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatalf("clear left a dot: %U", r)
			}
		}
	}
}

func TestCanvas_DrawLine(t *testing.T) {
	c := NewCanvas(8, 4)
	c.DrawLine(0, 0, 15, 15)

	if c.Grid[0][0] == 0x2800 {
		t.Error("line start not drawn")
	}
	if c.Grid[3][7] == 0x2800 {
		t.Error("line end not drawn")
	}

	lit := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				lit++
			}
		}
	}
	if lit < 4 {
		t.Errorf("diagonal should touch several cells, got %d", lit)
	}
}
