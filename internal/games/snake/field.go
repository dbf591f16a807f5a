package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// CellKind is the occupant of a field cell.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellWall
	CellSnake
	CellFood
)

// CellWidth is the number of terminal columns per field cell.
const CellWidth = 2

// Field is the render cache of the grid. It mirrors walls, snake and food
// and is patched after every mutation instead of being rebuilt.
type Field struct {
	width  int
	height int
	cells  []CellKind
}

// NewField creates an empty field.
func NewField(width, height int) *Field {
	return &Field{
		width:  width,
		height: height,
		cells:  make([]CellKind, width*height),
	}
}

// Rebuild repaints every cell from the authoritative state.
func (f *Field) Rebuild(walls *Walls, s *Snake, food core.Point) {
	for i := range f.cells {
		f.cells[i] = CellEmpty
	}
	for _, p := range walls.List() {
		f.Set(p, CellWall)
	}
	for _, p := range s.body {
		f.Set(p, CellSnake)
	}
	if food != noFood {
		f.Set(food, CellFood)
	}
}

// Set changes one cell. Out-of-range points are ignored.
func (f *Field) Set(p core.Point, k CellKind) {
	if p.X < 0 || p.X >= f.width || p.Y < 0 || p.Y >= f.height {
		return
	}
	f.cells[p.Y*f.width+p.X] = k
}

// At returns the occupant of a cell; out-of-range points read as wall.
func (f *Field) At(p core.Point) CellKind {
	if p.X < 0 || p.X >= f.width || p.Y < 0 || p.Y >= f.height {
		return CellWall
	}
	return f.cells[p.Y*f.width+p.X]
}

// Equal reports whether two fields hold the same cells.
func (f *Field) Equal(o *Field) bool {
	if f.width != o.width || f.height != o.height {
		return false
	}
	for i := range f.cells {
		if f.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Draw renders the field with its top-left corner at (x0, y0).
func (f *Field) Draw(dst *core.Screen, x0, y0 int, glyphs config.GlyphConfig) {
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			glyph, color := glyphFor(f.cells[y*f.width+x], glyphs)
			dst.DrawTextColor(x0+x*CellWidth, y0+y, glyph, color)
		}
	}
}

func glyphFor(k CellKind, g config.GlyphConfig) (string, core.Color) {
	switch k {
	case CellWall:
		return g.Wall, core.ColorWall
	case CellSnake:
		return g.Snake, core.ColorSnake
	case CellFood:
		return g.Food, core.ColorFood
	default:
		return g.Empty, core.ColorDefault
	}
}
