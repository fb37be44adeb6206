// Package render rasterizes simulation meshes into styled terminal frames.
// It is the terminal-backed implementation of the renderer the simulation
// core is written against: anything that can turn a vertex/index mesh plus a
// camera offset into a drawn frame.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-paddle/internal/geom"
	"github.com/vovakirdan/tui-paddle/internal/mesh"
)

// cellAspect compensates for terminal cells being roughly twice as tall as
// they are wide, so world-space circles stay round on screen.
const cellAspect = 0.5

// maxSurfaceCells refuses absurd surfaces before allocating frame buffers
// for them.
const maxSurfaceCells = 1 << 20

const blockGlyph = '█'

// Renderer draws a mesh into a terminal cell grid. The world's vertical
// extent [-1, 1] maps to the full surface height; the horizontal extent
// follows from the cell aspect ratio, centered on the camera offset.
type Renderer struct {
	width  int
	height int
	styles map[[3]float32]lipgloss.Style
}

// New creates a renderer for a surface of the given size in cells.
func New(width, height int) *Renderer {
	return &Renderer{
		width:  width,
		height: height,
		styles: make(map[[3]float32]lipgloss.Style),
	}
}

// Resize changes the surface dimensions.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Size returns the current surface dimensions.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Render rasterizes the mesh against the camera offset and returns the
// styled frame. A cell is lit when its center lies inside a mesh triangle;
// later triangles win, so entities pushed last draw on top. Failures are
// reported as SurfaceError values per the taxonomy in surface.go.
func (r *Renderer) Render(m *mesh.Builder, cameraX float32) (string, error) {
	if r.width <= 0 || r.height <= 0 {
		return "", &SurfaceError{Kind: SurfaceLost, Reason: fmt.Sprintf("degenerate surface %dx%d", r.width, r.height)}
	}
	if r.width*r.height > maxSurfaceCells {
		return "", &SurfaceError{Kind: SurfaceOutOfMemory, Reason: fmt.Sprintf("surface %dx%d exceeds cell budget", r.width, r.height)}
	}

	vertices := m.Vertices()
	for _, idx := range m.Indices() {
		if int(idx) >= len(vertices) {
			return "", &SurfaceError{Kind: SurfaceOther, Reason: fmt.Sprintf("index %d out of range for %d vertices", idx, len(vertices))}
		}
	}

	// World units per cell follow from mapping [-1, 1] onto the height.
	unitsPerRow := 2.0 / float32(r.height)
	unitsPerCol := unitsPerRow * cellAspect

	type cell struct {
		lit   bool
		color [3]float32
	}
	cells := make([]cell, r.width*r.height)

	for row := 0; row < r.height; row++ {
		y := 1 - (float32(row)+0.5)*unitsPerRow
		for col := 0; col < r.width; col++ {
			x := cameraX + (float32(col)-float32(r.width)/2+0.5)*unitsPerCol
			p := geom.V(x, y)

			// Walk triangles back to front so the last-pushed one wins.
			for i := m.TriangleCount() - 1; i >= 0; i-- {
				v1, v2, v3 := m.Triangle(i)
				if geom.TriangleContains(p,
					geom.V(v1.Position[0], v1.Position[1]),
					geom.V(v2.Position[0], v2.Position[1]),
					geom.V(v3.Position[0], v3.Position[1])) {
					cells[row*r.width+col] = cell{lit: true, color: v1.Color}
					break
				}
			}
		}
	}

	// Group consecutive cells with the same color to keep the ANSI overhead
	// down, the same way the platform renders rune buffers.
	var sb strings.Builder
	sb.Grow(r.width*r.height*2 + r.height)

	for row := 0; row < r.height; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		col := 0
		for col < r.width {
			start := cells[row*r.width+col]
			var run strings.Builder
			for col < r.width {
				c := cells[row*r.width+col]
				if c.lit != start.lit || c.color != start.color {
					break
				}
				if c.lit {
					run.WriteRune(blockGlyph)
				} else {
					run.WriteRune(' ')
				}
				col++
			}
			if start.lit {
				sb.WriteString(r.style(start.color).Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
	}

	return sb.String(), nil
}

// style returns a cached truecolor foreground style for an RGB color with
// components in [0, 1].
func (r *Renderer) style(color [3]float32) lipgloss.Style {
	if s, ok := r.styles[color]; ok {
		return s
	}
	hex := fmt.Sprintf("#%02x%02x%02x",
		uint8(geom.Clamp(color[0], 0, 1)*255),
		uint8(geom.Clamp(color[1], 0, 1)*255),
		uint8(geom.Clamp(color[2], 0, 1)*255))
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	r.styles[color] = s
	return s
}
