package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/philipparndt/goextrude/pkg/geometry"
	"github.com/philipparndt/goextrude/pkg/modeler"
)

var (
	backgroundColor = color.RGBA{30, 30, 35, 255}
	gridColor       = color.RGBA{55, 55, 62, 255}
	previewColor    = color.RGBA{255, 200, 60, 255}
	handleColor     = color.RGBA{80, 160, 255, 255}
	activeColor     = color.RGBA{255, 80, 80, 255}
	captionColor    = color.RGBA{220, 220, 220, 255}
)

// lightDir points from the light into the scene
var lightDir = geometry.NewVector3(-0.4, -0.6, -1.0).Normalize()

// Render rasterizes the scene with the given caption lines in the top left
func (s *Scene) Render(caption ...string) *image.RGBA {
	r := newRaster(s.Camera.Width, s.Camera.Height, backgroundColor)
	s.drawGrid(r)

	ids := s.ids()
	for _, id := range ids {
		if m := s.meshes[id]; m.Kind == modeler.KindSolid {
			s.drawSolid(r, m)
		}
	}
	for _, id := range ids {
		m := s.meshes[id]
		switch m.Kind {
		case modeler.KindPreview:
			s.drawPolyline(r, m.Positions, previewColor)
		case modeler.KindHandle:
			s.drawHandle(r, m)
		}
	}

	drawCaption(r.img, caption)
	return r.img
}

// WritePNG renders the scene and encodes it as PNG
func (s *Scene) WritePNG(w io.Writer, caption ...string) error {
	if err := png.Encode(w, s.Render(caption...)); err != nil {
		return fmt.Errorf("failed to encode preview: %w", err)
	}
	return nil
}

// shade is Lambert lighting with an ambient floor
func shade(normal geometry.Vector3, selected bool) color.RGBA {
	intensity := math.Max(0.3, -normal.Dot(lightDir))
	base := 200.0
	rgb := [3]float64{0.5, 0.6, 1.0}
	if selected {
		rgb = [3]float64{1.0, 0.75, 0.35}
	}
	return color.RGBA{
		R: uint8(base * intensity * rgb[0]),
		G: uint8(base * intensity * rgb[1]),
		B: uint8(base * intensity * rgb[2]),
		A: 255,
	}
}

func (s *Scene) drawSolid(r *raster, m modeler.MeshData) {
	for i := 0; i+2 < len(m.Indices); i += 3 {
		tri := geometry.NewTriangle(
			m.Positions[m.Indices[i]],
			m.Positions[m.Indices[i+1]],
			m.Positions[m.Indices[i+2]],
		)
		a, okA := s.screen(tri.V1)
		b, okB := s.screen(tri.V2)
		c, okC := s.screen(tri.V3)
		if !okA || !okB || !okC {
			continue
		}
		r.fillTriangle(a, b, c, shade(tri.CalculateNormal(), m.Selected))
	}
}

func (s *Scene) drawPolyline(r *raster, points []geometry.Vector3, col color.RGBA) {
	for i := 0; i+1 < len(points); i++ {
		a, okA := s.screen(points[i])
		b, okB := s.screen(points[i+1])
		if okA && okB {
			r.drawLine(int(a.X), int(a.Y), int(b.X), int(b.Y), col)
		}
	}
}

func (s *Scene) drawHandle(r *raster, m modeler.MeshData) {
	if len(m.Positions) == 0 {
		return
	}
	p, ok := s.screen(m.Positions[0])
	if !ok {
		return
	}
	col := handleColor
	if m.Selected {
		col = activeColor
	}
	r.drawSquare(int(p.X), int(p.Y), 3, col)
}

// drawGrid draws unit lines on the ground plane around the camera target
func (s *Scene) drawGrid(r *raster) {
	const extent = 10
	cx, cy := math.Round(s.Camera.Target.X), math.Round(s.Camera.Target.Y)
	for k := -extent; k <= extent; k++ {
		f := float64(k)
		s.drawPolyline(r, []geometry.Vector3{
			geometry.NewVector3(cx+f, cy-extent, 0),
			geometry.NewVector3(cx+f, cy+extent, 0),
		}, gridColor)
		s.drawPolyline(r, []geometry.Vector3{
			geometry.NewVector3(cx-extent, cy+f, 0),
			geometry.NewVector3(cx+extent, cy+f, 0),
		}, gridColor)
	}
}

func (s *Scene) screen(p geometry.Vector3) (screenPoint, bool) {
	x, y, depth, visible := s.Camera.Project(p)
	return screenPoint{X: x, Y: y, Z: depth}, visible
}

func drawCaption(img *image.RGBA, lines []string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(captionColor),
		Face: basicfont.Face7x13,
	}
	for i, line := range lines {
		d.Dot = fixed.P(8, 18+i*16)
		d.DrawString(line)
	}
}
