package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/goextrude/pkg/analysis"
	"github.com/philipparndt/goextrude/pkg/modeler"
	"github.com/philipparndt/goextrude/version"
)

const messageDuration = 3 * time.Second

var modeColors = map[modeler.Mode]rl.Color{
	modeler.Selector:   rl.LightGray,
	modeler.Draw:       rl.Yellow,
	modeler.Edit:       rl.Orange,
	modeler.VertexEdit: rl.SkyBlue,
}

// drawUI draws the mode indicator, solid statistics and key help
func (app *App) drawUI() {
	snap := app.ctrl.Snapshot()
	font := app.UI.font
	y := float32(10)
	lineHeight := float32(20)
	fontSize16 := float32(16)
	fontSize14 := float32(14)
	fontSize12 := float32(12)

	text := func(s string, size float32, col rl.Color) {
		rl.DrawTextEx(font, s, rl.Vector2{X: 10, Y: y}, size, 1, col)
		y += lineHeight
	}

	// === MODE ===
	text(fmt.Sprintf("Mode: %s", snap.Mode), fontSize16, modeColors[snap.Mode])
	if app.UI.height.active {
		text(fmt.Sprintf("  Height: %s_", app.UI.height.text), fontSize14, rl.Yellow)
	} else {
		text(fmt.Sprintf("  Height: %.2f", snap.Height), fontSize14, rl.White)
	}
	switch snap.Mode {
	case modeler.Draw:
		text(fmt.Sprintf("  Points: %d", len(snap.SketchPoints)), fontSize14, rl.White)
	case modeler.VertexEdit:
		text(fmt.Sprintf("  Handles: %d", snap.Handles), fontSize14, rl.White)
		if app.Interaction.hoverVertex >= 0 {
			text(fmt.Sprintf("  Vertex: %d", app.Interaction.hoverVertex), fontSize14, rl.SkyBlue)
		}
	}
	y += lineHeight

	// === SOLID ===
	if s := app.ctrl.Solid(); s != nil {
		result := analysis.AnalyzeSolid(s)
		text("Solid:", fontSize16, rl.Yellow)
		text(fmt.Sprintf("  Vertices: %d | Triangles: %d", result.VertexCount, result.TriangleCount), fontSize14, rl.White)
		text(fmt.Sprintf("  Base Area: %.2f", result.BaseArea), fontSize14, rl.White)
		text(fmt.Sprintf("  Volume: %.2f", result.Volume), fontSize14, rl.White)
		text(fmt.Sprintf("  Size: %.2f x %.2f x %.2f", result.Dimensions.X, result.Dimensions.Y, result.Dimensions.Z), fontSize14, rl.White)
		y += lineHeight
	}

	// === KEYS ===
	text("Keys:", fontSize16, rl.Yellow)
	text("  D: Draw | E: Edit | V: Vertex edit | Esc: Exit", fontSize14, rl.LightGray)
	text("  S/Enter: Save vertex edits | Del: Delete", fontSize14, rl.LightGray)
	text("  H: Type height | +/-: Step height", fontSize14, rl.LightGray)
	text("  Home: Reset view | T: Top view", fontSize14, rl.LightGray)
	text("  Left Drag: Rotate | Shift+Drag: Pan | Wheel: Zoom", fontSize14, rl.LightGray)
	text("  W: Wireframe | F: Fill | G: Grid", fontSize14, rl.LightGray)

	app.drawMessage()

	// Version and FPS in bottom-left corner
	bottomY := float32(rl.GetScreenHeight()) - 30
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawTextEx(font, versionText, rl.Vector2{X: 10, Y: bottomY}, fontSize12, 1, rl.Gray)
	versionWidth := rl.MeasureTextEx(font, versionText, fontSize12, 1).X
	rl.DrawTextEx(font, fmt.Sprintf("FPS: %d", rl.GetFPS()), rl.Vector2{X: 10 + versionWidth + 15, Y: bottomY}, fontSize12, 1, rl.Lime)
}

// drawMessage shows the last rejected command in the bottom-right corner
func (app *App) drawMessage() {
	if app.UI.message == "" || time.Since(app.UI.messageTime) > messageDuration {
		return
	}
	fontSize := float32(16)
	padding := float32(10)
	size := rl.MeasureTextEx(app.UI.font, app.UI.message, fontSize, 1)
	w, h := size.X+padding*2, size.Y+padding*2
	x := float32(rl.GetScreenWidth()) - w - 20
	y := float32(rl.GetScreenHeight()) - h - 20

	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), rl.NewColor(0, 0, 0, 200))
	rl.DrawRectangleLines(int32(x), int32(y), int32(w), int32(h), rl.Red)
	rl.DrawTextEx(app.UI.font, app.UI.message, rl.Vector2{X: x + padding, Y: y + padding}, fontSize, 1, rl.Red)
}
