package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	defaultDistance = 20
	defaultAngleX   = 0.6
	topViewAngleX   = math.Pi/2 - 0.001 // straight down would make the up vector degenerate
	maxAngleX       = 1.5
)

func (app *App) initCamera() {
	app.Camera.defaultDist = defaultDistance
	app.Camera.defaultAngleX = defaultAngleX
	app.Camera.defaultAngleY = 0
	app.Camera.camera = rl.Camera3D{
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
	app.resetCameraView()
	app.updateCamera()
}

// resetCameraView resets the camera to the default view
func (app *App) resetCameraView() {
	app.Camera.distance = app.Camera.defaultDist
	app.Camera.angleX = app.Camera.defaultAngleX
	app.Camera.angleY = app.Camera.defaultAngleY
	app.Camera.target = rl.Vector3{}
}

// setCameraTopView looks down onto the sketch plane with +Y up on screen
func (app *App) setCameraTopView(center rl.Vector3) {
	app.Camera.angleX = topViewAngleX
	app.Camera.angleY = 0
	app.Camera.target = center
}

// updateCamera updates camera position based on angles
func (app *App) updateCamera() {
	x := app.Camera.distance * float32(math.Cos(float64(app.Camera.angleX))) * float32(math.Sin(float64(app.Camera.angleY)))
	y := app.Camera.distance * float32(math.Sin(float64(app.Camera.angleX)))
	z := app.Camera.distance * float32(math.Cos(float64(app.Camera.angleX))) * float32(math.Cos(float64(app.Camera.angleY)))

	app.Camera.camera.Position = rl.Vector3Add(app.Camera.target, rl.Vector3{X: x, Y: y, Z: z})
	app.Camera.camera.Target = app.Camera.target
}

// doOrbit rotates the camera around its target
func (app *App) doOrbit(delta rl.Vector2) {
	app.Camera.angleY -= delta.X * 0.01
	app.Camera.angleX += delta.Y * 0.01
	app.Camera.angleX = rl.Clamp(app.Camera.angleX, -maxAngleX, topViewAngleX)
}

// doPan performs camera panning based on mouse delta
func (app *App) doPan(delta rl.Vector2) {
	cam := app.Camera.camera
	forward := rl.Vector3Normalize(rl.Vector3Subtract(cam.Target, cam.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, cam.Up))
	up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, forward))

	panSpeed := app.Camera.distance * 0.001

	app.Camera.target = rl.Vector3Add(app.Camera.target, rl.Vector3Scale(right, -delta.X*panSpeed))
	app.Camera.target = rl.Vector3Add(app.Camera.target, rl.Vector3Scale(up, delta.Y*panSpeed))
}

// doZoom scales the camera distance by the wheel movement
func (app *App) doZoom(wheel float32) {
	app.Camera.distance *= 1.0 - wheel*0.05
	if app.Camera.distance < 1.0 {
		app.Camera.distance = 1.0
	}
}
