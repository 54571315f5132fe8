package app

import (
	"context"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/goextrude/pkg/modeler"
	"github.com/philipparndt/goextrude/pkg/watcher"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32    // elevation
	angleY        float32    // azimuth
	target        rl.Vector3 // can be panned
	defaultDist   float32
	defaultAngleX float32
	defaultAngleY float32
}

// sceneMesh is a controller mesh and its GPU copy
type sceneMesh struct {
	data     modeler.MeshData
	mesh     rl.Mesh
	uploaded bool
}

// SceneState holds the meshes the controller created
type SceneState struct {
	meshes   map[modeler.MeshID]*sceneMesh
	material rl.Material
}

// ViewSettings holds display settings
type ViewSettings struct {
	showWireframe bool
	showFilled    bool
	showGrid      bool
}

// gesture is what the held left mouse button is doing
type gesture int

const (
	gestureNone gesture = iota
	gestureOrbit
	gesturePan
	gestureSolid
	gestureVertex
)

// InteractionState holds mouse and interaction state
type InteractionState struct {
	mouseDownPos rl.Vector2
	mouseMoved   bool
	gesture      gesture
	dragPlaneY   float32    // raylib height of the plane a grab moves in
	lastPlanePos rl.Vector3 // previous pointer position on that plane
	hoverVertex  int        // -1 when no handle is under the cursor
}

// HeightInput is the numeric extrusion-height field
type HeightInput struct {
	active bool
	text   string
}

// UIState holds UI-related state
type UIState struct {
	font        rl.Font
	message     string
	messageTime time.Time
	height      HeightInput
}

// ScriptState holds the replayed script and its watcher
type ScriptState struct {
	path    string
	watcher *watcher.FileWatcher
	cancel  context.CancelFunc
	reload  chan string // written by the watcher goroutine, drained by the main loop
}
