package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/philipparndt/goextrude/pkg/geometry"
)

const (
	defaultDistance = 20.0
	defaultYaw      = -math.Pi / 2
	defaultPitch    = 0.6
	topDownDistance = 15.0
	maxPitch        = math.Pi / 2
	minDistance     = 0.1
)

// Camera is an orbit camera around Target in a Z-up world
type Camera struct {
	Target   geometry.Vector3
	Distance float64
	Yaw      float64 // around Z, radians
	Pitch    float64 // above the ground plane, radians
	FOV      float64 // vertical field of view in radians
	Near     float64
	Far      float64
	Width    int
	Height   int
}

// NewCamera creates a camera looking at the origin from the front
func NewCamera(width, height int) *Camera {
	c := &Camera{Width: width, Height: height}
	c.Reset()
	return c
}

// Reset restores the initial view
func (c *Camera) Reset() {
	c.Target = geometry.Vector3{}
	c.Distance = defaultDistance
	c.Yaw = defaultYaw
	c.Pitch = defaultPitch
	c.FOV = mgl64.DegToRad(45)
	c.Near = 0.1
	c.Far = 1000
}

// TopDown looks straight down the Z axis at center, +Y pointing up on screen
func (c *Camera) TopDown(center geometry.Vector3) {
	c.Target = center
	c.Distance = topDownDistance
	c.Yaw = defaultYaw
	c.Pitch = maxPitch
}

// Frame moves the target to the box center and backs off until it fits
func (c *Camera) Frame(bbox geometry.BoundingBox) {
	if bbox.IsEmpty() {
		return
	}
	c.Target = bbox.Center()
	c.Distance = math.Max(bbox.Diagonal()/math.Tan(c.FOV/2)*0.6, minDistance)
}

// Orbit rotates around the target
func (c *Camera) Orbit(deltaYaw, deltaPitch float64) {
	c.Yaw += deltaYaw
	c.Pitch = mgl64.Clamp(c.Pitch+deltaPitch, -maxPitch, maxPitch)
}

// Zoom scales the distance to the target
func (c *Camera) Zoom(delta float64) {
	c.Distance = math.Max(c.Distance*(1.0+delta), minDistance)
}

// Position returns the eye position
func (c *Camera) Position() geometry.Vector3 {
	return c.Target.Add(fromVec(c.direction()).Mul(c.Distance))
}

// direction points from the target towards the eye
func (c *Camera) direction() mgl64.Vec3 {
	cp, sp := math.Cos(c.Pitch), math.Sin(c.Pitch)
	return mgl64.Vec3{cp * math.Cos(c.Yaw), cp * math.Sin(c.Yaw), sp}
}

// up is the derivative of direction by pitch, so it stays orthogonal to the
// view axis even when looking straight down
func (c *Camera) up() mgl64.Vec3 {
	cp, sp := math.Cos(c.Pitch), math.Sin(c.Pitch)
	return mgl64.Vec3{-sp * math.Cos(c.Yaw), -sp * math.Sin(c.Yaw), cp}
}

// View returns the world-to-camera matrix
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(toVec(c.Position()), toVec(c.Target), c.up())
}

// Projection returns the perspective matrix
func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(c.FOV, c.aspect(), c.Near, c.Far)
}

func (c *Camera) aspect() float64 {
	if c.Height <= 0 {
		return 1
	}
	return float64(c.Width) / float64(c.Height)
}

// Project maps a world point to screen coordinates with the origin at the
// top left. depth is the distance along the view axis.
func (c *Camera) Project(p geometry.Vector3) (screenX, screenY, depth float64, visible bool) {
	view := c.View()
	eye := view.Mul4x1(toVec(p).Vec4(1))
	depth = -eye.Z()
	if depth < c.Near || depth > c.Far {
		return 0, 0, depth, false
	}
	win := mgl64.Project(toVec(p), view, c.Projection(), 0, 0, c.Width, c.Height)
	return win.X(), float64(c.Height) - win.Y(), depth, true
}

// Ray returns the eye position and the normalized direction through a
// screen position
func (c *Camera) Ray(screenX, screenY float64) (origin, direction geometry.Vector3, err error) {
	view, proj := c.View(), c.Projection()
	winY := float64(c.Height) - screenY
	near, err := mgl64.UnProject(mgl64.Vec3{screenX, winY, 0}, view, proj, 0, 0, c.Width, c.Height)
	if err != nil {
		return geometry.Vector3{}, geometry.Vector3{}, err
	}
	far, err := mgl64.UnProject(mgl64.Vec3{screenX, winY, 1}, view, proj, 0, 0, c.Width, c.Height)
	if err != nil {
		return geometry.Vector3{}, geometry.Vector3{}, err
	}
	return fromVec(near), fromVec(far.Sub(near)).Normalize(), nil
}

// PlanePoint intersects the ray through a screen position with the
// horizontal plane at height z
func (c *Camera) PlanePoint(screenX, screenY, z float64) (geometry.Vector3, bool) {
	origin, dir, err := c.Ray(screenX, screenY)
	if err != nil || math.Abs(dir.Z) < rayEpsilon {
		return geometry.Vector3{}, false
	}
	t := (z - origin.Z) / dir.Z
	if t <= 0 {
		return geometry.Vector3{}, false
	}
	return origin.Add(dir.Mul(t)), true
}

func toVec(v geometry.Vector3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromVec(v mgl64.Vec3) geometry.Vector3 {
	return geometry.NewVector3(v.X(), v.Y(), v.Z())
}
