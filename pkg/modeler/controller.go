// Package modeler is the sketch-to-solid state machine.
//
// A Controller owns the sketch, the solid and every mesh handed to the
// renderer. The UI shell forwards pick and drag events and discrete
// commands to it; each call runs to completion before the next one is
// accepted, so a Controller is not safe for concurrent use.
//
// Failed calls leave the mode, the sketch and the solid as they were.
package modeler

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/philipparndt/goextrude/pkg/config"
	"github.com/philipparndt/goextrude/pkg/geometry"
	"github.com/philipparndt/goextrude/pkg/kernel"
	"github.com/philipparndt/goextrude/pkg/sketch"
)

// Controller routes UI events to the sketch, kernel and vertex editing
type Controller struct {
	r     Renderer
	cfg   config.Config
	log   *slog.Logger
	arena *arena

	mode   Mode
	height float64

	sketch      *sketch.Session
	previewMesh MeshID

	polygon   geometry.Polygon // authoritative base ring of the solid
	solid     *kernel.Solid
	solidMesh MeshID

	handles    []MeshID      // one per solid vertex while in VertexEdit
	editBackup *kernel.Solid // solid as it was when VertexEdit was entered

	drag drag

	listeners []func(from, to Mode)
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the logger for transitions and rejected events
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithConfig replaces the default configuration
func WithConfig(cfg config.Config) Option {
	return func(c *Controller) {
		c.cfg = cfg
	}
}

// OnModeChange registers a callback run after every mode transition
func OnModeChange(fn func(from, to Mode)) Option {
	return func(c *Controller) {
		c.listeners = append(c.listeners, fn)
	}
}

// New creates a controller in Selector mode
func New(r Renderer, opts ...Option) *Controller {
	c := &Controller{
		r:   r,
		cfg: config.Default(),
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.arena = newArena(r)
	c.height = c.cfg.DefaultHeight
	c.sketch = sketch.NewSession(c.cfg.ClosureThreshold)
	c.drag.vertex = -1
	return c
}

// Mode returns the current mode
func (c *Controller) Mode() Mode {
	return c.mode
}

// Height returns the current extrusion height
func (c *Controller) Height() float64 {
	return c.height
}

// HasSolid reports whether a solid exists
func (c *Controller) HasSolid() bool {
	return c.solid != nil
}

// Solid returns a copy of the live solid, or nil
func (c *Controller) Solid() *kernel.Solid {
	return c.solid.Clone()
}

// Polygon returns a copy of the committed base ring
func (c *Controller) Polygon() geometry.Polygon {
	return c.polygon.Clone()
}

// SketchPoints returns the points of the open sketch
func (c *Controller) SketchPoints() []geometry.Point2D {
	return c.sketch.Points()
}

// Config returns the configuration in use
func (c *Controller) Config() config.Config {
	return c.cfg
}

func (c *Controller) setMode(to Mode) {
	from := c.mode
	if from == to {
		return
	}
	c.mode = to
	c.log.Info("mode changed", "from", from, "to", to)
	for _, fn := range c.listeners {
		fn(from, to)
	}
}

func (c *Controller) blocked(op string) error {
	c.log.Warn("transition blocked", "op", op, "mode", c.mode)
	return fmt.Errorf("%w: cannot %s in %s mode", ErrModeBlocked, op, c.mode)
}

// EnterDraw starts a new sketch
func (c *Controller) EnterDraw() error {
	switch c.mode {
	case Selector:
		c.sketch.Reset()
		c.setMode(Draw)
		return nil
	case Draw:
		return c.blocked("start a sketch while another is pending")
	default:
		return c.blocked("start a sketch")
	}
}

// EnterEdit selects the solid and enables whole-solid dragging
func (c *Controller) EnterEdit() error {
	switch c.mode {
	case Edit:
		return nil
	case Selector:
		if c.solid == nil {
			return fmt.Errorf("%w: nothing to edit", ErrNoSolid)
		}
		c.setMode(Edit)
		c.refreshSolidMesh()
		return nil
	default:
		return c.blocked("enter edit")
	}
}

// EnterVertexEdit shows one handle per vertex of the solid
func (c *Controller) EnterVertexEdit() error {
	switch c.mode {
	case VertexEdit:
		return nil
	case Selector, Edit:
	default:
		return c.blocked("enter vertex edit")
	}
	if c.solid == nil {
		return fmt.Errorf("%w: nothing to edit", ErrNoSolid)
	}
	if c.drag.kind != dragNone {
		return c.blocked("enter vertex edit during a drag")
	}
	if err := validateSolid(c.solid); err != nil {
		return err
	}

	c.editBackup = c.solid.Clone()
	c.handles = make([]MeshID, c.solid.VertexCount())
	for i := range c.handles {
		c.handles[i] = c.arena.create(c.handleData(i))
	}
	c.setMode(VertexEdit)
	c.refreshSolidMesh()
	return nil
}

// ExitToSelector leaves the current mode. An open sketch or uncommitted
// vertex edits are discarded.
func (c *Controller) ExitToSelector() {
	switch c.mode {
	case Draw:
		c.cancelSketch()
	case Edit:
		c.drag = drag{vertex: -1}
	case VertexEdit:
		c.drag = drag{vertex: -1}
		if c.editBackup != nil {
			c.solid = c.editBackup
			c.editBackup = nil
		}
		c.disposeHandles()
	}
	c.setMode(Selector)
	c.refreshSolidMesh()
}

// SaveVertexEdits rebuilds the solid from the edited base ring and returns
// to Selector. On failure the controller stays in VertexEdit with the live
// edits intact.
func (c *Controller) SaveVertexEdits() error {
	if c.mode != VertexEdit {
		return c.blocked("save vertex edits")
	}
	c.drag = drag{vertex: -1}

	rebuilt, err := commitSolid(c.solid, c.height)
	if err != nil {
		c.log.Warn("vertex edit commit failed", "err", err)
		return err
	}

	c.editBackup = nil
	c.disposeHandles()
	c.replaceSolid(rebuilt)
	c.setMode(Selector)
	c.refreshSolidMesh()
	return nil
}

// DeleteSolid disposes everything and returns to Selector
func (c *Controller) DeleteSolid() {
	c.arena.disposeAll()
	c.previewMesh = NoMesh
	c.solidMesh = NoMesh
	c.handles = nil
	c.sketch.Reset()
	c.solid = nil
	c.editBackup = nil
	c.polygon = geometry.Polygon{}
	c.drag = drag{vertex: -1}
	c.setMode(Selector)
}

// SetExtrusionHeight changes the extrusion height and rebuilds an existing
// solid. Heights above zero but below the configured minimum are raised to
// it. It fails with ErrInvalidHeight for h <= 0 and is blocked while
// vertex edits are pending.
func (c *Controller) SetExtrusionHeight(h float64) error {
	if !(h > 0) || math.IsInf(h, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidHeight, h)
	}
	if c.mode == VertexEdit {
		return c.blocked("change the height")
	}
	h = math.Max(h, c.cfg.MinHeight)

	if c.solid != nil {
		rebuilt, err := kernel.Extrude(c.polygon, h)
		if err != nil {
			return err
		}
		c.replaceSolid(rebuilt)
	}
	c.height = h
	c.log.Debug("extrusion height set", "height", h)
	return nil
}

// StepExtrusionHeight adds delta to the height, stopping at the minimum
func (c *Controller) StepExtrusionHeight(delta float64) error {
	return c.SetExtrusionHeight(math.Max(c.height+delta, c.cfg.MinHeight))
}

// ResetView restores the initial camera
func (c *Controller) ResetView() {
	c.r.ResetView()
}

// HandlePick processes a click at a screen position according to the mode
func (c *Controller) HandlePick(screenX, screenY float64) error {
	switch c.mode {
	case Selector:
		hit := c.r.Pick(screenX, screenY)
		if hit.Hit && c.solid != nil && hit.Mesh == c.solidMesh {
			return c.EnterEdit()
		}
		return nil
	case Draw:
		hit := c.r.Pick(screenX, screenY)
		if !hit.Hit {
			c.log.Debug("pick missed the ground plane", "x", screenX, "y", screenY)
			return nil
		}
		return c.AddSketchPoint(hit.Point.XY())
	case VertexEdit:
		if i, ok := c.PickVertex(screenX, screenY); ok {
			c.log.Debug("vertex picked", "index", i)
		}
		return nil
	default:
		return nil
	}
}

// AddSketchPoint adds a sketch-plane point in Draw mode. The first point
// turns the camera top-down; closing the loop builds the solid and returns
// to Selector.
func (c *Controller) AddSketchPoint(p geometry.Point2D) error {
	if c.mode != Draw {
		return c.blocked("add a sketch point")
	}

	first := c.sketch.IsEmpty()
	res := c.sketch.AddPoint(p)
	switch res.Status {
	case sketch.Ignored:
		c.log.Debug("sketch point ignored", "point", p)
		return nil
	case sketch.Open:
		if first {
			c.r.FocusTopDown(p.Lift(0))
		}
		c.updatePreview(p)
		return nil
	}

	c.arena.dispose(&c.previewMesh)
	built, err := kernel.Extrude(res.Polygon, c.height)
	if err != nil {
		c.log.Warn("sketch closed but could not be extruded", "err", err, "vertices", res.Polygon.Len())
		return err
	}

	c.log.Info("sketch closed", "vertices", built.RingSize, "height", c.height)
	c.replaceSolid(built)
	c.setMode(Selector)
	return nil
}

// Hover moves the rubber-band preview to the cursor in Draw mode
func (c *Controller) Hover(screenX, screenY float64) {
	if c.mode != Draw || c.sketch.IsEmpty() {
		return
	}
	if hit := c.r.Pick(screenX, screenY); hit.Hit {
		c.updatePreview(hit.Point.XY())
	}
}

func (c *Controller) updatePreview(cursor geometry.Point2D) {
	line := c.sketch.Preview(cursor)
	if len(line) == 0 {
		c.arena.dispose(&c.previewMesh)
		return
	}
	data := MeshData{Kind: KindPreview, Positions: make([]geometry.Vector3, len(line))}
	for i, p := range line {
		data.Positions[i] = p.Lift(0)
	}
	if c.previewMesh == NoMesh {
		c.previewMesh = c.arena.create(data)
		return
	}
	c.arena.update(c.previewMesh, data)
}

func (c *Controller) cancelSketch() {
	if !c.sketch.IsEmpty() {
		c.log.Info("sketch discarded", "points", c.sketch.Len())
	}
	c.sketch.Reset()
	c.arena.dispose(&c.previewMesh)
}

// replaceSolid installs s as the live solid and its base ring as the
// committed polygon, creating or updating the solid mesh
func (c *Controller) replaceSolid(s *kernel.Solid) {
	c.solid = s
	c.polygon = s.BaseRing()
	if c.solidMesh == NoMesh {
		c.solidMesh = c.arena.create(c.solidData())
		return
	}
	c.refreshSolidMesh()
}

func (c *Controller) refreshSolidMesh() {
	if c.solid == nil {
		return
	}
	c.arena.update(c.solidMesh, c.solidData())
}

func (c *Controller) solidData() MeshData {
	return MeshData{
		Kind:      KindSolid,
		Positions: append([]geometry.Vector3(nil), c.solid.Positions...),
		Normals:   append([]geometry.Vector3(nil), c.solid.Normals...),
		Indices:   append([]uint32(nil), c.solid.Indices...),
		Selected:  c.mode == Edit || c.mode == VertexEdit,
	}
}

func (c *Controller) handleData(i int) MeshData {
	return MeshData{
		Kind:      KindHandle,
		Positions: []geometry.Vector3{c.solid.Positions[i]},
		Selected:  c.drag.kind == dragVertex && c.drag.vertex == i,
	}
}

func (c *Controller) disposeHandles() {
	for i := range c.handles {
		c.arena.dispose(&c.handles[i])
	}
	c.handles = nil
}

// Snapshot is a read-only view of the controller for UI indicators
type Snapshot struct {
	Mode         Mode
	Height       float64
	HasSolid     bool
	SketchPoints []geometry.Point2D
	Polygon      geometry.Polygon
	VertexCount  int
	Dragging     bool
	DragVertex   int // -1 unless a vertex drag is active
	SolidMesh    MeshID
	Handles      int
	LiveMeshes   int
}

// Snapshot captures the current state
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Mode:         c.mode,
		Height:       c.height,
		HasSolid:     c.solid != nil,
		SketchPoints: c.sketch.Points(),
		Polygon:      c.polygon.Clone(),
		Dragging:     c.drag.kind != dragNone,
		DragVertex:   -1,
		SolidMesh:    c.solidMesh,
		Handles:      c.arena.count(KindHandle),
		LiveMeshes:   len(c.arena.live),
	}
	if c.solid != nil {
		s.VertexCount = c.solid.VertexCount()
	}
	if c.drag.kind == dragVertex {
		s.DragVertex = c.drag.vertex
	}
	return s
}
