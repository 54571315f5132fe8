package modeler

import (
	"fmt"
	"math"

	"github.com/philipparndt/goextrude/pkg/correspondence"
	"github.com/philipparndt/goextrude/pkg/geometry"
	"github.com/philipparndt/goextrude/pkg/kernel"
)

type dragKind int

const (
	dragNone dragKind = iota
	dragSolid
	dragVertex
)

// drag is the gesture currently held by the pointer
type drag struct {
	kind   dragKind
	vertex int
	moved  geometry.Point2D // accumulated planar delta
}

func validateSolid(s *kernel.Solid) error {
	return correspondence.Validate(s)
}

func commitSolid(s *kernel.Solid, height float64) (*kernel.Solid, error) {
	return correspondence.Commit(s, height)
}

// PickVertex returns the handle closest to a screen position within the
// configured handle radius
func (c *Controller) PickVertex(screenX, screenY float64) (int, bool) {
	if c.mode != VertexEdit || c.solid == nil {
		return -1, false
	}
	best, bestDist := -1, math.Inf(1)
	for i, p := range c.solid.Positions {
		sx, sy, visible := c.r.Project(p)
		if !visible {
			continue
		}
		d := math.Hypot(sx-screenX, sy-screenY)
		if d <= c.cfg.HandleRadius && d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// BeginVertexDrag grabs the handle of vertex i. Only one drag may be held
// at a time.
func (c *Controller) BeginVertexDrag(i int) error {
	if c.mode != VertexEdit {
		return c.blocked("drag a vertex")
	}
	if c.drag.kind != dragNone {
		return c.blocked(fmt.Sprintf("grab vertex %d while vertex %d is held", i, c.drag.vertex))
	}
	if i < 0 || i >= c.solid.VertexCount() {
		return fmt.Errorf("%w: %d", ErrVertexOutOfRange, i)
	}
	c.drag = drag{kind: dragVertex, vertex: i}
	c.refreshHandles(i)
	return nil
}

// DragVertex moves the held vertex and its pair by a planar delta
func (c *Controller) DragVertex(delta geometry.Point2D) error {
	if c.mode != VertexEdit || c.drag.kind != dragVertex {
		return c.blocked("move a vertex without a held handle")
	}
	if err := correspondence.MoveVertexBy(c.solid, c.drag.vertex, delta); err != nil {
		return err
	}
	c.drag.moved = c.drag.moved.Add(delta)
	c.refreshSolidMesh()
	c.refreshHandles(c.drag.vertex)
	return nil
}

// EndVertexDrag releases the held handle. The edit stays uncommitted.
func (c *Controller) EndVertexDrag() {
	if c.drag.kind != dragVertex {
		return
	}
	i := c.drag.vertex
	c.log.Debug("vertex drag finished", "index", i, "moved", c.drag.moved)
	c.drag = drag{vertex: -1}
	c.refreshHandles(i)
}

// BeginSolidDrag grabs the selected solid in Edit mode
func (c *Controller) BeginSolidDrag() error {
	if c.mode != Edit {
		return c.blocked("drag the solid")
	}
	if c.drag.kind != dragNone {
		return c.blocked("grab the solid twice")
	}
	c.drag = drag{kind: dragSolid, vertex: -1}
	return nil
}

// DragSolid translates the solid and its base ring in the sketch plane
func (c *Controller) DragSolid(delta geometry.Point2D) error {
	if c.mode != Edit || c.drag.kind != dragSolid {
		return c.blocked("move the solid without holding it")
	}
	c.solid.Translate(delta)
	c.polygon = c.polygon.Translate(delta)
	c.drag.moved = c.drag.moved.Add(delta)
	c.refreshSolidMesh()
	return nil
}

// EndSolidDrag releases the solid
func (c *Controller) EndSolidDrag() {
	if c.drag.kind != dragSolid {
		return
	}
	c.log.Debug("solid moved", "delta", c.drag.moved)
	c.drag = drag{vertex: -1}
}

func (c *Controller) refreshHandles(i int) {
	pair, err := correspondence.Paired(c.solid, i)
	if err != nil {
		return
	}
	for _, j := range []int{i, pair} {
		if j < len(c.handles) {
			c.arena.update(c.handles[j], c.handleData(j))
		}
	}
}
