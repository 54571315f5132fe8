package modeler

import (
	"errors"

	"github.com/philipparndt/goextrude/pkg/correspondence"
	"github.com/philipparndt/goextrude/pkg/kernel"
)

var (
	// ErrModeBlocked means the requested transition is not allowed from
	// the current mode
	ErrModeBlocked = errors.New("mode blocked")

	// ErrNoSolid means the operation needs an existing solid
	ErrNoSolid = errors.New("no solid")

	ErrDegeneratePolygon = kernel.ErrDegeneratePolygon
	ErrInvalidHeight     = kernel.ErrInvalidHeight
	ErrAsymmetricMesh    = correspondence.ErrAsymmetricMesh
	ErrVertexOutOfRange  = correspondence.ErrVertexOutOfRange
)

// Message turns a controller error into a short text for the user
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrModeBlocked):
		return "Please close the current edit first"
	case errors.Is(err, ErrNoSolid):
		return "Draw a shape first"
	case errors.Is(err, ErrDegeneratePolygon):
		return "The sketch needs at least three distinct points"
	case errors.Is(err, ErrInvalidHeight):
		return "Extrusion height must be greater than zero"
	case errors.Is(err, ErrAsymmetricMesh):
		return "This solid cannot be edited vertex by vertex"
	case errors.Is(err, ErrVertexOutOfRange):
		return "No such vertex"
	default:
		return err.Error()
	}
}
