package server

import (
	"fmt"

	"github.com/flatgeom/flatgeom/internal/core/scene"
	"github.com/flatgeom/flatgeom/pkg/geometry"
)

// QueryRequest is one shape-pair query sent over the websocket.
type QueryRequest struct {
	Op string         `json:"op"` // "collides" or "distance"
	A  scene.ShapeDoc `json:"a"`
	B  scene.ShapeDoc `json:"b"`
}

// QueryResponse answers a QueryRequest. Exactly one of the result fields
// is set on success; Error carries a message otherwise.
type QueryResponse struct {
	Collides *bool    `json:"collides,omitempty"`
	Distance *float64 `json:"distance,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// PairResponse is one colliding pair reported by the pairs endpoint.
type PairResponse struct {
	A string `json:"a"`
	B string `json:"b"`
}

func answer(req QueryRequest) QueryResponse {
	a, err := req.A.Decode()
	if err != nil {
		return errorResponse(fmt.Errorf("shape a: %w", err))
	}
	b, err := req.B.Decode()
	if err != nil {
		return errorResponse(fmt.Errorf("shape b: %w", err))
	}

	switch req.Op {
	case "collides":
		hit, err := geometry.Collides(a, b)
		if err != nil {
			return errorResponse(err)
		}
		return QueryResponse{Collides: &hit}
	case "distance":
		d, err := geometry.Distance(a, b)
		if err != nil {
			return errorResponse(err)
		}
		return QueryResponse{Distance: &d}
	default:
		return errorResponse(fmt.Errorf("%w: %q", ErrUnknownOp, req.Op))
	}
}

func errorResponse(err error) QueryResponse {
	return QueryResponse{Error: err.Error()}
}
