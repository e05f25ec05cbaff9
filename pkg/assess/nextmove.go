package assess

import (
	"errors"

	"github.com/HuXin0817/dots-and-boxes-console/pkg/models/chess"
)

var ErrNoLegalMove = errors.New("no legal move left")

// Suggest returns the first free edge, in row-major lattice order, that
// completes a box. Without one it falls back to the first free edge.
func Suggest(b *chess.Board) (chess.Edge, error) {
	freeEdges := b.FreeEdges()
	if len(freeEdges) == 0 {
		return chess.Edge{}, ErrNoLegalMove
	}

	for _, e := range freeEdges {
		if len(b.ObtainsBoxes(e)) > 0 {
			return e, nil
		}
	}
	return freeEdges[0], nil
}
