package chess

import (
	"errors"

	"github.com/HuXin0817/dots-and-boxes-console/pkg/models/grid"
)

var (
	ErrInvalidDimension     = grid.ErrInvalidDimension
	ErrOutOfBounds          = grid.ErrOutOfBounds
	ErrEdgeAlreadyClaimed   = errors.New("edge already claimed")
	ErrNonAdjacentEndpoints = errors.New("endpoints are not adjacent")
	ErrNotAnEdge            = errors.New("position is not an edge")
	ErrMalformedMove        = errors.New("malformed move")
	ErrNotPlaying           = errors.New("game is not in progress")
	ErrNotInSetup           = errors.New("game is already set up")
	ErrTooFewPlayers        = errors.New("at least two players are required")
	ErrNoBoard              = errors.New("board size not set")
)
