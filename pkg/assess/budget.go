package assess

import (
	"errors"

	"github.com/HuXin0817/dots-and-boxes-console/pkg/models/chess"
)

const DefaultHints = 2

var ErrHintsExhausted = errors.New("no hints left")

type Strategy func(*chess.Board) (chess.Edge, error)

// Budget gates hint requests with a per-player allowance that only
// resets when a new game begins.
type Budget struct {
	max      int
	used     map[chess.PlayerID]int
	strategy Strategy
}

func NewBudget(limit int, strategy Strategy) *Budget {
	if limit < 0 {
		limit = 0
	}
	if strategy == nil {
		strategy = Suggest
	}
	return &Budget{
		max:      limit,
		used:     make(map[chess.PlayerID]int),
		strategy: strategy,
	}
}

func (h *Budget) Max() int { return h.max }

func (h *Budget) Remaining(id chess.PlayerID) int {
	return min(max(h.max-h.used[id], 0), h.max)
}

// Consume spends one hint and returns the strategy's suggestion. A failed
// suggestion does not cost a hint.
func (h *Budget) Consume(id chess.PlayerID, b *chess.Board) (chess.Edge, error) {
	if h.Remaining(id) == 0 {
		return chess.Edge{}, ErrHintsExhausted
	}

	e, err := h.strategy(b)
	if err != nil {
		return chess.Edge{}, err
	}

	h.used[id]++
	return e, nil
}

func (h *Budget) ResetForNewGame() {
	h.used = make(map[chess.PlayerID]int)
}
