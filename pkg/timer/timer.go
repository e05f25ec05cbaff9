package timer

import (
	"time"

	"github.com/zeromicro/go-zero/core/timex"

	"github.com/HuXin0817/dots-and-boxes-console/pkg/models/chess"
)

// Clock returns a monotonic reading.
type Clock func() time.Duration

// TurnTimer measures how long the current player takes over a move. It only
// reports; it never interrupts a slow player.
type TurnTimer struct {
	clock   Clock
	running bool
	start   time.Duration
	player  chess.PlayerID
	totals  map[chess.PlayerID]time.Duration
}

func New() *TurnTimer {
	return NewWithClock(timex.Now)
}

func NewWithClock(clock Clock) *TurnTimer {
	return &TurnTimer{
		clock:  clock,
		totals: make(map[chess.PlayerID]time.Duration),
	}
}

// Start arms the timer for id, replacing any earlier arming.
func (t *TurnTimer) Start(id chess.PlayerID) {
	t.running = true
	t.start = t.clock()
	t.player = id
}

// Stop returns the elapsed time for id's turn. It returns zero and changes
// nothing when the timer is not running or is armed for someone else.
func (t *TurnTimer) Stop(id chess.PlayerID) time.Duration {
	if !t.running || t.player != id {
		return 0
	}

	elapsed := t.clock() - t.start
	t.running = false
	t.totals[id] += elapsed
	return elapsed
}

// Cancel drops the current arming without recording a duration.
func (t *TurnTimer) Cancel() {
	t.running = false
	t.player = chess.Nobody
}

func (t *TurnTimer) Running() bool {
	return t.running
}

// Total is the sum of every stopped turn for id.
func (t *TurnTimer) Total(id chess.PlayerID) time.Duration {
	return t.totals[id]
}

// Deduct takes d back out of id's total, for a move that was undone.
func (t *TurnTimer) Deduct(id chess.PlayerID, d time.Duration) {
	t.totals[id] = max(t.totals[id]-d, 0)
}

func (t *TurnTimer) ResetForNewGame() {
	t.Cancel()
	t.totals = make(map[chess.PlayerID]time.Duration)
}
