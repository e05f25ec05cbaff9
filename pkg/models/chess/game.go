package chess

import (
	"fmt"
	"slices"
)

type State int8

const (
	StateSetup State = iota
	StatePlaying
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateSetup:
		return "Setup"
	case StatePlaying:
		return "Playing"
	case StateFinished:
		return "Finished"
	}
	return ""
}

// Game is the Dots-and-Boxes rules engine for a single match. The board is
// only mutated through Game methods.
type Game struct {
	board  *Board
	Roster *Roster
	State  State
	scores []int
	turn   int
	steps  int
}

func NewGame(roster *Roster) *Game {
	return &Game{
		Roster: roster,
		scores: make([]int, roster.Len()+1),
	}
}

// SetSize creates the board or resizes it while the game is still in setup.
func (g *Game) SetSize(boxRows, boxCols int) error {
	if g.State != StateSetup {
		return ErrNotInSetup
	}

	if g.board == nil {
		b, err := NewBoard(boxRows, boxCols)
		if err != nil {
			return err
		}
		g.board = b
		return nil
	}
	return g.board.Resize(boxRows, boxCols)
}

// Board returns a copy of the board; changes to it do not reach the game.
func (g *Game) Board() *Board {
	if g.board == nil {
		return nil
	}
	return g.board.Clone()
}

func (g *Game) BoxRows() int { return g.board.BoxRows }

func (g *Game) BoxCols() int { return g.board.BoxCols }

func (g *Game) TotalBoxes() int { return g.board.TotalBoxes() }

func (g *Game) ClaimedBoxes() int { return g.board.ClaimedBoxes() }

func (g *Game) Edges() []Edge { return g.board.Edges() }

func (g *Game) FreeEdges() []Edge { return g.board.FreeEdges() }

func (g *Game) Claimed(e Edge) bool { return g.board.Claimed(e) }

func (g *Game) BoxOwner(box Box) PlayerID { return g.board.BoxOwner(box) }

func (g *Game) Full() bool { return g.board.Full() }

func (g *Game) Start() error {
	if g.State != StateSetup {
		return ErrNotInSetup
	}
	if g.board == nil {
		return ErrNoBoard
	}
	if g.Roster.Sides() < 2 {
		return ErrTooFewPlayers
	}

	g.State = StatePlaying
	return nil
}

func (g *Game) Current() Player {
	p, _ := g.Roster.Player(g.Roster.order[g.turn])
	return p
}

// Turn is the index of the current seat in the roster order.
func (g *Game) Turn() int { return g.turn }

func (g *Game) StepCount() int { return g.steps }

// Apply claims e for the current player and returns how many boxes the claim
// completed. The turn passes only when nothing was completed.
func (g *Game) Apply(e Edge) (int, error) {
	if g.State != StatePlaying {
		return 0, ErrNotPlaying
	}

	p := g.Current()
	obtainsBoxes, err := g.board.Claim(e, p.ID)
	if err != nil {
		return 0, err
	}

	score := len(obtainsBoxes)
	g.scores[p.ID] += score
	g.steps++

	if score == 0 {
		g.turn = (g.turn + 1) % len(g.Roster.order)
	}

	if g.board.ClaimedBoxes() == g.board.TotalBoxes() {
		g.State = StateFinished
	}
	return score, nil
}

// Play resolves a typed move and applies it.
func (g *Game) Play(m Move) (Edge, int, error) {
	if g.board == nil {
		return Edge{}, 0, ErrNoBoard
	}

	e, err := g.board.Resolve(m)
	if err != nil {
		return Edge{}, 0, err
	}

	score, err := g.Apply(e)
	return e, score, err
}

func (g *Game) Finished() bool {
	return g.State == StateFinished
}

func (g *Game) Score(id PlayerID) int {
	if id < 1 || int(id) >= len(g.scores) {
		return 0
	}
	return g.scores[id]
}

func (g *Game) TeamScore(id TeamID) (score int) {
	t, ok := g.Roster.Team(id)
	if !ok {
		return 0
	}
	for _, m := range t.Members {
		score += g.scores[m]
	}
	return
}

// TotalScore is the sum of every player's score.
func (g *Game) TotalScore() (total int) {
	for _, s := range g.scores {
		total += s
	}
	return
}

type Standing struct {
	Name  string
	Score int
}

// Outcome ranks the competing sides. Tie is set when two or more sides share
// the highest score.
type Outcome struct {
	Standings []Standing
	Leaders   []string
	Tie       bool
}

func (o Outcome) String() string {
	if o.Tie {
		return fmt.Sprintf("Draw between %v!", o.Leaders)
	}
	if len(o.Leaders) == 0 {
		return ""
	}
	return fmt.Sprintf("%s Win!", o.Leaders[0])
}

func (g *Game) Outcome() (o Outcome) {
	if g.Roster.TeamMode() {
		for _, t := range g.Roster.teams {
			o.Standings = append(o.Standings, Standing{Name: t.Name, Score: g.TeamScore(t.ID)})
		}
	} else {
		for _, p := range g.Roster.players {
			o.Standings = append(o.Standings, Standing{Name: p.String(), Score: g.Score(p.ID)})
		}
	}

	slices.SortStableFunc(o.Standings, func(a, b Standing) int {
		return b.Score - a.Score
	})

	for _, s := range o.Standings {
		if s.Score != o.Standings[0].Score {
			break
		}
		o.Leaders = append(o.Leaders, s.Name)
	}
	o.Tie = len(o.Leaders) > 1
	return
}

// Snapshot is a full copy of the mutable match state.
type Snapshot struct {
	Owners []PlayerID
	Scores []int
	Turn   int
	Steps  int
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Owners: g.board.Owners(),
		Scores: slices.Clone(g.scores),
		Turn:   g.turn,
		Steps:  g.steps,
	}
}

func (g *Game) Restore(s Snapshot) {
	if err := g.board.SetOwners(s.Owners); err != nil {
		panic(err)
	}

	g.scores = slices.Clone(s.Scores)
	g.turn = s.Turn
	g.steps = s.Steps
	if g.board.ClaimedBoxes() < g.board.TotalBoxes() {
		g.State = StatePlaying
	}
}
