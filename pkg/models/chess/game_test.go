package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlayingGame(t *testing.T, rows, cols int, names ...string) *Game {
	t.Helper()
	g := NewGame(NewRoster(names...))
	require.NoError(t, g.SetSize(rows, cols))
	require.NoError(t, g.Start())
	return g
}

func play(t *testing.T, g *Game, line string) int {
	t.Helper()
	cmd, err := ParseCommand(line)
	require.NoError(t, err, line)
	_, score, err := g.Play(cmd.Move)
	require.NoError(t, err, line)
	return score
}

func TestStartRequiresSetup(t *testing.T) {
	g := NewGame(NewRoster("a", "b"))
	assert.ErrorIs(t, g.Start(), ErrNoBoard)

	require.NoError(t, g.SetSize(2, 2))
	require.NoError(t, g.Start())
	assert.Equal(t, StatePlaying, g.State)
	assert.ErrorIs(t, g.Start(), ErrNotInSetup)
	assert.ErrorIs(t, g.SetSize(3, 3), ErrNotInSetup)

	solo := NewGame(NewRoster("a"))
	require.NoError(t, solo.SetSize(2, 2))
	assert.ErrorIs(t, solo.Start(), ErrTooFewPlayers)
}

func TestBoardCopyCannotBypassRules(t *testing.T) {
	g := newPlayingGame(t, 1, 1, "a", "b")

	b := g.Board()
	for _, e := range b.Edges() {
		_, err := b.Claim(e, 1)
		require.NoError(t, err)
	}
	require.NoError(t, b.Resize(3, 3))

	assert.Zero(t, g.ClaimedBoxes())
	assert.Zero(t, g.TotalScore())
	assert.False(t, g.Finished())
	assert.Equal(t, 1, g.BoxRows())
	assert.Len(t, g.FreeEdges(), 4)

	assert.ErrorIs(t, g.SetSize(3, 3), ErrNotInSetup, "resizing is refused once playing")
	assert.Equal(t, 1, g.BoxCols())
	assert.Nil(t, NewGame(NewRoster("a", "b")).Board())
}

func TestApplyBeforeStart(t *testing.T) {
	g := NewGame(NewRoster("a", "b"))
	require.NoError(t, g.SetSize(2, 2))
	_, err := g.Apply(Edge{Row: 0, Col: 1})
	assert.ErrorIs(t, err, ErrNotPlaying)
}

func TestSingleBoxScenario(t *testing.T) {
	g := newPlayingGame(t, 2, 2, "alice", "bob")

	movers := []PlayerID{}
	for _, line := range []string{"h 0 0 1", "v 0 0 1", "h 1 0 1"} {
		movers = append(movers, g.Current().ID)
		assert.Zero(t, play(t, g, line))
		assert.Zero(t, g.TotalScore())
	}
	assert.Equal(t, []PlayerID{1, 2, 1}, movers)

	fourth := g.Current()
	assert.Equal(t, 1, play(t, g, "v 1 0 1"))
	assert.Equal(t, 1, g.Score(fourth.ID))
	assert.Equal(t, 1, g.TotalScore())
	assert.Equal(t, fourth.ID, g.BoxOwner(NewBox(0, 0)))
	assert.Equal(t, fourth, g.Current(), "completing a box keeps the turn")
}

func TestRejectedClaimLeavesScores(t *testing.T) {
	g := newPlayingGame(t, 2, 2, "a", "b")
	play(t, g, "h 0 0 1")
	before := g.Snapshot()

	cmd, _ := ParseCommand("0 0 T")
	_, _, err := g.Play(cmd.Move)
	assert.ErrorIs(t, err, ErrEdgeAlreadyClaimed)
	assert.Equal(t, before, g.Snapshot())
}

func TestDoubleBoxCreditsMoverTwice(t *testing.T) {
	g := newPlayingGame(t, 1, 2, "a", "b")
	shared := NewBox(0, 0).Edge(Right)
	for _, e := range g.Edges() {
		if e != shared {
			_, err := g.Apply(e)
			require.NoError(t, err)
		}
	}

	mover := g.Current()
	score, err := g.Apply(shared)
	require.NoError(t, err)
	assert.Equal(t, 2, score)
	assert.Equal(t, 2, g.Score(mover.ID))
	assert.True(t, g.Finished())
	assert.Equal(t, g.TotalBoxes(), g.TotalScore())
}

func TestFullGameScoresSumToBoxes(t *testing.T) {
	for _, size := range [][2]int{{2, 2}, {3, 4}, {5, 2}} {
		g := newPlayingGame(t, size[0], size[1], "a", "b", "c")
		for !g.Finished() {
			free := g.FreeEdges()
			require.NotEmpty(t, free)
			_, err := g.Apply(free[len(free)/2])
			require.NoError(t, err)
		}
		assert.Equal(t, size[0]*size[1], g.TotalScore())
		assert.True(t, g.Full())

		_, err := g.Apply(Edge{Row: 0, Col: 1})
		assert.ErrorIs(t, err, ErrNotPlaying)
	}
}

func TestTeamRotationAlternatesTeams(t *testing.T) {
	r, err := NewTeamRoster(
		TeamSpec{Name: "red", Members: []string{"r1", "r2"}},
		TeamSpec{Name: "blue", Members: []string{"b1", "b2", "b3"}},
	)
	require.NoError(t, err)
	assert.Equal(t, []PlayerID{1, 3, 2, 4, 1, 5}, r.Order())

	order := r.Order()
	for i := range order {
		a, _ := r.Player(order[i])
		b, _ := r.Player(order[(i+1)%len(order)])
		assert.NotEqual(t, a.Team, b.Team)
	}

	_, err = NewTeamRoster(TeamSpec{Name: "full", Members: []string{"a"}}, TeamSpec{Name: "empty"})
	assert.ErrorIs(t, err, ErrTooFewPlayers)

	_, err = NewTeamRoster(TeamSpec{Name: "solo", Members: []string{"a", "b"}})
	assert.ErrorIs(t, err, ErrTooFewPlayers, "a single team has nobody to play against")
}

func TestTeamScoresAggregate(t *testing.T) {
	r, err := NewTeamRoster(
		TeamSpec{Name: "red", Members: []string{"r1", "r2"}},
		TeamSpec{Name: "blue", Members: []string{"b1", "b2"}},
	)
	require.NoError(t, err)
	g := NewGame(r)
	require.NoError(t, g.SetSize(2, 2))
	require.NoError(t, g.Start())

	for !g.Finished() {
		_, err := g.Apply(g.FreeEdges()[0])
		require.NoError(t, err)
	}
	assert.Equal(t, 4, g.TeamScore(1)+g.TeamScore(2))

	o := g.Outcome()
	require.Len(t, o.Standings, 2)
	assert.GreaterOrEqual(t, o.Standings[0].Score, o.Standings[1].Score)
}

func TestOutcomeTie(t *testing.T) {
	g := newPlayingGame(t, 1, 2, "a", "b")
	g.scores[1], g.scores[2] = 1, 1

	o := g.Outcome()
	assert.True(t, o.Tie)
	assert.Equal(t, []string{"a", "b"}, o.Leaders)

	g.scores[2] = 2
	o = g.Outcome()
	assert.False(t, o.Tie)
	assert.Equal(t, "b Win!", o.String())
}

func TestSnapshotRestore(t *testing.T) {
	g := newPlayingGame(t, 2, 2, "a", "b")
	play(t, g, "h 0 0 1")
	s := g.Snapshot()
	play(t, g, "v 0 0 1")
	play(t, g, "h 1 0 1")

	g.Restore(s)
	assert.Equal(t, s, g.Snapshot())
	assert.Equal(t, PlayerID(2), g.Current().ID)
	assert.False(t, g.Claimed(Edge{Row: 1, Col: 0}))
}

func TestParseCommandTokens(t *testing.T) {
	for line, want := range map[string]CommandKind{
		"":       CommandBlank,
		"   ":    CommandBlank,
		"hint":   CommandHint,
		"UNDO":   CommandUndo,
		" Quit ": CommandQuit,
		"h 0 0 1": CommandMove,
	} {
		cmd, err := ParseCommand(line)
		require.NoError(t, err, line)
		assert.Equal(t, want, cmd.Kind, line)
	}

	for _, line := range []string{"x 0 0 1", "h a 0 1", "1 x", "1 2 Q", "hello", "1 2 3 4 5"} {
		_, err := ParseCommand(line)
		assert.ErrorIs(t, err, ErrMalformedMove, line)
	}
}
