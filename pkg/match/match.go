package match

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-console/pkg/assess"
	"github.com/HuXin0817/dots-and-boxes-console/pkg/lifecycle"
	"github.com/HuXin0817/dots-and-boxes-console/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-console/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-console/pkg/recorder"
	"github.com/HuXin0817/dots-and-boxes-console/pkg/render"
	"github.com/HuXin0817/dots-and-boxes-console/pkg/timer"
	"github.com/HuXin0817/dots-and-boxes-console/pkg/undo"
)

const (
	Normal = "normal"
	Easy   = "easy"
	Hard   = "hard"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

type Options struct {
	Hints         int
	AskDifficulty bool
	Recorder      *recorder.Recorder
	Clock         timer.Clock
}

// Match plays Dots-and-Boxes on a console. It implements lifecycle.Hooks and
// lifecycle.DifficultyHooks.
type Match struct {
	roster   *chess.Roster
	game     *chess.Game
	hints    int
	ask      bool
	budget   *assess.Budget
	undo     *undo.Manager[chess.Snapshot]
	timer    *timer.TurnTimer
	render   *render.Renderer
	recorder *recorder.Recorder
	in       lifecycle.Prompter
	out      io.Writer
	uid      message.GameUid
	// elapsed holds the thinking time of every move on the undo stack.
	elapsed []time.Duration
}

func New(roster *chess.Roster, in lifecycle.Prompter, r *render.Renderer, opts Options) *Match {
	m := &Match{
		roster:   roster,
		hints:    max(opts.Hints, 0),
		ask:      opts.AskDifficulty,
		render:   r,
		recorder: opts.Recorder,
		in:       in,
		out:      r.Writer(),
	}
	m.budget = assess.NewBudget(m.hints, assess.Suggest)
	if opts.Clock != nil {
		m.timer = timer.NewWithClock(opts.Clock)
	} else {
		m.timer = timer.New()
	}
	if m.recorder == nil {
		m.recorder = recorder.Nop()
	}
	return m
}

func (m *Match) Game() *chess.Game { return m.game }

func (m *Match) GameUid() message.GameUid { return m.uid }

func (m *Match) Difficulties() []string {
	if !m.ask {
		return nil
	}
	return []string{Normal, Easy, Hard}
}

// SetDifficulty picks the hint allowance: easy grants one extra hint and
// hard grants none.
func (m *Match) SetDifficulty(level string) error {
	switch level {
	case Normal:
		m.budget = assess.NewBudget(m.hints, assess.Suggest)
	case Easy:
		m.budget = assess.NewBudget(m.hints+1, assess.Suggest)
	case Hard:
		m.budget = assess.NewBudget(0, assess.Suggest)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDifficulty, level)
	}
	return nil
}

func (m *Match) ValidateSize(rows, cols int) error {
	return lifecycle.ValidateSize(rows, cols)
}

func (m *Match) SetSize(rows, cols int) error {
	m.game = chess.NewGame(m.roster)
	return m.game.SetSize(rows, cols)
}

func (m *Match) InitializeBoard() error {
	if m.game == nil {
		return chess.ErrNoBoard
	}
	if m.game.State != chess.StateSetup {
		if err := m.SetSize(m.game.BoxRows(), m.game.BoxCols()); err != nil {
			return err
		}
	}
	if err := m.game.Start(); err != nil {
		return err
	}

	m.budget.ResetForNewGame()
	m.timer.ResetForNewGame()
	m.elapsed = nil
	if m.undo == nil {
		m.undo = undo.NewManager[chess.Snapshot](m.game)
	} else {
		m.undo.ResetForNewGame(m.game)
	}
	m.uid = message.NewGameUid()

	r := m.newRecord(message.KindGameStart)
	r.BoxRows, r.BoxCols = m.game.BoxRows(), m.game.BoxCols()
	for _, p := range m.roster.Players() {
		r.Players = append(r.Players, p.String())
	}
	m.recorder.Record(r)

	logx.Infow("match started",
		logx.Field("gameUid", m.uid),
		logx.Field("rows", m.game.BoxRows()),
		logx.Field("cols", m.game.BoxCols()),
		logx.Field("players", r.Players))
	fmt.Fprintf(m.out, "Match %s: %dx%d boxes, %d hint(s) each.\n", m.uid.Short(), m.game.BoxRows(), m.game.BoxCols(), m.budget.Max())
	return nil
}

func (m *Match) Render() {
	m.render.Game(m.game)
}

func (m *Match) IsTerminal() bool {
	return m.game.Finished()
}

func (m *Match) ReadAndApplyOneTurn(ctx context.Context) error {
	logger := logx.WithContext(ctx)
	p := m.game.Current()

	m.timer.Start(p.ID)
	line, err := m.in.Prompt(ctx, fmt.Sprintf("%s> ", p))
	if err != nil {
		m.timer.Cancel()
		return err
	}

	cmd, err := chess.ParseCommand(line)
	if err != nil {
		m.timer.Cancel()
		fmt.Fprintln(m.out, err)
		return nil
	}

	switch cmd.Kind {
	case chess.CommandQuit:
		m.timer.Cancel()
		return lifecycle.ErrQuit
	case chess.CommandBlank:
		m.timer.Cancel()
		fmt.Fprintln(m.out, "Enter a move, hint, undo or quit.")
	case chess.CommandHint:
		m.timer.Cancel()
		m.hint(logger, p)
	case chess.CommandUndo:
		m.timer.Cancel()
		m.takeBack(logger, p)
	case chess.CommandMove:
		m.move(logger, p, cmd.Move)
	}
	return nil
}

func (m *Match) hint(logger logx.Logger, p chess.Player) {
	e, err := m.budget.Consume(p.ID, m.game.Board())
	if err != nil {
		fmt.Fprintln(m.out, err)
		return
	}

	logger.Infow("hint given", logx.Field("gameUid", m.uid), logx.Field("player", p.String()), logx.Field("edge", e.Command()))
	fmt.Fprintf(m.out, "Hint: %s (%d left)\n", e.Command(), m.budget.Remaining(p.ID))
}

func (m *Match) takeBack(logger logx.Logger, p chess.Player) {
	if !m.undo.UndoLastFor(p.ID) {
		fmt.Fprintln(m.out, undo.ErrUndoRefused)
		return
	}
	if n := len(m.elapsed); n > 0 {
		m.timer.Deduct(p.ID, m.elapsed[n-1])
		m.elapsed = m.elapsed[:n-1]
	}

	m.recorder.Record(m.newRecord(message.KindUndo))
	logger.Infow("move undone", logx.Field("gameUid", m.uid), logx.Field("player", p.String()))
	fmt.Fprintf(m.out, "Move undone, %s to play.\n", m.game.Current())
}

func (m *Match) move(logger logx.Logger, p chess.Player, mv chess.Move) {
	m.undo.RecordBeforeMove(p.ID)
	e, completed, err := m.game.Play(mv)
	if err != nil {
		m.undo.Discard()
		m.timer.Cancel()
		fmt.Fprintln(m.out, err)
		return
	}
	elapsed := m.timer.Stop(p.ID)
	m.elapsed = append(m.elapsed, elapsed)

	r := m.newRecord(message.KindMove)
	r.Player, r.MoveEdge, r.Completed, r.ElapsedMs = p.String(), e.Command(), completed, elapsed.Milliseconds()
	m.recorder.Record(r)
	logger.Infow("move applied",
		logx.Field("gameUid", m.uid),
		logx.Field("step", m.game.StepCount()),
		logx.Field("player", p.String()),
		logx.Field("edge", e.Command()),
		logx.Field("completed", completed),
		logx.Field("elapsed", elapsed.String()))

	msg := fmt.Sprintf("%s took %s in %v", p, e.Command(), elapsed.Round(time.Millisecond))
	if completed > 0 {
		msg += fmt.Sprintf(", completed %d box(es) and moves again", completed)
	}
	fmt.Fprintln(m.out, msg+".")
}

func (m *Match) ReportOutcome() {
	m.render.Outcome(m.game, m.timer.Total)

	r := m.newRecord(message.KindGameEnd)
	o := m.game.Outcome()
	if o.Tie {
		r.Winner = "draw: " + strings.Join(o.Leaders, ",")
	} else if len(o.Leaders) > 0 {
		r.Winner = o.Leaders[0]
	}
	m.recorder.Record(r)
	logx.Infow("match finished", logx.Field("gameUid", m.uid), logx.Field("outcome", o.String()))
}

func (m *Match) newRecord(kind message.RecordKind) message.Record {
	r := message.NewRecord(m.uid, kind, time.Now())
	r.Step = m.game.StepCount()
	r.Scores = make(map[string]int, m.roster.Len())
	for _, p := range m.roster.Players() {
		r.Scores[p.String()] = m.game.Score(p.ID)
	}
	return r
}
