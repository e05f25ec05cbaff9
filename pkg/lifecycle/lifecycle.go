package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"
)

const (
	DefaultRows = 3
	DefaultCols = 3
	MinSize     = 2
	MaxSize     = 20
)

// ErrQuit unwinds the match loop. Hooks return it when the player typed quit.
var ErrQuit = errors.New("quit")

var ErrSizeOutOfRange = fmt.Errorf("size must be between %d and %d", MinSize, MaxSize)

// Hooks are the steps a concrete game plugs into the Driver.
type Hooks interface {
	ValidateSize(rows, cols int) error
	SetSize(rows, cols int) error
	InitializeBoard() error
	Render()
	ReadAndApplyOneTurn(ctx context.Context) error
	IsTerminal() bool
	ReportOutcome()
}

// DifficultyHooks is implemented by games that ask for a difficulty after the
// size. An empty Difficulties list skips the prompt.
type DifficultyHooks interface {
	Difficulties() []string
	SetDifficulty(level string) error
}

type State int8

const (
	StateAwaitingSize State = iota
	StateAwaitingDifficulty
	StatePlaying
	StateFinished
	StateExit
)

func (s State) String() string {
	switch s {
	case StateAwaitingSize:
		return "AwaitingSize"
	case StateAwaitingDifficulty:
		return "AwaitingDifficulty"
	case StatePlaying:
		return "Playing"
	case StateFinished:
		return "Finished"
	case StateExit:
		return "Exit"
	}
	return ""
}

// IsQuit reports whether a prompt answer is the quit token.
func IsQuit(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), "quit")
}

// ValidateSize accepts board sizes inside [MinSize, MaxSize].
func ValidateSize(rows, cols int) error {
	if rows < MinSize || rows > MaxSize || cols < MinSize || cols > MaxSize {
		return fmt.Errorf("%w: got %dx%d", ErrSizeOutOfRange, rows, cols)
	}
	return nil
}

// Driver runs matches through their lifecycle:
// size -> (difficulty) -> playing -> finished -> size again or exit.
type Driver struct {
	hooks  Hooks
	in     Prompter
	out    io.Writer
	state  State
	quit   bool
	rounds int

	defaultRows, defaultCols int
}

func NewDriver(hooks Hooks, in Prompter, out io.Writer) *Driver {
	return &Driver{
		hooks:       hooks,
		in:          in,
		out:         out,
		defaultRows: DefaultRows,
		defaultCols: DefaultCols,
	}
}

// WithDefaultSize replaces the 3x3 fallback used when the size answer is
// unusable. Sizes the hooks reject are ignored.
func (d *Driver) WithDefaultSize(rows, cols int) *Driver {
	if d.hooks.ValidateSize(rows, cols) == nil {
		d.defaultRows, d.defaultCols = rows, cols
	}
	return d
}

func (d *Driver) State() State { return d.state }

// Quit reports whether the last Run ended because a player quit.
func (d *Driver) Quit() bool { return d.quit }

// Rounds is the number of matches played to completion.
func (d *Driver) Rounds() int { return d.rounds }

// Run drives matches until the players quit or decline a replay. Only
// errors other than ErrQuit are returned.
func (d *Driver) Run(ctx context.Context) error {
	logger := logx.WithContext(ctx)
	d.state, d.quit = StateAwaitingSize, false

	for {
		var err error
		prev := d.state
		switch d.state {
		case StateAwaitingSize:
			err = d.awaitSize(ctx)
		case StateAwaitingDifficulty:
			err = d.awaitDifficulty(ctx)
		case StatePlaying:
			err = d.play(ctx)
		case StateFinished:
			err = d.finish(ctx)
		case StateExit:
			return nil
		}

		if errors.Is(err, ErrQuit) {
			logger.Infow("match quit", logx.Field("state", prev.String()))
			d.quit = true
			d.state = StateExit
			continue
		}
		if err != nil {
			return err
		}

		if prev != d.state {
			logger.Debugw("lifecycle transition", logx.Field("from", prev.String()), logx.Field("to", d.state.String()))
		}
	}
}

func (d *Driver) awaitSize(ctx context.Context) error {
	line, err := d.in.Prompt(ctx, fmt.Sprintf("Board size (rows cols, %d-%d) [%dx%d]: ", MinSize, MaxSize, d.defaultRows, d.defaultCols))
	if err != nil {
		return err
	}

	rows, cols, err := parseSize(line)
	if err == nil {
		err = d.hooks.ValidateSize(rows, cols)
	}
	if err != nil {
		fmt.Fprintf(d.out, "Invalid size (%v), using %dx%d.\n", err, d.defaultRows, d.defaultCols)
		rows, cols = d.defaultRows, d.defaultCols
	}

	if err = d.hooks.SetSize(rows, cols); err != nil {
		return err
	}

	d.state = StatePlaying
	if dh, ok := d.hooks.(DifficultyHooks); ok && len(dh.Difficulties()) > 0 {
		d.state = StateAwaitingDifficulty
	}
	return nil
}

func (d *Driver) awaitDifficulty(ctx context.Context) error {
	dh := d.hooks.(DifficultyHooks)
	levels := dh.Difficulties()

	line, err := d.in.Prompt(ctx, fmt.Sprintf("Difficulty (%s) [%s]: ", strings.Join(levels, "/"), levels[0]))
	if err != nil {
		return err
	}

	level := strings.ToLower(strings.TrimSpace(line))
	if level == "" {
		level = levels[0]
	}

	if err = dh.SetDifficulty(level); err != nil {
		fmt.Fprintf(d.out, "Unknown difficulty %q, using %s.\n", level, levels[0])
		if err = dh.SetDifficulty(levels[0]); err != nil {
			return err
		}
	}

	d.state = StatePlaying
	return nil
}

func (d *Driver) play(ctx context.Context) error {
	if err := d.hooks.InitializeBoard(); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		d.hooks.Render()
		if err := d.hooks.ReadAndApplyOneTurn(ctx); err != nil {
			return err
		}

		if d.hooks.IsTerminal() {
			break
		}
	}

	d.hooks.Render()
	d.hooks.ReportOutcome()
	d.rounds++
	d.state = StateFinished
	return nil
}

func (d *Driver) finish(ctx context.Context) error {
	line, err := d.in.Prompt(ctx, "Play again? (y/N): ")
	if err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		d.state = StateAwaitingSize
	default:
		d.state = StateExit
	}
	return nil
}

func parseSize(line string) (rows, cols int, err error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ',' || r == 'x' || r == 'X'
	})
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected two numbers, got %q", strings.TrimSpace(line))
	}

	if rows, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, err
	}
	if cols, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}
