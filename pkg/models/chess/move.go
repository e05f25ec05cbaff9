package chess

import (
	"fmt"
	"strconv"
	"strings"
)

type MoveForm int8

const (
	// FormLattice is "<row> <col>" in raw lattice coordinates.
	FormLattice MoveForm = iota + 1
	// FormEndpoints is "h <row> <c1> <c2>" or "v <col> <r1> <r2>".
	FormEndpoints
	// FormBoxSide is "<row> <col> <T|B|L|R>" relative to a box.
	FormBoxSide
)

// Move is an edge claim as typed by a player. Board.Resolve turns it into
// a lattice Edge.
type Move struct {
	Form        MoveForm
	Orientation Orientation
	Line        int
	From        int
	To          int
	Row         int
	Col         int
	Side        Side
}

func (m Move) String() string {
	switch m.Form {
	case FormLattice:
		return fmt.Sprintf("%d %d", m.Row, m.Col)
	case FormEndpoints:
		return fmt.Sprintf("%s %d %d %d", strings.ToLower(m.Orientation.String()), m.Line, m.From, m.To)
	case FormBoxSide:
		return fmt.Sprintf("%d %d %v", m.Row, m.Col, m.Side)
	}
	return ""
}

type CommandKind int8

const (
	CommandBlank CommandKind = iota
	CommandMove
	CommandHint
	CommandUndo
	CommandQuit
)

func (k CommandKind) String() string {
	switch k {
	case CommandBlank:
		return "blank"
	case CommandMove:
		return "move"
	case CommandHint:
		return "hint"
	case CommandUndo:
		return "undo"
	case CommandQuit:
		return "quit"
	}
	return ""
}

type Command struct {
	Kind CommandKind
	Move Move
}

// ParseCommand parses one line of player input.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 0:
		return Command{Kind: CommandBlank}, nil
	case 1:
		switch strings.ToLower(fields[0]) {
		case "hint":
			return Command{Kind: CommandHint}, nil
		case "undo":
			return Command{Kind: CommandUndo}, nil
		case "quit":
			return Command{Kind: CommandQuit}, nil
		}
	case 2:
		nums, err := atoi(fields...)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CommandMove, Move: Move{Form: FormLattice, Row: nums[0], Col: nums[1]}}, nil
	case 3:
		side, ok := ParseSide(fields[2])
		if !ok {
			break
		}
		nums, err := atoi(fields[:2]...)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CommandMove, Move: Move{Form: FormBoxSide, Row: nums[0], Col: nums[1], Side: side}}, nil
	case 4:
		o, ok := ParseOrientation(fields[0])
		if !ok {
			break
		}
		nums, err := atoi(fields[1:]...)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CommandMove, Move: Move{Form: FormEndpoints, Orientation: o, Line: nums[0], From: nums[1], To: nums[2]}}, nil
	}

	return Command{}, fmt.Errorf("%w: %q", ErrMalformedMove, strings.TrimSpace(line))
}

func atoi(fields ...string) ([]int, error) {
	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrMalformedMove, f)
		}
		nums[i] = n
	}
	return nums, nil
}
