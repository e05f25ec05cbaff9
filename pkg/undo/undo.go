package undo

import (
	"errors"

	"github.com/HuXin0817/dots-and-boxes-console/pkg/models/chess"
)

// ErrUndoRefused is what callers report when UndoLastFor returns false.
var ErrUndoRefused = errors.New("undo refused: already used, nothing to undo, or the last move was not yours")

// Source is the state an undo manager snapshots and restores.
type Source[S any] interface {
	Snapshot() S
	Restore(S)
}

type record[S any] struct {
	player   chess.PlayerID
	snapshot S
}

// Manager keeps pre-move snapshots and lets every player take back their own
// most recent move once per game.
type Manager[S any] struct {
	source Source[S]
	stack  []record[S]
	used   map[chess.PlayerID]bool
}

func NewManager[S any](source Source[S]) *Manager[S] {
	return &Manager[S]{
		source: source,
		used:   make(map[chess.PlayerID]bool),
	}
}

// RecordBeforeMove must be called immediately before id's move is applied.
func (m *Manager[S]) RecordBeforeMove(id chess.PlayerID) {
	m.stack = append(m.stack, record[S]{player: id, snapshot: m.source.Snapshot()})
}

// Discard drops the latest snapshot when the move it guarded was rejected.
func (m *Manager[S]) Discard() {
	if len(m.stack) > 0 {
		m.stack = m.stack[:len(m.stack)-1]
	}
}

// UndoLastFor restores the state from before id's latest move. It refuses
// when id already undid a move this game, the stack is empty, or the latest
// move belongs to another player.
func (m *Manager[S]) UndoLastFor(id chess.PlayerID) bool {
	if m.used[id] || len(m.stack) == 0 {
		return false
	}

	top := m.stack[len(m.stack)-1]
	if top.player != id {
		return false
	}

	m.stack = m.stack[:len(m.stack)-1]
	m.source.Restore(top.snapshot)
	m.used[id] = true
	return true
}

func (m *Manager[S]) Used(id chess.PlayerID) bool {
	return m.used[id]
}

func (m *Manager[S]) Depth() int {
	return len(m.stack)
}

// LastMover returns who made the move on top of the stack.
func (m *Manager[S]) LastMover() (chess.PlayerID, bool) {
	if len(m.stack) == 0 {
		return chess.Nobody, false
	}
	return m.stack[len(m.stack)-1].player, true
}

func (m *Manager[S]) ResetForNewGame(source Source[S]) {
	m.source = source
	m.stack = nil
	m.used = make(map[chess.PlayerID]bool)
}
