package moverecord

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HuXin0817/dots-and-boxes-console/pkg/models/message"
)

// Meta carries the bookkeeping fields every stored record has.
type Meta struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`
}

func (m *Meta) touch(now time.Time) {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
		m.CreateAt = now
	}
	m.UpdateAt = now
}

type GameStartRecord struct {
	Meta `bson:",inline"`

	GameUid message.GameUid `bson:"gameUid" json:"gameUid"`
	BoxRows int             `bson:"boxRows" json:"boxRows"`
	BoxCols int             `bson:"boxCols" json:"boxCols"`
	Players []string        `bson:"players" json:"players"`
}

type MoveRecord struct {
	Meta `bson:",inline"`

	GameUid   message.GameUid `bson:"gameUid" json:"gameUid"`
	Kind      string          `bson:"kind" json:"kind"`
	StepCount int             `bson:"stepCount" json:"stepCount"`
	NowPlayer string          `bson:"nowPlayer" json:"nowPlayer"`
	MoveEdge  string          `bson:"moveEdge,omitempty" json:"moveEdge,omitempty"`
	Completed int             `bson:"completed" json:"completed"`
	ElapsedMs int64           `bson:"elapsedMs" json:"elapsedMs"`
	Scores    map[string]int  `bson:"scores" json:"scores"`
}

type GameEndRecord struct {
	Meta `bson:",inline"`

	GameUid message.GameUid `bson:"gameUid" json:"gameUid"`
	Winner  string          `bson:"winner" json:"winner"`
	Scores  map[string]int  `bson:"scores" json:"scores"`
}

func NewGameStartRecord(r message.Record) *GameStartRecord {
	return &GameStartRecord{
		GameUid: r.GameUid,
		BoxRows: r.BoxRows,
		BoxCols: r.BoxCols,
		Players: r.Players,
	}
}

// NewMoveRecord covers both moves and undos.
func NewMoveRecord(r message.Record) *MoveRecord {
	return &MoveRecord{
		GameUid:   r.GameUid,
		Kind:      string(r.Kind),
		StepCount: r.Step,
		NowPlayer: r.Player,
		MoveEdge:  r.MoveEdge,
		Completed: r.Completed,
		ElapsedMs: r.ElapsedMs,
		Scores:    r.Scores,
	}
}

func NewGameEndRecord(r message.Record) *GameEndRecord {
	return &GameEndRecord{
		GameUid: r.GameUid,
		Winner:  r.Winner,
		Scores:  r.Scores,
	}
}
