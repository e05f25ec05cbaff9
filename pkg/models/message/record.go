package message

import (
	"time"

	"github.com/bytedance/sonic"
)

type RecordKind string

const (
	KindGameStart RecordKind = "start"
	KindMove      RecordKind = "move"
	KindUndo      RecordKind = "undo"
	KindGameEnd   RecordKind = "end"
)

// Record is one entry of a match log.
type Record struct {
	TimeStamp TimeStamp      `json:"timeStamp"`
	GameUid   GameUid        `json:"gameUid"`
	Kind      RecordKind     `json:"kind"`
	Step      int            `json:"step"`
	Player    string         `json:"player,omitempty"`
	MoveEdge  string         `json:"moveEdge,omitempty"`
	Completed int            `json:"completed,omitempty"`
	ElapsedMs int64          `json:"elapsedMs,omitempty"`
	Scores    map[string]int `json:"scores,omitempty"`
	BoxRows   int            `json:"boxRows,omitempty"`
	BoxCols   int            `json:"boxCols,omitempty"`
	Players   []string       `json:"players,omitempty"`
	Winner    string         `json:"winner,omitempty"`
}

func NewRecord(gameUid GameUid, kind RecordKind, now time.Time) Record {
	return Record{
		TimeStamp: NewTimeStamp(now),
		GameUid:   gameUid,
		Kind:      kind,
	}
}

func ParseRecord(str string) (r Record, err error) {
	err = sonic.UnmarshalString(str, &r)
	return
}

func (r Record) String() string {
	str, _ := sonic.MarshalString(r)
	return str
}
