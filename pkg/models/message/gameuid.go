package message

import (
	"fmt"

	"github.com/google/uuid"
)

// GameUid identifies one match across every record it produces.
type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}

func ParseGameUid(s string) (GameUid, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("parse game uid %q: %w", s, err)
	}
	return GameUid(u.String()), nil
}

// Short is the first block of the uuid, enough to tell matches apart on screen.
func (g GameUid) Short() string {
	if len(g) < 8 {
		return string(g)
	}
	return string(g[:8])
}
