package moverecord

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
)

type document interface {
	touch(now time.Time)
}

// Model stores one kind of record in its own collection.
type Model[T document] struct {
	conn *mon.Model
}

func NewModel[T document](url, db, collection string) *Model[T] {
	return &Model[T]{
		conn: mon.MustNewModel(url, db, collection),
	}
}

func (m *Model[T]) Insert(ctx context.Context, data T) error {
	data.touch(time.Now())
	_, err := m.conn.InsertOne(ctx, data)
	return err
}
