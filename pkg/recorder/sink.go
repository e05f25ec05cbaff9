package recorder

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/HuXin0817/dots-and-boxes-console/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-console/pkg/models/message/moverecord"
	"github.com/HuXin0817/dots-and-boxes-console/pkg/models/model"
)

// Sink stores batches of records.
type Sink interface {
	Write(ctx context.Context, records ...message.Record) error
	Close() error
}

type nopSink struct{}

func (nopSink) Write(context.Context, ...message.Record) error { return nil }

func (nopSink) Close() error { return nil }

// WriterSink appends one JSON document per line.
type WriterSink struct {
	mu     sync.Mutex
	w      *bufio.Writer
	closer io.Closer
}

func NewWriterSink(w io.Writer) *WriterSink {
	s := &WriterSink{w: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		s.closer = c
	}
	return s
}

func NewFileSink(path string) (*WriterSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open record file: %w", err)
	}
	return NewWriterSink(f), nil
}

func (s *WriterSink) Write(_ context.Context, records ...message.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		b, err := sonic.Marshal(r)
		if err != nil {
			return err
		}
		if _, err = s.w.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return s.w.Flush()
}

func (s *WriterSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.w.Flush(); err != nil {
		return err
	}
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

// MongoSink splits records over three collections: <name>_start, <name>_move
// and <name>_end. Undo records go to the move collection.
type MongoSink struct {
	start *moverecord.Model[*moverecord.GameStartRecord]
	move  *moverecord.Model[*moverecord.MoveRecord]
	end   *moverecord.Model[*moverecord.GameEndRecord]
}

func MustNewMongoSink(c MongoConf) *MongoSink {
	return &MongoSink{
		start: moverecord.NewModel[*moverecord.GameStartRecord](c.Url, c.DataBaseName, c.Collection+"_start"),
		move:  moverecord.NewModel[*moverecord.MoveRecord](c.Url, c.DataBaseName, c.Collection+"_move"),
		end:   moverecord.NewModel[*moverecord.GameEndRecord](c.Url, c.DataBaseName, c.Collection+"_end"),
	}
}

func (s *MongoSink) Write(ctx context.Context, records ...message.Record) error {
	for _, r := range records {
		var err error
		switch r.Kind {
		case message.KindGameStart:
			err = s.start.Insert(ctx, moverecord.NewGameStartRecord(r))
		case message.KindMove, message.KindUndo:
			err = s.move.Insert(ctx, moverecord.NewMoveRecord(r))
		case message.KindGameEnd:
			err = s.end.Insert(ctx, moverecord.NewGameEndRecord(r))
		}
		if err != nil {
			return fmt.Errorf("insert %s record: %w", r.Kind, err)
		}
	}
	return nil
}

func (s *MongoSink) Close() error { return nil }

// RedisSink pushes records onto a list guarded by a redis lock, so several
// consoles can share one list.
type RedisSink struct {
	rds    *redis.Redis
	lock   *model.RedisLock
	key    string
	expire int
}

func MustNewRedisSink(c RedisConf) *RedisSink {
	rds := redis.MustNewRedis(redis.RedisConf{
		Host: c.Host,
		Type: c.Type,
		Pass: c.Pass,
	})
	return &RedisSink{
		rds:    rds,
		lock:   model.NewLock(rds, c.ListKey+":lock"),
		key:    c.ListKey,
		expire: c.Expire,
	}
}

func (s *RedisSink) Write(ctx context.Context, records ...message.Record) error {
	if len(records) == 0 {
		return nil
	}

	values := make([]any, len(records))
	for i, r := range records {
		values[i] = r.String()
	}

	return s.lock.Do(ctx, func() error {
		if _, err := s.rds.LpushCtx(ctx, s.key, values...); err != nil {
			return err
		}
		if s.expire > 0 {
			return s.rds.ExpireCtx(ctx, s.key, s.expire)
		}
		return nil
	})
}

func (s *RedisSink) Close() error { return nil }
