package recorder

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-console/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-console/pkg/models/pusher"
)

var ErrUnknownMode = errors.New("unknown record mode")

// Recorder batches match records in the background and hands them to a Sink.
type Recorder struct {
	sink      Sink
	pusher    *pusher.Pusher[message.Record]
	closeOnce sync.Once
	closeErr  error
}

func New(sink Sink, options ...pusher.Option[message.Record]) *Recorder {
	r := &Recorder{sink: sink}
	options = append([]pusher.Option[message.Record]{
		pusher.WithPushLogic(func(records ...message.Record) error {
			return sink.Write(context.Background(), records...)
		}),
		pusher.WithErrorHandler[message.Record](func(err error) {
			logx.Errorw("record push failed", logx.Field("error", err.Error()))
		}),
	}, options...)
	r.pusher = pusher.NewPusher(options...)
	r.pusher.Start()
	return r
}

// Nop drops every record.
func Nop() *Recorder {
	return New(nopSink{})
}

// MustNew builds the recorder selected by c.Mode.
func MustNew(c Conf) *Recorder {
	r, err := NewFromConf(c)
	logx.Must(err)
	return r
}

func NewFromConf(c Conf) (*Recorder, error) {
	interval := pusher.WithPushInterval[message.Record](c.Interval)

	switch c.Mode {
	case "", ModeNone:
		return Nop(), nil
	case ModeFile:
		sink, err := NewFileSink(c.File)
		if err != nil {
			return nil, err
		}
		return New(sink, interval), nil
	case ModeMongo:
		return New(MustNewMongoSink(c.Mongo), interval), nil
	case ModeRedis:
		return New(MustNewRedisSink(c.Redis), interval), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, c.Mode)
}

func (r *Recorder) Record(records ...message.Record) {
	r.pusher.AddMessages(records...)
}

// Close flushes pending records and releases the sink. Later calls return
// the first result.
func (r *Recorder) Close() error {
	r.closeOnce.Do(func() {
		r.closeErr = errors.Join(r.pusher.Stop(), r.sink.Close())
	})
	return r.closeErr
}
