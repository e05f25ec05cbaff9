package pusher

import (
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

// Pusher buffers elements and hands them to PushLogic in batches, once per
// PushInterval and once more on Stop.
type Pusher[T any] struct {
	MessagesBuffer []T
	PushLogic      func(...T) error
	PushInterval   time.Duration
	ErrorHandler   func(error)

	lock     sync.Mutex
	pushLock sync.Mutex
	started  bool
	stopOnce sync.Once
	done     chan struct{}
	wg       sync.WaitGroup
}

func NewPusher[T any](options ...Option[T]) (newPusher *Pusher[T]) {
	newPusher = &Pusher[T]{
		PushLogic:    func(...T) error { return nil },
		ErrorHandler: func(err error) { logx.Errorf("push messages: %v", err) },
		PushInterval: time.Second,
		done:         make(chan struct{}),
	}

	for _, option := range options {
		option(newPusher)
	}

	return
}

// PushAll flushes the buffer. AddMessages is not blocked while PushLogic
// runs. On failure the batch is put back in front of anything added since.
func (p *Pusher[T]) PushAll() error {
	p.pushLock.Lock()
	defer p.pushLock.Unlock()

	p.lock.Lock()
	batch := p.MessagesBuffer
	p.MessagesBuffer = nil
	p.lock.Unlock()

	if len(batch) == 0 {
		return nil
	}

	if err := p.PushLogic(batch...); err != nil {
		p.lock.Lock()
		p.MessagesBuffer = append(batch, p.MessagesBuffer...)
		p.lock.Unlock()
		return err
	}
	return nil
}

func (p *Pusher[T]) AddMessages(messages ...T) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.MessagesBuffer = append(p.MessagesBuffer, messages...)
}

func (p *Pusher[T]) Len() int {
	p.lock.Lock()
	defer p.lock.Unlock()

	return len(p.MessagesBuffer)
}

func (p *Pusher[T]) Start() {
	p.lock.Lock()
	if p.started {
		p.lock.Unlock()
		return
	}
	p.started = true
	p.lock.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		ticker := time.NewTicker(p.PushInterval)
		defer ticker.Stop()

		for {
			select {
			case <-p.done:
				return
			case <-ticker.C:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
			}
		}
	}()
}

// Stop ends the background loop and flushes whatever is left. Calling it
// again only flushes; a Pusher cannot be restarted.
func (p *Pusher[T]) Stop() error {
	p.stopOnce.Do(func() {
		p.lock.Lock()
		p.started = true
		p.lock.Unlock()

		close(p.done)
		p.wg.Wait()
	})

	return p.PushAll()
}
