package pusher

import "time"

type Option[T any] func(*Pusher[T])

func WithPushLogic[T any](pushLogic func(...T) error) Option[T] {
	return func(p *Pusher[T]) {
		p.PushLogic = pushLogic
	}
}

func WithPushInterval[T any](pushInterval time.Duration) Option[T] {
	return func(p *Pusher[T]) {
		if pushInterval > 0 {
			p.PushInterval = pushInterval
		}
	}
}

func WithErrorHandler[T any](handler func(error)) Option[T] {
	return func(p *Pusher[T]) {
		p.ErrorHandler = handler
	}
}

func WithElements[T any](element ...T) Option[T] {
	return func(p *Pusher[T]) {
		p.MessagesBuffer = append(p.MessagesBuffer, element...)
	}
}
