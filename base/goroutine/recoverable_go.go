package goroutine

import (
	"runtime/debug"

	"github.com/x-xyz/listingpage/base/log"
)

type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

type options struct {
	logger         log.Logger
	afterEnded     func()
	afterRecovered func(p interface{}, stack []byte)
}

type Option func(*options)

// WithLogger sets the logger a recovered panic is reported on
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithAfterEnded runs f when the goroutine ends, panicking or not
func WithAfterEnded(f func()) Option {
	return func(o *options) {
		o.afterEnded = f
	}
}

func WithAfterRecovered(f func(p interface{}, stack []byte)) Option {
	return func(o *options) {
		o.afterRecovered = f
	}
}

// RecoverableGo runs f on its own goroutine. The returned channel yields the panic if f
// panicked, or is closed when f returns normally.
func RecoverableGo(f func(), opts ...Option) <-chan *PanicEvent {
	o := options{logger: log.Log()}
	for _, opt := range opts {
		opt(&o)
	}

	done := make(chan *PanicEvent, 1)
	go func() {
		defer func() {
			if o.afterEnded != nil {
				o.afterEnded()
			}
			p := recover()
			if p == nil {
				close(done)
				return
			}
			stack := debug.Stack()
			o.logger.WithFields(log.Fields{
				"err":   p,
				"stack": string(stack),
			}).Error("recovered goroutine panic")
			if o.afterRecovered != nil {
				o.afterRecovered(p, stack)
			}
			done <- &PanicEvent{p, stack}
		}()
		f()
	}()
	return done
}
