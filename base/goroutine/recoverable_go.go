package goroutine

import (
	"runtime/debug"

	"github.com/x-xyz/listingapi/base/log"
)

// PanicEvent is what a recovered goroutine reports
type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

type options struct {
	beforeStart    func()
	afterEnded     func()
	afterRecovered func(p interface{}, stack []byte)
}

type Option func(*options)

func WithBeforeStart(f func()) Option {
	return func(o *options) { o.beforeStart = f }
}

func WithAfterEnded(f func()) Option {
	return func(o *options) { o.afterEnded = f }
}

func WithAfterRecovered(f func(p interface{}, stack []byte)) Option {
	return func(o *options) { o.afterRecovered = f }
}

// RecoverableGo runs f in a goroutine. The returned channel yields one
// PanicEvent when f panics and is closed without a value when f returns.
func RecoverableGo(f func(), opts ...Option) <-chan *PanicEvent {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	panicCh := make(chan *PanicEvent, 1)
	go func() {
		defer func() {
			if o.afterEnded != nil {
				o.afterEnded()
			}

			p := recover()
			if p == nil {
				close(panicCh)
				return
			}
			stack := debug.Stack()
			log.Log().WithFields(log.Fields{
				"err":   p,
				"stack": string(stack),
			}).Error("panic")
			if o.afterRecovered != nil {
				o.afterRecovered(p, stack)
			}
			panicCh <- &PanicEvent{Panic: p, Stack: stack}
		}()

		if o.beforeStart != nil {
			o.beforeStart()
		}
		f()
	}()
	return panicCh
}
