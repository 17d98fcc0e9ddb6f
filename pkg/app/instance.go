package app

import (
	"context"
	"io"
)

// Instance owns the process lifetime: a root context cancelled on shutdown
// and the set of closers to drain before exiting.
type Instance struct {
	closers []io.Closer
	failed  bool
	stop    chan bool
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewInstance() *Instance {
	ctx, cancel := context.WithCancel(context.Background())
	return &Instance{
		stop:   make(chan bool),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (instance *Instance) Context() context.Context {
	return instance.ctx
}

func ContextFromInstance(instance *Instance) context.Context {
	return instance.ctx
}
