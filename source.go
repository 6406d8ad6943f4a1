package csvexport

import (
	"context"
	"errors"
	"fmt"
)

var (
	errNilProducer = errors.New("csvexport: producer is nil")
	errNilDeferred = errors.New("csvexport: deferred source is nil")
)

// DataSource supplies the records to serialize. It is one of Direct, Producer or
// *Deferred and is resolved exactly once per Stringify call.
type DataSource interface {
	resolve(ctx context.Context) ([]Record, error)
}

// Direct is a data source that already holds its records.
type Direct []Record

func (d Direct) resolve(context.Context) ([]Record, error) {
	return d, nil
}

// Producer is a data source computed on demand.
type Producer func() ([]Record, error)

func (p Producer) resolve(context.Context) (records []Record, err error) {
	if p == nil {
		return nil, errNilProducer
	}
	defer func() {
		if r := recover(); r != nil {
			records = nil
			err = fmt.Errorf("csvexport: producer panicked: %v", r)
		}
	}()
	return p()
}

// Deferred is a data source that becomes available later, like a future.
type Deferred struct {
	done    chan struct{}
	records []Record
	err     error
}

// Defer starts fn in its own goroutine and returns a Deferred that completes with its result.
// The context passed to fn is the one given to Defer, not the one used to await it.
func Defer(ctx context.Context, fn func(context.Context) ([]Record, error)) *Deferred {
	d := &Deferred{done: make(chan struct{})}
	go func() {
		defer close(d.done)
		defer func() {
			if r := recover(); r != nil {
				d.records = nil
				d.err = fmt.Errorf("csvexport: deferred source panicked: %v", r)
			}
		}()
		d.records, d.err = fn(ctx)
	}()
	return d
}

// Resolved returns a Deferred that is already complete with records.
func Resolved(records []Record) *Deferred {
	d := &Deferred{done: make(chan struct{}), records: records}
	close(d.done)
	return d
}

// Failed returns a Deferred that is already complete with err.
func Failed(err error) *Deferred {
	d := &Deferred{done: make(chan struct{}), err: err}
	close(d.done)
	return d
}

// Done is closed once the result is available.
func (d *Deferred) Done() <-chan struct{} {
	return d.done
}

// Wait blocks until the result is available or ctx ends.
func (d *Deferred) Wait(ctx context.Context) ([]Record, error) {
	return d.resolve(ctx)
}

func (d *Deferred) resolve(ctx context.Context) ([]Record, error) {
	if d == nil || d.done == nil {
		return nil, errNilDeferred
	}
	select {
	case <-d.done:
		return d.records, d.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
