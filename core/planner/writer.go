package planner

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/blink-new/study-saathi-app-dwaa98jh/core"
)

const defaultQueueSize = 256

// writer saves encoded collections. write is always called with the store lock held,
// so writes reach the writer in the order they were issued.
type writer interface {
	write(key string, data []byte)
	close(ctx context.Context) error
}

type syncWriter struct {
	kv     core.KVStore
	logger core.Logger
}

func (w *syncWriter) write(key string, data []byte) {
	save(w.kv, w.logger, key, data)
}

func (w *syncWriter) close(context.Context) error { return nil }

type writeJob struct {
	key  string
	data []byte
}

// asyncWriter drains a FIFO queue from a single goroutine.
type asyncWriter struct {
	kv     core.KVStore
	logger core.Logger
	jobs   chan writeJob
	done   chan struct{}
	once   sync.Once
}

func newAsyncWriter(kv core.KVStore, logger core.Logger, size int) *asyncWriter {
	if size <= 0 {
		size = defaultQueueSize
	}
	w := &asyncWriter{
		kv:     kv,
		logger: logger,
		jobs:   make(chan writeJob, size),
		done:   make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *asyncWriter) run() {
	defer close(w.done)
	for job := range w.jobs {
		save(w.kv, w.logger, job.key, job.data)
	}
}

// write blocks while the queue is full. The caller holds the store lock, so a KVStore
// slower than the mutation rate stalls readers too; QueueSize sets how far ahead
// mutations may run before that happens.
func (w *asyncWriter) write(key string, data []byte) {
	w.jobs <- writeJob{key: key, data: data}
}

func (w *asyncWriter) close(ctx context.Context) error {
	w.once.Do(func() { close(w.jobs) })
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "waiting for pending writes")
	}
}

func save(kv core.KVStore, logger core.Logger, key string, data []byte) {
	if err := kv.Set(context.Background(), key, data); err != nil {
		logger.Error("saving collection failed", errors.Wrapf(err, "saving %s", key))
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}
