package main

import (
	"errors"
	"io"
	"sync"

	"github.com/cwbudde/algo-noisegen/dsp/frame"
	"github.com/cwbudde/algo-noisegen/dsp/grain"
	"github.com/cwbudde/algo-noisegen/internal/y4m"
)

type job struct {
	n    int
	fr   *frame.Frame
	done chan struct{}
}

// process reads every frame of src, adds grain on workers goroutines and
// writes the frames to dst in input order. It returns the number of frames
// written.
func process(src *y4m.Reader, dst *y4m.Writer, f *grain.Filter, workers int) (int, error) {
	pool := frame.NewPool(src.Info())

	work := make(chan *job, workers)
	ordered := make(chan *job, 2*workers)
	quit := make(chan struct{})
	readErr := make(chan error, 1)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range work {
				f.Apply(j.n, j.fr)
				close(j.done)
			}
		}()
	}

	go func() {
		defer close(ordered)
		defer close(work)
		readErr <- readFrames(src, pool, work, ordered, quit)
	}()

	written := 0
	var err error
	for j := range ordered {
		<-j.done
		if err == nil {
			if err = dst.WriteFrame(j.fr); err != nil {
				close(quit)
			} else {
				written++
			}
		}
		pool.Put(j.fr)
	}

	wg.Wait()
	if rerr := <-readErr; err == nil {
		err = rerr
	}

	return written, err
}

// readFrames feeds work and ordered with the same jobs until src is exhausted
// or quit is closed. Jobs enter work first so every job the writer waits on
// is already queued for a worker.
func readFrames(src *y4m.Reader, pool *frame.Pool, work, ordered chan<- *job, quit <-chan struct{}) error {
	for n := 0; ; n++ {
		fr, err := pool.Get()
		if err != nil {
			return err
		}

		if err := src.ReadFrame(fr); err != nil {
			pool.Put(fr)
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		j := &job{n: n, fr: fr, done: make(chan struct{})}

		select {
		case work <- j:
		case <-quit:
			return nil
		}

		select {
		case ordered <- j:
		case <-quit:
			return nil
		}
	}
}
