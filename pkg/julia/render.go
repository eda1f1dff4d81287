package julia

import (
	"fmt"
	"runtime"
	"sync"
)

// DefaultMaxCells caps the bitmap at 1<<30 cells (1GiB) unless overridden
// with WithMaxCells.
const DefaultMaxCells = 1 << 30

// Bitmap is a row-major grid of intensities: pixel (x, y) lives at x + y*Dim.
type Bitmap []uint8

// Members counts the cells marked as members.
func (b Bitmap) Members() int {
	n := 0
	for _, v := range b {
		if v == MemberIntensity {
			n++
		}
	}
	return n
}

type options struct {
	workers  int
	maxCells int
}

type Option func(*options)

// WithWorkers sets how many goroutines classify rows. Values below 1 mean
// one per CPU.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithMaxCells sets the largest grid Render will allocate.
func WithMaxCells(n int) Option {
	return func(o *options) {
		o.maxCells = n
	}
}

func newOptions(opts []Option) options {
	o := options{
		workers:  runtime.NumCPU(),
		maxCells: DefaultMaxCells,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.NumCPU()
	}
	return o
}

// Render classifies every pixel of the grid described by p and returns the
// finished bitmap. p is validated before anything is allocated.
func Render(p Params, opts ...Option) (Bitmap, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	o := newOptions(opts)

	cells, err := p.Cells()
	if err != nil {
		return nil, err
	}
	if cells > o.maxCells {
		return nil, fmt.Errorf("%w: %d cells exceeds limit of %d", ErrTooLarge, cells, o.maxCells)
	}

	buf, err := allocate(cells)
	if err != nil {
		return nil, err
	}

	fill(buf, p, o.workers)

	return buf, nil
}

// RenderInto is Render writing into a caller-owned buffer of exactly Dim*Dim cells.
func RenderInto(buf Bitmap, p Params, opts ...Option) error {
	if err := p.Validate(); err != nil {
		return err
	}

	cells, err := p.Cells()
	if err != nil {
		return err
	}
	if len(buf) != cells {
		return fmt.Errorf("%w: got %d cells, want %d", ErrBufferSize, len(buf), cells)
	}

	fill(buf, p, newOptions(opts).workers)

	return nil
}

// allocate turns a refused allocation into ErrTooLarge instead of a panic.
func allocate(cells int) (buf Bitmap, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("%w: allocating %d cells: %v", ErrTooLarge, cells, r)
		}
	}()

	return make(Bitmap, cells), nil
}

// fill hands out rows to workers. Each row is written by exactly one worker.
func fill(buf Bitmap, p Params, parallel int) {
	if parallel > p.Dim {
		parallel = p.Dim
	}

	yChannel := make(chan int)

	go func() {
		for y := 0; y < p.Dim; y++ {
			yChannel <- y
		}
		close(yChannel)
	}()

	ywg := sync.WaitGroup{}
	ywg.Add(parallel)
	for i := 0; i < parallel; i++ {
		go func() {
			for y := range yChannel {
				row := buf[y*p.Dim : (y+1)*p.Dim]
				for x := range row {
					row[x] = Classify(x, y, p).Intensity()
				}
			}
			ywg.Done()
		}()
	}

	ywg.Wait()
}
