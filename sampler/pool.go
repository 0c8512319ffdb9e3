package sampler

import (
	"log/slog"
	"runtime"
	"sync"

	"github.com/pthm-cable/lattice/noise"
)

// parallelThreshold is the minimum sample count to use the workers.
// Below this, single-threaded is faster due to goroutine overhead.
const parallelThreshold = 4096

// workChunk is a range of rows for a worker to sample.
type workChunk struct {
	start, end int
	first      int // row stored at out[0]
	src        noise.Source
	grid       Grid
	out        []float64
}

// Pool samples grids with persistent worker goroutines. Sample calls are
// serialized; the pool itself is safe for concurrent use.
type Pool struct {
	numWorkers int

	mu sync.Mutex // held for the duration of a Sample call

	// Worker pool channels
	workChan chan workChunk // sends work to workers
	doneChan chan struct{}  // workers signal completion
	stopChan chan struct{}  // signals workers to exit
	wg       sync.WaitGroup // tracks active workers
	running  bool           // true if workers are running
}

// NewPool returns a pool with the given number of workers.
// workers <= 0 uses runtime.GOMAXPROCS(0).
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{numWorkers: workers}
}

// Workers reports the pool size.
func (p *Pool) Workers() int { return p.numWorkers }

// startWorkers launches persistent worker goroutines.
func (p *Pool) startWorkers() {
	if p.running {
		return
	}

	p.workChan = make(chan workChunk, p.numWorkers)
	p.doneChan = make(chan struct{}, p.numWorkers)
	p.stopChan = make(chan struct{})
	p.running = true

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// Close signals all workers to exit and waits for them.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running {
		return
	}

	close(p.stopChan)
	p.wg.Wait()
	close(p.workChan)
	close(p.doneChan)
	p.running = false
}

// worker runs in a goroutine, processing chunks until stopped.
func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopChan:
			return
		case chunk, ok := <-p.workChan:
			if !ok {
				return
			}
			chunk.grid.sampleRows(chunk.src, chunk.start, chunk.end, chunk.first, chunk.out)
			p.doneChan <- struct{}{}
		}
	}
}

// Sample fills out with src evaluated over g, row-major. The result is
// identical to Sequential.
func (p *Pool) Sample(src noise.Source, g Grid, out []float64) error {
	return p.SampleRows(src, g, 0, g.Height, out)
}

// SampleRows fills out with rows [r0, r1) of g, row-major from row r0.
func (p *Pool) SampleRows(src noise.Source, g Grid, r0, r1 int, out []float64) error {
	if err := g.Validate(src); err != nil {
		return err
	}
	if err := g.checkRows(r0, r1, out); err != nil {
		return err
	}
	rows := r1 - r0
	n := rows * g.Width

	p.mu.Lock()
	defer p.mu.Unlock()

	if n < parallelThreshold || p.numWorkers == 1 || rows == 1 {
		g.sampleRows(src, r0, r1, r0, out)
		return nil
	}

	if !p.running {
		p.startWorkers()
	}

	chunkSize := (rows + p.numWorkers - 1) / p.numWorkers

	chunksDispatched := 0
	for w := 0; w < p.numWorkers; w++ {
		start := r0 + w*chunkSize
		end := min(start+chunkSize, r1)
		if start >= end {
			continue
		}
		p.workChan <- workChunk{start: start, end: end, first: r0, src: src, grid: g, out: out}
		chunksDispatched++
	}

	for i := 0; i < chunksDispatched; i++ {
		<-p.doneChan
	}
	slog.Debug("sampled rows", "rows", rows, "samples", n, "chunks", chunksDispatched, "workers", p.numWorkers)
	return nil
}
