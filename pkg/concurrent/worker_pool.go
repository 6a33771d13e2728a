package concurrent

import (
	"context"
	"sync"

	"github.com/lintang-b-s/Pollutrace/pkg/util"
)

type JobFunc[T any, G any] func(job T) G

// WorkerPool runs JobFunc on a fixed number of goroutines. jobs go in with AddJob, results come
// out of CollectResults in completion order.
type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan G
	wg         sync.WaitGroup
}

func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan T, jobQueueSize),
		results:    make(chan G, jobQueueSize),
	}
}

func (wp *WorkerPool[T, G]) worker(jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- jobFunc(job)
	}
}

func (wp *WorkerPool[T, G]) Start(jobFunc JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(jobFunc)
	}
}

// Wait blocks until every worker has returned, then closes the results channel.
func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *WorkerPool[T, G]) AddJob(job T) {
	wp.jobQueue <- job
}

func (wp *WorkerPool[T, G]) CollectResults() chan G {
	return wp.results
}

func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
}

type indexedJob[T any] struct {
	index int
	job   T
}

type indexedResult[G any] struct {
	index  int
	result G
}

// Map applies fn to every job on numWorkers goroutines and returns the results in job order.
// once ctx is done no new job is scheduled and ctx.Err() is returned.
func Map[T any, G any](ctx context.Context, numWorkers int, jobs []T, fn func(ctx context.Context, job T) G) ([]G, error) {
	results := make([]G, len(jobs))
	if len(jobs) == 0 {
		return results, ctx.Err()
	}

	wp := NewWorkerPool[indexedJob[T], indexedResult[G]](util.Min(numWorkers, len(jobs)), len(jobs))
	wp.Start(func(j indexedJob[T]) indexedResult[G] {
		return indexedResult[G]{index: j.index, result: fn(ctx, j.job)}
	})

	go func() {
		defer wp.Close()
		for i, job := range jobs {
			if util.StopConcurrentOperation(ctx) {
				return
			}
			wp.AddJob(indexedJob[T]{index: i, job: job})
		}
	}()

	go wp.Wait()

	for r := range wp.CollectResults() {
		results[r.index] = r.result
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
