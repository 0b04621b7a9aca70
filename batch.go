// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pars

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// jobCapacity is the bounded capacity of each worker's job queue.
// 4 balances amortizing producer-side cached-index refresh cost while
// keeping ring buffers within a single cache line.
const jobCapacity = 4

// batchWorker owns one single-producer single-consumer job queue.
// The feeder is the sole producer, the worker goroutine the sole
// consumer.
type batchWorker struct {
	jobs lfq.SPSC[int]
}

// RunBatch parses independent input buffers on a fixed pool of workers
// and returns one Result per input, in input order. Runs are fully
// independent: each gets its own serial, and env and the initial state
// are passed by value to every run.
//
// Job handoff uses bounded lock-free SPSC queues; both the feeder and
// the workers wait past the would-block boundary with adaptive backoff
// instead of channels or locks. A stop sentinel per worker ends the
// pool, and an atomic counter publishes completion of all result
// writes back to the caller.
func RunBatch[R, E, S, A any](p Parser[R, E, S, A], env R, st S, inputs [][]byte, workers int) []Result[E, S, A] {
	results := make([]Result[E, S, A], len(inputs))
	if len(inputs) == 0 {
		return results
	}
	if workers > len(inputs) {
		workers = len(inputs)
	}
	if workers <= 1 {
		for i, input := range inputs {
			results[i] = Run(p, env, st, input)
		}
		return results
	}

	ws := make([]batchWorker, workers)
	var done atomix.Uint32
	for w := range ws {
		ws[w].jobs.Init(jobCapacity)
	}
	for w := range ws {
		go func(jobs *lfq.SPSC[int]) {
			var bo iox.Backoff
			for {
				i, err := jobs.Dequeue()
				if err != nil {
					bo.Wait()
					continue
				}
				bo.Reset()
				if i < 0 {
					break
				}
				results[i] = Run(p, env, st, inputs[i])
			}
			done.Add(1)
		}(&ws[w].jobs)
	}

	// Feed any worker that can take a job; wait only after a full pass
	// without progress.
	var bo iox.Backoff
	next := 0
	for next < len(inputs) {
		progress := false
		for w := 0; w < workers && next < len(inputs); w++ {
			job := next
			if ws[w].jobs.Enqueue(&job) == nil {
				next++
				progress = true
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	stop := -1
	for w := range ws {
		for ws[w].jobs.Enqueue(&stop) != nil {
			bo.Wait()
		}
	}
	for done.Load() != uint32(workers) {
		bo.Wait()
	}
	return results
}
