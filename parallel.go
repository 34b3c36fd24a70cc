package stemmers

import "sync"

// defaultParallelThreshold is the batch size below which StemWordsParallel
// falls back to the sequential path.
const defaultParallelThreshold = 16

// StemWordsParallel stems a batch of words across concurrent workers. It is
// observably identical to StemWords except in timing: same order, same
// length, same values. Each worker consults and populates the same cache as
// every other call shape; concurrent workers may legitimately race on the
// same key, which is benign because the algorithm is pure.
func (s *SnowballStemmer) StemWordsParallel(words []string) []string {
	// The empty batch short-circuits before worker partitioning; a threshold
	// of zero means "always parallel" and must not divide by zero workers.
	if len(words) == 0 {
		return make([]string, 0)
	}
	if len(words) < s.parallelThreshold {
		return s.StemWords(words)
	}

	roots := make([]string, len(words))

	workers := s.workers
	if workers > len(words) {
		workers = len(words)
	}

	// Contiguous partitioning with results written by original index, so
	// output order never depends on worker scheduling.
	chunk := (len(words) + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < len(words); start += chunk {
		end := start + chunk
		if end > len(words) {
			end = len(words)
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				roots[i] = s.StemWord(words[i])
			}
		}(start, end)
	}
	wg.Wait()

	return roots
}
