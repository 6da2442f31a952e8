package upgma

import "sync"

// ComputePairwiseDistancesParallel computes the full n×n distance matrix using
// multiple goroutines. data is flat row-major with n rows and dims columns.
// numWorkers controls the degree of parallelism; if <= 1, it falls back to
// single-threaded ComputePairwiseDistances.
//
// The result is bitwise identical to ComputePairwiseDistances.
func ComputePairwiseDistancesParallel(data []float64, n, dims int, metric DistanceMetric, numWorkers int) []float64 {
	if numWorkers <= 1 || n <= 1 {
		return ComputePairwiseDistances(data, n, dims, metric)
	}

	result := make([]float64, n*n)

	// Each worker owns a contiguous range of source rows i and fills both
	// (i,j) and (j,i) for j > i. Ranges don't overlap, so writes never race.
	var wg sync.WaitGroup
	rowsPerWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := min(startRow+rowsPerWorker, n)
		if startRow >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				for j := i + 1; j < n; j++ {
					d := metric.Distance(data[i*dims:(i+1)*dims], data[j*dims:(j+1)*dims])
					result[i*n+j] = d
					result[j*n+i] = d
				}
			}
		}(startRow, endRow)
	}

	wg.Wait()
	return result
}

// updateSlotsParallel applies update to every slot in slots, splitting the
// slice into contiguous ranges across numWorkers goroutines. update must only
// write cells owned by its own slot.
func updateSlotsParallel(slots []int, numWorkers int, update func(slot int)) {
	var wg sync.WaitGroup
	perWorker := (len(slots) + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		start := w * perWorker
		end := min(start+perWorker, len(slots))
		if start >= len(slots) {
			break
		}

		wg.Add(1)
		go func(part []int) {
			defer wg.Done()
			for _, s := range part {
				update(s)
			}
		}(slots[start:end])
	}

	wg.Wait()
}
