package corpus

import "github.com/ccplag/ccsim/internal/ast"

// CompareAll all-pairs compares every function in checked against every
// function in compared, returning the non-zero-score Finding rows sorted
// by descending score. With workers <= 1 it runs the simple sequential
// double loop spec.md describes; with workers > 1 the outer loop is
// sharded across a fixed worker pool, safe because every operand tree is
// built once up front and never mutated during comparison (spec.md §5).
func CompareAll(checked, compared map[string]FunctionEntry, workers int) []Finding {
	if workers <= 1 {
		return compareSequential(checked, compared)
	}
	return compareSharded(checked, compared, workers)
}

func compareSequential(checked, compared map[string]FunctionEntry) []Finding {
	var findings []Finding
	for _, a := range checked {
		for _, b := range compared {
			if score := ast.CompareRoots(a.Body, b.Body); score > 0 {
				findings = append(findings, newFinding(a, b, score))
			}
		}
	}
	sortFindings(findings)
	return findings
}

// compareSharded partitions the checked set across workers goroutines,
// each one running its shard's full inner loop against compared
// independently and appending to its own local slice; each slice is
// collected from the results channel as its worker finishes, and the
// merged set is sorted once every worker has reported — the same shape as parallel_executor's
// semaphore-free fan-out, specialized to a fixed number of shards instead
// of one goroutine per task, since the per-pair comparison is cheap
// enough that per-task goroutine overhead would dominate.
func compareSharded(checked, compared map[string]FunctionEntry, workers int) []Finding {
	entries := make([]FunctionEntry, 0, len(checked))
	for _, a := range checked {
		entries = append(entries, a)
	}

	results := make(chan []Finding, workers)
	shardSize := (len(entries) + workers - 1) / workers
	if shardSize == 0 {
		shardSize = 1
	}

	shardCount := 0
	for start := 0; start < len(entries); start += shardSize {
		end := start + shardSize
		if end > len(entries) {
			end = len(entries)
		}
		shardCount++
		go func(shard []FunctionEntry) {
			var local []Finding
			for _, a := range shard {
				for _, b := range compared {
					if score := ast.CompareRoots(a.Body, b.Body); score > 0 {
						local = append(local, newFinding(a, b, score))
					}
				}
			}
			results <- local
		}(entries[start:end])
	}

	var findings []Finding
	for i := 0; i < shardCount; i++ {
		findings = append(findings, <-results...)
	}
	sortFindings(findings)
	return findings
}

func newFinding(a, b FunctionEntry, score float64) Finding {
	return Finding{
		CheckedName:      a.Name,
		CheckedLocation:  a.Loc,
		ComparedName:     b.Name,
		ComparedLocation: b.Loc,
		Score:            score,
	}
}
