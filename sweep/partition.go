package sweep

import "math"

// Partition is a contiguous block of samples evaluated by one goroutine
type Partition struct {
	ID    int
	Start int // first sample index
	Count int // number of samples
}

// End is one past the last sample index
func (p Partition) End() int { return p.Start + p.Count }

// PartitionSamples splits n samples into at most workers contiguous
// partitions whose sizes differ by at most one
func PartitionSamples(n, workers int) []Partition {
	if n <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	base, extra := n/workers, n%workers
	parts := make([]Partition, workers)
	start := 0
	for i := range parts {
		count := base
		if i < extra {
			count++
		}
		parts[i] = Partition{ID: i, Start: start, Count: count}
		start += count
	}
	return parts
}

// PartitionStats summarizes the load balance of a partitioning
type PartitionStats struct {
	NumPartitions int
	MinSamples    int
	MaxSamples    int
	AvgSamples    float64
	Imbalance     float64 // MaxSamples / AvgSamples
}

// Statistics computes load balance metrics
func Statistics(parts []Partition) PartitionStats {
	if len(parts) == 0 {
		return PartitionStats{}
	}
	stats := PartitionStats{
		NumPartitions: len(parts),
		MinSamples:    math.MaxInt32,
	}
	total := 0
	for _, p := range parts {
		total += p.Count
		if p.Count < stats.MinSamples {
			stats.MinSamples = p.Count
		}
		if p.Count > stats.MaxSamples {
			stats.MaxSamples = p.Count
		}
	}
	stats.AvgSamples = float64(total) / float64(len(parts))
	stats.Imbalance = float64(stats.MaxSamples) / stats.AvgSamples
	return stats
}
