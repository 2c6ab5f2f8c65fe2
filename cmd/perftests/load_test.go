package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	auction "closed-auction-metrics/internal/auctionService"
	repository "closed-auction-metrics/internal/repository"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name        string
	NumAuctions int
	ReadRatio   int // out of 10: single-auction reads
	WindowRatio int // out of 10: window queries
	WindowLimit int
	Burst       bool // if true, no delay between ops
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	latencies atomic.Value // stores []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	v := om.latencies.Load()
	var l []time.Duration
	if v != nil {
		l = v.([]time.Duration)
	}
	l = append(l, d)
	om.latencies.Store(l)
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	v := om.latencies.Load()
	if v == nil {
		return
	}
	latencies := v.([]time.Duration)
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	min = latencies[0]
	max = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	p99 = latencies[int(0.99*float64(len(latencies)))]
	return
}

// setupStore creates the repository and auction service seeded with closed auctions
func setupStore(ctx context.Context, numAuctions int) (*repository.MemoryRepo, *auction.AuctionService) {
	repo := repository.NewMemoryRepo(repository.DefaultQueryLimit)
	svc := auction.NewAuctionService(repo)
	for i := 0; i < numAuctions; i++ {
		_ = repo.SaveAuction(ctx, benchAuction(i, benchStart.Add(time.Duration(i)*time.Minute)))
	}
	return repo, svc
}

// Benchmark_Load_AuctionMetrics runs multiple scenarios
func Benchmark_Load_AuctionMetrics(b *testing.B) {
	scenarios := []LoadScenario{
		{"Low-Contention-WriteHeavy", 200, 0, 0, 10, false},
		{"ReadHeavy-SingleLookups", 50, 9, 0, 10, false},
		{"WindowQuery-Heavy", 500, 2, 6, 25, false},
		{"Mixed-Workload", 100, 5, 2, 10, false},
		{"Edge-Case-SingleAuction", 1, 7, 0, 10, false},
		{"Peak-Burst", 200, 5, 3, 10, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	ctx := context.Background()
	repo, svc := setupStore(ctx, s.NumAuctions)

	var totalOps, writes, singleReads, windowReads int64
	metrics := &OperationMetrics{}

	windowStart := benchStart
	windowEnd := benchStart.Add(time.Duration(s.NumAuctions) * time.Minute)

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano() + int64(time.Now().Nanosecond())))

		for pb.Next() {
			auctionIndex := rnd.Intn(s.NumAuctions)
			opType := rnd.Intn(10)

			opStart := time.Now()
			switch {
			case opType < s.ReadRatio:
				if _, err := svc.GetAuctionData(ctx, fmt.Sprintf("%d", auctionIndex)); err != nil {
					b.Logf("ignored read error: %v", err)
				}
				atomic.AddInt64(&singleReads, 1)
			case opType < s.ReadRatio+s.WindowRatio:
				limit := s.WindowLimit
				if _, err := svc.GetAuctionsData(ctx, &windowStart, &windowEnd, &limit); err != nil {
					b.Logf("ignored window error: %v", err)
				}
				atomic.AddInt64(&windowReads, 1)
			default:
				if err := repo.SaveAuction(ctx, benchAuction(auctionIndex, benchStart.Add(time.Duration(auctionIndex)*time.Minute))); err != nil {
					b.Logf("ignored save error: %v", err)
				}
				atomic.AddInt64(&writes, 1)
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()
	min, max, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Auctions: %d | Total Ops: %d | Writes: %d | Single Reads: %d | Window Reads: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumAuctions, totalOps, writes, singleReads, windowReads, elapsed,
		throughput,
		float64(min.Microseconds()), float64(avg.Microseconds()), float64(max.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)
}
