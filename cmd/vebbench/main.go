// Command vebbench drives a randomized workload against a veb.Set and
// reports throughput, the way gaissmai/bart's own cmd/main.go drives a
// random prefix workload against a Table — except this one is a real CLI,
// with flags, logging, and a concurrent-readers phase, instead of a single
// tight loop meant for `go tool pprof`.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	veb "github.com/Hegdahl/flat-veb"
)

func main() {
	var (
		bits     = flag.Int("bits", 24, "universe bit-width, 1..32")
		ops      = flag.Int("ops", 1_000_000, "number of insert/remove operations to populate with")
		readers  = flag.Int("readers", 8, "number of concurrent read-only goroutines")
		reads    = flag.Int("reads", 200_000, "reads performed by each reader goroutine")
		readRPS  = flag.Float64("read-rps", 0, "cap aggregate reads/sec across all readers; 0 disables the limiter")
		jsonLogs = flag.Bool("json", false, "emit JSON logs instead of text")
	)
	flag.Parse()

	var handler slog.Handler
	if *jsonLogs {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	} else {
		handler = slog.NewTextHandler(os.Stderr, nil)
	}
	log := slog.New(handler).With("run", uuid.New().String())

	if err := run(log, *bits, *ops, *readers, *reads, *readRPS); err != nil {
		log.Error("benchmark failed", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, bits, ops, readers, reads int, readRPS float64) error {
	log.Info("constructing set", "bits", bits, "ops", ops)

	s := veb.NewBits(bits)
	prng := rand.New(rand.NewPCG(42, 42))
	capacity := s.Capacity()

	start := time.Now()
	var inserted, removed int
	for i := 0; i < ops; i++ {
		x := uint32(prng.Uint64N(capacity))
		if prng.IntN(2) == 0 {
			if s.Insert(x) {
				inserted++
			}
		} else {
			if s.Remove(x) {
				removed++
			}
		}
	}
	populate := time.Since(start)

	log.Info("populated",
		"duration", populate,
		"inserted", inserted,
		"removed", removed,
		"resident_members", approxMembers(s),
	)

	if readers <= 0 {
		return nil
	}

	// Readers only run once population has finished: the set supports
	// read-only sharing across goroutines once built, but never concurrent
	// mutation, so no reader runs while inserts or removes are in flight.
	var limiter *rate.Limiter
	if readRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(readRPS), int(readRPS))
	}

	g, ctx := errgroup.WithContext(context.Background())
	readStart := time.Now()
	for r := 0; r < readers; r++ {
		g.Go(func() error {
			return readWorker(ctx, s, capacity, prng.Uint64(), uint64(r), reads, limiter)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("read workers: %w", err)
	}
	readDuration := time.Since(readStart)

	total := readers * reads
	log.Info("read phase complete",
		"duration", readDuration,
		"reads", total,
		"reads_per_sec", float64(total)/readDuration.Seconds(),
	)
	return nil
}

func readWorker(ctx context.Context, s *veb.Set, capacity uint64, seed1, seed2 uint64, reads int, limiter *rate.Limiter) error {
	prng := rand.New(rand.NewPCG(seed1, seed2))
	for i := 0; i < reads; i++ {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		x := uint32(prng.Uint64N(capacity))
		switch prng.IntN(3) {
		case 0:
			s.Contains(x)
		case 1:
			s.Next(x)
		case 2:
			s.Prev(x)
		}
	}
	return nil
}

// approxMembers reports only the extrema instead of walking the whole set,
// so the summary log line doesn't cost an O(capacity) traversal on a large
// universe.
func approxMembers(s *veb.Set) string {
	if s.IsEmpty() {
		return "0"
	}
	min, _ := s.Min()
	max, _ := s.Max()
	return fmt.Sprintf("min=%d max=%d", min, max)
}
