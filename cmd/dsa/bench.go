package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/btree"
	"github.com/urfave/cli/v2"

	"github.com/MohsenEbrahimi86/dsa/splaytree"
)

var cmdSplayBench = &cli.Command{
	Name:  "bench",
	Usage: "time inserts and finds against a B-tree and a map",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "n",
			Usage: "number of keys to insert",
			Value: 100_000,
		},
		&cli.IntFlag{
			Name:  "finds",
			Usage: "number of lookups to run",
			Value: 1_000_000,
		},
		&cli.StringFlag{
			Name:  "pattern",
			Usage: "lookup pattern: sequential, random, or skewed",
			Value: "skewed",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "seed for keys, values, and probes",
			Value: 1,
		},
	},
	Action: runSplayBench,
}

type benchEntry struct {
	key int
	val string
}

func runSplayBench(cctx *cli.Context) error {
	var (
		n       = cctx.Int("n")
		finds   = cctx.Int("finds")
		pattern = cctx.String("pattern")
		seed    = cctx.Int64("seed")
	)
	if n < 1 {
		return fmt.Errorf("need at least one key, got n=%d", n)
	}

	rng := rand.New(rand.NewSource(seed))
	faker := gofakeit.New(seed)

	keys := rng.Perm(n)
	vals := make([]string, n)
	for i := range vals {
		vals[i] = faker.Word()
	}

	probes, err := makeProbes(rng, pattern, n, finds)
	if err != nil {
		return err
	}
	slog.Info("benchmark", "n", n, "finds", finds, "pattern", pattern, "seed", seed)

	tr := splaytree.New[int, string]()
	start := time.Now()
	for i, k := range keys {
		tr.Insert(k, vals[i])
	}
	insertDur := time.Since(start)

	hits := 0
	start = time.Now()
	for _, k := range probes {
		if _, ok := tr.Find(k); ok {
			hits++
		}
	}
	findDur := time.Since(start)
	slog.Info("splay tree", "insert", insertDur, "find", findDur, "hits", hits, "height", tr.Height())

	bt := btree.NewG(32, func(a, b benchEntry) bool { return a.key < b.key })
	start = time.Now()
	for i, k := range keys {
		bt.ReplaceOrInsert(benchEntry{key: k, val: vals[i]})
	}
	insertDur = time.Since(start)

	hits = 0
	start = time.Now()
	for _, k := range probes {
		if _, ok := bt.Get(benchEntry{key: k}); ok {
			hits++
		}
	}
	findDur = time.Since(start)
	slog.Info("b-tree", "insert", insertDur, "find", findDur, "hits", hits)

	// Built-in map, as the unordered baseline.
	m := make(map[int]string, n)
	start = time.Now()
	for i, k := range keys {
		m[k] = vals[i]
	}
	insertDur = time.Since(start)

	hits = 0
	start = time.Now()
	for _, k := range probes {
		if _, ok := m[k]; ok {
			hits++
		}
	}
	findDur = time.Since(start)
	slog.Info("map", "insert", insertDur, "find", findDur, "hits", hits)

	return nil
}

func makeProbes(rng *rand.Rand, pattern string, n, finds int) ([]int, error) {
	probes := make([]int, finds)
	switch pattern {
	case "sequential":
		for i := range probes {
			probes[i] = i % n
		}
	case "random":
		for i := range probes {
			probes[i] = rng.Intn(n)
		}
	case "skewed":
		zipf := rand.NewZipf(rng, 1.2, 1, uint64(n-1))
		for i := range probes {
			probes[i] = int(zipf.Uint64())
		}
	default:
		return nil, fmt.Errorf("unknown lookup pattern %q", pattern)
	}
	return probes, nil
}
