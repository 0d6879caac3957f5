// Command hashstat reports how evenly dict.Hash spreads a key set.
//
// It loads the keys into a dict.Table, measures how far each entry landed
// from its ideal cell, and compares the bucket spread of dict.Hash against
// xxhash over the same keys.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/theflywheel/dict"
)

// ProbeStats summarizes the displacement of live entries from their ideal
// cell.
type ProbeStats struct {
	Len        int
	Cap        int
	LoadFactor float64
	MeanProbe  float64
	MaxProbe   int
	Tombstones int
	Ideal      int // entries sitting exactly in their ideal cell
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "hashstat: %v\n", err)
		os.Exit(1)
	}
}

func mainImpl() error {
	numKeys := flag.Int("keys", 10_000, "Number of keys to generate")
	buckets := flag.Int("buckets", 1024, "Number of buckets for the distribution comparison")
	uuids := flag.Bool("uuid", false, "Use random UUID strings instead of sequential keys")
	verbose := flag.Bool("v", false, "Log resize events")
	flag.Parse()
	if len(flag.Args()) > 0 {
		return fmt.Errorf("unknown arguments: %v", flag.Args())
	}
	if *numKeys <= 0 || *buckets <= 0 {
		return fmt.Errorf("-keys and -buckets must be positive")
	}

	ll := &slog.LevelVar{}
	ll.Set(slog.LevelInfo)
	if *verbose {
		ll.Set(slog.LevelDebug)
	}
	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      ll,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))

	keys := make([]string, *numKeys)
	for i := range keys {
		if *uuids {
			u, err := generateUUID()
			if err != nil {
				return fmt.Errorf("failed to generate key: %w", err)
			}
			keys[i] = u
		} else {
			keys[i] = fmt.Sprintf("key-%d", i)
		}
	}

	t := dict.New[int](dict.WithLogger(logger))
	for i, k := range keys {
		t.Insert(k, i)
	}
	st := probeStats(t)
	logger.Info("table",
		"len", st.Len,
		"cap", st.Cap,
		"load", fmt.Sprintf("%.3f", st.LoadFactor),
		"mean_probe", fmt.Sprintf("%.3f", st.MeanProbe),
		"max_probe", st.MaxProbe,
		"ideal", st.Ideal)

	legacy := chiSquare(keys, *buckets, dict.Hash)
	reference := chiSquare(keys, *buckets, xxhash.Sum64String)
	logger.Info("distribution",
		"buckets", *buckets,
		"chi2_dict", fmt.Sprintf("%.1f", legacy),
		"chi2_xxhash", fmt.Sprintf("%.1f", reference),
		"ratio", fmt.Sprintf("%.2f", legacy/reference))
	return nil
}

// probeStats walks the cells of t and measures, for every live entry, the
// number of steps between its ideal cell and the cell it occupies.
func probeStats[V any](t *dict.Table[V]) ProbeStats {
	st := ProbeStats{Len: t.Len(), Cap: t.Cap(), Tombstones: t.Tombstones()}
	st.LoadFactor = float64(st.Len) / float64(st.Cap)

	n := uint64(st.Cap)
	total := 0
	for i, c := range t.Cells() {
		if c.State != dict.Occupied {
			continue
		}
		ideal := c.Hash % n
		dist := int((uint64(i) + n - ideal) % n)
		total += dist
		if dist == 0 {
			st.Ideal++
		}
		st.MaxProbe = max(st.MaxProbe, dist)
	}
	if st.Len > 0 {
		st.MeanProbe = float64(total) / float64(st.Len)
	}
	return st
}

// chiSquare returns Pearson's chi-square statistic of the bucket counts
// hash(key) mod buckets against a uniform spread.
func chiSquare(keys []string, buckets int, hash func(string) uint64) float64 {
	counts := make([]int, buckets)
	for _, k := range keys {
		counts[hash(k)%uint64(buckets)]++
	}
	expected := float64(len(keys)) / float64(buckets)
	chi2 := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	return chi2
}

// generateUUID returns a random version 4 UUID in hex form.
func generateUUID() (string, error) {
	uuid := make([]byte, 16)
	if _, err := rand.Read(uuid); err != nil {
		return "", err
	}
	// Set version (4) and variant (RFC4122)
	uuid[6] = (uuid[6] & 0x0F) | 0x40
	uuid[8] = (uuid[8] & 0x3F) | 0x80
	return hex.EncodeToString(uuid), nil
}
