package dictionary

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/bastiangx/wordsolve/internal/logger"
	"github.com/bastiangx/wordsolve/internal/utils"
)

// Regenerate scores every word with source and writes the frequency file at
// path, most frequent first (ties by word). With workers > 1 the scoring runs
// on that many goroutines; the file is written once, after all scores are in.
func Regenerate(ctx context.Context, words []string, source FrequencySource, path string, workers int) ([]Entry, error) {
	l := logger.New("regen")
	start := time.Now()

	entries, err := scoreWords(ctx, words, source, workers)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Word < entries[j].Word
	})

	format := DetectFormat(path)
	err = utils.WriteFileAtomic(path, func(f *os.File) error {
		return WriteFrequencies(f, format, entries)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to write frequency file %s: %w", path, err)
	}

	info, _ := GetFormatInfo(format)
	l.Info("Frequency file written",
		"path", path,
		"words", len(entries),
		"source", source.Name(),
		"format", info.Description,
		"took", time.Since(start).Round(time.Millisecond))
	return entries, nil
}

// scoreWords returns one entry per word, in input order.
func scoreWords(ctx context.Context, words []string, source FrequencySource, workers int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries := make([]Entry, len(words))
	if workers <= 1 {
		for i, w := range words {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			entries[i] = Entry{Word: w, Score: source.Score(w)}
		}
		return entries, nil
	}

	// Each worker writes only its own indexes, so entries needs no lock.
	jobs := make(chan int)
	var wg sync.WaitGroup
	for n := 0; n < workers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				entries[i] = Entry{Word: words[i], Score: source.Score(words[i])}
			}
		}()
	}

	var err error
feed:
	for i := range words {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	if err != nil {
		return nil, err
	}
	return entries, nil
}
