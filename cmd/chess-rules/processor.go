// processor.go - Script loading and parallel game playing
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/processing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// ProcessingContext holds the shared state for playing a batch of scripts.
type ProcessingContext struct {
	cfg      *config.Config
	detector *hashing.ThreadSafeDuplicateDetector // nil when duplicates are not tracked
	filter   gameFilter
	writer   output.SnapshotWriter

	suppressDuplicates bool
}

// Stats counts what happened to a batch of scripts.
type Stats struct {
	Total      int
	Output     int
	Duplicates int
	Failed     int
}

// lockedWriter serializes writes from concurrent games sharing a log.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.w.Write(p)
}

// loadScripts reads each named script file. With no names it reads a
// single script from stdin.
func loadScripts(names []string, stdin io.Reader) ([]worker.WorkItem, error) {
	if len(names) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []worker.WorkItem{{Index: 0, Name: "stdin", Script: string(data)}}, nil
	}

	items := make([]worker.WorkItem, 0, len(names))
	for i, name := range names {
		data, err := os.ReadFile(name) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return nil, fmt.Errorf("reading script %s: %w", name, err)
		}
		items = append(items, worker.WorkItem{Index: i, Name: name, Script: string(data)})
	}
	return items, nil
}

// readFileList reads script file names, one per line. Blank lines and
// lines starting with '#' are skipped.
func readFileList(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, sc.Err()
}

// processScript plays one script on a controller of its own.
func processScript(item worker.WorkItem, ctx *ProcessingContext) worker.ProcessResult {
	c := game.New(ctx.cfg)
	var transcript bytes.Buffer
	runner := processing.NewRunner(c, &transcript)
	err := runner.Run(strings.NewReader(item.Script))

	snap := output.NewSnapshot(item.Name, c)
	if text := strings.TrimSuffix(transcript.String(), "\n"); text != "" {
		snap.Transcript = strings.Split(text, "\n")
	}
	if err != nil {
		snap.Error = err.Error()
		ctx.cfg.Logf(config.Results, "[%s] %s: %v", c.ID(), item.Name, err)
	}

	result := worker.ProcessResult{
		Index:     item.Index,
		Name:      item.Name,
		Snapshot:  snap,
		Signature: hashing.NewGameSignature(c.Position(), c.CurrentColour(), len(c.History())),
		Matched:   ctx.filter.matches(snap.Analysis),
		Error:     err,
	}
	return result
}

// matches reports whether a game with the analysis passes the filter.
func (f gameFilter) matches(a *processing.GameAnalysis) bool {
	switch {
	case f.checkmate && !a.Checkmate:
		return false
	case f.stalemate && !a.Stalemate:
		return false
	case f.repetition && !a.HasRepetition:
		return false
	case f.underpromotion && !a.UnderpromotionFound():
		return false
	}
	return true
}

// processAllScripts plays every script and writes the matching games in
// input order. Duplicates are checked in that order too, so the first
// copy of a game is the one kept.
func processAllScripts(items []worker.WorkItem, ctx *ProcessingContext, numWorkers int) Stats {
	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		return processScript(item, ctx)
	}, worker.WithWorkers(numWorkers), worker.WithBufferSize(numWorkers*2))

	stats := Stats{Total: len(items)}
	for _, res := range pool.Run(items) {
		if res.Error != nil {
			stats.Failed++
		}
		if !res.Matched {
			continue
		}
		if ctx.detector != nil {
			res.Snapshot.Duplicate = ctx.detector.CheckAndAdd(res.Signature)
		}
		if res.Snapshot.Duplicate {
			stats.Duplicates++
			if ctx.suppressDuplicates {
				continue
			}
		}
		if err := ctx.writer.WriteSnapshot(res.Snapshot); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", res.Name, err)
			continue
		}
		stats.Output++
	}
	return stats
}
