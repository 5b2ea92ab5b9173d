package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

const (
	e4Script        = "play 4 6 4 4\n"
	foolsMateScript = "play 5 6 5 5\nplay 4 1 4 3\nplay 6 6 6 4\nplay 3 0 7 4\n"
	badScript       = "play 4 6 4 4\nfly 1 2\n"
)

func scriptItems(scripts ...string) []worker.WorkItem {
	items := make([]worker.WorkItem, len(scripts))
	for i, s := range scripts {
		items[i] = worker.WorkItem{Index: i, Name: "script" + string(rune('A'+i)), Script: s}
	}
	return items
}

func newTestContext(w output.SnapshotWriter, detector *hashing.ThreadSafeDuplicateDetector, log *bytes.Buffer) *ProcessingContext {
	cfg := config.NewConfigBuilder().
		WithVerbosity(config.Results).
		WithLogFile(&lockedWriter{w: log}).
		Build()
	return &ProcessingContext{
		cfg:                cfg,
		detector:           detector,
		writer:             w,
		suppressDuplicates: detector != nil,
	}
}

func TestLoadScripts(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	if err := os.WriteFile(first, []byte(e4Script), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte(foolsMateScript), 0644); err != nil {
		t.Fatal(err)
	}

	t.Run("files", func(t *testing.T) {
		got, err := loadScripts([]string{first, second}, nil)
		if err != nil {
			t.Fatalf("loadScripts() error = %v", err)
		}
		want := []worker.WorkItem{
			{Index: 0, Name: first, Script: e4Script},
			{Index: 1, Name: second, Script: foolsMateScript},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("loadScripts() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("stdin", func(t *testing.T) {
		got, err := loadScripts(nil, strings.NewReader(e4Script))
		if err != nil {
			t.Fatalf("loadScripts() error = %v", err)
		}
		want := []worker.WorkItem{{Index: 0, Name: "stdin", Script: e4Script}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("loadScripts() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := loadScripts([]string{filepath.Join(dir, "nope.txt")}, nil); err == nil {
			t.Error("loadScripts() error = nil; want error for missing file")
		}
	})
}

func TestReadFileList(t *testing.T) {
	list := "# scripts\nfirst.txt\n\n  second.txt  \n"
	got, err := readFileList(strings.NewReader(list))
	if err != nil {
		t.Fatalf("readFileList() error = %v", err)
	}
	want := []string{"first.txt", "second.txt"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("readFileList() mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessAllScripts(t *testing.T) {
	var out, log bytes.Buffer
	ctx := newTestContext(output.NewJSONWriter(&out), nil, &log)

	stats := processAllScripts(scriptItems(e4Script, foolsMateScript, badScript), ctx, 2)
	if err := ctx.writer.Close(); err != nil {
		t.Fatal(err)
	}

	want := Stats{Total: 3, Output: 3, Failed: 1}
	if stats != want {
		t.Errorf("stats = %+v; want %+v", stats, want)
	}

	var got output.JSONOutput
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got.Games) != 3 {
		t.Fatalf("games = %d; want 3", len(got.Games))
	}
	for i, name := range []string{"scriptA", "scriptB", "scriptC"} {
		if got.Games[i].Name != name {
			t.Errorf("games[%d].Name = %q; want %q", i, got.Games[i].Name, name)
		}
	}
	if got.Games[1].Analysis.Result != "0-1" {
		t.Errorf("fool's mate result = %q; want 0-1", got.Games[1].Analysis.Result)
	}
	if !strings.Contains(got.Games[2].Error, "line 2") {
		t.Errorf("bad script error = %q; want it to name line 2", got.Games[2].Error)
	}
	if !strings.Contains(log.String(), "checkmate, Black wins") {
		t.Errorf("log missing checkmate line:\n%s", log.String())
	}
	if !strings.Contains(log.String(), "scriptC: line 2") {
		t.Errorf("log missing script error:\n%s", log.String())
	}
}

func TestProcessAllScripts_Transcript(t *testing.T) {
	var out, log bytes.Buffer
	ctx := newTestContext(output.NewTextWriter(&out), nil, &log)

	processAllScripts(scriptItems("moves 1 7\nplay 4 6 4 4\nstatus\n"), ctx, 1)
	for _, want := range []string{"> (0,5) (2,5)\n", "> phase=Idle turn=Black check=false result=*\n"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

// TestParallelDuplicateDetection_MatchesSequential checks that the
// duplicate count does not depend on the number of workers.
func TestParallelDuplicateDetection_MatchesSequential(t *testing.T) {
	scripts := []string{e4Script, foolsMateScript, e4Script, "", e4Script, foolsMateScript}

	for _, numWorkers := range []int{1, 4} {
		var out, log bytes.Buffer
		detector := hashing.NewThreadSafeDuplicateDetector(false)
		ctx := newTestContext(output.NewTextWriter(&out), detector, &log)

		stats := processAllScripts(scriptItems(scripts...), ctx, numWorkers)
		want := Stats{Total: 6, Output: 3, Duplicates: 3}
		if stats != want {
			t.Errorf("workers=%d: stats = %+v; want %+v", numWorkers, stats, want)
		}
		if detector.UniqueCount() != 3 {
			t.Errorf("workers=%d: UniqueCount() = %d; want 3", numWorkers, detector.UniqueCount())
		}
	}
}

// TestParallelDuplicateDetection_FirstCopyKept checks that the earliest
// script of a repeated game is the one treated as original.
func TestParallelDuplicateDetection_FirstCopyKept(t *testing.T) {
	scripts := []string{e4Script, foolsMateScript, e4Script, "", e4Script, foolsMateScript}
	want := []bool{false, false, true, false, true, true}

	for run := 0; run < 20; run++ {
		var out, log bytes.Buffer
		ctx := newTestContext(output.NewJSONWriter(&out), hashing.NewThreadSafeDuplicateDetector(false), &log)
		ctx.suppressDuplicates = false

		processAllScripts(scriptItems(scripts...), ctx, 4)
		if err := ctx.writer.Close(); err != nil {
			t.Fatal(err)
		}

		var got output.JSONOutput
		if err := json.Unmarshal(out.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		flags := make([]bool, len(got.Games))
		for i, g := range got.Games {
			flags[i] = g.Duplicate
		}
		if diff := cmp.Diff(want, flags); diff != "" {
			t.Fatalf("run %d: duplicate flags mismatch (-want +got):\n%s", run, diff)
		}
	}
}

func TestProcessAllScripts_SuppressKeepsFirstCopy(t *testing.T) {
	var out, log bytes.Buffer
	ctx := newTestContext(output.NewTextWriter(&out), hashing.NewThreadSafeDuplicateDetector(false), &log)

	items := scriptItems(e4Script, e4Script, e4Script, e4Script)
	stats := processAllScripts(items, ctx, 4)
	want := Stats{Total: 4, Output: 1, Duplicates: 3}
	if stats != want {
		t.Errorf("stats = %+v; want %+v", stats, want)
	}
	if !strings.Contains(out.String(), `[Name "scriptA"]`) {
		t.Errorf("output does not keep the first script:\n%s", out.String())
	}
}

func TestProcessAllScripts_KeepDuplicates(t *testing.T) {
	var out, log bytes.Buffer
	ctx := newTestContext(output.NewTextWriter(&out), hashing.NewThreadSafeDuplicateDetector(false), &log)
	ctx.suppressDuplicates = false

	stats := processAllScripts(scriptItems(e4Script, e4Script), ctx, 1)
	want := Stats{Total: 2, Output: 2, Duplicates: 1}
	if stats != want {
		t.Errorf("stats = %+v; want %+v", stats, want)
	}
	if n := strings.Count(out.String(), `[Duplicate "true"]`); n != 1 {
		t.Errorf("duplicate tags = %d; want 1", n)
	}
}

func TestProcessAllScripts_Filter(t *testing.T) {
	var out, log bytes.Buffer
	ctx := newTestContext(output.NewTextWriter(&out), nil, &log)
	ctx.filter = gameFilter{checkmate: true}

	stats := processAllScripts(scriptItems(e4Script, foolsMateScript), ctx, 2)
	want := Stats{Total: 2, Output: 1}
	if stats != want {
		t.Errorf("stats = %+v; want %+v", stats, want)
	}
	if !strings.Contains(out.String(), `[Name "scriptB"]`) || strings.Contains(out.String(), `[Name "scriptA"]`) {
		t.Errorf("filter output wrong games:\n%s", out.String())
	}
}

func TestLockedWriter(t *testing.T) {
	var buf bytes.Buffer
	lw := &lockedWriter{w: &buf}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lw.Write([]byte("line\n")) //nolint:errcheck
		}()
	}
	wg.Wait()

	if got := strings.Count(buf.String(), "line\n"); got != 20 {
		t.Errorf("lines = %d; want 20", got)
	}
}
