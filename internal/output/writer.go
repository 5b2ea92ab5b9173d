package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// SnapshotWriter is the interface for writing snapshots to output.
// Different implementations handle different output formats.
type SnapshotWriter interface {
	// WriteSnapshot writes a single snapshot to the output.
	WriteSnapshot(s *Snapshot) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes snapshots as plain text blocks.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteSnapshot writes a header, the board and the numbered moves,
// followed by a blank line.
func (tw *TextWriter) WriteSnapshot(s *Snapshot) error {
	var err error
	printf := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(tw.w, format, args...)
		}
	}

	if s.Name != "" {
		printf("[Name %q]\n", s.Name)
	}
	printf("[ID %q]\n", s.ID)
	printf("[Phase %q]\n", s.Phase)
	printf("[ToMove %q]\n", s.ToMove)
	printf("[Result %q]\n", s.Result())
	if s.Duplicate {
		printf("[Duplicate \"true\"]\n")
	}
	if s.Error != "" {
		printf("[Error %q]\n", s.Error)
	}
	printf("\n")
	for _, row := range s.Layout {
		printf("%s\n", row)
	}
	if len(s.Moves) > 0 {
		printf("\n")
	}
	for _, m := range s.Moves {
		printf("%d. %s\n", m.Ply, m.Text)
	}
	if len(s.Transcript) > 0 {
		printf("\n")
	}
	for _, line := range s.Transcript {
		printf("> %s\n", line)
	}
	printf("\n")
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONOutput holds multiple snapshots for array output.
type JSONOutput struct {
	Games []*Snapshot `json:"games"`
}

// JSONWriter writes snapshots in JSON format.
// It buffers snapshots and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w         io.Writer
	snapshots []*Snapshot
	single    bool // If true, write each snapshot immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches snapshots and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each snapshot immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteSnapshot buffers a snapshot for JSON output (or writes immediately
// in single mode).
func (jw *JSONWriter) WriteSnapshot(s *Snapshot) error {
	if jw.single {
		return jw.encode(s)
	}
	jw.snapshots = append(jw.snapshots, s)
	return nil
}

// Flush writes all buffered snapshots as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.snapshots) == 0 {
		return nil
	}
	err := jw.encode(&JSONOutput{Games: jw.snapshots})
	jw.snapshots = nil
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
