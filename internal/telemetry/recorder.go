// Package telemetry records board notifications as CSV rows.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"lifeboard/internal/board"
)

// Record is one CSV row describing a board notification.
type Record struct {
	Seq        int    `csv:"seq"`
	Change     string `csv:"change"`
	Width      int    `csv:"width"`
	Height     int    `csv:"height"`
	Population int    `csv:"population"`
	UndoDepth  int    `csv:"undo_depth"`
}

// Recorder writes one Record per notification. Listeners cannot return
// errors, so the first write failure is kept and reported by Err; later
// notifications are dropped.
type Recorder struct {
	out           io.Writer
	closer        io.Closer
	seq           int
	headerWritten bool
	err           error
}

// NewRecorder writes records to out.
func NewRecorder(out io.Writer) *Recorder {
	return &Recorder{out: out}
}

// Create opens (truncating) a CSV file at path, creating parent directories.
func Create(path string) (*Recorder, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating telemetry directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	r := NewRecorder(f)
	r.closer = f
	return r, nil
}

// Listener returns the board listener that feeds the recorder.
func (r *Recorder) Listener() board.Listener {
	return func(b *board.Board) {
		r.Write(Record{
			Seq:        r.seq + 1,
			Change:     b.LastChange().String(),
			Width:      b.Width(),
			Height:     b.Height(),
			Population: b.Population(),
			UndoDepth:  b.UndoDepth(),
		})
	}
}

// Write appends rec, emitting the header before the first row.
func (r *Recorder) Write(rec Record) {
	if r.err != nil {
		return
	}
	records := []*Record{&rec}
	var err error
	if !r.headerWritten {
		err = gocsv.Marshal(records, r.out)
		r.headerWritten = true
	} else {
		err = gocsv.MarshalWithoutHeaders(records, r.out)
	}
	if err != nil {
		r.err = fmt.Errorf("writing telemetry: %w", err)
		return
	}
	r.seq = rec.Seq
}

// Rows returns the number of records written.
func (r *Recorder) Rows() int { return r.seq }

// Err returns the first write error, if any.
func (r *Recorder) Err() error { return r.err }

// Close closes the underlying file when the recorder owns one.
func (r *Recorder) Close() error {
	if r.closer == nil {
		return r.err
	}
	if err := r.closer.Close(); err != nil {
		return fmt.Errorf("closing telemetry: %w", err)
	}
	return r.err
}
