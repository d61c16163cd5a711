// Package logstore implements an append-only log store: a human-readable,
// line-oriented record of every individual admitted into the archive,
// headed by a serialized configuration block, used to resume a run after
// a crash.
package logstore

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tomhoffer/paretoevo/internal/core"
)

const headerPrefix = ";; header "

// Header carries the serialized configuration block as a flat key/value
// map: whatever engine parameters and Genetics identification the caller
// supplies (the engine records a subset of its config plus the Genetics
// chromosome size and Go type name, not the Genetics state). Writing it as independent "key=value" lines (rather than
// one block) keeps the format prefix-valid: truncating mid-header still
// leaves every earlier header line intact and parseable.
type Header map[string]string

// Writer appends records and iteration markers to a log file. It is used
// only from the evolution-loop thread: no internal synchronization is
// provided.
type Writer struct {
	file *os.File
	w    *bufio.Writer
}

// Create opens path for a fresh run, truncating any existing content, and
// writes the header.
func Create(path string, header Header) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, core.NewLogReadError("failed to create log file", err)
	}
	writer := &Writer{file: f, w: bufio.NewWriter(f)}
	if err := writer.writeHeader(header); err != nil {
		f.Close()
		return nil, err
	}
	return writer, nil
}

// OpenAppend opens an existing log file for resumed writing, positioned at
// the end. The header is neither rewritten nor read; Resume parses it
// separately.
func OpenAppend(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, core.NewLogReadError("failed to open log file for append", err)
	}
	return &Writer{file: f, w: bufio.NewWriter(f)}, nil
}

func (wr *Writer) writeHeader(header Header) error {
	keys := make([]string, 0, len(header))
	for k := range header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(wr.w, "%s%s=%s\n", headerPrefix, k, header[k]); err != nil {
			return err
		}
	}
	return wr.w.Flush()
}

// AppendRecord writes a single admitted individual. If dead is true (only
// meaningful when logAllEvaluations is set), a " ;; x" marker is appended.
func (wr *Writer) AppendRecord(ind core.Individual, dead bool) error {
	line := EncodeRecord(ind)
	if dead {
		line += " ;; x"
	}
	if _, err := fmt.Fprintln(wr.w, line); err != nil {
		return err
	}
	return wr.w.Flush()
}

// AppendMarker writes the comment line between iterations.
func (wr *Writer) AppendMarker(iteration, frontSize, newIndividuals int) error {
	if _, err := fmt.Fprintln(wr.w, IterationMarker(iteration, frontSize, newIndividuals)); err != nil {
		return err
	}
	return wr.w.Flush()
}

// Close flushes and closes the underlying file.
func (wr *Writer) Close() error {
	if err := wr.w.Flush(); err != nil {
		wr.file.Close()
		return err
	}
	return wr.file.Close()
}

func isHeaderLine(line string) bool {
	return strings.HasPrefix(line, headerPrefix)
}
