// internal/logs/load.go
package logs

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Scored completion logs can carry wide per-position candidate lists.
const maxLineBytes = 4 * 1024 * 1024

// MalformedRecordError reports a log line that cannot be decoded into the
// Record shape. Loading stops at the first bad line.
type MalformedRecordError struct {
	Path string
	Line int
	Err  error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s:%d: malformed record: %v", e.Path, e.Line, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// ReaderOptions configures a log Reader.
type ReaderOptions struct {
	// Strict validates every line against the record schema before decoding.
	Strict bool
}

// Reader streams records from a JSONL log file, one line per record, in a
// single forward pass. Blank lines are skipped.
type Reader struct {
	path    string
	file    *os.File
	sc      *bufio.Scanner
	line    int
	strict  bool
	peeked  *Record
	peekErr error
	hasPeek bool
}

// Open opens a JSONL log for streaming.
func Open(path string, opts ReaderOptions) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	sc := bufio.NewScanner(file)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Reader{path: path, file: file, sc: sc, strict: opts.Strict}, nil
}

// Next returns the next record, or io.EOF at the end of the log.
func (r *Reader) Next() (*Record, error) {
	if r.hasPeek {
		rec, err := r.peeked, r.peekErr
		r.peeked, r.peekErr, r.hasPeek = nil, nil, false
		return rec, err
	}
	return r.read()
}

// Peek returns the first unconsumed record without advancing the stream.
func (r *Reader) Peek() (*Record, error) {
	if !r.hasPeek {
		r.peeked, r.peekErr = r.read()
		r.hasPeek = true
	}
	return r.peeked, r.peekErr
}

func (r *Reader) read() (*Record, error) {
	for r.sc.Scan() {
		r.line++
		text := strings.TrimSpace(r.sc.Text())
		if text == "" {
			continue
		}
		if r.strict {
			if err := validateLine([]byte(text)); err != nil {
				return nil, &MalformedRecordError{Path: r.path, Line: r.line, Err: err}
			}
		}
		var rec Record
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			return nil, &MalformedRecordError{Path: r.path, Line: r.line, Err: err}
		}
		return &rec, nil
	}
	if err := r.sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	return nil, io.EOF
}

func (r *Reader) Close() error { return r.file.Close() }

// ReadAll materializes an entire log. The reranking challenge needs this to
// fit its correctness models before streaming begins.
func ReadAll(path string, opts ReaderOptions) ([]*Record, error) {
	r, err := Open(path, opts)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var records []*Record
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}
