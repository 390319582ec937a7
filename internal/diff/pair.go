// internal/diff/pair.go
package diff

import (
	"errors"
	"fmt"
	"io"

	"github.com/mwiater/lmdiff/internal/logs"
	"github.com/mwiater/lmdiff/internal/util"
)

// RecordSource yields one record at a time and reports io.EOF when drained.
type RecordSource interface {
	Next() (*logs.Record, error)
}

// SliceSource adapts a materialized log to RecordSource. Like the file
// reader it is a single forward pass.
type SliceSource struct {
	records []*logs.Record
	pos     int
}

func NewSliceSource(records []*logs.Record) *SliceSource {
	return &SliceSource{records: records}
}

func (s *SliceSource) Len() int { return len(s.records) }

func (s *SliceSource) Next() (*logs.Record, error) {
	if s.pos >= len(s.records) {
		return nil, io.EOF
	}
	rec := s.records[s.pos]
	s.pos++
	return rec, nil
}

// Pair is one example's data from both logs, aligned by position and
// verified to share the same target text.
type Pair struct {
	Target    string
	Baseline  *logs.Record
	Candidate *logs.Record
}

// AlignmentError reports that the two logs diverged: one ended before the
// other, or a positional pair disagreed on its target text.
type AlignmentError struct {
	Index  int
	Reason string
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("logs are not aligned at record %d: %s", e.Index, e.Reason)
}

// Pairer zips two record sources into a single stream of pairs. It makes a
// single forward pass: once Next returns a non-nil error the Pairer stays
// exhausted.
type Pairer struct {
	baseline  RecordSource
	candidate RecordSource
	index     int
	done      bool
	pending   error
}

// sized is implemented by sources whose length is known up front, letting
// the pairer fail a length mismatch before anything is rendered.
type sized interface {
	Len() int
}

func NewPairer(baseline, candidate RecordSource) *Pairer {
	p := &Pairer{baseline: baseline, candidate: candidate}
	if b, ok := baseline.(sized); ok {
		if c, ok := candidate.(sized); ok && b.Len() != c.Len() {
			p.pending = &AlignmentError{
				Reason: fmt.Sprintf("baseline has %d records, candidate has %d", b.Len(), c.Len()),
			}
		}
	}
	return p
}

// Next returns the next aligned pair, io.EOF once both sources are drained,
// or an *AlignmentError as soon as the sources diverge.
func (p *Pairer) Next() (*Pair, error) {
	if p.done {
		return nil, io.EOF
	}
	if p.pending != nil {
		err := p.pending
		p.pending = nil
		p.done = true
		return nil, err
	}

	base, baseErr := p.baseline.Next()
	cand, candErr := p.candidate.Next()

	switch {
	case errors.Is(baseErr, io.EOF) && errors.Is(candErr, io.EOF):
		p.done = true
		return nil, io.EOF
	case errors.Is(baseErr, io.EOF):
		p.done = true
		return nil, &AlignmentError{Index: p.index, Reason: "baseline log ended first"}
	case errors.Is(candErr, io.EOF):
		p.done = true
		return nil, &AlignmentError{Index: p.index, Reason: "candidate log ended first"}
	case baseErr != nil:
		p.done = true
		return nil, baseErr
	case candErr != nil:
		p.done = true
		return nil, candErr
	}

	if base.Target != cand.Target {
		p.done = true
		return nil, &AlignmentError{
			Index: p.index,
			Reason: fmt.Sprintf("target mismatch: baseline %q vs candidate %q",
				util.TruncateRunes(base.Target, 40), util.TruncateRunes(cand.Target, 40)),
		}
	}

	pair := &Pair{Target: base.Target, Baseline: base, Candidate: cand}
	p.index++
	return pair, nil
}
