// internal/logs/types.go
// Package logs models and loads JSONL evaluation logs.
package logs

import (
	"encoding/json"
	"fmt"
)

// Record is one evaluated example from a single log. Only target is common
// to every challenge; the other fields are schema-specific, and which of
// them a log carries identifies the challenge it belongs to.
type Record struct {
	Target      string
	Completions [][]string
	LogProb     *float64
	Results     []Candidate

	hasCompletions bool
	hasLogProb     bool
	hasResults     bool
}

// Candidate is one reranking result: the candidate text plus its error-model
// and language-model scores. The wire form is a three-element array.
type Candidate struct {
	Text       string
	ErrorScore float64
	LMScore    float64
}

func (c *Candidate) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 3 {
		return fmt.Errorf("result entry must be [text, errorScore, lmScore], got %d elements", len(parts))
	}
	if err := json.Unmarshal(parts[0], &c.Text); err != nil {
		return fmt.Errorf("result text: %w", err)
	}
	if err := json.Unmarshal(parts[1], &c.ErrorScore); err != nil {
		return fmt.Errorf("result error score: %w", err)
	}
	if err := json.Unmarshal(parts[2], &c.LMScore); err != nil {
		return fmt.Errorf("result lm score: %w", err)
	}
	return nil
}

func (c Candidate) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{c.Text, c.ErrorScore, c.LMScore})
}

// UnmarshalJSON decodes a record while tracking which schema keys the line
// carried. "logp": null counts as present-but-unscored, which matters for
// challenge detection.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	target, ok := raw["target"]
	if !ok {
		return fmt.Errorf("record has no target")
	}
	if err := json.Unmarshal(target, &r.Target); err != nil {
		return fmt.Errorf("target: %w", err)
	}
	if v, ok := raw["completions"]; ok {
		r.hasCompletions = true
		if err := json.Unmarshal(v, &r.Completions); err != nil {
			return fmt.Errorf("completions: %w", err)
		}
	}
	if v, ok := raw["logp"]; ok {
		r.hasLogProb = true
		if err := json.Unmarshal(v, &r.LogProb); err != nil {
			return fmt.Errorf("logp: %w", err)
		}
	}
	if v, ok := raw["results"]; ok {
		r.hasResults = true
		if err := json.Unmarshal(v, &r.Results); err != nil {
			return fmt.Errorf("results: %w", err)
		}
	}
	return nil
}

// HasCompletions reports whether the source line carried a completions key.
func (r *Record) HasCompletions() bool { return r.hasCompletions }

// HasLogProb reports whether the source line carried a logp key, even null.
func (r *Record) HasLogProb() bool { return r.hasLogProb }

// HasResults reports whether the source line carried a results key.
func (r *Record) HasResults() bool { return r.hasResults }
