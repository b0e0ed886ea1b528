// Package batch reads YAML files of submissions and writes their due dates.
//
// A batch file looks like:
//
//	submissions:
//	  - id: ticket-1
//	    submitted_at: 2024-07-12T16:59
//	    turnaround_hours: 2
package batch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mtlprog/turnaround/internal/domain"
)

// Output formats supported by Encode.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// File is the decoded batch file.
type File struct {
	Submissions []Entry `yaml:"submissions"`
}

// Entry is one submission in a batch file. SubmittedAt is kept as text so a
// malformed timestamp fails only its own entry. TurnaroundHours is nil when
// the key is missing.
type Entry struct {
	ID              string `yaml:"id"`
	SubmittedAt     string `yaml:"submitted_at"`
	TurnaroundHours *int   `yaml:"turnaround_hours"`
}

// Result is the outcome of one entry.
type Result struct {
	ID              string `yaml:"id" json:"id"`
	SubmittedAt     string `yaml:"submitted_at" json:"submitted_at"`
	TurnaroundHours int    `yaml:"turnaround_hours" json:"turnaround_hours"`
	DueAt           string `yaml:"due_at,omitempty" json:"due_at,omitempty"`
	Error           string `yaml:"error,omitempty" json:"error,omitempty"`
}

// Calculator resolves a batch of requests.
type Calculator interface {
	CalculateBatch(ctx context.Context, reqs []domain.DueDateRequest) ([]domain.DueDateResult, error)
}

// Load reads and decodes a batch file from path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a batch file.
func Decode(r io.Reader) (*File, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.ErrEmptyBatch
		}
		return nil, fmt.Errorf("decode batch file: %w", err)
	}
	if len(file.Submissions) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	return &file, nil
}

// Process resolves every entry in file. Zone-less timestamps are read in loc.
func Process(ctx context.Context, calc Calculator, file *File, loc *time.Location) ([]Result, error) {
	results := make([]Result, len(file.Submissions))
	reqs := make([]domain.DueDateRequest, 0, len(file.Submissions))
	index := make([]int, 0, len(file.Submissions))

	for i, entry := range file.Submissions {
		results[i] = Result{
			ID:          entry.ID,
			SubmittedAt: entry.SubmittedAt,
		}

		submittedAt, err := domain.ParseTimestamp(entry.SubmittedAt, loc)
		if err != nil {
			results[i].Error = err.Error()
			continue
		}
		if entry.TurnaroundHours == nil {
			results[i].Error = domain.ErrMissingTurnaround.Error()
			continue
		}
		results[i].TurnaroundHours = *entry.TurnaroundHours

		reqs = append(reqs, domain.DueDateRequest{
			ID:              entry.ID,
			SubmittedAt:     submittedAt,
			TurnaroundHours: *entry.TurnaroundHours,
		})
		index = append(index, i)
	}

	if len(reqs) == 0 {
		return results, nil
	}

	calculated, err := calc.CalculateBatch(ctx, reqs)
	if err != nil {
		return nil, fmt.Errorf("calculate batch: %w", err)
	}

	for j, res := range calculated {
		out := &results[index[j]]
		out.ID = res.Request.ID
		if res.Err != nil {
			out.Error = res.Err.Error()
			continue
		}
		out.DueAt = res.DueDate.DueAt.Format(domain.TimestampLayout)
	}

	return results, nil
}

// Encode writes results to w as YAML or JSON.
func Encode(w io.Writer, results []Result, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
