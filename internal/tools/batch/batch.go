// Package batch supports tool arguments that accept either a single ID or an
// array of IDs, running the operation per ID and aggregating the outcomes
// into one JSON payload.
package batch

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Per-item status values in batch results.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the outcome of one operation in a batch.
type Result struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Summary aggregates the results of a batch operation.
type Summary struct {
	Total      int      `json:"total"`
	Successful int      `json:"successful"`
	Failed     int      `json:"failed"`
	Results    []Result `json:"results"`
}

// ParseStringOrArray accepts a tool argument given either as a single string
// or as an array of strings and normalizes it to a non-empty slice.
func ParseStringOrArray(param interface{}, paramName string) ([]string, error) {
	if param == nil {
		return nil, fmt.Errorf("%s is required", paramName)
	}

	switch v := param.(type) {
	case string:
		if v == "" {
			return nil, fmt.Errorf("%s cannot be empty", paramName)
		}
		// Agents sometimes send the array JSON-encoded inside a string.
		if strings.HasPrefix(v, "[") {
			var ids []string
			if err := json.Unmarshal([]byte(v), &ids); err == nil {
				if len(ids) == 0 {
					return nil, fmt.Errorf("%s cannot be empty", paramName)
				}
				for i, id := range ids {
					if id == "" {
						return nil, fmt.Errorf("%s[%d] cannot be empty", paramName, i)
					}
				}
				return ids, nil
			}
			// Not valid JSON, treat it as a literal ID.
		}
		return []string{v}, nil
	case []interface{}:
		if len(v) == 0 {
			return nil, fmt.Errorf("%s cannot be empty", paramName)
		}
		ids := make([]string, 0, len(v))
		for i, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s[%d] must be a string", paramName, i)
			}
			if str == "" {
				return nil, fmt.Errorf("%s[%d] cannot be empty", paramName, i)
			}
			ids = append(ids, str)
		}
		return ids, nil
	default:
		return nil, fmt.Errorf("%s must be a string or array of strings", paramName)
	}
}

// ProcessBatch runs fn once per ID. Failures do not stop the batch; every ID
// gets a result in input order.
func ProcessBatch(ids []string, fn func(id string) (string, error)) []Result {
	results := make([]Result, 0, len(ids))
	for _, id := range ids {
		r := Result{ID: id}
		msg, err := fn(id)
		if err != nil {
			r.Status = StatusError
			r.Error = err.Error()
		} else {
			r.Status = StatusSuccess
			r.Result = msg
		}
		results = append(results, r)
	}
	return results
}

// FormatResults renders batch results as an indented JSON summary.
func FormatResults(results []Result) string {
	s := Summary{
		Total:   len(results),
		Results: results,
	}
	for _, r := range results {
		if r.Status == StatusSuccess {
			s.Successful++
		} else {
			s.Failed++
		}
	}

	out, _ := json.MarshalIndent(s, "", "  ")
	return string(out)
}
