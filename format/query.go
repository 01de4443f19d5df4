package format

import (
	"encoding/json"
	"fmt"

	"github.com/itchyny/gojq"
)

// Plain converts v into the generic JSON shape (maps, slices, strings,
// float64, bool, nil) that gojq and structpb accept.
func Plain(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding records: %w", err)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decoding records: %w", err)
	}
	return out, nil
}

// ApplyQuery runs a jq expression over v. A single result is returned as
// is; several are collected into a slice. An empty query returns v in its
// plain form.
func ApplyQuery(v any, query string) (any, error) {
	plain, err := Plain(v)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return plain, nil
	}

	parsed, err := gojq.Parse(query)
	if err != nil {
		return nil, fmt.Errorf("invalid --query: %w", err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("invalid --query: %w", err)
	}

	var results []any
	iter := code.Run(plain)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return nil, fmt.Errorf("query error: %w", err)
		}
		results = append(results, v)
	}

	if len(results) == 1 {
		return results[0], nil
	}
	return results, nil
}
