package parse

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
)

// Decode attempts to unmarshal a string of (possibly damaged) JSON into T.
// Language models routinely emit JSON with single quotes, unquoted keys,
// trailing commas, or stray prose around the object, so a plain unmarshal
// failure triggers an automatic repair pass via jsonrepair before the
// operation is retried. If the repaired text still does not unmarshal, a
// single error describing both attempts is returned.
//
// Example usage:
//
//	type call struct {
//	    Name string         `json:"name"`
//	    Args map[string]any `json:"arguments"`
//	}
//
//	// Valid JSON decodes directly
//	c, err := parse.Decode[call](`{"name":"sum","arguments":{"a":1}}`)
//
//	// Damaged JSON is repaired and retried
//	c, err := parse.Decode[call](`{name: 'sum', arguments: {a: 1}}`)
func Decode[T any](content string) (T, error) {
	var result T

	err := json.Unmarshal([]byte(content), &result)
	if err == nil {
		return result, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(content)
	if repairErr != nil {
		return result, fmt.Errorf("failed to unmarshal content as %T and failed to repair JSON: unmarshal error: %w, repair error: %v", result, err, repairErr)
	}

	if err := json.Unmarshal([]byte(repaired), &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal repaired JSON as %T: %w (original content: %s, repaired: %s)", result, err, content, repaired)
	}

	return result, nil
}
