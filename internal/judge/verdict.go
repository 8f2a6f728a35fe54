package judge

import (
	"encoding/json"
	"fmt"
)

// placeholderReason is used when the judge marks an annotation invalid
// without saying why.
const placeholderReason = "marked invalid with no reason"

// Verdict is the outcome of validating one annotation. Exactly one Verdict
// is produced per dispatched annotation.
type Verdict struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Valid    bool   `json:"valid"`
	// Reason is set only when Valid is false.
	Reason string `json:"reason,omitempty"`
}

// rawVerdict is the JSON object the judge is asked to emit.
type rawVerdict struct {
	IsValid bool   `json:"is_valid"`
	Reason  string `json:"reason"`
}

// parseResponse interprets the judge's raw output as a verdict for the named
// annotation. It looks for the first balanced JSON object in the text; a
// missing or unparseable object yields a failing verdict quoting the output.
// A missing is_valid field counts as invalid.
func parseResponse(name, location, text string) Verdict {
	obj, ok := extractObject(text)
	if !ok {
		obj = text
	}

	var raw rawVerdict
	if err := json.Unmarshal([]byte(obj), &raw); err != nil {
		return Verdict{
			Name:     name,
			Location: location,
			Valid:    false,
			Reason:   fmt.Sprintf("malformed response: %s", text),
		}
	}

	v := Verdict{Name: name, Location: location, Valid: raw.IsValid}
	if !v.Valid {
		v.Reason = raw.Reason
		if v.Reason == "" {
			v.Reason = placeholderReason
		}
	}
	return v
}

// invocationFailure builds the terminal verdict for a judge that could not
// be run at all. Never retried.
func invocationFailure(name, location string, err error) Verdict {
	return Verdict{
		Name:     name,
		Location: location,
		Valid:    false,
		Reason:   fmt.Sprintf("judge invocation failed: %v", err),
	}
}
