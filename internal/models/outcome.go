// internal/models/outcome.go
// Outcome is the either(score, error) sum type produced by a single player's
// side of a match, and carried through scoreboard aggregation.

package models

import (
	"encoding/json"
	"fmt"
)

// Outcome is either a numeric score or an error message. Exactly one of the
// two fields is meaningful at a time; IsError reports which.
type Outcome struct {
	score    float64
	errMsg   string
	isError  bool
}

// OkOutcome builds a successful numeric outcome.
func OkOutcome(score float64) Outcome {
	return Outcome{score: score}
}

// ErrOutcome builds an errored outcome carrying a human-readable message.
func ErrOutcome(msg string) Outcome {
	return Outcome{errMsg: msg, isError: true}
}

// IsError reports whether this outcome represents a failure.
func (o Outcome) IsError() bool {
	return o.isError
}

// Score returns the numeric score and true, or (0, false) if this is an error.
func (o Outcome) Score() (float64, bool) {
	if o.isError {
		return 0, false
	}
	return o.score, true
}

// Err returns the error message and true, or ("", false) if this is a success.
func (o Outcome) Err() (string, bool) {
	if !o.isError {
		return "", false
	}
	return o.errMsg, true
}

func (o Outcome) String() string {
	if o.isError {
		return fmt.Sprintf("Err(%s)", o.errMsg)
	}
	return fmt.Sprintf("Ok(%v)", o.score)
}

// outcomeWire is the tagged wire form: {"Ok": n} or {"Err": s}.
type outcomeWire struct {
	Ok  *float64 `json:"Ok,omitempty"`
	Err *string  `json:"Err,omitempty"`
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	if o.isError {
		msg := o.errMsg
		return json.Marshal(outcomeWire{Err: &msg})
	}
	score := o.score
	return json.Marshal(outcomeWire{Ok: &score})
}

func (o *Outcome) UnmarshalJSON(data []byte) error {
	var wire outcomeWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	switch {
	case wire.Err != nil:
		*o = ErrOutcome(*wire.Err)
	case wire.Ok != nil:
		*o = OkOutcome(*wire.Ok)
	default:
		return fmt.Errorf("outcome: neither Ok nor Err present")
	}
	return nil
}
