// internal/models/json.go
// Small JSON encoding helpers shared across the wire-facing model types.

package models

import "encoding/json"

func marshalTuple(name string, score float64) ([]byte, error) {
	return json.Marshal([2]interface{}{name, score})
}
