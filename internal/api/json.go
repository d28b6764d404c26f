// internal/api/json.go
// Shared wire-format helper for endpoints whose response mirrors a Rust
// tuple (serialized as a JSON array).

package api

import "encoding/json"

func jsonMarshalTuple(values ...interface{}) ([]byte, error) {
	return json.Marshal(values)
}
