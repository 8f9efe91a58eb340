package event

import "encoding/json"

// DecodePayload converts an event payload to T. In-process publishes carry
// the struct itself, so the type assertion is the fast path; payloads that
// arrived serialized fall back to a JSON round-trip.
func DecodePayload[T any](payload interface{}) (T, error) {
	if typed, ok := payload.(T); ok {
		return typed, nil
	}
	var decoded T
	raw, err := json.Marshal(payload)
	if err != nil {
		return decoded, err
	}
	return decoded, json.Unmarshal(raw, &decoded)
}
