package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload as T. MemoryBus delivers the struct itself
// (or a pointer to it); anything else, such as a map decoded from JSON, is
// converted through a JSON round trip.
func DecodePayload[T any](input interface{}) (T, error) {
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	}

	var result T
	if input == nil {
		return result, fmt.Errorf("decode %T: payload is nil", result)
	}
	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf("decode %T: %w", result, err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("decode %T: %w", result, err)
	}
	return result, nil
}
