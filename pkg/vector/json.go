package vector

import (
	"fmt"

	json "github.com/json-iterator/go"
)

// MarshalJSON encodes the vector in its keyed form, {"x": X, "y": Y}.
func (v Vector2) MarshalJSON() ([]byte, error) {
	return json.Marshal(Coordinates{X: v.X, Y: v.Y})
}

// UnmarshalJSON accepts any vector-like document: {"x": 1, "y": 2} or [1, 2].
func (v *Vector2) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode vector: %w", err)
	}
	w, err := ConvertAny(raw)
	if err != nil {
		return err
	}
	*v = w
	return nil
}
