// internal/batch/labeled.go
package batch

import (
	"fmt"

	json "github.com/json-iterator/go"
	"github.com/spf13/cast"

	"github.com/xkilldash9x/vector2/pkg/dispatch"
	"github.com/xkilldash9x/vector2/pkg/vector"
)

// Labeled is a job operand that carries a name, written in a job file as
// {"x": 1, "y": 2, "label": "wind"}. Arithmetic on a Labeled operand yields a
// Labeled result with the same label; when both operands are labeled the
// left one names the result.
type Labeled struct {
	vector.Vector2
	Label string
}

// MarshalJSON encodes l as {"x":..,"y":..,"label":..}.
func (l Labeled) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X     float64 `json:"x"`
		Y     float64 `json:"y"`
		Label string  `json:"label"`
	}{l.X, l.Y, l.Label})
}

func (l Labeled) String() string {
	return fmt.Sprintf("%s: %s", l.Label, l.Vector2)
}

// registerTypes teaches d to keep labels through arithmetic.
func registerTypes(d *dispatch.Dispatcher) {
	dispatch.Register(d, func(template Labeled, v vector.Vector2) Labeled {
		return Labeled{Vector2: v, Label: template.Label}
	})
}

// labeled decodes raw as a Labeled when it is a mapping with a "label" key.
// ok reports whether raw had that shape, even when decoding it failed.
func labeled(raw any) (l Labeled, ok bool, err error) {
	m, isMap := raw.(map[string]any)
	if !isMap {
		return Labeled{}, false, nil
	}
	name, hasLabel := m["label"]
	if !hasLabel {
		return Labeled{}, false, nil
	}

	label, err := cast.ToStringE(name)
	if err != nil {
		return Labeled{}, true, fmt.Errorf("%w: label: %v", vector.ErrInvalidArgument, err)
	}
	rest := make(map[string]any, len(m)-1)
	for k, val := range m {
		if k != "label" {
			rest[k] = val
		}
	}
	v, err := vector.ConvertAny(rest)
	if err != nil {
		return Labeled{}, true, err
	}
	return Labeled{Vector2: v, Label: label}, true, nil
}

// operand prepares raw for the dispatcher: a Labeled when raw carries a
// label, a Vector2 when raw converts to one, raw itself otherwise.
func operand(raw any) (any, error) {
	if l, ok, err := labeled(raw); ok {
		if err != nil {
			return nil, err
		}
		return l, nil
	}
	if v, err := vector.ConvertAny(raw); err == nil {
		return v, nil
	}
	return raw, nil
}

// toVector converts raw, labeled or not, to a plain vector.
func toVector(raw any) (vector.Vector2, error) {
	value, err := operand(raw)
	if err != nil {
		return vector.Vector2{}, err
	}
	return vector.ConvertAny(value)
}
