package container

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mewkiz/lsg2/internal/lsgerr"
)

// T0Value is the series origin timestamp, which the codec treats as an
// opaque JSON primitive: either a string or a number (spec.md §3, §9). It
// round-trips verbatim without ever being parsed or interpreted.
type T0Value struct {
	isString bool
	str      string
	num      float64
}

// T0FromString wraps a string t0.
func T0FromString(s string) T0Value { return T0Value{isString: true, str: s} }

// T0FromNumber wraps a numeric t0.
func T0FromNumber(n float64) T0Value { return T0Value{num: n} }

// String returns the wrapped string and true, or ("", false) if T0 holds
// a number.
func (t T0Value) String() (string, bool) {
	if t.isString {
		return t.str, true
	}
	return "", false
}

// Number returns the wrapped number and true, or (0, false) if T0 holds a
// string.
func (t T0Value) Number() (float64, bool) {
	if t.isString {
		return 0, false
	}
	return t.num, true
}

// MarshalJSON emits the wrapped value as the JSON primitive it was built
// from.
func (t T0Value) MarshalJSON() ([]byte, error) {
	if t.isString {
		return json.Marshal(t.str)
	}
	return json.Marshal(t.num)
}

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (t *T0Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = T0Value{isString: true, str: s}
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*t = T0Value{num: n}
		return nil
	}
	return fmt.Errorf("container: t0 must be a string or number, got %q", string(data))
}

// Context is the decoded form of the ContextJSON block (spec.md §6.1).
type Context struct {
	DT   float64
	T0   T0Value
	Unit string
}

// contextWire is the on-disk shape, used only for Marshal/Unmarshal.
type contextWire struct {
	DT   float64 `json:"dt"`
	T0   T0Value `json:"t0"`
	Unit string  `json:"unit"`
}

// MarshalContext serializes ctx to the exact JSON object required by the
// container format: exactly the keys "dt", "t0", "unit".
func MarshalContext(ctx Context) ([]byte, error) {
	return json.Marshal(contextWire{DT: ctx.DT, T0: ctx.T0, Unit: ctx.Unit})
}

// UnmarshalContext parses and validates a ContextJSON block, rejecting any
// object that does not have exactly the keys "dt", "t0", "unit", or whose
// "dt" is not a positive number.
func UnmarshalContext(data []byte) (Context, error) {
	var raw map[string]json.RawMessage
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return Context{}, lsgerr.Wrap(lsgerr.MalformedContext, err, "context is not a JSON object")
	}
	if dec.More() {
		return Context{}, lsgerr.New(lsgerr.MalformedContext, "context has trailing data after JSON object")
	}

	const (
		keyDT   = "dt"
		keyT0   = "t0"
		keyUnit = "unit"
	)
	if len(raw) != 3 {
		return Context{}, lsgerr.New(lsgerr.MalformedContext, "context must have exactly 3 keys, got %d", len(raw))
	}
	for k := range raw {
		if k != keyDT && k != keyT0 && k != keyUnit {
			return Context{}, lsgerr.New(lsgerr.MalformedContext, "context has unexpected key %q", k)
		}
	}

	var ctx Context
	if dtRaw, ok := raw[keyDT]; ok {
		if err := json.Unmarshal(dtRaw, &ctx.DT); err != nil {
			return Context{}, lsgerr.Wrap(lsgerr.MalformedContext, err, "dt must be a number")
		}
	} else {
		return Context{}, lsgerr.New(lsgerr.MalformedContext, "context missing %q", keyDT)
	}
	if ctx.DT <= 0 {
		return Context{}, lsgerr.New(lsgerr.MalformedContext, "dt must be > 0, got %v", ctx.DT)
	}

	t0Raw, ok := raw[keyT0]
	if !ok {
		return Context{}, lsgerr.New(lsgerr.MalformedContext, "context missing %q", keyT0)
	}
	if err := json.Unmarshal(t0Raw, &ctx.T0); err != nil {
		return Context{}, lsgerr.Wrap(lsgerr.MalformedContext, err, "invalid t0")
	}

	unitRaw, ok := raw[keyUnit]
	if !ok {
		return Context{}, lsgerr.New(lsgerr.MalformedContext, "context missing %q", keyUnit)
	}
	if err := json.Unmarshal(unitRaw, &ctx.Unit); err != nil {
		return Context{}, lsgerr.Wrap(lsgerr.MalformedContext, err, "unit must be a string")
	}

	return ctx, nil
}
