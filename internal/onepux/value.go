package onepux

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ValueKind discriminates the shapes a section-field payload can take.
type ValueKind int

const (
	ValueNull ValueKind = iota
	ValueString
	ValueInt
	ValueMap
	// ValueOther marks shapes outside the interchange schema (arrays,
	// fractional numbers, booleans). They decode without error so one odd
	// field never aborts the document; the classifier logs and drops them.
	ValueOther
)

// FieldValue is the dynamically-typed payload of a section field: a plain
// string, a 64-bit integer, a nested mapping, or null. It is decoded once
// and immutable afterward.
type FieldValue struct {
	kind ValueKind
	str  string
	num  int64
	obj  map[string]FieldValue
}

// Kind returns the decoded shape.
func (v FieldValue) Kind() ValueKind { return v.kind }

// AsString returns the string payload, if the value is a plain string.
func (v FieldValue) AsString() (string, bool) {
	return v.str, v.kind == ValueString
}

// AsInt returns the integer payload, if the value is a plain integer.
func (v FieldValue) AsInt() (int64, bool) {
	return v.num, v.kind == ValueInt
}

// AsMap returns the nested mapping, if the value is one.
func (v FieldValue) AsMap() (map[string]FieldValue, bool) {
	return v.obj, v.kind == ValueMap
}

// MapString returns the string held under key in a nested mapping, or ""
// when the value is not a mapping, the key is absent, or the entry is not
// a string.
func (v FieldValue) MapString(key string) string {
	if v.kind != ValueMap {
		return ""
	}
	s, _ := v.obj[key].AsString()
	return s
}

// UnmarshalJSON accepts strings, integral numbers, objects and null.
// Fractional numbers, arrays and any other shape are not part of the
// interchange schema; they decode to ValueOther instead of failing, so a
// single malformed field never poisons the whole export document.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = FieldValue{kind: ValueNull}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FieldValue{kind: ValueString, str: s}
		return nil
	case '{':
		var m map[string]FieldValue
		if err := json.Unmarshal(data, &m); err != nil {
			return err
		}
		*v = FieldValue{kind: ValueMap, obj: m}
		return nil
	default:
		var n int64
		if err := json.Unmarshal(data, &n); err != nil {
			*v = FieldValue{kind: ValueOther}
			return nil
		}
		*v = FieldValue{kind: ValueInt, num: n}
		return nil
	}
}

// KeyedValue is the single-entry object carrying a section field's payload:
// one canonical key ("username", "password", "totp", "address", "email",
// "date", "monthYear", "file", ...) mapped to a FieldValue. When the source
// carries several entries, the first in document order wins, keeping
// classification deterministic.
type KeyedValue struct {
	Key   string
	Value FieldValue
}

// IsZero reports whether no key/value pair was present.
func (kv KeyedValue) IsZero() bool { return kv.Key == "" }

// UnmarshalJSON decodes the first key/value pair in document order.
func (kv *KeyedValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*kv = KeyedValue{}
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object for keyed value, got %s", data)
	}

	if !dec.More() {
		*kv = KeyedValue{}
		return nil
	}

	tok, err = dec.Token()
	if err != nil {
		return err
	}
	key := tok.(string)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	var v FieldValue
	if err := v.UnmarshalJSON(raw); err != nil {
		return err
	}

	*kv = KeyedValue{Key: key, Value: v}
	return nil
}
