package attributes

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/diwise/template-broker/pkg/errors"
)

type Kind string

const (
	TextKind      Kind = "Text"
	Integer16Kind Kind = "Integer16"
)

// NullLiteral is how an absent value is rendered into text.
const NullLiteral string = "Null"

// SchemaType declares the shape of an attribute. Every SchemaType knows how
// to parse raw text into its Value counterpart and what its null value is.
type SchemaType interface {
	Kind() Kind
	ParseValue(raw *string) (Value, error)
	NullValue() Value
	MarshalJSON() ([]byte, error)

	schemaType()
}

// Value is a concrete, possibly absent, attribute value of a SchemaType.
type Value interface {
	Kind() Kind
	IsNull() bool
	String() string
	MarshalJSON() ([]byte, error)

	value()
}

var (
	Text      SchemaType = textType{}
	Integer16 SchemaType = integer16Type{}
)

var schemaTypes = map[Kind]SchemaType{
	TextKind:      Text,
	Integer16Kind: Integer16,
}

// ParseSchemaType resolves a schema type from its name.
func ParseSchemaType(name string) (SchemaType, error) {
	st, ok := schemaTypes[Kind(name)]
	if !ok {
		return nil, errors.NewInvalidTypeError(fmt.Sprintf("unknown schema type %q", name))
	}
	return st, nil
}

// UnmarshalSchemaType decodes a schema type encoded as a JSON string.
func UnmarshalSchemaType(data []byte) (SchemaType, error) {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return nil, fmt.Errorf("schema type must be a string: %w", err)
	}
	return ParseSchemaType(name)
}

// Raw is a convenience for passing present raw input to ParseValue.
func Raw(s string) *string {
	return &s
}

type textType struct{}

func (textType) Kind() Kind { return TextKind }

func (textType) ParseValue(raw *string) (Value, error) {
	if raw == nil {
		return NewNullText(), nil
	}
	return NewText(*raw), nil
}

func (textType) NullValue() Value { return NewNullText() }

func (t textType) MarshalJSON() ([]byte, error) { return json.Marshal(string(t.Kind())) }

func (textType) schemaType() {}

type integer16Type struct{}

func (integer16Type) Kind() Kind { return Integer16Kind }

func (integer16Type) ParseValue(raw *string) (Value, error) {
	if raw == nil {
		return NewNullInteger16(), nil
	}

	i, err := strconv.ParseInt(*raw, 10, 16)
	if err != nil {
		return nil, errors.NewInvalidTypeError(fmt.Sprintf("expected %s, got %s", Integer16Kind, *raw))
	}

	return NewInteger16(int16(i)), nil
}

func (integer16Type) NullValue() Value { return NewNullInteger16() }

func (t integer16Type) MarshalJSON() ([]byte, error) { return json.Marshal(string(t.Kind())) }

func (integer16Type) schemaType() {}

// TextValue holds an optional string
type TextValue struct {
	val   string
	valid bool
}

func NewText(s string) TextValue {
	return TextValue{val: s, valid: true}
}

func NewNullText() TextValue {
	return TextValue{}
}

func (TextValue) Kind() Kind { return TextKind }

func (tv TextValue) IsNull() bool { return !tv.valid }

// Text returns the string and whether it is present.
func (tv TextValue) Text() (string, bool) { return tv.val, tv.valid }

func (tv TextValue) String() string {
	if !tv.valid {
		return NullLiteral
	}
	return tv.val
}

func (tv TextValue) MarshalJSON() ([]byte, error) {
	var val *string
	if tv.valid {
		val = &tv.val
	}

	return json.Marshal(struct {
		Type  Kind    `json:"type"`
		Value *string `json:"value"`
	}{tv.Kind(), val})
}

func (TextValue) value() {}

// Integer16Value holds an optional 16-bit integer
type Integer16Value struct {
	val   int16
	valid bool
}

func NewInteger16(i int16) Integer16Value {
	return Integer16Value{val: i, valid: true}
}

func NewNullInteger16() Integer16Value {
	return Integer16Value{}
}

func (Integer16Value) Kind() Kind { return Integer16Kind }

func (iv Integer16Value) IsNull() bool { return !iv.valid }

// Integer16 returns the integer and whether it is present.
func (iv Integer16Value) Integer16() (int16, bool) { return iv.val, iv.valid }

func (iv Integer16Value) String() string {
	if !iv.valid {
		return NullLiteral
	}
	return strconv.FormatInt(int64(iv.val), 10)
}

func (iv Integer16Value) MarshalJSON() ([]byte, error) {
	var val *int16
	if iv.valid {
		val = &iv.val
	}

	return json.Marshal(struct {
		Type  Kind   `json:"type"`
		Value *int16 `json:"value"`
	}{iv.Kind(), val})
}

func (Integer16Value) value() {}

// UnmarshalValue decodes a value encoded as {"type": ..., "value": ...}.
func UnmarshalValue(data []byte) (Value, error) {
	body := struct {
		Type  Kind            `json:"type"`
		Value json.RawMessage `json:"value"`
	}{}

	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("failed to unmarshal value: %w", err)
	}

	isNull := len(body.Value) == 0 || string(body.Value) == "null"

	switch body.Type {
	case TextKind:
		if isNull {
			return NewNullText(), nil
		}
		var s string
		if err := json.Unmarshal(body.Value, &s); err != nil {
			return nil, errors.NewInvalidTypeError(fmt.Sprintf("expected %s, got %s", TextKind, string(body.Value)))
		}
		return NewText(s), nil
	case Integer16Kind:
		if isNull {
			return NewNullInteger16(), nil
		}
		var i int16
		if err := json.Unmarshal(body.Value, &i); err != nil {
			return nil, errors.NewInvalidTypeError(fmt.Sprintf("expected %s, got %s", Integer16Kind, string(body.Value)))
		}
		return NewInteger16(i), nil
	default:
		return nil, errors.NewInvalidTypeError(fmt.Sprintf("unknown value type %q", body.Type))
	}
}
