package errors

import (
	"fmt"
	"strings"
)

var ErrMissingPrefix = fmt.Errorf("missing prefix")
var ErrWrongFormat = fmt.Errorf("wrong format")
var ErrInvalidType = fmt.Errorf("invalid type")
var ErrNonMatchingType = fmt.Errorf("non matching type")
var ErrMissingObject = fmt.Errorf("missing object")
var ErrNoMatchingObject = fmt.Errorf("no matching object")
var ErrNoParentObject = fmt.Errorf("no parent object")
var ErrMissingSchemaID = fmt.Errorf("missing schema id")
var ErrUnauthorizedInstance = fmt.Errorf("unauthorized instance")
var ErrMissingEntitiesFromSchema = fmt.Errorf("missing entities from schema")
var ErrPropagated = fmt.Errorf("propagated error")

type myError struct {
	msg    string
	target error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }

func NewMissingPrefixError() error {
	return &myError{
		msg:    "identifier prefix cannot be empty",
		target: ErrMissingPrefix,
	}
}

func NewInvalidTypeError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrInvalidType,
	}
}

func NewNonMatchingTypeError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrNonMatchingType,
	}
}

func NewMissingObjectError(id string) error {
	return &myError{
		msg:    fmt.Sprintf("no object with id %s", id),
		target: ErrMissingObject,
	}
}

func NewNoMatchingObjectError(key string) error {
	return &myError{
		msg:    fmt.Sprintf("no objects matching %s", key),
		target: ErrNoMatchingObject,
	}
}

func NewNoParentObjectError(id string) error {
	return &myError{
		msg:    fmt.Sprintf("no templates bound to schema %s", id),
		target: ErrNoParentObject,
	}
}

func NewMissingSchemaIDError(instance string) error {
	return &myError{
		msg:    fmt.Sprintf("instance %s does not reference a schema", instance),
		target: ErrMissingSchemaID,
	}
}

// WrongFormatError is returned when an identifier does not split into
// exactly three parts.
type WrongFormatError struct {
	Count int
}

func NewWrongFormatError(count int) error {
	return &WrongFormatError{Count: count}
}

func (e *WrongFormatError) Error() string {
	return fmt.Sprintf("invalid identifier format, expected 3 parts but got %d", e.Count)
}

func (e *WrongFormatError) Is(target error) bool { return target == ErrWrongFormat }

// UnauthorizedInstanceError is returned when an instance is rendered by a
// template bound to a different schema.
type UnauthorizedInstanceError struct {
	Schema   string
	Instance string
}

func NewUnauthorizedInstanceError(schema, instance string) error {
	return &UnauthorizedInstanceError{Schema: schema, Instance: instance}
}

func (e *UnauthorizedInstanceError) Error() string {
	return fmt.Sprintf("instance %s is not bound to schema %s", e.Instance, e.Schema)
}

func (e *UnauthorizedInstanceError) Is(target error) bool { return target == ErrUnauthorizedInstance }

// MissingEntitiesError carries the schema attributes that have no
// placeholder in a template's content.
type MissingEntitiesError struct {
	Names []string
}

func NewMissingEntitiesError(names []string) error {
	return &MissingEntitiesError{Names: names}
}

func (e *MissingEntitiesError) Error() string {
	return fmt.Sprintf("placeholders do not match schema attributes, missing [%s]", strings.Join(e.Names, ", "))
}

func (e *MissingEntitiesError) Is(target error) bool { return target == ErrMissingEntitiesFromSchema }

type propagatedError struct {
	cause error
}

// NewPropagatedError wraps a lower level failure that crossed a builder
// boundary. The cause stays reachable through errors.Is and errors.As.
func NewPropagatedError(cause error) error {
	return &propagatedError{cause: cause}
}

func (p *propagatedError) Error() string        { return "propagated error: " + p.cause.Error() }
func (p *propagatedError) Is(target error) bool { return target == ErrPropagated }
func (p *propagatedError) Unwrap() error        { return p.cause }
