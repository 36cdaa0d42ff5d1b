package errors

import (
	goerrors "errors"
	"testing"

	"github.com/matryer/is"
)

func TestSentinelsMatchTheirOwnKindOnly(t *testing.T) {
	is := is.New(t)

	err := NewMissingObjectError("schema:1:abc")

	is.True(goerrors.Is(err, ErrMissingObject))     // should match its sentinel
	is.True(!goerrors.Is(err, ErrNoMatchingObject)) // should not match another kind
	is.Equal(err.Error(), "no object with id schema:1:abc")
}

func TestWrongFormatCarriesPartCount(t *testing.T) {
	is := is.New(t)

	err := NewWrongFormatError(2)
	is.True(goerrors.Is(err, ErrWrongFormat))

	var wfe *WrongFormatError
	is.True(goerrors.As(err, &wfe))
	is.Equal(wfe.Count, 2)
}

func TestUnauthorizedInstanceCarriesBothSides(t *testing.T) {
	is := is.New(t)

	err := NewUnauthorizedInstanceError("schema:1:abc", "Paris Marathon")

	var uie *UnauthorizedInstanceError
	is.True(goerrors.As(err, &uie))
	is.Equal(uie.Schema, "schema:1:abc")
	is.Equal(uie.Instance, "Paris Marathon")
	is.True(goerrors.Is(err, ErrUnauthorizedInstance))
}

func TestPropagatedErrorKeepsItsCause(t *testing.T) {
	is := is.New(t)

	err := NewPropagatedError(NewMissingPrefixError())

	is.True(goerrors.Is(err, ErrPropagated))
	is.True(goerrors.Is(err, ErrMissingPrefix)) // cause should remain reachable
}
