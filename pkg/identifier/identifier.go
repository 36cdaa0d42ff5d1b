package identifier

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/diwise/template-broker/pkg/errors"
)

const DefaultKeyLength int = 8

const alphanumerics string = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Identifier is an opaque key of the form prefix:timestamp:randomkey. Two
// identifiers are equal when their full strings are equal.
type Identifier string

// None is the zero identifier, used where an identifier is optional.
const None Identifier = ""

type Part int

const (
	Prefix Part = iota
	Timestamp
	Key
)

type options struct {
	keyLength int
	now       func() time.Time
}

type Option func(*options)

// KeyLength sets the number of random characters in the key segment.
func KeyLength(length int) Option {
	return func(o *options) {
		o.keyLength = length
	}
}

func clock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// New composes a fresh identifier from prefix, the current time in
// milliseconds and a random alphanumeric key. Uniqueness is not checked.
func New(prefix string, opts ...Option) (Identifier, error) {
	if prefix == "" {
		return "", errors.NewMissingPrefixError()
	}

	o := &options{
		keyLength: DefaultKeyLength,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(o)
	}

	key, err := randomKey(o.keyLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate identifier key: %w", err)
	}

	return Identifier(fmt.Sprintf("%s:%d:%s", prefix, o.now().UnixMilli(), key)), nil
}

// FromString accepts an identifier received from outside the process, e.g.
// as part of a request path.
func FromString(s string) (Identifier, error) {
	id := Identifier(s)

	prefix, err := id.Parse(Prefix)
	if err != nil {
		return "", err
	}

	if prefix == "" {
		return "", errors.NewMissingPrefixError()
	}

	return id, nil
}

// Parse returns one of the three colon separated parts of the identifier.
func (id Identifier) Parse(part Part) (string, error) {
	parts := strings.Split(string(id), ":")
	if len(parts) != 3 {
		return "", errors.NewWrongFormatError(len(parts))
	}

	switch part {
	case Prefix:
		return parts[0], nil
	case Timestamp:
		return parts[1], nil
	case Key:
		return parts[2], nil
	default:
		return "", fmt.Errorf("unknown identifier part %d", part)
	}
}

func (id Identifier) String() string {
	return string(id)
}

func randomKey(length int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("key length must not be negative, got %d", length)
	}

	limit := big.NewInt(int64(len(alphanumerics)))
	key := make([]byte, length)

	for i := range key {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		key[i] = alphanumerics[n.Int64()]
	}

	return string(key), nil
}
