package memory

import (
	"fmt"
)

// exactStringIndex indexes a string read from a record. Unlike
// memdb.StringFieldIndex it also indexes the empty string, so that a record
// with an empty field can still be found by it.
//
// memdb seeks on the indexed prefix, so lookups must still compare the
// field of every returned record with the requested value.
type exactStringIndex struct {
	field func(raw any) (string, bool)
}

func (x exactStringIndex) FromObject(raw any) (bool, []byte, error) {
	s, ok := x.field(raw)
	if !ok {
		return false, nil, fmt.Errorf("unexpected record type %T", raw)
	}

	return true, []byte(s + "\x00"), nil
}

func (x exactStringIndex) FromArgs(args ...any) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("must provide only a single argument")
	}

	s, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("argument must be a string: %#v", args[0])
	}

	return []byte(s + "\x00"), nil
}
