package types

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/diwise/template-broker/pkg/identifier"
)

// Entity is a named attribute slot holding a value of kind V. The name is
// fixed at creation.
type Entity[V any] struct {
	name  string
	value V
}

func NewEntity[V any](name string, value V) Entity[V] {
	return Entity[V]{name: name, value: value}
}

func (e Entity[V]) Name() string {
	return e.name
}

func (e Entity[V]) Value() V {
	return e.value
}

// Object is a named aggregate of entities with its own identifier and an
// optional reference to the identifier of the schema that governs it. The
// schema reference is a lookup key only.
type Object[V any] struct {
	name     string
	id       identifier.Identifier
	schemaID identifier.Identifier
	entities map[string]Entity[V]
}

type ObjectDecoratorFunc[V any] func(o *Object[V])

// New allocates a fresh identifier with the given prefix and returns an
// object without entities. Pass identifier.None as schemaID for objects that
// are not bound to a schema.
func New[V any](name, prefix string, schemaID identifier.Identifier, decorators ...ObjectDecoratorFunc[V]) (*Object[V], error) {
	id, err := identifier.New(prefix)
	if err != nil {
		return nil, err
	}

	return Restore(name, id, schemaID, decorators...), nil
}

// Restore recreates an object with an already known identifier, e.g. when
// decoding one that was received over the wire.
func Restore[V any](name string, id, schemaID identifier.Identifier, decorators ...ObjectDecoratorFunc[V]) *Object[V] {
	o := &Object[V]{
		name:     name,
		id:       id,
		schemaID: schemaID,
		entities: map[string]Entity[V]{},
	}

	for _, decorator := range decorators {
		decorator(o)
	}

	return o
}

func E[V any](name string, value V) ObjectDecoratorFunc[V] {
	return func(o *Object[V]) { o.UpdateEntity(name, value) }
}

func Entities[V any](values map[string]V) ObjectDecoratorFunc[V] {
	return func(o *Object[V]) {
		for name, value := range values {
			o.UpdateEntity(name, value)
		}
	}
}

func (o *Object[V]) Name() string {
	return o.name
}

func (o *Object[V]) ID() identifier.Identifier {
	return o.id
}

func (o *Object[V]) SchemaID() (identifier.Identifier, bool) {
	return o.schemaID, o.schemaID != identifier.None
}

// UpdateEntity inserts or replaces the entity with the given name.
func (o *Object[V]) UpdateEntity(name string, value V) {
	o.entities[name] = NewEntity(name, value)
}

func (o *Object[V]) Entity(name string) (Entity[V], bool) {
	e, ok := o.entities[name]
	return e, ok
}

// EntityNames returns the entity names in lexical order.
func (o *Object[V]) EntityNames() []string {
	return slices.Sorted(maps.Keys(o.entities))
}

// ForEachEntity calls fn once per entity, in lexical name order.
func (o *Object[V]) ForEachEntity(fn func(name string, value V)) {
	for _, name := range o.EntityNames() {
		fn(name, o.entities[name].value)
	}
}

func (o *Object[V]) Len() int {
	return len(o.entities)
}

func (o *Object[V]) Clone() *Object[V] {
	return &Object[V]{
		name:     o.name,
		id:       o.id,
		schemaID: o.schemaID,
		entities: maps.Clone(o.entities),
	}
}

// CloneAndUpdate returns a copy of the object where every entity named in
// overrides has been upserted. The receiver is left unchanged.
func (o *Object[V]) CloneAndUpdate(overrides map[string]V) *Object[V] {
	clone := o.Clone()

	for name, value := range overrides {
		clone.UpdateEntity(name, value)
	}

	return clone
}

type objectJSON[V any] struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	SchemaID   string       `json:"schemaId,omitempty"`
	Attributes map[string]V `json:"attributes"`
}

func (o Object[V]) MarshalJSON() ([]byte, error) {
	contents := objectJSON[V]{
		ID:         o.id.String(),
		Name:       o.name,
		SchemaID:   o.schemaID.String(),
		Attributes: make(map[string]V, len(o.entities)),
	}

	for name, e := range o.entities {
		contents.Attributes[name] = e.value
	}

	return json.Marshal(&contents)
}

// UnmarshalObject decodes an object previously encoded with MarshalJSON,
// using decode to turn every attribute into a value of kind V.
func UnmarshalObject[V any](data []byte, decode func(json.RawMessage) (V, error)) (*Object[V], error) {
	contents := objectJSON[json.RawMessage]{}

	err := json.Unmarshal(data, &contents)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal object: %w", err)
	}

	id, err := identifier.FromString(contents.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal object id: %w", err)
	}

	schemaID := identifier.None
	if contents.SchemaID != "" {
		schemaID, err = identifier.FromString(contents.SchemaID)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal schema id: %w", err)
		}
	}

	o := Restore[V](contents.Name, id, schemaID)

	for name, raw := range contents.Attributes {
		v, err := decode(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal attribute %s: %w", name, err)
		}
		o.UpdateEntity(name, v)
	}

	return o, nil
}
