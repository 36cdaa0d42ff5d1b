package instances

import (
	"encoding/json"
	"fmt"

	"github.com/diwise/template-broker/pkg/errors"
	"github.com/diwise/template-broker/pkg/identifier"
	"github.com/diwise/template-broker/pkg/types"
	"github.com/diwise/template-broker/pkg/types/attributes"
	"github.com/diwise/template-broker/pkg/types/schemas"
)

const IDPrefix string = "instance"

// Instance holds parsed attribute values and references the schema it was
// built from.
type Instance = types.Object[attributes.Value]

// Builder turns raw text into typed values for the attributes of a single
// schema. The schema's attributes are captured when the builder is created.
type Builder struct {
	name           string
	schemaName     string
	schemaID       identifier.Identifier
	schemaEntities map[string]attributes.SchemaType
	entities       map[string]attributes.Value
}

func NewBuilder(schema *schemas.Schema, name string) *Builder {
	b := &Builder{
		name:           name,
		schemaName:     schema.Name(),
		schemaID:       schema.ID(),
		schemaEntities: map[string]attributes.SchemaType{},
		entities:       map[string]attributes.Value{},
	}

	schema.ForEachEntity(func(name string, st attributes.SchemaType) {
		b.schemaEntities[name] = st
	})

	return b
}

// UpdateEntity parses raw with the schema type declared for name and stores
// the result, replacing any earlier value. A nil raw stores the null value.
// Nothing is stored when the name is undeclared or the input fails to parse.
func (b *Builder) UpdateEntity(name string, raw *string) error {
	st, ok := b.schemaEntities[name]
	if !ok {
		return errors.NewNonMatchingTypeError(
			fmt.Sprintf("attribute %s is not declared by schema %s", name, b.schemaName),
		)
	}

	v, err := st.ParseValue(raw)
	if err != nil {
		return err
	}

	b.entities[name] = v

	return nil
}

// PopulateMissingEntities sets the null value for every schema attribute
// that has not been set yet. Attributes that are already set are kept.
func (b *Builder) PopulateMissingEntities() {
	for name, st := range b.schemaEntities {
		if _, ok := b.entities[name]; !ok {
			b.entities[name] = st.NullValue()
		}
	}
}

// Build allocates an identifier and returns an instance holding exactly the
// values set so far. Call PopulateMissingEntities first to cover every
// schema attribute.
func (b *Builder) Build() (*Instance, error) {
	instance, err := types.New(b.name, IDPrefix, b.schemaID, types.Entities(b.entities))
	if err != nil {
		return nil, errors.NewPropagatedError(err)
	}

	return instance, nil
}

// Update returns a copy of instance where every attribute in raw has been
// parsed with the schema's types and replaced. The instance must be bound to
// the given schema. The original instance is not modified.
func Update(schema *schemas.Schema, instance *Instance, raw map[string]*string) (*Instance, error) {
	schemaID, ok := instance.SchemaID()
	if !ok {
		return nil, errors.NewMissingSchemaIDError(instance.Name())
	}

	if schemaID != schema.ID() {
		return nil, errors.NewUnauthorizedInstanceError(schema.ID().String(), instance.Name())
	}

	overrides := make(map[string]attributes.Value, len(raw))

	for name, input := range raw {
		e, ok := schema.Entity(name)
		if !ok {
			return nil, errors.NewNonMatchingTypeError(
				fmt.Sprintf("attribute %s is not declared by schema %s", name, schema.Name()),
			)
		}

		v, err := e.Value().ParseValue(input)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", name, err)
		}

		overrides[name] = v
	}

	return instance.CloneAndUpdate(overrides), nil
}

func NewFromJSON(body []byte) (*Instance, error) {
	return types.UnmarshalObject(body, func(raw json.RawMessage) (attributes.Value, error) {
		return attributes.UnmarshalValue(raw)
	})
}
