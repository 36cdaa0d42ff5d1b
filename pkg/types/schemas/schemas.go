package schemas

import (
	"encoding/json"

	"github.com/diwise/template-broker/pkg/identifier"
	"github.com/diwise/template-broker/pkg/types"
	"github.com/diwise/template-broker/pkg/types/attributes"
)

const IDPrefix string = "schema"

// Schema declares the named and typed attributes an instance must conform to.
type Schema = types.Object[attributes.SchemaType]

type SchemaDecoratorFunc = types.ObjectDecoratorFunc[attributes.SchemaType]

func New(name string, decorators ...SchemaDecoratorFunc) (*Schema, error) {
	return types.New(name, IDPrefix, identifier.None, decorators...)
}

// Attribute declares an attribute on a new schema.
func Attribute(name string, schemaType attributes.SchemaType) SchemaDecoratorFunc {
	return types.E(name, schemaType)
}

func Text(name string) SchemaDecoratorFunc {
	return Attribute(name, attributes.Text)
}

func Integer16(name string) SchemaDecoratorFunc {
	return Attribute(name, attributes.Integer16)
}

func NewFromJSON(body []byte) (*Schema, error) {
	return types.UnmarshalObject(body, func(raw json.RawMessage) (attributes.SchemaType, error) {
		return attributes.UnmarshalSchemaType(raw)
	})
}
