package templates

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/diwise/template-broker/pkg/errors"
	"github.com/diwise/template-broker/pkg/identifier"
	"github.com/diwise/template-broker/pkg/types/instances"
	"github.com/diwise/template-broker/pkg/types/schemas"
)

const IDPrefix string = "template"

// Template is content that has been validated against a schema. It can only
// be rendered with instances of that schema.
type Template struct {
	id           identifier.Identifier
	content      Content
	parentSchema identifier.Identifier
}

func (t Template) ID() identifier.Identifier {
	return t.id
}

func (t Template) Content() Content {
	return t.content
}

func (t Template) ParentSchema() identifier.Identifier {
	return t.parentSchema
}

// Placeholders returns the distinct placeholder references in lexical order.
func (t Template) Placeholders() []string {
	return sortedReferences(t.content)
}

// BuildFromInstance renders the template with the values of instance.
//
// The content is split on whitespace and every word holding a placeholder
// for one of the instance's attributes is replaced in full by the rendered
// value. Other words are kept as they are. Words are joined by a single
// space.
func (t Template) BuildFromInstance(instance *instances.Instance) (string, error) {
	schemaID, ok := instance.SchemaID()
	if !ok {
		return "", errors.NewMissingSchemaIDError(instance.Name())
	}

	if schemaID != t.parentSchema {
		return "", errors.NewUnauthorizedInstanceError(t.parentSchema.String(), instance.Name())
	}

	words := strings.Fields(t.content.text)

	for i, word := range words {
		ref, ok := reference(word)
		if !ok {
			continue
		}

		if e, found := instance.Entity(ref); found {
			words[i] = e.Value().String()
		}
	}

	return strings.Join(words, " "), nil
}

func (t Template) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID           string   `json:"id"`
		Content      string   `json:"content"`
		ParentSchema string   `json:"parentSchema"`
		Placeholders []string `json:"placeholders"`
	}{
		ID:           t.id.String(),
		Content:      t.content.text,
		ParentSchema: t.parentSchema.String(),
		Placeholders: t.Placeholders(),
	})
}

func NewFromJSON(body []byte) (*Template, error) {
	contents := struct {
		ID           string `json:"id"`
		Content      string `json:"content"`
		ParentSchema string `json:"parentSchema"`
	}{}

	err := json.Unmarshal(body, &contents)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal template: %w", err)
	}

	id, err := identifier.FromString(contents.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal template id: %w", err)
	}

	parent, err := identifier.FromString(contents.ParentSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal parent schema id: %w", err)
	}

	return &Template{
		id:           id,
		content:      NewContent(contents.Content),
		parentSchema: parent,
	}, nil
}

// Builder validates content against a schema before a Template is created.
type Builder struct {
	content Content
	schema  *schemas.Schema
}

func NewBuilder(content string, schema *schemas.Schema) *Builder {
	return &Builder{
		content: NewContent(content),
		schema:  schema,
	}
}

func (b *Builder) Build() (*Template, error) {
	err := IsMatchingSchema(b.content, b.schema)
	if err != nil {
		return nil, err
	}

	id, err := identifier.New(IDPrefix)
	if err != nil {
		return nil, errors.NewPropagatedError(err)
	}

	return &Template{
		id:           id,
		content:      b.content,
		parentSchema: b.schema.ID(),
	}, nil
}
