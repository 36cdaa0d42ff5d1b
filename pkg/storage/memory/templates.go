package memory

import (
	"fmt"
	"slices"

	"github.com/hashicorp/go-memdb"

	"github.com/diwise/template-broker/pkg/errors"
	"github.com/diwise/template-broker/pkg/identifier"
	"github.com/diwise/template-broker/pkg/templates"
)

const (
	templatesTable string = "templates"

	byParentSchema string = "parentSchema"
)

type templateRecord struct {
	ID           string
	ParentSchema string
	Template     templates.Template
}

func templateSchema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			templatesTable: {
				Name: templatesTable,
				Indexes: map[string]*memdb.IndexSchema{
					byID: {
						Name:    byID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					byParentSchema: {
						Name:    byParentSchema,
						Indexer: &memdb.StringFieldIndex{Field: "ParentSchema"},
					},
				},
			},
		},
	}
}

// TemplateCollection stores templates by identifier with a secondary index on
// the schema each template is bound to.
type TemplateCollection struct {
	db *memdb.MemDB
}

func NewTemplateCollection() (*TemplateCollection, error) {
	db, err := memdb.NewMemDB(templateSchema())
	if err != nil {
		return nil, fmt.Errorf("failed to create template collection: %w", err)
	}

	return &TemplateCollection{db: db}, nil
}

func (c *TemplateCollection) Insert(template *templates.Template) error {
	txn := c.db.Txn(true)
	defer txn.Abort()

	err := txn.Insert(templatesTable, &templateRecord{
		ID:           template.ID().String(),
		ParentSchema: template.ParentSchema().String(),
		Template:     *template,
	})
	if err != nil {
		return errors.NewPropagatedError(err)
	}

	txn.Commit()

	return nil
}

func (c *TemplateCollection) Get(id identifier.Identifier) (*templates.Template, error) {
	txn := c.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(templatesTable, byID, id.String())
	if err != nil {
		return nil, errors.NewPropagatedError(err)
	}

	if raw == nil {
		return nil, errors.NewMissingObjectError(id.String())
	}

	t := raw.(*templateRecord).Template
	return &t, nil
}

func (c *TemplateCollection) Remove(id identifier.Identifier) (*templates.Template, error) {
	txn := c.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(templatesTable, byID, id.String())
	if err != nil {
		return nil, errors.NewPropagatedError(err)
	}

	if raw == nil {
		return nil, errors.NewMissingObjectError(id.String())
	}

	if err = txn.Delete(templatesTable, raw); err != nil {
		return nil, errors.NewPropagatedError(err)
	}

	txn.Commit()

	t := raw.(*templateRecord).Template
	return &t, nil
}

// GetByParentSchema returns every template bound to the schema. A schema
// without templates is reported as an error.
func (c *TemplateCollection) GetByParentSchema(schemaID identifier.Identifier) ([]*templates.Template, error) {
	result, err := c.lookup(byParentSchema, schemaID.String())
	if err != nil {
		return nil, err
	}

	result = slices.DeleteFunc(result, func(t *templates.Template) bool {
		return t.ParentSchema() != schemaID
	})

	if len(result) == 0 {
		return nil, errors.NewNoParentObjectError(schemaID.String())
	}

	return result, nil
}

func (c *TemplateCollection) List() ([]*templates.Template, error) {
	return c.lookup(byID)
}

func (c *TemplateCollection) lookup(index string, args ...any) ([]*templates.Template, error) {
	txn := c.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(templatesTable, index, args...)
	if err != nil {
		return nil, errors.NewPropagatedError(err)
	}

	result := []*templates.Template{}

	for raw := it.Next(); raw != nil; raw = it.Next() {
		t := raw.(*templateRecord).Template
		result = append(result, &t)
	}

	return result, nil
}
