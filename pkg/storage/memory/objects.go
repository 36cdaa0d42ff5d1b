package memory

import (
	"fmt"
	"slices"

	"github.com/hashicorp/go-memdb"

	"github.com/diwise/template-broker/pkg/errors"
	"github.com/diwise/template-broker/pkg/identifier"
	"github.com/diwise/template-broker/pkg/types"
)

const (
	objectsTable string = "objects"

	byID       string = "id"
	byName     string = "name"
	bySchemaID string = "schemaId"
)

// objectRecord exposes the indexed fields of an object to memdb, which only
// reads exported struct fields.
type objectRecord[V any] struct {
	ID       string
	Name     string
	SchemaID string
	Object   *types.Object[V]
}

func objectSchema[V any]() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			objectsTable: {
				Name: objectsTable,
				Indexes: map[string]*memdb.IndexSchema{
					byID: {
						Name:    byID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					byName: {
						Name: byName,
						Indexer: exactStringIndex{field: func(raw any) (string, bool) {
							r, ok := raw.(*objectRecord[V])
							if !ok {
								return "", false
							}
							return r.Name, true
						}},
					},
					bySchemaID: {
						Name:         bySchemaID,
						AllowMissing: true,
						Indexer:      &memdb.StringFieldIndex{Field: "SchemaID"},
					},
				},
			},
		},
	}
}

// ObjectCollection stores objects by identifier and keeps secondary indices
// on name and schema identifier. Objects are copied on the way in and on the
// way out, so callers never share state with the collection.
type ObjectCollection[V any] struct {
	db *memdb.MemDB
}

func NewObjectCollection[V any]() (*ObjectCollection[V], error) {
	db, err := memdb.NewMemDB(objectSchema[V]())
	if err != nil {
		return nil, fmt.Errorf("failed to create object collection: %w", err)
	}

	return &ObjectCollection[V]{db: db}, nil
}

// Insert stores a copy of object, replacing any object with the same id.
func (c *ObjectCollection[V]) Insert(object *types.Object[V]) error {
	clone := object.Clone()
	schemaID, _ := clone.SchemaID()

	txn := c.db.Txn(true)
	defer txn.Abort()

	err := txn.Insert(objectsTable, &objectRecord[V]{
		ID:       clone.ID().String(),
		Name:     clone.Name(),
		SchemaID: schemaID.String(),
		Object:   clone,
	})
	if err != nil {
		return errors.NewPropagatedError(err)
	}

	txn.Commit()

	return nil
}

func (c *ObjectCollection[V]) Get(id identifier.Identifier) (*types.Object[V], error) {
	txn := c.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(objectsTable, byID, id.String())
	if err != nil {
		return nil, errors.NewPropagatedError(err)
	}

	if raw == nil {
		return nil, errors.NewMissingObjectError(id.String())
	}

	return raw.(*objectRecord[V]).Object.Clone(), nil
}

// Remove deletes the object with the given id and returns it.
func (c *ObjectCollection[V]) Remove(id identifier.Identifier) (*types.Object[V], error) {
	txn := c.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(objectsTable, byID, id.String())
	if err != nil {
		return nil, errors.NewPropagatedError(err)
	}

	if raw == nil {
		return nil, errors.NewMissingObjectError(id.String())
	}

	if err = txn.Delete(objectsTable, raw); err != nil {
		return nil, errors.NewPropagatedError(err)
	}

	txn.Commit()

	return raw.(*objectRecord[V]).Object, nil
}

// GetObjectsBySchemaID returns every object bound to the schema. Finding no
// object is an error.
func (c *ObjectCollection[V]) GetObjectsBySchemaID(schemaID identifier.Identifier) ([]*types.Object[V], error) {
	objects, err := c.lookup(bySchemaID, schemaID.String())
	if err != nil {
		return nil, err
	}

	objects = slices.DeleteFunc(objects, func(o *types.Object[V]) bool {
		id, ok := o.SchemaID()
		return !ok || id != schemaID
	})

	if len(objects) == 0 {
		return nil, errors.NewNoMatchingObjectError(schemaID.String())
	}

	return objects, nil
}

// GetObjectsByName returns every object with the given name. Finding no
// object is an error.
func (c *ObjectCollection[V]) GetObjectsByName(name string) ([]*types.Object[V], error) {
	objects, err := c.lookup(byName, name)
	if err != nil {
		return nil, err
	}

	objects = slices.DeleteFunc(objects, func(o *types.Object[V]) bool {
		return o.Name() != name
	})

	if len(objects) == 0 {
		return nil, errors.NewNoMatchingObjectError(name)
	}

	return objects, nil
}

// List returns copies of all stored objects ordered by id.
func (c *ObjectCollection[V]) List() ([]*types.Object[V], error) {
	return c.lookup(byID)
}

func (c *ObjectCollection[V]) Len() int {
	objects, err := c.List()
	if err != nil {
		return 0
	}
	return len(objects)
}

func (c *ObjectCollection[V]) lookup(index string, args ...any) ([]*types.Object[V], error) {
	txn := c.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(objectsTable, index, args...)
	if err != nil {
		return nil, errors.NewPropagatedError(err)
	}

	objects := []*types.Object[V]{}

	for raw := it.Next(); raw != nil; raw = it.Next() {
		objects = append(objects, raw.(*objectRecord[V]).Object.Clone())
	}

	return objects, nil
}
