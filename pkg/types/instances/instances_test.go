package instances

import (
	goerrors "errors"
	"strings"
	"testing"

	"github.com/diwise/template-broker/pkg/errors"
	"github.com/diwise/template-broker/pkg/types/attributes"
	"github.com/diwise/template-broker/pkg/types/schemas"
	"github.com/matryer/is"
)

func TestInstanceObjectCreation(t *testing.T) {
	is, schema := testSchema(t)

	b := NewBuilder(schema, "TestInstance")
	is.NoErr(b.UpdateEntity("attribute1", attributes.Raw("value1")))
	is.NoErr(b.UpdateEntity("attribute2", attributes.Raw("123")))
	b.PopulateMissingEntities()

	instance, err := b.Build()
	is.NoErr(err)

	is.Equal(instance.Name(), "TestInstance")
	is.True(strings.HasPrefix(instance.ID().String(), "instance:"))

	schemaID, ok := instance.SchemaID()
	is.True(ok)
	is.Equal(schemaID, schema.ID())

	a2, _ := instance.Entity("attribute2")
	is.Equal(a2.Value(), attributes.NewInteger16(123))
}

func TestUpdateEntityWithUndeclaredNameFails(t *testing.T) {
	is, schema := testSchema(t)

	b := NewBuilder(schema, "TestInstance")
	err := b.UpdateEntity("attribute3", attributes.Raw("test_value"))
	is.True(goerrors.Is(err, errors.ErrNonMatchingType))

	instance, err := b.Build()
	is.NoErr(err)

	_, found := instance.Entity("attribute3")
	is.True(!found) // no entity should be added for an undeclared name
	is.Equal(instance.Len(), 0)
}

func TestUpdateEntityWithInvalidInputStoresNothing(t *testing.T) {
	is, schema := testSchema(t)

	b := NewBuilder(schema, "TestInstance")
	err := b.UpdateEntity("attribute2", attributes.Raw("wrong_type"))
	is.True(goerrors.Is(err, errors.ErrInvalidType))

	is.NoErr(b.UpdateEntity("attribute1", attributes.Raw("still fine")))

	instance, _ := b.Build()
	is.Equal(instance.Len(), 1) // the failed attribute should not be stored
}

func TestUpdateEntityOverwritesEarlierValue(t *testing.T) {
	is, schema := testSchema(t)

	b := NewBuilder(schema, "TestInstance")
	is.NoErr(b.UpdateEntity("attribute2", attributes.Raw("1")))
	is.NoErr(b.UpdateEntity("attribute2", attributes.Raw("2")))

	instance, _ := b.Build()
	a2, _ := instance.Entity("attribute2")
	is.Equal(a2.Value(), attributes.NewInteger16(2))
}

func TestMissingEntitiesArePopulatedWithNulls(t *testing.T) {
	is, schema := testSchema(t)

	b := NewBuilder(schema, "TestInstance")
	is.NoErr(b.UpdateEntity("attribute1", attributes.Raw("set")))
	b.PopulateMissingEntities()

	instance, err := b.Build()
	is.NoErr(err)

	a1, _ := instance.Entity("attribute1")
	is.Equal(a1.Value(), attributes.NewText("set")) // already set values should be kept

	a2, ok := instance.Entity("attribute2")
	is.True(ok)
	is.Equal(a2.Value(), attributes.NewNullInteger16())
}

func TestPopulateMissingEntitiesIsIdempotent(t *testing.T) {
	is, schema := testSchema(t)

	once := NewBuilder(schema, "Once")
	once.PopulateMissingEntities()

	twice := NewBuilder(schema, "Twice")
	twice.PopulateMissingEntities()
	twice.PopulateMissingEntities()

	is.Equal(once.entities, twice.entities)
}

func TestBuildDoesNotDefaultMissingEntities(t *testing.T) {
	is, schema := testSchema(t)

	b := NewBuilder(schema, "TestInstance")
	is.NoErr(b.UpdateEntity("attribute1", nil))

	instance, _ := b.Build()
	is.Equal(instance.EntityNames(), []string{"attribute1"})
}

func TestBuilderIsDecoupledFromLaterSchemaChanges(t *testing.T) {
	is, schema := testSchema(t)

	b := NewBuilder(schema, "TestInstance")
	schema.UpdateEntity("attribute3", attributes.Text)

	err := b.UpdateEntity("attribute3", attributes.Raw("x"))
	is.True(goerrors.Is(err, errors.ErrNonMatchingType)) // the builder should keep its schema snapshot
}

func TestUpdateInstanceIsCopyOnWrite(t *testing.T) {
	is, schema := testSchema(t)

	b := NewBuilder(schema, "TestInstance")
	is.NoErr(b.UpdateEntity("attribute2", attributes.Raw("5")))
	b.PopulateMissingEntities()
	instance, _ := b.Build()

	updated, err := Update(schema, instance, map[string]*string{"attribute2": attributes.Raw("6")})
	is.NoErr(err)

	v, _ := updated.Entity("attribute2")
	is.Equal(v.Value(), attributes.NewInteger16(6))
	is.Equal(updated.ID(), instance.ID())

	v, _ = instance.Entity("attribute2")
	is.Equal(v.Value(), attributes.NewInteger16(5)) // original should be unchanged
}

func TestUpdateInstanceAgainstOtherSchemaFails(t *testing.T) {
	is, schema := testSchema(t)
	other, _ := schemas.New("Other", schemas.Text("attribute1"))

	instance, _ := NewBuilder(schema, "TestInstance").Build()

	_, err := Update(other, instance, map[string]*string{"attribute1": attributes.Raw("x")})
	is.True(goerrors.Is(err, errors.ErrUnauthorizedInstance))

	_, err = Update(schema, instance, map[string]*string{"nope": attributes.Raw("x")})
	is.True(goerrors.Is(err, errors.ErrNonMatchingType))

	_, err = Update(schema, instance, map[string]*string{"attribute2": attributes.Raw("x")})
	is.True(goerrors.Is(err, errors.ErrInvalidType))
}

func TestInstanceJSONRoundTrip(t *testing.T) {
	is, schema := testSchema(t)

	b := NewBuilder(schema, "TestInstance")
	is.NoErr(b.UpdateEntity("attribute1", attributes.Raw("value1")))
	b.PopulateMissingEntities()
	instance, _ := b.Build()

	body, err := instance.MarshalJSON()
	is.NoErr(err)

	decoded, err := NewFromJSON(body)
	is.NoErr(err)

	schemaID, _ := decoded.SchemaID()
	is.Equal(schemaID, schema.ID())

	a2, _ := decoded.Entity("attribute2")
	is.Equal(a2.Value(), attributes.NewNullInteger16())
}

func testSchema(t *testing.T) (*is.I, *schemas.Schema) {
	is := is.New(t)

	schema, err := schemas.New("TestSchema",
		schemas.Text("attribute1"),
		schemas.Integer16("attribute2"),
	)
	is.NoErr(err)

	return is, schema
}
