package catalog

import (
	"bytes"
	"context"
	goerrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/diwise/template-broker/internal/pkg/application/notifications"
	"github.com/diwise/template-broker/pkg/errors"
	"github.com/diwise/template-broker/pkg/identifier"
	"github.com/diwise/template-broker/pkg/templates"
	"github.com/diwise/template-broker/pkg/types/attributes"
	"github.com/diwise/template-broker/pkg/types/instances"
	"github.com/diwise/template-broker/pkg/types/schemas"
)

func TestNewWithEmptyConfig(t *testing.T) {
	is := is.New(t)

	app, err := New(context.Background(), &Config{}, nil)
	is.NoErr(err)

	all, err := app.QuerySchemas(context.Background(), "")
	is.NoErr(err)
	is.Equal(len(all), 0)
}

func TestNewSeedsFromConfig(t *testing.T) {
	is, ctx, app, _ := testSetup(t)

	found, err := app.QuerySchemas(ctx, "Marathon")
	is.NoErr(err)
	is.Equal(len(found), 1) // should find the seeded schema

	schemaID := found[0].ID()

	bound, err := app.InstancesForSchema(ctx, schemaID)
	is.NoErr(err)
	is.Equal(len(bound), 2) // should find both seeded instances

	children, err := app.TemplatesForSchema(ctx, schemaID)
	is.NoErr(err)
	is.Equal(len(children), 1)
}

func TestNewWithInvalidSeedFails(t *testing.T) {
	is := is.New(t)

	cfg := &Config{Schemas: []SchemaConfig{{
		Name:       "Marathon",
		Attributes: map[string]string{"prize": "Integer16"},
		Templates:  []TemplateConfig{{Content: "no placeholders"}},
	}}}

	_, err := New(context.Background(), cfg, nil)
	is.True(goerrors.Is(err, errors.ErrMissingEntitiesFromSchema))
}

func TestCreateSchemaWithUnknownTypeFails(t *testing.T) {
	is, ctx, app, _ := testSetup(t)

	_, err := app.CreateSchema(ctx, "Broken", map[string]string{"x": "Float"})
	is.True(goerrors.Is(err, errors.ErrInvalidType))
}

func TestRenderSeededTemplate(t *testing.T) {
	is, ctx, app, _ := testSetup(t)

	instance := queryOne(is, ctx, app, "Stockholm Marathon")
	template := templatesFor(is, ctx, app, instance)[0]

	text, err := app.Render(ctx, template.ID(), instance.ID())
	is.NoErr(err)
	is.Equal(text, "Win 1000 SEK, read more at https://www.stockholmmarathon.se")

	nulls := queryOne(is, ctx, app, "Unknown Marathon")
	text, err = app.Render(ctx, template.ID(), nulls.ID())
	is.NoErr(err)
	is.Equal(text, "Win 0 SEK, read more at Null")
}

func TestRenderWithInstanceOfOtherSchemaFails(t *testing.T) {
	is, ctx, app, _ := testSetup(t)

	other, err := app.CreateSchema(ctx, "Other", map[string]string{"prize": "Integer16"})
	is.NoErr(err)

	foreign, err := app.CreateInstance(ctx, other.ID(), "Foreign", map[string]*string{"prize": attributes.Raw("1")})
	is.NoErr(err)

	instance := queryOne(is, ctx, app, "Stockholm Marathon")
	template := templatesFor(is, ctx, app, instance)[0]

	_, err = app.Render(ctx, template.ID(), foreign.ID())
	is.True(goerrors.Is(err, errors.ErrUnauthorizedInstance))
}

func TestCreateInstanceNotifies(t *testing.T) {
	is, ctx, app, notifier := testSetup(t)

	schema := querySchema(is, ctx, app)

	created, err := app.CreateInstance(ctx, schema.ID(), "Gothenburg", map[string]*string{
		"prize": attributes.Raw("500"),
	})
	is.NoErr(err)

	link, ok := created.Entity("ref_link")
	is.True(ok) // missing attributes should be populated
	is.True(link.Value().IsNull())

	calls := notifier.InstanceCreatedCalls()
	is.Equal(calls[len(calls)-1].Instance.ID(), created.ID())
}

func TestSlowNotifierDoesNotBlockCatalog(t *testing.T) {
	is, ctx, app, notifier := testSetup(t)

	schema := querySchema(is, ctx, app)

	notifying := make(chan struct{})
	release := make(chan struct{})
	defer close(release)

	notifier.InstanceCreatedFunc = func(context.Context, *instances.Instance) {
		close(notifying)
		<-release
	}

	go app.CreateInstance(ctx, schema.ID(), "Gothenburg", map[string]*string{"prize": attributes.Raw("500")})

	<-notifying

	done := make(chan error)
	go func() {
		_, err := app.RetrieveSchema(ctx, schema.ID())
		done <- err
	}()

	select {
	case err := <-done:
		is.NoErr(err)
	case <-time.After(2 * time.Second):
		is.Fail() // the catalog should stay available while a notification is pending
	}
}

func TestCreateInstanceWithBadValueFails(t *testing.T) {
	is, ctx, app, _ := testSetup(t)

	schema := querySchema(is, ctx, app)

	_, err := app.CreateInstance(ctx, schema.ID(), "Bad", map[string]*string{"prize": attributes.Raw("lots")})
	is.True(goerrors.Is(err, errors.ErrInvalidType))

	_, err = app.CreateInstance(ctx, schema.ID(), "Bad", map[string]*string{"unknown": attributes.Raw("1")})
	is.True(goerrors.Is(err, errors.ErrNonMatchingType))

	_, err = app.QueryInstances(ctx, "Bad")
	is.True(goerrors.Is(err, errors.ErrNoMatchingObject)) // nothing should have been stored
}

func TestCreateInstanceForUnknownSchemaFails(t *testing.T) {
	is, ctx, app, _ := testSetup(t)

	_, err := app.CreateInstance(ctx, identifier.Identifier("schema:1:nothere"), "x", nil)
	is.True(goerrors.Is(err, errors.ErrMissingObject))
}

func TestUpdateInstance(t *testing.T) {
	is, ctx, app, notifier := testSetup(t)

	instance := queryOne(is, ctx, app, "Stockholm Marathon")

	updated, err := app.UpdateInstance(ctx, instance.ID(), map[string]*string{"prize": attributes.Raw("2000")})
	is.NoErr(err)

	prize, _ := updated.Entity("prize")
	is.Equal(prize.Value(), attributes.NewInteger16(2000))

	stored, _ := app.RetrieveInstance(ctx, instance.ID())
	prize, _ = stored.Entity("prize")
	is.Equal(prize.Value(), attributes.NewInteger16(2000)) // the update should be stored

	is.Equal(len(notifier.InstanceUpdatedCalls()), 1)
}

func TestDeleteSchemaCascades(t *testing.T) {
	is, ctx, app, _ := testSetup(t)

	schema := querySchema(is, ctx, app)
	instance := queryOne(is, ctx, app, "Stockholm Marathon")

	is.NoErr(app.DeleteSchema(ctx, schema.ID()))

	_, err := app.RetrieveSchema(ctx, schema.ID())
	is.True(goerrors.Is(err, errors.ErrMissingObject))

	_, err = app.RetrieveInstance(ctx, instance.ID())
	is.True(goerrors.Is(err, errors.ErrMissingObject)) // bound instances should be removed

	all, _ := app.QueryInstances(ctx, "")
	is.Equal(len(all), 0)

	err = app.DeleteSchema(ctx, schema.ID())
	is.True(goerrors.Is(err, errors.ErrMissingObject))
}

func TestDeleteUnknownSchemaKeepsEverything(t *testing.T) {
	is, ctx, app, _ := testSetup(t)

	err := app.DeleteSchema(ctx, identifier.Identifier("schema:1:nothere"))
	is.True(goerrors.Is(err, errors.ErrMissingObject))

	all, err := app.QueryInstances(ctx, "")
	is.NoErr(err)
	is.Equal(len(all), 2) // seeded instances should be left alone

	schema := querySchema(is, ctx, app)
	found, err := app.TemplatesForSchema(ctx, schema.ID())
	is.NoErr(err)
	is.Equal(len(found), 1)
}

func TestDeleteInstanceAndTemplate(t *testing.T) {
	is, ctx, app, _ := testSetup(t)

	instance := queryOne(is, ctx, app, "Stockholm Marathon")
	template := templatesFor(is, ctx, app, instance)[0]

	is.NoErr(app.DeleteInstance(ctx, instance.ID()))
	is.NoErr(app.DeleteTemplate(ctx, template.ID()))

	_, err := app.RetrieveTemplate(ctx, template.ID())
	is.True(goerrors.Is(err, errors.ErrMissingObject))

	schemaID, _ := instance.SchemaID()
	_, err = app.TemplatesForSchema(ctx, schemaID)
	is.True(goerrors.Is(err, errors.ErrNoParentObject))
}

func TestConcurrentRendering(t *testing.T) {
	is, ctx, app, _ := testSetup(t)

	instance := queryOne(is, ctx, app, "Stockholm Marathon")
	template := templatesFor(is, ctx, app, instance)[0]

	var wg sync.WaitGroup
	results := make(chan error, 20)

	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := app.Render(ctx, template.ID(), instance.ID())
			results <- err
		}()
		go func() {
			defer wg.Done()
			_, err := app.UpdateInstance(ctx, instance.ID(), map[string]*string{"prize": attributes.Raw("7")})
			results <- err
		}()
	}

	wg.Wait()
	close(results)

	for err := range results {
		is.NoErr(err)
	}
}

func testSetup(t *testing.T) (*is.I, context.Context, Catalog, *notifications.NotifierMock) {
	is := is.New(t)
	ctx := context.Background()

	cfg, err := LoadConfiguration(bytes.NewBufferString(configFile))
	is.NoErr(err)

	notifier := &notifications.NotifierMock{
		InstanceCreatedFunc: func(context.Context, *instances.Instance) {},
		InstanceUpdatedFunc: func(context.Context, *instances.Instance) {},
		TemplateCreatedFunc: func(context.Context, *templates.Template) {},
	}

	app, err := New(ctx, cfg, notifier)
	is.NoErr(err)

	return is, ctx, app, notifier
}

func querySchema(is *is.I, ctx context.Context, app Catalog) *schemas.Schema {
	found, err := app.QuerySchemas(ctx, "Marathon")
	is.NoErr(err)
	return found[0]
}

func queryOne(is *is.I, ctx context.Context, app Catalog, name string) *instances.Instance {
	found, err := app.QueryInstances(ctx, name)
	is.NoErr(err)
	is.Equal(len(found), 1)
	return found[0]
}

func templatesFor(is *is.I, ctx context.Context, app Catalog, instance *instances.Instance) []*templates.Template {
	schemaID, _ := instance.SchemaID()
	found, err := app.TemplatesForSchema(ctx, schemaID)
	is.NoErr(err)
	return found
}
