package catalog

import (
	"context"
	goerrors "errors"
	"fmt"
	"sync"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/diwise/template-broker/internal/pkg/application/notifications"
	"github.com/diwise/template-broker/pkg/errors"
	"github.com/diwise/template-broker/pkg/identifier"
	"github.com/diwise/template-broker/pkg/storage/memory"
	"github.com/diwise/template-broker/pkg/templates"
	"github.com/diwise/template-broker/pkg/types/attributes"
	"github.com/diwise/template-broker/pkg/types/instances"
	"github.com/diwise/template-broker/pkg/types/schemas"
)

//go:generate moq -rm -out catalog_mock.go . Catalog

type SchemaManager interface {
	CreateSchema(ctx context.Context, name string, attributeTypes map[string]string) (*schemas.Schema, error)
	RetrieveSchema(ctx context.Context, schemaID identifier.Identifier) (*schemas.Schema, error)
	QuerySchemas(ctx context.Context, name string) ([]*schemas.Schema, error)
	DeleteSchema(ctx context.Context, schemaID identifier.Identifier) error
}

type InstanceManager interface {
	CreateInstance(ctx context.Context, schemaID identifier.Identifier, name string, values map[string]*string) (*instances.Instance, error)
	RetrieveInstance(ctx context.Context, instanceID identifier.Identifier) (*instances.Instance, error)
	QueryInstances(ctx context.Context, name string) ([]*instances.Instance, error)
	InstancesForSchema(ctx context.Context, schemaID identifier.Identifier) ([]*instances.Instance, error)
	UpdateInstance(ctx context.Context, instanceID identifier.Identifier, values map[string]*string) (*instances.Instance, error)
	DeleteInstance(ctx context.Context, instanceID identifier.Identifier) error
}

type TemplateManager interface {
	CreateTemplate(ctx context.Context, schemaID identifier.Identifier, content string) (*templates.Template, error)
	RetrieveTemplate(ctx context.Context, templateID identifier.Identifier) (*templates.Template, error)
	TemplatesForSchema(ctx context.Context, schemaID identifier.Identifier) ([]*templates.Template, error)
	DeleteTemplate(ctx context.Context, templateID identifier.Identifier) error
	Render(ctx context.Context, templateID, instanceID identifier.Identifier) (string, error)
}

// Catalog owns every schema, instance and template known to the service.
type Catalog interface {
	SchemaManager
	InstanceManager
	TemplateManager
}

var tracer = otel.Tracer("template-broker/catalog")

type catalogApp struct {
	mu sync.RWMutex

	schemas   *memory.ObjectCollection[attributes.SchemaType]
	instances *memory.ObjectCollection[attributes.Value]
	templates *memory.TemplateCollection

	notifier notifications.Notifier
}

// New creates a catalog seeded with the contents of cfg. The notifier may be
// nil, in which case no notifications are sent.
func New(ctx context.Context, cfg *Config, notifier notifications.Notifier) (Catalog, error) {
	schemaCollection, err := memory.NewObjectCollection[attributes.SchemaType]()
	if err != nil {
		return nil, err
	}

	instanceCollection, err := memory.NewObjectCollection[attributes.Value]()
	if err != nil {
		return nil, err
	}

	templateCollection, err := memory.NewTemplateCollection()
	if err != nil {
		return nil, err
	}

	app := &catalogApp{
		schemas:   schemaCollection,
		instances: instanceCollection,
		templates: templateCollection,
		notifier:  notifier,
	}

	if cfg != nil {
		err = app.seed(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	return app, nil
}

func (app *catalogApp) seed(ctx context.Context, cfg *Config) error {
	logger := logging.GetFromContext(ctx)

	for _, sc := range cfg.Schemas {
		schema, err := app.CreateSchema(ctx, sc.Name, sc.Attributes)
		if err != nil {
			return fmt.Errorf("schema %s: %w", sc.Name, err)
		}

		for _, ic := range sc.Instances {
			_, err = app.CreateInstance(ctx, schema.ID(), ic.Name, ic.Attributes)
			if err != nil {
				return fmt.Errorf("instance %s: %w", ic.Name, err)
			}
		}

		for _, tc := range sc.Templates {
			_, err = app.CreateTemplate(ctx, schema.ID(), tc.Content)
			if err != nil {
				return fmt.Errorf("template for schema %s: %w", sc.Name, err)
			}
		}

		logger.Info("seeded schema", "name", sc.Name, "id", schema.ID().String(),
			"instances", len(sc.Instances), "templates", len(sc.Templates))
	}

	return nil
}

func (app *catalogApp) CreateSchema(ctx context.Context, name string, attributeTypes map[string]string) (schema *schemas.Schema, err error) {
	ctx, span := tracer.Start(ctx, "create-schema", trace.WithAttributes(attribute.String("schema.name", name)))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	decorators := make([]schemas.SchemaDecoratorFunc, 0, len(attributeTypes))

	for attributeName, typeName := range attributeTypes {
		st, err := attributes.ParseSchemaType(typeName)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", attributeName, err)
		}
		decorators = append(decorators, schemas.Attribute(attributeName, st))
	}

	schema, err = schemas.New(name, decorators...)
	if err != nil {
		return nil, errors.NewPropagatedError(err)
	}

	app.mu.Lock()
	defer app.mu.Unlock()

	err = app.schemas.Insert(schema)
	if err != nil {
		return nil, err
	}

	logging.GetFromContext(ctx).Debug("schema created", "id", schema.ID().String())

	return schema, nil
}

func (app *catalogApp) RetrieveSchema(ctx context.Context, schemaID identifier.Identifier) (*schemas.Schema, error) {
	app.mu.RLock()
	defer app.mu.RUnlock()

	return app.schemas.Get(schemaID)
}

// QuerySchemas returns the schemas with the given name, or every schema when
// name is empty.
func (app *catalogApp) QuerySchemas(ctx context.Context, name string) ([]*schemas.Schema, error) {
	app.mu.RLock()
	defer app.mu.RUnlock()

	if name == "" {
		return app.schemas.List()
	}

	return app.schemas.GetObjectsByName(name)
}

// DeleteSchema removes the schema together with every instance and template
// bound to it.
func (app *catalogApp) DeleteSchema(ctx context.Context, schemaID identifier.Identifier) (err error) {
	ctx, span := tracer.Start(ctx, "delete-schema", trace.WithAttributes(attribute.String("schema.id", schemaID.String())))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	app.mu.Lock()
	defer app.mu.Unlock()

	if _, err = app.schemas.Get(schemaID); err != nil {
		return err
	}

	bound, err := app.instances.GetObjectsBySchemaID(schemaID)
	if err != nil && !goerrors.Is(err, errors.ErrNoMatchingObject) {
		return err
	}

	children, err := app.templates.GetByParentSchema(schemaID)
	if err != nil && !goerrors.Is(err, errors.ErrNoParentObject) {
		return err
	}

	// children first, the schema last
	for _, instance := range bound {
		if _, err = app.instances.Remove(instance.ID()); err != nil {
			return err
		}
	}

	for _, template := range children {
		if _, err = app.templates.Remove(template.ID()); err != nil {
			return err
		}
	}

	if _, err = app.schemas.Remove(schemaID); err != nil {
		return err
	}

	logging.GetFromContext(ctx).Debug("schema deleted", "id", schemaID.String(),
		"instances", len(bound), "templates", len(children))

	return nil
}

func (app *catalogApp) CreateInstance(ctx context.Context, schemaID identifier.Identifier, name string, values map[string]*string) (instance *instances.Instance, err error) {
	ctx, span := tracer.Start(ctx, "create-instance", trace.WithAttributes(attribute.String("schema.id", schemaID.String())))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	instance, err = app.storeNewInstance(schemaID, name, values)
	if err != nil {
		return nil, err
	}

	if app.notifier != nil {
		app.notifier.InstanceCreated(ctx, instance)
	}

	return instance, nil
}

func (app *catalogApp) storeNewInstance(schemaID identifier.Identifier, name string, values map[string]*string) (*instances.Instance, error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	schema, err := app.schemas.Get(schemaID)
	if err != nil {
		return nil, err
	}

	b := instances.NewBuilder(schema, name)

	for attributeName, raw := range values {
		err = b.UpdateEntity(attributeName, raw)
		if err != nil {
			return nil, err
		}
	}

	b.PopulateMissingEntities()

	instance, err := b.Build()
	if err != nil {
		return nil, err
	}

	err = app.instances.Insert(instance)
	if err != nil {
		return nil, err
	}

	return instance, nil
}

func (app *catalogApp) RetrieveInstance(ctx context.Context, instanceID identifier.Identifier) (*instances.Instance, error) {
	app.mu.RLock()
	defer app.mu.RUnlock()

	return app.instances.Get(instanceID)
}

// QueryInstances returns the instances with the given name, or every instance
// when name is empty.
func (app *catalogApp) QueryInstances(ctx context.Context, name string) ([]*instances.Instance, error) {
	app.mu.RLock()
	defer app.mu.RUnlock()

	if name == "" {
		return app.instances.List()
	}

	return app.instances.GetObjectsByName(name)
}

func (app *catalogApp) InstancesForSchema(ctx context.Context, schemaID identifier.Identifier) ([]*instances.Instance, error) {
	app.mu.RLock()
	defer app.mu.RUnlock()

	if _, err := app.schemas.Get(schemaID); err != nil {
		return nil, err
	}

	return app.instances.GetObjectsBySchemaID(schemaID)
}

func (app *catalogApp) UpdateInstance(ctx context.Context, instanceID identifier.Identifier, values map[string]*string) (updated *instances.Instance, err error) {
	ctx, span := tracer.Start(ctx, "update-instance", trace.WithAttributes(attribute.String("instance.id", instanceID.String())))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	updated, err = app.storeUpdatedInstance(instanceID, values)
	if err != nil {
		return nil, err
	}

	if app.notifier != nil {
		app.notifier.InstanceUpdated(ctx, updated)
	}

	return updated, nil
}

func (app *catalogApp) storeUpdatedInstance(instanceID identifier.Identifier, values map[string]*string) (*instances.Instance, error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	instance, err := app.instances.Get(instanceID)
	if err != nil {
		return nil, err
	}

	schemaID, ok := instance.SchemaID()
	if !ok {
		return nil, errors.NewMissingSchemaIDError(instance.Name())
	}

	schema, err := app.schemas.Get(schemaID)
	if err != nil {
		return nil, err
	}

	updated, err := instances.Update(schema, instance, values)
	if err != nil {
		return nil, err
	}

	err = app.instances.Insert(updated)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (app *catalogApp) DeleteInstance(ctx context.Context, instanceID identifier.Identifier) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	_, err := app.instances.Remove(instanceID)
	return err
}

func (app *catalogApp) CreateTemplate(ctx context.Context, schemaID identifier.Identifier, content string) (template *templates.Template, err error) {
	ctx, span := tracer.Start(ctx, "create-template", trace.WithAttributes(attribute.String("schema.id", schemaID.String())))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	template, err = app.storeNewTemplate(schemaID, content)
	if err != nil {
		return nil, err
	}

	if app.notifier != nil {
		app.notifier.TemplateCreated(ctx, template)
	}

	return template, nil
}

func (app *catalogApp) storeNewTemplate(schemaID identifier.Identifier, content string) (*templates.Template, error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	schema, err := app.schemas.Get(schemaID)
	if err != nil {
		return nil, err
	}

	template, err := templates.NewBuilder(content, schema).Build()
	if err != nil {
		return nil, err
	}

	err = app.templates.Insert(template)
	if err != nil {
		return nil, err
	}

	return template, nil
}

func (app *catalogApp) RetrieveTemplate(ctx context.Context, templateID identifier.Identifier) (*templates.Template, error) {
	app.mu.RLock()
	defer app.mu.RUnlock()

	return app.templates.Get(templateID)
}

func (app *catalogApp) TemplatesForSchema(ctx context.Context, schemaID identifier.Identifier) ([]*templates.Template, error) {
	app.mu.RLock()
	defer app.mu.RUnlock()

	if _, err := app.schemas.Get(schemaID); err != nil {
		return nil, err
	}

	return app.templates.GetByParentSchema(schemaID)
}

func (app *catalogApp) DeleteTemplate(ctx context.Context, templateID identifier.Identifier) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	_, err := app.templates.Remove(templateID)
	return err
}

func (app *catalogApp) Render(ctx context.Context, templateID, instanceID identifier.Identifier) (text string, err error) {
	_, span := tracer.Start(ctx, "render", trace.WithAttributes(
		attribute.String("template.id", templateID.String()),
		attribute.String("instance.id", instanceID.String()),
	))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	app.mu.RLock()
	defer app.mu.RUnlock()

	template, err := app.templates.Get(templateID)
	if err != nil {
		return "", err
	}

	instance, err := app.instances.Get(instanceID)
	if err != nil {
		return "", err
	}

	return template.BuildFromInstance(instance)
}
