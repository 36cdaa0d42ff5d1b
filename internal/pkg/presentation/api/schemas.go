package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/diwise/template-broker/internal/pkg/application/catalog"
	problems "github.com/diwise/template-broker/internal/pkg/presentation/api/errors"
)

type createSchemaRequest struct {
	Name       string            `json:"name"`
	Attributes map[string]string `json:"attributes"`
}

// NewCreateSchemaHandler handles POST requests that declare a new schema
func NewCreateSchemaHandler(app catalog.SchemaManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "create-schema")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		request := createSchemaRequest{}
		err = json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			problems.NewInvalidRequest(fmt.Sprintf("unable to decode request payload: %s", err.Error())).WriteResponse(w)
			return
		}

		if request.Name == "" {
			err = errEmptyName
			problems.NewBadRequestData(err.Error()).WriteResponse(w)
			return
		}

		schema, err := app.CreateSchema(ctx, request.Name, request.Attributes)
		if err != nil {
			log.Error("failed to create schema", "err", err.Error())
			problems.ReportError(w, err, traceID)
			return
		}

		w.Header().Add("Location", BasePath+"/schemas/"+schema.ID().String())
		err = writeJSON(w, http.StatusCreated, schema)
	}
}

// NewQuerySchemasHandler lists every schema, or those matching the name query parameter
func NewQuerySchemasHandler(app catalog.SchemaManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		name := r.URL.Query().Get("name")

		ctx, span := tracer.Start(r.Context(), "query-schemas", trace.WithAttributes(attribute.String("schema.name", name)))
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, _ := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		found, err := app.QuerySchemas(ctx, name)
		if err != nil {
			problems.ReportError(w, err, traceID)
			return
		}

		err = writeJSON(w, http.StatusOK, found)
	}
}

func NewRetrieveSchemaHandler(app catalog.SchemaManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "retrieve-schema")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, _ := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		schemaID, err := pathIdentifier(r, "schemaId")
		if err != nil {
			problems.ReportError(w, err, traceID)
			return
		}

		schema, err := app.RetrieveSchema(ctx, schemaID)
		if err != nil {
			problems.ReportError(w, err, traceID)
			return
		}

		err = writeJSON(w, http.StatusOK, schema)
	}
}

// NewDeleteSchemaHandler removes a schema along with its instances and templates
func NewDeleteSchemaHandler(app catalog.SchemaManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "delete-schema")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		schemaID, err := pathIdentifier(r, "schemaId")
		if err != nil {
			problems.ReportError(w, err, traceID)
			return
		}

		err = app.DeleteSchema(ctx, schemaID)
		if err != nil {
			log.Error("failed to delete schema", "id", schemaID.String(), "err", err.Error())
			problems.ReportError(w, err, traceID)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
