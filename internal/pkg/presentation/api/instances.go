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

type instanceRequest struct {
	Name       string                     `json:"name"`
	Attributes map[string]json.RawMessage `json:"attributes"`
}

func decodeInstanceRequest(r *http.Request) (*instanceRequest, map[string]*string, error) {
	request := &instanceRequest{}

	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to decode request payload: %w", err)
	}

	values, err := rawValues(request.Attributes)
	if err != nil {
		return nil, nil, err
	}

	return request, values, nil
}

// NewCreateInstanceHandler handles POST requests that create an instance of a schema
func NewCreateInstanceHandler(app catalog.InstanceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "create-instance")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		schemaID, err := pathIdentifier(r, "schemaId")
		if err != nil {
			problems.ReportError(w, err, traceID)
			return
		}

		request, values, err := decodeInstanceRequest(r)
		if err != nil {
			problems.NewInvalidRequest(err.Error()).WriteResponse(w)
			return
		}

		if request.Name == "" {
			err = errEmptyName
			problems.NewBadRequestData(err.Error()).WriteResponse(w)
			return
		}

		instance, err := app.CreateInstance(ctx, schemaID, request.Name, values)
		if err != nil {
			log.Error("failed to create instance", "schema", schemaID.String(), "err", err.Error())
			problems.ReportError(w, err, traceID)
			return
		}

		w.Header().Add("Location", BasePath+"/instances/"+instance.ID().String())
		err = writeJSON(w, http.StatusCreated, instance)
	}
}

func NewQuerySchemaInstancesHandler(app catalog.InstanceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-schema-instances")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, _ := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		schemaID, err := pathIdentifier(r, "schemaId")
		if err != nil {
			problems.ReportError(w, err, traceID)
			return
		}

		found, err := app.InstancesForSchema(ctx, schemaID)
		if err != nil {
			problems.ReportError(w, err, traceID)
			return
		}

		err = writeJSON(w, http.StatusOK, found)
	}
}

// NewQueryInstancesHandler lists every instance, or those matching the name query parameter
func NewQueryInstancesHandler(app catalog.InstanceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		name := r.URL.Query().Get("name")

		ctx, span := tracer.Start(r.Context(), "query-instances", trace.WithAttributes(attribute.String("instance.name", name)))
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, _ := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		found, err := app.QueryInstances(ctx, name)
		if err != nil {
			problems.ReportError(w, err, traceID)
			return
		}

		err = writeJSON(w, http.StatusOK, found)
	}
}

func NewRetrieveInstanceHandler(app catalog.InstanceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "retrieve-instance")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, _ := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		instanceID, err := pathIdentifier(r, "instanceId")
		if err != nil {
			problems.ReportError(w, err, traceID)
			return
		}

		instance, err := app.RetrieveInstance(ctx, instanceID)
		if err != nil {
			problems.ReportError(w, err, traceID)
			return
		}

		err = writeJSON(w, http.StatusOK, instance)
	}
}

// NewUpdateInstanceHandler handles PATCH requests that replace some of an instance's values
func NewUpdateInstanceHandler(app catalog.InstanceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "update-instance")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		instanceID, err := pathIdentifier(r, "instanceId")
		if err != nil {
			problems.ReportError(w, err, traceID)
			return
		}

		_, values, err := decodeInstanceRequest(r)
		if err != nil {
			problems.NewInvalidRequest(err.Error()).WriteResponse(w)
			return
		}

		instance, err := app.UpdateInstance(ctx, instanceID, values)
		if err != nil {
			log.Error("failed to update instance", "id", instanceID.String(), "err", err.Error())
			problems.ReportError(w, err, traceID)
			return
		}

		err = writeJSON(w, http.StatusOK, instance)
	}
}

func NewDeleteInstanceHandler(app catalog.InstanceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "delete-instance")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, _ := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		instanceID, err := pathIdentifier(r, "instanceId")
		if err != nil {
			problems.ReportError(w, err, traceID)
			return
		}

		err = app.DeleteInstance(ctx, instanceID)
		if err != nil {
			problems.ReportError(w, err, traceID)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
