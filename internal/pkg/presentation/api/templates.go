package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel/attribute"

	"github.com/diwise/template-broker/internal/pkg/application/catalog"
	problems "github.com/diwise/template-broker/internal/pkg/presentation/api/errors"
	"github.com/diwise/template-broker/pkg/identifier"
)

type createTemplateRequest struct {
	Content string `json:"content"`
}

type renderRequest struct {
	InstanceID string `json:"instanceId"`
}

// NewCreateTemplateHandler handles POST requests that bind new content to a schema
func NewCreateTemplateHandler(app catalog.TemplateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "create-template")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		schemaID, err := pathIdentifier(r, "schemaId")
		if err != nil {
			problems.ReportError(w, err, traceID)
			return
		}

		request := createTemplateRequest{}
		err = json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			problems.NewInvalidRequest(fmt.Sprintf("unable to decode request payload: %s", err.Error())).WriteResponse(w)
			return
		}

		template, err := app.CreateTemplate(ctx, schemaID, request.Content)
		if err != nil {
			log.Error("failed to create template", "schema", schemaID.String(), "err", err.Error())
			problems.ReportError(w, err, traceID)
			return
		}

		w.Header().Add("Location", BasePath+"/templates/"+template.ID().String())
		err = writeJSON(w, http.StatusCreated, template)
	}
}

func NewQuerySchemaTemplatesHandler(app catalog.TemplateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-schema-templates")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, _ := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		schemaID, err := pathIdentifier(r, "schemaId")
		if err != nil {
			problems.ReportError(w, err, traceID)
			return
		}

		found, err := app.TemplatesForSchema(ctx, schemaID)
		if err != nil {
			problems.ReportError(w, err, traceID)
			return
		}

		err = writeJSON(w, http.StatusOK, found)
	}
}

func NewRetrieveTemplateHandler(app catalog.TemplateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "retrieve-template")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, _ := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		templateID, err := pathIdentifier(r, "templateId")
		if err != nil {
			problems.ReportError(w, err, traceID)
			return
		}

		template, err := app.RetrieveTemplate(ctx, templateID)
		if err != nil {
			problems.ReportError(w, err, traceID)
			return
		}

		err = writeJSON(w, http.StatusOK, template)
	}
}

func NewDeleteTemplateHandler(app catalog.TemplateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "delete-template")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, _ := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		templateID, err := pathIdentifier(r, "templateId")
		if err != nil {
			problems.ReportError(w, err, traceID)
			return
		}

		err = app.DeleteTemplate(ctx, templateID)
		if err != nil {
			problems.ReportError(w, err, traceID)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewRenderHandler renders a template with the values of the instance named
// in the request body and returns the text as text/plain.
func NewRenderHandler(app catalog.TemplateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "render-template")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		templateID, err := pathIdentifier(r, "templateId")
		if err != nil {
			problems.ReportError(w, err, traceID)
			return
		}

		request := renderRequest{}
		err = json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			problems.NewInvalidRequest(fmt.Sprintf("unable to decode request payload: %s", err.Error())).WriteResponse(w)
			return
		}

		instanceID, err := identifier.FromString(request.InstanceID)
		if err != nil {
			problems.ReportError(w, err, traceID)
			return
		}

		span.SetAttributes(
			attribute.String("template.id", templateID.String()),
			attribute.String("instance.id", instanceID.String()),
		)

		text, err := app.Render(ctx, templateID, instanceID)
		if err != nil {
			log.Error("failed to render template", "err", err.Error())
			problems.ReportError(w, err, traceID)
			return
		}

		w.Header().Add("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(text))
	}
}
