package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/diwise/template-broker/internal/pkg/application/catalog"
	"github.com/diwise/template-broker/internal/pkg/presentation/api/auth"
	problems "github.com/diwise/template-broker/internal/pkg/presentation/api/errors"
	"github.com/diwise/template-broker/pkg/identifier"
)

const BasePath string = "/api/v0"

var tracer = otel.Tracer("template-broker/api")

func RegisterHandlers(ctx context.Context, r chi.Router, policies io.Reader, app catalog.Catalog) error {

	authenticator, err := auth.NewAuthenticator(ctx, policies)
	if err != nil {
		return fmt.Errorf("failed to create api authenticator: %w", err)
	}

	r.Route(BasePath, func(r chi.Router) {
		r.Use(
			Logger(),
			RequiredContentTypes([]string{"application/json"}),
			Authorize(authenticator),
		)

		r.Route("/schemas", func(r chi.Router) {
			r.Get("/", NewQuerySchemasHandler(app))
			r.Post("/", NewCreateSchemaHandler(app))

			r.Route("/{schemaId}", func(r chi.Router) {
				r.Get("/", NewRetrieveSchemaHandler(app))
				r.Delete("/", NewDeleteSchemaHandler(app))

				r.Get("/instances", NewQuerySchemaInstancesHandler(app))
				r.Post("/instances", NewCreateInstanceHandler(app))

				r.Get("/templates", NewQuerySchemaTemplatesHandler(app))
				r.Post("/templates", NewCreateTemplateHandler(app))
			})
		})

		r.Route("/instances", func(r chi.Router) {
			r.Get("/", NewQueryInstancesHandler(app))

			r.Route("/{instanceId}", func(r chi.Router) {
				r.Get("/", NewRetrieveInstanceHandler(app))
				r.Patch("/", NewUpdateInstanceHandler(app))
				r.Delete("/", NewDeleteInstanceHandler(app))
			})
		})

		r.Route("/templates/{templateId}", func(r chi.Router) {
			r.Get("/", NewRetrieveTemplateHandler(app))
			r.Delete("/", NewDeleteTemplateHandler(app))
			r.Post("/render", NewRenderHandler(app))
		})
	})

	return nil
}

// Logger adds the trace id of the current span to the request scoped logger.
func Logger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logging.GetFromContext(ctx),
				ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequiredContentTypes(validTypes []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contentType := r.Header.Get("Content-Type")
			isValidContentType := true

			if len(contentType) > 0 {
				isValidContentType = false

				for _, t := range validTypes {
					if strings.HasPrefix(contentType, t) {
						isValidContentType = true
						break
					}
				}
			}

			if isValidContentType {
				next.ServeHTTP(w, r)
			} else {
				http.Error(w, "unsupported media type", http.StatusUnsupportedMediaType)
			}
		})
	}
}

// Authorize rejects every request that the policies do not allow.
func Authorize(authenticator auth.Enticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			err := authenticator.CheckAccess(ctx, r)
			if err != nil {
				logging.GetFromContext(ctx).Warn("access denied", "method", r.Method, "path", r.URL.Path, "err", err.Error())
				problems.NewForbidden(err.Error()).WriteResponse(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func pathIdentifier(r *http.Request, param string) (identifier.Identifier, error) {
	raw, err := url.PathUnescape(chi.URLParam(r, param))
	if err != nil {
		return identifier.None, err
	}

	return identifier.FromString(raw)
}

// rawValues turns attribute values received as JSON into the raw text the
// schema parsers expect. Strings are unquoted, null becomes an absent value
// and numbers are passed on as written.
func rawValues(attributes map[string]json.RawMessage) (map[string]*string, error) {
	values := make(map[string]*string, len(attributes))

	for name, raw := range attributes {
		text := strings.TrimSpace(string(raw))

		switch {
		case text == "null":
			values[name] = nil
		case strings.HasPrefix(text, `"`):
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, fmt.Errorf("attribute %s: %w", name, err)
			}
			values[name] = &s
		case strings.HasPrefix(text, "{"), strings.HasPrefix(text, "["):
			return nil, fmt.Errorf("attribute %s: value must be a string, a number or null", name)
		default:
			values[name] = &text
		}
	}

	return values, nil
}

func writeJSON(w http.ResponseWriter, code int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(body)

	return nil
}

var errEmptyName = errors.New("name must not be empty")
