package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"

	"github.com/diwise/template-broker/internal/pkg/application/catalog"
	"github.com/diwise/template-broker/pkg/errors"
	"github.com/diwise/template-broker/pkg/identifier"
	"github.com/diwise/template-broker/pkg/templates"
	"github.com/diwise/template-broker/pkg/types/attributes"
	"github.com/diwise/template-broker/pkg/types/instances"
	"github.com/diwise/template-broker/pkg/types/schemas"
)

func TestCreateSchema(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	var created *schemas.Schema
	app.CreateSchemaFunc = func(ctx context.Context, name string, attributeTypes map[string]string) (*schemas.Schema, error) {
		is.Equal(attributeTypes["prize"], "Integer16")
		created, _ = schemas.New(name, schemas.Integer16("prize"))
		return created, nil
	}

	resp, body := newTestRequest(is, ts, http.MethodPost, "/api/v0/schemas", strings.NewReader(`{"name":"Marathon","attributes":{"prize":"Integer16"}}`))

	is.Equal(resp.StatusCode, http.StatusCreated) // Check status code
	is.Equal(resp.Header.Get("Location"), "/api/v0/schemas/"+created.ID().String())
	is.True(strings.Contains(body, `"prize":"Integer16"`))
}

func TestCreateSchemaWithBadDataReturnsInvalidRequest(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, http.MethodPost, "/api/v0/schemas", strings.NewReader("this is not my json"))

	is.Equal(resp.StatusCode, http.StatusBadRequest) // Check status code
	is.Equal(resp.Header.Get("Content-Type"), "application/problem+json")
}

func TestCreateSchemaWithUnknownTypeReturnsBadRequest(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	app.CreateSchemaFunc = func(context.Context, string, map[string]string) (*schemas.Schema, error) {
		return nil, errors.NewInvalidTypeError("unknown schema type Float")
	}

	resp, _ := newTestRequest(is, ts, http.MethodPost, "/api/v0/schemas", strings.NewReader(`{"name":"x","attributes":{"y":"Float"}}`))

	is.Equal(resp.StatusCode, http.StatusBadRequest) // Check status code
}

func TestCreateSchemaWithWrongContentTypeReturnsUnsupportedMediaType(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/api/v0/schemas", strings.NewReader(`{}`))
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err) // http request failed
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusUnsupportedMediaType) // Check status code
}

func TestQuerySchemasByName(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	app.QuerySchemasFunc = func(ctx context.Context, name string) ([]*schemas.Schema, error) {
		if name != "Marathon" {
			return nil, errors.NewNoMatchingObjectError(name)
		}
		s, _ := schemas.New(name)
		return []*schemas.Schema{s}, nil
	}

	resp, body := newTestRequest(is, ts, http.MethodGet, "/api/v0/schemas?name=Marathon", nil)
	is.Equal(resp.StatusCode, http.StatusOK) // Check status code

	found := []json.RawMessage{}
	is.NoErr(json.Unmarshal([]byte(body), &found))
	is.Equal(len(found), 1)

	resp, _ = newTestRequest(is, ts, http.MethodGet, "/api/v0/schemas?name=Unknown", nil)
	is.Equal(resp.StatusCode, http.StatusNotFound) // empty results should be reported as not found
}

func TestRetrieveSchemaWithMalformedIDReturnsBadRequest(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, http.MethodGet, "/api/v0/schemas/not-an-identifier", nil)

	is.Equal(resp.StatusCode, http.StatusBadRequest) // Check status code
	is.Equal(len(app.RetrieveSchemaCalls()), 0)      // the catalog should not be called
}

func TestRetrieveUnknownSchemaReturnsNotFound(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	app.RetrieveSchemaFunc = func(ctx context.Context, schemaID identifier.Identifier) (*schemas.Schema, error) {
		return nil, errors.NewMissingObjectError(schemaID.String())
	}

	resp, _ := newTestRequest(is, ts, http.MethodGet, "/api/v0/schemas/schema:1:abc", nil)

	is.Equal(resp.StatusCode, http.StatusNotFound) // Check status code
	is.Equal(app.RetrieveSchemaCalls()[0].SchemaID, identifier.Identifier("schema:1:abc"))
}

func TestDeleteSchema(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	app.DeleteSchemaFunc = func(context.Context, identifier.Identifier) error { return nil }

	resp, _ := newTestRequest(is, ts, http.MethodDelete, "/api/v0/schemas/schema:1:abc", nil)

	is.Equal(resp.StatusCode, http.StatusNoContent) // Check status code
}

func TestCreateInstance(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	schema, _ := schemas.New("Marathon", schemas.Integer16("prize"), schemas.Text("ref_link"), schemas.Text("city"))

	app.CreateInstanceFunc = func(ctx context.Context, schemaID identifier.Identifier, name string, values map[string]*string) (*instances.Instance, error) {
		is.Equal(schemaID, schema.ID())
		is.Equal(*values["prize"], "1000")     // numbers should be passed on as written
		is.Equal(*values["city"], "Stockholm") // strings should be unquoted

		link, ok := values["ref_link"]
		is.True(ok)
		is.True(link == nil) // null should be passed on as an absent value

		b := instances.NewBuilder(schema, name)
		for n, v := range values {
			is.NoErr(b.UpdateEntity(n, v))
		}
		return b.Build()
	}

	payload := `{"name":"Stockholm Marathon","attributes":{"prize":1000,"city":"Stockholm","ref_link":null}}`
	resp, body := newTestRequest(is, ts, http.MethodPost, "/api/v0/schemas/"+schema.ID().String()+"/instances", strings.NewReader(payload))

	is.Equal(resp.StatusCode, http.StatusCreated) // Check status code
	is.True(strings.HasPrefix(resp.Header.Get("Location"), "/api/v0/instances/instance:"))
	is.True(strings.Contains(body, `"prize":{"type":"Integer16","value":1000}`))
}

func TestCreateInstanceWithObjectValueReturnsInvalidRequest(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	payload := `{"name":"x","attributes":{"prize":{"nested":true}}}`
	resp, _ := newTestRequest(is, ts, http.MethodPost, "/api/v0/schemas/schema:1:abc/instances", strings.NewReader(payload))

	is.Equal(resp.StatusCode, http.StatusBadRequest) // Check status code
	is.Equal(len(app.CreateInstanceCalls()), 0)
}

func TestUpdateInstanceOfOtherSchemaReturnsConflict(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	app.UpdateInstanceFunc = func(context.Context, identifier.Identifier, map[string]*string) (*instances.Instance, error) {
		return nil, errors.NewUnauthorizedInstanceError("schema:1:abc", "x")
	}

	resp, _ := newTestRequest(is, ts, http.MethodPatch, "/api/v0/instances/instance:1:abc", strings.NewReader(`{"attributes":{"prize":"1"}}`))

	is.Equal(resp.StatusCode, http.StatusConflict) // Check status code
}

func TestCreateTemplateWithMissingPlaceholdersReturnsBadRequest(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	app.CreateTemplateFunc = func(ctx context.Context, schemaID identifier.Identifier, content string) (*templates.Template, error) {
		return nil, errors.NewMissingEntitiesError([]string{"ref_link"})
	}

	resp, body := newTestRequest(is, ts, http.MethodPost, "/api/v0/schemas/schema:1:abc/templates", strings.NewReader(`{"content":"[@prize]"}`))

	is.Equal(resp.StatusCode, http.StatusBadRequest) // Check status code
	is.True(strings.Contains(body, "ref_link"))       // the problem should name the missing attribute
}

func TestRenderTemplate(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	schema, _ := schemas.New("Marathon", schemas.Integer16("prize"))
	template, _ := templates.NewBuilder("Win [@prize] SEK", schema).Build()

	b := instances.NewBuilder(schema, "Stockholm Marathon")
	is.NoErr(b.UpdateEntity("prize", attributes.Raw("1000")))
	instance, _ := b.Build()

	app.RenderFunc = func(ctx context.Context, templateID, instanceID identifier.Identifier) (string, error) {
		is.Equal(templateID, template.ID())
		is.Equal(instanceID, instance.ID())
		return template.BuildFromInstance(instance)
	}

	payload := fmt.Sprintf(`{"instanceId":%q}`, instance.ID().String())
	resp, body := newTestRequest(is, ts, http.MethodPost, "/api/v0/templates/"+template.ID().String()+"/render", strings.NewReader(payload))

	is.Equal(resp.StatusCode, http.StatusOK) // Check status code
	is.Equal(resp.Header.Get("Content-Type"), "text/plain; charset=utf-8")
	is.Equal(body, "Win 1000 SEK")
}

func TestRenderWithUnknownInstanceReturnsNotFound(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	app.RenderFunc = func(ctx context.Context, templateID, instanceID identifier.Identifier) (string, error) {
		return "", errors.NewMissingObjectError(instanceID.String())
	}

	resp, _ := newTestRequest(is, ts, http.MethodPost, "/api/v0/templates/template:1:abc/render", strings.NewReader(`{"instanceId":"instance:1:abc"}`))

	is.Equal(resp.StatusCode, http.StatusNotFound) // Check status code
}

func TestUnknownErrorReturnsInternalError(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	app.DeleteTemplateFunc = func(context.Context, identifier.Identifier) error {
		return fmt.Errorf("some unknown error")
	}

	resp, _ := newTestRequest(is, ts, http.MethodDelete, "/api/v0/templates/template:1:abc", nil)

	is.Equal(resp.StatusCode, http.StatusInternalServerError) // Check status code
}

func TestRequestsDeniedByPolicyReturnForbidden(t *testing.T) {
	is := is.New(t)

	r := chi.NewRouter()
	ts := httptest.NewServer(r)
	defer ts.Close()

	app := &catalog.CatalogMock{}
	err := RegisterHandlers(context.Background(), r, bytes.NewBufferString(denyAllPolicy), app)
	is.NoErr(err)

	resp, _ := newTestRequest(is, ts, http.MethodGet, "/api/v0/schemas", nil)

	is.Equal(resp.StatusCode, http.StatusForbidden) // Check status code
	is.Equal(len(app.QuerySchemasCalls()), 0)       // the catalog should not be called
}

func newTestRequest(is *is.I, ts *httptest.Server, method, path string, body io.Reader) (*http.Response, string) {
	req, _ := http.NewRequest(method, ts.URL+path, body)
	req.Header.Add("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err) // http request failed
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	is.NoErr(err) // failed to read response body

	return resp, string(respBody)
}

func setupTest(t *testing.T) (*is.I, *httptest.Server, *catalog.CatalogMock) {
	is := is.New(t)
	r := chi.NewRouter()
	ts := httptest.NewServer(r)

	app := &catalog.CatalogMock{}

	err := RegisterHandlers(context.Background(), r, bytes.NewBufferString(allowAllPolicy), app)
	is.NoErr(err)

	return is, ts, app
}

const allowAllPolicy string = `
package example.authz

default allow := false

allow = response {
    response := {}
}
`

const denyAllPolicy string = `
package example.authz

default allow := false
`
