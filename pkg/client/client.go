package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/diwise/template-broker/pkg/identifier"
	"github.com/diwise/template-broker/pkg/templates"
	"github.com/diwise/template-broker/pkg/types/instances"
	"github.com/diwise/template-broker/pkg/types/schemas"
)

type TemplateBrokerClient interface {
	CreateSchema(ctx context.Context, name string, attributeTypes map[string]string) (*schemas.Schema, error)
	RetrieveSchema(ctx context.Context, schemaID identifier.Identifier) (*schemas.Schema, error)
	QuerySchemas(ctx context.Context, name string) ([]*schemas.Schema, error)
	DeleteSchema(ctx context.Context, schemaID identifier.Identifier) error

	CreateInstance(ctx context.Context, schemaID identifier.Identifier, name string, values map[string]*string) (*instances.Instance, error)
	RetrieveInstance(ctx context.Context, instanceID identifier.Identifier) (*instances.Instance, error)
	UpdateInstance(ctx context.Context, instanceID identifier.Identifier, values map[string]*string) (*instances.Instance, error)
	DeleteInstance(ctx context.Context, instanceID identifier.Identifier) error

	CreateTemplate(ctx context.Context, schemaID identifier.Identifier, content string) (*templates.Template, error)
	RetrieveTemplate(ctx context.Context, templateID identifier.Identifier) (*templates.Template, error)
	Render(ctx context.Context, templateID, instanceID identifier.Identifier) (string, error)
}

func Debug(enabled string) func(*tbClient) {
	return func(c *tbClient) {
		c.debug = (enabled == "true")
	}
}

// Token sets a bearer token that is sent with every request
func Token(token string) func(*tbClient) {
	return func(c *tbClient) {
		c.token = token
	}
}

func NewTemplateBrokerClient(broker string, options ...func(*tbClient)) TemplateBrokerClient {
	c := &tbClient{
		baseURL: broker,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

const (
	apiPath string = "/api/v0"

	TraceAttributeSchemaID   string = "schema-id"
	TraceAttributeInstanceID string = "instance-id"
	TraceAttributeTemplateID string = "template-id"
)

var tracer = otel.Tracer("template-broker-client")

type tbClient struct {
	baseURL    string
	token      string
	debug      bool
	httpClient http.Client
}

func (c *tbClient) CreateSchema(ctx context.Context, name string, attributeTypes map[string]string) (*schemas.Schema, error) {
	var err error

	ctx, span := tracer.Start(ctx, "create-schema")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body := struct {
		Name       string            `json:"name"`
		Attributes map[string]string `json:"attributes"`
	}{name, attributeTypes}

	respBody, err := c.exchange(ctx, http.MethodPost, "/schemas", body, http.StatusCreated)
	if err != nil {
		return nil, err
	}

	schema, err := schemas.NewFromJSON(respBody)
	if err != nil {
		err = fmt.Errorf("%s (%w)", err.Error(), ErrBadResponse)
		return nil, err
	}

	return schema, nil
}

func (c *tbClient) RetrieveSchema(ctx context.Context, schemaID identifier.Identifier) (*schemas.Schema, error) {
	var err error

	ctx, span := tracer.Start(ctx, "retrieve-schema",
		trace.WithAttributes(attribute.String(TraceAttributeSchemaID, schemaID.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	respBody, err := c.exchange(ctx, http.MethodGet, "/schemas/"+url.PathEscape(schemaID.String()), nil, http.StatusOK)
	if err != nil {
		return nil, err
	}

	schema, err := schemas.NewFromJSON(respBody)
	if err != nil {
		err = fmt.Errorf("%s (%w)", err.Error(), ErrBadResponse)
		return nil, err
	}

	return schema, nil
}

func (c *tbClient) QuerySchemas(ctx context.Context, name string) ([]*schemas.Schema, error) {
	var err error

	ctx, span := tracer.Start(ctx, "query-schemas")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	path := "/schemas"
	if name != "" {
		path += "?name=" + url.QueryEscape(name)
	}

	respBody, err := c.exchange(ctx, http.MethodGet, path, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var found []*schemas.Schema
	found, err = decodeList(respBody, schemas.NewFromJSON)

	return found, err
}

func (c *tbClient) DeleteSchema(ctx context.Context, schemaID identifier.Identifier) error {
	var err error

	ctx, span := tracer.Start(ctx, "delete-schema",
		trace.WithAttributes(attribute.String(TraceAttributeSchemaID, schemaID.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, err = c.exchange(ctx, http.MethodDelete, "/schemas/"+url.PathEscape(schemaID.String()), nil, http.StatusNoContent)
	return err
}

type instanceBody struct {
	Name       string             `json:"name,omitempty"`
	Attributes map[string]*string `json:"attributes"`
}

func (c *tbClient) CreateInstance(ctx context.Context, schemaID identifier.Identifier, name string, values map[string]*string) (*instances.Instance, error) {
	var err error

	ctx, span := tracer.Start(ctx, "create-instance",
		trace.WithAttributes(attribute.String(TraceAttributeSchemaID, schemaID.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	path := "/schemas/" + url.PathEscape(schemaID.String()) + "/instances"

	respBody, err := c.exchange(ctx, http.MethodPost, path, instanceBody{name, values}, http.StatusCreated)
	if err != nil {
		return nil, err
	}

	instance, err := instances.NewFromJSON(respBody)
	if err != nil {
		err = fmt.Errorf("%s (%w)", err.Error(), ErrBadResponse)
		return nil, err
	}

	return instance, nil
}

func (c *tbClient) RetrieveInstance(ctx context.Context, instanceID identifier.Identifier) (*instances.Instance, error) {
	var err error

	ctx, span := tracer.Start(ctx, "retrieve-instance",
		trace.WithAttributes(attribute.String(TraceAttributeInstanceID, instanceID.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	respBody, err := c.exchange(ctx, http.MethodGet, "/instances/"+url.PathEscape(instanceID.String()), nil, http.StatusOK)
	if err != nil {
		return nil, err
	}

	instance, err := instances.NewFromJSON(respBody)
	if err != nil {
		err = fmt.Errorf("%s (%w)", err.Error(), ErrBadResponse)
		return nil, err
	}

	return instance, nil
}

func (c *tbClient) UpdateInstance(ctx context.Context, instanceID identifier.Identifier, values map[string]*string) (*instances.Instance, error) {
	var err error

	ctx, span := tracer.Start(ctx, "update-instance",
		trace.WithAttributes(attribute.String(TraceAttributeInstanceID, instanceID.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	path := "/instances/" + url.PathEscape(instanceID.String())

	respBody, err := c.exchange(ctx, http.MethodPatch, path, instanceBody{Attributes: values}, http.StatusOK)
	if err != nil {
		return nil, err
	}

	instance, err := instances.NewFromJSON(respBody)
	if err != nil {
		err = fmt.Errorf("%s (%w)", err.Error(), ErrBadResponse)
		return nil, err
	}

	return instance, nil
}

func (c *tbClient) DeleteInstance(ctx context.Context, instanceID identifier.Identifier) error {
	var err error

	ctx, span := tracer.Start(ctx, "delete-instance",
		trace.WithAttributes(attribute.String(TraceAttributeInstanceID, instanceID.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, err = c.exchange(ctx, http.MethodDelete, "/instances/"+url.PathEscape(instanceID.String()), nil, http.StatusNoContent)
	return err
}

func (c *tbClient) CreateTemplate(ctx context.Context, schemaID identifier.Identifier, content string) (*templates.Template, error) {
	var err error

	ctx, span := tracer.Start(ctx, "create-template",
		trace.WithAttributes(attribute.String(TraceAttributeSchemaID, schemaID.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body := struct {
		Content string `json:"content"`
	}{content}

	path := "/schemas/" + url.PathEscape(schemaID.String()) + "/templates"

	respBody, err := c.exchange(ctx, http.MethodPost, path, body, http.StatusCreated)
	if err != nil {
		return nil, err
	}

	template, err := templates.NewFromJSON(respBody)
	if err != nil {
		err = fmt.Errorf("%s (%w)", err.Error(), ErrBadResponse)
		return nil, err
	}

	return template, nil
}

func (c *tbClient) RetrieveTemplate(ctx context.Context, templateID identifier.Identifier) (*templates.Template, error) {
	var err error

	ctx, span := tracer.Start(ctx, "retrieve-template",
		trace.WithAttributes(attribute.String(TraceAttributeTemplateID, templateID.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	respBody, err := c.exchange(ctx, http.MethodGet, "/templates/"+url.PathEscape(templateID.String()), nil, http.StatusOK)
	if err != nil {
		return nil, err
	}

	template, err := templates.NewFromJSON(respBody)
	if err != nil {
		err = fmt.Errorf("%s (%w)", err.Error(), ErrBadResponse)
		return nil, err
	}

	return template, nil
}

func (c *tbClient) Render(ctx context.Context, templateID, instanceID identifier.Identifier) (string, error) {
	var err error

	ctx, span := tracer.Start(ctx, "render-template",
		trace.WithAttributes(attribute.String(TraceAttributeTemplateID, templateID.String())),
		trace.WithAttributes(attribute.String(TraceAttributeInstanceID, instanceID.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body := struct {
		InstanceID string `json:"instanceId"`
	}{instanceID.String()}

	path := "/templates/" + url.PathEscape(templateID.String()) + "/render"

	respBody, err := c.exchange(ctx, http.MethodPost, path, body, http.StatusOK)
	if err != nil {
		return "", err
	}

	return string(respBody), nil
}

// exchange sends a request to the broker and returns the response body if
// the response carries the expected status code
func (c *tbClient) exchange(ctx context.Context, method, path string, payload any, expected int) ([]byte, error) {
	var body io.Reader

	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %s (%w)", err.Error(), ErrRequest)
		}
		body = bytes.NewReader(b)
	}

	resp, respBody, err := c.callTemplateBroker(ctx, method, c.baseURL+apiPath+path, body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, NewErrorFromProblemReport(resp.StatusCode, respBody)
	}

	if resp.StatusCode != expected {
		return nil, fmt.Errorf("unexpected response code %d (%w)", resp.StatusCode, ErrInternal)
	}

	return respBody, nil
}

func (c *tbClient) callTemplateBroker(ctx context.Context, method, endpoint string, body io.Reader) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %s (%w)", err.Error(), ErrInternal)
	}

	req.Header.Add("Accept", "application/json")

	if body != nil {
		req.Header.Add("Content-Type", "application/json")
	}

	if c.token != "" {
		req.Header.Add("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to send request: %s (%w)", err.Error(), ErrRequest)
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %s (%w)", err.Error(), ErrBadResponse)
	}

	if c.debug && resp.StatusCode >= http.StatusBadRequest && resp.StatusCode != http.StatusNotFound {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		log := logging.GetFromContext(ctx)
		log.Error("request failed", "request", string(reqbytes), "response", string(respbytes))
	}

	return resp, respBody, nil
}

func decodeList[T any](body []byte, decode func([]byte) (*T, error)) ([]*T, error) {
	raw := []json.RawMessage{}

	err := json.Unmarshal(body, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %s (%w)", err.Error(), ErrBadResponse)
	}

	result := make([]*T, 0, len(raw))
	for _, r := range raw {
		t, err := decode(r)
		if err != nil {
			return nil, fmt.Errorf("%s (%w)", err.Error(), ErrBadResponse)
		}
		result = append(result, t)
	}

	return result, nil
}
