package errors

import (
	"encoding/json"
	goerrors "errors"
	"net/http"

	tberrors "github.com/diwise/template-broker/pkg/errors"
)

// ProblemDetails stores details about a certain problem according to RFC7807
// See https://tools.ietf.org/html/rfc7807
type ProblemDetails interface {
	ContentType() string
	Type() string
	Title() string
	Detail() string
	ResponseCode() int
	MarshalJSON() ([]byte, error)
	WriteResponse(w http.ResponseWriter)
}

// ProblemDetailsImpl is an implementation of the ProblemDetails interface
type ProblemDetailsImpl struct {
	typ     string
	title   string
	detail  string
	code    int
	traceID string
}

const (
	// ProblemReportContentType as required by https://tools.ietf.org/html/rfc7807
	ProblemReportContentType string = "application/problem+json"

	problemTypePrefix string = "urn:diwise:template-broker:errors:"
)

func newProblem(name, title, detail string, code int) ProblemDetailsImpl {
	return ProblemDetailsImpl{
		typ:    problemTypePrefix + name,
		title:  title,
		detail: detail,
		code:   code,
	}
}

// BadRequestData reports that the request includes input data which does not meet the requirements of the operation
type BadRequestData struct {
	ProblemDetailsImpl
}

func NewBadRequestData(detail string) *BadRequestData {
	return &BadRequestData{newProblem("BadRequestData", "Bad Request Data", detail, http.StatusBadRequest)}
}

// InvalidRequest reports that the request is syntactically invalid
type InvalidRequest struct {
	ProblemDetailsImpl
}

func NewInvalidRequest(detail string) *InvalidRequest {
	return &InvalidRequest{newProblem("InvalidRequest", "Invalid Request", detail, http.StatusBadRequest)}
}

// NotFound reports that the request failed with a not found error of some kind
type NotFound struct {
	ProblemDetailsImpl
}

func NewNotFound(detail string) *NotFound {
	return &NotFound{newProblem("ResourceNotFound", "Not Found", detail, http.StatusNotFound)}
}

// Conflict reports that an instance and a schema or template do not belong together
type Conflict struct {
	ProblemDetailsImpl
}

func NewConflict(detail string) *Conflict {
	return &Conflict{newProblem("Conflict", "Conflict", detail, http.StatusConflict)}
}

type Forbidden struct {
	ProblemDetailsImpl
}

func NewForbidden(detail string) *Forbidden {
	return &Forbidden{newProblem("Forbidden", "Forbidden", detail, http.StatusForbidden)}
}

// InternalError reports that there has been an error during the operation execution
type InternalError struct {
	ProblemDetailsImpl
}

func NewInternalError(detail string) *InternalError {
	return &InternalError{newProblem("InternalError", "Internal Error", detail, http.StatusInternalServerError)}
}

// FromError maps an error returned by the catalog to the problem that should
// be reported back to the client.
func FromError(err error) ProblemDetails {
	switch {
	case goerrors.Is(err, tberrors.ErrMissingObject),
		goerrors.Is(err, tberrors.ErrNoMatchingObject),
		goerrors.Is(err, tberrors.ErrNoParentObject):
		return NewNotFound(err.Error())
	case goerrors.Is(err, tberrors.ErrInvalidType),
		goerrors.Is(err, tberrors.ErrNonMatchingType),
		goerrors.Is(err, tberrors.ErrMissingEntitiesFromSchema):
		return NewBadRequestData(err.Error())
	case goerrors.Is(err, tberrors.ErrWrongFormat),
		goerrors.Is(err, tberrors.ErrMissingPrefix):
		return NewInvalidRequest(err.Error())
	case goerrors.Is(err, tberrors.ErrUnauthorizedInstance),
		goerrors.Is(err, tberrors.ErrMissingSchemaID):
		return NewConflict(err.Error())
	default:
		return NewInternalError(err.Error())
	}
}

// ReportError writes the problem matching err, tagged with the trace id of
// the failed request.
func ReportError(w http.ResponseWriter, err error, traceID string) {
	p := FromError(err)

	if tagger, ok := p.(interface{ setTraceID(string) }); ok {
		tagger.setTraceID(traceID)
	}

	p.WriteResponse(w)
}

func (p *ProblemDetailsImpl) setTraceID(traceID string) {
	p.traceID = traceID
}

func (p *ProblemDetailsImpl) ContentType() string {
	return ProblemReportContentType
}

func (p *ProblemDetailsImpl) Type() string {
	return p.typ
}

func (p *ProblemDetailsImpl) Title() string {
	return p.title
}

func (p *ProblemDetailsImpl) Detail() string {
	return p.detail
}

// MarshalJSON is called when a ProblemDetailsImpl instance should be serialized to JSON
func (p *ProblemDetailsImpl) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string `json:"type"`
		Title   string `json:"title"`
		Detail  string `json:"detail"`
		TraceID string `json:"traceId,omitempty"`
	}{
		Type:    p.typ,
		Title:   p.title,
		Detail:  p.detail,
		TraceID: p.traceID,
	})
}

// ResponseCode returns the HTTP response code to be used when returning a specific problem
func (p *ProblemDetailsImpl) ResponseCode() int {

	if p.code != 0 {
		return p.code
	}

	return http.StatusBadRequest
}

// WriteResponse writes the contents of this instance to a http.ResponseWriter
func (p *ProblemDetailsImpl) WriteResponse(w http.ResponseWriter) {
	w.Header().Add("Content-Type", p.ContentType())
	w.Header().Add("Content-Language", "en")
	w.WriteHeader(p.ResponseCode())

	pdbytes, err := json.MarshalIndent(p, "", "  ")
	if err == nil {
		w.Write(pdbytes)
	}
}
