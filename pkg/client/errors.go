package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

var ErrBadRequest = fmt.Errorf("bad request")
var ErrBadResponse = fmt.Errorf("bad response")
var ErrConflict = fmt.Errorf("conflict")
var ErrForbidden = fmt.Errorf("forbidden")
var ErrInternal = fmt.Errorf("internal error")
var ErrNotFound = fmt.Errorf("not found")
var ErrRequest = fmt.Errorf("request error")

const problemTypePrefix string = "urn:diwise:template-broker:errors:"

type clientError struct {
	msg    string
	target error
}

func (c clientError) Error() string        { return c.msg }
func (c clientError) Is(target error) bool { return target == c.target }

func newClientError(target error, msg string) error {
	return &clientError{msg: msg, target: target}
}

// NewErrorFromProblemReport turns a problem report returned by the broker into
// an error that can be matched with errors.Is against the Err* values above.
func NewErrorFromProblemReport(code int, body []byte) error {
	report := &struct {
		Type    string `json:"type"`
		Title   string `json:"title"`
		Detail  string `json:"detail"`
		TraceID string `json:"traceId"`
	}{}

	err := json.Unmarshal(body, report)
	if err != nil {
		return fmt.Errorf("failed to process problem report (status %d): %s (%w)", code, err.Error(), ErrBadResponse)
	}

	switch strings.TrimPrefix(report.Type, problemTypePrefix) {
	case "ResourceNotFound":
		return newClientError(ErrNotFound, report.Detail)
	case "BadRequestData", "InvalidRequest":
		return newClientError(ErrBadRequest, report.Detail)
	case "Conflict":
		return newClientError(ErrConflict, report.Detail)
	case "Forbidden":
		return newClientError(ErrForbidden, report.Detail)
	}

	switch code {
	case http.StatusNotFound:
		return newClientError(ErrNotFound, report.Detail)
	case http.StatusForbidden:
		return newClientError(ErrForbidden, report.Detail)
	}

	return newClientError(ErrInternal,
		fmt.Sprintf("[code: %d] unknown problem report of type \"%s\" with detail \"%s\" received (trace id %s)",
			code, report.Type, report.Detail, report.TraceID,
		),
	)
}
