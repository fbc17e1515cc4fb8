package fakebackend

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
)

// http headers
const (
	ContentType     = "Content-Type"
	ApplicationJSON = "application/json"
)

// DefaultUnauthorizedMessage is sent when a request has no acceptable
// bearer token.
const DefaultUnauthorizedMessage = "Unauthorized"

type response struct {
	status int
	body   []byte
}

type messageBody struct {
	Message string `json:"message"`
}

func ok(v any) response {
	b, err := json.Marshal(v)
	if err != nil {
		return errorResponse(http.StatusInternalServerError, err.Error())
	}
	return response{status: http.StatusOK, body: b}
}

// okEmpty is a 200 with no body.
func okEmpty() response {
	return response{status: http.StatusOK}
}

func unauthorized(message string) response {
	if message == "" {
		message = DefaultUnauthorizedMessage
	}
	return errorResponse(http.StatusUnauthorized, message)
}

func badRequest(message string) response {
	return errorResponse(http.StatusBadRequest, message)
}

func internalError(message string) response {
	return errorResponse(http.StatusInternalServerError, message)
}

func errorResponse(status int, message string) response {
	b, _ := json.Marshal(messageBody{Message: message})
	return response{status: status, body: b}
}

func (r response) write(w http.ResponseWriter) {
	w.Header().Set(ContentType, ApplicationJSON)
	w.WriteHeader(r.status)
	if len(r.body) > 0 {
		_, _ = w.Write(r.body)
	}
}

func (r response) toHTTP(req *http.Request) *http.Response {
	h := make(http.Header)
	h.Set(ContentType, ApplicationJSON)
	h.Set("Content-Length", strconv.Itoa(len(r.body)))

	return &http.Response{
		Status:        strconv.Itoa(r.status) + " " + http.StatusText(r.status),
		StatusCode:    r.status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        h,
		Body:          io.NopCloser(bytes.NewReader(r.body)),
		ContentLength: int64(len(r.body)),
		Request:       req,
	}
}
