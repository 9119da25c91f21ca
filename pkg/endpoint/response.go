package endpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

const jsonContentType = "application/json"
const htmlContentType = "text/html; charset=utf-8"

type Response struct {
	etag         string
	cacheControl string
	contentType  string
	writer       http.ResponseWriter
	request      *http.Request
}

func NewResponseWithCache(salt string, maxAgeSeconds int, writer http.ResponseWriter, request *http.Request) *Response {
	if maxAgeSeconds < 0 {
		maxAgeSeconds = 0
	}

	etag := ""
	if salt = strings.TrimSpace(salt); salt != "" {
		etag = fmt.Sprintf(`"%s"`, salt)
	}

	return &Response{
		writer:       writer,
		request:      request,
		etag:         etag,
		contentType:  jsonContentType,
		cacheControl: fmt.Sprintf("public, max-age=%d", maxAgeSeconds),
	}
}

func NewResponseFrom(salt string, writer http.ResponseWriter, request *http.Request) *Response {
	return NewResponseWithCache(salt, 3600, writer, request)
}

func NewNoCacheResponse(writer http.ResponseWriter, request *http.Request) *Response {
	return &Response{
		writer:       writer,
		request:      request,
		contentType:  jsonContentType,
		cacheControl: "no-store",
	}
}

// AsHTML switches the response content type so RespondHTML can serve markup.
func (r *Response) AsHTML() *Response {
	r.contentType = htmlContentType

	return r
}

func (r *Response) WithHeaders(callback func(w http.ResponseWriter)) {
	callback(r.writer)
}

func (r *Response) RespondOk(payload any) error {
	r.writeHeaders()
	r.writer.WriteHeader(http.StatusOK)

	return json.NewEncoder(r.writer).Encode(payload)
}

func (r *Response) RespondHTML(body []byte) error {
	r.writeHeaders()
	r.writer.WriteHeader(http.StatusOK)

	_, err := r.writer.Write(body)

	return err
}

func (r *Response) HasCache() bool {
	if r.etag == "" {
		return false
	}

	match := strings.TrimSpace(
		r.request.Header.Get("If-None-Match"),
	)

	if match == "*" {
		return true
	}

	// If-None-Match uses the weak comparison, so W/"v1" matches "v1".
	for _, candidate := range strings.Split(match, ",") {
		if strings.TrimPrefix(strings.TrimSpace(candidate), "W/") == r.etag {
			return true
		}
	}

	return false
}

func (r *Response) RespondWithNotModified() {
	r.writer.Header().Set("ETag", r.etag)
	r.writer.WriteHeader(http.StatusNotModified)
}

func (r *Response) writeHeaders() {
	h := r.writer.Header()

	h.Set("Content-Type", r.contentType)
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Cache-Control", r.cacheControl)

	if r.etag != "" {
		h.Set("ETag", r.etag)
	}
}

func InternalError(msg string) *ApiError {
	message := fmt.Sprintf("Internal server error: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     errors.New(message),
	}
}

func LogInternalError(msg string, err error) *ApiError {
	slog.Error(err.Error(), "error", err)

	return &ApiError{
		Message: fmt.Sprintf("Internal server error: %s", msg),
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func LogUnauthorisedError(msg string, err error) *ApiError {
	slog.Error(err.Error(), "error", err)

	return &ApiError{
		Message: fmt.Sprintf("Unauthorised request: %s", msg),
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func TooManyRequests(msg string) *ApiError {
	message := fmt.Sprintf("Too many requests: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusTooManyRequests,
		Err:     errors.New(message),
	}
}
