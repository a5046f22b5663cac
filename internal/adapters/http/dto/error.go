package dto

import (
	"cmp"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
)

// Codes for failures the transport raises on its own.
const (
	CodeUnauthenticated = "Unauthenticated"
	CodeTooManyRequests = "TooManyRequests"
)

const (
	problemContentType = "application/problem+json"
	maskedDetail       = "internal server error"
)

// ErrorResponse is an RFC 9457 problem document. Code is the stable,
// machine-readable name of the failure, e.g. "TaskNotFound".
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Code     string        `json:"code"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail points at one invalid request field.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

var statusByKind = map[domain.Kind]int{
	domain.KindValidation:      http.StatusBadRequest,
	domain.KindInvalidArgument: http.StatusBadRequest,
	domain.KindNotFound:        http.StatusNotFound,
	domain.KindAlreadyExists:   http.StatusConflict,
	domain.KindNotAuthorized:   http.StatusForbidden,
}

func problem(r *http.Request, status int, code, detail string) ErrorResponse {
	return ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Code:     code,
		Detail:   detail,
		Instance: r.RequestURI,
	}
}

// NewErrorResponse maps an error from the core onto a problem document.
// Anything that is not a classified domain failure becomes a 500 whose
// detail is masked.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	kind := domain.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		return problem(r, http.StatusInternalServerError, domain.CodeOf(err), maskedDetail)
	}

	detail := err.Error()
	var derr *domain.Error
	if errors.As(err, &derr) {
		detail = derr.Message
	}
	resp := problem(r, status, domain.CodeOf(err), detail)

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		for field, msg := range verr.Fields {
			resp.Errors = append(resp.Errors, ErrorDetail{Location: "body." + field, Message: msg})
		}
		slices.SortFunc(resp.Errors, func(a, b ErrorDetail) int { return cmp.Compare(a.Location, b.Location) })
	}
	return resp
}

// WriteErrorResponse answers with the problem for err. A 500 is logged with
// the full error chain, since the client only sees the masked detail.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	if resp.Status == http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
	send(w, r, resp)
}

// WriteProblem answers with a problem the core did not produce, such as a
// missing bearer token or an exhausted rate limit.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, code, detail string) {
	send(w, r, problem(r, status, code, detail))
}

func send(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(resp.Status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding problem response",
			slog.Any("error", err))
	}
}
