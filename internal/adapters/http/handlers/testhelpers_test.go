package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

const testActorID int64 = 7

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// authed returns a request carrying testActorID as the authenticated actor.
func authed(method, target string, body *bytes.Buffer) *http.Request {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/json")
	}
	return req.WithContext(middleware.WithActor(req.Context(), testActorID))
}

func sampleTask() *ports.TaskView {
	return &ports.TaskView{
		ID:              1,
		Title:           "Write report",
		Description:     "Quarterly numbers",
		Priority:        task.PriorityHigh,
		Status:          task.StatusTodo,
		CreatorID:       testActorID,
		CreatorUsername: "boss@example.com",
		CreatedAt:       testTime,
		UpdatedAt:       testTime,
	}
}

func sampleTeam() *ports.TeamView {
	return &ports.TeamView{
		ID:              5,
		Name:            "Alpha",
		ManagerID:       testActorID,
		ManagerUsername: "boss@example.com",
		ManagerName:     "Boss Person",
		Members: []ports.MemberView{
			{ID: 9, Username: "member@example.com", FullName: "Mem Ber", Role: user.RoleMember},
		},
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func sampleUser() *ports.UserView {
	return &ports.UserView{
		ID:        9,
		UUID:      "0b7c3d5e-9a8f-4e21-b1c4-3f6a2d9e8c71",
		Firstname: "Maria",
		Lastname:  "Papadopoulou",
		Username:  "maria@example.com",
		TaxID:     "123456789",
		Phone:     "6912345678",
		Role:      user.RoleMember,
		Active:    true,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

func requireCode(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Code != want {
		t.Errorf("problem code = %q, want %q", resp.Code, want)
	}
}
