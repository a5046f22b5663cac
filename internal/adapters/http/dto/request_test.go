package dto_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

func stringPtr(s string) *string { return &s }
func int64Ptr(i int64) *int64    { return &i }

const validPassword = "Secret#12"

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		Firstname:       "Maria",
		Lastname:        "Papadopoulou",
		Username:        "maria@example.com",
		Password:        validPassword,
		ConfirmPassword: validPassword,
		TaxID:           "123456789",
		Phone:           "6912345678",
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(r *dto.RegisterRequest)
		wantField string
	}{
		{name: "valid request passes", mutate: func(*dto.RegisterRequest) {}},
		{name: "missing firstname", mutate: func(r *dto.RegisterRequest) { r.Firstname = "" }, wantField: "firstname"},
		{name: "short lastname", mutate: func(r *dto.RegisterRequest) { r.Lastname = "Li" }, wantField: "lastname"},
		{name: "username not an email", mutate: func(r *dto.RegisterRequest) { r.Username = "maria" }, wantField: "username"},
		{name: "password without special", mutate: func(r *dto.RegisterRequest) { r.Password = "Secret123" }, wantField: "password"},
		{name: "password without upper", mutate: func(r *dto.RegisterRequest) { r.Password = "secret#12" }, wantField: "password"},
		{name: "password too short", mutate: func(r *dto.RegisterRequest) { r.Password = "Se#1" }, wantField: "password"},
		{name: "confirm missing", mutate: func(r *dto.RegisterRequest) { r.ConfirmPassword = "" }, wantField: "confirm_password"},
		{name: "tax id too short", mutate: func(r *dto.RegisterRequest) { r.TaxID = "1234" }, wantField: "tax_id"},
		{name: "tax id with letters", mutate: func(r *dto.RegisterRequest) { r.TaxID = "12345678X" }, wantField: "tax_id"},
		{name: "phone too long", mutate: func(r *dto.RegisterRequest) { r.Phone = "69123456789" }, wantField: "phone"},
		{name: "phone missing", mutate: func(r *dto.RegisterRequest) { r.Phone = "" }, wantField: "phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := validRegister()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestRegisterRequest_Validate_MismatchLeftToService(t *testing.T) {
	t.Parallel()

	req := validRegister()
	req.ConfirmPassword = "Other#123"

	if err := req.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil for differing but well-formed passwords", err)
	}
}

func TestCreateUserRequest_Validate(t *testing.T) {
	t.Parallel()

	req := dto.CreateUserRequest{RegisterRequest: validRegister(), Role: "MANAGER"}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	req.Role = "OWNER"
	requireValidationField(t, req.Validate(), "role")

	req.Role = ""
	req.Firstname = ""
	requireValidationField(t, req.Validate(), "firstname")
}

func TestUpdateUserRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.UpdateUserRequest
		wantField string
	}{
		{name: "empty request passes", req: dto.UpdateUserRequest{}},
		{name: "valid phone passes", req: dto.UpdateUserRequest{Phone: stringPtr("6900000000")}},
		{name: "short firstname", req: dto.UpdateUserRequest{Firstname: stringPtr("Al")}, wantField: "firstname"},
		{name: "short phone", req: dto.UpdateUserRequest{Phone: stringPtr("69")}, wantField: "phone"},
		{name: "short tax id", req: dto.UpdateUserRequest{TaxID: stringPtr("12")}, wantField: "tax_id"},
		{name: "weak password", req: dto.UpdateUserRequest{Password: stringPtr("password")}, wantField: "password"},
		{name: "invalid role", req: dto.UpdateUserRequest{Role: stringPtr("ROOT")}, wantField: "role"},
		{
			name:      "team and clear team together",
			req:       dto.UpdateUserRequest{TeamID: int64Ptr(1), ClearTeam: true},
			wantField: "team_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestCreateTaskRequest_Validate(t *testing.T) {
	t.Parallel()

	future := time.Now().AddDate(1, 0, 0).Format(dto.DateLayout)

	tests := []struct {
		name      string
		req       dto.CreateTaskRequest
		wantField string
	}{
		{
			name: "valid request passes",
			req:  dto.CreateTaskRequest{Title: "Write report", Priority: "HIGH"},
		},
		{
			name: "valid request with all fields",
			req: dto.CreateTaskRequest{
				Title:        "Write report",
				Description:  "Quarterly numbers",
				Priority:     "LOW",
				DueDate:      &future,
				AssignedToID: int64Ptr(2),
				TeamID:       int64Ptr(1),
			},
		},
		{name: "missing title", req: dto.CreateTaskRequest{Priority: "HIGH"}, wantField: "title"},
		{name: "short title", req: dto.CreateTaskRequest{Title: "ab", Priority: "HIGH"}, wantField: "title"},
		{
			name:      "short description",
			req:       dto.CreateTaskRequest{Title: "Write report", Description: "abc", Priority: "HIGH"},
			wantField: "description",
		},
		{name: "missing priority", req: dto.CreateTaskRequest{Title: "Write report"}, wantField: "priority"},
		{
			name:      "invalid priority",
			req:       dto.CreateTaskRequest{Title: "Write report", Priority: "URGENT"},
			wantField: "priority",
		},
		{
			name:      "malformed due date",
			req:       dto.CreateTaskRequest{Title: "Write report", Priority: "HIGH", DueDate: stringPtr("12/01/2030")},
			wantField: "due_date",
		},
		{
			name:      "past due date",
			req:       dto.CreateTaskRequest{Title: "Write report", Priority: "HIGH", DueDate: stringPtr("2001-01-01")},
			wantField: "due_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestCreateTaskRequest_Validate_MultipleErrors(t *testing.T) {
	t.Parallel()

	req := dto.CreateTaskRequest{Priority: "NOPE", DueDate: stringPtr("yesterday")}
	err := req.Validate()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	for _, field := range []string{"title", "priority", "due_date"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("Fields missing %q, got %v", field, verr.Fields)
		}
	}
}

func TestUpdateTaskRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.UpdateTaskRequest
		wantField string
	}{
		{name: "empty request passes", req: dto.UpdateTaskRequest{}},
		{name: "status change passes", req: dto.UpdateTaskRequest{Status: stringPtr("IN_PROGRESS")}},
		{name: "clearing description passes", req: dto.UpdateTaskRequest{Description: stringPtr("")}},
		{name: "short title", req: dto.UpdateTaskRequest{Title: stringPtr("x")}, wantField: "title"},
		{name: "invalid status", req: dto.UpdateTaskRequest{Status: stringPtr("DONE")}, wantField: "status"},
		{name: "invalid priority", req: dto.UpdateTaskRequest{Priority: stringPtr("NOW")}, wantField: "priority"},
		{
			name:      "assignee and clear assignee together",
			req:       dto.UpdateTaskRequest{AssignedToID: int64Ptr(4), ClearAssignee: true},
			wantField: "assigned_to_id",
		},
		{
			name:      "team and clear team together",
			req:       dto.UpdateTaskRequest{TeamID: int64Ptr(4), ClearTeam: true},
			wantField: "team_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestTeamRequests_Validate(t *testing.T) {
	t.Parallel()

	if err := (&dto.CreateTeamRequest{Name: "Alpha", ManagerID: 2}).Validate(); err != nil {
		t.Errorf("CreateTeamRequest.Validate() = %v, want nil", err)
	}
	requireValidationField(t, (&dto.CreateTeamRequest{Name: "Al", ManagerID: 2}).Validate(), "name")
	requireValidationField(t, (&dto.CreateTeamRequest{Name: "Alpha"}).Validate(), "manager_id")

	if err := (&dto.UpdateTeamRequest{MemberIDs: []int64{3}}).Validate(); err != nil {
		t.Errorf("UpdateTeamRequest.Validate() = %v, want nil", err)
	}
	requireValidationField(t, (&dto.UpdateTeamRequest{Name: stringPtr("")}).Validate(), "name")
	requireValidationField(t, (&dto.UpdateTeamRequest{ManagerID: int64Ptr(0)}).Validate(), "manager_id")
}

func TestAuthRequest_Validate(t *testing.T) {
	t.Parallel()

	if err := (&dto.AuthRequest{Username: "a@b.io", Password: "x"}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	requireValidationField(t, (&dto.AuthRequest{Username: "nope", Password: "x"}).Validate(), "username")
	requireValidationField(t, (&dto.AuthRequest{Username: "a@b.io"}).Validate(), "password")
}

func TestParseDueDate(t *testing.T) {
	t.Parallel()

	got, err := dto.ParseDueDate(nil)
	if err != nil || got != nil {
		t.Errorf("ParseDueDate(nil) = %v, %v; want nil, nil", got, err)
	}

	got, err = dto.ParseDueDate(stringPtr("2030-06-15"))
	if err != nil {
		t.Fatalf("ParseDueDate() error = %v", err)
	}
	want := time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDueDate() = %v, want %v", got, want)
	}

	if _, err := dto.ParseDueDate(stringPtr("15-06-2030")); err == nil {
		t.Error("ParseDueDate(bad layout) error = nil, want error")
	}
}
