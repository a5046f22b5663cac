package dto

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
)

const (
	msgRequired = domain.MsgRequired

	minNameLen        = 4
	minTitleLen       = 3
	minDescriptionLen = 5
	minTeamNameLen    = 3
	minPasswordLen    = 8
	phoneLen          = 10
	minTaxIDLen       = 9
	passwordSpecials  = "@#$!%&*"

	// DateLayout is the wire format of task due dates.
	DateLayout = time.DateOnly
)

var (
	emailPattern  = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+$`)
	digitsPattern = regexp.MustCompile(`^[0-9]+$`)
)

func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

// ParseDueDate parses a due date in DateLayout. A nil or empty raw value
// yields nil.
func ParseDueDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	d, err := time.Parse(DateLayout, *raw)
	if err != nil {
		return nil, fmt.Errorf("due date %q: %w", *raw, err)
	}
	return &d, nil
}

// AuthRequest represents the JSON body of POST /auth/authenticate.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks that both credentials are present.
func (r *AuthRequest) Validate() error {
	fields := make(map[string]string)

	checkEmail(fields, "username", r.Username)
	if r.Password == "" {
		fields["password"] = msgRequired
	}

	return fieldsErr(fields)
}

// RegisterRequest represents the JSON body of POST /auth/register.
type RegisterRequest struct {
	Firstname       string `json:"firstname"`
	Lastname        string `json:"lastname"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	TaxID           string `json:"tax_id"`
	Phone           string `json:"phone"`
}

// Validate checks the sign-up fields. Password equality is left to the
// service so that a mismatch is reported as an invalid argument.
func (r *RegisterRequest) Validate() error {
	fields := make(map[string]string)
	r.validateInto(fields)
	return fieldsErr(fields)
}

func (r *RegisterRequest) validateInto(fields map[string]string) {
	checkMinLen(fields, "firstname", r.Firstname, minNameLen)
	checkMinLen(fields, "lastname", r.Lastname, minNameLen)
	checkEmail(fields, "username", r.Username)
	checkPassword(fields, "password", r.Password)
	checkPassword(fields, "confirm_password", r.ConfirmPassword)

	switch {
	case r.TaxID == "":
		fields["tax_id"] = msgRequired
	case !isDigits(r.TaxID, minTaxIDLen):
		fields["tax_id"] = fmt.Sprintf("must be at least %d digits", minTaxIDLen)
	}
	switch {
	case r.Phone == "":
		fields["phone"] = msgRequired
	case len(r.Phone) != phoneLen || !digitsPattern.MatchString(r.Phone):
		fields["phone"] = fmt.Sprintf("must be exactly %d digits", phoneLen)
	}
}

// CreateUserRequest represents the JSON body of POST /users.
type CreateUserRequest struct {
	RegisterRequest
	Role   string `json:"role,omitempty"`
	TeamID *int64 `json:"team_id,omitempty"`
}

// Validate checks the sign-up fields plus the optional role.
func (r *CreateUserRequest) Validate() error {
	fields := make(map[string]string)
	r.validateInto(fields)
	if r.Role != "" && !user.Role(r.Role).IsValid() {
		fields["role"] = fmt.Sprintf("invalid: %q", r.Role)
	}
	return fieldsErr(fields)
}

// UpdateUserRequest represents the JSON body of PATCH /users/{id}.
// All fields are optional; nil means "do not change this field.".
type UpdateUserRequest struct {
	Firstname *string `json:"firstname,omitempty"`
	Lastname  *string `json:"lastname,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	TaxID     *string `json:"tax_id,omitempty"`
	Password  *string `json:"password,omitempty"`
	Role      *string `json:"role,omitempty"`
	Active    *bool   `json:"is_active,omitempty"`
	TeamID    *int64  `json:"team_id,omitempty"`
	ClearTeam bool    `json:"clear_team,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateUserRequest) Validate() error {
	fields := make(map[string]string)

	if r.Firstname != nil {
		checkMinLen(fields, "firstname", *r.Firstname, minNameLen)
	}
	if r.Lastname != nil {
		checkMinLen(fields, "lastname", *r.Lastname, minNameLen)
	}
	if r.Phone != nil && !isDigits(*r.Phone, phoneLen) {
		fields["phone"] = fmt.Sprintf("must be at least %d digits", phoneLen)
	}
	if r.TaxID != nil && !isDigits(*r.TaxID, minTaxIDLen) {
		fields["tax_id"] = fmt.Sprintf("must be at least %d digits", minTaxIDLen)
	}
	if r.Password != nil {
		checkPassword(fields, "password", *r.Password)
	}
	if r.Role != nil && !user.Role(*r.Role).IsValid() {
		fields["role"] = fmt.Sprintf("invalid: %q", *r.Role)
	}
	if r.TeamID != nil && r.ClearTeam {
		fields["team_id"] = "cannot be combined with clear_team"
	}

	return fieldsErr(fields)
}

// CreateTaskRequest represents the JSON body of POST /tasks.
type CreateTaskRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description,omitempty"`
	Priority     string  `json:"priority"`
	DueDate      *string `json:"due_date,omitempty"`
	AssignedToID *int64  `json:"assigned_to_id,omitempty"`
	TeamID       *int64  `json:"team_id,omitempty"`
}

// Validate checks that required fields are present and optional fields have
// valid values.
func (r *CreateTaskRequest) Validate() error {
	fields := make(map[string]string)

	checkMinLen(fields, "title", r.Title, minTitleLen)
	if r.Description != "" {
		checkMinLen(fields, "description", r.Description, minDescriptionLen)
	}
	switch {
	case r.Priority == "":
		fields["priority"] = msgRequired
	case !task.Priority(r.Priority).IsValid():
		fields["priority"] = fmt.Sprintf("invalid: %q", r.Priority)
	}
	checkDueDate(fields, r.DueDate)

	return fieldsErr(fields)
}

// UpdateTaskRequest represents the JSON body of PATCH /tasks/{id}.
// All fields are optional; nil means "do not change this field.".
type UpdateTaskRequest struct {
	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
	Priority      *string `json:"priority,omitempty"`
	Status        *string `json:"status,omitempty"`
	DueDate       *string `json:"due_date,omitempty"`
	AssignedToID  *int64  `json:"assigned_to_id,omitempty"`
	ClearAssignee bool    `json:"clear_assignee,omitempty"`
	TeamID        *int64  `json:"team_id,omitempty"`
	ClearTeam     bool    `json:"clear_team,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil {
		checkMinLen(fields, "title", *r.Title, minTitleLen)
	}
	if r.Description != nil && *r.Description != "" {
		checkMinLen(fields, "description", *r.Description, minDescriptionLen)
	}
	if r.Priority != nil && !task.Priority(*r.Priority).IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", *r.Priority)
	}
	if r.Status != nil && !task.Status(*r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", *r.Status)
	}
	checkDueDate(fields, r.DueDate)
	if r.AssignedToID != nil && r.ClearAssignee {
		fields["assigned_to_id"] = "cannot be combined with clear_assignee"
	}
	if r.TeamID != nil && r.ClearTeam {
		fields["team_id"] = "cannot be combined with clear_team"
	}

	return fieldsErr(fields)
}

// CreateTeamRequest represents the JSON body of POST /teams.
type CreateTeamRequest struct {
	Name      string  `json:"name"`
	ManagerID int64   `json:"manager_id"`
	MemberIDs []int64 `json:"member_ids,omitempty"`
}

// Validate checks that the name and manager are present.
func (r *CreateTeamRequest) Validate() error {
	fields := make(map[string]string)

	checkMinLen(fields, "name", r.Name, minTeamNameLen)
	if r.ManagerID <= 0 {
		fields["manager_id"] = msgRequired
	}

	return fieldsErr(fields)
}

// UpdateTeamRequest represents the JSON body of PATCH /teams/{id}.
// All fields are optional; nil means "do not change this field.".
type UpdateTeamRequest struct {
	Name      *string `json:"name,omitempty"`
	ManagerID *int64  `json:"manager_id,omitempty"`
	MemberIDs []int64 `json:"member_ids,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateTeamRequest) Validate() error {
	fields := make(map[string]string)

	if r.Name != nil {
		checkMinLen(fields, "name", *r.Name, minTeamNameLen)
	}
	if r.ManagerID != nil && *r.ManagerID <= 0 {
		fields["manager_id"] = "must be a positive id"
	}

	return fieldsErr(fields)
}

func fieldsErr(fields map[string]string) error {
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func checkMinLen(fields map[string]string, name, value string, minLen int) {
	switch trimmed := strings.TrimSpace(value); {
	case trimmed == "":
		fields[name] = msgRequired
	case utf8.RuneCountInString(trimmed) < minLen:
		fields[name] = fmt.Sprintf("must be at least %d characters", minLen)
	}
}

func checkEmail(fields map[string]string, name, value string) {
	switch {
	case strings.TrimSpace(value) == "":
		fields[name] = msgRequired
	case !emailPattern.MatchString(value):
		fields[name] = "must be a valid email address"
	}
}

// checkPassword requires a lower and an upper case letter, a digit and one
// of passwordSpecials.
func checkPassword(fields map[string]string, name, value string) {
	if value == "" {
		fields[name] = msgRequired
		return
	}

	var lower, upper, digit, special bool
	for _, c := range value {
		switch {
		case unicode.IsLower(c):
			lower = true
		case unicode.IsUpper(c):
			upper = true
		case unicode.IsDigit(c):
			digit = true
		case strings.ContainsRune(passwordSpecials, c):
			special = true
		}
	}
	if utf8.RuneCountInString(value) < minPasswordLen || !lower || !upper || !digit || !special {
		fields[name] = fmt.Sprintf(
			"must be at least %d characters with upper and lower case letters, a digit and one of %s",
			minPasswordLen, passwordSpecials)
	}
}

func checkDueDate(fields map[string]string, raw *string) {
	d, err := ParseDueDate(raw)
	switch {
	case err != nil:
		fields["due_date"] = "must be a date in YYYY-MM-DD format"
	case d != nil && d.Before(today()):
		fields["due_date"] = "must not be in the past"
	}
}

func isDigits(value string, minLen int) bool {
	return len(value) >= minLen && digitsPattern.MatchString(value)
}
