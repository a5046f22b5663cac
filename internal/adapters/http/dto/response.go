// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// TaskResponse represents a single task in HTTP responses.
type TaskResponse struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description,omitempty"`
	Priority         string  `json:"priority"`
	Status           string  `json:"status"`
	DueDate          *string `json:"due_date,omitempty"`
	Completed        bool    `json:"completed"`
	CreatorID        int64   `json:"creator_id"`
	CreatorUsername  string  `json:"creator_username"`
	AssignedToID     *int64  `json:"assigned_to_id,omitempty"`
	AssignedUsername *string `json:"assigned_to_username,omitempty"`
	TeamID           *int64  `json:"team_id,omitempty"`
	TeamName         *string `json:"team_name,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// TaskListResponse represents a list of tasks in HTTP responses.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}

// ToTaskResponse converts a task view to an HTTP response DTO.
func ToTaskResponse(v *ports.TaskView) TaskResponse {
	resp := TaskResponse{
		ID:               v.ID,
		Title:            v.Title,
		Description:      v.Description,
		Priority:         v.Priority.String(),
		Status:           v.Status.String(),
		Completed:        v.Completed,
		CreatorID:        v.CreatorID,
		CreatorUsername:  v.CreatorUsername,
		AssignedToID:     v.AssigneeID,
		AssignedUsername: v.AssigneeUsername,
		TeamID:           v.TeamID,
		TeamName:         v.TeamName,
		CreatedAt:        v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        v.UpdatedAt.Format(time.RFC3339),
	}
	if v.DueDate != nil {
		d := v.DueDate.Format(DateLayout)
		resp.DueDate = &d
	}
	return resp
}

// ToTaskListResponse converts task views to an HTTP list response DTO.
func ToTaskListResponse(views []ports.TaskView) TaskListResponse {
	items := make([]TaskResponse, len(views))
	for i := range views {
		items[i] = ToTaskResponse(&views[i])
	}
	return TaskListResponse{Tasks: items, Count: len(items)}
}

// MemberResponse represents a team member nested in a TeamResponse.
type MemberResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// TeamResponse represents a single team in HTTP responses.
type TeamResponse struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	ManagerID       int64            `json:"manager_id"`
	ManagerUsername string           `json:"manager_username"`
	ManagerName     string           `json:"manager_name"`
	Members         []MemberResponse `json:"members"`
	CreatedAt       string           `json:"created_at"`
	UpdatedAt       string           `json:"updated_at"`
}

// TeamListResponse represents a list of teams in HTTP responses.
type TeamListResponse struct {
	Teams []TeamResponse `json:"teams"`
	Count int            `json:"count"`
}

// ToTeamResponse converts a team view to an HTTP response DTO.
func ToTeamResponse(v *ports.TeamView) TeamResponse {
	members := make([]MemberResponse, len(v.Members))
	for i, m := range v.Members {
		members[i] = MemberResponse{
			ID:       m.ID,
			Username: m.Username,
			FullName: m.FullName,
			Role:     m.Role.String(),
		}
	}
	return TeamResponse{
		ID:              v.ID,
		Name:            v.Name,
		ManagerID:       v.ManagerID,
		ManagerUsername: v.ManagerUsername,
		ManagerName:     v.ManagerName,
		Members:         members,
		CreatedAt:       v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       v.UpdatedAt.Format(time.RFC3339),
	}
}

// ToTeamListResponse converts team views to an HTTP list response DTO.
func ToTeamListResponse(views []ports.TeamView) TeamListResponse {
	items := make([]TeamResponse, len(views))
	for i := range views {
		items[i] = ToTeamResponse(&views[i])
	}
	return TeamListResponse{Teams: items, Count: len(items)}
}

// UserResponse represents a single user in HTTP responses. The password
// hash is never part of it.
type UserResponse struct {
	ID        int64   `json:"id"`
	UUID      string  `json:"uuid"`
	Firstname string  `json:"firstname"`
	Lastname  string  `json:"lastname"`
	Username  string  `json:"username"`
	TaxID     string  `json:"tax_id"`
	Phone     string  `json:"phone"`
	Role      string  `json:"role"`
	Active    bool    `json:"is_active"`
	TeamID    *int64  `json:"team_id,omitempty"`
	TeamName  *string `json:"team_name,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// UserListResponse represents a list of users in HTTP responses.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Count int            `json:"count"`
}

// ToUserResponse converts a user view to an HTTP response DTO.
func ToUserResponse(v *ports.UserView) UserResponse {
	return UserResponse{
		ID:        v.ID,
		UUID:      v.UUID,
		Firstname: v.Firstname,
		Lastname:  v.Lastname,
		Username:  v.Username,
		TaxID:     v.TaxID,
		Phone:     v.Phone,
		Role:      v.Role.String(),
		Active:    v.Active,
		TeamID:    v.TeamID,
		TeamName:  v.TeamName,
		CreatedAt: v.CreatedAt.Format(time.RFC3339),
		UpdatedAt: v.UpdatedAt.Format(time.RFC3339),
	}
}

// ToUserListResponse converts user views to an HTTP list response DTO.
func ToUserListResponse(views []ports.UserView) UserListResponse {
	items := make([]UserResponse, len(views))
	for i := range views {
		items[i] = ToUserResponse(&views[i])
	}
	return UserListResponse{Users: items, Count: len(items)}
}

// AuthResponse is returned by a successful authentication.
type AuthResponse struct {
	Firstname string       `json:"firstname"`
	Lastname  string       `json:"lastname"`
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// ToAuthResponse converts an issued token to an HTTP response DTO.
func ToAuthResponse(t *ports.AuthToken) AuthResponse {
	return AuthResponse{
		Firstname: t.User.Firstname,
		Lastname:  t.User.Lastname,
		Token:     t.Token,
		ExpiresAt: t.ExpiresAt.Format(time.RFC3339),
		User:      ToUserResponse(&t.User),
	}
}
