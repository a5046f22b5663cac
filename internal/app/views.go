package app

import (
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/team"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

func (u *unit) taskView(tk *task.Task) (*ports.TaskView, error) {
	creator, err := u.user(tk.CreatorID)
	if err != nil {
		return nil, err
	}

	v := &ports.TaskView{
		ID:              tk.ID,
		Title:           tk.Title,
		Description:     tk.Description,
		Priority:        tk.Priority,
		Status:          tk.Status,
		DueDate:         tk.DueDate,
		Completed:       tk.Completed,
		CreatorID:       tk.CreatorID,
		CreatorUsername: creator.Username,
		AssigneeID:      tk.AssigneeID,
		TeamID:          tk.TeamID,
		CreatedAt:       tk.CreatedAt,
		UpdatedAt:       tk.UpdatedAt,
	}

	if tk.AssigneeID != nil {
		assignee, err := u.user(*tk.AssigneeID)
		if err != nil {
			return nil, err
		}
		v.AssigneeUsername = &assignee.Username
	}
	if tk.TeamID != nil {
		tm, err := u.team(*tk.TeamID)
		if err != nil {
			return nil, err
		}
		v.TeamName = &tm.Name
	}
	return v, nil
}

func (u *unit) taskViews(tasks []task.Task) ([]ports.TaskView, error) {
	views := make([]ports.TaskView, 0, len(tasks))
	for i := range tasks {
		v, err := u.taskView(&tasks[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

func (u *unit) teamView(tm *team.Team) (*ports.TeamView, error) {
	manager, err := u.user(tm.ManagerID)
	if err != nil {
		return nil, err
	}

	teamID := tm.ID
	members, err := u.users().List(u.ctx(), user.Filter{TeamID: &teamID})
	if err != nil {
		return nil, err
	}

	v := &ports.TeamView{
		ID:              tm.ID,
		Name:            tm.Name,
		ManagerID:       tm.ManagerID,
		ManagerUsername: manager.Username,
		ManagerName:     manager.FullName(),
		Members:         make([]ports.MemberView, 0, len(members)),
		CreatedAt:       tm.CreatedAt,
		UpdatedAt:       tm.UpdatedAt,
	}
	for i := range members {
		m := &members[i]
		v.Members = append(v.Members, ports.MemberView{
			ID:       m.ID,
			Username: m.Username,
			FullName: m.FullName(),
			Role:     m.Role,
		})
	}
	return v, nil
}

func (u *unit) teamViews(teams []team.Team) ([]ports.TeamView, error) {
	views := make([]ports.TeamView, 0, len(teams))
	for i := range teams {
		v, err := u.teamView(&teams[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

func (u *unit) userView(usr *user.User) (*ports.UserView, error) {
	v := &ports.UserView{
		ID:        usr.ID,
		UUID:      usr.UUID,
		Firstname: usr.Firstname,
		Lastname:  usr.Lastname,
		Username:  usr.Username,
		TaxID:     usr.TaxID,
		Phone:     usr.Phone,
		Role:      usr.Role,
		Active:    usr.Active,
		TeamID:    usr.TeamID,
		CreatedAt: usr.CreatedAt,
		UpdatedAt: usr.UpdatedAt,
	}
	if usr.TeamID != nil {
		tm, err := u.team(*usr.TeamID)
		if err != nil {
			return nil, err
		}
		v.TeamName = &tm.Name
	}
	return v, nil
}

func (u *unit) userViews(users []user.User) ([]ports.UserView, error) {
	views := make([]ports.UserView, 0, len(users))
	for i := range users {
		v, err := u.userView(&users[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}
