package app

import (
	"context"
	"log/slog"

	appctx "github.com/jsamuelsen11/taskflow-service/internal/app/context"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/policy"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/team"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// Compile-time check that TeamService implements ports.TeamService.
var _ ports.TeamService = (*TeamService)(nil)

// TeamService implements ports.TeamService. Membership lives on the user
// side only, so every membership change is a user write.
type TeamService struct {
	base
}

// NewTeamService creates a TeamService. The recorder may be nil.
func NewTeamService(store ports.Store, recorder DecisionRecorder, logger *slog.Logger) *TeamService {
	return &TeamService{newBase(store, recorder, logger)}
}

// CreateTeam creates a team with its manager and initial members.
func (s *TeamService) CreateTeam(ctx context.Context, actorID int64, in ports.CreateTeamInput) (*ports.TeamView, error) {
	s.logger.InfoContext(ctx, "creating team", slog.Int64("actor_id", actorID), slog.String("name", in.Name))

	var view *ports.TeamView
	err := s.asActor(ctx, actorID, func(u *unit) error {
		if err := u.authorize(policy.OpCreateTeam, policy.Target{}); err != nil {
			return err
		}

		tm := &team.Team{Name: in.Name, ManagerID: in.ManagerID}
		if err := tm.Validate(); err != nil {
			return err
		}
		if err := u.checkTeamName(in.Name); err != nil {
			return err
		}
		if err := u.checkManager(in.ManagerID, 0); err != nil {
			return err
		}
		if err := u.saveTeam(tm); err != nil {
			return err
		}
		if err := u.addMembers(tm, in.MemberIDs); err != nil {
			return err
		}

		var err error
		view, err = u.teamView(tm)
		return err
	})
	if err != nil {
		s.fail(ctx, "failed to create team", "CreateTeam", err, slog.String("name", in.Name))
		return nil, err
	}
	return view, nil
}

// UpdateTeam renames the team, changes its manager and adds members.
func (s *TeamService) UpdateTeam(ctx context.Context, actorID, teamID int64, in ports.UpdateTeamInput) (*ports.TeamView, error) {
	s.logger.InfoContext(ctx, "updating team", slog.Int64("actor_id", actorID), slog.Int64("id", teamID))

	var view *ports.TeamView
	err := s.asActor(ctx, actorID, func(u *unit) error {
		tm, err := u.team(teamID)
		if err != nil {
			return err
		}
		if err := u.authorize(policy.OpUpdateTeam, policy.TeamTarget(tm)); err != nil {
			return err
		}

		if in.Name != nil && *in.Name != tm.Name {
			if err := u.checkTeamName(*in.Name); err != nil {
				return err
			}
			tm.Name = *in.Name
		}
		if in.ManagerID != nil && *in.ManagerID != tm.ManagerID {
			if err := u.checkManager(*in.ManagerID, tm.ID); err != nil {
				return err
			}
			appctx.Drop(u.rc, appctx.ManagedTeamKey(tm.ManagerID))
			tm.ManagerID = *in.ManagerID
		}

		if err := tm.Validate(); err != nil {
			return err
		}
		if err := u.saveTeam(tm); err != nil {
			return err
		}
		if err := u.addMembers(tm, in.MemberIDs); err != nil {
			return err
		}

		view, err = u.teamView(tm)
		return err
	})
	if err != nil {
		s.fail(ctx, "failed to update team", "UpdateTeam", err, slog.Int64("id", teamID))
		return nil, err
	}
	return view, nil
}

// checkTeamName fails with AlreadyExists when a team already has name.
// Names are compared exactly.
func (u *unit) checkTeamName(name string) error {
	exists, err := u.teams().ExistsByName(u.ctx(), name)
	if err != nil {
		return err
	}
	if exists {
		return domain.AlreadyExists(team.Entity, "team with name %q already exists", name)
	}
	return nil
}

// checkManager verifies that managerID exists and manages no team other than
// exceptTeamID.
func (u *unit) checkManager(managerID, exceptTeamID int64) error {
	if _, err := u.user(managerID); err != nil {
		return refNotFound(err, user.Entity, "manager %d not found", managerID)
	}
	managed, err := u.managedTeam(managerID)
	if err != nil {
		return err
	}
	if managed != nil && managed.ID != exceptTeamID {
		return domain.FieldAlreadyExists(team.Entity, "Manager",
			"user %d already manages team %q", managerID, managed.Name)
	}
	return nil
}

// addMembers links every listed user to tm, skipping current members.
// Unknown users fail the whole operation with InvalidArgument.
func (u *unit) addMembers(tm *team.Team, ids []int64) error {
	for _, id := range ids {
		member, err := u.user(id)
		if err != nil {
			return refInvalid(err, "user %d does not exist", id)
		}
		if member.InTeam(tm.ID) {
			continue
		}
		if err := team.AddMember(tm, member); err != nil {
			return err
		}
		if err := u.saveUser(member); err != nil {
			return err
		}
	}
	return nil
}

func refInvalid(err error, format string, args ...any) error {
	if domain.KindOf(err) == domain.KindNotFound {
		return domain.InvalidArgument(team.Entity, format, args...)
	}
	return err
}

// DeleteTeam removes the team after detaching its members and tasks.
func (s *TeamService) DeleteTeam(ctx context.Context, actorID, teamID int64) error {
	s.logger.InfoContext(ctx, "deleting team", slog.Int64("actor_id", actorID), slog.Int64("id", teamID))

	err := s.asActor(ctx, actorID, func(u *unit) error {
		tm, err := u.team(teamID)
		if err != nil {
			return err
		}
		if err := u.authorize(policy.OpDeleteTeam, policy.TeamTarget(tm)); err != nil {
			return err
		}

		id := tm.ID
		members, err := u.users().List(u.ctx(), user.Filter{TeamID: &id})
		if err != nil {
			return err
		}
		for i := range members {
			if err := team.RemoveMember(tm, &members[i]); err != nil {
				return err
			}
			if err := u.saveUser(&members[i]); err != nil {
				return err
			}
		}

		tasks, err := u.tasks().List(u.ctx(), task.Filter{TeamID: &id})
		if err != nil {
			return err
		}
		for i := range tasks {
			tasks[i].TeamID = nil
			if err := u.tasks().Save(u.ctx(), &tasks[i]); err != nil {
				return err
			}
		}

		return u.teams().Delete(u.ctx(), id)
	})
	if err != nil {
		s.fail(ctx, "failed to delete team", "DeleteTeam", err, slog.Int64("id", teamID))
		return err
	}
	return nil
}

// GetTeam returns a single team.
func (s *TeamService) GetTeam(ctx context.Context, actorID, teamID int64) (*ports.TeamView, error) {
	s.logger.InfoContext(ctx, "fetching team", slog.Int64("actor_id", actorID), slog.Int64("id", teamID))

	var view *ports.TeamView
	err := s.asActor(ctx, actorID, func(u *unit) error {
		tm, err := u.team(teamID)
		if err != nil {
			return err
		}
		if err := u.authorize(policy.OpViewTeam, policy.TeamTarget(tm)); err != nil {
			return err
		}
		view, err = u.teamView(tm)
		return err
	})
	if err != nil {
		s.fail(ctx, "failed to fetch team", "GetTeam", err, slog.Int64("id", teamID))
		return nil, err
	}
	return view, nil
}

// ListTeams returns every team in the actor's scope.
func (s *TeamService) ListTeams(ctx context.Context, actorID int64) ([]ports.TeamView, error) {
	s.logger.InfoContext(ctx, "listing teams", slog.Int64("actor_id", actorID))

	var views []ports.TeamView
	err := s.asActor(ctx, actorID, func(u *unit) error {
		scope := policy.TeamScope(u.policyActor())

		var teams []team.Team
		switch {
		case scope.All:
			var err error
			if teams, err = u.teams().List(u.ctx()); err != nil {
				return err
			}
		case scope.TeamID != nil:
			tm, err := u.team(*scope.TeamID)
			if err != nil {
				return err
			}
			teams = []team.Team{*tm}
		}

		var err error
		views, err = u.teamViews(teams)
		return err
	})
	if err != nil {
		s.fail(ctx, "failed to list teams", "ListTeams", err, slog.Int64("actor_id", actorID))
		return nil, err
	}
	return views, nil
}

// MyTeam returns the team the actor belongs to as a one-element list.
// Members and team leaders outside any team get an empty list; an
// administrator or manager outside any team gets NotFound.
func (s *TeamService) MyTeam(ctx context.Context, actorID int64) ([]ports.TeamView, error) {
	s.logger.InfoContext(ctx, "fetching own team", slog.Int64("actor_id", actorID))

	var views []ports.TeamView
	err := s.asActor(ctx, actorID, func(u *unit) error {
		if u.actor.TeamID == nil {
			if u.actor.Role.Rank() >= user.RoleManager.Rank() {
				return domain.NotFound(team.Entity, "user %d is not a member of any team", u.actor.ID)
			}
			views = []ports.TeamView{}
			return nil
		}
		tm, err := u.team(*u.actor.TeamID)
		if err != nil {
			return err
		}
		if err := u.authorize(policy.OpViewTeam, policy.TeamTarget(tm)); err != nil {
			return err
		}
		view, err := u.teamView(tm)
		if err != nil {
			return err
		}
		views = []ports.TeamView{*view}
		return nil
	})
	if err != nil {
		s.fail(ctx, "failed to fetch own team", "MyTeam", err, slog.Int64("actor_id", actorID))
		return nil, err
	}
	return views, nil
}

// AddMember links userID to the team.
func (s *TeamService) AddMember(ctx context.Context, actorID, teamID, userID int64) (*ports.TeamView, error) {
	return s.changeMembership(ctx, actorID, teamID, userID, "AddMember", team.AddMember)
}

// RemoveMember unlinks userID from the team.
func (s *TeamService) RemoveMember(ctx context.Context, actorID, teamID, userID int64) (*ports.TeamView, error) {
	return s.changeMembership(ctx, actorID, teamID, userID, "RemoveMember", team.RemoveMember)
}

func (s *TeamService) changeMembership(
	ctx context.Context,
	actorID, teamID, userID int64,
	operation string,
	change func(*team.Team, *user.User) error,
) (*ports.TeamView, error) {
	s.logger.InfoContext(ctx, "changing team membership",
		slog.String("operation", operation),
		slog.Int64("actor_id", actorID),
		slog.Int64("team_id", teamID),
		slog.Int64("user_id", userID),
	)

	var view *ports.TeamView
	err := s.asActor(ctx, actorID, func(u *unit) error {
		tm, err := u.team(teamID)
		if err != nil {
			return err
		}
		if err := u.authorize(policy.OpManageTeamMembers, policy.TeamTarget(tm)); err != nil {
			return err
		}

		member, err := u.user(userID)
		if err != nil {
			return err
		}
		if err := change(tm, member); err != nil {
			return err
		}
		if err := u.saveUser(member); err != nil {
			return err
		}

		view, err = u.teamView(tm)
		return err
	})
	if err != nil {
		s.fail(ctx, "failed to change team membership", operation, err,
			slog.Int64("team_id", teamID),
			slog.Int64("user_id", userID),
		)
		return nil, err
	}
	return view, nil
}
