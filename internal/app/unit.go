package app

import (
	"context"
	"errors"
	"log/slog"

	appctx "github.com/jsamuelsen11/taskflow-service/internal/app/context"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/policy"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/team"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// DecisionRecorder observes authorization decisions. *telemetry.Metrics
// implements it.
type DecisionRecorder interface {
	RecordDecision(ctx context.Context, operation, role string, allowed bool)
}

// base holds what every service needs: the store and the observers.
type base struct {
	store    ports.Store
	recorder DecisionRecorder
	logger   *slog.Logger
}

// newBase builds the shared service state. A nil logger discards output.
func newBase(store ports.Store, recorder DecisionRecorder, logger *slog.Logger) base {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return base{store: store, recorder: recorder, logger: logger}
}

// unit is the state of one service call: its transaction-scoped lookup
// cache and the acting user.
type unit struct {
	rc    *appctx.Scope
	b     *base
	actor *user.User
}

// inTx runs fn in a transaction without an actor. Only the public
// registration and login paths use it.
func (b *base) inTx(ctx context.Context, fn func(u *unit) error) error {
	return b.store.WithinTx(ctx, func(txCtx context.Context) error {
		return fn(&unit{rc: appctx.New(txCtx), b: b})
	})
}

// asActor runs fn in a transaction on behalf of actorID. Unknown actors fail
// with NotFound and inactive ones with NotAuthorized before fn runs.
func (b *base) asActor(ctx context.Context, actorID int64, fn func(u *unit) error) error {
	return b.inTx(ctx, func(u *unit) error {
		actor, err := u.user(actorID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NotFound(user.Entity, "authenticated user %d not found", actorID)
			}
			return err
		}
		if !actor.Active {
			return domain.NotAuthorized(user.Entity, "user %d is inactive", actorID)
		}
		u.actor = actor
		return fn(u)
	})
}

// fail logs a failed operation. Expected domain outcomes are logged at WARN,
// anything else at ERROR.
func (b *base) fail(ctx context.Context, msg, operation string, err error, attrs ...slog.Attr) {
	args := make([]any, 0, len(attrs)+2)
	args = append(args, slog.String("operation", operation))
	for _, a := range attrs {
		args = append(args, a)
	}
	args = append(args, slog.Any("error", err))

	if domain.IsDomain(err) {
		b.logger.WarnContext(ctx, msg, args...)
		return
	}
	b.logger.ErrorContext(ctx, msg, args...)
}

func (u *unit) ctx() context.Context { return u.rc }

func (u *unit) users() ports.UserRepository { return u.b.store.Users() }
func (u *unit) teams() ports.TeamRepository { return u.b.store.Teams() }
func (u *unit) tasks() ports.TaskRepository { return u.b.store.Tasks() }

func (u *unit) policyActor() policy.Actor {
	return policy.ActorOf(u.actor)
}

// authorize evaluates op for the actor and records the decision.
func (u *unit) authorize(op policy.Operation, target policy.Target) error {
	return u.guard(op, policy.Allowed(op, u.policyActor(), target), target)
}

// guard records a decision already taken by one of the policy helpers and
// turns a denial into a NotAuthorized error.
func (u *unit) guard(op policy.Operation, allowed bool, target policy.Target) error {
	if u.b.recorder != nil {
		u.b.recorder.RecordDecision(u.ctx(), string(op), string(u.actor.Role), allowed)
	}
	if allowed {
		return nil
	}
	d := policy.Evaluate(op, u.policyActor(), target)
	u.b.logger.WarnContext(u.ctx(), "authorization denied",
		slog.String("operation", string(op)),
		slog.Int64("actor_id", u.actor.ID),
		slog.String("role", string(d.Role)),
		slog.String("relations", d.Relations.String()),
	)
	return policy.Denied(d)
}

func (u *unit) user(id int64) (*user.User, error) {
	return appctx.Load(u.rc, appctx.UserKey(id), u.users().FindByID, id)
}

func (u *unit) team(id int64) (*team.Team, error) {
	return appctx.Load(u.rc, appctx.TeamKey(id), u.teams().FindByID, id)
}

// teamOf resolves an optional team reference. A nil id yields a nil team.
func (u *unit) teamOf(id *int64) (*team.Team, error) {
	if id == nil {
		return nil, nil
	}
	return u.team(*id)
}

// managedTeam returns the team userID manages, or nil when they manage none.
func (u *unit) managedTeam(userID int64) (*team.Team, error) {
	tm, err := appctx.Load(u.rc, appctx.ManagedTeamKey(userID), u.teams().FindByManager, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return tm, err
}

// managedTeamID returns the id of the team the actor manages, or nil.
func (u *unit) managedTeamID() (*int64, error) {
	tm, err := u.managedTeam(u.actor.ID)
	if err != nil || tm == nil {
		return nil, err
	}
	id := tm.ID
	return &id, nil
}

// loadTask loads a task together with its team.
func (u *unit) loadTask(id int64) (*task.Task, *team.Team, error) {
	tk, err := u.tasks().FindByID(u.ctx(), id)
	if err != nil {
		return nil, nil, err
	}
	tm, err := u.teamOf(tk.TeamID)
	if err != nil {
		return nil, nil, err
	}
	return tk, tm, nil
}

// loadUser loads a user together with their team.
func (u *unit) loadUser(id int64) (*user.User, *team.Team, error) {
	subject, err := u.user(id)
	if err != nil {
		return nil, nil, err
	}
	tm, err := u.teamOf(subject.TeamID)
	if err != nil {
		return nil, nil, err
	}
	return subject, tm, nil
}

func (u *unit) saveUser(usr *user.User) error {
	if err := u.users().Save(u.ctx(), usr); err != nil {
		return err
	}
	appctx.Store(u.rc, appctx.UserKey(usr.ID), usr)
	return nil
}

func (u *unit) saveTeam(tm *team.Team) error {
	if err := u.teams().Save(u.ctx(), tm); err != nil {
		return err
	}
	appctx.Store(u.rc, appctx.TeamKey(tm.ID), tm)
	appctx.Store(u.rc, appctx.ManagedTeamKey(tm.ManagerID), tm)
	return nil
}

// refNotFound rewrites NotFound for a referenced entity so the message names
// the reference, and passes every other error through.
func refNotFound(err error, entity, format string, args ...any) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NotFound(entity, format, args...)
	}
	return err
}
