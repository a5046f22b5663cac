package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/team"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

func rolePtr(r user.Role) *user.Role { return &r }

func boolPtr(b bool) *bool { return &b }

// plainHasher is a reversible stand-in for bcrypt.
type plainHasher struct{}

var errMismatch = errors.New("mismatch")

func (plainHasher) Hash(password string) (string, error) { return "plain:" + password, nil }

func (plainHasher) Compare(hash, password string) error {
	if hash != "plain:"+password {
		return errMismatch
	}
	return nil
}

type fakeIssuer struct{}

func (fakeIssuer) Issue(userID int64, username string) (string, time.Time, error) {
	return "token-for-" + username, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), nil
}

type decision struct {
	operation string
	role      string
	allowed   bool
}

// decisionLog captures authorization decisions.
type decisionLog struct {
	mu        sync.Mutex
	decisions []decision
}

func (l *decisionLog) RecordDecision(_ context.Context, operation, role string, allowed bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.decisions = append(l.decisions, decision{operation, role, allowed})
}

func (l *decisionLog) all() []decision {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]decision(nil), l.decisions...)
}

// fixture is a seeded organisation:
//
//	admin      ADMIN, no team
//	manager    MANAGER of team alpha, no team membership
//	leader     TEAM_LEADER in alpha
//	member     MEMBER in alpha
//	outsider   MEMBER, no team
//	other      MANAGER of team beta
type fixture struct {
	t     *testing.T
	ctx   context.Context
	store *memory.Store
	log   *decisionLog
	seq   int

	tasks *TaskService
	teams *TeamService
	users *UserService
	auth  *AuthService

	admin, manager, leader, member, outsider, other *user.User
	alpha, beta                                     *team.Team
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.New()
	log := &decisionLog{}
	f := &fixture{
		t:     t,
		ctx:   context.Background(),
		store: store,
		log:   log,
		tasks: NewTaskService(store, log, nil),
		teams: NewTeamService(store, log, nil),
		users: NewUserService(store, plainHasher{}, log, nil),
		auth:  NewAuthService(store, plainHasher{}, fakeIssuer{}, nil),
	}

	f.admin = f.seedUser("admin", user.RoleAdmin)
	f.manager = f.seedUser("manager", user.RoleManager)
	f.other = f.seedUser("other", user.RoleManager)
	f.alpha = f.seedTeam("Alpha", f.manager)
	f.beta = f.seedTeam("Beta", f.other)
	f.leader = f.seedUser("leader", user.RoleTeamLeader, f.alpha)
	f.member = f.seedUser("member", user.RoleMember, f.alpha)
	f.outsider = f.seedUser("outsider", user.RoleMember)
	return f
}

func (f *fixture) seedUser(name string, role user.Role, tm ...*team.Team) *user.User {
	f.t.Helper()

	f.seq++
	u := user.New(
		strings.ToUpper(name[:1])+name[1:], "Tester",
		name+"@example.com",
		"plain:Secret#123",
		fmt.Sprintf("%09d", f.seq),
		fmt.Sprintf("%010d", f.seq),
		role,
	)
	if len(tm) > 0 {
		u.TeamID = int64Ptr(tm[0].ID)
	}
	require.NoError(f.t, f.store.Users().Save(f.ctx, u))
	return u
}

func (f *fixture) seedTeam(name string, manager *user.User) *team.Team {
	f.t.Helper()

	tm := &team.Team{Name: name, ManagerID: manager.ID}
	require.NoError(f.t, f.store.Teams().Save(f.ctx, tm))
	return tm
}

func (f *fixture) seedTask(title string, creator *user.User, tm *team.Team, assignee *user.User) *task.Task {
	f.t.Helper()

	tk := task.New(title, "", task.PriorityMedium, creator.ID)
	if tm != nil {
		tk.TeamID = int64Ptr(tm.ID)
	}
	if assignee != nil {
		tk.AssigneeID = int64Ptr(assignee.ID)
	}
	require.NoError(f.t, f.store.Tasks().Save(f.ctx, tk))
	return tk
}

func (f *fixture) reloadUser(id int64) *user.User {
	f.t.Helper()

	u, err := f.store.Users().FindByID(f.ctx, id)
	require.NoError(f.t, err)
	return u
}

func (f *fixture) reloadTask(id int64) *task.Task {
	f.t.Helper()

	tk, err := f.store.Tasks().FindByID(f.ctx, id)
	require.NoError(f.t, err)
	return tk
}

func taskIDs(views []ports.TaskView) []int64 {
	ids := make([]int64, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}
	return ids
}

func userIDs(views []ports.UserView) []int64 {
	ids := make([]int64, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}
	return ids
}

func registration(username, taxID, phone string) ports.RegisterInput {
	return ports.RegisterInput{
		Firstname:       "Newton",
		Lastname:        "Comer",
		Username:        username,
		Password:        "Secret#123",
		ConfirmPassword: "Secret#123",
		TaxID:           taxID,
		Phone:           phone,
	}
}
