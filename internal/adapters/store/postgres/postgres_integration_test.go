//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/store/postgres"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/team"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/config"
)

// Run with: go test -tags=integration ./internal/adapters/store/postgres/...
func newStore(t *testing.T) *postgres.Store {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("taskflow"),
		tcpostgres.WithUsername("taskflow"),
		tcpostgres.WithPassword("taskflow"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	store, err := postgres.Open(ctx, config.DatabaseConfig{
		Host:           host,
		Port:           port.Int(),
		User:           "taskflow",
		Password:       "taskflow",
		Name:           "taskflow",
		SSLMode:        "disable",
		MaxConns:       4,
		ConnectTimeout: 10 * time.Second,
		MigrateOnStart: true,
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: time.Second, HalfOpenLimit: 1},
	})
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store
}

func newUser(name, taxID, phone string, role user.Role) *user.User {
	return user.New(name, "Tester", name+"@example.com", "hash", taxID, phone, role)
}

func TestPostgresStore(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.HealthCheck(ctx))
	assert.Equal(t, "postgres", store.Name())

	manager := newUser("manager", "100000001", "5550000001", user.RoleManager)
	member := newUser("member", "100000002", "5550000002", user.RoleMember)
	require.NoError(t, store.Users().Save(ctx, manager))
	require.NoError(t, store.Users().Save(ctx, member))
	require.NotZero(t, manager.ID)
	require.False(t, manager.CreatedAt.IsZero())

	alpha := &team.Team{Name: "Alpha", ManagerID: manager.ID}
	require.NoError(t, store.Teams().Save(ctx, alpha))

	t.Run("round trip user", func(t *testing.T) {
		member.TeamID = &alpha.ID
		require.NoError(t, store.Users().Save(ctx, member))

		got, err := store.Users().FindByUUID(ctx, member.UUID)
		require.NoError(t, err)
		assert.Equal(t, member.Username, got.Username)
		assert.Equal(t, user.RoleMember, got.Role)
		require.NotNil(t, got.TeamID)
		assert.Equal(t, alpha.ID, *got.TeamID)
		assert.True(t, member.CreatedAt.Equal(got.CreatedAt))

		listed, err := store.Users().List(ctx, user.Filter{TeamID: &alpha.ID})
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, member.ID, listed[0].ID)
	})

	t.Run("unique keys map to domain codes", func(t *testing.T) {
		dup := newUser("member", "100000009", "5550000009", user.RoleMember)
		err := store.Users().Save(ctx, dup)
		require.ErrorIs(t, err, domain.ErrAlreadyExists)
		assert.Equal(t, "UserUsernameAlreadyExists", domain.CodeOf(err))

		dup = newUser("someone", "100000009", member.Phone, user.RoleMember)
		err = store.Users().Save(ctx, dup)
		assert.Equal(t, "UserPhoneAlreadyExists", domain.CodeOf(err))

		err = store.Teams().Save(ctx, &team.Team{Name: "Beta", ManagerID: manager.ID})
		assert.Equal(t, "TeamManagerAlreadyExists", domain.CodeOf(err))

		exists, err := store.Teams().ExistsByName(ctx, "alpha")
		require.NoError(t, err)
		assert.False(t, exists, "team names compare case-sensitively")
	})

	t.Run("not found", func(t *testing.T) {
		_, err := store.Users().FindByUUID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = store.Teams().FindByManager(ctx, member.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, store.Tasks().Delete(ctx, 9999), domain.ErrNotFound)
	})

	t.Run("task filters", func(t *testing.T) {
		open := task.New("Open", "", task.PriorityLow, manager.ID)
		open.AssigneeID = &member.ID
		open.TeamID = &alpha.ID
		done := task.New("Done", "", task.PriorityHigh, manager.ID)
		require.NoError(t, done.Complete())
		require.NoError(t, store.Tasks().Save(ctx, open))
		require.NoError(t, store.Tasks().Save(ctx, done))

		completed := true
		got, err := store.Tasks().List(ctx, task.Filter{Completed: &completed})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, done.ID, got[0].ID)

		got, err = store.Tasks().List(ctx, task.Filter{AssigneeID: &member.ID, TeamID: &alpha.ID})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, open.ID, got[0].ID)
	})

	t.Run("transaction rolls back on error", func(t *testing.T) {
		sentinel := errors.New("abort")
		err := store.WithinTx(ctx, func(txCtx context.Context) error {
			temp := newUser("temp", "100000010", "5550000010", user.RoleMember)
			if err := store.Users().Save(txCtx, temp); err != nil {
				return err
			}
			return store.WithinTx(txCtx, func(context.Context) error { return sentinel })
		})
		require.ErrorIs(t, err, sentinel)

		exists, err := store.Users().ExistsByUsername(ctx, "temp@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("domain errors do not trip the breaker", func(t *testing.T) {
		for range 10 {
			err := store.WithinTx(ctx, func(txCtx context.Context) error {
				_, err := store.Users().FindByID(txCtx, 9999)
				return err
			})
			require.ErrorIs(t, err, domain.ErrNotFound)
		}
		assert.NoError(t, store.HealthCheck(ctx))
	})

	t.Run("deleting a team detaches rows", func(t *testing.T) {
		require.NoError(t, store.Teams().Delete(ctx, alpha.ID))
		got, err := store.Users().FindByID(ctx, member.ID)
		require.NoError(t, err)
		assert.Nil(t, got.TeamID)
	})
}
