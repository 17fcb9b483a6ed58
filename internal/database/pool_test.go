package database

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/Codinho_Go/internal/testing/leaktest"
)

var (
	testDBConnString string
)

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()

	if !testing.Short() {
		ctx := context.Background()
		var connStr string
		connStr, terminate = setupContainer(ctx)
		testDBConnString = connStr
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}

	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	// Handle potential panics from testcontainers
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

func requireDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}
}

// Repositories only use pool-level Query/Exec, so every path must hand the
// connection back whether the statement succeeds or not
func TestPool_ReleasesConnections(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	pool, err := NewPool(ctx, testDBConnString, PoolOptions{MaxConns: 2, MaxIdle: time.Minute, MaxLife: 5 * time.Minute})
	require.NoError(t, err)
	defer pool.Close()

	tests := []struct {
		name    string
		run     func() error
		wantErr bool
	}{
		{"query row", func() error {
			var n int
			return pool.QueryRow(ctx, "SELECT $1::int", 7).Scan(&n)
		}, false},
		{"missing table", func() error {
			_, err := pool.Exec(ctx, "SELECT * FROM no_such_table")
			return err
		}, true},
		{"rows closed early", func() error {
			rows, err := pool.Query(ctx, "SELECT generate_series(1, 100)")
			if err != nil {
				return err
			}
			rows.Close()
			return rows.Err()
		}, false},
		{"cancelled", func() error {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := pool.Exec(cctx, "SELECT 1")
			return err
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// More iterations than MaxConns so a leak would block
			for i := 0; i < 5; i++ {
				err := tt.run()
				if tt.wantErr {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			}
			assert.Equal(t, int32(0), pool.Stat().AcquiredConns())
		})
	}
}

func TestPool_MaxConnsBoundsConcurrency(t *testing.T) {
	requireDB(t)

	const maxConns = 3
	pool, err := NewPool(context.Background(), testDBConnString, PoolOptions{MaxConns: maxConns})
	require.NoError(t, err)
	defer pool.Close()

	t.Run("exhausted pool times out", func(t *testing.T) {
		held := make([]*pgxpool.Conn, 0, maxConns)
		for i := 0; i < maxConns; i++ {
			conn, err := pool.Acquire(context.Background())
			require.NoError(t, err)
			held = append(held, conn)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()
		_, err := pool.Acquire(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		for _, conn := range held {
			conn.Release()
		}
	})

	t.Run("workers share the pool", func(t *testing.T) {
		snap := leaktest.Take(t)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				var got int
				if err := pool.QueryRow(context.Background(), "SELECT $1::int", id).Scan(&got); err != nil {
					t.Errorf("worker %d: %v", id, err)
					return
				}
				assert.LessOrEqual(t, pool.Stat().AcquiredConns(), int32(maxConns))
			}(i)
		}
		wg.Wait()

		assert.Equal(t, int32(0), pool.Stat().AcquiredConns())
		snap.Verify(2, leaktest.DefaultSettle) // pool health checker may still be running
	})
}

func TestNewPool_InvalidConnString(t *testing.T) {
	_, err := NewPool(context.Background(), "://not a url", DefaultPoolOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}

func TestDefaultPoolOptions(t *testing.T) {
	opts := DefaultPoolOptions()
	assert.Equal(t, DefaultMaxConnections, opts.MaxConns)
	assert.Equal(t, DefaultMaxConnIdleTime, opts.MaxIdle)
	assert.Equal(t, DefaultMaxConnLifetime, opts.MaxLife)
}

// TestMigrate_UpDown applies the embedded migrations, rolls them back and applies them again
func TestMigrate_UpDown(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	pool, err := NewPool(ctx, testDBConnString, PoolOptions{MaxConns: 2})
	require.NoError(t, err)
	defer pool.Close()

	tableExists := func(name string) bool {
		var exists bool
		err := pool.QueryRow(ctx, "SELECT to_regclass($1) IS NOT NULL", "public."+name).Scan(&exists)
		require.NoError(t, err)
		return exists
	}

	require.NoError(t, Migrate(ctx, pool, "up"))
	for _, table := range []string{"users", "katas", "test_cases", "solutions", "user_kv"} {
		assert.True(t, tableExists(table), table)
	}

	require.NoError(t, Migrate(ctx, pool, "down-to", "0"))
	assert.False(t, tableExists("katas"))

	require.NoError(t, Migrate(ctx, pool, "up"))
	assert.True(t, tableExists("katas"))
	require.NoError(t, Migrate(ctx, pool, "status"))
}
