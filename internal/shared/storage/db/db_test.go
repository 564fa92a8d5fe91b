package db

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOpen points openDB at sqlmock connections and resets the singleton.
func stubOpen(t *testing.T, open func() (*sql.DB, error)) {
	t.Helper()
	prev := openDB
	openDB = func(name, dsn string) (*sql.DB, error) { return open() }
	resetSingleton()
	t.Cleanup(func() {
		openDB = prev
		resetSingleton()
	})
}

func resetSingleton() {
	singletonMu.Lock()
	singletonDB = nil
	singletonInFly = false
	singletonMu.Unlock()
}

func mockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	return database, mock
}

func TestGetSingletonSharesOneConnection(t *testing.T) {
	var opens int32
	database, _ := mockDB(t)
	stubOpen(t, func() (*sql.DB, error) {
		atomic.AddInt32(&opens, 1)
		return database, nil
	})

	var wg sync.WaitGroup
	got := make([]*sql.DB, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			db, err := GetSingleton(context.Background(), "postgres://ignored", DefaultMigrateOptions())
			assert.NoError(t, err)
			got[i] = db
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&opens))
	for _, db := range got {
		assert.Same(t, database, db)
	}
}

func TestGetSingletonFailureReturnsNoHandle(t *testing.T) {
	var opens int32
	database, _ := mockDB(t)
	stubOpen(t, func() (*sql.DB, error) {
		if atomic.AddInt32(&opens, 1) == 1 {
			return nil, errors.New("connection refused")
		}
		return database, nil
	})

	db, err := GetSingleton(context.Background(), "postgres://ignored", DefaultMigrateOptions())
	require.Error(t, err)
	assert.Nil(t, db)

	db, err = GetSingleton(context.Background(), "postgres://ignored", DefaultMigrateOptions())
	require.NoError(t, err)
	assert.Same(t, database, db)
}

func TestConnectClosesOnPingFailure(t *testing.T) {
	database, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing().WillReturnError(errors.New("no route to host"))
	mock.ExpectClose()
	stubOpen(t, func() (*sql.DB, error) { return database, nil })

	_, err = Connect(context.Background(), "postgres://ignored", DefaultServerOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping database")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOptionsFromEnvAppliesOverrides(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("DB_MAX_IDLE_CONNS", "3")
	t.Setenv("DB_CONN_MAX_LIFETIME", "20m")
	t.Setenv("DB_CONN_MAX_IDLE_TIME", "45s")
	t.Setenv("DB_PING_TIMEOUT", "1s")

	opts := OptionsFromEnv(DefaultServerOptions())
	assert.Equal(t, 7, opts.MaxOpenConns)
	assert.Equal(t, 3, opts.MaxIdleConns)
	assert.Equal(t, 20*time.Minute, opts.ConnMaxLifetime)
	assert.Equal(t, 45*time.Second, opts.ConnMaxIdleTime)
	assert.Equal(t, time.Second, opts.PingTimeout)

	database, _ := mockDB(t)
	stubOpen(t, func() (*sql.DB, error) { return database, nil })
	db, err := Connect(context.Background(), "postgres://ignored", opts)
	require.NoError(t, err)
	assert.Equal(t, 7, db.Stats().MaxOpenConnections)
}

func TestWithTxCommits(t *testing.T) {
	database, mock := mockDB(t)
	defer database.Close()
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM business_recommendations").
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := WithTx(context.Background(), database, func(tx *sql.Tx) error {
		_, err := tx.Exec("DELETE FROM business_recommendations WHERE user_id = $1", "user-1")
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxRollsBackOnError(t *testing.T) {
	database, mock := mockDB(t)
	defer database.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("insert failed")
	err := WithTx(context.Background(), database, func(tx *sql.Tx) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxReportsBeginAndCommitFailures(t *testing.T) {
	database, mock := mockDB(t)
	defer database.Close()

	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))
	called := false
	err := WithTx(context.Background(), database, func(tx *sql.Tx) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin tx")
	assert.False(t, called)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))
	err = WithTx(context.Background(), database, func(tx *sql.Tx) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit tx")
	assert.NoError(t, mock.ExpectationsWereMet())
}
