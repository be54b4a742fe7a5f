package checkers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

type boolRow struct {
	v   bool
	err error
}

func (r boolRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*bool) = r.v
	return nil
}

type fakeDB struct {
	ping  func(ctx context.Context) error
	row   boolRow
	query string
}

func (f *fakeDB) Ping(ctx context.Context) error {
	if f.ping == nil {
		return nil
	}
	return f.ping(ctx)
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	f.query = sql
	return f.row
}

func TestPostgresCheckerHealthy(t *testing.T) {
	db := &fakeDB{row: boolRow{v: true}}
	c := NewPostgresChecker(db, 0)

	assert.Equal(t, "postgres", c.Name())
	assert.NoError(t, c.Check(context.Background()))
	assert.Contains(t, db.query, "to_regclass('preferences')")
}

func TestPostgresCheckerFailures(t *testing.T) {
	down := errors.New("connection refused")
	scanErr := errors.New("permission denied")

	cases := map[string]struct {
		db   *fakeDB
		want error
	}{
		"ping fails":    {&fakeDB{ping: func(context.Context) error { return down }}, down},
		"query fails":   {&fakeDB{row: boolRow{err: scanErr}}, scanErr},
		"table missing": {&fakeDB{row: boolRow{v: false}}, errNoPreferencesTable},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := NewPostgresChecker(tc.db, time.Second).Check(context.Background())
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPostgresCheckerAppliesTimeout(t *testing.T) {
	db := &fakeDB{ping: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}}

	assert.ErrorIs(t, NewPostgresChecker(db, 10*time.Millisecond).Check(context.Background()), context.DeadlineExceeded)
}
