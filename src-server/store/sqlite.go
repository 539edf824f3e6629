package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"huddle/src-server/model"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"
)

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore keeps attendees and groups in two tables; attendee responses
// live in a TEXT column as JSON.
type SQLiteStore struct {
	db  *bun.DB
	now func() time.Time
}

// OpenSQLite opens (and creates if needed) the database at path. ":memory:"
// gives a private in-memory database pinned to a single connection.
func OpenSQLite(ctx context.Context, path string) (*bun.DB, error) {
	dsn := path + "?mode=rwc"
	inMemory := path == ":memory:"
	if inMemory {
		dsn = path
	}

	rawDB, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, fmt.Errorf("OpenSQLite: %w", err)
	}
	if inMemory {
		rawDB.SetMaxOpenConns(1)
	}
	rawDB.SetMaxIdleConns(8)

	db := bun.NewDB(rawDB, sqlitedialect.New())
	db.AddQueryHook(bundebug.NewQueryHook(
		bundebug.WithVerbose(true),
		bundebug.FromEnv("BUNDEBUG"),
	))

	if err := model.CreateSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("OpenSQLite: %w", err)
	}
	return db, nil
}

func NewSQLiteStore(db *bun.DB) *SQLiteStore {
	return &SQLiteStore{
		db:  db,
		// sqlite keeps created_at to the microsecond
		now: func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

func (s *SQLiteStore) DB() *bun.DB {
	return s.db
}

func (s *SQLiteStore) CreateAttendee(ctx context.Context, in model.AttendeeInput) (model.Attendee, error) {
	if err := model.ValidateAttendeeInput(in); err != nil {
		return model.Attendee{}, err
	}

	a := in.NewAttendee()
	a.CreatedAt = s.now()
	if _, err := s.db.NewInsert().
		Model(&a).
		Returning("id").
		Exec(ctx); err != nil {
		return model.Attendee{}, fmt.Errorf("(*SQLiteStore).CreateAttendee: %w", err)
	}
	return a, nil
}

func (s *SQLiteStore) ListAttendees(ctx context.Context) ([]model.Attendee, error) {
	attendees := make([]model.Attendee, 0)
	if err := s.db.NewSelect().
		Model(&attendees).
		Order("id ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("(*SQLiteStore).ListAttendees: %w", err)
	}
	return attendees, nil
}

func (s *SQLiteStore) GetAttendee(ctx context.Context, id int64) (model.Attendee, error) {
	a := new(model.Attendee)
	err := s.db.NewSelect().
		Model(a).
		Where("id = ?", id).
		Scan(ctx)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return model.Attendee{}, &model.NotFoundError{Kind: "attendee", ID: id}
	case err != nil:
		return model.Attendee{}, fmt.Errorf("(*SQLiteStore).GetAttendee: %w", err)
	}
	return *a, nil
}

func (s *SQLiteStore) CreateGroup(ctx context.Context, in model.GroupInput) (model.Group, error) {
	if err := model.ValidateGroupInput(in); err != nil {
		return model.Group{}, err
	}

	g := in.NewGroup()
	if _, err := s.db.NewInsert().
		Model(&g).
		Returning("id").
		Exec(ctx); err != nil {
		return model.Group{}, fmt.Errorf("(*SQLiteStore).CreateGroup: %w", err)
	}
	return g, nil
}

func (s *SQLiteStore) ListGroups(ctx context.Context) ([]model.Group, error) {
	groups := make([]model.Group, 0)
	if err := s.db.NewSelect().
		Model(&groups).
		Order("id ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("(*SQLiteStore).ListGroups: %w", err)
	}
	return groups, nil
}

func (s *SQLiteStore) GetGroup(ctx context.Context, id int64) (model.Group, error) {
	g := new(model.Group)
	err := s.db.NewSelect().
		Model(g).
		Where("id = ?", id).
		Scan(ctx)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return model.Group{}, &model.NotFoundError{Kind: "group", ID: id}
	case err != nil:
		return model.Group{}, fmt.Errorf("(*SQLiteStore).GetGroup: %w", err)
	}
	return *g, nil
}

func (s *SQLiteStore) LockGroup(ctx context.Context, id int64) error {
	// sqlite counts matched rows, so relocking still reports 1
	res, err := s.db.NewUpdate().
		Model((*model.Group)(nil)).
		Set("locked = ?", true).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("(*SQLiteStore).LockGroup: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("(*SQLiteStore).LockGroup: %w", err)
	}
	if n == 0 {
		return &model.NotFoundError{Kind: "group", ID: id}
	}
	return nil
}

func (s *SQLiteStore) AssignAttendee(ctx context.Context, attendeeID, groupID int64) error {
	return s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*model.Attendee)(nil)).
			Where("id = ?", attendeeID).
			Exists(ctx)
		switch {
		case err != nil:
			return fmt.Errorf("(*SQLiteStore).AssignAttendee: %w", err)
		case !exists:
			return &model.NotFoundError{Kind: "attendee", ID: attendeeID}
		}

		exists, err = tx.NewSelect().
			Model((*model.Group)(nil)).
			Where("id = ?", groupID).
			Exists(ctx)
		switch {
		case err != nil:
			return fmt.Errorf("(*SQLiteStore).AssignAttendee: %w", err)
		case !exists:
			return &model.NotFoundError{Kind: "group", ID: groupID}
		}

		if _, err := tx.NewUpdate().
			Model((*model.Attendee)(nil)).
			Set("group_id = ?", groupID).
			Where("id = ?", attendeeID).
			Exec(ctx); err != nil {
			return fmt.Errorf("(*SQLiteStore).AssignAttendee: %w", err)
		}
		return nil
	})
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
