package model_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"huddle/src-server/model"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func TestResponsesValueScan(t *testing.T) {
	tests := []model.Responses{
		{
			Industry:        model.INDUSTRY_SAAS,
			PreferredFormat: model.EVENT_FORMAT_DINNER,
		},
		{
			Industry:        model.INDUSTRY_AI_ML,
			PreferredFormat: model.EVENT_FORMAT_MENTORSHIP,
			StartupStage:    model.STARTUP_STAGE_SERIES_A_PLUS,
			Challenge:       model.CHALLENGE_NEW_MARKETS,
		},
	}
	for _, want := range tests {
		v, err := want.Value()
		require.NoError(t, err)
		require.IsType(t, "", v)

		var fromString model.Responses
		require.NoError(t, fromString.Scan(v))
		require.Equal(t, want, fromString)

		var fromBytes model.Responses
		require.NoError(t, fromBytes.Scan([]byte(v.(string))))
		require.Equal(t, want, fromBytes)
	}
}

func TestResponsesValueOmitsEmptyOptionals(t *testing.T) {
	v, err := model.Responses{
		Industry:        model.INDUSTRY_OTHER,
		PreferredFormat: model.EVENT_FORMAT_ROUNDTABLE,
	}.Value()
	require.NoError(t, err)
	require.JSONEq(t, `{"industry":"other","preferredFormat":"roundtable"}`, v.(string))
}

func TestResponsesScanRejects(t *testing.T) {
	var r model.Responses
	require.Error(t, r.Scan(nil))
	require.Error(t, r.Scan(42))
	require.Error(t, r.Scan("{not json"))
}

func TestAttendee(t *testing.T) {
	// init db
	db, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	bundb := bun.NewDB(db, sqlitedialect.New())
	defer bundb.Close()

	// init tables
	require.NoError(t, model.CreateSchema(context.Background(), bundb))

	attendeeModel := model.Attendee{
		UserType: model.USER_TYPE_FOUNDER,
		Name:     "Sarah Chen",
		Email:    "sarah.chen@example.com",
		Responses: model.Responses{
			Industry:        model.INDUSTRY_FINTECH,
			PreferredFormat: model.EVENT_FORMAT_DINNER,
			StartupStage:    model.STARTUP_STAGE_MVP,
			Challenge:       model.CHALLENGE_HIRING,
		},
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	_, err = bundb.NewInsert().Model(&attendeeModel).Returning("id").Exec(context.Background())
	require.NoError(t, err)
	require.NotZero(t, attendeeModel.ID)

	// case: responses are stored as a JSON string
	func() {
		var raw string
		require.NoError(t, bundb.NewSelect().
			Model((*model.Attendee)(nil)).
			Column("responses").
			Where("id = ?", attendeeModel.ID).
			Scan(context.Background(), &raw))
		require.JSONEq(t,
			`{"industry":"fintech","preferredFormat":"dinner","startupStage":"mvp","challenge":"hiring"}`,
			raw)
	}()

	// case: responses come back deep-equal, group is still null
	func() {
		got := new(model.Attendee)
		require.NoError(t, bundb.NewSelect().
			Model(got).
			Where("id = ?", attendeeModel.ID).
			Scan(context.Background()))
		require.Equal(t, attendeeModel.Responses, got.Responses)
		require.Nil(t, got.GroupID)
		require.True(t, got.CreatedAt.Equal(attendeeModel.CreatedAt))
	}()
}

func TestInGroup(t *testing.T) {
	gid := int64(3)
	a := model.Attendee{GroupID: &gid}
	require.True(t, a.InGroup(3))
	require.False(t, a.InGroup(4))
	require.False(t, (&model.Attendee{}).InGroup(3))
}
