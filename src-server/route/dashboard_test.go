package route_test

import (
	"testing"
	"time"

	"huddle/src-server/model"
	"huddle/src-server/route"

	"github.com/stretchr/testify/require"
)

func TestRecent(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	attendees := make([]model.Attendee, 5)
	for i := range attendees {
		attendees[i] = model.Attendee{ID: int64(i + 1), CreatedAt: base.Add(time.Duration(i) * time.Hour)}
	}

	got := route.Recent(attendees, time.Time{}, 3)
	require.Len(t, got, 3)
	require.Equal(t, []int64{5, 4, 3}, []int64{got[0].ID, got[1].ID, got[2].ID})

	got = route.Recent(attendees, base.Add(3*time.Hour), 10)
	require.Len(t, got, 2)
	require.Equal(t, int64(5), got[0].ID)
	require.Equal(t, int64(4), got[1].ID)

	require.Empty(t, route.Recent(nil, time.Time{}, 10))
}

func TestStats(t *testing.T) {
	gid := int64(1)
	stats := route.Stats([]model.Attendee{
		{UserType: model.USER_TYPE_FOUNDER, Responses: model.Responses{Industry: model.INDUSTRY_SAAS, PreferredFormat: model.EVENT_FORMAT_DINNER}},
		{UserType: model.USER_TYPE_ADVISOR, GroupID: &gid, Responses: model.Responses{Industry: model.INDUSTRY_SAAS, PreferredFormat: model.EVENT_FORMAT_MENTORSHIP}},
	})
	require.Equal(t, 2, stats.Total)
	require.Equal(t, 1, stats.Unassigned)
	require.Equal(t, 1, stats.ByUserType[model.USER_TYPE_ADVISOR])
	require.Equal(t, 2, stats.ByIndustry[model.INDUSTRY_SAAS])
	require.Equal(t, 1, stats.ByFormat[model.EVENT_FORMAT_MENTORSHIP])

	empty := route.Stats(nil)
	require.Zero(t, empty.Total)
	require.NotNil(t, empty.ByIndustry)
}
