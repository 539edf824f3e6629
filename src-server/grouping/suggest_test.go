package grouping_test

import (
	"fmt"
	"testing"

	"huddle/src-server/grouping"
	"huddle/src-server/model"

	"github.com/stretchr/testify/require"
)

func attendee(id int64, industry model.Industry, format model.EventFormat) model.Attendee {
	return model.Attendee{
		ID:       id,
		UserType: model.USER_TYPE_FOUNDER,
		Name:     fmt.Sprintf("attendee %d", id),
		Email:    fmt.Sprintf("a%d@example.com", id),
		Responses: model.Responses{
			Industry:        industry,
			PreferredFormat: format,
		},
	}
}

func repeat(n int, industry model.Industry, format model.EventFormat) []model.Attendee {
	out := make([]model.Attendee, n)
	for i := range out {
		out[i] = attendee(int64(i+1), industry, format)
	}
	return out
}

func TestSuggestEmpty(t *testing.T) {
	require.Empty(t, grouping.Suggest(nil))
	require.Empty(t, grouping.Suggest([]model.Attendee{}))
	require.Empty(t, grouping.Partition(nil))
}

func TestSuggestNineSaasDinner(t *testing.T) {
	attendees := repeat(9, model.INDUSTRY_SAAS, model.EVENT_FORMAT_DINNER)

	groups := grouping.Suggest(attendees)
	require.Len(t, groups, 2)
	for _, g := range groups {
		require.Equal(t, "Saas Dinner", g.Name)
		require.Equal(t, model.EVENT_FORMAT_DINNER, g.Format)
		require.False(t, g.Locked)
		require.Zero(t, g.ID)
	}

	chunks := grouping.Partition(attendees)
	require.Len(t, chunks, 2)
	require.Len(t, chunks[0].Attendees, 8)
	require.Len(t, chunks[1].Attendees, 1)
	require.Equal(t, int64(9), chunks[1].Attendees[0].ID)
}

func TestChunkSizes(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{1, []int{1}},
		{7, []int{7}},
		{8, []int{8}},
		{16, []int{8, 8}},
		{17, []int{8, 8, 1}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			chunks := grouping.Partition(repeat(tt.n, model.INDUSTRY_FINTECH, model.EVENT_FORMAT_ROUNDTABLE))
			got := make([]int, len(chunks))
			for i, c := range chunks {
				got[i] = len(c.Attendees)
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPartitionOrder(t *testing.T) {
	attendees := []model.Attendee{
		attendee(1, model.INDUSTRY_FINTECH, model.EVENT_FORMAT_ROUNDTABLE),
		attendee(2, model.INDUSTRY_SAAS, model.EVENT_FORMAT_DINNER),
		attendee(3, model.INDUSTRY_SAAS, model.EVENT_FORMAT_ROUNDTABLE),
		attendee(4, model.INDUSTRY_FINTECH, model.EVENT_FORMAT_ROUNDTABLE),
		attendee(5, model.INDUSTRY_HEALTHTECH, model.EVENT_FORMAT_DINNER),
		attendee(6, model.INDUSTRY_SAAS, model.EVENT_FORMAT_DINNER),
	}

	chunks := grouping.Partition(attendees)

	type key struct {
		format   model.EventFormat
		industry model.Industry
		ids      []int64
	}
	got := make([]key, len(chunks))
	for i, c := range chunks {
		got[i] = key{c.Format, c.Industry, c.AttendeeIDs()}
	}
	require.Equal(t, []key{
		{model.EVENT_FORMAT_ROUNDTABLE, model.INDUSTRY_FINTECH, []int64{1, 4}},
		{model.EVENT_FORMAT_ROUNDTABLE, model.INDUSTRY_SAAS, []int64{3}},
		{model.EVENT_FORMAT_DINNER, model.INDUSTRY_SAAS, []int64{2, 6}},
		{model.EVENT_FORMAT_DINNER, model.INDUSTRY_HEALTHTECH, []int64{5}},
	}, got)

	names := make([]string, 0)
	for _, g := range grouping.Suggest(attendees) {
		names = append(names, g.Name)
	}
	require.Equal(t, []string{
		"Fintech Roundtable",
		"Saas Roundtable",
		"Saas Dinner",
		"Healthtech Dinner",
	}, names)
}

func TestGroupName(t *testing.T) {
	tests := []struct {
		industry model.Industry
		format   model.EventFormat
		want     string
	}{
		{model.INDUSTRY_SAAS, model.EVENT_FORMAT_DINNER, "Saas Dinner"},
		{model.INDUSTRY_FINTECH, model.EVENT_FORMAT_ROUNDTABLE, "Fintech Roundtable"},
		{model.INDUSTRY_HEALTHTECH, model.EVENT_FORMAT_MENTORSHIP, "Healthtech Mentorship"},
		{model.INDUSTRY_ECOMMERCE, model.EVENT_FORMAT_DINNER, "Ecommerce Dinner"},
		// underscore doesn't start a new word
		{model.INDUSTRY_AI_ML, model.EVENT_FORMAT_MENTORSHIP, "Ai_ml Mentorship"},
		{model.INDUSTRY_AI_ML, model.EVENT_FORMAT_ROUNDTABLE, "Ai_ml Roundtable"},
		{model.INDUSTRY_OTHER, model.EVENT_FORMAT_ROUNDTABLE, "Other Roundtable"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, grouping.GroupName(tt.industry, tt.format))
		})
	}
}

func mixed() []model.Attendee {
	industries := model.Industries()
	formats := model.EventFormats()
	out := make([]model.Attendee, 0, 100)
	for i := 0; i < 100; i++ {
		// spread unevenly so some buckets overflow
		industry := industries[(i*i)%len(industries)]
		format := formats[(i/3)%len(formats)]
		out = append(out, attendee(int64(i+1), industry, format))
	}
	return out
}

func TestSuggestDeterministic(t *testing.T) {
	attendees := mixed()
	require.Equal(t, grouping.Suggest(attendees), grouping.Suggest(attendees))
	require.Equal(t, grouping.Partition(attendees), grouping.Partition(attendees))
}

func TestPartitionInvariants(t *testing.T) {
	attendees := mixed()
	chunks := grouping.Partition(attendees)

	type pair struct {
		format   model.EventFormat
		industry model.Industry
	}
	want := make(map[pair]int)
	for _, a := range attendees {
		want[pair{a.Responses.PreferredFormat, a.Responses.Industry}]++
	}

	got := make(map[pair]int)
	for _, c := range chunks {
		require.GreaterOrEqual(t, len(c.Attendees), 1)
		require.LessOrEqual(t, len(c.Attendees), grouping.MaxGroupSize)
		for _, a := range c.Attendees {
			require.Equal(t, c.Format, a.Responses.PreferredFormat)
			require.Equal(t, c.Industry, a.Responses.Industry)
		}
		require.Equal(t, c.Format, c.Group().Format)
		got[pair{c.Format, c.Industry}] += len(c.Attendees)
	}
	require.Equal(t, want, got)
}

func TestPartitionDoesNotAliasChunks(t *testing.T) {
	chunks := grouping.Partition(repeat(10, model.INDUSTRY_OTHER, model.EVENT_FORMAT_MENTORSHIP))
	require.Len(t, chunks, 2)

	chunks[0].Attendees = append(chunks[0].Attendees, attendee(99, model.INDUSTRY_OTHER, model.EVENT_FORMAT_MENTORSHIP))
	require.Equal(t, []int64{9, 10}, chunks[1].AttendeeIDs())
}
