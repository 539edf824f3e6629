package model_test

import (
	"errors"
	"testing"

	"huddle/src-server/model"

	"github.com/stretchr/testify/require"
)

func validAttendee() model.AttendeeInput {
	return model.AttendeeInput{
		UserType: model.USER_TYPE_INVESTOR,
		Name:     "David Kim",
		Email:    "david.kim@example.com",
		Responses: model.Responses{
			Industry:        model.INDUSTRY_HEALTHTECH,
			PreferredFormat: model.EVENT_FORMAT_ROUNDTABLE,
		},
	}
}

func fields(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *model.ValidationError
	require.True(t, errors.As(err, &ve), "want *model.ValidationError, got %v", err)
	require.ErrorIs(t, err, model.ErrValidation)
	out := make(map[string]string, len(ve.Details))
	for _, d := range ve.Details {
		out[d.Field] = d.Rule
	}
	return out
}

func TestValidateAttendeeInput(t *testing.T) {
	require.NoError(t, model.ValidateAttendeeInput(validAttendee()))

	founder := validAttendee()
	founder.UserType = model.USER_TYPE_FOUNDER
	founder.Responses.StartupStage = model.STARTUP_STAGE_IDEA
	founder.Responses.Challenge = model.CHALLENGE_FUNDRAISING
	require.NoError(t, model.ValidateAttendeeInput(founder))

	tests := []struct {
		name  string
		edit  func(in *model.AttendeeInput)
		field string
		rule  string
	}{
		{"missing user type", func(in *model.AttendeeInput) { in.UserType = "" }, "userType", "required"},
		{"unknown user type", func(in *model.AttendeeInput) { in.UserType = "student" }, "userType", "enum"},
		{"missing name", func(in *model.AttendeeInput) { in.Name = "" }, "name", "required"},
		{"blank name", func(in *model.AttendeeInput) { in.Name = "   " }, "name", "notblank"},
		{"missing email", func(in *model.AttendeeInput) { in.Email = "" }, "email", "required"},
		{"bad email", func(in *model.AttendeeInput) { in.Email = "not-an-email" }, "email", "email"},
		{"missing industry", func(in *model.AttendeeInput) { in.Responses.Industry = "" }, "responses.industry", "required"},
		{"unknown industry", func(in *model.AttendeeInput) { in.Responses.Industry = "crypto" }, "responses.industry", "enum"},
		{"missing format", func(in *model.AttendeeInput) { in.Responses.PreferredFormat = "" }, "responses.preferredFormat", "required"},
		{"unknown format", func(in *model.AttendeeInput) { in.Responses.PreferredFormat = "picnic" }, "responses.preferredFormat", "enum"},
		{"unknown stage", func(in *model.AttendeeInput) { in.Responses.StartupStage = "ipo" }, "responses.startupStage", "enum"},
		{"unknown challenge", func(in *model.AttendeeInput) { in.Responses.Challenge = "sleep" }, "responses.challenge", "enum"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validAttendee()
			tt.edit(&in)
			got := fields(t, model.ValidateAttendeeInput(in))
			require.Equal(t, tt.rule, got[tt.field], "details: %v", got)
		})
	}
}

func TestValidationErrorMessages(t *testing.T) {
	in := validAttendee()
	in.Responses.PreferredFormat = "picnic"
	err := model.ValidateAttendeeInput(in)

	var ve *model.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Details, 1)
	require.Equal(t, "must be one of: dinner, roundtable, mentorship", ve.Details[0].Message)
	require.Contains(t, err.Error(), "responses.preferredFormat")
}

func TestValidateGroupInput(t *testing.T) {
	require.NoError(t, model.ValidateGroupInput(model.GroupInput{Name: "Saas Dinner", Format: model.EVENT_FORMAT_DINNER}))

	got := fields(t, model.ValidateGroupInput(model.GroupInput{Name: "", Format: "brunch"}))
	require.Equal(t, "required", got["name"])
	require.Equal(t, "enum", got["format"])
}

func TestErrorKinds(t *testing.T) {
	nf := &model.NotFoundError{Kind: "group", ID: 5}
	require.ErrorIs(t, nf, model.ErrNotFound)
	require.Equal(t, "group 5 not found", nf.Error())

	locked := &model.GroupLockedError{GroupID: 2}
	require.ErrorIs(t, locked, model.ErrGroupLocked)
	require.NotErrorIs(t, locked, model.ErrNotFound)
}
