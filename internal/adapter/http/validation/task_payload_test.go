package validation_test

import (
	"testing"

	"tasktracker/internal/adapter/http/validation"
	"tasktracker/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func TestDecodeObject(t *testing.T) {
	raw, err := validation.DecodeObject(nil)
	require.NoError(t, err)
	require.Empty(t, raw)

	raw, err = validation.DecodeObject([]byte(`  {"title":"x"} `))
	require.NoError(t, err)
	require.Contains(t, raw, "title")

	for _, body := range []string{`{`, `[]`, `"title"`, `null`, `42`} {
		_, err := validation.DecodeObject([]byte(body))
		require.ErrorIs(t, err, validation.ErrInvalidTaskPayload, body)
	}
}

func TestBuildCreateTaskInput(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    domain.CreateTaskInput
		wantErr error
	}{
		{name: "title only", body: `{"title":"Buy milk"}`, want: domain.CreateTaskInput{Title: "Buy milk"}},
		{name: "with description", body: `{"title":"Buy milk","description":"2L"}`, want: domain.CreateTaskInput{Title: "Buy milk", Description: "2L"}},
		{name: "null description", body: `{"title":"Buy milk","description":null}`, want: domain.CreateTaskInput{Title: "Buy milk"}},
		{name: "status is ignored", body: `{"title":"Buy milk","status":"done"}`, want: domain.CreateTaskInput{Title: "Buy milk"}},
		{name: "missing title", body: `{}`, wantErr: domain.ErrTitleRequired},
		{name: "null title", body: `{"title":null}`, wantErr: domain.ErrTitleRequired},
		{name: "numeric title", body: `{"title":12}`, wantErr: domain.ErrTitleRequired},
		{name: "numeric description", body: `{"title":"x","description":12}`, wantErr: validation.ErrInvalidTaskPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := validation.DecodeObject([]byte(tt.body))
			require.NoError(t, err)

			got, err := validation.BuildCreateTaskInput(raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestBuildReplaceTaskInput(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    domain.ReplaceTaskInput
		wantErr error
	}{
		{
			name: "complete",
			body: `{"title":"Ship","description":"today","status":"doing"}`,
			want: domain.ReplaceTaskInput{Title: "Ship", Description: "today", Status: domain.TaskStatusDoing},
		},
		{
			name: "description defaults to empty",
			body: `{"title":"Ship","status":"done"}`,
			want: domain.ReplaceTaskInput{Title: "Ship", Status: domain.TaskStatusDone},
		},
		{name: "missing title checked before status", body: `{"status":"bogus"}`, wantErr: domain.ErrTitleRequired},
		{name: "missing status", body: `{"title":"Ship"}`, wantErr: domain.ErrInvalidStatus},
		{name: "unknown status", body: `{"title":"Ship","status":"blocked"}`, wantErr: domain.ErrInvalidStatus},
		{name: "status wrong case", body: `{"title":"Ship","status":"Done"}`, wantErr: domain.ErrInvalidStatus},
		{name: "status not a string", body: `{"title":"Ship","status":1}`, wantErr: domain.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := validation.DecodeObject([]byte(tt.body))
			require.NoError(t, err)

			got, err := validation.BuildReplaceTaskInput(raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatusFilter(t *testing.T) {
	filter, err := validation.ParseStatusFilter("")
	require.NoError(t, err)
	require.Nil(t, filter)

	filter, err = validation.ParseStatusFilter("doing")
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusDoing, *filter)

	_, err = validation.ParseStatusFilter("later")
	require.ErrorIs(t, err, domain.ErrInvalidStatusFilter)
}
