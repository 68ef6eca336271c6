package app

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/jbeshir/candidate-job-matching/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testCtx() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func TestMustGetEnvAsStrings(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "single", value: "auth0", want: []string{"auth0"}},
		{name: "trims_whitespace", value: "auth0, trigger_token ", want: []string{"auth0", "trigger_token"}},
		{name: "empty", value: "", want: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_STRINGS", tt.value)
			assert.Equal(t, tt.want, MustGetEnvAsStrings(testCtx(), "TEST_STRINGS"))
		})
	}
}

func TestMustGetEnv_Parses(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_FLOAT", "0.25")
	t.Setenv("TEST_BOOL", "TRUE")
	t.Setenv("TEST_DURATION", "90s")

	ctx := testCtx()
	assert.Equal(t, 42, MustGetEnvAsInt(ctx, "TEST_INT"))
	assert.InDelta(t, 0.25, MustGetEnvAsFloat(ctx, "TEST_FLOAT"), 1e-9)
	assert.True(t, MustGetEnvAsBoolean(ctx, "TEST_BOOL"))
	assert.Equal(t, 90*time.Second, MustGetEnvAsDuration(ctx, "TEST_DURATION"))
}

func TestMustGetEnv_Panics(t *testing.T) {
	t.Setenv("TEST_BAD_INT", "forty-two")
	t.Setenv("TEST_BAD_FLOAT", "high")
	t.Setenv("TEST_BAD_BOOL", "yes")

	ctx := testCtx()
	assert.Panics(t, func() { MustGetEnvAsString(ctx, "TEST_DEFINITELY_UNSET_VARIABLE") })
	assert.Panics(t, func() { MustGetEnvAsInt(ctx, "TEST_BAD_INT") })
	assert.Panics(t, func() { MustGetEnvAsFloat(ctx, "TEST_BAD_FLOAT") })
	assert.Panics(t, func() { MustGetEnvAsBoolean(ctx, "TEST_BAD_BOOL") })
}
