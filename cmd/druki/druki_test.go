package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tbourn/sejm-prints-backend/internal/domain"
	"github.com/tbourn/sejm-prints-backend/internal/repo"
	"github.com/tbourn/sejm-prints-backend/internal/services"
	"github.com/tbourn/sejm-prints-backend/internal/services/mocks"
)

func execute(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONFIG_FILE", "")
	var out bytes.Buffer
	root := newRootCmdFor(a)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--env-file", ""}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, &app{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "druki dev (commit: none, built: unknown)\n", out)
}

func TestClassify_DeliveredToday(t *testing.T) {
	out, err := execute(t, &app{}, "classify", "Rządowy projekt ustawy o zmianie ustawy o podatku dochodowym")
	require.NoError(t, err)
	assert.Contains(t, out, "type:      rządowy_projekt_ustawy\n")
	assert.Contains(t, out, "status:    nowe\n")
	assert.Contains(t, out, "priority:  wysoki\n")
	assert.Contains(t, out, "summary:   Nowelizacja istniejącej ustawy\n")
}

func TestClassify_DeliveredFlagAndJSON(t *testing.T) {
	out, err := execute(t, &app{}, "classify", "--delivered", "2001-05-10", "--json", "Sprawozdanie Komisji Zdrowia")
	require.NoError(t, err)

	var e domain.EnrichedPrint
	require.NoError(t, json.Unmarshal([]byte(out), &e))
	assert.Equal(t, domain.TypeReport, e.Type)
	assert.Equal(t, domain.StatusArchived, e.Status)
	assert.Equal(t, "10.05.2001", e.FormattedDate)
	assert.Equal(t, "Sprawozdanie komisji sejmowej", e.Summary)
}

func TestClassify_BadInput(t *testing.T) {
	_, err := execute(t, &app{}, "classify", "--delivered", "10.05.2001", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --delivered")

	_, err = execute(t, &app{}, "classify")
	require.Error(t, err)
}

func TestPrints_ListsPageFromSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockPrintSource(ctrl)
	now := time.Now().UTC()
	src.EXPECT().Term().Return(10).AnyTimes()
	src.EXPECT().ListPrints(gomock.Any()).Return([]domain.Print{
		{Number: "10", Title: "Poselski projekt ustawy o ochronie zwierząt", DeliveryDate: now.Add(-72 * time.Hour)},
		{Number: "11", Title: "Projekt uchwały w sprawie upamiętnienia", DeliveryDate: now.Add(-24 * time.Hour)},
		{Number: "12", Title: "Informacja Rady Ministrów", DeliveryDate: now.Add(-400 * 24 * time.Hour)},
	}, nil).Times(1)

	out, err := execute(t, &app{source: src}, "prints", "--status", "nowe", "--limit", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "11 "), lines[0])
	assert.Contains(t, lines[0], "projekt_uchwały")
	assert.Equal(t, "1 of 2 (offset 0)", lines[1])
}

func TestPrints_InvalidFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockPrintSource(ctrl)
	src.EXPECT().Term().Return(10).AnyTimes()

	_, err := execute(t, &app{source: src}, "prints", "--type", "ustawa-budżetowa")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrInvalidFilter)
}

func TestVote_LocalIdentityRoundTrip(t *testing.T) {
	dsn := "file:cli_" + uuid.NewString() + "?mode=memory&cache=shared"
	// Keep the shared in-memory database alive between command runs.
	keep, err := repo.OpenSQLite(dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := keep.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	t.Setenv("DB_PATH", dsn)

	out, err := execute(t, &app{}, "vote", "--device", "laptop", "512", "like")
	require.NoError(t, err)
	assert.Equal(t, "created 512: likes=1 dislikes=0 total=1\n", out)

	out, err = execute(t, &app{}, "vote", "--device", "laptop", "512", "DISLIKE")
	require.NoError(t, err)
	assert.Equal(t, "updated 512: likes=0 dislikes=1 total=1\n", out)

	out, err = execute(t, &app{}, "vote", "--device", "phone", "512", "like")
	require.NoError(t, err)
	assert.Equal(t, "created 512: likes=1 dislikes=1 total=2\n", out)

	out, err = execute(t, &app{}, "vote", "--device", "laptop", "512", "remove")
	require.NoError(t, err)
	assert.Equal(t, "removed 512: likes=1 dislikes=0 total=1\n", out)

	_, err = execute(t, &app{}, "vote", "--device", "laptop", "512", "maybe")
	require.Error(t, err)
}
