package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/trackline/internal/config"
	"github.com/alexanderramin/trackline/internal/domain"
	"github.com/alexanderramin/trackline/internal/repository"
	"github.com/alexanderramin/trackline/internal/service"
	"github.com/alexanderramin/trackline/internal/testutil"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTrackerRepo(db)

	return &App{
		Trackers:      service.NewTrackerService(repo),
		Layouts:       service.NewLayoutService(repo),
		Import:        service.NewImportService(repo),
		Config:        &config.Config{},
		IsInteractive: func() bool { return false },
	}
}

// executeCmd runs a cobra command tree with the given args.
func executeCmd(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	root.SilenceUsage = true
	return root.Execute()
}

func seedTracker(t *testing.T, app *App, title string, start, end time.Time) *domain.Tracker {
	t.Helper()
	tr := testutil.NewTestTracker(title, testutil.WithDates(start, end))
	require.NoError(t, app.Trackers.Create(context.Background(), tr))
	return tr
}

func TestTrackerAddCmd(t *testing.T) {
	app := testApp(t)

	err := executeCmd(t, app, "tracker", "add",
		"--title", "API gateway",
		"--type", "project",
		"--priority", "high",
		"--start", "2025-07-01",
		"--end", "2025-07-20",
	)
	require.NoError(t, err)

	trackers, err := app.Trackers.List(context.Background())
	require.NoError(t, err)
	require.Len(t, trackers, 1)
	assert.Equal(t, "API gateway", trackers[0].Title)
	assert.Equal(t, domain.TrackerProject, trackers[0].Type)
	assert.Equal(t, domain.PriorityHigh, trackers[0].Priority)
}

func TestTrackerAddCmd_RejectsBadDate(t *testing.T) {
	app := testApp(t)

	err := executeCmd(t, app, "tracker", "add",
		"--title", "Bad", "--start", "07/01/2025", "--end", "2025-07-20")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid start date")
}

func TestTrackerListCmd_Empty(t *testing.T) {
	app := testApp(t)
	assert.NoError(t, executeCmd(t, app, "tracker", "list"))
}

func TestTrackerMoveCmd(t *testing.T) {
	app := testApp(t)
	tr := seedTracker(t, app, "Movable",
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC))

	err := executeCmd(t, app, "tracker", "move", tr.ID[:8],
		"--start", "2025-08-01", "--end", "2025-08-10")
	require.NoError(t, err)

	fetched, err := app.Trackers.GetByID(context.Background(), tr.ID)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), fetched.StartDate)
}

func TestTrackerRemoveCmd(t *testing.T) {
	app := testApp(t)
	tr := seedTracker(t, app, "Doomed",
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC))

	require.NoError(t, executeCmd(t, app, "tracker", "remove", tr.ID))

	_, err := app.Trackers.GetByID(context.Background(), tr.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTrackerRemoveCmd_UnknownID(t *testing.T) {
	app := testApp(t)
	err := executeCmd(t, app, "tracker", "remove", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tracker not found")
}

func TestResolveTrackerID_AmbiguousPrefix(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	a := testutil.NewTestTracker("A", testutil.WithID("abc-1"))
	b := testutil.NewTestTracker("B", testutil.WithID("abc-2"))
	require.NoError(t, app.Trackers.Create(ctx, a))
	require.NoError(t, app.Trackers.Create(ctx, b))

	_, err := resolveTrackerID(ctx, app, "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")

	id, err := resolveTrackerID(ctx, app, "abc-1")
	require.NoError(t, err)
	assert.Equal(t, "abc-1", id)
}

func TestLayoutCmd(t *testing.T) {
	app := testApp(t)
	seedTracker(t, app, "One",
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC))
	seedTracker(t, app, "Two",
		time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC))

	assert.NoError(t, executeCmd(t, app, "layout", "--passes"))
}

func TestLayoutCmd_RangeRequiresBothBounds(t *testing.T) {
	app := testApp(t)
	err := executeCmd(t, app, "layout", "--from", "2025-07-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be given together")
}

func TestExportCmd(t *testing.T) {
	app := testApp(t)
	seedTracker(t, app, "Exported",
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC))

	out := filepath.Join(t.TempDir(), "timeline.svg")
	require.NoError(t, executeCmd(t, app, "export", "--out", out, "--mode", "weekly"))
	assert.FileExists(t, out)
}

func TestExportCmd_EmptyStoreFails(t *testing.T) {
	app := testApp(t)
	out := filepath.Join(t.TempDir(), "timeline.svg")
	err := executeCmd(t, app, "export", "--out", out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to export")
}

func TestExportCmd_UnknownMode(t *testing.T) {
	app := testApp(t)
	seedTracker(t, app, "X",
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC))

	err := executeCmd(t, app, "export", "--mode", "hourly", "--out", filepath.Join(t.TempDir(), "t.svg"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown view mode")
}
