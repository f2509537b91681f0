package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/obeck/ticklog/internal/logging"
	"github.com/obeck/ticklog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogbook(t *testing.T, folder string, clock *testutil.FakeClock) LogbookService {
	t.Helper()
	svc := NewLogbookService(func() (string, error) { return folder, nil }, logging.Discard())
	svc.(*logbookService).now = clock.Now
	return svc
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestLogbookAppend_CreatesFileWithHeader(t *testing.T) {
	folder := t.TempDir()
	clock := testutil.NewFakeClock(time.Date(2024, 1, 1, 9, 2, 30, 0, time.Local))
	svc := newTestLogbook(t, folder, clock)

	path, err := svc.Append(context.Background(), testutil.NewTestEntry())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(folder, "task_log_2024-01-01.csv"), path)
	lines := readLines(t, path)
	require.Len(t, lines, 2)
	assert.Equal(t, "Ticket No,Start Date,Timespent,Comment", lines[0])
	assert.Equal(t, `"ABC-1","01-Jan-2024 09:00:00","2m","Logs 0 hours and 2 mins"`, lines[1])
}

func TestLogbookAppend_HeaderWrittenOnce(t *testing.T) {
	folder := t.TempDir()
	clock := testutil.NewFakeClock(time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local))
	svc := newTestLogbook(t, folder, clock)

	ctx := context.Background()
	_, err := svc.Append(ctx, testutil.NewTestEntry(testutil.WithTicket("A-1")))
	require.NoError(t, err)
	path, err := svc.Append(ctx, testutil.NewTestEntry(testutil.WithTicket("A-2")))
	require.NoError(t, err)

	lines := readLines(t, path)
	require.Len(t, lines, 3, "header plus two rows")
	assert.Equal(t, "Ticket No,Start Date,Timespent,Comment", lines[0])
	assert.Contains(t, lines[1], `"A-1"`)
	assert.Contains(t, lines[2], `"A-2"`)
}

func TestLogbookAppend_FileNamedByAppendDate(t *testing.T) {
	folder := t.TempDir()
	// Session started before midnight; the append happens after.
	clock := testutil.NewFakeClock(time.Date(2024, 1, 2, 0, 0, 5, 0, time.Local))
	svc := newTestLogbook(t, folder, clock)

	entry := testutil.NewTestEntry()
	entry.StartDate = "01-Jan-2024 23:58:00"

	path, err := svc.Append(context.Background(), entry)
	require.NoError(t, err)
	assert.Equal(t, "task_log_2024-01-02.csv", filepath.Base(path),
		"midnight-spanning sessions log under the day they ended")
}

func TestLogbookAppend_EmbeddedCommaIsNotEscaped(t *testing.T) {
	folder := t.TempDir()
	clock := testutil.NewFakeClock(time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local))
	svc := newTestLogbook(t, folder, clock)

	entry := testutil.NewTestEntry(testutil.WithComment("fixed a, b, and c"))
	path, err := svc.Append(context.Background(), entry)
	require.NoError(t, err)

	lines := readLines(t, path)
	row := lines[1]
	// Known limitation of the file format: a naive comma split does not
	// round-trip a comment containing commas.
	assert.Greater(t, len(strings.Split(row, ",")), 4)
	assert.Contains(t, row, `"fixed a, b, and c"`)
}

func TestLogbookAppend_MissingFolder(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	clock := testutil.NewFakeClock(time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local))
	svc := newTestLogbook(t, missing, clock)

	_, err := svc.Append(context.Background(), testutil.NewTestEntry())
	assert.Error(t, err)
}

func TestLogbookAppend_FolderProviderFailure(t *testing.T) {
	clock := testutil.NewFakeClock(time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local))
	svc := NewLogbookService(func() (string, error) { return "", os.ErrPermission }, logging.Discard())
	svc.(*logbookService).now = clock.Now

	_, err := svc.Append(context.Background(), testutil.NewTestEntry())
	assert.ErrorIs(t, err, os.ErrPermission)
}
