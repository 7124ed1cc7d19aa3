package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const weeklyICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//test//EN
BEGIN:VEVENT
UID:gym@example.com
DTSTART:20250303T180000Z
DTEND:20250303T190000Z
RRULE:FREQ=WEEKLY;COUNT=4
SUMMARY:Gym
END:VEVENT
END:VCALENDAR
`

func writeICS(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calendar.ics")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestImportService_ImportICS_PersistsOccurrences(t *testing.T) {
	kv := setupKV()
	svc := NewImportService(kv)
	ctx := context.Background()

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	result, err := svc.ImportICS(ctx, writeICS(t, weeklyICS), from, to)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Imported)
	assert.Equal(t, 0, result.Skipped)

	appts, err := NewAppointmentService(kv).List(ctx)
	require.NoError(t, err)
	assert.Len(t, appts, 4)
}

func TestImportService_ImportICS_ReimportSkipsDuplicates(t *testing.T) {
	kv := setupKV()
	svc := NewImportService(kv)
	ctx := context.Background()
	path := writeICS(t, weeklyICS)

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	_, err := svc.ImportICS(ctx, path, from, to)
	require.NoError(t, err)

	second, err := svc.ImportICS(ctx, path, from, to)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Imported)
	assert.Equal(t, 4, second.Skipped)
}

func TestImportService_ImportICS_MissingFile(t *testing.T) {
	svc := NewImportService(setupKV())

	_, err := svc.ImportICS(context.Background(), "/nonexistent.ics", time.Now(), time.Now())
	assert.Error(t, err)
}
