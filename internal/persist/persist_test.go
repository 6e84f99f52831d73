package persist

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlankford/crewboard/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleSnapshot() domain.Snapshot {
	assignee := "e1"
	created := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	completed := time.Date(2025, 7, 3, 17, 45, 30, 0, time.UTC)

	return domain.Snapshot{
		Employees: []domain.Employee{
			{
				ID: "e1", Name: "Jessica", Email: "jessica@example.com",
				AccessLevel: domain.AccessEmployee, WorkloadScore: 58,
				Status: domain.StatusOptimal, Skills: []string{"go"},
				JoinedDate: time.Date(2023, 2, 14, 0, 0, 0, 0, time.UTC),
			},
		},
		Tasks: []domain.Task{
			{
				ID: "t1", Title: "Ship exports", Description: "CSV",
				Type: domain.TypeOpen, Priority: domain.PriorityMedium,
				EstimatedHours: 4, AssignedToID: &assignee,
				RequiredSkills: []string{"go"},
				Status:         domain.StatusCompleted, Progress: 100,
				CreatedAt: created, CompletedAt: &completed,
				Notes: []string{"09:30: kickoff"}, Files: []string{"spec.pdf"},
			},
		},
		Products: []domain.Product{
			{
				ID: "p1", Name: "Pulse", Status: domain.ProductLive,
				History: []domain.HistoryPoint{{Month: "Jul", Traffic: 1200, Profit: 900}},
				ServerLogs: []domain.ServerLog{
					{ID: "l1", Type: domain.LogOperational, Description: "nominal",
						Date: time.Date(2025, 7, 2, 3, 0, 0, 0, time.UTC)},
				},
			},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	original := sampleSnapshot()

	data, err := MarshalSnapshot(original)
	require.NoError(t, err)

	got, err := ParseSnapshot(data)
	require.NoError(t, err)

	assert.Equal(t, original, got)

	// Timestamps come back as the same instant.
	assert.True(t, got.Tasks[0].CompletedAt.Equal(*original.Tasks[0].CompletedAt))
	assert.True(t, got.Products[0].ServerLogs[0].Date.Equal(original.Products[0].ServerLogs[0].Date))
}

func TestFile_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	f := NewFile(path, testLogger())

	original := sampleSnapshot()
	require.NoError(t, f.Save(original))

	got, found, err := f.Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, original, got)
}

func TestFile_LoadMissing(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "absent.json"), testLogger())

	_, found, err := f.Load()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFile_LoadCorruptFailsClosed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	f := NewFile(path, testLogger())
	_, _, err := f.Load()

	var stateErr *domain.StateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, "load", stateErr.Op)
}

func TestParseSnapshot_LegacyWithoutVersion(t *testing.T) {
	data := []byte(`{
		"employees": [{"id": "e1", "name": "Sam", "email": "s@x.io", "role": "Dev",
			"accessLevel": "employee", "workloadScore": 10, "skills": [],
			"status": "OPTIMAL", "joinedDate": "2024-01-01T00:00:00Z"}],
		"tasks": [],
		"products": []
	}`)

	got, err := ParseSnapshot(data)
	require.NoError(t, err)
	require.Len(t, got.Employees, 1)
	assert.Equal(t, "Sam", got.Employees[0].Name)
}

func TestParseSnapshot_RejectsFutureVersion(t *testing.T) {
	data := []byte(`{"version": 99, "employees": [], "tasks": [], "products": []}`)

	_, err := ParseSnapshot(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than supported")
}

func TestFile_Remove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	f := NewFile(path, testLogger())

	require.NoError(t, f.Save(sampleSnapshot()))
	require.NoError(t, f.Remove())

	_, found, err := f.Load()
	require.NoError(t, err)
	assert.False(t, found)

	// Removing twice is fine.
	require.NoError(t, f.Remove())
}
