package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlankford/crewboard/internal/domain"
)

func productSnapshot() domain.Snapshot {
	snap := baseSnapshot()
	snap.Products = []domain.Product{
		{
			ID:     "p1",
			Name:   "Pulse",
			Status: domain.ProductLive,
			BugReports: []domain.BugReport{
				{ID: "b1", Title: "Login loops", Severity: domain.BugHigh, Status: domain.BugOpen},
			},
		},
	}
	return snap
}

func TestAddProductComment(t *testing.T) {
	e, _ := newTestEngine(productSnapshot())

	snap, err := e.AddProductComment("p1", "Jessica", "rollout complete")
	require.NoError(t, err)

	product, _ := snap.ProductByID("p1")
	require.Len(t, product.DevComments, 1)
	assert.Equal(t, "Jessica", product.DevComments[0].Author)
	assert.Equal(t, "rollout complete", product.DevComments[0].Text)
	assert.True(t, product.DevComments[0].Timestamp.Equal(fixedNow))
}

func TestAddProductComment_RejectsBlank(t *testing.T) {
	e, st := newTestEngine(productSnapshot())

	_, err := e.AddProductComment("p1", "Jessica", "  ")
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)

	product, _ := st.Current().ProductByID("p1")
	assert.Empty(t, product.DevComments)
}

func TestAddServerLog(t *testing.T) {
	e, _ := newTestEngine(productSnapshot())

	snap, err := e.AddServerLog("p1", domain.LogOutage, "db failover", 12)
	require.NoError(t, err)

	product, _ := snap.ProductByID("p1")
	require.Len(t, product.ServerLogs, 1)
	assert.Equal(t, domain.LogOutage, product.ServerLogs[0].Type)
	assert.Equal(t, 12, product.ServerLogs[0].DurationMinutes)
}

func TestAddServerLog_Validation(t *testing.T) {
	tests := []struct {
		name      string
		logType   domain.ServerLogType
		desc      string
		duration  int
		wantField string
	}{
		{"unknown type", "REBOOT", "x", 1, "logType"},
		{"blank description", domain.LogOutage, " ", 1, "description"},
		{"negative duration", domain.LogOutage, "x", -1, "durationMinutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(productSnapshot())

			_, err := e.AddServerLog("p1", tt.logType, tt.desc, tt.duration)
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestToggleBugStatus(t *testing.T) {
	e, _ := newTestEngine(productSnapshot())

	snap, err := e.ToggleBugStatus("p1", "b1")
	require.NoError(t, err)
	product, _ := snap.ProductByID("p1")
	assert.Equal(t, domain.BugResolved, product.BugReports[0].Status)

	snap, err = e.ToggleBugStatus("p1", "b1")
	require.NoError(t, err)
	product, _ = snap.ProductByID("p1")
	assert.Equal(t, domain.BugOpen, product.BugReports[0].Status)
}

func TestToggleBugStatus_Unknown(t *testing.T) {
	e, _ := newTestEngine(productSnapshot())

	_, err := e.ToggleBugStatus("p1", "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateProductDescription(t *testing.T) {
	e, _ := newTestEngine(productSnapshot())

	snap, err := e.UpdateProductDescription("p1", "Realtime team metrics")
	require.NoError(t, err)

	product, _ := snap.ProductByID("p1")
	assert.Equal(t, "Realtime team metrics", product.Description)
}
