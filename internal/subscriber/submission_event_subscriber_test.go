package subscriber

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/safedocs/backend/internal/eventbus"
	"github.com/safedocs/backend/internal/model"
	"github.com/safedocs/backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.AuditLog{}))
	return db
}

func TestSubmissionEventsBecomeAuditRows(t *testing.T) {
	db := newTestDB(t)
	auditRepo := repository.NewAuditRepository(db)
	bus := eventbus.NewSubmissionEventBus()
	NewSubmissionEventSubscriber(auditRepo).Register(bus)

	ctx := context.Background()
	events := []eventbus.SubmissionEvent{
		{Type: eventbus.SubmissionEventSaved, SubmissionID: 7, Ref: "r-7", Kind: "TOOLBOX_MEETING", Status: "draft"},
		{Type: eventbus.SubmissionEventStatusChanged, SubmissionID: 7, Ref: "r-7", Status: "submitted"},
		{Type: eventbus.SubmissionEventExported, SubmissionID: 7, Ref: "r-7", ArtifactRef: "att://r-7.pdf"},
	}
	for _, e := range events {
		require.NoError(t, bus.Publish(ctx, e.Type, e))
	}

	rows, err := auditRepo.GetBySubmission(7)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Saved", rows[0].Action)
	assert.Equal(t, "StatusChanged", rows[1].Action)
	assert.Equal(t, "Exported", rows[2].Action)
	assert.Contains(t, rows[2].Detail, "att://r-7.pdf")
}
