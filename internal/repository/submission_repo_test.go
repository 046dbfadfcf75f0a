package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/safedocs/backend/internal/model"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db error: %v", err)
	}
	if err := db.AutoMigrate(
		&model.SafetyTemplate{}, &model.Submission{}, &model.Attachment{},
		&model.AuditLog{}, &model.Job{}, &model.Person{}, &model.Location{}, &model.Category{},
	); err != nil {
		t.Fatalf("migrate error: %v", err)
	}
	return db
}

func TestSubmissionRepositoryRoundTrip(t *testing.T) {
	repo := NewSubmissionRepository(newTestDB(t))

	sub := &model.Submission{
		Ref:          "ref-001",
		Kind:         "TOOLBOX_MEETING",
		Title:        "晨会记录",
		DocumentText: "TOOLBOX MEETING RECORD\nDate: 2026-01-05",
		ValueMap:     `{"tbm_date":"2026-01-05"}`,
		Status:       "draft",
	}
	if err := repo.Create(sub); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	loaded, err := repo.GetByRef("ref-001")
	if err != nil {
		t.Fatalf("GetByRef error: %v", err)
	}
	if loaded.DocumentText != sub.DocumentText {
		t.Fatalf("document text mismatch: %q", loaded.DocumentText)
	}
	if loaded.ValueMap != sub.ValueMap {
		t.Fatalf("value map mismatch: %q", loaded.ValueMap)
	}

	if err := repo.UpdateStatus(loaded.ID, "submitted"); err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	reloaded, err := repo.Get(loaded.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if reloaded.Status != "submitted" {
		t.Fatalf("expected submitted, got %s", reloaded.Status)
	}
}

func TestSubmissionRepositoryNotFound(t *testing.T) {
	repo := NewSubmissionRepository(newTestDB(t))

	if _, err := repo.GetByRef("missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.Get(999); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSubmissionRepositoryListByKind(t *testing.T) {
	repo := NewSubmissionRepository(newTestDB(t))

	for i, kind := range []string{"TOOLBOX_MEETING", "PERMIT_TO_WORK", "TOOLBOX_MEETING"} {
		sub := &model.Submission{Ref: string(rune('a' + i)), Kind: kind, Status: "draft"}
		if err := repo.Create(sub); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	subs, err := repo.ListByKind("TOOLBOX_MEETING")
	if err != nil {
		t.Fatalf("ListByKind error: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(subs))
	}
}

func TestRosterRepositoryPeople(t *testing.T) {
	db := newTestDB(t)
	repo := NewRosterRepository(db)

	db.Create(&model.Person{Name: "Tan Ah Kow", IdentNo: "S1234567A", Company: "ACME", Active: true})
	db.Create(&model.Person{Name: "Lim Beng", IdentNo: "S7654321B", Company: "ACME", Active: false})

	people, err := repo.People()
	if err != nil {
		t.Fatalf("People error: %v", err)
	}
	if len(people) != 1 {
		t.Fatalf("expected 1 active person, got %d", len(people))
	}
	if _, err := repo.Person(people[0].ID); err != nil {
		t.Fatalf("Person error: %v", err)
	}
	if _, err := repo.Person(999); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
