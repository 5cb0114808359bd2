package roomtype

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormsqlite "gorm.io/driver/sqlite"
	_ "modernc.org/sqlite"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:roomtype_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&RoomType{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return NewService(NewRepository(db))
}

func TestCreateDefaultsAndTrims(t *testing.T) {
	svc := setupTestService(t)

	created, err := svc.Create(context.Background(), "  Studio  ", "")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.TypeName != "Studio" {
		t.Fatalf("expected trimmed name %q, got %q", "Studio", created.TypeName)
	}
	if created.Status != StatusActive {
		t.Fatalf("expected default status active, got %q", created.Status)
	}
	if len(created.ID) != 24 {
		t.Fatalf("expected 24-char hex id, got %q", created.ID)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "   ", ""); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if _, err := svc.Create(ctx, "A", ""); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName for 1-char name, got %v", err)
	}
	if _, err := svc.Create(ctx, strings.Repeat("x", 51), ""); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName for 51-char name, got %v", err)
	}
	if _, err := svc.Create(ctx, "Studio", "archived"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestCreateDuplicateNameConflicts(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "Studio", ""); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}
	_, err := svc.Create(ctx, "Studio", "")
	if !errors.Is(err, ErrNameTaken) {
		t.Fatalf("expected ErrNameTaken on duplicate name, got %v", err)
	}
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Studio", "")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// Status only: name stays.
	updated, err := svc.Update(ctx, created.ID, UpdateInput{Status: StatusInactive})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.TypeName != "Studio" || updated.Status != StatusInactive {
		t.Fatalf("unexpected record after status update: %+v", updated)
	}

	// Name only: status stays.
	updated, err = svc.Update(ctx, created.ID, UpdateInput{TypeName: "Shared Studio"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.TypeName != "Shared Studio" || updated.Status != StatusInactive {
		t.Fatalf("unexpected record after name update: %+v", updated)
	}

	if _, err := svc.Update(ctx, created.ID, UpdateInput{TypeName: "x"}); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
	if _, err := svc.Update(ctx, "507f1f77bcf86cd799439011", UpdateInput{Status: StatusActive}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Single Room", "")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestListReturnsAll(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Studio", "Single Room", "Shared Room"} {
		if _, err := svc.Create(ctx, name, ""); err != nil {
			t.Fatalf("Create(%q) returned error: %v", name, err)
		}
	}

	types, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(types) != 3 {
		t.Fatalf("expected 3 room types, got %d", len(types))
	}
}
