package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormsqlite "gorm.io/driver/sqlite"
	_ "modernc.org/sqlite"

	jwtsvc "roomrental/internal/pkg/jwt"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&User{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return NewService(NewRepository(db), jwtsvc.New("test-secret", time.Hour))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterRequest{
		Name:          "Asel",
		Email:         "Asel@Example.com",
		Password:      "secret123",
		ContactNumber: "+7 700 123 4567",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if len(u.ID) != 24 {
		t.Fatalf("expected 24-char hex id, got %q", u.ID)
	}
	if u.Email != "asel@example.com" {
		t.Fatalf("expected lowercased email, got %q", u.Email)
	}
	if u.Role != RoleUser {
		t.Fatalf("expected default role %q, got %q", RoleUser, u.Role)
	}
	if u.PasswordHash == "secret123" {
		t.Fatal("password stored in plain text")
	}

	result, err := svc.Login(ctx, LoginRequest{Email: "asel@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a token")
	}
	if result.User.ID != u.ID {
		t.Fatalf("expected user %s, got %s", u.ID, result.User.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	req := RegisterRequest{Name: "Asel", Email: "asel@example.com", Password: "secret123"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}
	if _, err := svc.Register(ctx, req); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginFailures(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{Name: "Asel", Email: "asel@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if _, err := svc.Login(ctx, LoginRequest{Email: "asel@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "secret123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
