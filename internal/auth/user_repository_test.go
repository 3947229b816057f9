package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestUserRepository_Create(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	user := &User{
		Username:     "mike",
		Email:        "mike@example.com",
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
	}
	if err := repo.Create(testContext(t), user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if !strings.HasPrefix(user.ID, "usr-") {
		t.Errorf("generated ID = %q, want usr- prefix", user.ID)
	}
	if user.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set on create")
	}
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	seedTestUser(t, db, "mike", "mike@example.com")

	dup := &User{
		Username:     "other-mike",
		Email:        "mike@example.com",
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
	}
	err := repo.Create(testContext(t), dup)
	if !errors.Is(err, ErrDuplicateCredential) {
		t.Errorf("Create() error = %v, want ErrDuplicateCredential", err)
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	created := seedTestUser(t, db, "mike", "mike@example.com")

	got, err := repo.GetByEmail(testContext(t), "mike@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("ID = %q, want %q", got.ID, created.ID)
	}
	if got.Username != "mike" {
		t.Errorf("Username = %q, want %q", got.Username, "mike")
	}
	if got.PasswordHash == "" {
		t.Error("PasswordHash should be populated for credential checks")
	}
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByEmail(testContext(t), "nobody@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetByEmail() error = %v, want ErrUserNotFound", err)
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	created := seedTestUser(t, db, "mike", "mike@example.com")

	got, err := repo.GetByID(testContext(t), created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Email != "mike@example.com" {
		t.Errorf("Email = %q, want %q", got.Email, "mike@example.com")
	}
}

func TestUserRepository_Count(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	count, err := repo.Count(testContext(t))
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Count() = %d, want 0", count)
	}

	seedTestUser(t, db, "mike", "mike@example.com")
	seedTestUser(t, db, "emma", "emma@example.com")

	count, err = repo.Count(testContext(t))
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2", count)
	}
}
