package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"labourhub-server/database"
	"labourhub-server/models"
	"labourhub-server/types"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Named in-memory database so every test gets its own isolated store
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func intPtr(v int) *int {
	return &v
}

func testRegistration() models.WorkerRegisterRequest {
	return models.WorkerRegisterRequest{
		Name:        "Ravi Kumar",
		Email:       "ravi@example.com",
		Password:    "secret123",
		Phone:       "+911234567890",
		Skill:       string(models.Electrician),
		Experience:  intPtr(5),
		PricePerDay: intPtr(800),
		Address:     "12 MG Road, Pune",
	}
}

func registerWorker(t *testing.T, svc *WorkerService) *models.Worker {
	t.Helper()
	worker, _, err := svc.Register(testRegistration())
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return worker
}

func registerVerifiedWorker(t *testing.T, svc *WorkerService) *models.Worker {
	t.Helper()
	worker := registerWorker(t, svc)
	if _, err := svc.Approve(worker.ID); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}
	worker.IsVerified = true
	return worker
}

func wantValidationError(t *testing.T, err error) {
	t.Helper()
	var target *types.ValidationError
	if !errors.As(err, &target) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func wantPolicyError(t *testing.T, err error) {
	t.Helper()
	var target *types.PolicyError
	if !errors.As(err, &target) {
		t.Fatalf("expected PolicyError, got %v", err)
	}
}

func wantNotFoundError(t *testing.T, err error) {
	t.Helper()
	var target *types.NotFoundError
	if !errors.As(err, &target) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func wantInvalidTransitionError(t *testing.T, err error) {
	t.Helper()
	var target *types.InvalidTransitionError
	if !errors.As(err, &target) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
}
