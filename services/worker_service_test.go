package services

import (
	"fmt"
	"testing"

	"labourhub-server/models"
)

func TestWorkerServiceRegister(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkerService(db)

	t.Run("creates unverified offline worker with zero aggregates", func(t *testing.T) {
		worker, user, err := svc.Register(testRegistration())
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		if worker.IsVerified {
			t.Error("new worker must not be verified")
		}
		if worker.IsOnline {
			t.Error("new worker must not be online")
		}
		if worker.Rating != 0 {
			t.Errorf("Rating = %v, want 0", worker.Rating)
		}
		if worker.CompletedJobs != 0 {
			t.Errorf("CompletedJobs = %d, want 0", worker.CompletedJobs)
		}
		if user.Role != models.RoleWorker {
			t.Errorf("user role = %s, want worker", user.Role)
		}
		if worker.UserID != user.ID {
			t.Errorf("worker.UserID = %d, want %d", worker.UserID, user.ID)
		}
		if user.PasswordHash == "secret123" {
			t.Error("password must be stored hashed")
		}
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		req := testRegistration()
		req.Email = "missing@example.com"
		req.Name = ""
		req.Address = ""
		_, _, err := svc.Register(req)
		wantValidationError(t, err)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		req := testRegistration()
		req.Email = "price@example.com"
		req.PricePerDay = intPtr(0)
		_, _, err := svc.Register(req)
		wantValidationError(t, err)
	})

	t.Run("rejects negative experience", func(t *testing.T) {
		req := testRegistration()
		req.Email = "exp@example.com"
		req.Experience = intPtr(-1)
		_, _, err := svc.Register(req)
		wantValidationError(t, err)
	})

	t.Run("rejects short password", func(t *testing.T) {
		req := testRegistration()
		req.Email = "pw@example.com"
		req.Password = "abc"
		_, _, err := svc.Register(req)
		wantValidationError(t, err)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, _, err := svc.Register(testRegistration())
		wantPolicyError(t, err)
	})
}

func TestWorkerServiceApprove(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkerService(db)
	worker := registerWorker(t, svc)

	approved, err := svc.Approve(worker.ID)
	if err != nil {
		t.Fatalf("Approve failed: %v", err)
	}
	if !approved.IsVerified {
		t.Error("worker should be verified after approval")
	}

	t.Run("is idempotent", func(t *testing.T) {
		again, err := svc.Approve(worker.ID)
		if err != nil {
			t.Fatalf("second Approve failed: %v", err)
		}
		if !again.IsVerified {
			t.Error("worker should stay verified")
		}
	})

	t.Run("unknown worker", func(t *testing.T) {
		_, err := svc.Approve(9999)
		wantNotFoundError(t, err)
	})
}

func TestWorkerServiceReject(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkerService(db)
	worker := registerWorker(t, svc)

	if err := svc.Reject(worker.ID); err != nil {
		t.Fatalf("Reject failed: %v", err)
	}

	if _, err := svc.GetByID(worker.ID); err == nil {
		t.Fatal("worker should be deleted after rejection")
	}

	var userCount int64
	db.Model(&models.User{}).Where("id = ?", worker.UserID).Count(&userCount)
	if userCount != 0 {
		t.Error("linked user account should be deleted with the worker")
	}

	t.Run("unknown worker", func(t *testing.T) {
		wantNotFoundError(t, svc.Reject(9999))
	})
}

func TestWorkerServiceSetAvailability(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkerService(db)
	worker := registerWorker(t, svc)

	t.Run("unverified worker cannot go online", func(t *testing.T) {
		_, err := svc.SetAvailability(worker.ID, true)
		wantPolicyError(t, err)
	})

	t.Run("unverified worker may go offline", func(t *testing.T) {
		w, err := svc.SetAvailability(worker.ID, false)
		if err != nil {
			t.Fatalf("SetAvailability(false) failed: %v", err)
		}
		if w.IsOnline {
			t.Error("worker should be offline")
		}
	})

	t.Run("verified worker can go online", func(t *testing.T) {
		if _, err := svc.Approve(worker.ID); err != nil {
			t.Fatalf("Approve failed: %v", err)
		}
		w, err := svc.SetAvailability(worker.ID, true)
		if err != nil {
			t.Fatalf("SetAvailability(true) failed: %v", err)
		}
		if !w.IsOnline {
			t.Error("worker should be online")
		}
	})

	t.Run("unknown worker", func(t *testing.T) {
		_, err := svc.SetAvailability(9999, true)
		wantNotFoundError(t, err)
	})
}

func TestWorkerServiceListDiscoverable(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkerService(db)

	unverified := registerWorker(t, svc)

	plumberReq := testRegistration()
	plumberReq.Email = "sita@example.com"
	plumberReq.Name = "Sita Devi"
	plumberReq.Skill = string(models.Plumber)
	plumberReq.PricePerDay = intPtr(600)
	plumber, _, err := svc.Register(plumberReq)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := svc.Approve(plumber.ID); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	electricianReq := testRegistration()
	electricianReq.Email = "amit@example.com"
	electricianReq.Name = "Amit Singh"
	electricianReq.PricePerDay = intPtr(900)
	electrician, _, err := svc.Register(electricianReq)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := svc.Approve(electrician.ID); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	t.Run("never returns unverified workers", func(t *testing.T) {
		workers, err := svc.ListDiscoverable(WorkerFilter{})
		if err != nil {
			t.Fatalf("ListDiscoverable failed: %v", err)
		}
		if len(workers) != 2 {
			t.Fatalf("got %d workers, want 2", len(workers))
		}
		for _, w := range workers {
			if w.ID == unverified.ID {
				t.Error("unverified worker leaked into the directory")
			}
		}
	})

	t.Run("filters by skill", func(t *testing.T) {
		workers, err := svc.ListDiscoverable(WorkerFilter{Skill: string(models.Plumber)})
		if err != nil {
			t.Fatalf("ListDiscoverable failed: %v", err)
		}
		if len(workers) != 1 || workers[0].ID != plumber.ID {
			t.Fatalf("skill filter returned wrong workers: %+v", workers)
		}
	})

	t.Run("sorts by price ascending", func(t *testing.T) {
		workers, err := svc.ListDiscoverable(WorkerFilter{Sort: "price"})
		if err != nil {
			t.Fatalf("ListDiscoverable failed: %v", err)
		}
		if workers[0].ID != plumber.ID {
			t.Errorf("cheapest worker should come first, got %s", workers[0].Name)
		}
	})

	t.Run("admin list includes unverified", func(t *testing.T) {
		workers, err := svc.ListAll()
		if err != nil {
			t.Fatalf("ListAll failed: %v", err)
		}
		if len(workers) != 3 {
			t.Fatalf("got %d workers, want 3", len(workers))
		}
	})
}

func TestWorkerServiceAggregates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkerService(db)
	worker := registerVerifiedWorker(t, svc)

	seeded := 0
	seedBooking := func(status models.BookingStatus, rating *int) {
		t.Helper()
		seeded++
		b := models.Booking{
			Reference:    fmt.Sprintf("ref-%d", seeded),
			CustomerID:   1,
			CustomerName: "Asha",
			WorkerID:     worker.ID,
			WorkerName:   worker.Name,
			WorkerSkill:  worker.Skill,
			Date:         "2026-02-01",
			Address:      "Addr",
			Amount:       800,
			Status:       status,
			Rating:       rating,
		}
		if err := db.Create(&b).Error; err != nil {
			t.Fatalf("failed to seed booking: %v", err)
		}
	}

	t.Run("rating stays zero with no rated bookings", func(t *testing.T) {
		if err := svc.RecomputeRating(worker.ID); err != nil {
			t.Fatalf("RecomputeRating failed: %v", err)
		}
		w, _ := svc.GetByID(worker.ID)
		if w.Rating != 0 {
			t.Errorf("Rating = %v, want 0", w.Rating)
		}
	})

	seedBooking(models.BookingStatusCompleted, intPtr(5))
	seedBooking(models.BookingStatusCompleted, intPtr(4))
	seedBooking(models.BookingStatusCompleted, intPtr(4))
	seedBooking(models.BookingStatusCancelled, nil)

	t.Run("rating is the mean rounded to one decimal", func(t *testing.T) {
		if err := svc.RecomputeRating(worker.ID); err != nil {
			t.Fatalf("RecomputeRating failed: %v", err)
		}
		w, _ := svc.GetByID(worker.ID)
		// (5+4+4)/3 = 4.333... -> 4.3
		if w.Rating != 4.3 {
			t.Errorf("Rating = %v, want 4.3", w.Rating)
		}
	})

	t.Run("completed jobs recomputed from source, idempotent", func(t *testing.T) {
		if err := svc.RecordCompletion(worker.ID); err != nil {
			t.Fatalf("RecordCompletion failed: %v", err)
		}
		if err := svc.RecordCompletion(worker.ID); err != nil {
			t.Fatalf("second RecordCompletion failed: %v", err)
		}
		w, _ := svc.GetByID(worker.ID)
		if w.CompletedJobs != 3 {
			t.Errorf("CompletedJobs = %d, want 3", w.CompletedJobs)
		}
	})
}
