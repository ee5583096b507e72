package jobs

import (
	"log"
	"time"

	"gorm.io/gorm"

	"labourhub-server/models"
	"labourhub-server/services"
)

// ReconcileJob periodically re-derives every worker's completedJobs and
// rating from the bookings table. Both aggregates are recomputed from
// source, so a pass that overlaps a live request settles on the same
// values. The job never touches booking statuses.
type ReconcileJob struct {
	db       *gorm.DB
	workers  *services.WorkerService
	interval time.Duration
	stopChan chan bool
}

// NewReconcileJob creates a new aggregate reconciliation job
func NewReconcileJob(db *gorm.DB) *ReconcileJob {
	return &ReconcileJob{
		db:       db,
		workers:  services.NewWorkerService(db),
		interval: 5 * time.Minute,
		stopChan: make(chan bool),
	}
}

// Start begins the reconciliation job
func (j *ReconcileJob) Start() {
	go j.run()
	log.Println("🚀 Aggregate reconciliation job started")
}

// Stop stops the reconciliation job
func (j *ReconcileJob) Stop() {
	j.stopChan <- true
	log.Println("🛑 Aggregate reconciliation job stopped")
}

func (j *ReconcileJob) run() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.Reconcile()
		case <-j.stopChan:
			return
		}
	}
}

// Reconcile runs one pass over all workers
func (j *ReconcileJob) Reconcile() {
	var workerIDs []uint
	if err := j.db.Model(&models.Worker{}).Pluck("id", &workerIDs).Error; err != nil {
		log.Printf("❌ Failed to list workers for reconciliation: %v", err)
		return
	}

	for _, id := range workerIDs {
		if err := j.workers.RecordCompletion(id); err != nil {
			log.Printf("❌ Failed to reconcile completed jobs for worker %d: %v", id, err)
		}
		if err := j.workers.RecomputeRating(id); err != nil {
			log.Printf("❌ Failed to reconcile rating for worker %d: %v", id, err)
		}
	}
}
