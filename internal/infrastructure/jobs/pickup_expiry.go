package jobs

import (
	"context"
	"log"
	"time"

	"ecoscrap.backend/internal/domain/entities"
)

// pickupExpiryStore is the slice of the pickup repository this job needs
type pickupExpiryStore interface {
	GetStaleScheduled(ctx context.Context, cutoff time.Time, limit int) ([]*entities.Pickup, error)
	CancelBatch(ctx context.Context, ids []string) error
}

// PickupExpiryJob cancels scheduled pickups whose date passed without the
// pickup ever being completed.
type PickupExpiryJob struct {
	repo     pickupExpiryStore
	grace    time.Duration
	interval time.Duration
	stop     chan struct{}
}

func NewPickupExpiryJob(repo pickupExpiryStore, grace, interval time.Duration) *PickupExpiryJob {
	return &PickupExpiryJob{
		repo:     repo,
		grace:    grace,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *PickupExpiryJob) Start(ctx context.Context) {
	log.Println("🕐 Starting pickup expiry job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Pickup expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Pickup expiry job stopped")
			return
		case <-ticker.C:
			j.processStalePickups(ctx)
		}
	}
}

func (j *PickupExpiryJob) Stop() {
	close(j.stop)
}

func (j *PickupExpiryJob) processStalePickups(ctx context.Context) {
	cutoff := time.Now().Add(-j.grace)

	stale, err := j.repo.GetStaleScheduled(ctx, cutoff, 100)
	if err != nil {
		log.Printf("❌ Error fetching stale pickups: %v", err)
		return
	}

	if len(stale) == 0 {
		return
	}

	log.Printf("🔄 Cancelling %d stale pickups...", len(stale))

	var ids []string
	for _, p := range stale {
		ids = append(ids, p.ID)
	}

	if err := j.repo.CancelBatch(ctx, ids); err != nil {
		log.Printf("❌ Error cancelling stale pickups: %v", err)
		return
	}

	log.Printf("✅ Cancelled %d stale pickups", len(stale))
}
