package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bedaie/bedaie-web/storage"
	"github.com/bedaie/bedaie-web/storage/db"
)

const (
	// AbandonmentThreshold is the time after which a cart is considered abandoned (30 minutes)
	AbandonmentThreshold = 30 * time.Minute

	// DetectionInterval is how often we check for abandoned carts (5 minutes)
	DetectionInterval = 5 * time.Minute
)

type AbandonedCartDetector struct {
	storage  *storage.Storage
	ticker   *time.Ticker
	done     chan bool
	stopOnce sync.Once
	now      func() time.Time
}

func NewAbandonedCartDetector(storage *storage.Storage) *AbandonedCartDetector {
	return &AbandonedCartDetector{
		storage: storage,
		done:    make(chan bool),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Start begins the abandoned cart detection background job
func (d *AbandonedCartDetector) Start(ctx context.Context) {
	slog.Info("starting abandoned cart detector", "interval", DetectionInterval, "threshold", AbandonmentThreshold)

	// Run immediately on start
	d.run(ctx)

	d.ticker = time.NewTicker(DetectionInterval)

	go func() {
		for {
			select {
			case <-d.ticker.C:
				d.run(ctx)
			case <-ctx.Done():
				slog.Info("abandoned cart detector stopped", "reason", ctx.Err())
				return
			case <-d.done:
				slog.Info("abandoned cart detector stopped")
				return
			}
		}
	}()
}

// Stop stops the background job
func (d *AbandonedCartDetector) Stop() {
	d.stopOnce.Do(func() {
		if d.ticker != nil {
			d.ticker.Stop()
		}
		close(d.done)
	})
}

func (d *AbandonedCartDetector) run(ctx context.Context) {
	if _, err := d.DetectAbandonedCarts(ctx); err != nil {
		slog.Error("abandoned cart detection failed", "error", err)
	}
}

// DetectAbandonedCarts marks active carts with a customer email and no
// activity for AbandonmentThreshold as abandoned. The cart's last activity is
// recorded as the abandonment time. Returns the number of carts marked.
func (d *AbandonedCartDetector) DetectAbandonedCarts(ctx context.Context) (int, error) {
	slog.Debug("running abandoned cart detection")

	cutoff := d.now().Add(-AbandonmentThreshold)

	carts, err := d.storage.Queries.ListActiveCartsWithEmail(ctx)
	if err != nil {
		return 0, err
	}

	var newAbandonedCount int
	for _, cart := range carts {
		if !cart.UpdatedAt.Before(cutoff) {
			continue
		}

		updated, err := d.storage.Queries.MarkCartAbandoned(ctx, db.MarkCartAbandonedParams{
			AbandonedAt: cart.UpdatedAt.UTC(),
			ID:          cart.ID,
		})
		if err != nil {
			slog.Error("failed to mark cart as abandoned", "error", err, "cart_id", cart.ID)
			continue
		}
		if updated > 0 {
			newAbandonedCount++
			slog.Info("detected new abandoned cart", "cart_id", cart.ID, "funnel_id", cart.FunnelID, "last_activity", cart.UpdatedAt)
		}
	}

	if newAbandonedCount > 0 {
		slog.Info("abandoned cart detection complete", "processed", len(carts), "new_abandoned", newAbandonedCount)
	} else {
		slog.Debug("abandoned cart detection complete", "processed", len(carts), "new_abandoned", newAbandonedCount)
	}

	return newAbandonedCount, nil
}
