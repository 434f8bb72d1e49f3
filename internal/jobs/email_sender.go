package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bedaie/bedaie-web/internal/email"
	"github.com/bedaie/bedaie-web/storage"
	"github.com/bedaie/bedaie-web/storage/db"
	"github.com/bedaie/bedaie-web/views/helpers"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"
)

const (
	// EmailSendInterval is how often we check for emails to send (15 minutes)
	EmailSendInterval = 15 * time.Minute

	// MinEmailGap keeps a late-running sender from sending the whole sequence at once
	MinEmailGap = 12 * time.Hour

	// MaxConcurrentSends bounds concurrent deliveries per run
	MaxConcurrentSends = 4

	defaultCustomerName = "there"
)

// RecoveryEmailStage is one email of the recovery sequence, due Delay after
// the cart was abandoned.
type RecoveryEmailStage struct {
	EmailNumber int
	Delay       time.Duration
}

// RecoveryEmailStages is the recovery sequence in send order.
var RecoveryEmailStages = []RecoveryEmailStage{
	{EmailNumber: 1, Delay: time.Hour},
	{EmailNumber: 2, Delay: 24 * time.Hour},
	{EmailNumber: 3, Delay: 48 * time.Hour},
}

type AbandonedCartEmailSender struct {
	storage      *storage.Storage
	emailService *email.Service
	baseURL      string
	ticker       *time.Ticker
	done         chan bool
	stopOnce     sync.Once
	now          func() time.Time
}

func NewAbandonedCartEmailSender(storage *storage.Storage, emailService *email.Service, baseURL string) *AbandonedCartEmailSender {
	return &AbandonedCartEmailSender{
		storage:      storage,
		emailService: emailService,
		baseURL:      strings.TrimRight(baseURL, "/"),
		done:         make(chan bool),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Start begins the email sending background job
func (s *AbandonedCartEmailSender) Start(ctx context.Context) {
	slog.Info("starting abandoned cart email sender", "interval", EmailSendInterval)

	// Run immediately on start
	s.SendRecoveryEmails(ctx)

	s.ticker = time.NewTicker(EmailSendInterval)

	go func() {
		for {
			select {
			case <-s.ticker.C:
				s.SendRecoveryEmails(ctx)
			case <-ctx.Done():
				slog.Info("abandoned cart email sender stopped", "reason", ctx.Err())
				return
			case <-s.done:
				slog.Info("abandoned cart email sender stopped")
				return
			}
		}
	}()
}

// Stop stops the background job
func (s *AbandonedCartEmailSender) Stop() {
	s.stopOnce.Do(func() {
		if s.ticker != nil {
			s.ticker.Stop()
		}
		close(s.done)
	})
}

// dueStage returns the next stage for a cart that has sent sentCount emails,
// or false when the sequence is finished or the next email is not due yet.
func dueStage(sentCount int64, abandonedAt, now time.Time) (RecoveryEmailStage, bool) {
	if sentCount < 0 || sentCount >= int64(len(RecoveryEmailStages)) {
		return RecoveryEmailStage{}, false
	}
	stage := RecoveryEmailStages[sentCount]
	if now.Sub(abandonedAt) < stage.Delay {
		return RecoveryEmailStage{}, false
	}
	return stage, true
}

// SendRecoveryEmails sends every recovery email that is due and returns how
// many were delivered. Failures are recorded and retried on the next run.
func (s *AbandonedCartEmailSender) SendRecoveryEmails(ctx context.Context) int {
	slog.Debug("checking for recovery emails to send")

	now := s.now()

	carts, err := s.storage.Queries.ListAbandonedCartsForRecovery(ctx)
	if err != nil {
		slog.Error("failed to get carts needing recovery email", "error", err)
		return 0
	}

	var sent atomic.Int64
	sentByStage := make([]atomic.Int64, len(RecoveryEmailStages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxConcurrentSends)

	for _, row := range carts {
		stage, ok := dueStage(row.SentCount, row.Cart.AbandonedAt.Time, now)
		if !ok {
			continue
		}

		g.Go(func() error {
			if s.sendStage(gctx, row, stage, now) {
				sent.Add(1)
				sentByStage[stage.EmailNumber-1].Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	total := int(sent.Load())
	if total > 0 {
		slog.Info("recovery emails sent",
			"email_1", sentByStage[0].Load(),
			"email_2", sentByStage[1].Load(),
			"email_3", sentByStage[2].Load(),
			"total", total,
		)
	} else {
		slog.Debug("no recovery emails to send")
	}

	return total
}

// sendStage sends one stage to one cart and records the attempt.
func (s *AbandonedCartEmailSender) sendStage(ctx context.Context, row db.ListAbandonedCartsForRecoveryRow, stage RecoveryEmailStage, now time.Time) bool {
	cart := row.Cart

	history, err := s.storage.Queries.ListRecoveryEmailsByCart(ctx, cart.ID)
	if err != nil {
		slog.Error("failed to get recovery email history", "cart_id", cart.ID, "error", err)
		return false
	}
	for _, previous := range history {
		if previous.Status != db.RecoveryEmailSent {
			continue
		}
		if previous.EmailNumber == int64(stage.EmailNumber) {
			return false
		}
		if now.Sub(previous.SentAt) < MinEmailGap {
			return false
		}
	}

	tracking := uuid.NewString()
	data, err := s.buildContext(ctx, row, stage, tracking, now)
	if err != nil {
		slog.Error("failed to build recovery email", "cart_id", cart.ID, "email_number", stage.EmailNumber, "error", err)
		return false
	}

	rendered, sendErr := s.emailService.SendCartAbandonment(ctx, cart.CustomerEmail.String, data)
	if rendered == nil {
		slog.Error("failed to render recovery email", "cart_id", cart.ID, "email_number", stage.EmailNumber, "error", sendErr)
		return false
	}

	status := db.RecoveryEmailSent
	if sendErr != nil {
		status = db.RecoveryEmailFailed
	}

	err = s.storage.Queries.CreateRecoveryEmail(ctx, db.CreateRecoveryEmailParams{
		ID:            ulid.Make().String(),
		CartID:        cart.ID,
		EmailNumber:   int64(stage.EmailNumber),
		TrackingToken: tracking,
		Subject:       rendered.Subject,
		Status:        status,
		SentAt:        now,
	})
	if err != nil {
		slog.Error("failed to record recovery email", "cart_id", cart.ID, "email_number", stage.EmailNumber, "status", status, "error", err)
	}

	return sendErr == nil
}

func (s *AbandonedCartEmailSender) buildContext(ctx context.Context, row db.ListAbandonedCartsForRecoveryRow, stage RecoveryEmailStage, tracking string, now time.Time) (*email.CartAbandonmentContext, error) {
	cartItems, err := s.storage.Queries.ListCartItems(ctx, row.Cart.ID)
	if err != nil {
		return nil, err
	}

	items, total := emailItems(cartItems)
	age := helpers.WholeHoursSince(row.Cart.AbandonedAt.Time, now)

	customerName := defaultCustomerName
	if row.Cart.CustomerName.Valid && row.Cart.CustomerName.String != "" {
		customerName = row.Cart.CustomerName.String
	}

	return &email.CartAbandonmentContext{
		EmailNumber:    stage.EmailNumber,
		Items:          items,
		Total:          helpers.FormatRinggit(total),
		RecoveryURL:    email.TrackedRecoveryURL(s.baseURL, row.Cart.RecoveryToken, tracking),
		QRCodeURL:      email.RecoveryQRCodeURL(s.baseURL, row.Cart.RecoveryToken),
		FunnelName:     row.FunnelName,
		AbandonmentAge: &age,
		CustomerName:   customerName,
	}, nil
}

// emailItems converts stored lines to email items and sums the cart.
// Each item is priced at its line amount; quantities above one are shown in
// the name. Missing prices count as zero.
func emailItems(cartItems []db.CartItem) ([]email.CartItem, float64) {
	items := make([]email.CartItem, 0, len(cartItems))
	var total float64
	for _, ci := range cartItems {
		var item email.CartItem
		if ci.ProductName.Valid || ci.Quantity > 1 {
			name := email.DefaultItemName
			if ci.ProductName.Valid && ci.ProductName.String != "" {
				name = ci.ProductName.String
			}
			if ci.Quantity > 1 {
				name = fmt.Sprintf("%s × %d", name, ci.Quantity)
			}
			item.Name = &name
		}
		if ci.UnitPrice.Valid {
			line := helpers.RoundCurrency(ci.UnitPrice.Float64 * float64(ci.Quantity))
			item.Price = &line
			total += line
		}
		items = append(items, item)
	}
	return items, helpers.RoundCurrency(total)
}
