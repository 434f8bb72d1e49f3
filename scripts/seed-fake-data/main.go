package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/bedaie/bedaie-web/storage"
	"github.com/bedaie/bedaie-web/storage/db"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

const (
	numFunnels        = 4
	numActiveCarts    = 10
	numAbandonedCarts = 15
	maxItemsPerCart   = 5
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

type seeder struct {
	q     *db.Queries
	faker *gofakeit.Faker
	now   time.Time

	funnelIDs []string
	counts    map[string]int
}

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./db/bedaie.db"
	}

	store, err := storage.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	s := &seeder{
		q:      store.Queries,
		faker:  gofakeit.New(0),
		now:    time.Now().UTC(),
		counts: map[string]int{},
	}

	fmt.Println("🌱 Starting database seeding...")

	ctx := context.Background()
	steps := []func(context.Context) error{
		s.seedUsers,
		s.seedFunnels,
		s.seedActiveCarts,
		s.seedAbandonedCarts,
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			log.Fatalf("❌ Seeding failed: %v", err)
		}
	}

	fmt.Println("✅ Database seeding completed!")
	for _, key := range []string{"users", "funnels", "active carts", "abandoned carts", "cart items"} {
		fmt.Printf("  %-16s %d\n", key, s.counts[key])
	}
}

func (s *seeder) seedUsers(ctx context.Context) error {
	users := []struct{ name, email, role string }{
		{"BeDaie Admin", "admin@bedaie.test", "admin"},
		{s.faker.Name(), "cashier@bedaie.test", "cashier"},
		{s.faker.Name(), "affiliate@bedaie.test", "affiliate"},
	}

	for _, u := range users {
		if _, err := s.q.GetUserByEmail(ctx, u.email); err == nil {
			continue
		}
		_, err := s.q.CreateUser(ctx, db.CreateUserParams{
			ID:        ulid.Make().String(),
			Name:      u.name,
			Email:     u.email,
			Role:      u.role,
			CreatedAt: s.now,
		})
		if err != nil {
			return fmt.Errorf("create user %s: %w", u.email, err)
		}
		s.counts["users"]++
	}
	return nil
}

func (s *seeder) seedFunnels(ctx context.Context) error {
	for range numFunnels {
		name := s.faker.Company() + " Sale"
		slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(name), "-"), "-") + "-" + strings.ToLower(ulid.Make().String()[20:])

		funnel, err := s.q.CreateFunnel(ctx, db.CreateFunnelParams{
			ID:        ulid.Make().String(),
			Name:      name,
			Slug:      slug,
			CreatedAt: s.now.Add(-time.Duration(s.faker.Number(24, 24*60)) * time.Hour),
		})
		if err != nil {
			return fmt.Errorf("create funnel: %w", err)
		}
		s.funnelIDs = append(s.funnelIDs, funnel.ID)
		s.counts["funnels"]++
	}
	return nil
}

func (s *seeder) createCart(ctx context.Context, lastActivity time.Time) (db.Cart, error) {
	withEmail := s.faker.Number(1, 10) > 2

	cart, err := s.q.CreateCart(ctx, db.CreateCartParams{
		ID:            ulid.Make().String(),
		FunnelID:      s.funnelIDs[s.faker.Number(0, len(s.funnelIDs)-1)],
		SessionID:     sql.NullString{String: uuid.NewString(), Valid: true},
		CustomerName:  sql.NullString{String: s.faker.Name(), Valid: withEmail},
		CustomerEmail: sql.NullString{String: s.faker.Email(), Valid: withEmail},
		Status:        db.CartStatusActive,
		RecoveryToken: uuid.NewString(),
		CreatedAt:     lastActivity.Add(-time.Duration(s.faker.Number(1, 30)) * time.Minute),
		UpdatedAt:     lastActivity,
	})
	if err != nil {
		return db.Cart{}, fmt.Errorf("create cart: %w", err)
	}

	for i := range s.faker.Number(1, maxItemsPerCart) {
		item := db.CreateCartItemParams{
			ID:       ulid.Make().String(),
			CartID:   cart.ID,
			Position: int64(i + 1),
			Quantity: int64(s.faker.Number(1, 3)),
		}
		// Roughly one line in ten is missing its name or price.
		if s.faker.Number(1, 10) > 1 {
			item.ProductName = sql.NullString{String: s.faker.ProductName(), Valid: true}
		}
		if s.faker.Number(1, 10) > 1 {
			item.UnitPrice = sql.NullFloat64{Float64: s.faker.Price(5, 350), Valid: true}
		}
		if err := s.q.CreateCartItem(ctx, item); err != nil {
			return db.Cart{}, fmt.Errorf("create cart item: %w", err)
		}
		s.counts["cart items"]++
	}

	return cart, nil
}

func (s *seeder) seedActiveCarts(ctx context.Context) error {
	for range numActiveCarts {
		lastActivity := s.now.Add(-time.Duration(s.faker.Number(0, 25)) * time.Minute)
		if _, err := s.createCart(ctx, lastActivity); err != nil {
			return err
		}
		s.counts["active carts"]++
	}
	return nil
}

// seedAbandonedCarts spreads abandonment over the last three days so every
// stage of the recovery sequence has candidates.
func (s *seeder) seedAbandonedCarts(ctx context.Context) error {
	for range numAbandonedCarts {
		abandonedAt := s.now.Add(-time.Duration(s.faker.Number(45, 72*60)) * time.Minute)
		cart, err := s.createCart(ctx, abandonedAt)
		if err != nil {
			return err
		}
		if _, err := s.q.MarkCartAbandoned(ctx, db.MarkCartAbandonedParams{
			AbandonedAt: abandonedAt,
			ID:          cart.ID,
		}); err != nil {
			return fmt.Errorf("abandon cart: %w", err)
		}
		s.counts["abandoned carts"]++
	}
	return nil
}
