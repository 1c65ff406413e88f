package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/mercadito/marketplace-api/internal/core/domain"
	"github.com/mercadito/marketplace-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub
// ---------------------------------------------------------------------------

type stubDeliveryRepo struct {
	deliveries map[string]*domain.Delivery
	nextID     int
	lastUpdate ports.DeliveryUpdate
	updatedID  string
}

func newStubDeliveryRepo() *stubDeliveryRepo {
	return &stubDeliveryRepo{deliveries: make(map[string]*domain.Delivery), nextID: 1}
}

func (r *stubDeliveryRepo) Create(_ context.Context, d *domain.Delivery) (*domain.Delivery, error) {
	clone := *d
	clone.ID = fmt.Sprintf("del_%d", r.nextID)
	r.nextID++
	r.deliveries[clone.ID] = &clone
	return &clone, nil
}

func (r *stubDeliveryRepo) FindByID(_ context.Context, id string) (*domain.Delivery, error) {
	d, ok := r.deliveries[id]
	if !ok {
		return nil, domain.ErrDeliveryNotFound
	}
	clone := *d
	return &clone, nil
}

// List applies the same owner and inclusive date filters as the Mongo repo.
func (r *stubDeliveryRepo) List(_ context.Context, f ports.DeliveryFilter) ([]*domain.Delivery, error) {
	matched := make([]*domain.Delivery, 0)
	for _, d := range r.deliveries {
		if d.OwnerID != f.OwnerID {
			continue
		}
		if !f.Start.IsZero() && d.Date.Before(f.Start) {
			continue
		}
		if !f.End.IsZero() && d.Date.After(f.End) {
			continue
		}
		clone := *d
		matched = append(matched, &clone)
	}
	return matched, nil
}

func (r *stubDeliveryRepo) Update(_ context.Context, id string, update ports.DeliveryUpdate) error {
	d, ok := r.deliveries[id]
	if !ok {
		return domain.ErrDeliveryNotFound
	}
	if update.Comments != nil {
		d.Comments = *update.Comments
	}
	if update.Score != nil {
		d.Score = *update.Score
	}
	r.updatedID = id
	r.lastUpdate = update
	return nil
}

func deliveryInput(date time.Time) ports.CreateDeliveryInput {
	return ports.CreateDeliveryInput{
		ProductID: "prod_1",
		Quantity:  2,
		Date:      date,
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestDeliveryService_Create_Defaults(t *testing.T) {
	users := newStubUserRepo()
	buyer := users.add(activeUser("buyer@example.com", "pw"))
	svc := NewDeliveryService(newStubDeliveryRepo(), users, discardLogger)

	before := time.Now().UTC()
	delivery, err := svc.Create(context.Background(), domain.Principal{Email: "buyer@example.com"}, deliveryInput(time.Time{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if delivery.OwnerID != buyer.ID {
		t.Errorf("expected owner %s, got %s", buyer.ID, delivery.OwnerID)
	}
	if delivery.Status != domain.StatusPending {
		t.Errorf("expected default status pending, got %s", delivery.Status)
	}
	if delivery.Date.Before(before) {
		t.Errorf("date must default to creation time, got %v", delivery.Date)
	}
}

func TestDeliveryService_Create_InvalidStatus(t *testing.T) {
	users := newStubUserRepo()
	users.add(activeUser("buyer@example.com", "pw"))
	svc := NewDeliveryService(newStubDeliveryRepo(), users, discardLogger)

	input := deliveryInput(time.Time{})
	input.Status = "lost"

	_, err := svc.Create(context.Background(), domain.Principal{Email: "buyer@example.com"}, input)
	if err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestDeliveryService_Create_UnknownActor(t *testing.T) {
	svc := NewDeliveryService(newStubDeliveryRepo(), newStubUserRepo(), discardLogger)

	_, err := svc.Create(context.Background(), domain.Principal{Email: "ghost@example.com"}, deliveryInput(time.Time{}))
	if err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDeliveryService_Get_OwnerMismatch(t *testing.T) {
	users := newStubUserRepo()
	users.add(activeUser("buyer@example.com", "pw"))
	users.add(activeUser("other@example.com", "pw"))
	repo := newStubDeliveryRepo()
	svc := NewDeliveryService(repo, users, discardLogger)

	delivery, err := svc.Create(context.Background(), domain.Principal{Email: "buyer@example.com"}, deliveryInput(time.Time{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Get(context.Background(), domain.Principal{Email: "other@example.com"}, delivery.ID); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestDeliveryService_Get_NotFound(t *testing.T) {
	users := newStubUserRepo()
	users.add(activeUser("buyer@example.com", "pw"))
	svc := NewDeliveryService(newStubDeliveryRepo(), users, discardLogger)

	if _, err := svc.Get(context.Background(), domain.Principal{Email: "buyer@example.com"}, "missing"); err != domain.ErrDeliveryNotFound {
		t.Fatalf("expected ErrDeliveryNotFound, got %v", err)
	}
}

func TestDeliveryService_List_DateRangeInclusive(t *testing.T) {
	users := newStubUserRepo()
	users.add(activeUser("buyer@example.com", "pw"))
	repo := newStubDeliveryRepo()
	svc := NewDeliveryService(repo, users, discardLogger)
	actor := domain.Principal{Email: "buyer@example.com"}

	day := func(d int) time.Time {
		return time.Date(2024, 3, d, 12, 0, 0, 0, time.UTC)
	}
	for _, d := range []int{1, 5, 10, 15} {
		if _, err := svc.Create(context.Background(), actor, deliveryInput(day(d))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	deliveries, err := svc.List(context.Background(), actor, day(5), day(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deliveries) != 2 {
		t.Fatalf("expected the 2 boundary-inclusive deliveries, got %d", len(deliveries))
	}
	for _, d := range deliveries {
		if d.Date.Before(day(5)) || d.Date.After(day(10)) {
			t.Errorf("delivery outside range: %v", d.Date)
		}
	}
}

func TestDeliveryService_List_ScopedToOwner(t *testing.T) {
	users := newStubUserRepo()
	users.add(activeUser("buyer@example.com", "pw"))
	users.add(activeUser("other@example.com", "pw"))
	repo := newStubDeliveryRepo()
	svc := NewDeliveryService(repo, users, discardLogger)

	if _, err := svc.Create(context.Background(), domain.Principal{Email: "buyer@example.com"}, deliveryInput(time.Time{})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Create(context.Background(), domain.Principal{Email: "other@example.com"}, deliveryInput(time.Time{})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deliveries, err := svc.List(context.Background(), domain.Principal{Email: "buyer@example.com"}, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deliveries) != 1 {
		t.Fatalf("expected only the caller's delivery, got %d", len(deliveries))
	}
}

func TestDeliveryService_Update_CommentsAndScore(t *testing.T) {
	users := newStubUserRepo()
	users.add(activeUser("buyer@example.com", "pw"))
	repo := newStubDeliveryRepo()
	svc := NewDeliveryService(repo, users, discardLogger)
	actor := domain.Principal{Email: "buyer@example.com"}

	delivery, err := svc.Create(context.Background(), actor, deliveryInput(time.Time{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	comments := "arrived on time"
	score := 5
	err = svc.Update(context.Background(), actor, delivery.ID, ports.DeliveryUpdate{Comments: &comments, Score: &score})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.Get(context.Background(), actor, delivery.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Comments != comments || updated.Score != score {
		t.Errorf("update not applied: %+v", updated)
	}
}

func TestDeliveryService_Update_OwnerMismatch(t *testing.T) {
	users := newStubUserRepo()
	users.add(activeUser("buyer@example.com", "pw"))
	users.add(activeUser("other@example.com", "pw"))
	repo := newStubDeliveryRepo()
	svc := NewDeliveryService(repo, users, discardLogger)

	delivery, err := svc.Create(context.Background(), domain.Principal{Email: "buyer@example.com"}, deliveryInput(time.Time{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	comments := "not yours"
	err = svc.Update(context.Background(), domain.Principal{Email: "other@example.com"}, delivery.ID, ports.DeliveryUpdate{Comments: &comments})
	if err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if repo.updatedID != "" {
		t.Error("resource must be unchanged on ownership failure")
	}
}
