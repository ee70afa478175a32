package payment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/atiq9se/bistro-boss-server/internal/cart"
	carterrors "github.com/atiq9se/bistro-boss-server/internal/cart/errors"
	"github.com/atiq9se/bistro-boss-server/internal/gateway"
	"github.com/atiq9se/bistro-boss-server/internal/outbox"
	"github.com/atiq9se/bistro-boss-server/internal/payment"
	paymenterrors "github.com/atiq9se/bistro-boss-server/internal/payment/errors"
)

// ==================== FAKES ====================

type fakeGateway struct {
	CreateIntentFn func(ctx context.Context, amountMinorUnits int64, currency string) (*gateway.Intent, error)
}

func (f *fakeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (*gateway.Intent, error) {
	return f.CreateIntentFn(ctx, amount, currency)
}

type fakePaymentRepo struct {
	InsertFn              func(ctx context.Context, rec payment.Record) (string, error)
	FindByTransactionIDFn func(ctx context.Context, transactionID string) (*payment.Record, error)
	FindByEmailFn         func(ctx context.Context, email string) ([]payment.Record, error)
}

func (f *fakePaymentRepo) Insert(ctx context.Context, rec payment.Record) (string, error) {
	return f.InsertFn(ctx, rec)
}
func (f *fakePaymentRepo) FindByTransactionID(ctx context.Context, transactionID string) (*payment.Record, error) {
	return f.FindByTransactionIDFn(ctx, transactionID)
}
func (f *fakePaymentRepo) FindByEmail(ctx context.Context, email string) ([]payment.Record, error) {
	return f.FindByEmailFn(ctx, email)
}

type fakeCartService struct {
	CountOwnedFn    func(ctx context.Context, email string, ids []string) (int64, error)
	RemoveSettledFn func(ctx context.Context, email string, ids []string) (int64, error)
}

func (f *fakeCartService) Add(ctx context.Context, req cart.AddItemRequest) (string, error) {
	return "", nil
}
func (f *fakeCartService) ListByEmail(ctx context.Context, email string) ([]cart.Item, error) {
	return nil, nil
}
func (f *fakeCartService) Remove(ctx context.Context, id string) (int64, error) {
	return 0, nil
}
func (f *fakeCartService) CountOwned(ctx context.Context, email string, ids []string) (int64, error) {
	return f.CountOwnedFn(ctx, email, ids)
}
func (f *fakeCartService) RemoveSettled(ctx context.Context, email string, ids []string) (int64, error) {
	return f.RemoveSettledFn(ctx, email, ids)
}

type fakeOutboxRepo struct {
	created  []outbox.Event
	sent     []string
	CreateFn func(ctx context.Context, e outbox.Event) error
}

func (f *fakeOutboxRepo) Create(ctx context.Context, e outbox.Event) error {
	if f.CreateFn != nil {
		if err := f.CreateFn(ctx, e); err != nil {
			return err
		}
	}
	f.created = append(f.created, e)
	return nil
}
func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int64) ([]outbox.Event, error) {
	return nil, nil
}
func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error {
	f.sent = append(f.sent, id)
	return nil
}

// ==================== HELPERS ====================

func newSettleService(repo *fakePaymentRepo, carts *fakeCartService, ob *fakeOutboxRepo) payment.Service {
	return payment.NewService(payment.Deps{
		Gateway: &fakeGateway{
			CreateIntentFn: func(context.Context, int64, string) (*gateway.Intent, error) {
				return &gateway.Intent{ID: "pi_test", ClientSecret: "pi_test_secret"}, nil
			},
		},
		Repo:   repo,
		Carts:  carts,
		Outbox: ob,
	})
}

func validSettle() payment.SettleRequest {
	return payment.SettleRequest{
		Email:         "alice@example.com",
		Price:         22.49,
		TransactionID: "pi_abc123",
		CartIDs:       []string{"65f0c0ffee65f0c0ffee0001", "65f0c0ffee65f0c0ffee0002"},
		Status:        "succeeded",
	}
}

// ==================== TESTS ====================

func TestMinorUnits(t *testing.T) {
	// Truncation toward zero, matching how charged amounts have always
	// been computed. 19.99*100 lands just under 1999 in float64.
	cases := []struct {
		price float64
		want  int64
	}{
		{12.5, 1250},
		{9.999, 999},
		{19.99, 1998},
		{100, 10000},
		{0.01, 1},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, payment.MinorUnits(tc.price), "price %v", tc.price)
	}
}

func TestPaymentService_CreateIntent(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		gw := &fakeGateway{
			CreateIntentFn: func(_ context.Context, amount int64, currency string) (*gateway.Intent, error) {
				assert.Equal(t, int64(1250), amount)
				assert.Equal(t, "usd", currency)
				return &gateway.Intent{ID: "pi_test", ClientSecret: "pi_test_secret"}, nil
			},
		}
		svc := payment.NewService(payment.Deps{
			Gateway: gw,
			Repo:    &fakePaymentRepo{},
			Carts:   &fakeCartService{},
			Outbox:  &fakeOutboxRepo{},
		})

		intent, err := svc.CreateIntent(ctx, 12.5)
		assert.NoError(t, err)
		assert.Equal(t, "pi_test_secret", intent.ClientSecret)
	})

	t.Run("error_non_positive_price", func(t *testing.T) {
		svc := newSettleService(&fakePaymentRepo{}, &fakeCartService{}, &fakeOutboxRepo{})

		_, err := svc.CreateIntent(ctx, 0)
		assert.ErrorIs(t, err, paymenterrors.ErrInvalidPrice)

		_, err = svc.CreateIntent(ctx, -5)
		assert.ErrorIs(t, err, paymenterrors.ErrInvalidPrice)
	})

	t.Run("error_gateway_failure", func(t *testing.T) {
		gw := &fakeGateway{
			CreateIntentFn: func(context.Context, int64, string) (*gateway.Intent, error) {
				return nil, assert.AnError
			},
		}
		svc := payment.NewService(payment.Deps{
			Gateway: gw,
			Repo:    &fakePaymentRepo{},
			Carts:   &fakeCartService{},
			Outbox:  &fakeOutboxRepo{},
		})

		_, err := svc.CreateIntent(ctx, 12.5)
		assert.Error(t, err)
	})
}

func TestPaymentService_Settle(t *testing.T) {
	ctx := context.Background()

	t.Run("success_full_settle", func(t *testing.T) {
		var inserted payment.Record
		repo := &fakePaymentRepo{
			FindByTransactionIDFn: func(context.Context, string) (*payment.Record, error) {
				return nil, nil
			},
			InsertFn: func(_ context.Context, rec payment.Record) (string, error) {
				inserted = rec
				return "65f0c0ffee65f0c0ffee00aa", nil
			},
		}
		carts := &fakeCartService{
			CountOwnedFn: func(_ context.Context, email string, ids []string) (int64, error) {
				assert.Equal(t, "alice@example.com", email)
				return int64(len(ids)), nil
			},
			RemoveSettledFn: func(_ context.Context, _ string, ids []string) (int64, error) {
				return int64(len(ids)), nil
			},
		}
		ob := &fakeOutboxRepo{}

		res, err := newSettleService(repo, carts, ob).Settle(ctx, validSettle())

		assert.NoError(t, err)
		assert.Equal(t, "65f0c0ffee65f0c0ffee00aa", res.PaymentResult.InsertedID)
		assert.False(t, res.PaymentResult.Duplicate)
		assert.True(t, res.DeleteResult.Completed)
		assert.Equal(t, int64(2), res.DeleteResult.DeletedCount)
		assert.Equal(t, "pi_abc123", inserted.TransactionID)

		// The compensation event was recorded and marked sent once the
		// inline cart clear succeeded.
		if assert.Len(t, ob.created, 1) {
			assert.Equal(t, outbox.EventClearCart, ob.created[0].EventType)
			assert.Equal(t, outbox.StatusPending, ob.created[0].Status)
			assert.Equal(t, []string{ob.created[0].ID}, ob.sent)
		}
	})

	t.Run("success_replay_is_idempotent", func(t *testing.T) {
		existingID := primitive.NewObjectID()
		repo := &fakePaymentRepo{
			FindByTransactionIDFn: func(_ context.Context, txID string) (*payment.Record, error) {
				assert.Equal(t, "pi_abc123", txID)
				return &payment.Record{ID: existingID, TransactionID: txID}, nil
			},
			InsertFn: func(context.Context, payment.Record) (string, error) {
				t.Fatal("insert must not run on replay")
				return "", nil
			},
		}
		carts := &fakeCartService{
			CountOwnedFn: func(context.Context, string, []string) (int64, error) {
				t.Fatal("ownership check must not run on replay")
				return 0, nil
			},
		}
		ob := &fakeOutboxRepo{}

		res, err := newSettleService(repo, carts, ob).Settle(ctx, validSettle())

		assert.NoError(t, err)
		assert.True(t, res.PaymentResult.Duplicate)
		assert.Equal(t, existingID.Hex(), res.PaymentResult.InsertedID)
		assert.True(t, res.DeleteResult.Completed)
		assert.Empty(t, ob.created)
	})

	t.Run("error_ownership_mismatch", func(t *testing.T) {
		repo := &fakePaymentRepo{
			FindByTransactionIDFn: func(context.Context, string) (*payment.Record, error) {
				return nil, nil
			},
			InsertFn: func(context.Context, payment.Record) (string, error) {
				t.Fatal("insert must not run when ownership fails")
				return "", nil
			},
		}
		carts := &fakeCartService{
			// One of the two ids is gone or belongs to someone else.
			CountOwnedFn: func(context.Context, string, []string) (int64, error) {
				return 1, nil
			},
		}

		_, err := newSettleService(repo, carts, &fakeOutboxRepo{}).Settle(ctx, validSettle())
		assert.ErrorIs(t, err, carterrors.ErrCartOwnershipMismatch)
	})

	t.Run("partial_failure_keeps_event_pending", func(t *testing.T) {
		repo := &fakePaymentRepo{
			FindByTransactionIDFn: func(context.Context, string) (*payment.Record, error) {
				return nil, nil
			},
			InsertFn: func(context.Context, payment.Record) (string, error) {
				return "65f0c0ffee65f0c0ffee00aa", nil
			},
		}
		carts := &fakeCartService{
			CountOwnedFn: func(_ context.Context, _ string, ids []string) (int64, error) {
				return int64(len(ids)), nil
			},
			RemoveSettledFn: func(context.Context, string, []string) (int64, error) {
				return 0, assert.AnError
			},
		}
		ob := &fakeOutboxRepo{}

		res, err := newSettleService(repo, carts, ob).Settle(ctx, validSettle())

		// The request itself succeeds; the partial failure is in the body.
		assert.NoError(t, err)
		assert.Equal(t, "65f0c0ffee65f0c0ffee00aa", res.PaymentResult.InsertedID)
		assert.False(t, res.DeleteResult.Completed)
		assert.NotEmpty(t, res.DeleteResult.Error)

		// The outbox event stays PENDING for the reconciler.
		assert.Len(t, ob.created, 1)
		assert.Empty(t, ob.sent)
	})

	t.Run("error_invalid_request", func(t *testing.T) {
		svc := newSettleService(&fakePaymentRepo{}, &fakeCartService{}, &fakeOutboxRepo{})

		cases := []payment.SettleRequest{
			{},
			{Email: "not-an-email", Price: 10, TransactionID: "tx", CartIDs: []string{"a"}},
			{Email: "alice@example.com", Price: 10, TransactionID: "tx", CartIDs: nil},
			{Email: "alice@example.com", Price: 0, TransactionID: "tx", CartIDs: []string{"a"}},
		}
		for _, req := range cases {
			_, err := svc.Settle(ctx, req)
			assert.ErrorIs(t, err, paymenterrors.ErrInvalidSettleRequest)
		}
	})
}

func TestPaymentService_History(t *testing.T) {
	repo := &fakePaymentRepo{
		FindByEmailFn: func(_ context.Context, email string) ([]payment.Record, error) {
			assert.Equal(t, "alice@example.com", email)
			return []payment.Record{{TransactionID: "pi_1"}, {TransactionID: "pi_0"}}, nil
		},
	}

	records, err := newSettleService(repo, &fakeCartService{}, &fakeOutboxRepo{}).
		History(context.Background(), "alice@example.com")

	assert.NoError(t, err)
	assert.Len(t, records, 2)
}
