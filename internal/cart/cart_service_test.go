package cart_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atiq9se/bistro-boss-server/internal/cart"
)

// ==================== FAKE REPOSITORY ====================

type fakeCartRepo struct {
	InsertFn      func(ctx context.Context, item cart.Item) (string, error)
	FindByEmailFn func(ctx context.Context, email string) ([]cart.Item, error)
	DeleteByIDFn  func(ctx context.Context, id string) (int64, error)
	CountOwnedFn  func(ctx context.Context, email string, ids []string) (int64, error)
	DeleteOwnedFn func(ctx context.Context, email string, ids []string) (int64, error)
}

func (f *fakeCartRepo) Insert(ctx context.Context, item cart.Item) (string, error) {
	return f.InsertFn(ctx, item)
}
func (f *fakeCartRepo) FindByEmail(ctx context.Context, email string) ([]cart.Item, error) {
	return f.FindByEmailFn(ctx, email)
}
func (f *fakeCartRepo) DeleteByID(ctx context.Context, id string) (int64, error) {
	return f.DeleteByIDFn(ctx, id)
}
func (f *fakeCartRepo) CountOwned(ctx context.Context, email string, ids []string) (int64, error) {
	return f.CountOwnedFn(ctx, email, ids)
}
func (f *fakeCartRepo) DeleteOwned(ctx context.Context, email string, ids []string) (int64, error) {
	return f.DeleteOwnedFn(ctx, email, ids)
}

// ==================== TESTS ====================

func TestCartService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeCartRepo{
			InsertFn: func(_ context.Context, item cart.Item) (string, error) {
				assert.Equal(t, "alice@example.com", item.Email)
				assert.Equal(t, "menu-42", item.MenuItemID)
				return "65f0c0ffee65f0c0ffee0001", nil
			},
		}

		id, err := cart.NewService(repo).Add(ctx, cart.AddItemRequest{
			Email:      "alice@example.com",
			MenuItemID: "menu-42",
			Name:       "Roast Duck",
			Price:      14.5,
		})

		assert.NoError(t, err)
		assert.Equal(t, "65f0c0ffee65f0c0ffee0001", id)
	})

	t.Run("error_missing_fields", func(t *testing.T) {
		repo := &fakeCartRepo{
			InsertFn: func(context.Context, cart.Item) (string, error) {
				t.Fatal("insert must not run on invalid input")
				return "", nil
			},
		}
		svc := cart.NewService(repo)

		_, err := svc.Add(ctx, cart.AddItemRequest{Email: "alice@example.com"})
		assert.Error(t, err)

		_, err = svc.Add(ctx, cart.AddItemRequest{Email: "not-an-email", MenuItemID: "m", Price: 1})
		assert.Error(t, err)
	})
}

func TestCartService_RemoveSettled(t *testing.T) {
	ctx := context.Background()
	ids := []string{"65f0c0ffee65f0c0ffee0001", "65f0c0ffee65f0c0ffee0002"}

	t.Run("success", func(t *testing.T) {
		repo := &fakeCartRepo{
			DeleteOwnedFn: func(_ context.Context, email string, got []string) (int64, error) {
				assert.Equal(t, "alice@example.com", email)
				assert.Equal(t, ids, got)
				return 2, nil
			},
		}

		deleted, err := cart.NewService(repo).RemoveSettled(ctx, "alice@example.com", ids)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), deleted)
	})

	t.Run("idempotent_on_retry", func(t *testing.T) {
		// A replayed clear hits ids that are already gone; the delete
		// matches nothing and that is not an error.
		repo := &fakeCartRepo{
			DeleteOwnedFn: func(context.Context, string, []string) (int64, error) {
				return 0, nil
			},
		}

		deleted, err := cart.NewService(repo).RemoveSettled(ctx, "alice@example.com", ids)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
	})
}
