package menu_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atiq9se/bistro-boss-server/internal/menu"
)

type fakeMenuRepo struct {
	FindAllFn  func(ctx context.Context) ([]menu.Item, error)
	FindByIDFn func(ctx context.Context, id string) (*menu.Item, error)
	InsertFn   func(ctx context.Context, item menu.Item) (string, error)
	UpdateFn   func(ctx context.Context, id string, item menu.Item) (int64, int64, error)
	DeleteFn   func(ctx context.Context, id string) (int64, error)
}

func (f *fakeMenuRepo) FindAll(ctx context.Context) ([]menu.Item, error) {
	return f.FindAllFn(ctx)
}
func (f *fakeMenuRepo) FindByID(ctx context.Context, id string) (*menu.Item, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeMenuRepo) Insert(ctx context.Context, item menu.Item) (string, error) {
	return f.InsertFn(ctx, item)
}
func (f *fakeMenuRepo) Update(ctx context.Context, id string, item menu.Item) (int64, int64, error) {
	return f.UpdateFn(ctx, id, item)
}
func (f *fakeMenuRepo) Delete(ctx context.Context, id string) (int64, error) {
	return f.DeleteFn(ctx, id)
}

func TestMenuService_List(t *testing.T) {
	items := []menu.Item{
		{Name: "Roast Duck", Category: "salad", Price: 14.5},
		{Name: "Tuna Niçoise", Category: "salad", Price: 12.5},
	}
	repo := &fakeMenuRepo{
		FindAllFn: func(context.Context) ([]menu.Item, error) { return items, nil },
	}

	// nil cache: every read goes to the store.
	got, err := menu.NewService(repo, nil).List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestMenuService_Mutations(t *testing.T) {
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		repo := &fakeMenuRepo{
			InsertFn: func(_ context.Context, item menu.Item) (string, error) {
				assert.Equal(t, "Roast Duck", item.Name)
				return "65f0c0ffee65f0c0ffee0001", nil
			},
		}

		id, err := menu.NewService(repo, nil).Create(ctx, menu.Item{Name: "Roast Duck", Price: 14.5})
		assert.NoError(t, err)
		assert.Equal(t, "65f0c0ffee65f0c0ffee0001", id)
	})

	t.Run("update", func(t *testing.T) {
		repo := &fakeMenuRepo{
			UpdateFn: func(_ context.Context, id string, item menu.Item) (int64, int64, error) {
				assert.Equal(t, "65f0c0ffee65f0c0ffee0001", id)
				assert.Equal(t, 15.0, item.Price)
				return 1, 1, nil
			},
		}

		matched, modified, err := menu.NewService(repo, nil).
			Update(ctx, "65f0c0ffee65f0c0ffee0001", menu.Item{Name: "Roast Duck", Price: 15.0})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), matched)
		assert.Equal(t, int64(1), modified)
	})

	t.Run("delete", func(t *testing.T) {
		repo := &fakeMenuRepo{
			DeleteFn: func(context.Context, string) (int64, error) { return 1, nil },
		}

		deleted, err := menu.NewService(repo, nil).Delete(ctx, "65f0c0ffee65f0c0ffee0001")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), deleted)
	})
}
