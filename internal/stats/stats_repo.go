package stats

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -source=stats_repo.go -destination=../mock/stats/stats_repo_mock.go -package=mock
type Repository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountMenuItems(ctx context.Context) (int64, error)
	CountPayments(ctx context.Context) (int64, error)
	// TotalRevenue sums the price of every payment record in a single
	// aggregation pass on the store.
	TotalRevenue(ctx context.Context) (float64, error)
}

type repository struct {
	users    *mongo.Collection
	menu     *mongo.Collection
	payments *mongo.Collection
}

func NewRepository(users, menu, payments *mongo.Collection) Repository {
	return &repository{users: users, menu: menu, payments: payments}
}

// Approximate counts are fine for a dashboard; EstimatedDocumentCount
// reads collection metadata instead of scanning.
func (r *repository) CountUsers(ctx context.Context) (int64, error) {
	return r.users.EstimatedDocumentCount(ctx)
}

func (r *repository) CountMenuItems(ctx context.Context) (int64, error) {
	return r.menu.EstimatedDocumentCount(ctx)
}

func (r *repository) CountPayments(ctx context.Context) (int64, error) {
	return r.payments.EstimatedDocumentCount(ctx)
}

func (r *repository) TotalRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":          nil,
			"totalRevenue": bson.M{"$sum": "$price"},
		}}},
	}

	cur, err := r.payments.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var out []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cur.All(ctx, &out); err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].TotalRevenue, nil
}
