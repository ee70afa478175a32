package outbox

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	StatusPending = "PENDING"
	StatusSent    = "SENT"

	EventClearCart = "CLEAR_CART"
)

// ClearCartPayload travels from the checkout orchestrator to the
// cart-clear consumer.
type ClearCartPayload struct {
	Email   string   `json:"email"`
	CartIDs []string `json:"cartIds"`
}

type Event struct {
	ID        string    `bson:"_id" json:"id"`
	EventType string    `bson:"eventType" json:"eventType"`
	Payload   []byte    `bson:"payload" json:"payload"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

//go:generate mockgen -source=outbox_repo.go -destination=../mock/outbox/outbox_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, e Event) error
	ListPending(ctx context.Context, limit int64) ([]Event, error)
	MarkSent(ctx context.Context, id string) error
}

type repository struct {
	coll *mongo.Collection
}

func NewRepository(coll *mongo.Collection) Repository {
	return &repository{coll: coll}
}

func (r *repository) Create(ctx context.Context, e Event) error {
	_, err := r.coll.InsertOne(ctx, e)
	return err
}

func (r *repository) ListPending(ctx context.Context, limit int64) ([]Event, error) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": 1}).
		SetLimit(limit)

	cur, err := r.coll.Find(ctx, bson.M{"status": StatusPending}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	events := make([]Event, 0)
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *repository) MarkSent(ctx context.Context, id string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": StatusSent}},
	)
	return err
}
