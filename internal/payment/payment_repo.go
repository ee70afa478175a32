package payment

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Record is immutable once written; the system never deletes payments.
type Record struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	CartIDs       []string           `bson:"cartIds" json:"cartIds"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
	Date          time.Time          `bson:"date" json:"date"`
}

//go:generate mockgen -source=payment_repo.go -destination=../mock/payment/payment_repo_mock.go -package=mock
type Repository interface {
	Insert(ctx context.Context, rec Record) (string, error)
	// FindByTransactionID returns (nil, nil) when no record exists;
	// the transaction reference is the settle idempotency key.
	FindByTransactionID(ctx context.Context, transactionID string) (*Record, error)
	FindByEmail(ctx context.Context, email string) ([]Record, error)
}

type repository struct {
	coll *mongo.Collection
}

func NewRepository(coll *mongo.Collection) Repository {
	return &repository{coll: coll}
}

func (r *repository) Insert(ctx context.Context, rec Record) (string, error) {
	res, err := r.coll.InsertOne(ctx, rec)
	if err != nil {
		return "", err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *repository) FindByTransactionID(ctx context.Context, transactionID string) (*Record, error) {
	var rec Record
	err := r.coll.FindOne(ctx, bson.M{"transactionId": transactionID}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) ([]Record, error) {
	opts := options.Find().SetSort(bson.M{"date": -1})

	cur, err := r.coll.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	records := make([]Record, 0)
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
