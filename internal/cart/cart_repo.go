package cart

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	carterrors "github.com/atiq9se/bistro-boss-server/internal/cart/errors"
)

type Item struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	MenuItemID string             `bson:"menuItemId" json:"menuItemId"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Price      float64            `bson:"price" json:"price"`
}

type Repository interface {
	Insert(ctx context.Context, item Item) (string, error)
	FindByEmail(ctx context.Context, email string) ([]Item, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
	// CountOwned reports how many of the given ids are live cart items
	// belonging to email.
	CountOwned(ctx context.Context, email string, ids []string) (int64, error)
	// DeleteOwned removes the given ids for the owner, returning the
	// number of documents actually deleted.
	DeleteOwned(ctx context.Context, email string, ids []string) (int64, error)
}

type repository struct {
	coll *mongo.Collection
}

func NewRepository(coll *mongo.Collection) Repository {
	return &repository{coll: coll}
}

func toObjectIDs(ids []string) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, carterrors.ErrInvalidCartItemID
		}
		oids = append(oids, oid)
	}
	return oids, nil
}

func (r *repository) Insert(ctx context.Context, item Item) (string, error) {
	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return "", err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) ([]Item, error) {
	cur, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := make([]Item, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, carterrors.ErrInvalidCartItemID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *repository) CountOwned(ctx context.Context, email string, ids []string) (int64, error) {
	oids, err := toObjectIDs(ids)
	if err != nil {
		return 0, err
	}
	return r.coll.CountDocuments(ctx, bson.M{
		"_id":   bson.M{"$in": oids},
		"email": email,
	})
}

func (r *repository) DeleteOwned(ctx context.Context, email string, ids []string) (int64, error) {
	oids, err := toObjectIDs(ids)
	if err != nil {
		return 0, err
	}

	res, err := r.coll.DeleteMany(ctx, bson.M{
		"_id":   bson.M{"$in": oids},
		"email": email,
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
