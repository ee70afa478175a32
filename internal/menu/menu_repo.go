package menu

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	menuerrors "github.com/atiq9se/bistro-boss-server/internal/menu/errors"
)

type Item struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Recipe   string             `bson:"recipe,omitempty" json:"recipe,omitempty"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Category string             `bson:"category,omitempty" json:"category,omitempty"`
	Price    float64            `bson:"price" json:"price"`
}

type Repository interface {
	FindAll(ctx context.Context) ([]Item, error)
	FindByID(ctx context.Context, id string) (*Item, error)
	Insert(ctx context.Context, item Item) (string, error)
	Update(ctx context.Context, id string, item Item) (int64, int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type repository struct {
	coll *mongo.Collection
}

func NewRepository(coll *mongo.Collection) Repository {
	return &repository{coll: coll}
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, menuerrors.ErrInvalidMenuItemID
	}
	return oid, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Item, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
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

func (r *repository) FindByID(ctx context.Context, id string) (*Item, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var item Item
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, menuerrors.ErrMenuItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *repository) Insert(ctx context.Context, item Item) (string, error) {
	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return "", err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *repository) Update(ctx context.Context, id string, item Item) (int64, int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, 0, err
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"name":     item.Name,
			"category": item.Category,
			"recipe":   item.Recipe,
			"price":    item.Price,
			"image":    item.Image,
		}},
	)
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
