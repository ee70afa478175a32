package user

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	usererrors "github.com/atiq9se/bistro-boss-server/internal/user/errors"
)

// Role is a closed enum; anything not "admin" acts as a plain member.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Role  Role               `bson:"role,omitempty" json:"role,omitempty"`
}

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Insert(ctx context.Context, u User) (string, error)
	FindAll(ctx context.Context) ([]User, error)
	SetRole(ctx context.Context, id string, role Role) (int64, int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type repository struct {
	coll *mongo.Collection
}

func NewRepository(coll *mongo.Collection) Repository {
	return &repository{coll: coll}
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usererrors.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) Insert(ctx context.Context, u User) (string, error) {
	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		return "", err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id.Hex(), nil
}

func (r *repository) FindAll(ctx context.Context) ([]User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := make([]User, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repository) SetRole(ctx context.Context, id string, role Role) (int64, int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, 0, usererrors.ErrInvalidUserID
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, usererrors.ErrInvalidUserID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
