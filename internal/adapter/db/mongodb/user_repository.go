package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JacobNatural/task-manager/internal/core/domain"
	"github.com/JacobNatural/task-manager/internal/core/ports"
)

type userDocument struct {
	ID       primitive.ObjectID `bson:"_id"`
	Name     string             `bson:"name"`
	Surname  string             `bson:"surname"`
	Username string             `bson:"username"`
}

type UserRepository struct {
	pagedCollection[userDocument, domain.User]
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(collection *mongo.Collection) *UserRepository {
	return &UserRepository{
		pagedCollection: pagedCollection[userDocument, domain.User]{
			collection: collection,
			fields:     userFields,
			toDomain:   mapUserDocumentToDomainUser,
		},
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.User{}, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.D{{Key: fieldID, Value: objectID}})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.findOne(ctx, bson.D{{Key: fieldUsername, Value: username}})
}

func (r *UserRepository) findOne(ctx context.Context, query bson.D) (domain.User, error) {
	var doc userDocument
	err := r.collection.FindOne(ctx, query).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return mapUserDocumentToDomainUser(doc), nil
}

func (r *UserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	doc := userDocument{Name: user.Name, Surname: user.Surname, Username: user.Username}
	if user.ID == "" {
		doc.ID = primitive.NewObjectID()
	} else {
		id, err := primitive.ObjectIDFromHex(user.ID)
		if err != nil {
			return domain.User{}, fmt.Errorf("user id %q is not an ObjectID: %w", user.ID, err)
		}
		doc.ID = id
	}

	_, err := r.collection.ReplaceOne(ctx,
		bson.D{{Key: fieldID, Value: doc.ID}},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return domain.User{}, err
	}
	return mapUserDocumentToDomainUser(doc), nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	_, err = r.collection.DeleteOne(ctx, bson.D{{Key: fieldID, Value: objectID}})
	return err
}

func mapUserDocumentToDomainUser(doc userDocument) domain.User {
	return domain.User{
		ID:       doc.ID.Hex(),
		Name:     doc.Name,
		Surname:  doc.Surname,
		Username: doc.Username,
	}
}
