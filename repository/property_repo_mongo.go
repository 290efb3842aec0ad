package repository

import (
	"context"
	"time"

	"github.com/lfmcarvalho/gerenciamento_propriedades/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoPropertyRepo struct {
	DB *mongo.Database
}

func NewMongoPropertyRepo(db *mongo.Database) *MongoPropertyRepo {
	return &MongoPropertyRepo{DB: db}
}

func (r *MongoPropertyRepo) properties() *mongo.Collection {
	return r.DB.Collection("properties")
}

func (r *MongoPropertyRepo) FindByOwner(ctx context.Context, ownerID int64) ([]models.Property, error) {
	cursor, err := r.properties().Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}

	return properties, nil
}

func (r *MongoPropertyRepo) Insert(ctx context.Context, property *models.Property) error {
	id, err := nextSequence(ctx, r.DB, "properties")
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	property.ID = id
	property.CreatedAt = now
	property.UpdatedAt = now
	if property.Photos == nil {
		property.Photos = []string{}
	}

	_, err = r.properties().InsertOne(ctx, property)
	return err
}

func (r *MongoPropertyRepo) DeleteByID(ctx context.Context, id int64) (int64, error) {
	res, err := r.properties().DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
