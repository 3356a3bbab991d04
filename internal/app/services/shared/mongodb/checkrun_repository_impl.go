package mongodb

import (
	"context"

	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const checkRunCollection = "check_runs"

type checkRunRepository struct {
	collection *mongo.Collection
}

func NewCheckRunRepository(client *mongo.Client, database string) contracts.CheckRunRepository {
	return &checkRunRepository{
		collection: client.Database(database).Collection(checkRunCollection),
	}
}

func (r *checkRunRepository) Insert(ctx context.Context, run *models.CheckRun) error {
	if run.ID.IsZero() {
		run.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, run)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *checkRunRepository) FindRecent(ctx context.Context, page, pageSize int) ([]models.CheckRun, int, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var runs []models.CheckRun
	if err := cursor.All(ctx, &runs); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}

	return runs, int(total), nil
}
