package labResults

import (
	"context"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type LabResultMongoRepository struct {
	Collection *mongo.Collection
}

func NewLabResultMongoRepository(db *mongo.Client, dbName string) contracts.LabResultRepository {
	return &LabResultMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionLabResults),
	}
}

func (r *LabResultMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.LabResult, error) {
	labResults := make([]models.LabResult, 0)
	cursor, err := r.Collection.Find(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &labResults); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return labResults, nil
}
