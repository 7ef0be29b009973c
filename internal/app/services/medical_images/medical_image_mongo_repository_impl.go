package medicalImages

import (
	"context"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MedicalImageMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicalImageMongoRepository(db *mongo.Client, dbName string) contracts.MedicalImageRepository {
	return &MedicalImageMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedicalImages),
	}
}

func (r *MedicalImageMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.MedicalImage, error) {
	medicalImages := make([]models.MedicalImage, 0)
	cursor, err := r.Collection.Find(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &medicalImages); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return medicalImages, nil
}
