package vaccinations

import (
	"context"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type VaccinationMongoRepository struct {
	Collection *mongo.Collection
}

func NewVaccinationMongoRepository(db *mongo.Client, dbName string) contracts.VaccinationRepository {
	return &VaccinationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionVaccinations),
	}
}

func (r *VaccinationMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Vaccination, error) {
	vaccinations := make([]models.Vaccination, 0)
	cursor, err := r.Collection.Find(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &vaccinations); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return vaccinations, nil
}
