package consultations

import (
	"context"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ConsultationMongoRepository struct {
	Collection *mongo.Collection
}

func NewConsultationMongoRepository(db *mongo.Client, dbName string) contracts.ConsultationRepository {
	return &ConsultationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionConsultations),
	}
}

func (r *ConsultationMongoRepository) FindByID(ctx context.Context, consultationID string) (*models.Consultation, error) {
	var consultation models.Consultation
	err := r.Collection.FindOne(ctx, bson.M{"_id": consultationID}).Decode(&consultation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &consultation, nil
}

func (r *ConsultationMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Consultation, error) {
	return r.findAll(ctx, bson.M{"patientId": patientID})
}

func (r *ConsultationMongoRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Consultation, error) {
	return r.findAll(ctx, bson.M{"doctorId": doctorID})
}

// findAll returns visits newest first so listings and last-visit lookups read
// naturally without re-sorting.
func (r *ConsultationMongoRepository) findAll(ctx context.Context, filter bson.M) ([]models.Consultation, error) {
	consultations := make([]models.Consultation, 0)
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &consultations); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return consultations, nil
}
