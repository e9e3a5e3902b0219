package appointments

import (
	"context"
	"time"

	"careconnect-service/internal/app/models"
	"careconnect-service/internal/pkg/constvars"
	"careconnect-service/internal/pkg/exceptions"
	"careconnect-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

// EnsureIndexes creates the partial unique index that makes double booking
// impossible at the storage layer. Only pending and approved documents are
// covered, so a rejected or cancelled slot can be booked again.
func (r *AppointmentMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "doctorId", Value: 1},
			{Key: "appointmentDate", Value: 1},
			{Key: "timeSlot", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"status": bson.M{"$in": bson.A{constvars.AppointmentStatusPending, constvars.AppointmentStatusApproved}},
			}),
	})
	return err
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrSlotAlreadyBooked(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var appointment models.Appointment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindByPatient(ctx context.Context, patientID, status string) ([]models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"patientId": objectID}
	if status != "" {
		filter["status"] = status
	}

	return r.findAll(ctx, filter, bson.D{{Key: "appointmentDate", Value: -1}, {Key: "createdAt", Value: -1}})
}

func (r *AppointmentMongoRepository) FindByDoctor(ctx context.Context, doctorID, status string, date *time.Time) ([]models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"doctorId": objectID}
	if status != "" {
		filter["status"] = status
	}
	if date != nil {
		start, end := utils.UTCDayRange(*date)
		filter["appointmentDate"] = bson.M{"$gte": start, "$lt": end}
	}

	return r.findAll(ctx, filter, bson.D{{Key: "appointmentDate", Value: 1}, {Key: "createdAt", Value: 1}})
}

func (r *AppointmentMongoRepository) FindBookedSlots(ctx context.Context, doctorID string, date time.Time) ([]string, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	start, end := utils.UTCDayRange(date)
	filter := bson.M{
		"doctorId":        objectID,
		"appointmentDate": bson.M{"$gte": start, "$lt": end},
		"status":          bson.M{"$in": bson.A{constvars.AppointmentStatusPending, constvars.AppointmentStatusApproved}},
	}

	values, err := r.Collection.Distinct(ctx, "timeSlot", filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	slots := make([]string, 0, len(values))
	for _, value := range values {
		if slot, ok := value.(string); ok {
			slots = append(slots, slot)
		}
	}
	return slots, nil
}

func (r *AppointmentMongoRepository) HasActiveSlot(ctx context.Context, doctorID string, date time.Time, timeSlot string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	start, end := utils.UTCDayRange(date)
	filter := bson.M{
		"doctorId":        objectID,
		"appointmentDate": bson.M{"$gte": start, "$lt": end},
		"timeSlot":        timeSlot,
		"status":          bson.M{"$in": bson.A{constvars.AppointmentStatusPending, constvars.AppointmentStatusApproved}},
	}

	count, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count > 0, nil
}

func (r *AppointmentMongoRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	filter := bson.M{"_id": appointment.ID}
	_, err := r.Collection.ReplaceOne(ctx, filter, appointment, options.Replace().SetUpsert(false))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrSlotAlreadyBooked(err)
		}
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) findAll(ctx context.Context, filter bson.M, sort bson.D) ([]models.Appointment, error) {
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}
