package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/caresync/clinic-system/internal/core/domain"
	"github.com/caresync/clinic-system/internal/core/ports"
)

const appointmentCollection = "appointments"

type MongoAppointmentRepository struct {
	coll *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *MongoAppointmentRepository {
	return &MongoAppointmentRepository{coll: db.Collection(appointmentCollection)}
}

type mongoAppointment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	PatientID     string             `bson:"patient_id"`
	DepartmentID  string             `bson:"department_id"`
	DoctorID      string             `bson:"doctor_id"`
	Status        string             `bson:"status"`
	Date          time.Time          `bson:"date"`
	Time          string             `bson:"time"`
	ReservationID string             `bson:"reservation_id"`
	Notes         string             `bson:"notes,omitempty"`
}

func (r *MongoAppointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	doc := mongoAppointment{
		PatientID:     appointment.PatientID,
		DepartmentID:  appointment.DepartmentID,
		DoctorID:      appointment.DoctorID,
		Status:        string(appointment.Status),
		Date:          appointment.Date.UTC(),
		Time:          appointment.Time,
		ReservationID: appointment.ReservationID,
		Notes:         appointment.Notes,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}

	created := *appointment
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoAppointmentRepository) FindByID(ctx context.Context, id string) (*domain.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAppointmentNotFound
	}

	var ma mongoAppointment
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *MongoAppointmentRepository) List(ctx context.Context, filter ports.AppointmentFilter) ([]*domain.Appointment, error) {
	query := bson.M{}
	if filter.DoctorID != "" {
		query["doctor_id"] = filter.DoctorID
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []*domain.Appointment
	for cursor.Next(ctx) {
		var ma mongoAppointment
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode appointment: %w", err)
		}
		appointments = append(appointments, ma.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate appointments: %w", err)
	}
	return appointments, nil
}

// Update applies only the non-nil fields of update.
func (r *MongoAppointmentRepository) Update(ctx context.Context, id string, update ports.AppointmentUpdate) (*domain.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAppointmentNotFound
	}

	set := bson.M{}
	if update.PatientID != nil {
		set["patient_id"] = *update.PatientID
	}
	if update.DepartmentID != nil {
		set["department_id"] = *update.DepartmentID
	}
	if update.DoctorID != nil {
		set["doctor_id"] = *update.DoctorID
	}
	if update.Status != nil {
		set["status"] = string(*update.Status)
	}
	if update.Date != nil {
		set["date"] = update.Date.UTC()
	}
	if update.Time != nil {
		set["time"] = *update.Time
	}
	if update.ReservationID != nil {
		set["reservation_id"] = *update.ReservationID
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	var ma mongoAppointment
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&ma)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	return ma.toDomain(), nil
}

func (ma mongoAppointment) toDomain() *domain.Appointment {
	return &domain.Appointment{
		ID:            ma.ID.Hex(),
		PatientID:     ma.PatientID,
		DepartmentID:  ma.DepartmentID,
		DoctorID:      ma.DoctorID,
		Status:        domain.AppointmentStatus(ma.Status),
		Date:          ma.Date,
		Time:          ma.Time,
		ReservationID: ma.ReservationID,
		Notes:         ma.Notes,
	}
}
