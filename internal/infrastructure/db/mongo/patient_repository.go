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

const patientCollection = "patients"

type MongoPatientRepository struct {
	coll *mongo.Collection
}

func NewPatientRepository(db *mongo.Database) *MongoPatientRepository {
	return &MongoPatientRepository{coll: db.Collection(patientCollection)}
}

type mongoPatient struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Email      string             `bson:"email"`
	Phone      string             `bson:"phone"`
	Gender     string             `bson:"gender,omitempty"`
	BloodGroup string             `bson:"blood_group,omitempty"`
	Address    string             `bson:"address,omitempty"`
	Status     string             `bson:"status"`
	CreatedAt  int64              `bson:"created_at"`
	UpdatedAt  int64              `bson:"updated_at"`
}

func (r *MongoPatientRepository) Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error) {
	now := time.Now().UTC()
	doc := mongoPatient{
		Name:       patient.Name,
		Email:      patient.Email,
		Phone:      patient.Phone,
		Gender:     patient.Gender,
		BloodGroup: patient.BloodGroup,
		Address:    patient.Address,
		Status:     patient.Status,
		CreatedAt:  now.Unix(),
		UpdatedAt:  now.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert patient: %w", err)
	}

	created := *patient
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	created.CreatedAt = now
	created.UpdatedAt = now
	return &created, nil
}

func (r *MongoPatientRepository) FindByID(ctx context.Context, id string) (*domain.Patient, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPatientNotFound
	}

	var mp mongoPatient
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("find patient: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *MongoPatientRepository) List(ctx context.Context) ([]*domain.Patient, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer cursor.Close(ctx)

	var patients []*domain.Patient
	for cursor.Next(ctx) {
		var mp mongoPatient
		if err := cursor.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode patient: %w", err)
		}
		patients = append(patients, mp.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate patients: %w", err)
	}
	return patients, nil
}

func (r *MongoPatientRepository) Update(ctx context.Context, id string, update ports.PatientUpdate) (*domain.Patient, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPatientNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC().Unix()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}
	if update.Gender != nil {
		set["gender"] = *update.Gender
	}
	if update.BloodGroup != nil {
		set["blood_group"] = *update.BloodGroup
	}
	if update.Address != nil {
		set["address"] = *update.Address
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}

	var mp mongoPatient
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mp)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return mp.toDomain(), nil
}

func (mp mongoPatient) toDomain() *domain.Patient {
	return &domain.Patient{
		ID:         mp.ID.Hex(),
		Name:       mp.Name,
		Email:      mp.Email,
		Phone:      mp.Phone,
		Gender:     mp.Gender,
		BloodGroup: mp.BloodGroup,
		Address:    mp.Address,
		Status:     mp.Status,
		CreatedAt:  unixToTime(mp.CreatedAt),
		UpdatedAt:  unixToTime(mp.UpdatedAt),
	}
}
