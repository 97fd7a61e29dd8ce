package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/caresync/clinic-system/internal/core/domain"
	"github.com/caresync/clinic-system/internal/core/ports"
)

const departmentCollection = "departments"

type MongoDepartmentRepository struct {
	coll *mongo.Collection
}

func NewDepartmentRepository(db *mongo.Database) *MongoDepartmentRepository {
	return &MongoDepartmentRepository{coll: db.Collection(departmentCollection)}
}

type mongoDepartment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
}

func (r *MongoDepartmentRepository) Create(ctx context.Context, department *domain.Department) (*domain.Department, error) {
	doc := mongoDepartment{
		Name:        department.Name,
		Description: department.Description,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDepartmentExists
		}
		return nil, fmt.Errorf("insert department: %w", err)
	}

	created := *department
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoDepartmentRepository) FindByID(ctx context.Context, id string) (*domain.Department, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDepartmentNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoDepartmentRepository) FindByName(ctx context.Context, name string) (*domain.Department, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

// List returns all departments ordered by name for predictable
// rendering downstream.
func (r *MongoDepartmentRepository) List(ctx context.Context) ([]*domain.Department, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer cursor.Close(ctx)

	var departments []*domain.Department
	for cursor.Next(ctx) {
		var md mongoDepartment
		if err := cursor.Decode(&md); err != nil {
			return nil, fmt.Errorf("decode department: %w", err)
		}
		departments = append(departments, md.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate departments: %w", err)
	}
	return departments, nil
}

func (r *MongoDepartmentRepository) Update(ctx context.Context, id string, update ports.DepartmentUpdate) (*domain.Department, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDepartmentNotFound
	}

	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	var md mongoDepartment
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&md)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("update department: %w", err)
	}
	return md.toDomain(), nil
}

func (r *MongoDepartmentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrDepartmentNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

func (r *MongoDepartmentRepository) findOne(ctx context.Context, filter bson.M) (*domain.Department, error) {
	var md mongoDepartment
	if err := r.coll.FindOne(ctx, filter).Decode(&md); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("find department: %w", err)
	}
	return md.toDomain(), nil
}

func (md mongoDepartment) toDomain() *domain.Department {
	return &domain.Department{
		ID:          md.ID.Hex(),
		Name:        md.Name,
		Description: md.Description,
	}
}
