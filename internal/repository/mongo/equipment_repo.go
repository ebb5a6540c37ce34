package mongo

import (
	"context"
	"errors"
	"log"
	"time"

	"gym-api/internal/domain"
	"gym-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const equipmentCollectionName = "equipment"

// mongoEquipmentRepository implements repository.EquipmentRepository
type mongoEquipmentRepository struct {
	collection *mongo.Collection
}

// NewMongoEquipmentRepository creates a new Equipment repository backed by MongoDB.
func NewMongoEquipmentRepository(db *mongo.Database) repository.EquipmentRepository {
	return &mongoEquipmentRepository{
		collection: db.Collection(equipmentCollectionName),
	}
}

// Create inserts a new piece of equipment into the database.
func (r *mongoEquipmentRepository) Create(ctx context.Context, equipment *domain.Equipment) (primitive.ObjectID, error) {
	if equipment.Name == "" {
		return primitive.NilObjectID, errors.New("equipment name is required")
	}

	equipment.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	equipment.CreatedAt = now
	equipment.UpdatedAt = now
	if equipment.Status == "" {
		equipment.Status = domain.EquipmentAvailable
	}

	result, err := r.collection.InsertOne(ctx, equipment)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByID retrieves a piece of equipment by its ID.
func (r *mongoEquipmentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Equipment, error) {
	var equipment domain.Equipment
	filter := bson.M{"_id": id, "deletedAt": nil}

	err := r.collection.FindOne(ctx, filter).Decode(&equipment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &equipment, nil
}

// GetAll retrieves all equipment that has not been soft-deleted.
func (r *mongoEquipmentRepository) GetAll(ctx context.Context) ([]domain.Equipment, error) {
	var equipment []domain.Equipment

	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, notDeleted, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &equipment); err != nil {
		return nil, err
	}

	return equipment, nil
}

// EnsureEquipmentIndexes creates necessary indexes for the equipment collection.
func EnsureEquipmentIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Serial numbers are unique per item but optional, hence sparse.
			Keys:    bson.D{{Key: "serialNumber", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.Printf("Warning: Could not create indexes for equipment collection: %v", err)
	}
}

// Delete marks a piece of equipment as deleted without removing the document.
func (r *mongoEquipmentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	filter := bson.M{"_id": id, "deletedAt": nil}
	update := bson.M{"$set": bson.M{"deletedAt": time.Now().UTC()}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
