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

const bookingCollectionName = "bookings"

// mongoBookingRepository implements repository.BookingRepository
type mongoBookingRepository struct {
	collection *mongo.Collection
}

// NewMongoBookingRepository creates a new Booking repository backed by MongoDB.
func NewMongoBookingRepository(db *mongo.Database) repository.BookingRepository {
	return &mongoBookingRepository{
		collection: db.Collection(bookingCollectionName),
	}
}

// Create inserts a new booking into the database.
func (r *mongoBookingRepository) Create(ctx context.Context, booking *domain.Booking) (primitive.ObjectID, error) {
	if booking.MemberID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("booking member ID is required")
	}

	booking.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	if booking.Status == "" {
		booking.Status = domain.BookingPending
	}

	result, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByID retrieves a booking by its ID.
func (r *mongoBookingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Booking, error) {
	var booking domain.Booking
	filter := bson.M{"_id": id, "deletedAt": nil}

	err := r.collection.FindOne(ctx, filter).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// GetByMemberID retrieves all bookings made by a specific member.
func (r *mongoBookingRepository) GetByMemberID(ctx context.Context, memberID primitive.ObjectID) ([]domain.Booking, error) {
	var bookings []domain.Booking
	filter := bson.M{"memberId": memberID, "deletedAt": nil}

	findOptions := options.Find().SetSort(bson.D{{Key: "startTime", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

// Update modifies an existing booking (status changes, cancellation) and
// stamps UpdatedAt.
func (r *mongoBookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	if booking.ID == primitive.NilObjectID {
		return errors.New("booking ID is required for update")
	}

	filter := bson.M{"_id": booking.ID, "deletedAt": nil}
	update := bson.M{
		"$set": bson.M{
			"status":             booking.Status,
			"notes":              booking.Notes,
			"cancellationDate":   booking.CancellationDate,
			"cancellationReason": booking.CancellationReason,
			"updatedAt":          time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureBookingIndexes creates necessary indexes for the bookings collection.
func EnsureBookingIndexes(ctx context.Context, collection *mongo.Collection) {
	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "memberId", Value: 1}, {Key: "startTime", Value: -1}},
	}
	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		log.Printf("WARN: Could not create booking memberId index: %v", err)
	}
}
