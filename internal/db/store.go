package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Dino-996/microservizi-tracker/internal/models"
	"github.com/Dino-996/microservizi-tracker/internal/tracker"
)

// Store implements tracker.Store on top of the mongo collections.
type Store struct {
	mongo *Mongo
}

func NewStore(mongo *Mongo) *Store {
	return &Store{mongo: mongo}
}

func (s *Store) InsertUser(ctx context.Context, user models.User) error {
	if _, err := s.mongo.Users.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("mongo: insert user: %w", err)
	}
	return nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	projection := options.Find().SetProjection(bson.M{"_id": 1, "username": 1})
	cursor, err := s.mongo.Users.Find(ctx, bson.M{}, projection)
	if err != nil {
		return nil, fmt.Errorf("mongo: list users: %w", err)
	}

	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("mongo: decode users: %w", err)
	}
	return users, nil
}

func (s *Store) FindUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.mongo.Users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, tracker.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo: find user: %w", err)
	}
	return &user, nil
}

func (s *Store) InsertLog(ctx context.Context, entry models.LogEntry) error {
	if _, err := s.mongo.Exercises.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("mongo: insert log entry: %w", err)
	}
	return nil
}

// LogsByUser returns the user's entries in natural (insertion) order. Range
// and limit filtering happen in the service, not here: dates are stored as
// display strings, so the bounds cannot be pushed into the query.
func (s *Store) LogsByUser(ctx context.Context, userID string) ([]models.LogEntry, error) {
	cursor, err := s.mongo.Exercises.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("mongo: find log entries: %w", err)
	}

	entries := make([]models.LogEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("mongo: decode log entries: %w", err)
	}
	return entries, nil
}
