// Package db provides MongoDB document store access for the report catalog.
package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jonathan/report-explorer/internal/types"
)

// Collection names within the explorer database.
const (
	reportsCollection   = "ResearchReports"
	usersCollection     = "Users"
	allowListCollection = "AllowedUsersMails"
)

// ErrDuplicateUsername indicates an insert hit the unique username index.
var ErrDuplicateUsername = errors.New("username already exists")

// Store wraps a MongoDB client and database handle.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes a connection to the document store.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{client: client, db: client.Database(database)}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the store relies on. The unique
// username index is what makes registration a single atomic
// insert-if-absent operation.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create username index: %w", err)
	}
	return nil
}

// ListAnalysedReports retrieves every report document with status
// "analysed", in natural order.
func (s *Store) ListAnalysedReports(ctx context.Context) ([]types.ReportDocument, error) {
	cursor, err := s.db.Collection(reportsCollection).Find(ctx, bson.M{"status": "analysed"})
	if err != nil {
		return nil, fmt.Errorf("failed to list analysed reports: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []types.ReportDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode reports: %w", err)
	}
	return docs, nil
}

// GetReport retrieves a single report document by ID.
// Returns nil if no document matches.
func (s *Store) GetReport(ctx context.Context, id string) (*types.ReportDocument, error) {
	var doc types.ReportDocument
	err := s.db.Collection(reportsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report %s: %w", id, err)
	}
	return &doc, nil
}

// GetUserByUsername retrieves a user account by its exact, case-sensitive
// username. Returns nil if no account matches.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	err := s.db.Collection(usersCollection).FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user %s: %w", username, err)
	}
	return &user, nil
}

// InsertUser inserts a new user account. Uniqueness is enforced by the
// username index; a constraint violation surfaces as ErrDuplicateUsername.
func (s *Store) InsertUser(ctx context.Context, user *User) error {
	_, err := s.db.Collection(usersCollection).InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// AllowedEmails retrieves the externally maintained allow-list of email
// addresses permitted to register. A missing allow-list document means
// an empty list, not an error.
func (s *Store) AllowedEmails(ctx context.Context) ([]string, error) {
	var doc struct {
		Emails []string `bson:"emails"`
	}
	err := s.db.Collection(allowListCollection).FindOne(ctx, bson.M{}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get allow-list: %w", err)
	}
	return doc.Emails, nil
}
