package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/rohits-web03/resumehub/internal/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/zap"
)

const (
	UsersCollection    = "Users"
	ProfilesCollection = "Profiles"
)

type MongoStore struct {
	client   *mongo.Client
	users    *mongo.Collection
	profiles *mongo.Collection
}

// OpenMongo connects, pings the primary and makes sure the unique email
// index on Users exists.
func OpenMongo(ctx context.Context, uri, dbName string, log *zap.Logger) (*MongoStore, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(dbName)
	s := &MongoStore{
		client:   client,
		users:    db.Collection(UsersCollection),
		profiles: db.Collection(ProfilesCollection),
	}
	if err := ensureUniqueEmail(ctx, s.users); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	log.Info("MongoDB connected", zap.String("database", dbName))
	return s, nil
}

func ensureUniqueEmail(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index on %s: %w", coll.Name(), err)
	}
	return nil
}

// mongoErr maps driver errors onto the package sentinels.
func mongoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	default:
		return err
	}
}

func (s *MongoStore) FindUserByID(ctx context.Context, id string) (models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	return user, mongoErr(err)
}

func (s *MongoStore) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	return user, mongoErr(err)
}

func (s *MongoStore) InsertUser(ctx context.Context, user models.User) error {
	_, err := s.users.InsertOne(ctx, user)
	return mongoErr(err)
}

func (s *MongoStore) FindProfileByEmail(ctx context.Context, email string) (models.Profile, error) {
	var profile models.Profile
	err := s.profiles.FindOne(ctx, bson.M{"email": email}).Decode(&profile)
	return profile, mongoErr(err)
}

func (s *MongoStore) UpsertProfile(ctx context.Context, profile models.Profile) error {
	update := bson.M{
		"$set": bson.M{
			"name":        profile.Name,
			"email":       profile.Email,
			"fileName":    profile.FileName,
			"fileContent": profile.FileContent,
			"updatedAt":   profile.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"createdAt": profile.CreatedAt,
		},
	}
	return retryDuplicateUpsert(func() error {
		_, err := s.profiles.UpdateOne(ctx, bson.M{"_id": profile.ID}, update, options.UpdateOne().SetUpsert(true))
		return mongoErr(err)
	})
}

// retryDuplicateUpsert runs upsert a second time when the first attempt hits
// a duplicate key. Two concurrent upserts of the same new _id both try to
// insert and one fails on the _id index; the retry then matches the stored
// document and updates it. A conflict on email fails the retry as well.
func retryDuplicateUpsert(upsert func() error) error {
	err := upsert()
	if errors.Is(err, ErrDuplicateKey) {
		err = upsert()
	}
	return err
}

func (s *MongoStore) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	cur, err := s.profiles.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	profiles := make([]models.Profile, 0)
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *MongoStore) EnsureProfileIndexes(ctx context.Context) error {
	return ensureUniqueEmail(ctx, s.profiles)
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
