package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/rohits-web03/resumehub/internal/config"
	"github.com/rohits-web03/resumehub/internal/models"
	"go.uber.org/zap"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when a write violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)

type UserRepository interface {
	FindUserByID(ctx context.Context, id string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	InsertUser(ctx context.Context, user models.User) error
}

type ProfileRepository interface {
	FindProfileByEmail(ctx context.Context, email string) (models.Profile, error)
	// UpsertProfile inserts the profile or replaces the one with the same ID.
	// CreatedAt is only written on insert.
	UpsertProfile(ctx context.Context, profile models.Profile) error
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	// EnsureProfileIndexes creates the unique email index if it is missing.
	EnsureProfileIndexes(ctx context.Context) error
}

// Store is the persistence handle shared by the whole process. It is opened
// once at startup and closed on shutdown.
type Store interface {
	UserRepository
	ProfileRepository
	Close(ctx context.Context) error
}

// Open connects to the backend selected by cfg.DBDriver.
func Open(ctx context.Context, cfg config.Config, log *zap.Logger) (Store, error) {
	switch cfg.DBDriver {
	case config.DriverMongo:
		return OpenMongo(ctx, cfg.MongoURI, cfg.MongoDBName, log)
	case config.DriverPostgres:
		return OpenPostgres(cfg.DB_URL, log)
	case config.DriverMemory:
		log.Warn("Using in-memory store, data will not survive a restart")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DBDriver)
	}
}
