package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/rohits-web03/resumehub/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresStore is the relational alternative to MongoStore. Both tables
// carry a unique index on email.
type PostgresStore struct {
	db *gorm.DB
}

func OpenPostgres(dsn string, log *zap.Logger) (*PostgresStore, error) {
	// TranslateError turns unique violations into gorm.ErrDuplicatedKey.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Profile{}); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	log.Info("Successfully connected to database")
	return NewPostgresStore(db), nil
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func gormErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	default:
		return err
	}
}

func (s *PostgresStore) FindUserByID(ctx context.Context, id string) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	return user, gormErr(err)
}

func (s *PostgresStore) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return user, gormErr(err)
}

func (s *PostgresStore) InsertUser(ctx context.Context, user models.User) error {
	return gormErr(s.db.WithContext(ctx).Create(&user).Error)
}

func (s *PostgresStore) FindProfileByEmail(ctx context.Context, email string) (models.Profile, error) {
	var profile models.Profile
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&profile).Error
	return profile, gormErr(err)
}

func (s *PostgresStore) UpsertProfile(ctx context.Context, profile models.Profile) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "file_name", "file_content", "updated_at"}),
	}).Create(&profile).Error
	return gormErr(err)
}

func (s *PostgresStore) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	profiles := make([]models.Profile, 0)
	if err := s.db.WithContext(ctx).Order("created_at").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *PostgresStore) EnsureProfileIndexes(ctx context.Context) error {
	m := s.db.WithContext(ctx).Migrator()
	if m.HasIndex(&models.Profile{}, "Email") {
		return nil
	}
	return m.CreateIndex(&models.Profile{}, "Email")
}

func (s *PostgresStore) Close(context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
