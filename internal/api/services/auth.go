package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rohits-web03/resumehub/internal/apperr"
	"github.com/rohits-web03/resumehub/internal/models"
	"github.com/rohits-web03/resumehub/internal/repositories"
	"github.com/rohits-web03/resumehub/internal/utils"
	"github.com/rohits-web03/resumehub/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultPhotoURL = "https://cdn.pixabay.com/photo/2023/02/18/11/00/icon-7797704_640.png"
	DefaultAbout    = "Hi, I am available"
)

// Session is a signed token and the moment it stops being accepted.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

type AuthOptions struct {
	Secret     []byte
	TokenTTL   time.Duration
	BcryptCost int
}

type AuthService struct {
	users repositories.UserRepository
	opts  AuthOptions
	now   func() time.Time
}

func NewAuthService(users repositories.UserRepository, opts AuthOptions) *AuthService {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = 10
	}
	return &AuthService{users: users, opts: opts, now: time.Now}
}

// SignUp validates the input, stores a new user and opens a session.
func (s *AuthService) SignUp(ctx context.Context, in validation.SignUpInput) (models.User, Session, error) {
	if err := validation.Struct(in); err != nil {
		return models.User{}, Session{}, err
	}

	_, err := s.users.FindUserByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return models.User{}, Session{}, apperr.ErrUserExists
	case !errors.Is(err, repositories.ErrNotFound):
		return models.User{}, Session{}, apperr.Wrap(apperr.CodeInternal, "Database query failed", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.opts.BcryptCost)
	if err != nil {
		return models.User{}, Session{}, apperr.Wrap(apperr.CodeInternal, "Failed to hash password", err)
	}

	user := models.User{
		ID:        UserID(in.FirstName, in.LastName, in.Email),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  string(hash),
		PhotoURL:  DefaultPhotoURL,
		About:     DefaultAbout,
	}
	if err := s.insert(ctx, user); err != nil {
		return models.User{}, Session{}, err
	}

	session, err := s.IssueSession(user.ID)
	if err != nil {
		return models.User{}, Session{}, err
	}
	return user, session, nil
}

// Login checks the credentials. An unknown email and a wrong password both
// yield apperr.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, in validation.LoginInput) (models.User, Session, error) {
	if err := validation.Struct(in); err != nil {
		return models.User{}, Session{}, err
	}

	user, err := s.users.FindUserByEmail(ctx, in.Email)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return models.User{}, Session{}, apperr.ErrInvalidCredentials
	case err != nil:
		return models.User{}, Session{}, apperr.Wrap(apperr.CodeInternal, "Database error", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return models.User{}, Session{}, apperr.ErrInvalidCredentials
	}

	session, err := s.IssueSession(user.ID)
	if err != nil {
		return models.User{}, Session{}, err
	}
	return user, session, nil
}

func (s *AuthService) IssueSession(userID string) (Session, error) {
	token, exp, err := GenerateToken(userID, s.opts.Secret, s.now(), s.opts.TokenTTL)
	if err != nil {
		return Session{}, apperr.Wrap(apperr.CodeInternal, "Failed to create token", err)
	}
	return Session{Token: token, ExpiresAt: exp}, nil
}

// Resolve turns a session token into its user.
func (s *AuthService) Resolve(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, apperr.ErrUnauthenticated
	}
	userID, err := ParseToken(token, s.opts.Secret)
	if err != nil {
		return models.User{}, apperr.Wrap(apperr.CodeInvalidSession, err.Error(), err)
	}

	user, err := s.users.FindUserByID(ctx, userID)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return models.User{}, apperr.ErrUserNotFound
	case err != nil:
		return models.User{}, apperr.Wrap(apperr.CodeInternal, "Database error", err)
	}
	return user, nil
}

// GoogleAccount is the subset of the Google userinfo payload we rely on.
type GoogleAccount struct {
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Name       string `json:"name"`
	Picture    string `json:"picture"`
}

// GoogleSignIn finds the user owning the Google email or creates one with an
// unusable random password, then opens a session.
func (s *AuthService) GoogleSignIn(ctx context.Context, acct GoogleAccount) (models.User, Session, error) {
	if acct.Email == "" {
		return models.User{}, Session{}, apperr.New(apperr.CodeValidation, "Google account has no email")
	}

	user, err := s.users.FindUserByEmail(ctx, acct.Email)
	switch {
	case err == nil:
	case errors.Is(err, repositories.ErrNotFound):
		user, err = s.newGoogleUser(acct)
		if err != nil {
			return models.User{}, Session{}, err
		}
		if err := s.insert(ctx, user); err != nil {
			return models.User{}, Session{}, err
		}
	default:
		return models.User{}, Session{}, apperr.Wrap(apperr.CodeInternal, "Database error", err)
	}

	session, err := s.IssueSession(user.ID)
	if err != nil {
		return models.User{}, Session{}, err
	}
	return user, session, nil
}

func (s *AuthService) newGoogleUser(acct GoogleAccount) (models.User, error) {
	first, last := acct.GivenName, acct.FamilyName
	if first == "" && last == "" {
		first, last, _ = strings.Cut(acct.Name, " ")
	}

	secret, err := utils.GenerateSecureToken(32)
	if err != nil {
		return models.User{}, apperr.Wrap(apperr.CodeInternal, "Failed to generate password", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), s.opts.BcryptCost)
	if err != nil {
		return models.User{}, apperr.Wrap(apperr.CodeInternal, "Failed to hash password", err)
	}

	photo := acct.Picture
	if photo == "" {
		photo = DefaultPhotoURL
	}
	return models.User{
		ID:        UserID(first, last, acct.Email),
		FirstName: first,
		LastName:  last,
		Email:     acct.Email,
		Password:  string(hash),
		PhotoURL:  photo,
		About:     DefaultAbout,
	}, nil
}

func (s *AuthService) insert(ctx context.Context, user models.User) error {
	err := s.users.InsertUser(ctx, user)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrDuplicateKey):
		return apperr.Wrap(apperr.CodeUserExists, apperr.ErrUserExists.Message, err)
	default:
		return apperr.Wrap(apperr.CodeInternal, "Database insert failed", err)
	}
}
