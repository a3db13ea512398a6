package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/models"
	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/store"
	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/utils"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	msgInvalidCredentials = "Invalid credentials"
	msgInvalidToken       = "Invalid or expired token"
)

// AuthService registers members, checks credentials and resolves session tokens.
type AuthService struct {
	users     store.UserStore
	tokens    *utils.TokenManager
	validate  *validator.Validate
	now       func() time.Time
	dummyHash string
}

func NewAuthService(users store.UserStore, tokens *utils.TokenManager) (*AuthService, error) {
	// Verified against when the email is unknown so both failure paths cost the same.
	dummyHash, err := utils.HashPass("empowerher-timing-equalizer")
	if err != nil {
		return nil, err
	}
	return &AuthService{
		users:     users,
		tokens:    tokens,
		validate:  validator.New(),
		now:       time.Now,
		dummyHash: dummyHash,
	}, nil
}

func (s *AuthService) Register(ctx context.Context, in models.UserRegistration) (*models.AuthResponse, error) {
	in.Email = normalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)

	if err := s.validate.Struct(in); err != nil {
		log.Println(err)
		return nil, validationError("A valid email, password and name are required")
	}

	_, err := s.users.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, validationError("User already exists")
	case !errors.Is(err, store.ErrNotFound):
		return nil, serverError("Failed to check existing user", err)
	}

	hash, err := utils.HashPass(in.Password)
	if err != nil {
		return nil, serverError("Error hashing password", err)
	}

	now := s.now()
	user := &models.User{
		Email:     in.Email,
		Name:      in.Name,
		Password:  hash,
		Role:      models.RoleMember,
		Interests: []string{},
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return nil, validationError("User already exists")
		}
		return nil, serverError("Error adding user", err)
	}

	return s.session(user)
}

// Login answers every credential failure with the same message.
func (s *AuthService) Login(ctx context.Context, in models.UserLogin) (*models.AuthResponse, error) {
	in.Email = normalizeEmail(in.Email)
	if err := s.validate.Struct(in); err != nil {
		return nil, validationError("Email and password are required")
	}

	user, err := s.users.FindByEmail(ctx, in.Email)
	if errors.Is(err, store.ErrNotFound) {
		_ = utils.ComparePass(in.Password, s.dummyHash)
		return nil, authError(msgInvalidCredentials, err)
	}
	if err != nil {
		return nil, serverError("Error logging in", err)
	}

	if err := utils.ComparePass(in.Password, user.Password); err != nil {
		if errors.Is(err, utils.ErrHashFormat) {
			log.Printf("stored password hash for user %s is malformed", user.ID.Hex())
		}
		return nil, authError(msgInvalidCredentials, err)
	}
	if !user.IsActive {
		return nil, authError(msgInvalidCredentials, errors.New("account is inactive"))
	}

	return s.session(user)
}

// VerifySession resolves a bearer token to its active user.
func (s *AuthService) VerifySession(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokens.ParseToken(token)
	if err != nil {
		return nil, authError(msgInvalidToken, err)
	}

	userID, err := bson.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, authError(msgInvalidToken, err)
	}

	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, authError(msgInvalidToken, err)
	}
	if err != nil {
		return nil, serverError("Server error", err)
	}
	if !user.IsActive {
		return nil, authError(msgInvalidToken, errors.New("account is inactive"))
	}
	return user, nil
}

// UpdateProfile applies the provided fields to the caller's own record.
func (s *AuthService) UpdateProfile(ctx context.Context, userID bson.ObjectID, in models.ProfileUpdate) (*models.User, error) {
	changes := store.ProfileChanges{UpdatedAt: s.now()}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, validationError("Name cannot be empty")
		}
		changes.Name = &name
	}
	if in.Bio != nil {
		bio := strings.TrimSpace(*in.Bio)
		changes.Bio = &bio
	}
	if in.Interests != nil {
		interests := normalizeInterests(*in.Interests)
		changes.Interests = &interests
	}

	user, err := s.users.UpdateProfile(ctx, userID, changes)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFoundError("User not found")
	}
	if err != nil {
		return nil, serverError("Failed to update profile", err)
	}
	return user, nil
}

func (s *AuthService) session(user *models.User) (*models.AuthResponse, error) {
	token, err := s.tokens.SignedToken(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, serverError("Error generating token", err)
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizeInterests trims tags, drops empty ones and removes duplicates,
// keeping the first occurrence.
func normalizeInterests(raw []string) []string {
	interests := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, tag := range raw {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		interests = append(interests, tag)
	}
	return interests
}
