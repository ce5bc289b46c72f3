package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dseu-petition/petition-api/internal/auth"
	"github.com/dseu-petition/petition-api/internal/models"
)

type AuthService struct {
	profiles  ProfileStore
	jwtSecret string
}

func NewAuthService(profiles ProfileStore, jwtSecret string) *AuthService {
	return &AuthService{profiles: profiles, jwtSecret: jwtSecret}
}

type AuthResult struct {
	Token   string                 `json:"token"`
	Profile models.ProfileResponse `json:"profile"`
}

func (s *AuthService) Register(ctx context.Context, email, password, fullName string) (*AuthResult, error) {
	if len(password) < 6 {
		return nil, errors.New("password must be at least 6 characters")
	}
	if len(fullName) < 2 {
		return nil, errors.New("full name must be at least 2 characters")
	}
	existing, _ := s.profiles.FindByEmail(ctx, email)
	if existing != nil {
		return nil, errors.New("email already registered")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	profile := &models.Profile{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}
	token, err := auth.GenerateToken(s.jwtSecret, profile.ID.String(), email, profile.IsAdmin)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, Profile: profile.ToResponse()}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	profile, err := s.profiles.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("invalid credentials")
	}
	if !auth.CheckPassword(password, profile.PasswordHash) {
		return nil, errors.New("invalid credentials")
	}
	token, err := auth.GenerateToken(s.jwtSecret, profile.ID.String(), profile.Email, profile.IsAdmin)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, Profile: profile.ToResponse()}, nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (*models.ProfileResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user id")
	}
	profile, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}
	resp := profile.ToResponse()
	return &resp, nil
}

func (s *AuthService) SeedAdmin(ctx context.Context, email, password string) error {
	existing, _ := s.profiles.FindByEmail(ctx, email)
	if existing != nil {
		return nil
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	profile := &models.Profile{
		Email:        email,
		PasswordHash: hash,
		FullName:     "Admin",
		IsAdmin:      true,
		CreatedAt:    time.Now().UTC(),
	}
	return s.profiles.Create(ctx, profile)
}
