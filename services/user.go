package services

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/ray-remotestate/orderdesk/apperr"
	"github.com/ray-remotestate/orderdesk/models"
	"github.com/ray-remotestate/orderdesk/utils"
)

type UserService struct {
	store Store
}

func NewUserService(store Store) *UserService {
	return &UserService{store: store}
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (s *UserService) Register(in RegisterInput) (*models.User, error) {
	taken, err := s.store.Users().EmailTaken(in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Validation("Validation Error", map[string]string{
			"email": "email is already registered",
		})
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hashed,
	}
	if err := s.store.Users().Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Authenticate(in LoginInput) (*models.User, error) {
	user, err := s.store.Users().GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)) != nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}
	return user, nil
}
