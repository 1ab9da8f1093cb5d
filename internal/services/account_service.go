package services

import (
	"errors"
	"strings"

	"github.com/andikahakim/royba/internal/models"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidAccount     = errors.New("invalid account input")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrLastManager        = errors.New("cannot delete the last manager")
)

type AccountStore interface {
	ListUsers() ([]models.User, error)
	GetUser(userID string) (models.User, bool, error)
	FindUserByUsername(username string) (models.User, bool, error)
	UpsertUser(user models.User) error
	DeleteUser(userID string) error
}

type AccountService struct {
	users AccountStore
}

func NewAccountService(users AccountStore) *AccountService {
	return &AccountService{users: users}
}

func (service *AccountService) Authenticate(username string, password string) (models.User, error) {
	user, found, err := service.users.FindUserByUsername(strings.TrimSpace(username))
	if err != nil {
		return models.User{}, err
	}
	if !found || user.Password != password {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AccountService) ListUsers() ([]models.User, error) {
	return service.users.ListUsers()
}

func (service *AccountService) GetUser(userID string) (models.User, bool, error) {
	return service.users.GetUser(userID)
}

func (service *AccountService) CreateUser(username string, password string, name string, role string) (models.User, error) {
	username = strings.TrimSpace(username)
	name = strings.TrimSpace(name)
	if username == "" || password == "" || name == "" {
		return models.User{}, ErrInvalidAccount
	}
	if role != models.RoleManager && role != models.RoleEmployee {
		return models.User{}, ErrInvalidAccount
	}

	_, taken, err := service.users.FindUserByUsername(username)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrUsernameTaken
	}

	user := models.User{
		ID:       uuid.NewString(),
		Username: username,
		Password: password,
		Name:     name,
		Role:     role,
	}
	if err := service.users.UpsertUser(user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// DeleteUser removes an account. Deleting the last remaining manager is
// refused: without a manager nobody could resolve requests or manage
// accounts again.
func (service *AccountService) DeleteUser(userID string) (bool, error) {
	user, found, err := service.users.GetUser(userID)
	if err != nil || !found {
		return false, err
	}

	if user.IsManager() {
		users, err := service.users.ListUsers()
		if err != nil {
			return false, err
		}
		managers := 0
		for _, candidate := range users {
			if candidate.IsManager() {
				managers++
			}
		}
		if managers <= 1 {
			return false, ErrLastManager
		}
	}

	if err := service.users.DeleteUser(userID); err != nil {
		return false, err
	}
	return true, nil
}
