package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vivahsetu/vivahsetu/internal/domain/entity"
	repo "github.com/vivahsetu/vivahsetu/internal/domain/repository"
)

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const (
	usersKey   = "users"
	sessionKey = "sessionUser"
)

// AccountService is the account directory: the users array document plus the
// single session slot. Mutations are serialized behind mu because a store
// read followed by a write is not atomic as a pair.
type AccountService struct {
	Store  repo.Store
	Logger *logrus.Logger

	mu sync.Mutex
}

func NewAccountService(store repo.Store, logger *logrus.Logger) *AccountService {
	return &AccountService{Store: store, Logger: logger}
}

func (s *AccountService) loadUsers(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	found, err := s.Store.Get(ctx, usersKey, &users)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if !found {
		return []entity.User{}, nil
	}
	return users, nil
}

// Register appends a new account. Email comparison and storage are
// lowercase-normalized; a case-insensitive duplicate fails with
// ErrDuplicateEmail.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return nil, ErrDuplicateEmail
		}
	}

	u := entity.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     strings.ToLower(email),
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}
	users = append(users, u)
	if err := s.Store.Set(ctx, usersKey, users); err != nil {
		return nil, fmt.Errorf("save users: %w", err)
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("account registered")
	}
	return &u, nil
}

// Login matches email (case-insensitively, via lowercase normalization) and
// password byte-for-byte, then persists the session slot.
func (s *AccountService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	norm := strings.ToLower(email)
	for _, u := range users {
		if u.Email == norm && u.Password == password {
			if err := s.Store.Set(ctx, sessionKey, u.Email); err != nil {
				return nil, fmt.Errorf("save session: %w", err)
			}
			return &u, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// Logout clears the session slot unconditionally.
func (s *AccountService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Store.Remove(ctx, sessionKey)
}

// CurrentUser resolves the session slot against the directory. No session,
// or a session email that no longer resolves (directory cleared externally),
// yields nil without error.
func (s *AccountService) CurrentUser(ctx context.Context) (*entity.User, error) {
	var email string
	found, err := s.Store.Get(ctx, sessionKey, &email)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !found || email == "" {
		return nil, nil
	}
	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}
