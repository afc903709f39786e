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

var ErrProfileNotFound = errors.New("profile not found")

const biodataKey = "biodata"

// ValidationError carries the per-field messages produced by
// entity.ValidateProfile for a rejected create or update.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// BiodataService is the profile directory: create, update-by-id,
// delete-by-id and full-scan listing over the biodata array document.
type BiodataService struct {
	Store  repo.Store
	Logger *logrus.Logger

	mu sync.Mutex
}

func NewBiodataService(store repo.Store, logger *logrus.Logger) *BiodataService {
	return &BiodataService{Store: store, Logger: logger}
}

func (s *BiodataService) loadProfiles(ctx context.Context) ([]entity.Profile, error) {
	var profiles []entity.Profile
	found, err := s.Store.Get(ctx, biodataKey, &profiles)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	if !found {
		return []entity.Profile{}, nil
	}
	return profiles, nil
}

// List returns all profiles in insertion order.
func (s *BiodataService) List(ctx context.Context) ([]entity.Profile, error) {
	return s.loadProfiles(ctx)
}

// Get returns the profile with the given id, or ErrProfileNotFound.
func (s *BiodataService) Get(ctx context.Context, id string) (*entity.Profile, error) {
	profiles, err := s.loadProfiles(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrProfileNotFound
}

// Create validates p, assigns an id when the caller supplied none, and
// appends it to the directory.
func (s *BiodataService) Create(ctx context.Context, p entity.Profile) (*entity.Profile, error) {
	if msgs := entity.ValidateProfile(p); len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.loadProfiles(ctx)
	if err != nil {
		return nil, err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	profiles = append(profiles, p)
	if err := s.Store.Set(ctx, biodataKey, profiles); err != nil {
		return nil, fmt.Errorf("save profiles: %w", err)
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"profile_id": p.ID, "owner": p.OwnerEmail}).Info("profile created")
	}
	return &p, nil
}

// Update replaces the record sharing p.ID in place, preserving its position.
// A miss fails with ErrProfileNotFound and leaves the directory unchanged.
func (s *BiodataService) Update(ctx context.Context, p entity.Profile) (*entity.Profile, error) {
	if msgs := entity.ValidateProfile(p); len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.loadProfiles(ctx)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].ID == p.ID {
			if p.CreatedAt.IsZero() {
				p.CreatedAt = profiles[i].CreatedAt
			}
			profiles[i] = p
			if err := s.Store.Set(ctx, biodataKey, profiles); err != nil {
				return nil, fmt.Errorf("save profiles: %w", err)
			}
			return &p, nil
		}
	}
	return nil, ErrProfileNotFound
}

// Delete removes the matching record. Deleting an absent id is a no-op, not
// an error.
func (s *BiodataService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.loadProfiles(ctx)
	if err != nil {
		return err
	}
	kept := profiles[:0]
	for _, p := range profiles {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if err := s.Store.Set(ctx, biodataKey, kept); err != nil {
		return fmt.Errorf("save profiles: %w", err)
	}
	return nil
}

// Search does a case-insensitive substring match against each profile's
// name, location and education. An empty query returns everything. This is a
// full linear scan; the directory holds at most a few hundred records.
func (s *BiodataService) Search(ctx context.Context, query string) ([]entity.Profile, error) {
	profiles, err := s.loadProfiles(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return profiles, nil
	}
	matched := make([]entity.Profile, 0, len(profiles))
	for _, p := range profiles {
		if strings.Contains(strings.ToLower(p.SearchText()), q) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
