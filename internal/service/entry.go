package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/wilt/wilt/internal/metrics"
	"github.com/wilt/wilt/internal/model"
	"github.com/wilt/wilt/internal/repository"
)

// Entry service errors.
var (
	ErrTitleRequired   = errors.New("title is required")
	ErrTitleTooLong    = errors.New("title exceeds maximum length")
	ErrContentRequired = errors.New("content is required")
	ErrEntryNotFound   = errors.New("entry not found")
)

// EntryService handles journal entry business logic.
// Every operation is scoped to the calling user: entries belonging to anyone
// else behave exactly like entries that do not exist.
type EntryService struct {
	repo    *repository.Repository
	metrics metrics.Recorder
}

// NewEntryService creates a new EntryService.
func NewEntryService(repo *repository.Repository, recorder metrics.Recorder) *EntryService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &EntryService{
		repo:    repo,
		metrics: recorder,
	}
}

// List returns all entries owned by the caller, newest first.
func (s *EntryService) List(ctx context.Context, callerID string) ([]*model.Entry, error) {
	entries, err := s.repo.ListEntries(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// Create validates input and stores a new entry owned by the caller.
func (s *EntryService) Create(ctx context.Context, callerID, title, content string) (*model.Entry, error) {
	if err := validateEntryFields(title, content); err != nil {
		return nil, err
	}

	entry := &model.Entry{
		ID:        ulid.Make().String(),
		OwnerID:   callerID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.metrics.IncEntryCreated()

	return entry, nil
}

// Get returns the caller's entry with the given id.
func (s *EntryService) Get(ctx context.Context, callerID, id string) (*model.Entry, error) {
	entry, err := s.repo.GetEntry(ctx, id, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

// Update replaces the title and content of the caller's entry.
// id, owner and created_at are immutable.
func (s *EntryService) Update(ctx context.Context, callerID, id, title, content string) (*model.Entry, error) {
	if err := validateEntryFields(title, content); err != nil {
		return nil, err
	}

	entry, err := s.repo.GetEntry(ctx, id, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	entry.Title = title
	entry.Content = content

	if err := s.repo.UpdateEntry(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	s.metrics.IncEntryUpdated()

	return entry, nil
}

// Delete permanently removes the caller's entry.
func (s *EntryService) Delete(ctx context.Context, callerID, id string) error {
	if err := s.repo.DeleteEntry(ctx, id, callerID); err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return ErrEntryNotFound
		}
		return err
	}

	s.metrics.IncEntryDeleted()

	return nil
}

// validateEntryFields checks title and content constraints.
// Content length is unbounded; the request body size cap is the only limit.
func validateEntryFields(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}
	if len(title) > model.MaxTitleLength {
		return ErrTitleTooLong
	}
	if strings.TrimSpace(content) == "" {
		return ErrContentRequired
	}
	return nil
}
