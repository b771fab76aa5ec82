package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mlindqvist/focal/internal/domain"
	"github.com/mlindqvist/focal/internal/repository"
)

type journalService struct {
	journal repository.JournalRepo
	session Session
	now     func() time.Time
}

func NewJournalService(journal repository.JournalRepo, session Session) JournalService {
	return &journalService{journal: journal, session: session, now: time.Now}
}

// Add stores an entry. The week bucket is always recomputed from the entry
// date; the caller never sets it.
func (s *journalService) Add(ctx context.Context, e *domain.JournalEntry) error {
	if !s.session.Authenticated() {
		return ErrNotAuthenticated
	}
	if e.Content == "" {
		return fmt.Errorf("journal content is required")
	}
	if !domain.ValidJournalSections[string(e.Section)] {
		return fmt.Errorf("invalid journal section %q", e.Section)
	}
	if e.Date.IsZero() {
		e.Date = s.now().UTC()
	}
	e.Week, e.Year = domain.BucketFor(e.Date)
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	e.UserID = s.session.UserID
	now := s.now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	return s.journal.Create(ctx, e)
}

func (s *journalService) List(ctx context.Context) ([]*domain.JournalEntry, error) {
	if !s.session.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	return s.journal.ListByUser(ctx, s.session.UserID)
}

func (s *journalService) ListWeek(ctx context.Context, year, week int) ([]*domain.JournalEntry, error) {
	if !s.session.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	return s.journal.ListByBucket(ctx, s.session.UserID, year, week)
}

func (s *journalService) Update(ctx context.Context, e *domain.JournalEntry) error {
	if !s.session.Authenticated() {
		return ErrNotAuthenticated
	}
	if !domain.ValidJournalSections[string(e.Section)] {
		return fmt.Errorf("invalid journal section %q", e.Section)
	}
	existing, err := s.ownedEntry(ctx, e.ID)
	if err != nil {
		return err
	}
	e.UserID = existing.UserID
	e.Week, e.Year = domain.BucketFor(e.Date)
	e.UpdatedAt = s.now().UTC()
	return s.journal.Update(ctx, e)
}

func (s *journalService) Delete(ctx context.Context, id string) error {
	if !s.session.Authenticated() {
		return ErrNotAuthenticated
	}
	if _, err := s.ownedEntry(ctx, id); err != nil {
		return err
	}
	return s.journal.Delete(ctx, id)
}

func (s *journalService) ownedEntry(ctx context.Context, id string) (*domain.JournalEntry, error) {
	e, err := s.journal.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if e.UserID != s.session.UserID {
		return nil, ErrNotFound
	}
	return e, nil
}
