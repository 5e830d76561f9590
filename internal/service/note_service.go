package service

import (
	"context"
	"strings"
	"time"

	"notedeck/internal/domain"
	"notedeck/internal/repository"
)

type NoteService struct {
	repo repository.NoteRepository
}

func NewNoteService(repo repository.NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// List returns every note, newest first. The store applies the ordering;
// an empty collection is a valid result, not an error.
func (s *NoteService) List(ctx context.Context) ([]*domain.Note, error) {
	return s.repo.List(ctx)
}

// Search filters the full collection case-insensitively over title, content
// and actions. An empty query returns everything.
func (s *NoteService) Search(ctx context.Context, query string) ([]*domain.Note, error) {
	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterNotes(notes, query), nil
}

// Create inserts a new note. A missing title falls back to the default
// rather than failing; content and actions default to empty. The store
// assigns the id and creation timestamp.
func (s *NoteService) Create(ctx context.Context, req *domain.CreateNoteRequest) (*domain.Note, error) {
	title := req.Title
	if title == "" {
		title = domain.DefaultTitle
	}

	return s.repo.Insert(ctx, &domain.NoteFields{
		Title:   title,
		Content: req.Content,
		Actions: req.Actions,
	})
}

// Update rewrites the note's fields and stamps last_update. A title that
// trims to empty is rejected before the store is touched; a missing id
// surfaces as repository.ErrNotFound.
func (s *NoteService) Update(ctx context.Context, id string, req *domain.UpdateNoteRequest) (*domain.Note, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	now := time.Now().UTC()

	return s.repo.Update(ctx, id, &domain.NoteFields{
		Title:      title,
		Content:    strings.TrimSpace(req.Content),
		Actions:    strings.TrimSpace(req.Actions),
		LastUpdate: &now,
	})
}

// Delete removes the note and returns its last persisted state.
func (s *NoteService) Delete(ctx context.Context, id string) (*domain.Note, error) {
	return s.repo.Delete(ctx, id)
}

// Ping verifies store connectivity for the diagnostics endpoint.
func (s *NoteService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
