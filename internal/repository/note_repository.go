package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"notedeck/internal/domain"
)

// ErrNotFound is returned when an update or delete matches zero rows.
var ErrNotFound = errors.New("note not found")

type NoteRepository interface {
	List(ctx context.Context) ([]*domain.Note, error)
	Insert(ctx context.Context, fields *domain.NoteFields) (*domain.Note, error)
	Update(ctx context.Context, id string, fields *domain.NoteFields) (*domain.Note, error)
	Delete(ctx context.Context, id string) (*domain.Note, error)
	Ping(ctx context.Context) error
}

// supabaseNoteRepository talks to a PostgREST-style table endpoint
// ({baseURL}/rest/v1/notes). Filters use the eq.{value} operator and writes
// ask for the affected rows back via Prefer: return=representation, so a
// zero-row response is how the store reports a missing id.
type supabaseNoteRepository struct {
	baseURL string
	anonKey string
	client  *http.Client
}

func NewSupabaseNoteRepository(baseURL, anonKey string) NoteRepository {
	return &supabaseNoteRepository{
		baseURL: baseURL,
		anonKey: anonKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *supabaseNoteRepository) tableURL() string {
	return r.baseURL + "/rest/v1/notes"
}

func (r *supabaseNoteRepository) newRequest(ctx context.Context, method, rawURL string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("apikey", r.anonKey)
	req.Header.Set("Authorization", "Bearer "+r.anonKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("Prefer", "return=representation")
	}

	return req, nil
}

// storeError extracts the PostgREST error message from a non-2xx body,
// falling back to the raw status when there is none.
func storeError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		return fmt.Errorf("store request failed: %s", body.Message)
	}
	return fmt.Errorf("store request failed: status %d", resp.StatusCode)
}

func (r *supabaseNoteRepository) doRows(req *http.Request) ([]*domain.Note, error) {
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("store unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, storeError(resp)
	}

	var rows []*domain.Note
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("malformed store response: %w", err)
	}

	return rows, nil
}

func (r *supabaseNoteRepository) List(ctx context.Context) ([]*domain.Note, error) {
	listURL := r.tableURL() + "?select=*&order=date_created.desc"
	req, err := r.newRequest(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, err
	}

	rows, err := r.doRows(req)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*domain.Note{}
	}

	return rows, nil
}

func (r *supabaseNoteRepository) Insert(ctx context.Context, fields *domain.NoteFields) (*domain.Note, error) {
	req, err := r.newRequest(ctx, http.MethodPost, r.tableURL(), []*domain.NoteFields{fields})
	if err != nil {
		return nil, err
	}

	rows, err := r.doRows(req)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("store returned no row for insert")
	}

	return rows[0], nil
}

func (r *supabaseNoteRepository) Update(ctx context.Context, id string, fields *domain.NoteFields) (*domain.Note, error) {
	patchURL := r.tableURL() + "?note_id=eq." + url.QueryEscape(id)
	req, err := r.newRequest(ctx, http.MethodPatch, patchURL, fields)
	if err != nil {
		return nil, err
	}

	rows, err := r.doRows(req)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	return rows[0], nil
}

func (r *supabaseNoteRepository) Delete(ctx context.Context, id string) (*domain.Note, error) {
	deleteURL := r.tableURL() + "?note_id=eq." + url.QueryEscape(id)
	req, err := r.newRequest(ctx, http.MethodDelete, deleteURL, nil)
	if err != nil {
		return nil, err
	}

	rows, err := r.doRows(req)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	return rows[0], nil
}

// Ping issues a minimal select to verify the store is reachable and the
// credentials are accepted.
func (r *supabaseNoteRepository) Ping(ctx context.Context) error {
	pingURL := r.tableURL() + "?select=note_id&limit=1"
	req, err := r.newRequest(ctx, http.MethodGet, pingURL, nil)
	if err != nil {
		return err
	}

	_, err = r.doRows(req)
	return err
}
