// Package services contains the application services of picshelf: credential
// registration/lookup, the session token lifecycle, and the idle/expiry
// watcher that forces logout.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"picshelf/internal/common"
	"picshelf/internal/dbx"
	"picshelf/internal/localstore"
	"picshelf/internal/models"
)

// CredentialService manages the locally registered accounts.
//
// Contract:
//   - Register: append a new record, or common.ErrAlreadyRegistered if the
//     email is already taken.
//   - Find: return the record matching both email and password exactly
//     (case-sensitive), or common.ErrNotFound.
//
// There is no password strength or format validation, and passwords are kept
// as entered; see models.UserRecord.
type CredentialService interface {
	Register(ctx context.Context, email, password string) error
	Find(ctx context.Context, email, password string) (*models.UserRecord, error)
}

// credentialService is the concrete CredentialService backed by the local
// SQL database. It builds its store repository per operation so writes can
// run over a transactional handle.
type credentialService struct {
	db *sql.DB
}

// NewCredentialService constructs a CredentialService bound to the given DB.
func NewCredentialService(db *sql.DB) CredentialService {
	return &credentialService{db: db}
}

func (s *credentialService) getStore(db dbx.DBTX) localstore.Repository {
	return localstore.NewSQLiteRepository(db)
}

// loadUsers reads the persisted user list. An absent key means no one has
// registered yet and yields an empty list.
func (s *credentialService) loadUsers(ctx context.Context, store localstore.Repository) ([]models.UserRecord, error) {
	data, err := store.Get(ctx, localstore.KeyUsers)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	var users []models.UserRecord
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (s *credentialService) saveUsers(ctx context.Context, store localstore.Repository, users []models.UserRecord) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := store.Set(ctx, localstore.KeyUsers, data); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

// Register appends a new record in a single transaction, so the
// load-check-append-save sequence cannot interleave with another write.
func (s *credentialService) Register(ctx context.Context, email, password string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		store := s.getStore(tx)

		users, err := s.loadUsers(ctx, store)
		if err != nil {
			return err
		}

		for _, u := range users {
			if u.Email == email {
				return common.ErrAlreadyRegistered
			}
		}

		users = append(users, models.UserRecord{
			ID:        uuid.New().String(),
			Email:     email,
			Password:  password,
			CreatedAt: time.Now().UTC(),
		})

		return s.saveUsers(ctx, store, users)
	})
}

func (s *credentialService) Find(ctx context.Context, email, password string) (*models.UserRecord, error) {
	users, err := s.loadUsers(ctx, s.getStore(s.db))
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == email && u.Password == password {
			return &u, nil
		}
	}
	return nil, common.ErrNotFound
}
