package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/avolkov/recondesk/internal/client/models"
	"github.com/avolkov/recondesk/internal/client/repositories/metadata"
	"github.com/avolkov/recondesk/internal/common"
	"github.com/avolkov/recondesk/internal/dbx"
)

// Store is the dumb persistence boundary for the session. No validation
// logic lives here.
type Store interface {
	Save(ctx context.Context, token string, p *models.Principal) error
	// Load returns the persisted token and principal; both are zero when
	// nothing is stored.
	Load(ctx context.Context) (string, *models.Principal, error)
	Clear(ctx context.Context) error
}

// MetadataStore persists the session in the local metadata table under the
// fixed key names. Token and profile are written in one transaction so a
// crash cannot leave half a session behind.
type MetadataStore struct {
	db *sql.DB
}

func NewMetadataStore(db *sql.DB) *MetadataStore {
	return &MetadataStore{db: db}
}

func (s *MetadataStore) Save(ctx context.Context, token string, p *models.Principal) error {
	profile, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.StorageKeyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.StorageKeyUser, profile)
	})
}

func (s *MetadataStore) Load(ctx context.Context) (string, *models.Principal, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	token, err := repo.Get(ctx, common.StorageKeyToken)
	if err != nil {
		return "", nil, err
	}
	if len(token) == 0 {
		return "", nil, nil
	}

	profile, err := repo.Get(ctx, common.StorageKeyUser)
	if err != nil {
		return "", nil, err
	}
	if len(profile) == 0 {
		return string(token), nil, nil
	}

	var p models.Principal
	if err := json.Unmarshal(profile, &p); err != nil {
		// A corrupt cached profile is treated as absent, not fatal.
		return string(token), nil, nil
	}
	return string(token), &p, nil
}

// Clear removes the session keys only; unrelated keys (the theme
// preference) survive logout.
func (s *MetadataStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, common.StorageKeyToken); err != nil {
			return err
		}
		return repo.Delete(ctx, common.StorageKeyUser)
	})
}
