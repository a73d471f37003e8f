package vaultdb

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/puxvault/internal/common"
	"github.com/dmitrijs2005/puxvault/internal/cryptox"
	"github.com/dmitrijs2005/puxvault/internal/dbx"
	"github.com/dmitrijs2005/puxvault/internal/model"
	"github.com/dmitrijs2005/puxvault/internal/vaultdb/migrations"
	"github.com/pressly/goose/v3"
)

// Metadata keys stored in the meta table.
const (
	metaSalt     = "salt"
	metaVerifier = "verifier"
)

const saltSize = 16

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if necessary) the sqlite vault at dsn and applies
// pending migrations.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Store persists imported trees into one vault database.
type Store struct {
	db *sql.DB
}

// NewStore returns a Store bound to an open vault database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Unlock derives the master key from password. On a fresh vault a random
// salt and a key verifier are stored; on an existing vault the verifier is
// checked and common.ErrInvalidMasterPassword returned on mismatch.
//
// The caller owns the returned key and should wipe it after use.
func (s *Store) Unlock(ctx context.Context, password []byte) ([]byte, error) {
	repo := NewSQLiteRepository(s.db)

	salt, err := repo.GetMeta(ctx, metaSalt)
	switch {
	case err == nil:
		key := cryptox.DeriveMasterKey(password, salt)
		verifier, err := repo.GetMeta(ctx, metaVerifier)
		if err != nil {
			return nil, fmt.Errorf("reading verifier: %w", err)
		}
		if !bytes.Equal(verifier, cryptox.MakeVerifier(key)) {
			return nil, common.ErrInvalidMasterPassword
		}
		return key, nil

	case errors.Is(err, common.ErrNotFound):
		salt = common.GenerateRandByteArray(saltSize)
		key := cryptox.DeriveMasterKey(password, salt)

		if err := repo.SetMeta(ctx, metaSalt, salt); err != nil {
			return nil, err
		}
		if err := repo.SetMeta(ctx, metaVerifier, cryptox.MakeVerifier(key)); err != nil {
			return nil, err
		}
		return key, nil

	default:
		return nil, fmt.Errorf("reading salt: %w", err)
	}
}

// SaveModel writes a complete imported tree in one transaction: the root
// hierarchy plus the recycle bin, record payloads and attachments
// encrypted under key.
func (s *Store) SaveModel(ctx context.Context, m *model.DatabaseModel, key []byte) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)

		if err := saveSubtree(ctx, repo, m.Root, "", 0, false, key); err != nil {
			return err
		}
		return saveSubtree(ctx, repo, m.RecycleBin, "", 1, true, key)
	})
}

func saveSubtree(ctx context.Context, repo Repository, n *model.Node, parentID string, position int, recycled bool, key []byte) error {
	row := &NodeRow{
		ID:       n.ID,
		ParentID: parentID,
		Title:    n.Title,
		Icon:     int(n.Icon),
		IsGroup:  n.IsGroup(),
		Recycled: recycled,
		Position: position,
	}

	if !n.IsGroup() {
		payload, nonce, err := cryptox.EncryptEntry(n.Fields, key)
		if err != nil {
			return fmt.Errorf("encrypting fields of %s: %w", n.Title, err)
		}
		row.Payload = payload
		row.Nonce = nonce
	}

	if err := repo.InsertNode(ctx, row); err != nil {
		return err
	}

	if !n.IsGroup() {
		for _, name := range n.Fields.AttachmentNames() {
			content, nonce, err := cryptox.EncryptBytes(n.Fields.Attachments[name], key)
			if err != nil {
				return fmt.Errorf("encrypting attachment %s: %w", name, err)
			}
			if err := repo.InsertAttachment(ctx, &AttachmentRow{
				NodeID:  n.ID,
				Name:    name,
				Content: content,
				Nonce:   nonce,
			}); err != nil {
				return err
			}
		}
	}

	for i, c := range n.Children() {
		if err := saveSubtree(ctx, repo, c, n.ID, i, recycled, key); err != nil {
			return err
		}
	}

	return nil
}
