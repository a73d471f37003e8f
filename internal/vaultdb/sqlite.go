package vaultdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/puxvault/internal/common"
	"github.com/dmitrijs2005/puxvault/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// InsertNode upserts a node row by id.
func (r *SQLiteRepository) InsertNode(ctx context.Context, row *NodeRow) error {
	query := ` INSERT INTO nodes (id, parent_id, title, icon, is_group, recycled, position, payload, nonce)
			values (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET parent_id = excluded.parent_id,
				title = excluded.title,
				icon = excluded.icon,
				recycled = excluded.recycled,
				position = excluded.position,
				payload = excluded.payload,
				nonce = excluded.nonce
	`
	_, err := r.db.ExecContext(ctx, query,
		row.ID, row.ParentID, row.Title, row.Icon, row.IsGroup, row.Recycled, row.Position, row.Payload, row.Nonce)
	if err != nil {
		return fmt.Errorf("failed to upsert node: %w", err)
	}
	return nil
}

// InsertAttachment upserts an attachment row by (node_id, name).
func (r *SQLiteRepository) InsertAttachment(ctx context.Context, row *AttachmentRow) error {
	query := ` INSERT INTO attachments (node_id, name, content, nonce)
			values (?, ?, ?, ?)
			ON CONFLICT(node_id, name) DO UPDATE SET content = excluded.content,
				nonce = excluded.nonce
	`
	_, err := r.db.ExecContext(ctx, query, row.NodeID, row.Name, row.Content, row.Nonce)
	if err != nil {
		return fmt.Errorf("failed to upsert attachment: %w", err)
	}
	return nil
}

// GetNodesByParent lists the direct children of a node in stored order.
func (r *SQLiteRepository) GetNodesByParent(ctx context.Context, parentID string) ([]NodeRow, error) {
	query := `select id, parent_id, title, icon, is_group, recycled, position, payload, nonce
			from nodes where parent_id = ? order by position`
	rows, err := r.db.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to select nodes: %w", err)
	}
	defer rows.Close()

	var result []NodeRow
	for rows.Next() {
		var item NodeRow
		if err := rows.Scan(&item.ID, &item.ParentID, &item.Title, &item.Icon,
			&item.IsGroup, &item.Recycled, &item.Position, &item.Payload, &item.Nonce); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// CountNodes returns the total number of stored nodes.
func (r *SQLiteRepository) CountNodes(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `select count(*) from nodes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count nodes: %w", err)
	}
	return n, nil
}

// GetMeta returns the named metadata blob, or common.ErrNotFound.
func (r *SQLiteRepository) GetMeta(ctx context.Context, name string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `select value from meta where name = ?`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select meta %s: %w", name, err)
	}
	return value, nil
}

// SetMeta upserts the named metadata blob.
func (r *SQLiteRepository) SetMeta(ctx context.Context, name string, value []byte) error {
	query := ` INSERT INTO meta (name, value) values (?, ?)
			ON CONFLICT(name) DO UPDATE SET value = excluded.value
	`
	if _, err := r.db.ExecContext(ctx, query, name, value); err != nil {
		return fmt.Errorf("failed to upsert meta %s: %w", name, err)
	}
	return nil
}
