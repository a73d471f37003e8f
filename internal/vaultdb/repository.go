// Package vaultdb persists an imported model.DatabaseModel into a local
// sqlite vault. Node field bags and attachment payloads are stored as
// AES-GCM ciphertext under a key derived from the master password.
package vaultdb

import "context"

// NodeRow is the persisted form of one tree node.
type NodeRow struct {
	ID       string
	ParentID string
	Title    string
	Icon     int
	IsGroup  bool
	Recycled bool
	Position int
	// Payload/Nonce hold the encrypted field bag for records; both are
	// nil for groups.
	Payload []byte
	Nonce   []byte
}

// AttachmentRow is the persisted form of one record attachment.
type AttachmentRow struct {
	NodeID  string
	Name    string
	Content []byte
	Nonce   []byte
}

// Repository is the storage seam used by Store.
type Repository interface {
	InsertNode(ctx context.Context, row *NodeRow) error
	InsertAttachment(ctx context.Context, row *AttachmentRow) error
	GetNodesByParent(ctx context.Context, parentID string) ([]NodeRow, error)
	CountNodes(ctx context.Context) (int, error)

	// GetMeta returns the named vault metadata blob, or common.ErrNotFound.
	GetMeta(ctx context.Context, name string) ([]byte, error)
	SetMeta(ctx context.Context, name string, value []byte) error
}
