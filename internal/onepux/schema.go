// Package onepux converts a 1Password .1pux export archive into the
// hierarchical secrets model in internal/model. The pipeline is one
// synchronous pass: decode the export document, walk accounts, vaults and
// items, classify fields onto canonical slots or custom fields, and
// resolve side-car attachments.
package onepux

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/puxvault/internal/common"
)

// ExportContainer is the decoded top level of export.data.
type ExportContainer struct {
	Accounts []Account `json:"accounts"`
}

// Account groups the vaults of one 1Password account.
type Account struct {
	Attrs  *AccountAttrs `json:"attrs"`
	Vaults []Vault       `json:"vaults"`
}

// AccountAttrs carries the account's display attributes.
type AccountAttrs struct {
	Name string `json:"name"`
}

// Name returns the account display name, or "" when absent.
func (a Account) Name() string {
	if a.Attrs == nil {
		return ""
	}
	return a.Attrs.Name
}

// Vault is one vault inside an account.
type Vault struct {
	Attrs *VaultAttrs `json:"attrs"`
	Items []Item      `json:"items"`
}

// VaultAttrs carries the vault's display attributes.
type VaultAttrs struct {
	Name string `json:"name"`
}

// Name returns the vault display name, or "" when absent.
func (v Vault) Name() string {
	if v.Attrs == nil {
		return ""
	}
	return v.Attrs.Name
}

// Item is a single exported item. Timestamps are epoch seconds; zero means
// absent. State "archived" and the trashed flag both mean the item belongs
// in the recycle bin.
type Item struct {
	CategoryUUID string    `json:"categoryUuid"`
	State        string    `json:"state"`
	Trashed      bool      `json:"trashed"`
	FavIndex     int64     `json:"favIndex"`
	CreatedAt    int64     `json:"createdAt"`
	UpdatedAt    int64     `json:"updatedAt"`
	Overview     *Overview `json:"overview"`
	Details      *Details  `json:"details"`
}

// Overview carries the item's display data.
type Overview struct {
	Title string         `json:"title"`
	URL   string         `json:"url"`
	URLs  []SecondaryURL `json:"urls"`
	Tags  []string       `json:"tags"`
}

// SecondaryURL is an additional URL on an item, with an optional label.
type SecondaryURL struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Details carries the item's secret payload.
type Details struct {
	NotesPlain         string          `json:"notesPlain"`
	DocumentAttributes *FileAttachment `json:"documentAttributes"`
	LoginFields        []LoginField    `json:"loginFields"`
	Sections           []Section       `json:"sections"`
}

// LoginFieldType is the typed kind of a login field.
type LoginFieldType string

const (
	LoginFieldTypeText     LoginFieldType = "T"
	LoginFieldTypePassword LoginFieldType = "P"
	LoginFieldTypeEmail    LoginFieldType = "E"
	LoginFieldTypeCheckBox LoginFieldType = "C"
)

// LoginField is one field of the item's login form.
type LoginField struct {
	Name        string         `json:"name"`
	Value       string         `json:"value"`
	Designation string         `json:"designation"`
	FieldType   LoginFieldType `json:"fieldType"`
}

// Section is a titled group of section fields.
type Section struct {
	Title  string         `json:"title"`
	Fields []SectionField `json:"fields"`
}

// SectionField is one key/value field inside a section. Exactly one of
// File or Value is normally present.
type SectionField struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	Guarded bool            `json:"guarded"`
	File    *FileAttachment `json:"file"`
	Value   KeyedValue      `json:"value"`
}

// FileAttachment references a side-car attachment payload in the archive's
// files directory.
type FileAttachment struct {
	DocumentID string `json:"documentId"`
	FileName   string `json:"fileName"`
}

// DecodeExport parses the raw bytes of export.data. The only fatal
// condition is a document whose account list is absent or empty (or JSON
// that cannot be decoded at all); every deeper absence is tolerated and
// decodes to a zero value.
func DecodeExport(data []byte) (*ExportContainer, error) {
	var c ExportContainer
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidStructure, err)
	}

	if len(c.Accounts) == 0 {
		return nil, fmt.Errorf("%w: no accounts found", common.ErrInvalidStructure)
	}

	return &c, nil
}
