package onepux

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/puxvault/internal/logging"
	"github.com/dmitrijs2005/puxvault/internal/model"
	"github.com/dmitrijs2005/puxvault/internal/zipx"
)

const (
	// Archive layout.
	exportFileName     = "export.data"
	attachmentsDirName = "files"

	// Group-title fallbacks for unnamed accounts and vaults.
	unknownAccountTitle = "Unknown Account"
	unknownVaultTitle   = "Unknown Vault"

	// Placeholder record title when the overview carries none.
	unknownItemTitle = "Unknown"

	// Item state marking an archived (recycled) item.
	stateArchived = "archived"

	// Tag added for items with a non-zero favourite rank.
	favouriteTag = "Favourite"
)

// ImportOptions are the caller preferences passed through to TOTP token
// installation.
type ImportOptions struct {
	// AddLegacyTOTPFields appends the legacy supplementary seed/settings
	// custom fields alongside an installed token.
	AddLegacyTOTPFields bool

	// AddOTPAuthURL appends the canonical otpauth URL as a custom field
	// alongside an installed token.
	AddOTPAuthURL bool
}

// Importer converts one 1PUX export into a model.DatabaseModel. It holds
// no state between imports.
type Importer struct {
	log  logging.Logger
	opts ImportOptions
}

// NewImporter returns an Importer logging diagnostics through log.
func NewImporter(log logging.Logger, opts ImportOptions) *Importer {
	return &Importer{log: log.With("component", "onepux"), opts: opts}
}

// ConvertArchive unzips a .1pux archive to a temporary directory, imports
// it, and removes the directory again. Structural failures abort with no
// partial tree.
func (i *Importer) ConvertArchive(ctx context.Context, path string) (*model.DatabaseModel, error) {
	dir, err := zipx.ExtractToTemp(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			i.log.Warn(ctx, "could not remove extraction dir", "dir", dir, "error", err)
		}
	}()

	return i.ImportDir(ctx, dir)
}

// ImportDir imports an already extracted archive directory containing
// export.data and the files/ side-car directory.
func (i *Importer) ImportDir(ctx context.Context, dir string) (*model.DatabaseModel, error) {
	data, err := os.ReadFile(filepath.Join(dir, exportFileName))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", exportFileName, err)
	}

	return i.Import(ctx, data, filepath.Join(dir, attachmentsDirName))
}

// Import converts raw export.data bytes into a complete model, resolving
// attachment references against attachmentsDir. The returned tree is
// exclusively the caller's afterward.
func (i *Importer) Import(ctx context.Context, data []byte, attachmentsDir string) (*model.DatabaseModel, error) {
	container, err := DecodeExport(data)
	if err != nil {
		return nil, err
	}

	db := model.NewDatabaseModel()

	cls := &classifier{
		opts:   i.opts,
		linker: &attachmentLinker{dir: attachmentsDir, log: i.log},
		log:    i.log,
	}

	multipleAccounts := len(container.Accounts) > 1
	for _, account := range container.Accounts {
		i.processAccount(ctx, db, cls, account, multipleAccounts)
	}

	return db, nil
}

func (i *Importer) processAccount(ctx context.Context, db *model.DatabaseModel, cls *classifier, account Account, multipleAccounts bool) {
	accountGroup := db.Root

	if multipleAccounts {
		title := account.Name()
		if title == "" {
			title = unknownAccountTitle
		}
		accountGroup = i.createOrGetGroup(db.Root, title, model.IconFolder)
	}

	if len(account.Vaults) == 0 {
		i.log.Warn(ctx, "no vaults found for account", "account", account.Name())
		return
	}

	multipleVaults := len(account.Vaults) > 1
	for _, vault := range account.Vaults {
		i.processVault(ctx, db, cls, vault, accountGroup, multipleVaults)
	}
}

func (i *Importer) processVault(ctx context.Context, db *model.DatabaseModel, cls *classifier, vault Vault, accountGroup *model.Node, multipleVaults bool) {
	vaultGroup := accountGroup

	if multipleVaults {
		title := vault.Name()
		if title == "" {
			title = unknownVaultTitle
		}
		vaultGroup = i.createOrGetGroup(accountGroup, title, model.IconFolder)
	}

	if len(vault.Items) == 0 {
		i.log.Warn(ctx, "no items found for vault", "vault", vault.Name())
		return
	}

	for _, item := range vault.Items {
		i.processItem(ctx, db, cls, item, vaultGroup)
	}
}

func (i *Importer) processItem(ctx context.Context, db *model.DatabaseModel, cls *classifier, item Item, vaultGroup *model.Node) {
	parentGroup := vaultGroup
	if item.CategoryUUID != "" {
		parentGroup = i.createOrGetCategoryGroup(ctx, item.CategoryUUID, vaultGroup)
	}

	node := model.NewRecord(unknownItemTitle)
	node.Icon = parentGroup.Icon
	parentGroup.AddChild(node)

	i.populateItem(ctx, db, cls, node, item)
}

// populateItem applies overview and detail data to one record node.
func (i *Importer) populateItem(ctx context.Context, db *model.DatabaseModel, cls *classifier, node *model.Node, item Item) {
	if item.State == stateArchived || item.Trashed {
		db.Recycle(node)
	}

	if item.FavIndex != 0 {
		node.Fields.AddTag(favouriteTag)
	}

	if item.CreatedAt != 0 {
		node.Fields.SetCreated(time.Unix(item.CreatedAt, 0).UTC())
	}

	if item.UpdatedAt != 0 {
		node.Fields.SetModified(time.Unix(item.UpdatedAt, 0).UTC())
	}

	if item.Overview != nil {
		i.populateOverview(node, *item.Overview)
	}

	if item.Details != nil {
		i.populateDetails(ctx, cls, node, *item.Details, item.CategoryUUID)
	}
}

func (i *Importer) populateOverview(node *model.Node, overview Overview) {
	if overview.Title != "" {
		node.Title = overview.Title
	}

	if overview.URL != "" {
		node.Fields.URL = overview.URL
	}

	for _, u := range overview.URLs {
		if u.URL != "" {
			node.Fields.AddAltURL(u.URL, u.Label)
		}
	}

	for _, tag := range overview.Tags {
		node.Fields.AddTag(tag)
	}
}

func (i *Importer) populateDetails(ctx context.Context, cls *classifier, node *model.Node, details Details, categoryID string) {
	if details.NotesPlain != "" {
		node.Fields.Notes = details.NotesPlain
	}

	if details.DocumentAttributes != nil {
		if err := cls.linker.linkRef(ctx, node.Fields, details.DocumentAttributes); err != nil {
			i.log.Warn(ctx, "skipping unreadable attachment", "error", err)
		}
	}

	for _, lf := range details.LoginFields {
		cls.classifyLoginField(ctx, node.Fields, lf)
	}

	for _, section := range details.Sections {
		sectionTitle := section.Title
		if sectionTitle == "" {
			sectionTitle = uniqueToken()
		}
		for _, f := range section.Fields {
			cls.classifySectionField(ctx, node.Fields, sectionTitle, f, categoryID)
		}
	}
}

// createOrGetCategoryGroup resolves the display group for an item's
// category, falling back to the vault group for unknown identifiers.
func (i *Importer) createOrGetCategoryGroup(ctx context.Context, categoryID string, vaultGroup *model.Node) *model.Node {
	category, ok := lookupCategory(categoryID)
	if !ok {
		i.log.Warn(ctx, "unknown item category", "categoryUuid", categoryID)
		return vaultGroup
	}

	return i.createOrGetGroup(vaultGroup, category.DisplayName, category.Icon)
}

// createOrGetGroup reuses an existing same-titled child group if present
// (first match wins, case-sensitive), otherwise creates one.
func (i *Importer) createOrGetGroup(parent *model.Node, title string, icon model.Icon) *model.Node {
	if existing, ok := parent.ChildGroupByTitle(title); ok {
		return existing
	}

	g := model.NewGroup(title)
	g.Icon = icon
	parent.AddChild(g)
	return g
}
