// Package cli wires configuration, the import pipeline and the vault
// database into the command-line import flow.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/puxvault/internal/common"
	"github.com/dmitrijs2005/puxvault/internal/config"
	"github.com/dmitrijs2005/puxvault/internal/filex"
	"github.com/dmitrijs2005/puxvault/internal/logging"
	"github.com/dmitrijs2005/puxvault/internal/model"
	"github.com/dmitrijs2005/puxvault/internal/onepux"
	"github.com/dmitrijs2005/puxvault/internal/vaultdb"

	_ "modernc.org/sqlite"
)

// App runs one import: convert the archive to a tree, unlock the vault,
// persist the tree.
type App struct {
	config *config.Config
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds the App from loaded configuration.
func NewApp(c *config.Config, log logging.Logger) *App {
	return &App{
		config: c,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// Run executes the import end to end. Structural failures (bad archive,
// invalid export document, wrong master password) surface as errors; field
// and item level problems have already been logged and skipped by the
// pipeline.
func (a *App) Run(ctx context.Context) error {
	archive := a.config.ArchivePath
	if archive == "" {
		var err error
		archive, err = GetSimpleText(a.reader, "Enter path to the .1pux archive", a.out)
		if err != nil {
			return err
		}
	}
	if archive == "" {
		return errors.New("no archive path given")
	}

	importer := onepux.NewImporter(a.log, onepux.ImportOptions{
		AddLegacyTOTPFields: a.config.AddLegacyTOTPFields,
		AddOTPAuthURL:       a.config.AddOTPAuthURL,
	})

	tree, err := importer.ConvertArchive(ctx, archive)
	if err != nil {
		return fmt.Errorf("importing %s: %w", archive, err)
	}

	groups, records := countNodes(tree)
	a.log.Info(ctx, "import finished", "groups", groups, "records", records,
		"recycled", len(tree.RecycleBin.Children()))

	if err := filex.EnsureParentDir(a.config.DatabaseDSN); err != nil {
		return fmt.Errorf("preparing vault path: %w", err)
	}

	db, err := vaultdb.Open(ctx, a.config.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("opening vault %s: %w", a.config.DatabaseDSN, err)
	}
	defer db.Close()

	password, err := GetPassword(a.out, "Enter master password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	store := vaultdb.NewStore(db)

	key, err := store.Unlock(ctx, password)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(key)

	if err := store.SaveModel(ctx, tree, key); err != nil {
		return fmt.Errorf("saving vault: %w", err)
	}

	stored, err := vaultdb.NewSQLiteRepository(db).CountNodes(ctx)
	if err != nil {
		return fmt.Errorf("counting stored nodes: %w", err)
	}

	fmt.Fprintf(a.out, "Imported %d records (%d groups), %d nodes stored in %s\n",
		records, groups, stored, a.config.DatabaseDSN)
	return nil
}

func countNodes(tree *model.DatabaseModel) (groups, records int) {
	tree.Root.Walk(func(n *model.Node) {
		if n.IsGroup() {
			groups++
		} else {
			records++
		}
	})
	// Root itself is not a user-visible group.
	groups--
	return groups, records
}
