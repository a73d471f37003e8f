package cli

import (
	"archive/zip"
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/puxvault/internal/config"
	"github.com/dmitrijs2005/puxvault/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestArchive(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.1pux")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("export.data")
	require.NoError(t, err)
	_, err = w.Write([]byte(doc))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func TestApp_Run_EndToEnd(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) {
		return []byte("master"), nil
	}

	archive := writeTestArchive(t, `{
		"accounts": [{
			"vaults": [{
				"items": [{
					"categoryUuid": "001",
					"overview": {"title": "Example Login"},
					"details": {"loginFields": [
						{"designation": "username", "value": "alice"}
					]}
				}]
			}]
		}]
	}`)

	dsn := filepath.Join(t.TempDir(), "data", "vault.db")
	cfg := &config.Config{ArchivePath: archive, DatabaseDSN: dsn}

	var out bytes.Buffer
	app := &App{
		config: cfg,
		log:    logging.NewTextLogger(io.Discard, slog.LevelError),
		reader: bufio.NewReader(strings.NewReader("")),
		out:    &out,
	}

	require.NoError(t, app.Run(context.Background()))

	// Root, Logins, the record, and the recycle bin.
	assert.Contains(t, out.String(), "Imported 1 records (1 groups), 4 nodes stored in")

	_, err := os.Stat(dsn)
	require.NoError(t, err, "vault database file must exist")
}

func TestApp_Run_NoArchiveGiven(t *testing.T) {
	cfg := &config.Config{DatabaseDSN: filepath.Join(t.TempDir(), "vault.db")}

	var out bytes.Buffer
	app := &App{
		config: cfg,
		log:    logging.NewTextLogger(io.Discard, slog.LevelError),
		reader: bufio.NewReader(strings.NewReader("\n")),
		out:    &out,
	}

	require.Error(t, app.Run(context.Background()))
}
