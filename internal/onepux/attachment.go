package onepux

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/puxvault/internal/logging"
	"github.com/dmitrijs2005/puxvault/internal/model"
)

// sidecarSeparator joins document id and file name in side-car paths, per
// the 1PUX archive layout: files/<documentId>__<fileName>.
const sidecarSeparator = "__"

// attachmentLinker resolves and loads side-car attachment files from the
// archive's files directory.
type attachmentLinker struct {
	dir string
	log logging.Logger
}

// linkRef resolves a decoded attachment reference. A reference missing its
// document id or file name is logged and skipped.
func (l *attachmentLinker) linkRef(ctx context.Context, fields *model.Fields, ref *FileAttachment) error {
	if ref.DocumentID == "" || ref.FileName == "" {
		l.log.Warn(ctx, "no document id or file name for attachment, skipping")
		return nil
	}
	return l.link(ctx, fields, ref.DocumentID, ref.FileName)
}

// link loads the side-car payload for documentID/fileName and stores it on
// the record. When the record already holds an attachment under the same
// file name, the new one is stored under a name reprefixed with the
// document id so same-named files never collide.
func (l *attachmentLinker) link(ctx context.Context, fields *model.Fields, documentID, fileName string) error {
	path := filepath.Join(l.dir, fmt.Sprintf("%s%s%s", documentID, sidecarSeparator, fileName))

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading attachment %s: %w", path, err)
	}

	name := fileName
	if fields.HasAttachment(name) {
		name = documentID + nameSeparator + fileName
	}

	fields.SetAttachment(name, data)
	return nil
}
