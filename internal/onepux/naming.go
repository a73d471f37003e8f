package onepux

import (
	"fmt"

	"github.com/dmitrijs2005/puxvault/internal/model"
	"github.com/google/uuid"
)

// nameSeparator joins a disambiguating prefix and a colliding field name.
const nameSeparator = "-"

// uniqueToken returns a fresh token for cases where no human-meaningful
// name is available.
func uniqueToken() string {
	return uuid.NewString()
}

// sectionFieldName picks the preferred name for a section field: its
// title, else its id, else a fresh token.
func sectionFieldName(f SectionField) string {
	if f.Title != "" {
		return f.Title
	}
	if f.ID != "" {
		return f.ID
	}
	return uniqueToken()
}

// dedupeFieldName returns name if it is still free on the record's custom
// fields, and otherwise a renamed variant prefixed with the enclosing
// section's title (or a fresh token when that title is empty). The rename
// is retried with a numeric suffix in the unlikely case the prefixed name
// is taken too, so an existing field is never overwritten.
func dedupeFieldName(fields *model.Fields, name, sectionTitle string) string {
	if !fields.HasCustomField(name) {
		return name
	}

	prefix := sectionTitle
	if prefix == "" {
		prefix = uniqueToken()
	}

	candidate := prefix + nameSeparator + name
	for i := 2; fields.HasCustomField(candidate); i++ {
		candidate = fmt.Sprintf("%s%s%s%s%d", prefix, nameSeparator, name, nameSeparator, i)
	}
	return candidate
}

// addCustomField stores a custom field under name, falling back to a
// numeric suffix when the name is already taken. Used by paths that have
// no section title to disambiguate with.
func addCustomField(fields *model.Fields, name, value string, protected bool) {
	candidate := name
	for i := 2; fields.HasCustomField(candidate); i++ {
		candidate = fmt.Sprintf("%s%s%d", name, nameSeparator, i)
	}
	fields.SetCustomField(candidate, model.CustomField{Value: value, Protected: protected})
}
