// Package migrations embeds the vault database schema migrations applied
// via goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
