// Package migrations embeds the SQL schema migrations applied with goose
// at repository-manager construction.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
