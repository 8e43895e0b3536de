package migrations

import "embed"

// Files holds the forward-only SQL migrations for the collections database.
//
//go:embed *.sql
var Files embed.FS
