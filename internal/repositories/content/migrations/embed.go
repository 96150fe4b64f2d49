// Package migrations contains the embedded schema of the SQLite custom store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
