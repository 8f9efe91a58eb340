package migrations

import "embed"

// FS holds the goose migration scripts so the migrate command can run
// without the source tree present.
//
//go:embed *.sql
var FS embed.FS
