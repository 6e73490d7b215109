// Package migrations embeds the SQL schema files applied at startup.
package migrations

import "embed"

// FS holds every *.sql file of this directory, applied in name order.
//
//go:embed *.sql
var FS embed.FS
