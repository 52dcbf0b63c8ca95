// Package migrations contains embedded SQL migrations, one directory per driver.
package migrations

import "embed"

//go:embed mysql/*.sql sqlite/*.sql
var FS embed.FS
