// Package db carries the embedded SQL migrations for the audit database.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
