// Package sql embeds the schema migrations and the hand-written queries
// used by the load pipeline.
package sql

import "embed"

// Migrations holds the schema migration files, applied in filename order.
//
//go:embed migrations
var Migrations embed.FS
