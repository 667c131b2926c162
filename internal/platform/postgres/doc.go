// Package postgres implements the store interfaces on PostgreSQL through
// database/sql and the pgx driver. It also owns the schema: SQL migrations
// are embedded and applied with goose via Migrate.
package postgres
