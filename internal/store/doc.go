// Package store defines the persistence interfaces for users and saved
// calculations, plus the transaction helper services use to group writes.
// Implementations live in internal/platform/postgres.
package store
