// Package postgres implements the store interfaces on top of PostgreSQL
// using the pgx stdlib driver. Driver-level errors are translated to the
// store error taxonomy before they leave this package.
package postgres
