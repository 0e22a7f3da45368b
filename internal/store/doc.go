// Package store defines the persistence interfaces consumed by the API
// layer, together with the sentinel errors every implementation must
// return. Concrete implementations live in internal/platform/postgres.
package store
