// Package gorm provides GORM-backed implementations of the store
// interfaces, targeting PostgreSQL. Multi-step operations run inside
// transactions; the last-principal guard and ownership transfer lock the
// holograph row (SELECT ... FOR UPDATE) so concurrent membership changes
// serialize instead of racing a stale count check.
package gorm
