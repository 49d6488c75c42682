package store

import "github.com/MKhiriev/eye-test-server/internal/logger"

// Repositories aggregates all persistence-layer contracts, wired once at
// startup and passed by reference into the service layer.
type Repositories struct {
	UserRepository   UserRepository
	ResultRepository ResultRepository
}

// NewRepositories constructs every repository on top of the shared database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:   NewUserRepository(db, logger),
		ResultRepository: NewResultRepository(db, logger),
	}
}
