package archive

import (
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
}

// NewContainer wires the archive on top of db, or on an in-memory store when
// db is nil.
func NewContainer(db *gorm.DB, sealer Sealer) *Container {
	var repo Repository
	if db != nil {
		repo = NewRepository(db)
	} else {
		repo = NewMemoryRepository()
	}
	service := NewService(repo, sealer)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
