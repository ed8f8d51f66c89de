package store

import "github.com/starford/doctrail/internal/models"

// RecordStore defines the record-store operations. Consumers should depend
// on this interface rather than the concrete *DB type to facilitate testing
// with mocks.
type RecordStore interface {
	CreateDocument(d *models.Document) (string, error)
	GetDocument(id string) (*models.Document, error)
	GetPublicDocument(id string) (*models.Document, error)
	ResolveTrackingCode(code string) (string, error)
	ListByOwner(ownerID string) ([]models.Document, error)
	UpdateStatus(id, ownerID string, status models.Status) error
	UpdateVisibility(id, ownerID string, isPublic bool) error
	DeleteDocument(id, ownerID string) error
	AdminExists() (bool, error)
	RegisterAdmin(userID string) error
	GetAdmin() (*models.AdminRecord, error)
	CreateUser(email, passwordHash string) (*models.User, error)
	DeleteUser(id string) error
	GetUserByEmail(email string) (*models.User, error)
	Close() error
}

// Verify *DB satisfies RecordStore at compile time.
var _ RecordStore = (*DB)(nil)
