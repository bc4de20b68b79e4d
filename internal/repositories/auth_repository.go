package repositories

import (
	"fmt"
	"time"

	"fitclub_backend/internal/models"

	"gorm.io/gorm"
)

// AuthRepository defines the interface for operator account storage.
type AuthRepository interface {
	CreateUser(tx *gorm.DB, user *models.User) (int64, error)
	FindUserByUsername(username string) (*models.User, error)
	FindUserByID(id int64) (*models.User, error)
}

type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository creates a new instance of AuthRepository.
func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

// CreateUser inserts a new operator account. The password hash must already
// be computed by the caller.
func (r *authRepository) CreateUser(tx *gorm.DB, user *models.User) (int64, error) {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	if err := tx.Create(user).Error; err != nil {
		if terr := translateError(err); terr == ErrDuplicateKey {
			return 0, fmt.Errorf("%w: username %q", ErrDuplicateKey, user.Username)
		}
		return 0, fmt.Errorf("%w: creating user: %v", ErrDatabaseError, err)
	}
	return user.ID, nil
}

func (r *authRepository) FindUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		if terr := translateError(err); terr == ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding user %q: %v", ErrDatabaseError, username, err)
	}
	return &user, nil
}

func (r *authRepository) FindUserByID(id int64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "user_id = ?", id).Error; err != nil {
		if terr := translateError(err); terr == ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding user by ID %d: %v", ErrDatabaseError, id, err)
	}
	return &user, nil
}
