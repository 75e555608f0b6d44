package user

import (
	"GreenCompost-Backend/domain"
	"GreenCompost-Backend/entities"
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// UserRepository is the durable registry of users. Lookups that match
	// nothing return (nil, nil); errors always mean storage trouble.
	UserRepository interface {
		SaveUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetAllUsers(ctx context.Context) ([]*entities.User, error)
		UpdateUserPassword(ctx context.Context, username string, password string) error
		SetRememberedUser(ctx context.Context, username string, remember bool) error
		GetRememberedUser(ctx context.Context) (*entities.User, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// userUpsertColumns are the columns refreshed when a username already
// exists. createdAt is deliberately left alone.
var userUpsertColumns = []string{
	"password", "name", "email", "location", "latitude", "longitude", "remember_me",
}

func (r *userRepository) SaveUser(ctx context.Context, user *entities.User) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns(userUpsertColumns),
	}).Create(user).Error
	if err != nil {
		log.Printf("failed to save user %q: %v", user.Username, err)
		return fmt.Errorf("%w: save user %q: %v", domain.ErrStorageFailure, user.Username, err)
	}
	return nil
}

func (r *userRepository) getOne(ctx context.Context, query string, args ...any) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where(query, args...).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: load user: %v", domain.ErrStorageFailure, err)
	}
	user.City = user.CityName()
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.getOne(ctx, "username = ?", username)
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.getOne(ctx, "lower(email) = lower(?)", email)
}

func (r *userRepository) GetAllUsers(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("%w: load users: %v", domain.ErrStorageFailure, err)
	}
	for _, user := range users {
		user.City = user.CityName()
	}
	return users, nil
}

// UpdateUserPassword touches only the password column, independent of the
// full upsert path.
func (r *userRepository) UpdateUserPassword(ctx context.Context, username string, password string) error {
	err := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("username = ?", username).
		Update("password", password).Error
	if err != nil {
		log.Printf("failed to update password for %q: %v", username, err)
		return fmt.Errorf("%w: update password %q: %v", domain.ErrStorageFailure, username, err)
	}
	return nil
}

// SetRememberedUser keeps at most one remembered user: enabling the flag
// for one user clears it for everyone else in the same transaction.
func (r *userRepository) SetRememberedUser(ctx context.Context, username string, remember bool) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if remember {
			if err := tx.Model(&entities.User{}).
				Where("remember_me = ?", true).
				Update("remember_me", false).Error; err != nil {
				return err
			}
		}
		return tx.Model(&entities.User{}).
			Where("username = ?", username).
			Update("remember_me", remember).Error
	})
	if err != nil {
		return fmt.Errorf("%w: set remembered user %q: %v", domain.ErrStorageFailure, username, err)
	}
	return nil
}

func (r *userRepository) GetRememberedUser(ctx context.Context) (*entities.User, error) {
	return r.getOne(ctx, "remember_me = ?", true)
}
