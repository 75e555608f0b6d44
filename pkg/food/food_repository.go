package food

import (
	"GreenCompost-Backend/domain"
	"GreenCompost-Backend/entities"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// FoodRepository is the durable registry of food items. Item rows
	// reference their owner through the username natural key; lookups that
	// match nothing return (nil, nil).
	FoodRepository interface {
		SaveFoodItem(ctx context.Context, item *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		DeleteFoodItem(ctx context.Context, id string) error
		GetFoodItemsByUser(ctx context.Context, username string) ([]*entities.FoodItem, error)
		GetAllFoodItems(ctx context.Context) ([]*entities.FoodItem, error)
		GetFoodItemsByStatus(ctx context.Context, status entities.FoodItemStatus) ([]*entities.FoodItem, error)
		GetFoodItemsByCategory(ctx context.Context, category entities.FoodCategory) ([]*entities.FoodItem, error)
		GetExpiringFoodItems(ctx context.Context, username string, within time.Duration) ([]*entities.FoodItem, error)
		UpdateFoodItemStatus(ctx context.Context, id uuid.UUID, status entities.FoodItemStatus) error
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) SaveFoodItem(ctx context.Context, item *entities.FoodItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		log.Printf("failed to save food item %q: %v", item.Name, err)
		return fmt.Errorf("%w: save food item %q: %v", domain.ErrStorageFailure, item.Name, err)
	}
	return nil
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var item entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: load food item %s: %v", domain.ErrStorageFailure, id, err)
	}
	return &item, nil
}

func (r *foodRepository) DeleteFoodItem(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodItem{}).Error; err != nil {
		return fmt.Errorf("%w: delete food item %s: %v", domain.ErrStorageFailure, id, err)
	}
	return nil
}

func (r *foodRepository) GetFoodItemsByUser(ctx context.Context, username string) ([]*entities.FoodItem, error) {
	var items []*entities.FoodItem
	sub := r.db.Model(&entities.User{}).Select("id").Where("username = ?", username)
	if err := r.db.WithContext(ctx).
		Where(`"userId" = (?)`, sub).
		Order(`"expirationDate" asc`).
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("%w: load food items for %q: %v", domain.ErrStorageFailure, username, err)
	}
	return items, nil
}

func (r *foodRepository) GetAllFoodItems(ctx context.Context) ([]*entities.FoodItem, error) {
	var items []*entities.FoodItem
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order(`"expirationDate" asc`).
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("%w: load food items: %v", domain.ErrStorageFailure, err)
	}
	return items, nil
}

func (r *foodRepository) GetFoodItemsByStatus(ctx context.Context, status entities.FoodItemStatus) ([]*entities.FoodItem, error) {
	var items []*entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("%w: load food items by status: %v", domain.ErrStorageFailure, err)
	}
	return items, nil
}

func (r *foodRepository) GetFoodItemsByCategory(ctx context.Context, category entities.FoodCategory) ([]*entities.FoodItem, error) {
	var items []*entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("%w: load food items by category: %v", domain.ErrStorageFailure, err)
	}
	return items, nil
}

// GetExpiringFoodItems returns the user's AVAILABLE items expiring within the
// window. Items already scheduled for pickup are committed to an event and are
// not reported again.
func (r *foodRepository) GetExpiringFoodItems(ctx context.Context, username string, within time.Duration) ([]*entities.FoodItem, error) {
	var items []*entities.FoodItem
	now := time.Now()
	sub := r.db.Model(&entities.User{}).Select("id").Where("username = ?", username)
	if err := r.db.WithContext(ctx).
		Where(`"userId" = (?) AND "expirationDate" BETWEEN ? AND ? AND status = ?`,
			sub, now, now.Add(within), entities.StatusAvailable).
		Order(`"expirationDate" asc`).
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("%w: load expiring food items for %q: %v", domain.ErrStorageFailure, username, err)
	}
	return items, nil
}

func (r *foodRepository) UpdateFoodItemStatus(ctx context.Context, id uuid.UUID, status entities.FoodItemStatus) error {
	err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("id = ?", id).
		Update("status", status).Error
	if err != nil {
		log.Printf("failed to update status of food item %s: %v", id, err)
		return fmt.Errorf("%w: update food item status %s: %v", domain.ErrStorageFailure, id, err)
	}
	return nil
}
