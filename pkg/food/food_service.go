package food

import (
	"GreenCompost-Backend/domain"
	"GreenCompost-Backend/entities"
	"GreenCompost-Backend/pkg/user"
	"context"
	"time"

	"github.com/google/uuid"
)

const expiryDateLayout = "2006-01-02"

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (*domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, itemID string, req domain.UpdateFoodItemRequest, userID string) error
		DeleteFoodItem(ctx context.Context, itemID string, userID string) error
		GetFoodItems(ctx context.Context, userID string) ([]*domain.FoodItemResponse, error)
		GetFoodItemByID(ctx context.Context, itemID string, userID string) (*domain.FoodItemResponse, error)
		GetExpiringSoon(ctx context.Context, userID string) ([]*domain.FoodItemResponse, error)
		UpdateItemStatus(ctx context.Context, itemID string, req domain.UpdateItemStatusRequest, userID string) error
		GetStats(ctx context.Context, userID string) (*domain.FoodStatsResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		userRepository user.UserRepository
	}
)

func NewFoodService(foodRepository FoodRepository, userRepository user.UserRepository) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		userRepository: userRepository,
	}
}

func (s *foodService) ownerOf(ctx context.Context, itemID string, userID string) (*entities.FoodItem, error) {
	item, err := s.foodRepository.GetFoodItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrFoodItemNotFound
	}
	if item.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}
	return item, nil
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (*domain.FoodItemResponse, error) {
	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	category, ok := entities.ParseFoodCategory(req.Category)
	if !ok {
		return nil, domain.ErrInvalidCategory
	}

	expiry, err := time.Parse(expiryDateLayout, req.ExpirationDate)
	if err != nil {
		return nil, domain.ErrInvalidExpiryDate
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	item := &entities.FoodItem{
		ID:             uuid.New(),
		Name:           req.Name,
		Category:       category,
		Quantity:       req.Quantity,
		QuantityUnit:   req.QuantityUnit,
		ExpirationDate: expiry,
		Status:         entities.StatusAvailable,
		UserID:         userUUID,
		CreatedAt:      time.Now(),
		Description:    req.Description,
	}

	if err := s.foodRepository.SaveFoodItem(ctx, item); err != nil {
		return nil, err
	}

	res := toFoodItemResponse(item)
	return &res, nil
}

func (s *foodService) UpdateFoodItem(ctx context.Context, itemID string, req domain.UpdateFoodItemRequest, userID string) error {
	item, err := s.ownerOf(ctx, itemID, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Quantity != 0 {
		if req.Quantity < 0 {
			return domain.ErrInvalidQuantity
		}
		item.Quantity = req.Quantity
	}
	if req.QuantityUnit != "" {
		item.QuantityUnit = req.QuantityUnit
	}
	if req.ExpirationDate != "" {
		expiry, err := time.Parse(expiryDateLayout, req.ExpirationDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		item.ExpirationDate = expiry
	}
	if req.Category != "" {
		category, ok := entities.ParseFoodCategory(req.Category)
		if !ok {
			return domain.ErrInvalidCategory
		}
		item.Category = category
	}
	if req.Description != "" {
		item.Description = req.Description
	}

	return s.foodRepository.SaveFoodItem(ctx, item)
}

// DeleteFoodItem is the owner-initiated removal; it also drops the item
// from the global index, so a later lookup by id returns nothing.
func (s *foodService) DeleteFoodItem(ctx context.Context, itemID string, userID string) error {
	if _, err := s.ownerOf(ctx, itemID, userID); err != nil {
		return err
	}
	return s.foodRepository.DeleteFoodItem(ctx, itemID)
}

func (s *foodService) GetFoodItems(ctx context.Context, userID string) ([]*domain.FoodItemResponse, error) {
	owner, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrUserNotFound
	}

	items, err := s.foodRepository.GetFoodItemsByUser(ctx, owner.Username)
	if err != nil {
		return nil, err
	}
	return toFoodItemResponses(items), nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, itemID string, userID string) (*domain.FoodItemResponse, error) {
	item, err := s.ownerOf(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}
	res := toFoodItemResponse(item)
	return &res, nil
}

func (s *foodService) GetExpiringSoon(ctx context.Context, userID string) ([]*domain.FoodItemResponse, error) {
	owner, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrUserNotFound
	}

	items, err := s.foodRepository.GetExpiringFoodItems(ctx, owner.Username, 48*time.Hour)
	if err != nil {
		return nil, err
	}
	return toFoodItemResponses(items), nil
}

// UpdateItemStatus is the administrative override: any status may be
// forced. Event-driven transitions go through the event service instead.
func (s *foodService) UpdateItemStatus(ctx context.Context, itemID string, req domain.UpdateItemStatusRequest, userID string) error {
	item, err := s.ownerOf(ctx, itemID, userID)
	if err != nil {
		return err
	}

	switch entities.FoodItemStatus(req.Status) {
	case entities.StatusAvailable, entities.StatusScheduledForPickup, entities.StatusDonated, entities.StatusComposted:
	default:
		return domain.ErrInvalidItemStatus
	}

	return s.foodRepository.UpdateFoodItemStatus(ctx, item.ID, entities.FoodItemStatus(req.Status))
}

func (s *foodService) GetStats(ctx context.Context, userID string) (*domain.FoodStatsResponse, error) {
	owner, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrUserNotFound
	}

	items, err := s.foodRepository.GetFoodItemsByUser(ctx, owner.Username)
	if err != nil {
		return nil, err
	}

	stats := &domain.FoodStatsResponse{TotalItems: len(items)}
	for _, item := range items {
		switch item.Status {
		case entities.StatusAvailable:
			stats.Available++
		case entities.StatusScheduledForPickup:
			stats.Scheduled++
		case entities.StatusDonated:
			stats.Donated++
			stats.QuantityMoved += item.Quantity
		case entities.StatusComposted:
			stats.Composted++
			stats.QuantityMoved += item.Quantity
		}
		if item.IsExpiringSoon() {
			stats.ExpiringSoon++
		}
		if item.IsExpired() {
			stats.Expired++
		}
		stats.TotalQuantity += item.Quantity
	}
	return stats, nil
}

func toFoodItemResponse(item *entities.FoodItem) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		Quantity:        item.Quantity,
		QuantityUnit:    item.QuantityUnit,
		ExpirationDate:  item.ExpirationDate,
		Category:        string(item.Category),
		Status:          string(item.Status),
		Description:     item.Description,
		CreatedAt:       item.CreatedAt,
		IsExpired:       item.IsExpired(),
		IsExpiringSoon:  item.IsExpiringSoon(),
		DaysUntilExpiry: item.DaysUntilExpiry(),
		Recommendation:  item.Recommendation(),
	}
}

func toFoodItemResponses(items []*entities.FoodItem) []*domain.FoodItemResponse {
	result := make([]*domain.FoodItemResponse, 0, len(items))
	for _, item := range items {
		res := toFoodItemResponse(item)
		result = append(result, &res)
	}
	return result
}
