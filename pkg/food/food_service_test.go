package food

import (
	"GreenCompost-Backend/domain"
	"GreenCompost-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFoodRepository struct {
	items map[uuid.UUID]*entities.FoodItem
	owner *entities.User
}

func newFakeFoodRepository(owner *entities.User) *fakeFoodRepository {
	return &fakeFoodRepository{
		items: map[uuid.UUID]*entities.FoodItem{},
		owner: owner,
	}
}

func (r *fakeFoodRepository) SaveFoodItem(ctx context.Context, item *entities.FoodItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeFoodRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	item, ok := r.items[parsed]
	if !ok {
		return nil, nil
	}
	return item, nil
}

func (r *fakeFoodRepository) DeleteFoodItem(ctx context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	delete(r.items, parsed)
	return nil
}

func (r *fakeFoodRepository) GetFoodItemsByUser(ctx context.Context, username string) ([]*entities.FoodItem, error) {
	if r.owner == nil || r.owner.Username != username {
		return nil, nil
	}
	var items []*entities.FoodItem
	for _, item := range r.items {
		if item.UserID == r.owner.ID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakeFoodRepository) GetAllFoodItems(ctx context.Context) ([]*entities.FoodItem, error) {
	var items []*entities.FoodItem
	for _, item := range r.items {
		items = append(items, item)
	}
	return items, nil
}

func (r *fakeFoodRepository) GetFoodItemsByStatus(ctx context.Context, status entities.FoodItemStatus) ([]*entities.FoodItem, error) {
	var items []*entities.FoodItem
	for _, item := range r.items {
		if item.Status == status {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakeFoodRepository) GetFoodItemsByCategory(ctx context.Context, category entities.FoodCategory) ([]*entities.FoodItem, error) {
	var items []*entities.FoodItem
	for _, item := range r.items {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakeFoodRepository) GetExpiringFoodItems(ctx context.Context, username string, within time.Duration) ([]*entities.FoodItem, error) {
	items, err := r.GetFoodItemsByUser(ctx, username)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	var expiring []*entities.FoodItem
	for _, item := range items {
		if item.Status != entities.StatusAvailable {
			continue
		}
		if item.ExpirationDate.After(now) && item.ExpirationDate.Before(now.Add(within)) {
			expiring = append(expiring, item)
		}
	}
	return expiring, nil
}

func (r *fakeFoodRepository) UpdateFoodItemStatus(ctx context.Context, id uuid.UUID, status entities.FoodItemStatus) error {
	if item, ok := r.items[id]; ok {
		item.Status = status
	}
	return nil
}

type fakeUserLookup struct {
	user *entities.User
}

func (r *fakeUserLookup) SaveUser(ctx context.Context, user *entities.User) error { return nil }

func (r *fakeUserLookup) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	if r.user != nil && r.user.ID.String() == id {
		return r.user, nil
	}
	return nil, nil
}

func (r *fakeUserLookup) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	if r.user != nil && r.user.Username == username {
		return r.user, nil
	}
	return nil, nil
}

func (r *fakeUserLookup) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return nil, nil
}

func (r *fakeUserLookup) GetAllUsers(ctx context.Context) ([]*entities.User, error) {
	if r.user == nil {
		return nil, nil
	}
	return []*entities.User{r.user}, nil
}

func (r *fakeUserLookup) UpdateUserPassword(ctx context.Context, username string, password string) error {
	return nil
}

func (r *fakeUserLookup) SetRememberedUser(ctx context.Context, username string, remember bool) error {
	return nil
}

func (r *fakeUserLookup) GetRememberedUser(ctx context.Context) (*entities.User, error) {
	return nil, nil
}

func newTestFoodService() (FoodService, *fakeFoodRepository, *entities.User) {
	owner := &entities.User{ID: uuid.New(), Username: "aoife", Location: "Dublin, Ireland"}
	repo := newFakeFoodRepository(owner)
	return NewFoodService(repo, &fakeUserLookup{user: owner}), repo, owner
}

func TestAddFoodItemValidation(t *testing.T) {
	svc, _, owner := newTestFoodService()
	ctx := context.Background()

	_, err := svc.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name: "Carrots", Quantity: 0, Category: "VEGETABLE", ExpirationDate: "2026-09-10",
	}, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = svc.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name: "Carrots", Quantity: 1, Category: "JUNK", ExpirationDate: "2026-09-10",
	}, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	_, err = svc.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name: "Carrots", Quantity: 1, Category: "VEGETABLE", ExpirationDate: "next week",
	}, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)

	res, err := svc.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name: "Carrots", Quantity: 2, QuantityUnit: "kg", Category: "VEGETABLE", ExpirationDate: "2026-09-10",
	}, owner.ID.String())
	require.NoError(t, err)
	assert.Equal(t, string(entities.StatusAvailable), res.Status)
}

func TestFoodItemOwnership(t *testing.T) {
	svc, _, owner := newTestFoodService()
	ctx := context.Background()

	res, err := svc.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name: "Milk", Quantity: 1, QuantityUnit: "litre", Category: "DAIRY", ExpirationDate: "2026-09-05",
	}, owner.ID.String())
	require.NoError(t, err)

	stranger := uuid.New().String()
	_, err = svc.GetFoodItemByID(ctx, res.ID, stranger)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)

	err = svc.DeleteFoodItem(ctx, res.ID, stranger)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)

	_, err = svc.GetFoodItemByID(ctx, uuid.New().String(), owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)
}

func TestDeleteRemovesFromIndex(t *testing.T) {
	svc, _, owner := newTestFoodService()
	ctx := context.Background()

	res, err := svc.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name: "Bread", Quantity: 1, QuantityUnit: "loaf", Category: "GRAIN", ExpirationDate: "2026-09-03",
	}, owner.ID.String())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteFoodItem(ctx, res.ID, owner.ID.String()))

	_, err = svc.GetFoodItemByID(ctx, res.ID, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)
}

func TestUpdateItemStatusOverride(t *testing.T) {
	svc, repo, owner := newTestFoodService()
	ctx := context.Background()

	res, err := svc.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name: "Apples", Quantity: 3, QuantityUnit: "kg", Category: "FRUIT", ExpirationDate: "2026-09-20",
	}, owner.ID.String())
	require.NoError(t, err)

	err = svc.UpdateItemStatus(ctx, res.ID, domain.UpdateItemStatusRequest{Status: "FROZEN"}, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidItemStatus)

	// The override bypasses the transition table: AVAILABLE straight to
	// DONATED is allowed here.
	err = svc.UpdateItemStatus(ctx, res.ID, domain.UpdateItemStatusRequest{Status: "DONATED"}, owner.ID.String())
	require.NoError(t, err)

	id, err := uuid.Parse(res.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusDonated, repo.items[id].Status)
}

func TestGetStats(t *testing.T) {
	svc, repo, owner := newTestFoodService()
	ctx := context.Background()

	add := func(name, category, expiry string, quantity float64) string {
		res, err := svc.AddFoodItem(ctx, domain.AddFoodItemRequest{
			Name: name, Quantity: quantity, QuantityUnit: "kg", Category: category, ExpirationDate: expiry,
		}, owner.ID.String())
		require.NoError(t, err)
		return res.ID
	}

	add("Carrots", "VEGETABLE", "2026-10-01", 2)
	donated := add("Apples", "FRUIT", "2026-10-01", 3)

	id, err := uuid.Parse(donated)
	require.NoError(t, err)
	repo.items[id].Status = entities.StatusDonated

	stats, err := svc.GetStats(ctx, owner.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalItems)
	assert.Equal(t, 1, stats.Available)
	assert.Equal(t, 1, stats.Donated)
	assert.InDelta(t, 5.0, stats.TotalQuantity, 0.001)
	assert.InDelta(t, 3.0, stats.QuantityMoved, 0.001)
}
