package event

import (
	"GreenCompost-Backend/domain"
	"GreenCompost-Backend/entities"
	"GreenCompost-Backend/pkg/food"
	"GreenCompost-Backend/pkg/service"
	"GreenCompost-Backend/pkg/user"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type (
	EventService interface {
		ScheduleEvent(ctx context.Context, req domain.ScheduleEventRequest, userID string) (*domain.EventResponse, error)
		GetEvents(ctx context.Context) ([]*domain.EventResponse, error)
		GetUpcomingEvents(ctx context.Context) ([]*domain.EventResponse, error)
		AddItem(ctx context.Context, eventID string, req domain.EventItemRequest, userID string) error
		RemoveItem(ctx context.Context, eventID string, req domain.EventItemRequest, userID string) error
		ClearItems(ctx context.Context, eventID string, userID string) error
		CompleteEvent(ctx context.Context, eventID string, userID string) error
		CancelEvent(ctx context.Context, eventID string, userID string) error
		Rehydrate(ctx context.Context) error
	}

	eventService struct {
		eventRepository EventRepository
		foodRepository  food.FoodRepository
		userRepository  user.UserRepository
		catalog         service.ServiceCatalog

		mu     sync.RWMutex
		events map[uuid.UUID]*entities.ScheduledEvent
	}
)

func NewEventService(
	eventRepository EventRepository,
	foodRepository food.FoodRepository,
	userRepository user.UserRepository,
	catalog service.ServiceCatalog,
) EventService {
	return &eventService{
		eventRepository: eventRepository,
		foodRepository:  foodRepository,
		userRepository:  userRepository,
		catalog:         catalog,
		events:          map[uuid.UUID]*entities.ScheduledEvent{},
	}
}

// Rehydrate loads the persisted event rows into the in-memory registry.
// Loaded events start SCHEDULED; completed items were already fanned out
// when the event finished, so only open events matter after a restart. The
// rows do not record the requesting user, so rehydrated events are
// read-only until re-created.
func (s *eventService) Rehydrate(ctx context.Context) error {
	events, err := s.eventRepository.GetAllEvents(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make(map[uuid.UUID]*entities.ScheduledEvent, len(events))
	for _, ev := range events {
		ev.Status = entities.EventStatusScheduled
		ev.EventType = entities.EventTypeFromDescription(ev.Description)
		ev.Service = s.serviceByID(ev.ServiceID)
		s.events[ev.ID] = ev
	}
	return nil
}

func (s *eventService) serviceByID(id uuid.UUID) *entities.LocalService {
	for _, svc := range s.catalog.All() {
		if svc.ID == id {
			return svc
		}
	}
	return nil
}

func (s *eventService) ScheduleEvent(ctx context.Context, req domain.ScheduleEventRequest, userID string) (*domain.EventResponse, error) {
	svc := s.catalog.FindByName(req.ServiceName)
	if svc == nil {
		return nil, domain.ErrServiceNotFound
	}

	scheduledTime, err := time.Parse(time.RFC3339, req.ScheduledTime)
	if err != nil {
		return nil, domain.ErrInvalidEventTime
	}

	requester, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if requester == nil {
		return nil, domain.ErrUserNotFound
	}

	ev := &entities.ScheduledEvent{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Location:    svc.Address,
		StartTime:   scheduledTime,
		EndTime:     scheduledTime.Add(time.Hour),
		ServiceID:   svc.ID,
		Service:     svc,
		User:        requester,
		EventType:   entities.EventTypeFromDescription(req.Description),
		Status:      entities.EventStatusScheduled,
		Notes:       req.Notes,
	}

	// Resolve every item before touching any of them, so a bad id late in
	// the list cannot leave earlier items flipped with no owning event.
	items := make([]*entities.FoodItem, 0, len(req.FoodItemIDs))
	seen := map[string]bool{}
	for _, itemID := range req.FoodItemIDs {
		if seen[itemID] {
			return nil, domain.ErrItemAlreadyScheduled
		}
		seen[itemID] = true

		item, err := s.resolveItem(ctx, itemID, userID)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	for i, item := range items {
		if err := s.foodRepository.UpdateFoodItemStatus(ctx, item.ID, entities.StatusScheduledForPickup); err != nil {
			s.releaseAttached(ctx, items[:i])
			return nil, err
		}
		item.Status = entities.StatusScheduledForPickup
		ev.FoodItems = append(ev.FoodItems, item)
	}

	if err := s.eventRepository.SaveEvent(ctx, ev); err != nil {
		s.releaseAttached(ctx, ev.FoodItems)
		return nil, err
	}

	s.mu.Lock()
	s.events[ev.ID] = ev
	s.mu.Unlock()

	res := toEventResponse(ev)
	return &res, nil
}

// resolveItem loads an item and checks it may join an event: owned by the
// requester, not already scheduled, and reachable through the transition
// table. No mutation happens here.
func (s *eventService) resolveItem(ctx context.Context, itemID string, userID string) (*entities.FoodItem, error) {
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
	if item.Status == entities.StatusScheduledForPickup {
		return nil, domain.ErrItemAlreadyScheduled
	}
	if !item.Status.CanTransitionTo(entities.StatusScheduledForPickup) {
		return nil, domain.ErrInvalidItemStatus
	}
	return item, nil
}

// attachItem moves an AVAILABLE item into the event, flipping it to
// SCHEDULED_FOR_PICKUP through the transition table and persisting the new
// status.
func (s *eventService) attachItem(ctx context.Context, ev *entities.ScheduledEvent, itemID string, userID string) error {
	item, err := s.resolveItem(ctx, itemID, userID)
	if err != nil {
		return err
	}

	if err := s.foodRepository.UpdateFoodItemStatus(ctx, item.ID, entities.StatusScheduledForPickup); err != nil {
		return err
	}
	item.Status = entities.StatusScheduledForPickup
	ev.FoodItems = append(ev.FoodItems, item)
	return nil
}

// releaseAttached is the best-effort undo for a half-done attachment pass.
func (s *eventService) releaseAttached(ctx context.Context, items []*entities.FoodItem) {
	for _, item := range items {
		if err := s.foodRepository.UpdateFoodItemStatus(ctx, item.ID, entities.StatusAvailable); err != nil {
			continue
		}
		item.Status = entities.StatusAvailable
	}
}

func (s *eventService) eventFor(eventID string, userID string) (*entities.ScheduledEvent, error) {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	s.mu.RLock()
	ev, ok := s.events[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	// Rehydrated events carry no resolvable owner; they stay listable but
	// nobody may mutate them.
	if ev.User == nil || ev.User.ID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}
	return ev, nil
}

func (s *eventService) AddItem(ctx context.Context, eventID string, req domain.EventItemRequest, userID string) error {
	ev, err := s.eventFor(eventID, userID)
	if err != nil {
		return err
	}
	if ev.Status != entities.EventStatusScheduled {
		return domain.ErrEventNotModifiable
	}
	return s.attachItem(ctx, ev, req.FoodItemID, userID)
}

func (s *eventService) RemoveItem(ctx context.Context, eventID string, req domain.EventItemRequest, userID string) error {
	ev, err := s.eventFor(eventID, userID)
	if err != nil {
		return err
	}
	if ev.Status != entities.EventStatusScheduled {
		return domain.ErrEventNotModifiable
	}

	for i, item := range ev.FoodItems {
		if item.ID.String() == req.FoodItemID {
			if err := s.foodRepository.UpdateFoodItemStatus(ctx, item.ID, entities.StatusAvailable); err != nil {
				return err
			}
			item.Status = entities.StatusAvailable
			ev.FoodItems = append(ev.FoodItems[:i], ev.FoodItems[i+1:]...)
			return nil
		}
	}
	return domain.ErrItemNotInEvent
}

func (s *eventService) ClearItems(ctx context.Context, eventID string, userID string) error {
	ev, err := s.eventFor(eventID, userID)
	if err != nil {
		return err
	}
	if ev.Status != entities.EventStatusScheduled {
		return domain.ErrEventNotModifiable
	}
	return s.releaseItems(ctx, ev)
}

func (s *eventService) releaseItems(ctx context.Context, ev *entities.ScheduledEvent) error {
	for _, item := range ev.FoodItems {
		if err := s.foodRepository.UpdateFoodItemStatus(ctx, item.ID, entities.StatusAvailable); err != nil {
			return err
		}
		item.Status = entities.StatusAvailable
	}
	ev.FoodItems = nil
	return nil
}

// CompleteEvent drives the item fan-out: pickups donate, drop-offs compost
// when the target is a composting facility, otherwise donate.
func (s *eventService) CompleteEvent(ctx context.Context, eventID string, userID string) error {
	ev, err := s.eventFor(eventID, userID)
	if err != nil {
		return err
	}
	if !ev.Status.CanTransitionTo(entities.EventStatusCompleted) {
		return domain.ErrEventNotModifiable
	}

	itemStatus := ev.CompletedItemStatus()
	for _, item := range ev.FoodItems {
		if err := s.foodRepository.UpdateFoodItemStatus(ctx, item.ID, itemStatus); err != nil {
			return err
		}
		item.Status = itemStatus
	}

	ev.Status = entities.EventStatusCompleted
	return s.eventRepository.SaveEvent(ctx, ev)
}

// CancelEvent resets every included item to AVAILABLE, equivalent to
// clearing the whole item set.
func (s *eventService) CancelEvent(ctx context.Context, eventID string, userID string) error {
	ev, err := s.eventFor(eventID, userID)
	if err != nil {
		return err
	}
	if !ev.Status.CanTransitionTo(entities.EventStatusCancelled) {
		return domain.ErrEventNotModifiable
	}

	if err := s.releaseItems(ctx, ev); err != nil {
		return err
	}

	ev.Status = entities.EventStatusCancelled
	return s.eventRepository.SaveEvent(ctx, ev)
}

func (s *eventService) GetEvents(ctx context.Context) ([]*domain.EventResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.EventResponse, 0, len(s.events))
	for _, ev := range s.events {
		res := toEventResponse(ev)
		result = append(result, &res)
	}
	return result, nil
}

func (s *eventService) GetUpcomingEvents(ctx context.Context) ([]*domain.EventResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.EventResponse
	for _, ev := range s.events {
		if ev.IsUpcoming() {
			res := toEventResponse(ev)
			result = append(result, &res)
		}
	}
	return result, nil
}

func toEventResponse(ev *entities.ScheduledEvent) domain.EventResponse {
	serviceName := ""
	if ev.Service != nil {
		serviceName = ev.Service.Name
	}

	items := make([]domain.FoodItemResponse, 0, len(ev.FoodItems))
	for _, item := range ev.FoodItems {
		items = append(items, domain.FoodItemResponse{
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
		})
	}

	return domain.EventResponse{
		ID:            ev.ID.String(),
		Title:         ev.Title,
		Description:   ev.Description,
		Location:      ev.Location,
		ScheduledTime: ev.StartTime,
		EndTime:       ev.EndTime,
		ServiceName:   serviceName,
		EventType:     string(ev.EventType),
		Status:        string(ev.Status),
		Notes:         ev.Notes,
		IsUpcoming:    ev.IsUpcoming(),
		ItemCount:     ev.ItemCount(),
		TotalQuantity: ev.TotalQuantity(),
		FoodItems:     items,
	}
}
