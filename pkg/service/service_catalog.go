package service

import (
	"GreenCompost-Backend/entities"
	"context"
	"strings"
	"sync"
)

type (
	// ServiceCatalog is the in-memory view of every known service. It is
	// reconciled with the store explicitly: Rehydrate at startup, Flush at
	// shutdown, and every Add/Remove writes through immediately. The
	// matching engine reads services from here, never from the store
	// directly.
	ServiceCatalog interface {
		Rehydrate(ctx context.Context) error
		Flush(ctx context.Context) error
		All() []*entities.LocalService
		FindByName(name string) *entities.LocalService
		FindByType(serviceType entities.ServiceType) []*entities.LocalService
		Add(ctx context.Context, service *entities.LocalService) error
		Remove(ctx context.Context, name string) error
	}

	serviceCatalog struct {
		serviceRepository ServiceRepository

		mu       sync.RWMutex
		services []*entities.LocalService
	}
)

func NewServiceCatalog(serviceRepository ServiceRepository) ServiceCatalog {
	return &serviceCatalog{serviceRepository: serviceRepository}
}

func (c *serviceCatalog) Rehydrate(ctx context.Context) error {
	services, err := c.serviceRepository.GetAllServices(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.services = services
	return nil
}

func (c *serviceCatalog) Flush(ctx context.Context) error {
	c.mu.RLock()
	services := make([]*entities.LocalService, len(c.services))
	copy(services, c.services)
	c.mu.RUnlock()

	for _, service := range services {
		if err := c.serviceRepository.SaveServiceAggregate(ctx, service); err != nil {
			return err
		}
	}
	return nil
}

func (c *serviceCatalog) All() []*entities.LocalService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]*entities.LocalService, len(c.services))
	copy(result, c.services)
	return result
}

func (c *serviceCatalog) FindByName(name string) *entities.LocalService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, service := range c.services {
		if strings.EqualFold(service.Name, name) {
			return service
		}
	}
	return nil
}

func (c *serviceCatalog) FindByType(serviceType entities.ServiceType) []*entities.LocalService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var result []*entities.LocalService
	for _, service := range c.services {
		if service.ServiceType == serviceType {
			result = append(result, service)
		}
	}
	return result
}

func (c *serviceCatalog) Add(ctx context.Context, service *entities.LocalService) error {
	if err := c.serviceRepository.SaveServiceAggregate(ctx, service); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.services {
		if strings.EqualFold(existing.Name, service.Name) {
			c.services[i] = service
			return nil
		}
	}
	c.services = append(c.services, service)
	return nil
}

func (c *serviceCatalog) Remove(ctx context.Context, name string) error {
	c.mu.Lock()
	var removed *entities.LocalService
	for i, existing := range c.services {
		if strings.EqualFold(existing.Name, name) {
			removed = existing
			c.services = append(c.services[:i], c.services[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	if removed == nil {
		return nil
	}
	return c.serviceRepository.DeleteService(ctx, removed.ID)
}
