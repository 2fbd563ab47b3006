package catalog

import (
	"errors"
	"fmt"

	"github.com/avdm/GameClub-BookingService/internal/domain"
)

var (
	// ErrPlatformNotFound возвращается, когда платформа не найдена в каталоге
	ErrPlatformNotFound = errors.New("catalog: platform not found")

	// ErrAddonNotFound возвращается, когда дополнение не найдено в каталоге
	ErrAddonNotFound = errors.New("catalog: addon not found")
)

// Catalog статический каталог игровых платформ и дополнений
// Формируется при старте процесса и не меняется во время работы
type Catalog struct {
	platforms map[string]*domain.Platform
	addons    map[string]*domain.Addon

	// Порядок для стабильного вывода списков
	platformOrder []string
	addonOrder    []string
}

// New создает каталог из переданных платформ и дополнений
// Каждая платформа обязана иметь хотя бы одно место и неотрицательную
// стоимость часа, дополнения - неотрицательную цену. Каталог статический
// и формируется при старте процесса, поэтому нарушение - panic
func New(platforms []domain.Platform, addons []domain.Addon) *Catalog {
	c := &Catalog{
		platforms: make(map[string]*domain.Platform, len(platforms)),
		addons:    make(map[string]*domain.Addon, len(addons)),
	}

	for i := range platforms {
		p := platforms[i]
		if p.UnitCount < 1 {
			panic(fmt.Sprintf("catalog: platform %q must have at least one unit", p.ID))
		}
		if p.HourlyPrice < 0 {
			panic(fmt.Sprintf("catalog: platform %q must have a non-negative hourly price", p.ID))
		}
		c.platforms[p.ID] = &p
		c.platformOrder = append(c.platformOrder, p.ID)
	}

	for i := range addons {
		a := addons[i]
		if a.Price < 0 {
			panic(fmt.Sprintf("catalog: addon %q must have a non-negative price", a.ID))
		}
		c.addons[a.ID] = &a
		c.addonOrder = append(c.addonOrder, a.ID)
	}

	return c
}

// NewDefault создает каталог клуба
func NewDefault() *Catalog {
	return New(
		[]domain.Platform{
			{ID: "ps5", Name: "PlayStation 5", HourlyPrice: 2000, UnitCount: 4},
			{ID: "xbox", Name: "Xbox Series X", HourlyPrice: 1500, UnitCount: 3},
			{ID: "vr", Name: "VR Station", HourlyPrice: 3000, UnitCount: 2},
			{ID: "pc", Name: "Gaming PC", HourlyPrice: 1000, UnitCount: 6},
		},
		[]domain.Addon{
			{ID: "snacks", Label: "Snack pack", Price: 2000},
			{ID: "drinks", Label: "Soft drinks", Price: 1000},
			{ID: "controller", Label: "Extra controller", Price: 500},
		},
	)
}

// Get возвращает платформу по идентификатору
func (c *Catalog) Get(platformID string) (*domain.Platform, error) {
	p, ok := c.platforms[platformID]
	if !ok {
		return nil, ErrPlatformNotFound
	}
	return p, nil
}

// GetAddon возвращает дополнение по идентификатору
func (c *Catalog) GetAddon(addonID string) (*domain.Addon, error) {
	a, ok := c.addons[addonID]
	if !ok {
		return nil, ErrAddonNotFound
	}
	return a, nil
}

// Platforms возвращает все платформы в стабильном порядке
func (c *Catalog) Platforms() []*domain.Platform {
	result := make([]*domain.Platform, 0, len(c.platformOrder))
	for _, id := range c.platformOrder {
		result = append(result, c.platforms[id])
	}
	return result
}

// Addons возвращает все дополнения в стабильном порядке
func (c *Catalog) Addons() []*domain.Addon {
	result := make([]*domain.Addon, 0, len(c.addonOrder))
	for _, id := range c.addonOrder {
		result = append(result, c.addons[id])
	}
	return result
}
