package pricing

import (
	"errors"
	"fmt"

	"github.com/avdm/GameClub-BookingService/internal/catalog"
	"github.com/avdm/GameClub-BookingService/internal/domain"
)

// Calculator считает итоговую стоимость игровой сессии
// Детерминированный, без побочных эффектов, результат никогда не отрицательный
type Calculator struct {
	catalog *catalog.Catalog
}

// NewCalculator создает калькулятор поверх каталога платформ и дополнений
func NewCalculator(c *catalog.Catalog) *Calculator {
	return &Calculator{catalog: c}
}

// Quote детализация стоимости сессии
type Quote struct {
	Base            int64 // Стоимость аренды платформы за выбранную длительность
	ExtrasTotal     int64 // Сумма дополнений
	PlayerSurcharge int64 // Доплата за игроков сверх первого
	Total           int64
}

// ComputeTotal считает итоговую стоимость сессии
//
// base = hourlyPrice * durationMinutes / 60 с отбрасыванием дробной части
// (в этой валюте нет дробных единиц, политика округления - усечение).
// Для допустимых длительностей {30, 60, 90, 120, 180} это эквивалентно
// множителям 0.5 / 1 / 1.5 / 2 / 3 от часовой ставки
func (c *Calculator) ComputeTotal(platformID string, durationMinutes int, playerCount int, extraIDs []string) (*Quote, error) {
	platform, err := c.catalog.Get(platformID)
	if err != nil {
		if errors.Is(err, catalog.ErrPlatformNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrPlatformNotFound, platformID)
		}
		return nil, err
	}

	if !domain.IsSupportedDuration(durationMinutes) {
		return nil, fmt.Errorf("%w: %d minutes", ErrUnsupportedDuration, durationMinutes)
	}

	if playerCount < domain.MinPlayerCount || playerCount > domain.MaxPlayerCount {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPlayerCount, playerCount)
	}

	base := platform.HourlyPrice * int64(durationMinutes) / 60

	var extrasTotal int64
	for _, id := range extraIDs {
		addon, err := c.catalog.GetAddon(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAddon, id)
		}
		extrasTotal += addon.Price
	}

	surcharge := int64(playerCount-1) * domain.PerExtraPlayerFee

	return &Quote{
		Base:            base,
		ExtrasTotal:     extrasTotal,
		PlayerSurcharge: surcharge,
		Total:           base + extrasTotal + surcharge,
	}, nil
}
