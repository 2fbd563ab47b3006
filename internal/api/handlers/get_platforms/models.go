package get_platforms

import (
	"github.com/avdm/GameClub-BookingService/internal/domain"
)

// PlatformResponse HTTP модель платформы каталога
type PlatformResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	HourlyPrice int64  `json:"hourlyPrice"`
	UnitCount   int    `json:"unitCount"`
}

// AddonResponse HTTP модель дополнения
type AddonResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Price int64  `json:"price"`
}

// CatalogResponse HTTP модель каталога клуба
type CatalogResponse struct {
	Platforms []PlatformResponse `json:"platforms"`
	Addons    []AddonResponse    `json:"addons"`
}

// FromDomainCatalog конвертирует доменные модели каталога в HTTP response
func FromDomainCatalog(platforms []*domain.Platform, addons []*domain.Addon) *CatalogResponse {
	resp := &CatalogResponse{
		Platforms: make([]PlatformResponse, len(platforms)),
		Addons:    make([]AddonResponse, len(addons)),
	}

	for i, p := range platforms {
		resp.Platforms[i] = PlatformResponse{
			ID:          p.ID,
			Name:        p.Name,
			HourlyPrice: p.HourlyPrice,
			UnitCount:   p.UnitCount,
		}
	}

	for i, a := range addons {
		resp.Addons[i] = AddonResponse{
			ID:    a.ID,
			Label: a.Label,
			Price: a.Price,
		}
	}

	return resp
}
