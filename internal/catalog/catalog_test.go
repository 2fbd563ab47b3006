package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdm/GameClub-BookingService/internal/domain"
)

func TestCatalog_Get(t *testing.T) {
	c := NewDefault()

	platform, err := c.Get("ps5")
	require.NoError(t, err)
	assert.Equal(t, "PlayStation 5", platform.Name)
	assert.Equal(t, int64(2000), platform.HourlyPrice)
	assert.Equal(t, 4, platform.UnitCount)

	_, err = c.Get("dendy")
	assert.ErrorIs(t, err, ErrPlatformNotFound)
}

func TestCatalog_GetAddon(t *testing.T) {
	c := NewDefault()

	addon, err := c.GetAddon("controller")
	require.NoError(t, err)
	assert.Equal(t, int64(500), addon.Price)

	_, err = c.GetAddon("pizza")
	assert.ErrorIs(t, err, ErrAddonNotFound)
}

func TestCatalog_StableOrder(t *testing.T) {
	c := NewDefault()

	platforms := c.Platforms()
	require.Len(t, platforms, 4)

	ids := make([]string, len(platforms))
	for i, p := range platforms {
		ids[i] = p.ID
	}
	// Порядок объявления сохраняется между вызовами
	assert.Equal(t, []string{"ps5", "xbox", "vr", "pc"}, ids)

	addons := c.Addons()
	require.Len(t, addons, 3)
	assert.Equal(t, "snacks", addons[0].ID)
}

func TestCatalog_NewRejectsInvalidEntries(t *testing.T) {
	assert.Panics(t, func() {
		New([]domain.Platform{{ID: "broken", Name: "Broken", HourlyPrice: 1000, UnitCount: 0}}, nil)
	})

	assert.Panics(t, func() {
		New([]domain.Platform{{ID: "broken", Name: "Broken", HourlyPrice: -1, UnitCount: 1}}, nil)
	})

	assert.Panics(t, func() {
		New(nil, []domain.Addon{{ID: "broken", Label: "Broken", Price: -1}})
	})

	assert.NotPanics(t, func() {
		New([]domain.Platform{{ID: "ok", Name: "OK", HourlyPrice: 0, UnitCount: 1}}, nil)
	})
}
