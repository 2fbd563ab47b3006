package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdm/GameClub-BookingService/internal/catalog"
)

func TestCalculator_ComputeTotal(t *testing.T) {
	calc := NewCalculator(catalog.NewDefault())

	testCases := []struct {
		name            string
		platformID      string
		durationMinutes int
		playerCount     int
		extras          []string
		want            Quote
		wantErr         error
	}{
		{
			name:            "two hours on ps5 with snacks for two players",
			platformID:      "ps5",
			durationMinutes: 120,
			playerCount:     2,
			extras:          []string{"snacks"},
			// 2000 * 2 + 2000 + 500 за второго игрока
			want: Quote{Base: 4000, ExtrasTotal: 2000, PlayerSurcharge: 500, Total: 6500},
		},
		{
			name:            "half hour uses half of hourly price",
			platformID:      "xbox",
			durationMinutes: 30,
			playerCount:     1,
			want:            Quote{Base: 750, ExtrasTotal: 0, PlayerSurcharge: 0, Total: 750},
		},
		{
			name:            "ninety minutes multiplies by one and a half",
			platformID:      "vr",
			durationMinutes: 90,
			playerCount:     1,
			want:            Quote{Base: 4500, ExtrasTotal: 0, PlayerSurcharge: 0, Total: 4500},
		},
		{
			name:            "multiple extras are summed",
			platformID:      "pc",
			durationMinutes: 60,
			playerCount:     1,
			extras:          []string{"drinks", "controller"},
			want:            Quote{Base: 1000, ExtrasTotal: 1500, PlayerSurcharge: 0, Total: 2500},
		},
		{
			name:            "surcharge per player beyond the first",
			platformID:      "ps5",
			durationMinutes: 60,
			playerCount:     4,
			want:            Quote{Base: 2000, ExtrasTotal: 0, PlayerSurcharge: 1500, Total: 3500},
		},
		{
			name:            "unknown platform",
			platformID:      "sega",
			durationMinutes: 60,
			playerCount:     1,
			wantErr:         ErrPlatformNotFound,
		},
		{
			name:            "unknown addon",
			platformID:      "ps5",
			durationMinutes: 60,
			playerCount:     1,
			extras:          []string{"pizza"},
			wantErr:         ErrUnknownAddon,
		},
		{
			name:            "unsupported duration",
			platformID:      "ps5",
			durationMinutes: 45,
			playerCount:     1,
			wantErr:         ErrUnsupportedDuration,
		},
		{
			name:            "zero players",
			platformID:      "ps5",
			durationMinutes: 60,
			playerCount:     0,
			wantErr:         ErrInvalidPlayerCount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			quote, err := calc.ComputeTotal(tc.platformID, tc.durationMinutes, tc.playerCount, tc.extras)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, *quote)
		})
	}
}

func TestCalculator_ComputeTotal_Deterministic(t *testing.T) {
	calc := NewCalculator(catalog.NewDefault())

	first, err := calc.ComputeTotal("ps5", 120, 2, []string{"snacks"})
	require.NoError(t, err)

	second, err := calc.ComputeTotal("ps5", 120, 2, []string{"snacks"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
