package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid morning time", input: "09:30", want: "09:30"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		// "24:00" существует только как результат арифметики, парсить его нельзя
		{name: "end of day boundary rejected", input: "24:00", wantErr: true},
		{name: "invalid hour", input: "25:00", wantErr: true},
		{name: "invalid minutes", input: "10:75", wantErr: true},
		{name: "missing colon", input: "1030", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, ts.String())
		})
	}
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(10 * 60)
	require.NoError(t, err)
	assert.Equal(t, "10:00", ts.String())

	ts, err = NewTimeStringFromMinutes(22*60 + 30)
	require.NoError(t, err)
	assert.Equal(t, "22:30", ts.String())

	// Граница суток допустима как время закрытия
	ts, err = NewTimeStringFromMinutes(24 * 60)
	require.NoError(t, err)
	assert.Equal(t, "24:00", ts.String())

	_, err = NewTimeStringFromMinutes(24*60 + 1)
	require.Error(t, err)

	_, err = NewTimeStringFromMinutes(-30)
	require.Error(t, err)
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 9, 15, 16, 45, 59, 0, time.UTC)
	assert.Equal(t, "16:45", NewTimeString(moment).String())
}

func TestTimeString_AddMinutes(t *testing.T) {
	start, err := NewTimeStringFromString("21:00")
	require.NoError(t, err)

	end, err := start.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, "22:00", end.String())

	// Ровно до конца суток - допустимо
	end, err = start.AddMinutes(180)
	require.NoError(t, err)
	assert.Equal(t, "24:00", end.String())

	// Переход через полночь - ошибка
	_, err = start.AddMinutes(181)
	require.Error(t, err)
}

func TestTimeString_Comparisons(t *testing.T) {
	earlier, err := NewTimeStringFromString("10:00")
	require.NoError(t, err)
	later, err := NewTimeStringFromString("14:30")
	require.NoError(t, err)

	assert.True(t, earlier.IsBefore(later))
	assert.False(t, later.IsBefore(earlier))
	assert.True(t, later.IsAfter(earlier))
	assert.False(t, earlier.IsAfter(later))

	// Равные значения не "до" и не "после"
	assert.False(t, earlier.IsBefore(earlier))
	assert.False(t, earlier.IsAfter(earlier))
}

func TestTimeString_MinutesFromMidnight(t *testing.T) {
	ts, err := NewTimeStringFromString("16:30")
	require.NoError(t, err)

	minutes, err := ts.MinutesFromMidnight()
	require.NoError(t, err)
	assert.Equal(t, 16*60+30, minutes)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres TIME приходит как строка с секундами
	require.NoError(t, ts.Scan("16:00:00"))
	assert.Equal(t, "16:00", ts.String())

	require.NoError(t, ts.Scan([]byte("09:30:00")))
	assert.Equal(t, "09:30", ts.String())

	require.NoError(t, ts.Scan(time.Date(2026, 1, 1, 12, 15, 0, 0, time.UTC)))
	assert.Equal(t, "12:15", ts.String())
}
