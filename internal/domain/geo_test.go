package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"service-assistance/internal/domain"
)

func TestHaversine_SamePointIsZero(t *testing.T) {
	t.Parallel()

	points := [][2]float64{
		{0, 0},
		{41.0082, 28.9784},
		{-33.8688, 151.2093},
		{90, 0},
		{-90, 180},
	}
	for _, p := range points {
		require.Zero(t, domain.Haversine(p[0], p[1], p[0], p[1]))
	}
}

func TestHaversine_Symmetric(t *testing.T) {
	t.Parallel()

	ab := domain.Haversine(41.0082, 28.9784, 39.9334, 32.8597)
	ba := domain.Haversine(39.9334, 32.8597, 41.0082, 28.9784)
	require.InDelta(t, ab, ba, 1e-9)
}

func TestHaversine_KnownDistances(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		wantKm                 float64
		tolKm                  float64
	}{
		{
			name: "istanbul to ankara",
			lat1: 41.0082, lon1: 28.9784,
			lat2: 39.9334, lon2: 32.8597,
			wantKm: 349.6, tolKm: 2,
		},
		{
			name: "paris to london",
			lat1: 48.8566, lon1: 2.3522,
			lat2: 51.5074, lon2: -0.1278,
			wantKm: 343.5, tolKm: 2,
		},
		{
			name: "antipodal points",
			lat1: 0, lon1: 0,
			lat2: 0, lon2: 180,
			wantKm: 20015.1, tolKm: 5,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := domain.Haversine(tc.lat1, tc.lon1, tc.lat2, tc.lon2)
			require.InDelta(t, tc.wantKm, got, tc.tolKm)
		})
	}
}

func TestRequestStatus_Valid(t *testing.T) {
	t.Parallel()

	for _, s := range []domain.RequestStatus{
		domain.StatusPending, domain.StatusDispatched,
		domain.StatusCompleted, domain.StatusCancelled,
	} {
		require.True(t, s.Valid(), s)
	}
	require.False(t, domain.RequestStatus("IN_FLIGHT").Valid())
	require.False(t, domain.RequestStatus("").Valid())
}

func TestRequestStatus_Terminal(t *testing.T) {
	t.Parallel()

	require.False(t, domain.StatusPending.Terminal())
	require.False(t, domain.StatusDispatched.Terminal())
	require.True(t, domain.StatusCompleted.Terminal())
	require.True(t, domain.StatusCancelled.Terminal())
}

func TestValidCoordinates(t *testing.T) {
	t.Parallel()

	require.True(t, domain.ValidCoordinates(0, 0))
	require.True(t, domain.ValidCoordinates(-90, 180))
	require.False(t, domain.ValidCoordinates(90.5, 0))
	require.False(t, domain.ValidCoordinates(0, -180.5))
}
