package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCriteria_Validate(t *testing.T) {
	tests := []struct {
		name     string
		criteria SearchCriteria
		wantErr  bool
		errMsg   string
	}{
		{
			name: "valid one-way criteria",
			criteria: SearchCriteria{
				Origin:      "LAX",
				Destination: "JFK",
				TripType:    TripOneWay,
			},
			wantErr: false,
		},
		{
			name: "valid round-trip with date",
			criteria: SearchCriteria{
				Origin:      "LAX",
				Destination: "JFK",
				TripType:    TripRoundTrip,
				Date:        "2026-09-15",
			},
			wantErr: false,
		},
		{
			name: "missing origin",
			criteria: SearchCriteria{
				Destination: "JFK",
				TripType:    TripOneWay,
			},
			wantErr: true,
			errMsg:  "origin is required",
		},
		{
			name: "lowercase origin rejected",
			criteria: SearchCriteria{
				Origin:      "lax",
				Destination: "JFK",
				TripType:    TripOneWay,
			},
			wantErr: true,
			errMsg:  "origin must be a valid 3-letter IATA code",
		},
		{
			name: "missing destination",
			criteria: SearchCriteria{
				Origin:   "LAX",
				TripType: TripOneWay,
			},
			wantErr: true,
			errMsg:  "destination is required",
		},
		{
			name: "four-letter destination rejected",
			criteria: SearchCriteria{
				Origin:      "LAX",
				Destination: "JFKX",
				TripType:    TripOneWay,
			},
			wantErr: true,
			errMsg:  "destination must be a valid 3-letter IATA code",
		},
		{
			name: "same origin and destination",
			criteria: SearchCriteria{
				Origin:      "LAX",
				Destination: "LAX",
				TripType:    TripOneWay,
			},
			wantErr: true,
			errMsg:  "origin and destination must be different",
		},
		{
			name: "unknown trip type",
			criteria: SearchCriteria{
				Origin:      "LAX",
				Destination: "JFK",
				TripType:    "multi-city",
			},
			wantErr: true,
			errMsg:  "tripType must be one of",
		},
		{
			name: "malformed date",
			criteria: SearchCriteria{
				Origin:      "LAX",
				Destination: "JFK",
				TripType:    TripOneWay,
				Date:        "15-09-2026",
			},
			wantErr: true,
			errMsg:  "date must be in YYYY-MM-DD format",
		},
		{
			name: "impossible date",
			criteria: SearchCriteria{
				Origin:      "LAX",
				Destination: "JFK",
				TripType:    TripOneWay,
				Date:        "2026-02-30",
			},
			wantErr: true,
			errMsg:  "not a valid date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.criteria.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidRequest), "should wrap ErrInvalidRequest")
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSearchCriteria_SetDefaults(t *testing.T) {
	criteria := SearchCriteria{
		Origin:      " lax ",
		Destination: "jfk",
	}
	criteria.SetDefaults()

	assert.Equal(t, "LAX", criteria.Origin)
	assert.Equal(t, "JFK", criteria.Destination)
	assert.Equal(t, TripOneWay, criteria.TripType)

	// Existing trip type is preserved
	criteria.TripType = TripRoundTrip
	criteria.SetDefaults()
	assert.Equal(t, TripRoundTrip, criteria.TripType)
}

func TestSearchCriteria_CacheKey(t *testing.T) {
	a := SearchCriteria{Origin: "LAX", Destination: "JFK", TripType: TripOneWay, Date: "2026-09-15"}
	b := SearchCriteria{Origin: "LAX", Destination: "JFK", TripType: TripOneWay, Date: "2026-09-15"}
	c := SearchCriteria{Origin: "LAX", Destination: "JFK", TripType: TripRoundTrip, Date: "2026-09-15"}

	assert.Equal(t, a.CacheKey(), b.CacheKey())
	assert.NotEqual(t, a.CacheKey(), c.CacheKey())
	assert.Equal(t, "LAX|JFK|one-way|2026-09-15", a.CacheKey())
}
