package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuMatchingHistory_Validate(t *testing.T) {
	menuID := uuid.New()
	standardMenuID := uuid.New()

	tests := []struct {
		name    string
		history MenuMatchingHistory
		wantErr error
	}{
		{
			name: "valid history",
			history: MenuMatchingHistory{
				MenuID:          menuID,
				StandardMenuID:  standardMenuID,
				ConfidenceScore: 0.85,
				MatchMethod:     MatchMethodTokenOverlap,
			},
			wantErr: nil,
		},
		{
			name: "missing menu",
			history: MenuMatchingHistory{
				StandardMenuID:  standardMenuID,
				ConfidenceScore: 0.85,
				MatchMethod:     MatchMethodTokenOverlap,
			},
			wantErr: ErrHistoryMenuRequired,
		},
		{
			name: "missing standard menu",
			history: MenuMatchingHistory{
				MenuID:          menuID,
				ConfidenceScore: 0.85,
				MatchMethod:     MatchMethodTokenOverlap,
			},
			wantErr: ErrHistoryStandardMenuRequired,
		},
		{
			name: "score above one",
			history: MenuMatchingHistory{
				MenuID:          menuID,
				StandardMenuID:  standardMenuID,
				ConfidenceScore: 1.2,
				MatchMethod:     MatchMethodTokenOverlap,
			},
			wantErr: ErrHistoryInvalidScore,
		},
		{
			name: "negative score",
			history: MenuMatchingHistory{
				MenuID:          menuID,
				StandardMenuID:  standardMenuID,
				ConfidenceScore: -0.1,
				MatchMethod:     MatchMethodTokenOverlap,
			},
			wantErr: ErrHistoryInvalidScore,
		},
		{
			name: "missing method",
			history: MenuMatchingHistory{
				MenuID:          menuID,
				StandardMenuID:  standardMenuID,
				ConfidenceScore: 0.85,
			},
			wantErr: ErrHistoryMethodRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.history.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTokenList_Value(t *testing.T) {
	tokens := TokenList{"김치", "찌개"}

	value, err := tokens.Value()
	require.NoError(t, err)
	assert.Equal(t, `["김치","찌개"]`, value)

	// Nil serializes as an empty array, not SQL NULL
	var empty TokenList
	value, err = empty.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", value)
}

func TestTokenList_Scan(t *testing.T) {
	var tokens TokenList

	require.NoError(t, tokens.Scan(`["김치","찌개"]`))
	assert.Equal(t, TokenList{"김치", "찌개"}, tokens)

	require.NoError(t, tokens.Scan([]byte(`["양념"]`)))
	assert.Equal(t, TokenList{"양념"}, tokens)

	require.NoError(t, tokens.Scan(nil))
	assert.Equal(t, TokenList{}, tokens)

	assert.Error(t, tokens.Scan(42))
}
