package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTierTable(t *testing.T) {
	t.Run("Valid table", func(t *testing.T) {
		table, err := NewTierTable([]Tier{
			{Level: "BRONZE", MinimumSpend: 0, Multiplier: 1.0, PromotionBonus: 0},
			{Level: "SILVER", MinimumSpend: 500, Multiplier: 1.1, PromotionBonus: 50},
		})
		require.NoError(t, err)
		assert.Equal(t, BonusLevel("BRONZE"), table.First().Level)
		assert.Equal(t, []BonusLevel{"BRONZE", "SILVER"}, table.Levels())
	})

	t.Run("Empty list", func(t *testing.T) {
		_, err := NewTierTable(nil)
		assert.Error(t, err)
	})

	t.Run("First tier with nonzero threshold", func(t *testing.T) {
		_, err := NewTierTable([]Tier{
			{Level: "BRONZE", MinimumSpend: 100, Multiplier: 1.0},
		})
		assert.Error(t, err)
	})

	t.Run("Thresholds must strictly increase", func(t *testing.T) {
		_, err := NewTierTable([]Tier{
			{Level: "BRONZE", MinimumSpend: 0, Multiplier: 1.0},
			{Level: "SILVER", MinimumSpend: 500, Multiplier: 1.1},
			{Level: "GOLD", MinimumSpend: 500, Multiplier: 1.2},
		})
		assert.Error(t, err)
	})

	t.Run("Multiplier below one", func(t *testing.T) {
		_, err := NewTierTable([]Tier{
			{Level: "BRONZE", MinimumSpend: 0, Multiplier: 0.5},
		})
		assert.Error(t, err)
	})

	t.Run("Duplicate level", func(t *testing.T) {
		_, err := NewTierTable([]Tier{
			{Level: "BRONZE", MinimumSpend: 0, Multiplier: 1.0},
			{Level: "BRONZE", MinimumSpend: 500, Multiplier: 1.1},
		})
		assert.Error(t, err)
	})

	t.Run("Negative promotion bonus", func(t *testing.T) {
		_, err := NewTierTable([]Tier{
			{Level: "BRONZE", MinimumSpend: 0, Multiplier: 1.0, PromotionBonus: -10},
		})
		assert.Error(t, err)
	})
}

func TestTierTable_Next(t *testing.T) {
	table := DefaultTierTable()

	t.Run("Next after standard", func(t *testing.T) {
		next, ok, err := table.Next(LevelStandard)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, LevelSilver, next.Level)
		assert.Equal(t, int64(1000), next.MinimumSpend)
		assert.Equal(t, int64(100), next.PromotionBonus)
	})

	t.Run("Top level has no next", func(t *testing.T) {
		_, ok, err := table.Next(LevelPlatinum)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Unknown level", func(t *testing.T) {
		_, _, err := table.Next("DIAMOND")
		assert.Error(t, err)
	})
}

func TestTierTable_Multiplier(t *testing.T) {
	table := DefaultTierTable()

	tests := []struct {
		level    BonusLevel
		expected float64
	}{
		{LevelStandard, 1.0},
		{LevelSilver, 1.2},
		{LevelGold, 1.5},
		{LevelPlatinum, 2.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			m, err := table.Multiplier(tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m)
		})
	}

	t.Run("Unknown level", func(t *testing.T) {
		_, err := table.Multiplier("DIAMOND")
		assert.Error(t, err)
	})
}
