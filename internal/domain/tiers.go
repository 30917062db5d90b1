package domain

import "fmt"

// BonusLevel представляет уровень лояльности
type BonusLevel string

const (
	LevelStandard BonusLevel = "STANDARD"
	LevelSilver   BonusLevel = "SILVER"
	LevelGold     BonusLevel = "GOLD"
	LevelPlatinum BonusLevel = "PLATINUM"
)

// Tier описывает один уровень лояльности: порог по сумме покупок,
// множитель начисления и разовый бонус за достижение уровня.
type Tier struct {
	Level          BonusLevel `yaml:"level"`
	MinimumSpend   int64      `yaml:"minimumSpend"`
	Multiplier     float64    `yaml:"multiplier"`
	PromotionBonus int64      `yaml:"promotionBonus"`
}

// TierTable хранит упорядоченную неизменяемую таблицу уровней. Создается один раз
// при старте и передается движку лояльности через конструктор.
type TierTable struct {
	tiers []Tier
	index map[BonusLevel]int
}

// NewTierTable создает таблицу уровней из упорядоченного списка.
// Требования: список не пуст, первый порог равен нулю, пороги строго
// возрастают, множители не меньше 1, бонусы неотрицательны.
func NewTierTable(tiers []Tier) (*TierTable, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("tier table: empty tier list")
	}
	if tiers[0].MinimumSpend != 0 {
		return nil, fmt.Errorf("tier table: first tier %q must have zero minimum spend", tiers[0].Level)
	}

	index := make(map[BonusLevel]int, len(tiers))
	for i, t := range tiers {
		if t.Level == "" {
			return nil, fmt.Errorf("tier table: tier %d has empty level name", i)
		}
		if _, ok := index[t.Level]; ok {
			return nil, fmt.Errorf("tier table: duplicate level %q", t.Level)
		}
		if i > 0 && t.MinimumSpend <= tiers[i-1].MinimumSpend {
			return nil, fmt.Errorf("tier table: minimum spend must strictly increase, %q <= %q", t.Level, tiers[i-1].Level)
		}
		if t.Multiplier < 1.0 {
			return nil, fmt.Errorf("tier table: multiplier for %q must be >= 1.0", t.Level)
		}
		if t.PromotionBonus < 0 {
			return nil, fmt.Errorf("tier table: promotion bonus for %q must be >= 0", t.Level)
		}
		index[t.Level] = i
	}

	copied := make([]Tier, len(tiers))
	copy(copied, tiers)

	return &TierTable{tiers: copied, index: index}, nil
}

// DefaultTierTable возвращает стандартную таблицу уровней
func DefaultTierTable() *TierTable {
	table, err := NewTierTable([]Tier{
		{Level: LevelStandard, MinimumSpend: 0, Multiplier: 1.0, PromotionBonus: 0},
		{Level: LevelSilver, MinimumSpend: 1000, Multiplier: 1.2, PromotionBonus: 100},
		{Level: LevelGold, MinimumSpend: 5000, Multiplier: 1.5, PromotionBonus: 500},
		{Level: LevelPlatinum, MinimumSpend: 10000, Multiplier: 2.0, PromotionBonus: 1000},
	})
	if err != nil {
		panic(err) // статическая таблица, ошибка невозможна
	}
	return table
}

// First возвращает начальный уровень
func (t *TierTable) First() Tier {
	return t.tiers[0]
}

// Get возвращает уровень по имени
func (t *TierTable) Get(level BonusLevel) (Tier, error) {
	i, ok := t.index[level]
	if !ok {
		return Tier{}, fmt.Errorf("tier table: unknown level %q", level)
	}
	return t.tiers[i], nil
}

// Next возвращает следующий уровень после заданного.
// На максимальном уровне возвращает false.
func (t *TierTable) Next(level BonusLevel) (Tier, bool, error) {
	i, ok := t.index[level]
	if !ok {
		return Tier{}, false, fmt.Errorf("tier table: unknown level %q", level)
	}
	if i == len(t.tiers)-1 {
		return Tier{}, false, nil
	}
	return t.tiers[i+1], true, nil
}

// Multiplier возвращает множитель начисления для уровня
func (t *TierTable) Multiplier(level BonusLevel) (float64, error) {
	tier, err := t.Get(level)
	if err != nil {
		return 0, err
	}
	return tier.Multiplier, nil
}

// Levels возвращает упорядоченный список имен уровней
func (t *TierTable) Levels() []BonusLevel {
	levels := make([]BonusLevel, len(t.tiers))
	for i, tier := range t.tiers {
		levels[i] = tier.Level
	}
	return levels
}
