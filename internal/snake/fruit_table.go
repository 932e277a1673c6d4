package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/rocketscienceinc/snake-backend/internal/entity"
)

var ErrInvalidFruitTable = errors.New("invalid fruit table")

// FruitWeights holds the relative odds of each fruit from MinLevel upwards.
type FruitWeights struct {
	MinLevel int
	Weights  map[string]int
}

// FruitTable is a list of level bands. The band with the highest MinLevel not above the
// current level decides which fruit spawns.
type FruitTable []FruitWeights

// DefaultFruitTable - plain apples until level 5, then rotten and special apples join in.
func DefaultFruitTable() FruitTable {
	return FruitTable{
		{
			MinLevel: 1,
			Weights:  map[string]int{entity.FruitApple: 100},
		},
		{
			MinLevel: 5,
			Weights: map[string]int{
				entity.FruitApple:        70,
				entity.FruitRottenApple:  20,
				entity.FruitSpecialApple: 10,
			},
		},
	}
}

func (that FruitTable) Validate() error {
	if len(that) == 0 {
		return fmt.Errorf("%w: no bands", ErrInvalidFruitTable)
	}

	coversFirstLevel := false
	for _, band := range that {
		if band.MinLevel <= 1 {
			coversFirstLevel = true
		}

		total := 0
		for name, weight := range band.Weights {
			if _, ok := entity.FruitByName(name); !ok {
				return fmt.Errorf("%w: unknown fruit %q", ErrInvalidFruitTable, name)
			}
			if weight < 0 {
				return fmt.Errorf("%w: negative weight for %q", ErrInvalidFruitTable, name)
			}
			total += weight
		}

		if total == 0 {
			return fmt.Errorf("%w: band from level %d has no weight", ErrInvalidFruitTable, band.MinLevel)
		}
	}

	if !coversFirstLevel {
		return fmt.Errorf("%w: level 1 is not covered", ErrInvalidFruitTable)
	}

	return nil
}

// Band - returns the weights in effect at the given level.
func (that FruitTable) Band(level int) FruitWeights {
	bands := append(FruitTable(nil), that...)
	sort.SliceStable(bands, func(i, j int) bool {
		return bands[i].MinLevel < bands[j].MinLevel
	})

	var current FruitWeights
	for _, band := range bands {
		if band.MinLevel > level {
			break
		}
		current = band
	}

	return current
}

// Pick - draws a fruit for the level. Fruits are visited in canonical order so a seeded
// rng always yields the same fruit.
func (that FruitTable) Pick(level int, rng *rand.Rand) entity.FruitType {
	band := that.Band(level)

	total := 0
	for _, fruit := range entity.FruitTypes {
		total += band.Weights[fruit.Name]
	}

	if total <= 0 {
		return entity.Apple
	}

	roll := rng.Intn(total)
	for _, fruit := range entity.FruitTypes {
		weight := band.Weights[fruit.Name]
		if roll < weight {
			return fruit
		}
		roll -= weight
	}

	return entity.Apple
}
