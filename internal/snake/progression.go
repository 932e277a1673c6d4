package snake

import "github.com/rocketscienceinc/snake-backend/internal/entity"

// LevelFor - levels are 1-indexed and go up every fruitsPerLevel fruits.
func LevelFor(fruitsEaten, fruitsPerLevel int) int {
	if fruitsPerLevel <= 0 || fruitsEaten < 0 {
		return 1
	}

	return fruitsEaten/fruitsPerLevel + 1
}

// ApplySpeedIncrease - speeds the game up once the level has climbed LevelsPerSpeedIncrease
// levels past the last increase. Reports whether the speed changed.
func ApplySpeedIncrease(state *entity.GameState, rules Rules) bool {
	if state.Level < state.LastSpeedIncreaseLevel+rules.LevelsPerSpeedIncrease {
		return false
	}

	state.Speed += rules.SpeedIncrement
	if state.Speed < rules.MinSpeed {
		state.Speed = rules.MinSpeed
	}
	state.LastSpeedIncreaseLevel = state.Level

	return true
}
