package entity

const (
	StatusIdle    = "idle"
	StatusRunning = "running"
	StatusPaused  = "paused"
	StatusOver    = "over"
)

// GameState is the authoritative state of one game. It is owned by a single engine instance;
// readers get copies through Clone.
type GameState struct {
	Score                  int       `json:"score"`
	Level                  int       `json:"level"`
	FruitsEaten            int       `json:"fruits_eaten"`
	Speed                  int       `json:"speed"`
	LastSpeedIncreaseLevel int       `json:"last_speed_increase_level"`
	Paused                 bool      `json:"paused"`
	GameOver               bool      `json:"game_over"`
	Snake                  []Cell    `json:"snake"`
	Direction              Direction `json:"direction"`
	// Heading is the direction the head moved in on the last committed tick.
	Heading       Direction `json:"heading"`
	PendingGrowth int       `json:"pending_growth"`
	Foods         []Food    `json:"foods"`
}

func (that *GameState) Head() Cell {
	return that.Snake[0]
}

func (that *GameState) Tail() Cell {
	return that.Snake[len(that.Snake)-1]
}

func (that *GameState) Status() string {
	switch {
	case that.GameOver:
		return StatusOver
	case that.Paused:
		return StatusPaused
	default:
		return StatusRunning
	}
}

func (that *GameState) IsRunning() bool {
	return !that.GameOver && !that.Paused
}

// Clone - returns a deep copy that shares no slices with the original.
func (that *GameState) Clone() GameState {
	clone := *that
	clone.Snake = append([]Cell(nil), that.Snake...)
	clone.Foods = append([]Food(nil), that.Foods...)

	return clone
}
