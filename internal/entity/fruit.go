package entity

const (
	FruitApple        = "apple"
	FruitRottenApple  = "rotten_apple"
	FruitSpecialApple = "special_apple"
)

// FruitType describes what eating a fruit does to the score and to the snake length.
type FruitType struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	ScoreDelta  int    `json:"score"`
	LengthDelta int    `json:"length"`
}

var (
	Apple        = FruitType{Name: FruitApple, Color: "#e74c3c", ScoreDelta: 1, LengthDelta: 1}
	RottenApple  = FruitType{Name: FruitRottenApple, Color: "#000000", ScoreDelta: -2, LengthDelta: -2}
	SpecialApple = FruitType{Name: FruitSpecialApple, Color: "#ff69b4", ScoreDelta: 4, LengthDelta: 4}

	FruitTypes = []FruitType{Apple, RottenApple, SpecialApple}
)

// FruitByName - looks a canonical fruit up by name.
func FruitByName(name string) (FruitType, bool) {
	for _, fruit := range FruitTypes {
		if fruit.Name == name {
			return fruit, true
		}
	}

	return FruitType{}, false
}

type Food struct {
	Position Cell      `json:"position"`
	Type     FruitType `json:"type"`
}
