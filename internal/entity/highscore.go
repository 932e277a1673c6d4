package entity

type Highscore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}
