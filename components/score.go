package components

import "github.com/yohamta/donburi"

type ScoreData struct {
	Current int
	Best    int
	NewBest bool // set when the run beat the stored best
}

var Score = donburi.NewComponentType[ScoreData]()
