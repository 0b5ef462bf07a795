package components

import "github.com/yohamta/donburi"

// ScoreStore persists the best score
type ScoreStore interface {
	BestScore() int
	SaveBestScore(score int) error
}

// LinkOpener opens an external URL
type LinkOpener interface {
	OpenURL(url string) error
}

// Sharer publishes a score message, with a PNG screenshot when one is
// available.
type Sharer interface {
	Share(text string, png []byte) error
}

// ServicesData holds the outside-world collaborators of a scene
type ServicesData struct {
	Scores ScoreStore
	Links  LinkOpener
	Share  Sharer

	// Share text waiting for the next drawn frame to be captured
	PendingShare string
	SharePending bool
}

var Services = donburi.NewComponentType[ServicesData]()
