package systems

import (
	"log"

	"github.com/automoto/flappy-gopher/components"
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/pkg/browser"
	"github.com/yohamta/donburi/ecs"
)

// BrowserOpener opens links in the system browser.
type BrowserOpener struct{}

func (BrowserOpener) OpenURL(url string) error {
	return browser.OpenURL(url)
}

// OpenRating opens the rating page. Failures are only logged.
func OpenRating(e *ecs.ECS) {
	entry, ok := gameEntry(e)
	if !ok {
		return
	}
	services := components.Services.Get(entry)
	if services.Links == nil {
		return
	}
	if err := services.Links.OpenURL(cfg.Links.RateURL); err != nil {
		log.Printf("Warning: Could not open rating page: %v", err)
	}
}
