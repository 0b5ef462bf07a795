package systems

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log"
	"sync"

	"github.com/automoto/flappy-gopher/components"
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.design/x/clipboard"
)

// ClipboardSharer puts the screenshot, or the text when there is none, on
// the system clipboard.
type ClipboardSharer struct {
	once    sync.Once
	initErr error
}

func (s *ClipboardSharer) Share(text string, pngData []byte) error {
	s.once.Do(func() {
		s.initErr = clipboard.Init()
	})
	if s.initErr != nil {
		return fmt.Errorf("clipboard unavailable: %w", s.initErr)
	}

	if len(pngData) > 0 {
		clipboard.Write(clipboard.FmtImage, pngData)
		return nil
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// ShareText is the message shared for a score.
func ShareText(score int) string {
	return fmt.Sprintf(cfg.Links.ShareTemplate, score)
}

// RequestShare queues the score to be shared once the current frame has
// been drawn.
func RequestShare(e *ecs.ECS) {
	entry, ok := gameEntry(e)
	if !ok {
		return
	}
	services := components.Services.Get(entry)
	services.PendingShare = ShareText(components.Score.Get(entry).Current)
	services.SharePending = true
}

// FlushShare hands a pending share to the sharer. capture supplies the
// screenshot; a nil capture or a failed one shares the text alone.
func FlushShare(e *ecs.ECS, capture func() ([]byte, error)) {
	entry, ok := gameEntry(e)
	if !ok {
		return
	}
	services := components.Services.Get(entry)
	if !services.SharePending {
		return
	}
	services.SharePending = false
	if services.Share == nil {
		return
	}

	var shot []byte
	if capture != nil {
		data, err := capture()
		if err != nil {
			log.Printf("Warning: Could not capture screenshot: %v", err)
		} else {
			shot = data
		}
	}

	if err := services.Share.Share(services.PendingShare, shot); err != nil {
		log.Printf("Warning: Could not share score: %v", err)
	}
}

// CaptureScreen encodes the drawn screen as PNG.
func CaptureScreen(screen *ebiten.Image) func() ([]byte, error) {
	return func() ([]byte, error) {
		bounds := screen.Bounds()
		img := image.NewRGBA(bounds)
		screen.ReadPixels(img.Pix)

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}
