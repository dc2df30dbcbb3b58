package ddragon

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// DefaultIconSize is the edge length of icons shown on ability tiles
const DefaultIconSize = 30

// MaxParallelIconFetch bounds concurrent icon downloads per champion
const MaxParallelIconFetch = 4

// DecodeIcon decodes image bytes and scales them to a size x size square.
// A non-positive size keeps the original dimensions.
func DecodeIcon(data []byte, size int) (image.Image, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIconMissing, err)
	}
	if size <= 0 {
		return src, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst, nil
}

// AbilityIcons fetches every ability icon of a champion concurrently
func (c *Client) AbilityIcons(ctx context.Context, name string, size int) (map[string]image.Image, map[string]error) {
	icons := make(map[string]image.Image)
	failures := make(map[string]error)

	abilities, err := c.ChampionAbilities(ctx, name)
	if err != nil {
		failures[name] = err
		return icons, failures
	}

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(MaxParallelIconFetch)

	for _, ability := range abilities {
		abilityID := ability.ID
		g.Go(func() error {
			data, err := c.AbilityIcon(ctx, name, abilityID)
			var img image.Image
			if err == nil {
				img, err = DecodeIcon(data, size)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("Icon for %s %s unavailable: %v", name, abilityID, err)
				failures[abilityID] = err
				return nil
			}
			icons[abilityID] = img
			return nil
		})
	}

	// Goroutines never return errors; failures are collected per ability
	_ = g.Wait()
	return icons, failures
}
