package service

import (
	"context"

	"rebrickable/lookup/internal/cache"
	"rebrickable/lookup/internal/client"
	"rebrickable/lookup/internal/domain"
	"rebrickable/lookup/internal/repository"

	"golang.org/x/sync/errgroup"

	log "github.com/sirupsen/logrus"
)

// Result is one completed part lookup: the part payload and its colors
// payload, RGB-enriched.
type Result struct {
	Part   domain.Part
	Colors domain.ColorsPayload
}

type Service struct {
	client     client.RebrickableClient
	rgbCache   cache.RGBCache
	repository repository.PartRepository
}

func NewService(
	client client.RebrickableClient,
	rgbCache cache.RGBCache,
	repository repository.PartRepository,
) *Service {
	return &Service{
		client:     client,
		rgbCache:   rgbCache,
		repository: repository,
	}
}

// Lookup fetches a part and its colors, fills in missing RGB values and
// saves the payload when a repository is configured. Persistence failures
// never fail the lookup.
func (s *Service) Lookup(ctx context.Context, partNum string) (*Result, error) {
	var part domain.Part
	var colors domain.ColorsPayload

	errGroup, groupCtx := errgroup.WithContext(ctx)

	errGroup.Go(func() error {
		p, err := s.client.GetPart(groupCtx, partNum)
		if err != nil {
			return err
		}
		part = p
		return nil
	})

	errGroup.Go(func() error {
		c, err := s.client.GetPartColors(groupCtx, partNum)
		if err != nil {
			return err
		}
		colors = c
		return nil
	})

	if err := errGroup.Wait(); err != nil {
		return nil, err
	}

	s.enrichColors(ctx, colors)

	if s.repository != nil {
		if err := s.repository.SavePart(ctx, partNum, part); err != nil {
			log.Warnf("⚠️ Failed to save part %s: %v", partNum, err)
		}
	}

	return &Result{Part: part, Colors: colors}, nil
}

// enrichColors fills missing RGB values by resolving each entry's color id
// against the cache and, on a miss, the /lego/colors/{id}/ endpoint.
// Failures leave the field empty and are invisible to the user.
func (s *Service) enrichColors(ctx context.Context, colors domain.ColorsPayload) {
	entries, ok := colors.Results()
	if !ok {
		return
	}

	// Per-lookup memo so a failed resolution is not reattempted for every
	// entry sharing the same color id.
	resolved := make(map[string]string)

	for _, entry := range entries {
		if entry.Field("rgb") != "" {
			continue
		}

		colorID := entry.Field("id")
		if colorID == "" {
			continue
		}

		rgb, seen := resolved[colorID]
		if !seen {
			rgb = s.resolveRGB(ctx, colorID)
			resolved[colorID] = rgb
		}

		if rgb != "" {
			entry["rgb"] = rgb
		}
	}
}

func (s *Service) resolveRGB(ctx context.Context, colorID string) string {
	if s.rgbCache != nil {
		rgb, err := s.rgbCache.Get(ctx, colorID)
		if err != nil {
			log.Debugf("RGB cache get failed for color %s: %v", colorID, err)
		} else if rgb != "" {
			return rgb
		}
	}

	colorData, err := s.client.GetColor(ctx, colorID)
	if err != nil {
		log.Debugf("Failed to resolve RGB for color %s: %v", colorID, err)
		return ""
	}

	rgb := domain.FormatValue(colorData["rgb"])
	if rgb != "" && s.rgbCache != nil {
		if err := s.rgbCache.Set(ctx, colorID, rgb); err != nil {
			log.Debugf("RGB cache set failed for color %s: %v", colorID, err)
		}
	}

	return rgb
}
