package services

import (
	"context"
	"log"
	"strings"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/devingeorge/global-sales-insights/internal/models"
	"github.com/devingeorge/global-sales-insights/internal/slack"
)

const (
	canvasListTTL = 5 * time.Minute
	canvasInfoTTL = 10 * time.Minute

	canvasListKey = "canvas-list"

	// Placeholder title when Slack returns a canvas with no title or name
	untitledCanvas = "Untitled Canvas"
)

// CanvasSource is the external canvas listing/info capability. The Slack
// client implements it; tests substitute a fake.
type CanvasSource interface {
	ListCanvasFiles(ctx context.Context) ([]slack.File, error)
	CanvasFileInfo(ctx context.Context, fileID string) (*slack.File, error)
}

// CanvasService resolves live canvas metadata with two independent caches:
// a list-level cache (listing is the expensive call) and a per-item lookup
// cache (individual title staleness is more tolerable, so it lives longer).
// Both expire lazily; nothing is evicted eagerly, and the key space is
// bounded by the workspace's canvas count.
type CanvasService struct {
	source    CanvasSource
	listTTL   time.Duration
	infoTTL   time.Duration
	listCache *cache.Cache
	infoCache *cache.Cache
}

// NewCanvasService creates a canvas resolver over the given source
func NewCanvasService(source CanvasSource) *CanvasService {
	return newCanvasService(source, canvasListTTL, canvasInfoTTL)
}

func newCanvasService(source CanvasSource, listTTL, infoTTL time.Duration) *CanvasService {
	return &CanvasService{
		source:    source,
		listTTL:   listTTL,
		infoTTL:   infoTTL,
		listCache: cache.New(listTTL, 0),
		infoCache: cache.New(infoTTL, 0),
	}
}

// normalizeCanvas maps the raw file object onto the canonical metadata
// shape. Slack populates different title/link fields depending on file age
// and sharing state.
func normalizeCanvas(file *slack.File) *models.CanvasFileMeta {
	if file == nil || file.ID == "" {
		return nil
	}
	title := file.Title
	if title == "" {
		title = file.Name
	}
	if title == "" {
		title = untitledCanvas
	}
	link := file.Permalink
	if link == "" {
		link = file.PermalinkPublic
	}
	if link == "" {
		link = file.URLPrivate
	}
	return &models.CanvasFileMeta{ID: file.ID, Title: title, Permalink: link}
}

// List returns the workspace's canvases in Slack's listing order. Callers
// that only need to render options should treat an error as "zero canvases
// available"; the error is returned so callers that need an authoritative
// answer can tell the difference.
func (s *CanvasService) List(ctx context.Context) ([]models.CanvasFileMeta, error) {
	if cached, found := s.listCache.Get(canvasListKey); found {
		return cached.([]models.CanvasFileMeta), nil
	}

	raw, err := s.source.ListCanvasFiles(ctx)
	if err != nil {
		log.Printf("⚠️  [CANVAS] Failed to list canvases: %v", err)
		return nil, err
	}

	files := make([]models.CanvasFileMeta, 0, len(raw))
	for i := range raw {
		meta := normalizeCanvas(&raw[i])
		if meta == nil {
			continue
		}
		files = append(files, *meta)
		// Batch-warm the point-lookup cache so later GetByID calls skip
		// the files.info round trip.
		s.infoCache.Set(meta.ID, *meta, s.infoTTL)
	}

	s.listCache.Set(canvasListKey, files, s.listTTL)
	log.Printf("📄 [CANVAS] Cached %d canvas file(s)", len(files))
	return files, nil
}

// GetByID resolves a single canvas's metadata. Unlike List, a lookup
// failure propagates: the caller holds an id and needs an authoritative
// answer.
func (s *CanvasService) GetByID(ctx context.Context, fileID string) (*models.CanvasFileMeta, error) {
	if cached, found := s.infoCache.Get(fileID); found {
		meta := cached.(models.CanvasFileMeta)
		return &meta, nil
	}

	raw, err := s.source.CanvasFileInfo(ctx, fileID)
	if err != nil {
		return nil, err
	}
	meta := normalizeCanvas(raw)
	if meta == nil {
		return nil, nil
	}
	s.infoCache.Set(meta.ID, *meta, s.infoTTL)
	return meta, nil
}

// Filter returns the canvases whose title contains the query,
// case-insensitively. An empty query matches everything.
func Filter(files []models.CanvasFileMeta, query string) []models.CanvasFileMeta {
	if query == "" {
		return files
	}
	needle := strings.ToLower(query)
	var matched []models.CanvasFileMeta
	for _, f := range files {
		if strings.Contains(strings.ToLower(f.Title), needle) {
			matched = append(matched, f)
		}
	}
	return matched
}

// CachedItemCount reports the per-item cache size (growth stays bounded by
// the number of distinct canvases).
func (s *CanvasService) CachedItemCount() int {
	return s.infoCache.ItemCount()
}
