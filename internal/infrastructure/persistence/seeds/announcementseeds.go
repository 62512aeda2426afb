// Package seeds loads announcement fixtures from YAML.
package seeds

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"bulletin/internal/application/announcement/dto"
	"bulletin/internal/shared/logger"
)

// AnnouncementSeed is one entry of a seed file.
//
//	announcements:
//	  - title: Scheduled maintenance
//	    content: The API is read-only on Sunday from 02:00 UTC.
//	    priority: 10
//	    published_at: 2026-06-01T00:00:00Z
type AnnouncementSeed struct {
	Title       string `yaml:"title"`
	Content     string `yaml:"content"`
	ContentType string `yaml:"content_type"`
	Priority    *int   `yaml:"priority"`
	Active      *bool  `yaml:"active"`
	PublishedAt string `yaml:"published_at"`
	ExpiresAt   string `yaml:"expires_at"`
}

type seedFile struct {
	Announcements []AnnouncementSeed `yaml:"announcements"`
}

// Creator stores a new announcement.
type Creator interface {
	CreateAnnouncement(ctx context.Context, req dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error)
}

// LoadAnnouncements decodes a seed file into create requests. Unknown keys
// are rejected so typos do not silently drop fields.
func LoadAnnouncements(r io.Reader) ([]dto.CreateAnnouncementRequest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file seedFile
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}

	reqs := make([]dto.CreateAnnouncementRequest, 0, len(file.Announcements))
	for i, s := range file.Announcements {
		req, err := s.toRequest()
		if err != nil {
			return nil, fmt.Errorf("announcement %d (%q): %w", i+1, s.Title, err)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

func (s AnnouncementSeed) toRequest() (dto.CreateAnnouncementRequest, error) {
	published, err := parseTimestamp(s.PublishedAt)
	if err != nil {
		return dto.CreateAnnouncementRequest{}, fmt.Errorf("published_at: %w", err)
	}
	expires, err := parseTimestamp(s.ExpiresAt)
	if err != nil {
		return dto.CreateAnnouncementRequest{}, fmt.Errorf("expires_at: %w", err)
	}

	return dto.CreateAnnouncementRequest{
		Title:       s.Title,
		Content:     s.Content,
		ContentType: s.ContentType,
		Priority:    s.Priority,
		Active:      s.Active,
		PublishedAt: published,
		ExpiresAt:   expires,
	}, nil
}

func parseTimestamp(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, fmt.Errorf("expected RFC 3339 timestamp, got %q", v)
	}
	t = t.UTC()
	return &t, nil
}

// Apply creates every request in order and stops at the first failure.
// It returns the ids that were created before the failure.
func Apply(ctx context.Context, creator Creator, reqs []dto.CreateAnnouncementRequest, log logger.Interface) ([]uint, error) {
	ids := make([]uint, 0, len(reqs))
	for _, req := range reqs {
		resp, err := creator.CreateAnnouncement(ctx, req)
		if err != nil {
			return ids, fmt.Errorf("failed to seed %q: %w", req.Title, err)
		}
		log.Infow("seeded announcement", "id", resp.ID, "title", resp.Title)
		ids = append(ids, resp.ID)
	}
	return ids, nil
}
