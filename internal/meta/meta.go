// Package meta builds the project metadata record shared by the dispatch and
// header tools.
package meta

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Fallback literals substituted for absent config keys.
const (
	NoTitle       = "No Title"
	NoDescription = "No Description"
	NoAuthor      = "No Author"
	NoLogo        = "No Logo"
)

// staticSegment is where Jupyter Book publishes static assets, logo included.
const staticSegment = "_static"

// Metadata is the fixed-shape record extracted from the project config.
// The JSON tags define the repository-dispatch client_payload.
type Metadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags"`
	URL         string   `json:"url,omitempty"`
	LogoPath    string   `json:"logo_path,omitempty"`
	Updated     string   `json:"updated"`
}

// Extract projects a Metadata record out of the config mapping, substituting
// fallback literals for absent keys. The updated field is the ISO-8601 date
// of now; callers wanting the human-readable form replace it with
// OrdinalDate. Pure: the clock and deployed URL are inputs.
func Extract(cfg map[string]any, deployedURL string, now time.Time) Metadata {
	md := Metadata{
		Title:       stringOr(cfg, "title", NoTitle),
		Description: stringOr(cfg, "description", NoDescription),
		Author:      stringOr(cfg, "author", NoAuthor),
		Tags:        extractTags(cfg),
		URL:         deployedURL,
		Updated:     now.Format(time.DateOnly),
	}
	if deployedURL != "" {
		logo := stringOr(cfg, "logo", NoLogo)
		md.LogoPath = fmt.Sprintf("%s/%s/%s",
			strings.TrimRight(deployedURL, "/"), staticSegment, logo)
	}
	return md
}

// extractTags reads the nested project_metadata.tags sequence, tolerating
// the untyped shapes yaml produces. Missing or malformed fields yield an
// empty slice, never an error.
func extractTags(cfg map[string]any) []string {
	out := []string{}
	pm, ok := cfg["project_metadata"].(map[string]any)
	if !ok {
		return out
	}
	raw, ok := pm["tags"].([]any)
	if !ok {
		return out
	}
	for _, item := range raw {
		if s, ok := item.(string); ok {
			s = strings.TrimSpace(s)
			if s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func stringOr(cfg map[string]any, key, fallback string) string {
	if v, ok := cfg[key]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

// Ordinal renders n with its English ordinal suffix. Values whose remainder
// mod 100 falls in [10,20] always take "th" (11th, 12th, 13th, 111th); the
// ones-digit rule applies everywhere else.
func Ordinal(n int) string {
	suffix := "th"
	if rem := n % 100; rem < 10 || rem > 20 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// OrdinalDate renders t as e.g. "August 30th, 2026".
func OrdinalDate(t time.Time) string {
	return fmt.Sprintf("%s %s, %d", t.Month(), Ordinal(t.Day()), t.Year())
}
