// Package dispatch sends the project metadata record to a portfolio
// repository via a GitHub repository-dispatch event.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/meta"
)

const (
	defaultBaseURL = "https://api.github.com"
	eventType      = "project-updated"
	apiVersion     = "2022-11-28"
)

var repoRe = regexp.MustCompile(`^[^/\s]+/[^/\s]+$`)

// Config holds the portfolio target and credential, usually sourced from the
// PORTFOLIO_REPO and PORTFOLIO_TOKEN environment variables.
type Config struct {
	Repo  string
	Token string
}

// Validate validates the dispatch configuration.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Repo, validation.Required,
			validation.Match(repoRe).Error("must be in owner/repo form")),
		validation.Field(&c.Token, validation.Required),
	)
}

// Option is a functional option for configuring a Sender.
type Option func(*Sender)

// WithHTTPClient sets the HTTP client used for the dispatch request.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Sender) {
		s.client = client
	}
}

// WithBaseURL overrides the GitHub API base URL.
func WithBaseURL(base string) Option {
	return func(s *Sender) {
		s.baseURL = base
	}
}

// WithLogger sets the logger used for skip warnings and success lines.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sender) {
		s.logger = logger
	}
}

// Sender performs the single outbound dispatch POST.
type Sender struct {
	cfg     Config
	client  *http.Client
	baseURL string
	logger  *slog.Logger
}

// NewSender creates a Sender with the given configuration.
func NewSender(cfg Config, opts ...Option) *Sender {
	s := &Sender{
		cfg:     cfg,
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: defaultBaseURL,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type payload struct {
	EventType     string        `json:"event_type"`
	ClientPayload meta.Metadata `json:"client_payload"`
}

// Send posts md to {base}/repos/{repo}/dispatches. When the target or token
// is absent or malformed the dispatch is skipped without a network attempt
// and the returned error wraps apperr.ErrMissingCredential. Success is
// exactly an HTTP 204; any other status or transport failure is an error
// carrying the response detail. Exactly one attempt, no retry.
func (s *Sender) Send(ctx context.Context, md meta.Metadata) error {
	if err := s.cfg.Validate(); err != nil {
		s.logger.Warn("skipping portfolio dispatch",
			slog.String("reason", err.Error()))
		return fmt.Errorf("%w: %v", apperr.ErrMissingCredential, err)
	}

	body, err := json.Marshal(payload{EventType: eventType, ClientPayload: md})
	if err != nil {
		return fmt.Errorf("encode dispatch payload: %w", err)
	}

	url := fmt.Sprintf("%s/repos/%s/dispatches", s.baseURL, s.cfg.Repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build dispatch request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.Token)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("dispatch request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("unexpected dispatch response %d: %s",
			resp.StatusCode, bytes.TrimSpace(detail))
	}

	s.logger.Info("metadata sent to portfolio",
		slog.String("repo", s.cfg.Repo),
		slog.String("event_type", eventType),
		slog.String("project", md.Title))
	return nil
}
