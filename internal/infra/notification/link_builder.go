// Package notification builds account links and delivers them by mail.
package notification

import (
	"net/url"
	"strings"

	"mdr/config"
	"mdr/internal/domain/entity"
	"mdr/internal/domain/service"
	"mdr/internal/errors"
)

const (
	defaultAPIBaseURL  = "http://localhost:8080/api/account"
	defaultFrontendURL = "http://localhost:3000"
)

// API paths the mailed links point at, relative to the account API base URL.
var actionPaths = map[entity.LinkPurpose]string{
	entity.LinkPurposeAccountSetup:    "setup-password",
	entity.LinkPurposeConfirmEmail:    "redirect-confirm-email",
	entity.LinkPurposePasswordReset:   "reset-password",
	entity.LinkPurposeConfirmDeletion: "redirect-delete-account",
}

type linkBuilder struct {
	apiBaseURL  string
	frontendURL string
}

// NewLinkBuilder builds links from the configured base URLs.
func NewLinkBuilder(cfg *config.Config) service.LinkBuilder {
	builder := &linkBuilder{
		apiBaseURL:  defaultAPIBaseURL,
		frontendURL: defaultFrontendURL,
	}
	if cfg != nil && cfg.Links != nil {
		if base := strings.TrimSpace(cfg.Links.APIBaseURL); base != "" {
			builder.apiBaseURL = base
		}
		if base := strings.TrimSpace(cfg.Links.FrontendURL); base != "" {
			builder.frontendURL = base
		}
	}

	return builder
}

// ActionLink returns <apiBaseURL>/<path>?email=..&token=.. with both values query-escaped.
func (b *linkBuilder) ActionLink(purpose entity.LinkPurpose, email, token string) (string, error) {
	path, ok := actionPaths[purpose]
	if !ok {
		return "", errors.Errorf("no link path for purpose %q", purpose)
	}

	return buildLink(b.apiBaseURL, path, email, token)
}

// FrontendLink returns <frontendURL>/<page>?email=..&token=..
func (b *linkBuilder) FrontendLink(page, email, token string) (string, error) {
	return buildLink(b.frontendURL, page, email, token)
}

func buildLink(base, path, email, token string) (string, error) {
	joined, err := url.JoinPath(base, path)
	if err != nil {
		return "", errors.Wrapf(err, "invalid base url %q", base)
	}

	u, err := url.Parse(joined)
	if err != nil {
		return "", errors.Wrapf(err, "invalid link %q", joined)
	}

	query := url.Values{}
	query.Set("email", email)
	query.Set("token", token)
	u.RawQuery = query.Encode()

	return u.String(), nil
}
