package service

import "mdr/internal/domain/entity"

// LinkBuilder produces the URLs placed in notification mails and redirects.
type LinkBuilder interface {
	// ActionLink returns the API link for purpose carrying email and token.
	ActionLink(purpose entity.LinkPurpose, email, token string) (string, error)

	// FrontendLink returns the frontend page URL carrying email and token.
	FrontendLink(page, email, token string) (string, error)
}
