// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"mdr/config"
	deliverycontext "mdr/internal/delivery/context"
	"mdr/internal/domain/entity"
	domainerrors "mdr/internal/domain/errors"
	"mdr/internal/domain/repository"
	"mdr/internal/domain/service"

	"github.com/pkg/errors"
)

type tokenValidity struct {
	setup    time.Duration
	reverify time.Duration
	reset    time.Duration
	delete   time.Duration
}

func newTokenValidity(cfg *config.Config) tokenValidity {
	validity := tokenValidity{
		setup:    config.DefaultSetupTokenValidity,
		reverify: config.DefaultReverifyTokenValidity,
		reset:    config.DefaultResetTokenValidity,
		delete:   config.DefaultDeleteTokenValidity,
	}
	if cfg == nil || cfg.Tokens == nil {
		return validity
	}

	if cfg.Tokens.SetupValidity > 0 {
		validity.setup = cfg.Tokens.SetupValidity
	}
	if cfg.Tokens.ReverifyValidity > 0 {
		validity.reverify = cfg.Tokens.ReverifyValidity
	}
	if cfg.Tokens.ResetValidity > 0 {
		validity.reset = cfg.Tokens.ResetValidity
	}
	if cfg.Tokens.DeleteValidity > 0 {
		validity.delete = cfg.Tokens.DeleteValidity
	}

	return validity
}

// lifecycleTokens mints pending tokens onto accounts and mails the matching links.
type lifecycleTokens struct {
	policy   service.TokenPolicy
	notifier service.NotificationDispatcher
	links    service.LinkBuilder
	clock    service.Clock
	validity tokenValidity
}

// issue stores a fresh token for purpose on the account, replacing any pending one.
func (lt *lifecycleTokens) issue(account *entity.Account, purpose entity.TokenPurpose, validity time.Duration) (*entity.PendingToken, error) {
	token, err := lt.policy.IssueToken(purpose, validity)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrTokenGenerationFailed, "failed to issue %s token: %v", purpose, err)
	}

	account.SetToken(token)

	return token, nil
}

// prepareReverification marks the account unverified and stores a re-verification token.
func (lt *lifecycleTokens) prepareReverification(account *entity.Account) (*entity.PendingToken, error) {
	token, err := lt.issue(account, entity.TokenPurposeVerify, lt.validity.reverify)
	if err != nil {
		return nil, err
	}

	account.IsVerified = false

	return token, nil
}

// lockAndValidate loads the account for email under a row lock and checks the
// presented token against the slot for purpose. Unknown emails and bad tokens
// are reported the same way.
func (lt *lifecycleTokens) lockAndValidate(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	purpose entity.TokenPurpose,
	email, presented string,
) (*entity.Account, error) {
	account, err := accountRepo.FindByEmailForUpdate(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrInvalidToken, "%s token rejected", purpose)
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	if !lt.policy.Validate(account.Token(purpose), presented, lt.clock.Now()) {
		return nil, errors.Wrapf(domainerrors.ErrInvalidToken, "%s token rejected", purpose)
	}

	return account, nil
}

// send mails the link for purpose carrying the account email and token.
func (lt *lifecycleTokens) send(ctx context.Context, logger *slog.Logger, account *entity.Account, purpose entity.LinkPurpose, token *entity.PendingToken) error {
	link, err := lt.links.ActionLink(purpose, account.Email, token.Value)
	if err != nil {
		return errors.Wrap(err, "failed to build link")
	}

	msg := &entity.LinkMessage{
		Purpose:   purpose,
		To:        account.Email,
		Username:  account.Username,
		Link:      link,
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
	}
	if err := lt.notifier.SendLink(ctx, msg); err != nil {
		logger.Error("Failed to dispatch link", slog.Any("purpose", purpose), slog.Any("accountID", account.ID), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrNotificationFailed.WithDetails(err.Error()), "failed to dispatch link")
	}

	logger.Debug("Link dispatched", slog.Any("purpose", purpose), slog.Any("accountID", account.ID))

	return nil
}

// ensureAvailable rejects a username or email held by an account other than self.
// Empty values are not checked.
func ensureAvailable(ctx context.Context, accountRepo repository.AccountRepository, username, email string, self *entity.Account) error {
	if username != "" {
		existing, err := accountRepo.FindByUsername(ctx, username)
		if err == nil && !isSameAccount(existing, self) {
			return errors.Wrap(domainerrors.ErrUsernameInUse, "username already taken")
		}
		if err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check username")
		}
	}

	if email != "" {
		existing, err := accountRepo.FindByEmail(ctx, email)
		if err == nil && !isSameAccount(existing, self) {
			return errors.Wrap(domainerrors.ErrEmailInUse, "email already taken")
		}
		if err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check email")
		}
	}

	return nil
}

func isSameAccount(existing, self *entity.Account) bool {
	return self != nil && existing != nil && existing.ID == self.ID
}

// wrapLookupError maps the repository not-found sentinel to the domain error.
func wrapLookupError(err error) error {
	if errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(domainerrors.ErrUserNotFound, "account lookup failed")
	}

	return errors.Wrap(err, "failed to find account")
}
