package usecases

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"booking-portal/config"
	"booking-portal/internal/module/auth/models/request"
	"booking-portal/internal/module/auth/models/response"
	"booking-portal/internal/module/auth/repositories"
	"booking-portal/internal/pkg/errors"
	"booking-portal/internal/pkg/session"
)

type usecase struct {
	repo     repositories.Repositories
	store    session.Store
	log      *otelzap.Logger
	validate *validator.Validate
	cfg      config.AuthConfig
	now      func() time.Time
}

type Usecase interface {
	LoginURL() string
	LogoutURL() string
	Callback(ctx context.Context, code string) (session.Session, error)
	Logout(ctx context.Context, sessionID string) error
	Refresh(ctx context.Context, refreshToken string) (session.Session, error)
	CurrentUser(ctx context.Context) (response.User, error)
}

func New(repo repositories.Repositories, store session.Store, log *otelzap.Logger, cfg config.AuthConfig, now func() time.Time) Usecase {
	if now == nil {
		now = time.Now
	}

	return &usecase{
		repo:     repo,
		store:    store,
		log:      log,
		validate: validator.New(),
		cfg:      cfg,
		now:      now,
	}
}

// LoginURL points at the hosted login page.
func (u *usecase) LoginURL() string {
	params := url.Values{
		"response_type": {"code"},
		"client_id":     {u.cfg.ClientID},
		"redirect_uri":  {u.cfg.RedirectSignIn},
		"scope":         {u.cfg.Scope},
	}
	return fmt.Sprintf("https://%s/login?%s", u.cfg.Domain, params.Encode())
}

func (u *usecase) LogoutURL() string {
	params := url.Values{
		"client_id":  {u.cfg.ClientID},
		"logout_uri": {u.cfg.RedirectSignOut},
	}
	return fmt.Sprintf("https://%s/logout?%s", u.cfg.Domain, params.Encode())
}

// Callback exchanges an authorization code and opens a session for it.
func (u *usecase) Callback(ctx context.Context, code string) (session.Session, error) {
	req := request.Callback{Code: code, RedirectURI: u.cfg.RedirectSignIn}
	if err := u.validate.Struct(req); err != nil {
		return session.Session{}, errors.BadRequest("missing authorization code")
	}

	resp, err := u.repo.ExchangeCode(ctx, req)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error exchange authorization code: %v", err))
		if errors.IsTransport(err) {
			return session.Session{}, err
		}
		return session.Session{}, errors.UnauthorizedError("Authentication failed. Please sign in again.")
	}
	if resp.AccessToken == "" {
		return session.Session{}, errors.UnauthorizedError("Authentication failed. Please sign in again.")
	}

	s := resp.Session(uuid.NewString(), u.now())
	if s.LoginTime.IsZero() {
		s.LoginTime = u.now()
	}

	if err := u.store.Save(ctx, s); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error save session: %v", err))
		return session.Session{}, errors.InternalServerError("error save session")
	}

	u.log.Ctx(ctx).Info(fmt.Sprintf("user %s signed in, groups %v", s.Username, s.Groups))
	return s, nil
}

func (u *usecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := u.store.Delete(ctx, sessionID); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error delete session: %v", err))
		return errors.InternalServerError("error delete session")
	}
	return nil
}

// Refresh is the session.RefreshFunc used by the session manager.
func (u *usecase) Refresh(ctx context.Context, refreshToken string) (session.Session, error) {
	resp, err := u.repo.RefreshToken(ctx, request.Refresh{RefreshToken: refreshToken})
	if err != nil {
		return session.Session{}, err
	}
	if resp.AccessToken == "" {
		return session.Session{}, errors.UnauthorizedError("refresh returned no access token")
	}
	return resp.Session("", u.now()), nil
}

func (u *usecase) CurrentUser(ctx context.Context) (response.User, error) {
	s, ok := session.FromContext(ctx)
	if !ok {
		return response.User{}, errors.UnauthorizedError("login required")
	}
	return response.NewUser(s), nil
}
