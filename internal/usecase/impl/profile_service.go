// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "compass/internal/delivery/context"
	"compass/internal/domain/entity"
	domainerrors "compass/internal/domain/errors"
	"compass/internal/domain/repository"
	"compass/internal/domain/service"
	"compass/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager    repository.TransactionManager
	profileRepo  repository.ProfileRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProfileRepo  repository.ProfileRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewProfileService is the constructor for profileService. It receives all dependencies as interfaces.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:    params.TxManager,
		profileRepo:  params.ProfileRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. Email uniqueness is checked ignoring letter
// case, the password is hashed before anything is persisted, and section
// fields supplied at registration time are stored as given.
func (srv *profileService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.ProfileOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	var registered *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		_, err := profileRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrEmailTaken, "registration rejected")
		}
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
		}

		candidate := input.SectionFields.ToEntity()
		candidate.Email = input.Email
		candidate.PasswordHash = hashedPassword

		if err := profileRepo.Create(ctx, &candidate); err != nil {
			return errors.Wrap(err, "failed to create profile during registration")
		}

		registered = &candidate

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("profileID", registered.ID))

	return usecase.NewProfileOutput(registered), nil
}

// Authenticate verifies the credentials and issues a signed login token.
// An unknown email and a wrong password produce the same error, so callers
// cannot probe for account existence.
func (srv *profileService) Authenticate(ctx context.Context, input *usecase.CredentialsInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Debug("Starting authentication", slog.String("email", input.Email))

	profile, err := srv.verifyCredentials(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Authentication failed", slog.String("email", input.Email))

		return nil, err
	}

	token, err := srv.tokenService.Issue(profile.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue login token")
	}

	srv.log(ctx).Debug("Authentication succeeded", slog.Int64("profileID", profile.ID))

	return &usecase.TokenOutput{
		Message: "Login Successful",
		Token:   token,
	}, nil
}

// FetchProfile verifies the credentials and returns the full profile with
// credential material stripped.
func (srv *profileService) FetchProfile(ctx context.Context, input *usecase.CredentialsInput) (*usecase.ProfileOutput, error) {
	srv.log(ctx).Debug("Fetching profile with credentials", slog.String("email", input.Email))

	profile, err := srv.verifyCredentials(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Profile fetch failed", slog.String("email", input.Email))

		return nil, err
	}

	// Never let the stored hash leave the service.
	profile.Sanitize()

	return usecase.NewProfileOutput(profile), nil
}

// verifyCredentials performs the shared lookup-and-check step. Both failure
// paths collapse into ErrInvalidCredentials by design.
func (srv *profileService) verifyCredentials(ctx context.Context, email, password string) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed")
		}

		return nil, errors.Wrap(err, "failed to look up profile")
	}

	if !srv.hasher.Check(password, profile.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed")
	}

	return profile, nil
}

// UpdateSection overwrites exactly the named section of the stored profile
// with the matching fields of patch. The section is validated before the
// store is touched; every other field, the password hash included, stays
// unchanged. The read-modify-write runs in one transaction; concurrent
// updates to the same profile are last-write-wins.
func (srv *profileService) UpdateSection(ctx context.Context, email string, section entity.Section, patch *usecase.SectionFields) error {
	if !section.Valid() {
		return errors.Wrap(domainerrors.ErrInvalidSection, "unrecognized section")
	}

	srv.log(ctx).Info("Updating profile section",
		slog.String("email", email),
		slog.String("section", section.String()),
	)

	patchEntity := patch.ToEntity()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		stored, err := profileRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "section update target missing")
			}

			return errors.Wrap(err, "failed to find profile for section update")
		}

		if !stored.ApplySection(section, &patchEntity) {
			return errors.Wrap(domainerrors.ErrInvalidSection, "unrecognized section")
		}

		if err := profileRepo.Update(ctx, stored); err != nil {
			return errors.Wrap(err, "failed to persist section update")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Section update failed",
			slog.String("email", email),
			slog.String("section", section.String()),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to execute section update transaction")
	}

	return nil
}

// GetByEmail returns the sanitized profile for a subject that already proved
// its identity at the token layer.
func (srv *profileService) GetByEmail(ctx context.Context, email string) (*usecase.ProfileOutput, error) {
	srv.log(ctx).Debug("Getting profile", slog.String("email", email))

	profile, err := srv.profileRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	profile.Sanitize()

	return usecase.NewProfileOutput(profile), nil
}
