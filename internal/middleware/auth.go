package middleware

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"bloglist/internal/auth"
	"bloglist/internal/models"
	"bloglist/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// AccountLocal is the Fiber locals key under which the resolved
// account is stored for handlers.
const AccountLocal = "account"

const bearerPrefix = "Bearer "

// AuthPipeline resolves a request's bearer token to an account. It is
// an explicit ordered sequence of stages over a per-request state,
// short-circuiting on the first rejection:
//
//	extract -> decode -> claim shape -> resolve identity
//
// Routes that do not require identity skip the pipeline entirely.
type AuthPipeline struct {
	codec    *auth.TokenCodec
	accounts repository.AccountRepository
}

// NewAuthPipeline returns a pipeline using the given codec and account
// lookup.
func NewAuthPipeline(codec *auth.TokenCodec, accounts repository.AccountRepository) *AuthPipeline {
	return &AuthPipeline{codec: codec, accounts: accounts}
}

// pipelineState carries a request through the stages.
type pipelineState struct {
	header  string
	token   string
	claims  *auth.Claims
	account *models.Account
}

type stage func(ctx context.Context, st *pipelineState) *models.AppError

// Resolve runs the pipeline over the Authorization header value and
// returns the acting account, or the rejection that terminated it.
func (p *AuthPipeline) Resolve(ctx context.Context, authHeader string) (*models.Account, *models.AppError) {
	st := &pipelineState{header: authHeader}
	for _, run := range []stage{p.extract, p.decode, p.checkClaims, p.resolve} {
		if rejection := run(ctx, st); rejection != nil {
			return nil, rejection
		}
	}
	return st.account, nil
}

// extract strips the bearer scheme marker from the header. A missing
// or unprefixed header is rejected the same way a malformed token is;
// the two are deliberately not distinguished to the client.
func (p *AuthPipeline) extract(_ context.Context, st *pipelineState) *models.AppError {
	if !strings.HasPrefix(st.header, bearerPrefix) {
		return models.NewInvalidTokenError("token missing or invalid")
	}
	st.token = strings.TrimPrefix(st.header, bearerPrefix)
	return nil
}

// decode verifies the token. Every decode failure kind rejects as an
// invalid token.
func (p *AuthPipeline) decode(_ context.Context, st *pipelineState) *models.AppError {
	claims, err := p.codec.Decode(st.token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return models.NewInvalidTokenError("token expired")
		}
		return models.NewInvalidTokenError("token missing or invalid")
	}
	st.claims = claims
	return nil
}

// checkClaims requires a non-empty subject.
func (p *AuthPipeline) checkClaims(_ context.Context, st *pipelineState) *models.AppError {
	if st.claims.Subject == "" {
		return models.NewUnauthenticatedError("token invalid")
	}
	return nil
}

// resolve looks up the account named by the subject claim. A subject
// that does not parse and a subject that does not exist reject
// identically, so the response never leaks which one it was.
func (p *AuthPipeline) resolve(ctx context.Context, st *pipelineState) *models.AppError {
	id, err := strconv.ParseUint(st.claims.Subject, 10, 32)
	if err != nil {
		return models.NewUnauthenticatedError("token invalid")
	}

	account, err := p.accounts.GetByID(ctx, uint(id))
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Kind == models.KindNotFound {
			return models.NewUnauthenticatedError("token invalid")
		}
		return models.NewInternalError(err)
	}

	st.account = account
	return nil
}

// RequireIdentity is the Fiber adapter for the pipeline. On success the
// resolved account is attached to the request for the handler; the
// pipeline performs no further mutation.
func (p *AuthPipeline) RequireIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		account, rejection := p.Resolve(c.UserContext(), c.Get(fiber.HeaderAuthorization))
		if rejection != nil {
			return rejection
		}

		c.Locals(AccountLocal, account)
		c.SetUserContext(context.WithValue(c.UserContext(), AccountIDKey, account.ID))
		return c.Next()
	}
}

// AccountFromLocals returns the account resolved by RequireIdentity,
// or nil on routes that skipped the pipeline.
func AccountFromLocals(c *fiber.Ctx) *models.Account {
	account, _ := c.Locals(AccountLocal).(*models.Account)
	return account
}
