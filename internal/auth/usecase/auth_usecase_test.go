package usecase

import (
	"testing"
	"time"

	authdomain "calendar-backend/internal/auth/domain"
	authdto "calendar-backend/internal/auth/dto"
	"calendar-backend/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo is an in-memory UserRepository that records which lookup
// key the usecase dispatched to.
type fakeUserRepo struct {
	users      []*authdomain.User
	lastLookup string
}

func (r *fakeUserRepo) Create(user *authdomain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	r.lastLookup = "email"
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByName(name string) (*authdomain.User, error) {
	r.lastLookup = "name"
	for _, u := range r.users {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "test-secret",
		AccessTokenTTL: 30 * time.Minute,
	}
}

func newTestUsecase(t *testing.T) (AuthUsecase, *fakeUserRepo) {
	t.Helper()
	repo := &fakeUserRepo{}
	return NewAuthUsecase(repo, testConfig()), repo
}

func registerAlice(t *testing.T, uc AuthUsecase) *authdomain.User {
	t.Helper()
	user, err := uc.Register(&authdto.RegisterRequest{
		Name:     "alice",
		Email:    "alice@x.com",
		Password: "p1",
	})
	require.NoError(t, err)
	return user
}

func TestAuthenticate_ByEmail(t *testing.T) {
	uc, repo := newTestUsecase(t)
	want := registerAlice(t, uc)

	got, err := uc.Authenticate("alice@x.com", "p1")
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, "email", repo.lastLookup)
}

func TestAuthenticate_ByName(t *testing.T) {
	uc, repo := newTestUsecase(t)
	want := registerAlice(t, uc)

	got, err := uc.Authenticate("alice", "p1")
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, "name", repo.lastLookup)
}

func TestAuthenticate_IdentifierDispatch(t *testing.T) {
	tests := []struct {
		identifier string
		lookup     string
	}{
		{"a@b.com", "email"},
		{"alice", "name"},
		{"first.last+tag@sub.domain.org", "email"},
		{"not-an-email@", "name"},
		{"@x.com", "name"},
		{"user@nodot", "name"},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			uc, repo := newTestUsecase(t)
			_, _ = uc.Authenticate(tt.identifier, "pw")
			assert.Equal(t, tt.lookup, repo.lastLookup)
		})
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	uc, _ := newTestUsecase(t)
	registerAlice(t, uc)

	_, err := uc.Authenticate("alice@x.com", "wrong")
	assert.ErrorIs(t, err, authdomain.ErrInvalidCredentials)
}

func TestAuthenticate_UnknownIdentifier(t *testing.T) {
	uc, _ := newTestUsecase(t)
	registerAlice(t, uc)

	// Unknown identifier and wrong password are indistinguishable.
	_, errUnknown := uc.Authenticate("bob@x.com", "p1")
	_, errWrongPw := uc.Authenticate("alice@x.com", "nope")
	assert.ErrorIs(t, errUnknown, authdomain.ErrInvalidCredentials)
	assert.Equal(t, errWrongPw, errUnknown)
}

func TestLogin_ReturnsBearerToken(t *testing.T) {
	uc, _ := newTestUsecase(t)
	registerAlice(t, uc)

	tokens, err := uc.Login(&authdto.LoginRequest{Identifier: "alice@x.com", Password: "p1"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", tokens.TokenType)

	subject, err := uc.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", subject)
}

func TestTokenRoundTrip(t *testing.T) {
	uc, _ := newTestUsecase(t)

	tok, err := uc.IssueToken("alice@x.com")
	require.NoError(t, err)

	subject, err := uc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", subject)
}

func TestValidateToken_Expired(t *testing.T) {
	repo := &fakeUserRepo{}
	cfg := testConfig()
	cfg.AccessTokenTTL = -1 * time.Second
	uc := NewAuthUsecase(repo, cfg)

	tok, err := uc.IssueToken("alice@x.com")
	require.NoError(t, err)

	_, err = uc.ValidateToken(tok)
	assert.ErrorIs(t, err, authdomain.ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewAuthUsecase(repo, testConfig())

	otherCfg := testConfig()
	otherCfg.JWTSecret = "other-secret"
	other := NewAuthUsecase(repo, otherCfg)

	tok, err := other.IssueToken("alice@x.com")
	require.NoError(t, err)

	_, err = uc.ValidateToken(tok)
	assert.ErrorIs(t, err, authdomain.ErrInvalidToken)
}

func TestValidateToken_Tampered(t *testing.T) {
	uc, _ := newTestUsecase(t)

	tok, err := uc.IssueToken("alice@x.com")
	require.NoError(t, err)

	tampered := tok[:len(tok)-2] + "xx"
	_, err = uc.ValidateToken(tampered)
	assert.ErrorIs(t, err, authdomain.ErrInvalidToken)
}

func TestValidateToken_Malformed(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, authdomain.ErrInvalidToken)
}

func TestRegister_AssignsServerSideID(t *testing.T) {
	uc, _ := newTestUsecase(t)

	user := registerAlice(t, uc)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Name)
	assert.Equal(t, "alice@x.com", user.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _ := newTestUsecase(t)
	registerAlice(t, uc)

	_, err := uc.Register(&authdto.RegisterRequest{
		Name:     "alice2",
		Email:    "alice@x.com",
		Password: "p2",
	})
	assert.ErrorIs(t, err, authdomain.ErrEmailTaken)
}

func TestResolveUser(t *testing.T) {
	uc, _ := newTestUsecase(t)
	want := registerAlice(t, uc)

	got, err := uc.ResolveUser("alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
}

func TestResolveUser_Missing(t *testing.T) {
	uc, _ := newTestUsecase(t)

	// Valid token, account gone: distinct from an invalid token.
	_, err := uc.ResolveUser("ghost@x.com")
	assert.ErrorIs(t, err, authdomain.ErrUserNotFound)
	assert.NotErrorIs(t, err, authdomain.ErrInvalidToken)
}
