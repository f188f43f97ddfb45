package players

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Stewinjo/AnyLetters/internal/db"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	conn, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, db.Migrate(conn, db.Migrations()))
	return NewStore(conn).WithCost(bcrypt.MinCost)
}

func TestCreateAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	p, err := s.Create(ctx, "  Ada_L ", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "Ada_L", p.Name)
	assert.NotEmpty(t, p.ID)
	assert.NotEqual(t, "correct horse", p.PasswordHash)

	got, err := s.Authenticate(ctx, "ada_l", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = s.Authenticate(ctx, "ada_l", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Authenticate(ctx, "nobody", "whatever1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Create(ctx, "ADA_L", "another pass")
	assert.ErrorIs(t, err, ErrNameTaken)

	byID, err := s.ByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Name, byID.Name)
	_, err = s.ByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPasswordlessPlayerCannotLogIn(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.Create(ctx, "guest_1", "")
	require.NoError(t, err)
	_, err = s.Authenticate(ctx, "guest_1", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name, pw string
		want     error
	}{
		{"abc", "", nil},
		{"okay_42", "longenough", nil},
		{"ab", "", ErrInvalidName},
		{"this_name_is_way_too_long_x", "", ErrInvalidName},
		{"bad name", "", ErrInvalidName},
		{"jürgen", "", ErrInvalidName},
		{"fine", "short", ErrInvalidPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.name, tt.pw)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestIssuerRoundTrip(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)
	p := &Player{ID: "01ABC", Name: "ada"}

	tok, exp, err := iss.Sign(p)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := iss.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "01ABC", claims.Subject)
	assert.Equal(t, "ada", claims.Name)

	_, err = NewIssuer("other", time.Hour).Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = iss.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuerExpiry(t *testing.T) {
	iss := NewIssuer("secret", time.Minute)
	tok, _, err := iss.Sign(&Player{ID: "x", Name: "ada"})
	require.NoError(t, err)

	iss.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = iss.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBearerOrCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, BearerOrCookie(r, "tok"))

	r.AddCookie(&http.Cookie{Name: "tok", Value: "from-cookie"})
	assert.Equal(t, "from-cookie", BearerOrCookie(r, "tok"))
	assert.Empty(t, BearerOrCookie(r, ""))

	r.Header.Set("Authorization", "Bearer  from-header ")
	assert.Equal(t, "from-header", BearerOrCookie(r, "tok"))
}
