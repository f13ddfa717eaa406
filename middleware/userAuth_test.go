package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trimmr/models"
	"trimmr/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	tokenHashes map[string]string
}

func (s *stubUserRepo) Create(ctx context.Context, user models.User) (string, error) {
	return user.ID, nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return nil, nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}

func (s *stubUserRepo) UpdateTokenHash(ctx context.Context, id, tokenHash string) error {
	s.tokenHashes[id] = tokenHash
	return nil
}

func (s *stubUserRepo) GetTokenHash(ctx context.Context, id string) (string, error) {
	return s.tokenHashes[id], nil
}

func newAuthRouter(t *testing.T, repo *stubUserRepo, optional bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	utils.AuthCacheClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	r := gin.New()
	r.GET("/whoami", JWTAuthUserMiddleware(repo, optional), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString("userID")})
	})
	return r
}

func issueTestToken(t *testing.T, repo *stubUserRepo, userID string) string {
	t.Helper()
	token, err := utils.GenerateToken(userID, userID+"@example.com", time.Hour)
	require.NoError(t, err)
	repo.tokenHashes[userID] = utils.HashToken(token)
	return token
}

func TestAuthRejectsMissingToken(t *testing.T) {
	repo := &stubUserRepo{tokenHashes: map[string]string{}}
	r := newAuthRouter(t, repo, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthAcceptsValidTokenViaDBFallback(t *testing.T) {
	repo := &stubUserRepo{tokenHashes: map[string]string{}}
	r := newAuthRouter(t, repo, false)
	token := issueTestToken(t, repo, "user-1")

	// Nothing in the cache, so validation falls back to the stored hash.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")

	// The cache is primed for the next request.
	hash, err := utils.AuthCacheClient.Get(context.Background(), utils.AuthCachePrefix+"user-1").Result()
	require.NoError(t, err)
	assert.Equal(t, utils.HashToken(token), hash)
}

func TestAuthRejectsRevokedToken(t *testing.T) {
	repo := &stubUserRepo{tokenHashes: map[string]string{}}
	r := newAuthRouter(t, repo, false)
	token := issueTestToken(t, repo, "user-1")
	repo.tokenHashes["user-1"] = ""

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuthPassesAnonymously(t *testing.T) {
	repo := &stubUserRepo{tokenHashes: map[string]string{}}
	r := newAuthRouter(t, repo, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":""`)
}
