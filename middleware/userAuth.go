package middleware

import (
	"context"
	"net/http"
	"strings"

	userRepo "trimmr/database/repository/user"
	"trimmr/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthUserMiddleware validates the bearer token, checking the token hash
// against the Redis auth cache first and falling back to the users collection
// on a miss. The authenticated user ID is placed in the request context. When
// optional is true an absent or invalid token leaves the request anonymous
// instead of rejecting it.
func JWTAuthUserMiddleware(repo userRepo.UserRepository, optional ...bool) gin.HandlerFunc {
	lenient := len(optional) > 0 && optional[0]
	reject := func(c *gin.Context) {
		if lenient {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "Insufficient authorization",
		})
	}

	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()

		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			reject(c)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			reject(c)
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			reject(c)
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID

		authCache := utils.GetAuthCacheClient()
		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		if err == nil {
			if cachedHash != computedHash {
				reject(c)
				return
			}
			_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
			c.Set("userID", userID)
			c.Next()
			return
		}

		// Cache miss: verify against the stored hash and re-prime the cache.
		storedHash, err := repo.GetTokenHash(ctx, userID)
		if err != nil || storedHash == "" || storedHash != computedHash {
			reject(c)
			return
		}
		_ = authCache.Set(ctx, cacheKey, storedHash, utils.AuthCacheTTL).Err()
		c.Set("userID", userID)
		c.Next()
	}
}
