package router

import (
	"log/slog"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"crypto_backend/internal/feature/crypto/transport/handler"
	"crypto_backend/internal/platform/http/middleware"
)

// NewRouter は全ルートとミドルウェアを登録したginエンジンを生成します。
// 登録するルートは GET / と GET /crypto/:coin のみで、それ以外はginのデフォルト404になります。
func NewRouter(crypto *handler.CryptoHandler, corsOrigins []string, logger *slog.Logger) *gin.Engine {
	r := gin.New()

	// パニックからの復旧、リクエストID、アクセスログ、CORS
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		cors.New(corsConfig(corsOrigins)),
	)

	// 案内テキスト
	r.GET("/", handler.Home)
	// コインのスナップショット
	r.GET("/crypto/:coin", crypto.GetCoin)

	return r
}

// corsConfig builds the CORS policy; an empty list or "*" allows every origin.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
