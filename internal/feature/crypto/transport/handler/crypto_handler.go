// Package handler はcryptoフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"crypto_backend/internal/feature/crypto/domain/entity"
	"crypto_backend/internal/feature/crypto/transport/http/dto"
	"crypto_backend/internal/feature/crypto/usecase"
	"crypto_backend/internal/platform/http/middleware"
)

const (
	// WelcomeMessage は GET / が返す固定文字列です。
	WelcomeMessage = "Welcome to the Crypto API! 🚀 Try /crypto/bitcoin"
	// errorPrefix はエラーレスポンスの診断文の前置きです。
	errorPrefix = "Error fetching data: "
)

// CryptoUsecase はコインデータ取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CryptoUsecase interface {
	FetchCoin(ctx context.Context, id string) (entity.CoinSnapshot, error)
}

// CryptoHandler はコインデータのHTTPリクエストを処理します。
type CryptoHandler struct {
	uc     CryptoUsecase
	strict bool
}

// NewCryptoHandler は指定されたusecaseでCryptoHandlerの新しいインスタンスを生成します。
// strictがfalseの場合、失敗時も常に200を返します。
func NewCryptoHandler(uc CryptoUsecase, strict bool) *CryptoHandler {
	return &CryptoHandler{uc: uc, strict: strict}
}

// Home は案内用の固定テキストを返します。上流の状態には依存しません。
//
// エンドポイント例:
// GET /
func Home(c *gin.Context) {
	c.String(http.StatusOK, WelcomeMessage)
}

// GetCoin はコインIDを受け取り、スナップショットまたはエラーをJSONで返します。
//
// エンドポイント例:
// GET /crypto/bitcoin
func (h *CryptoHandler) GetCoin(c *gin.Context) {
	coin := c.Param("coin")

	snap, err := h.uc.FetchCoin(c.Request.Context(), coin)
	if err != nil {
		slog.Warn("coin fetch failed",
			"coin", coin,
			"kind", kindName(err),
			"error", err,
			"request_id", middleware.GetRequestID(c),
		)
		_ = c.Error(err)
		c.JSON(h.errorStatus(err), dto.ErrorResponse{Error: errorPrefix + err.Error()})
		return
	}

	c.JSON(http.StatusOK, toResponse(snap))
}

// errorStatus はエラー種別をHTTPステータスに変換します。
func (h *CryptoHandler) errorStatus(err error) int {
	if !h.strict {
		return http.StatusOK
	}
	switch {
	case errors.Is(err, usecase.ErrCoinNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrSchema):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

func kindName(err error) string {
	if kind := usecase.ErrorKind(err); kind != nil {
		return kind.Error()
	}
	return "unknown"
}

func toResponse(s entity.CoinSnapshot) dto.CoinResponse {
	return dto.CoinResponse{
		Name:                     s.Name,
		Symbol:                   s.Symbol,
		CurrentPrice:             s.CurrentPrice,
		MarketCap:                s.MarketCap,
		High24h:                  s.High24h,
		Low24h:                   s.Low24h,
		PriceChangePercentage24h: s.PriceChangePercentage24h,
		Volume:                   s.Volume,
		ATH:                      s.ATH,
		ATHDate:                  s.ATHDate,
		ATL:                      s.ATL,
		ATLDate:                  s.ATLDate,
		CirculatingSupply:        s.CirculatingSupply,
		MaxSupply:                s.MaxSupply,
		LastUpdated:              s.LastUpdated,
	}
}
