package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"crypto_backend/internal/feature/crypto/domain/entity"
)

// CoinMarket は外部の市場データAPIを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CoinMarket interface {
	// GetCoin fetches the current snapshot of a single coin by its upstream id.
	GetCoin(ctx context.Context, id string) (entity.CoinSnapshot, error)
}

// cryptoUsecase は暗号資産データ取得のユースケースです。
type cryptoUsecase struct {
	market CoinMarket
}

// NewCryptoUsecase はcryptoUsecaseの新しいインスタンスを生成します。
func NewCryptoUsecase(market CoinMarket) *cryptoUsecase {
	return &cryptoUsecase{market: market}
}

// FetchCoin は指定されたコインIDの最新スナップショットを取得します。
// IDは検証や正規化をせずそのまま上流に渡します。
func (cu *cryptoUsecase) FetchCoin(ctx context.Context, id string) (entity.CoinSnapshot, error) {
	snap, err := cu.market.GetCoin(ctx, id)
	if err != nil {
		// 種別を持たないエラーは到達不能として扱う
		if ErrorKind(err) == nil {
			err = fmt.Errorf("%w: %w", ErrTransport, err)
		}
		return entity.CoinSnapshot{}, err
	}

	slog.Debug("coin fetched", "id", id, "symbol", snap.Symbol)
	return snap, nil
}
