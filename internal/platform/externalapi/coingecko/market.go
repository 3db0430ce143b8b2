package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"crypto_backend/internal/feature/crypto/domain/entity"
	"crypto_backend/internal/feature/crypto/usecase"
	"crypto_backend/internal/platform/externalapi/coingecko/dto"
)

const (
	// apiKeyParam はデモAPIキーを渡すクエリパラメータ名です。
	apiKeyParam = "x_cg_demo_api_key"
	// maxBodyBytes はレスポンスボディの読み取り上限です。
	maxBodyBytes = 8 << 20
	// maxErrorBodyBytes はエラーレスポンスから診断文を取り出す際の読み取り上限です。
	maxErrorBodyBytes = 4 << 10
)

// CoinGeckoMarket はCoinGecko外部APIからコインの市場データを取得するCoinMarket実装です。
type CoinGeckoMarket struct {
	cfg      Config
	client   *http.Client
	validate *validator.Validate
}

// CoinGeckoMarketがCoinMarketを実装していることをコンパイル時に検証します。
var _ usecase.CoinMarket = (*CoinGeckoMarket)(nil)

// NewCoinGeckoMarket は指定された設定とHTTPクライアントでCoinGeckoMarketの新しいインスタンスを生成します。
func NewCoinGeckoMarket(cfg Config, client *http.Client) *CoinGeckoMarket {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	v := validator.New()
	// エラーメッセージ上のフィールド名をJSONキーで表示する
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &CoinGeckoMarket{cfg: cfg, client: client, validate: v}
}

// GetCoin はCoinGecko APIからコイン詳細を1回だけ取得し、entity.CoinSnapshotとして返します。
// 失敗時のエラーは必ずusecase.ErrTransport、ErrUpstreamStatus、ErrSchemaのいずれかをラップします。
func (m *CoinGeckoMarket) GetCoin(ctx context.Context, id string) (entity.CoinSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.coinURL(id), nil)
	if err != nil {
		return entity.CoinSnapshot{}, fmt.Errorf("%w: %w", usecase.ErrTransport, err)
	}

	res, err := m.client.Do(req)
	if err != nil {
		return entity.CoinSnapshot{}, fmt.Errorf("%w: %w", usecase.ErrTransport, redactKey(err, m.cfg.APIKey))
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return entity.CoinSnapshot{}, statusError(res)
	}

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return entity.CoinSnapshot{}, fmt.Errorf("%w: read body: %w", usecase.ErrTransport, err)
	}

	body, err := m.decode(raw)
	if err != nil {
		return entity.CoinSnapshot{}, err
	}

	return toEntity(id, body), nil
}

// coinURL はコイン詳細エンドポイントのURLを生成します。
// APIキーが未設定の場合は認証なしでリクエストします。
func (m *CoinGeckoMarket) coinURL(id string) string {
	u := fmt.Sprintf("%s/coins/%s", m.cfg.BaseURL, url.PathEscape(id))
	if m.cfg.APIKey == "" {
		return u
	}
	q := url.Values{}
	q.Set(apiKeyParam, m.cfg.APIKey)
	return u + "?" + q.Encode()
}

// decode はJSONをDTOにデコードし、必須フィールドの有無を検証します。
func (m *CoinGeckoMarket) decode(raw []byte) (*dto.CoinDetailResponse, error) {
	var body dto.CoinDetailResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("%w: %w", usecase.ErrSchema, err)
	}

	if err := m.validate.Struct(&body); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, fmt.Errorf("%w: %w", usecase.ErrSchema, err)
		}
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fieldPath(fe))
		}
		return nil, fmt.Errorf("%w: missing field %s", usecase.ErrSchema, strings.Join(fields, ", "))
	}
	return &body, nil
}

// statusError は2xx以外のレスポンスをErrUpstreamStatusに変換します。
// 404はErrCoinNotFoundも併せてラップします。
func statusError(res *http.Response) error {
	msg := fmt.Sprintf("coingecko http %d", res.StatusCode)

	// エラーボディから診断文を取り出す（ベストエフォート）
	var eb dto.ErrorResponse
	if raw, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBodyBytes)); err == nil {
		if json.Unmarshal(raw, &eb) == nil && eb.Message() != "" {
			msg += ": " + eb.Message()
		}
	}

	if res.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w: %s", usecase.ErrUpstreamStatus, usecase.ErrCoinNotFound, msg)
	}
	return fmt.Errorf("%w: %s", usecase.ErrUpstreamStatus, msg)
}

// fieldPath は "CoinDetailResponse.market_data.ath.usd" から型名を除いたパスを返します。
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return path
}

// redactKey removes the API key from transport errors, which embed the request URL.
func redactKey(err error, key string) error {
	if key == "" || !strings.Contains(err.Error(), key) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), key, "REDACTED"))
}

// toEntity は検証済みのDTOをドメインエンティティに変換します。
func toEntity(id string, body *dto.CoinDetailResponse) entity.CoinSnapshot {
	md := body.MarketData

	// nameが欠落またはnullの場合はリクエストされたIDを使う
	name := id
	if body.Name != nil {
		name = *body.Name
	}

	return entity.CoinSnapshot{
		Name:                     name,
		Symbol:                   strings.ToUpper(*body.Symbol),
		CurrentPrice:             *md.CurrentPrice.USD,
		MarketCap:                *md.MarketCap.USD,
		High24h:                  *md.High24h.USD,
		Low24h:                   *md.Low24h.USD,
		PriceChangePercentage24h: *md.PriceChangePercentage24h,
		Volume:                   *md.TotalVolume.USD,
		ATH:                      *md.ATH.USD,
		ATHDate:                  *md.ATHDate.USD,
		ATL:                      *md.ATL.USD,
		ATLDate:                  *md.ATLDate.USD,
		CirculatingSupply:        *md.CirculatingSupply,
		MaxSupply:                md.MaxSupply,
		LastUpdated:              *body.LastUpdated,
	}
}
