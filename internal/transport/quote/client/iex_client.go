package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	RouteQuote   = "/stable/stock/%s/quote"
	RouteSymbols = "/stable/ref-data/iex/symbols"
)

const defaultHTTPTimeout = 10 * time.Second

type QuoteResponse struct {
	Symbol      *string             `json:"symbol"`
	CompanyName *string             `json:"companyName"`
	LatestPrice decimal.NullDecimal `json:"latestPrice"`
}

// validate проверяет наличие обязательных полей. Провайдер иногда отдает null вместо цены
// (например, для делистингованных бумаг), такой ответ считается ошибочным, как и цена <= 0.
func (r *QuoteResponse) validate() error {
	if r.Symbol == nil || *r.Symbol == "" {
		return errors.Wrap(ErrMissingFields, "symbol")
	}
	if r.CompanyName == nil {
		return errors.Wrap(ErrMissingFields, "companyName")
	}
	if !r.LatestPrice.Valid {
		return errors.Wrap(ErrMissingFields, "latestPrice")
	}
	if !r.LatestPrice.Decimal.IsPositive() {
		return errors.Wrapf(ErrMissingFields, "latestPrice %s", r.LatestPrice.Decimal)
	}
	return nil
}

type SymbolResponse struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// HTTPClient клиент IEX Cloud совместимого API котировок.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL, token string) HTTPClient {
	return HTTPClient{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
}

// GetQuote получает котировку по тикеру. При статусе ответа отличном от http.StatusOK возвращает
// StatusCodeError, при неполном ответе - ошибку ErrMissingFields.
func (c HTTPClient) GetQuote(ctx context.Context, symbol string) (*QuoteResponse, error) {
	route := fmt.Sprintf(RouteQuote, url.PathEscape(symbol))

	var response QuoteResponse
	if err := c.get(ctx, route, &response); err != nil {
		return nil, errors.Wrapf(err, "get quote `%s`", symbol)
	}
	if err := response.validate(); err != nil {
		return nil, errors.Wrapf(err, "get quote `%s`", symbol)
	}
	return &response, nil
}

// GetSymbols получает полный справочник торгуемых тикеров.
func (c HTTPClient) GetSymbols(ctx context.Context) ([]SymbolResponse, error) {
	var response []SymbolResponse
	if err := c.get(ctx, RouteSymbols, &response); err != nil {
		return nil, errors.Wrap(err, "get symbols")
	}
	return response, nil
}

//nolint:nonamedreturns
func (c HTTPClient) get(ctx context.Context, route string, dst any) (err error) {
	u := c.baseURL + route + "?token=" + url.QueryEscape(c.token)

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if reqErr != nil {
		return errors.Wrap(reqErr, "create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return errors.Wrap(doErr, "do request")
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return NewStatusCodeError(resp.StatusCode)
	}

	if jsonErr := json.NewDecoder(resp.Body).Decode(dst); jsonErr != nil {
		return errors.Wrap(jsonErr, "parse response")
	}
	return nil
}
