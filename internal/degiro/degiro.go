// Package degiro implements the DeGiro session handshake and the
// session-scoped data fetches the dashboard depends on. The client holds no
// state beyond its HTTP client and base URL: sessions are opaque tokens the
// caller carries across calls, so concurrent multi-user callers are safe.
package degiro

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/degiro-dashboard/backend/internal/apperrors"
)

// DefaultBaseURL is the production DeGiro trader endpoint.
const DefaultBaseURL = "https://trader.degiro.nl"

// ProductBatchSize is the fixed number of product ids per product-info
// request. Callers may rely on it when estimating round-trip counts.
const ProductBatchSize = 50

// Client defines the interface for authenticating against DeGiro and fetching
// session-scoped data. This interface enables dependency injection and testing
// with mock implementations.
type Client interface {
	Login(ctx context.Context, username, password string) (LoginResult, error)
	VerifyTOTP(ctx context.Context, username, password, oneTimePassword string) (LoginResult, error)
	GetClientProfile(ctx context.Context, sessionID string) (ClientProfile, error)
	GetPortfolio(ctx context.Context, sessionID string, intAccount int) (json.RawMessage, error)
	GetProducts(ctx context.Context, sessionID string, intAccount int, productIDs []string) (ProductMap, error)
	GetDividends(ctx context.Context, sessionID string, intAccount int) ([]json.RawMessage, error)
	GetTransactions(ctx context.Context, sessionID string, intAccount int, fromDate, toDate string) ([]json.RawMessage, error)
}

// TraderClient talks to the DeGiro trader API over HTTP.
type TraderClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewTraderClient creates a DeGiro client. An empty baseURL selects the
// production endpoint; tests point it at a stub server.
func NewTraderClient(baseURL string, timeout time.Duration) *TraderClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &TraderClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Login submits credentials to DeGiro. The three outcomes are returned as a
// tagged LoginResult; only transport-level failures (DNS, timeout, connection
// refused, broker 5xx) come back as an error, so callers can tell "invalid
// credentials" from "service unreachable".
func (c *TraderClient) Login(ctx context.Context, username, password string) (LoginResult, error) {
	return c.doLogin(ctx, loginRequest{
		Username: username,
		Password: password,
	}, "/login/secure/login")
}

// VerifyTOTP completes a login that demanded a second factor. An invalid code
// maps to a rejection, not a transport error.
func (c *TraderClient) VerifyTOTP(ctx context.Context, username, password, oneTimePassword string) (LoginResult, error) {
	return c.doLogin(ctx, loginRequest{
		Username:        username,
		Password:        password,
		OneTimePassword: oneTimePassword,
	}, "/login/secure/login/totp")
}

func (c *TraderClient) doLogin(ctx context.Context, body loginRequest, path string) (LoginResult, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return LoginResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return LoginResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return LoginResult{}, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return LoginResult{}, fmt.Errorf("%w: reading login response: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	var decoded loginResponse
	decodeErr := json.Unmarshal(raw, &decoded)

	// DeGiro signals the second factor in the body, not the status code.
	if decodeErr == nil && (decoded.StatusText == "totpNeeded" || decoded.Status == 6) {
		return LoginResult{Outcome: OutcomeTOTPRequired}, nil
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if decodeErr != nil || decoded.SessionID == "" {
			return LoginResult{}, fmt.Errorf("%w: login response carried no session: %s", apperrors.ErrUpstreamUnavailable, string(raw))
		}
		return LoginResult{
			Outcome:   OutcomeSuccess,
			SessionID: decoded.SessionID,
			Status:    StatusSuccess,
		}, nil

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		result := LoginResult{Outcome: OutcomeRejected, StatusText: decoded.StatusText}
		if decodeErr != nil {
			result.StatusText = strings.TrimSpace(string(raw))
		}
		// Status 3 / "badCredentials" covers both wrong passwords and wrong
		// one-time codes.
		if decoded.Status == 3 || decoded.StatusText == "badCredentials" ||
			resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			result.Status = StatusAuthFailed
		} else {
			result.Status = decoded.StatusText
		}
		return result, nil

	default:
		return LoginResult{}, fmt.Errorf("%w: login failed with status %d: %s", apperrors.ErrUpstreamUnavailable, resp.StatusCode, string(raw))
	}
}

// GetClientProfile resolves the account metadata tied to a session. It is a
// pure read and safe to repeat with the same session.
func (c *TraderClient) GetClientProfile(ctx context.Context, sessionID string) (ClientProfile, error) {
	endpoint := fmt.Sprintf("%s/pa/secure/client?sessionId=%s", c.baseURL, url.QueryEscape(sessionID))

	raw, err := c.get(ctx, endpoint)
	if err != nil {
		return ClientProfile{}, err
	}

	var decoded clientResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return ClientProfile{}, fmt.Errorf("decoding client profile: %w", err)
	}

	return ClientProfile{
		IntAccount: decoded.Data.IntAccount,
		UserID:     decoded.Data.ID,
		Username:   decoded.Data.Username,
		FirstName:  decoded.Data.FirstContact.FirstName,
		LastName:   decoded.Data.FirstContact.LastName,
		Email:      decoded.Data.Email,
	}, nil
}

// GetPortfolio fetches the current holdings snapshot. The broker-defined
// structure is returned verbatim; this layer does not interpret it.
func (c *TraderClient) GetPortfolio(ctx context.Context, sessionID string, intAccount int) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/trading/secure/v5/update/%d;jsessionid=%s?portfolio=0",
		c.baseURL, intAccount, url.PathEscape(sessionID))

	raw, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}

// GetProducts fetches metadata for a list of product ids, splitting the list
// into batches of ProductBatchSize and merging the results. A single failed
// batch fails the whole call.
func (c *TraderClient) GetProducts(ctx context.Context, sessionID string, intAccount int, productIDs []string) (ProductMap, error) {
	return batchFetch(ctx, productIDs, ProductBatchSize, func(ctx context.Context, batch []string) (ProductMap, error) {
		return c.fetchProductBatch(ctx, sessionID, intAccount, batch)
	})
}

func (c *TraderClient) fetchProductBatch(ctx context.Context, sessionID string, intAccount int, ids []string) (ProductMap, error) {
	endpoint := fmt.Sprintf("%s/product_search/secure/v5/products/info?intAccount=%d&sessionId=%s",
		c.baseURL, intAccount, url.QueryEscape(sessionID))

	payload, err := json.Marshal(ids)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	raw, err := c.do(req, false)
	if err != nil {
		return nil, err
	}

	var decoded productsResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decoding product info: %w", err)
	}
	return decoded.Data, nil
}

// GetDividends fetches the dividend history. The endpoint is known to go down
// outside market hours; that condition maps to ErrDividendsUnavailable so the
// service layer can soft-fail it instead of breaking a portfolio sync.
func (c *TraderClient) GetDividends(ctx context.Context, sessionID string, intAccount int) ([]json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/reporting/secure/v3/ca/%d?sessionId=%s",
		c.baseURL, intAccount, url.QueryEscape(sessionID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	raw, err := c.do(req, true)
	if err != nil {
		return nil, err
	}

	var decoded reportingResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decoding dividends: %w", err)
	}
	return decoded.Data, nil
}

// GetTransactions fetches the transaction history bounded by an inclusive
// DD/MM/YYYY date range. Defaulting of an absent range is service-layer
// policy, not done here.
func (c *TraderClient) GetTransactions(ctx context.Context, sessionID string, intAccount int, fromDate, toDate string) ([]json.RawMessage, error) {
	query := url.Values{}
	query.Set("fromDate", fromDate)
	query.Set("toDate", toDate)
	query.Set("groupTransactionsByOrder", "false")
	query.Set("intAccount", fmt.Sprintf("%d", intAccount))
	query.Set("sessionId", sessionID)

	endpoint := fmt.Sprintf("%s/reporting/secure/v4/transactions?%s", c.baseURL, query.Encode())

	raw, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var decoded reportingResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decoding transactions: %w", err)
	}
	return decoded.Data, nil
}

// get issues a GET request and classifies the response.
func (c *TraderClient) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, false)
}

// do executes a request and applies the shared status classification: 401/403
// is a dead session, any other non-2xx is a generic upstream failure with the
// raw body preserved. softMaintenance additionally maps a 503 or an
// unstructured maintenance page to ErrDividendsUnavailable; only the dividend
// endpoint opts in, a 503 anywhere else stays a generic upstream failure.
func (c *TraderClient) do(req *http.Request, softMaintenance bool) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrSessionExpired, resp.StatusCode)

	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		if softMaintenance && (resp.StatusCode == http.StatusServiceUnavailable ||
			strings.Contains(strings.ToLower(string(raw)), "maintenance")) {
			return nil, fmt.Errorf("%w: status %d: %s", apperrors.ErrDividendsUnavailable, resp.StatusCode, strings.TrimSpace(string(raw)))
		}
		return nil, fmt.Errorf("%w: status %d: %s", apperrors.ErrUpstreamUnavailable, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	return raw, nil
}

// IsSessionExpired reports whether err means the caller must re-authenticate.
func IsSessionExpired(err error) bool {
	return errors.Is(err, apperrors.ErrSessionExpired)
}
