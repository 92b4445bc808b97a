// Package testutil provides shared helpers for handler and service tests:
// a configurable mock of the DeGiro client and HTTP request builders.
package testutil

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/degiro-dashboard/backend/internal/degiro"
)

// MockDegiroClient is a mock implementation of degiro.Client for testing.
// It returns predefined results instead of making actual API calls.
type MockDegiroClient struct {
	// LoginResult is returned from Login and VerifyTOTP.
	LoginResult degiro.LoginResult
	// Profile is returned from GetClientProfile.
	Profile degiro.ClientProfile
	// Portfolio is returned from GetPortfolio.
	Portfolio json.RawMessage
	// Products is returned from GetProducts.
	Products degiro.ProductMap
	// Dividends is returned from GetDividends.
	Dividends []json.RawMessage
	// Transactions is returned from GetTransactions.
	Transactions []json.RawMessage
	// Err, when set, is returned from every method.
	Err error

	// Calls tracks how many client calls were made.
	Calls int
	// LastFromDate and LastToDate capture the range GetTransactions received.
	LastFromDate string
	LastToDate   string
	// LastProductIDs captures the id list GetProducts received.
	LastProductIDs []string
}

// NewMockDegiroClient creates a mock with a small but realistic default
// dataset: one session, one account, two positions.
func NewMockDegiroClient() *MockDegiroClient {
	return &MockDegiroClient{
		LoginResult: degiro.LoginResult{
			Outcome:   degiro.OutcomeSuccess,
			SessionID: "mock-session",
			Status:    degiro.StatusSuccess,
		},
		Profile: degiro.ClientProfile{
			IntAccount: 123,
			UserID:     42,
			Username:   "alice",
			FirstName:  "Alice",
			LastName:   "Jensen",
			Email:      "alice@example.com",
		},
		Portfolio: json.RawMessage(`{"portfolio":{"value":[{"id":"331868"},{"id":"1153605"}]}}`),
		Products: degiro.ProductMap{
			"331868":  json.RawMessage(`{"id":"331868","name":"ACME ETF"}`),
			"1153605": json.RawMessage(`{"id":"1153605","name":"Globex Corp"}`),
		},
		Dividends:    []json.RawMessage{json.RawMessage(`{"product":"ACME ETF","amount":1.5}`)},
		Transactions: []json.RawMessage{json.RawMessage(`{"id":1,"productId":331868}`)},
	}
}

// WithError configures the mock to return the specified error from every call.
func (m *MockDegiroClient) WithError(err error) *MockDegiroClient {
	m.Err = err
	return m
}

// WithLoginResult configures the result returned from Login and VerifyTOTP.
func (m *MockDegiroClient) WithLoginResult(result degiro.LoginResult) *MockDegiroClient {
	m.LoginResult = result
	return m
}

func (m *MockDegiroClient) Login(_ context.Context, _, _ string) (degiro.LoginResult, error) {
	m.Calls++
	if m.Err != nil {
		return degiro.LoginResult{}, m.Err
	}
	return m.LoginResult, nil
}

func (m *MockDegiroClient) VerifyTOTP(_ context.Context, _, _, _ string) (degiro.LoginResult, error) {
	m.Calls++
	if m.Err != nil {
		return degiro.LoginResult{}, m.Err
	}
	return m.LoginResult, nil
}

func (m *MockDegiroClient) GetClientProfile(_ context.Context, _ string) (degiro.ClientProfile, error) {
	m.Calls++
	if m.Err != nil {
		return degiro.ClientProfile{}, m.Err
	}
	return m.Profile, nil
}

func (m *MockDegiroClient) GetPortfolio(_ context.Context, _ string, _ int) (json.RawMessage, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Portfolio, nil
}

func (m *MockDegiroClient) GetProducts(_ context.Context, _ string, _ int, productIDs []string) (degiro.ProductMap, error) {
	m.Calls++
	m.LastProductIDs = productIDs
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Products, nil
}

func (m *MockDegiroClient) GetDividends(_ context.Context, _ string, _ int) ([]json.RawMessage, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Dividends, nil
}

func (m *MockDegiroClient) GetTransactions(_ context.Context, _ string, _ int, fromDate, toDate string) ([]json.RawMessage, error) {
	m.Calls++
	m.LastFromDate = fromDate
	m.LastToDate = toDate
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Transactions, nil
}

// MakeProductIDs generates n sequential product ids ("1".."n") for batch
// scenarios.
func MakeProductIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("%d", i+1)
	}
	return ids
}
