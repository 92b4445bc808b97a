// Package request defines the JSON request bodies accepted by the API.
package request

// LoginRequest is the request body for authenticating against DeGiro.
// A populated OneTimePassword continues a login that was answered with
// TOTP_REQUIRED; the same username and password must be resent with it.
type LoginRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	OneTimePassword string `json:"oneTimePassword,omitempty"`
}

// ProductsRequest is the request body for resolving product metadata.
// ProductIDs holds broker product ids as strings; large lists are batched
// transparently downstream.
type ProductsRequest struct {
	SessionID  string   `json:"sessionId"`
	IntAccount int      `json:"intAccount"`
	ProductIDs []string `json:"productIds"`
}
