package degiro

import "encoding/json"

// LoginOutcome tags the three possible results of a login or TOTP call.
// Call sites switch on it so every outcome is handled explicitly.
type LoginOutcome int

const (
	// OutcomeSuccess means DeGiro issued a usable session.
	OutcomeSuccess LoginOutcome = iota
	// OutcomeTOTPRequired means DeGiro demands a one-time password before
	// issuing a session. No session is available yet.
	OutcomeTOTPRequired
	// OutcomeRejected means DeGiro refused the credentials or the one-time
	// password. Status and StatusText carry the broker's reason.
	OutcomeRejected
)

// Login status codes surfaced to callers. StatusAuthFailed is the one callers
// act on ("invalid credentials"); any other rejection keeps the broker's own
// status text.
const (
	StatusSuccess    = "SUCCESS"
	StatusAuthFailed = "AUTH_FAILED"
)

// LoginResult is the tagged outcome of Login or VerifyTOTP.
// Exactly one variant is populated per call:
//   - OutcomeSuccess:      SessionID set, Status = StatusSuccess
//   - OutcomeTOTPRequired: nothing else set
//   - OutcomeRejected:     Status and StatusText set, no SessionID
type LoginResult struct {
	Outcome    LoginOutcome
	SessionID  string
	Status     string
	StatusText string
}

// loginRequest is the JSON body DeGiro expects on its login endpoints.
// The two boolean flags are required by the API and always false here.
type loginRequest struct {
	Username           string `json:"username"`
	Password           string `json:"password"`
	OneTimePassword    string `json:"oneTimePassword,omitempty"`
	IsPassCodeReset    bool   `json:"isPassCodeReset"`
	IsRedirectToMobile bool   `json:"isRedirectToMobile"`
}

// loginResponse is DeGiro's login response. Status 3 / "badCredentials" is a
// credential rejection; status 6 / "totpNeeded" asks for a second factor.
type loginResponse struct {
	SessionID  string `json:"sessionId"`
	Status     int    `json:"status"`
	StatusText string `json:"statusText"`
}

// ClientProfile is the account metadata resolved from a session. IntAccount
// is the numeric account identifier every data fetch requires.
type ClientProfile struct {
	IntAccount int    `json:"intAccount"`
	UserID     int    `json:"id"`
	Username   string `json:"username"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Email      string `json:"email,omitempty"`
}

// clientResponse wraps the profile the way DeGiro returns it. Names live in a
// nested firstContact object.
type clientResponse struct {
	Data struct {
		ID           int    `json:"id"`
		IntAccount   int    `json:"intAccount"`
		Username     string `json:"username"`
		Email        string `json:"email"`
		FirstContact struct {
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
		} `json:"firstContact"`
	} `json:"data"`
}

// ProductMap maps a product id to its broker-defined metadata, kept raw and
// passed through to the caller untouched.
type ProductMap map[string]json.RawMessage

// productsResponse wraps a product-info batch the way DeGiro returns it.
type productsResponse struct {
	Data ProductMap `json:"data"`
}

// reportingResponse wraps the dividend and transaction lists. Entries are
// broker-defined and passed through verbatim.
type reportingResponse struct {
	Data []json.RawMessage `json:"data"`
}
