package model

type SignInState string

const (
	SignInIdle                  SignInState = "idle"
	SignInAwaitingAuthorization SignInState = "awaiting_authorization"
	SignInExchangingCode        SignInState = "exchanging_code"
	SignInSignedIn              SignInState = "signed_in"
	SignInFailed                SignInState = "failed"
)

// SignInStatus is the current state of a sign-in flow. Message is set only in SignInFailed.
type SignInStatus struct {
	State   SignInState `json:"state"`
	Message string      `json:"message,omitempty"`
}
