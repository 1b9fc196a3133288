package dto

// AuthURLResponse carries the provider consent URL for the frontend to
// navigate to; the server never redirects.
type AuthURLResponse struct {
	AuthorizationURL string `json:"authorization_url"`
}

// GoogleCallbackRequest is the body posted by the frontend after Google
// redirects back with an authorization code.
type GoogleCallbackRequest struct {
	Code  string `json:"code"`
	State string `json:"state"`
}
