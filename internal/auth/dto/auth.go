package dto

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleAuthRequest carries the provider profile the client obtained from
// the Google handshake. Only Email and ProviderAccountID are required;
// the rest seed the customer profile when one is created.
type GoogleAuthRequest struct {
	Email             string `json:"email"`
	Name              string `json:"name"`
	Picture           string `json:"picture"`
	GivenName         string `json:"given_name"`
	FamilyName        string `json:"family_name"`
	ProviderAccountID string `json:"providerAccountId"`
}

type GoogleTokenRequest struct {
	AccessToken       string `json:"access_token"`
	IDToken           string `json:"id_token"`
	ProviderAccountID string `json:"providerAccountId"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type RegisterResponse struct {
	OK bool `json:"ok"`
}
