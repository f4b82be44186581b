package domain

// ProviderLink records a federated-identity grant from Google. Email is
// the lookup key for the initial handshake; ProviderAccountID is the
// lookup key for the token-exchange flow. Links are created once per
// email and are immutable afterwards.
type ProviderLink struct {
	ID                string `bson:"_id,omitempty" json:"_id"`
	Email             string `bson:"email" json:"email"`
	Name              string `bson:"name" json:"name"`
	Picture           string `bson:"picture" json:"picture"`
	GivenName         string `bson:"given_name" json:"given_name"`
	FamilyName        string `bson:"family_name" json:"family_name"`
	ProviderAccountID string `bson:"providerAccountId" json:"providerAccountId"`
}
