package response_models

// TokenPairResponse mirrors the wire names clients expect: a short-lived
// access token and its single-use refresh companion.
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
