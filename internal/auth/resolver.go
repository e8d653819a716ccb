package auth

// Resolver turns a presented access token into a Principal. It never touches
// the database; loading the user is the caller's job.
type Resolver struct {
	signer *Signer
}

func NewResolver(signer *Signer) *Resolver {
	return &Resolver{signer: signer}
}

// Resolve returns a KindInvalidToken error for bad signatures, foreign
// algorithms, expired or malformed tokens, and refresh tokens.
func (r *Resolver) Resolve(token string) (Principal, error) {
	return r.signer.Parse(token, TokenTypeAccess)
}
