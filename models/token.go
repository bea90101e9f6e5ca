package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set of every bearer token issued by the server.
//
// UserID is a pointer so that a token lacking the claim can be told apart
// from a token for user 0.
type TokenClaims struct {
	UserID   *int64 `json:"userId,omitempty"`
	Username string `json:"username,omitempty"`

	jwt.RegisteredClaims
}

// Token wraps a JWT with the identity extracted from it.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier taken from the "userId" claim.
	UserID int64 `json:"-"`

	// Username is taken from the "username" claim.
	Username string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
