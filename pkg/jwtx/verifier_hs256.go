package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// HS256Verifier validates session tokens signed by an HS256Signer.
type HS256Verifier struct {
	secret []byte
}

func NewVerifierHS256(secret []byte) *HS256Verifier {
	return &HS256Verifier{secret: secret}
}

// Verify checks signature, expiry and that the "type" claim is typ.
func (v *HS256Verifier) Verify(tokenStr, typ string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	var claims Claims
	token, err := parser.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}
	if !token.Valid {
		return Claims{}, ErrInvalidClaim
	}

	if claims.Subject == "" {
		return Claims{}, errors.Join(ErrInvalidClaim, errors.New("jwtx: missing sub"))
	}
	if err := claims.ValidateType(typ); err != nil {
		return Claims{}, err
	}

	return claims, nil
}
