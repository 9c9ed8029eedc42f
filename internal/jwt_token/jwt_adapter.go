package jwttoken

// SessionValidator adapts JWTService to the session middleware, which only
// needs the user id behind a cookie value.
type SessionValidator struct {
	service *JWTService
}

func NewSessionValidator(service *JWTService) *SessionValidator {
	return &SessionValidator{service: service}
}

func (a *SessionValidator) ValidateSession(token string) (int64, error) {
	claims, err := a.service.ValidateToken(token)
	if err != nil {
		return 0, err
	}
	return claims.ID, nil
}
