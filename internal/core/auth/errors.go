package auth

import "vacation-api/internal/core/apperror"

var (
	ErrMissingCredential = apperror.New(apperror.KindUnauthenticated, "Missing or invalid Authorization header")
	ErrInvalidCredential = apperror.New(apperror.KindUnauthenticated, "Invalid or expired token")
	ErrInvalidPayload    = apperror.New(apperror.KindUnauthenticated, "Invalid token payload")
	ErrForbidden         = apperror.New(apperror.KindForbidden, "Forbidden")
)
