package domain

import "vacation-api/internal/core/apperror"

var (
	ErrEmptyReason       = apperror.New(apperror.KindInvalid, "Reason must not be empty.")
	ErrInvertedRange     = apperror.New(apperror.KindInvalid, `The "from" date must be earlier than the "to" date.`)
	ErrVacationTooLong   = apperror.New(apperror.KindInvalid, "Vacation duration cannot be more than 60 days.")
	ErrInvalidDate       = apperror.New(apperror.KindInvalid, "Invalid date format, expected YYYY-MM-DD.")
	ErrVacationNotFound  = apperror.New(apperror.KindNotFound, "Vacation not found or already decided.")
	ErrNotPending        = apperror.New(apperror.KindInvalidState, "Only pending vacations can be updated.")
	ErrDeleteNotPending  = apperror.New(apperror.KindInvalidState, "Only pending vacations can be deleted.")
	ErrNotVacationOwner  = apperror.New(apperror.KindForbidden, "You can only delete your own vacation requests.")
	ErrInvalidEmail      = apperror.New(apperror.KindInvalid, "Invalid email address.")
	ErrPasswordTooShort  = apperror.New(apperror.KindInvalid, "Password must be at least 8 characters if provided.")
	ErrEmptyName         = apperror.New(apperror.KindInvalid, "Name must not be empty.")
	ErrEmployeeCode      = apperror.New(apperror.KindInvalid, "Employee code must be a 7 digit number.")
	ErrInvalidRole       = apperror.New(apperror.KindInvalid, "Role must be one of manager, employee.")
	ErrDuplicateUser     = apperror.New(apperror.KindInvalid, "Email or employee code is already in use.")
	ErrUserNotFound      = apperror.New(apperror.KindNotFound, "User not found.")
	ErrSelfDeletion      = apperror.New(apperror.KindInvalid, "You cannot delete your own account")
	ErrInvalidCredential = apperror.New(apperror.KindUnauthenticated, "Invalid credentials")
)
