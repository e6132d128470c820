package services

// ServiceError is a user-facing service failure. The string is the only
// detail that ever reaches a client.
type ServiceError string

func (e ServiceError) Error() string { return string(e) }

const (
	ErrInvalidInput     ServiceError = "invalid input data"
	ErrProviderNotFound ServiceError = "provider not found"
	ErrPastDate         ServiceError = "past dates are not permitted"
	ErrSlotTaken        ServiceError = "appointment slot is not available"
	ErrSelfBooking      ServiceError = "cannot book an appointment with yourself"

	ErrAppointmentNotFound ServiceError = "appointment not found or not active"
	ErrNotOwner            ServiceError = "no permission to cancel this appointment"
	ErrCancelWindowExpired ServiceError = "appointments can only be canceled 2 hours in advance"

	ErrUserNotFound       ServiceError = "user not found"
	ErrEmailTaken         ServiceError = "email already in use"
	ErrPasswordTooShort   ServiceError = "password must be at least 6 characters"
	ErrPasswordMismatch   ServiceError = "current password does not match"
	ErrInvalidCredentials ServiceError = "invalid email or password"
	ErrNotProvider        ServiceError = "user is not a provider"

	ErrNotificationNotFound ServiceError = "notification not found"

	ErrInternal ServiceError = "internal error"
)
