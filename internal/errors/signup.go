package errors

var (
	ErrUserNotFound = &DomainError{
		Code:    "USER_NOT_FOUND",
		Message: "user not found",
	}
	ErrAlreadyVerified = &DomainError{
		Code:    "ALREADY_VERIFIED",
		Message: "phone already verified",
	}
	ErrPhoneNotVerified = &DomainError{
		Code:    "PHONE_NOT_VERIFIED",
		Message: "phone number not verified",
	}
	ErrTooManyAttempts = &DomainError{
		Code:    "TOO_MANY_ATTEMPTS",
		Message: "too many attempts, please request a new code",
	}
	ErrInvalidCode = &DomainError{
		Code:    "INVALID_CODE",
		Message: "invalid verification code",
	}
	ErrCodeExpired = &DomainError{
		Code:    "CODE_EXPIRED",
		Message: "verification code expired",
	}
	ErrDispatchFailed = &DomainError{
		Code:    "SMS_DISPATCH_FAILED",
		Message: "failed to send verification code",
	}
	ErrPhoneExists = &DomainError{
		Code:    "PHONE_EXISTS",
		Message: "phone number already exists",
	}
	ErrUsernameExists = &DomainError{
		Code:    "USERNAME_TAKEN",
		Message: "username already exists",
	}
)
