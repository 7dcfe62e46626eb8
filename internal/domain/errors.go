package domain

import "errors"

// Sentinel errors shared across layers. The repository layer translates
// datastore failures into these; handlers map them onto HTTP statuses.
var (
	// ErrNotFound marks a row that does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate marks a unique-constraint violation.
	ErrDuplicate = errors.New("duplicate record")

	// ErrEmailRequired is returned when a user is created without an email.
	ErrEmailRequired = errors.New("the email must be set")

	// ErrPasswordRequired is returned when a user is created without a password.
	ErrPasswordRequired = errors.New("the password must be set")

	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("a user with this email already exists")

	// ErrSuperuserStaffFlag rejects a superuser created with is_staff=false.
	ErrSuperuserStaffFlag = errors.New("superuser must have is_staff=true")

	// ErrSuperuserFlag rejects a superuser created with is_superuser=false.
	ErrSuperuserFlag = errors.New("superuser must have is_superuser=true")

	// ErrInvalidCredentials is returned when email/password verification fails.
	ErrInvalidCredentials = errors.New("unable to log in with provided credentials")
)
