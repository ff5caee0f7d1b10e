package store

import "errors"

// Sentinel errors returned by repositories. Services and handlers match
// against them with [errors.Is] to map storage failures to domain and HTTP
// errors.
var (
	// ErrLoginAlreadyExists is returned when a user registration hits the
	// unique constraint on the login column.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a user lookup matches no rows.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSupplyNotFound is returned when a supply does not exist or belongs
	// to a different user.
	ErrSupplyNotFound = errors.New("supply not found")

	// ErrProjectNotFound is returned when a project does not exist or
	// belongs to a different user.
	ErrProjectNotFound = errors.New("project not found")

	// ErrMaterialNotFound is returned when a project material does not
	// exist within the given project.
	ErrMaterialNotFound = errors.New("project material not found")

	// ErrProductNotFound is returned when a barcode is absent from the
	// catalog.
	ErrProductNotFound = errors.New("catalog product not found")

	// ErrSessionNotFound is returned by the client session store when no
	// saved session exists.
	ErrSessionNotFound = errors.New("local session not found")
)
