package services

import "errors"

// Kind classifies a domain failure so the request layer can pick a status
// code by tag instead of matching message text.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindDuplicate
	KindCredentials // invalid login or wrong current password
	KindUnauthorized
)

// DomainError carries a failure kind plus a client-safe message
type DomainError struct {
	Kind    Kind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func notFound(message string) error {
	return &DomainError{Kind: KindNotFound, Message: message}
}

func duplicate(message string) error {
	return &DomainError{Kind: KindDuplicate, Message: message}
}

func credentials(message string) error {
	return &DomainError{Kind: KindCredentials, Message: message}
}

func unauthorized(message string) error {
	return &DomainError{Kind: KindUnauthorized, Message: message}
}

// KindOf extracts the failure kind from an error chain. Anything that is not
// a DomainError counts as internal.
func KindOf(err error) Kind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
