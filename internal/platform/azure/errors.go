package azure

import (
	"errors"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// ErrRoleNotFound is returned when no role definition matches the requested name.
var ErrRoleNotFound = errors.New("role definition not found")

// IsNotFound checks if an error indicates a resource was not found.
func IsNotFound(err error) bool {
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound
}

// AllNotFound reports whether err, and every error joined into it, is a
// not-found response. A joined error with one other failure is not.
func AllNotFound(err error) bool {
	if err == nil {
		return false
	}
	switch e := err.(type) {
	case *azcore.ResponseError:
		return e.StatusCode == http.StatusNotFound
	case interface{ Unwrap() []error }:
		errs := e.Unwrap()
		for _, inner := range errs {
			if !AllNotFound(inner) {
				return false
			}
		}
		return len(errs) > 0
	case interface{ Unwrap() error }:
		return AllNotFound(e.Unwrap())
	}
	return false
}
