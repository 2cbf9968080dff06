// Package types holds the request and response bodies of the job tracker API
package types

// Slug is a type for the slug field in the response
// It is mainly used for the client to understand the type of the response
type Slug string

// nolint:gochecknoglobals
const (
	SuccessSlug      Slug = "success"
	ErrorSlug        Slug = "error"
	InvalidInputSlug Slug = "invalid-input"
	NotFoundSlug     Slug = "not-found"
	UnauthorizedSlug Slug = "unauthorized"
	ServerErrorSlug  Slug = "server-error"
)

// SlugResponse is the response type for the API errors
type SlugResponse struct {
	Slug  Slug   `json:"slug"`
	Error string `json:"error"`
}

// ErrInvalidInput returns a SlugResponse with the InvalidInputSlug and the error message
func ErrInvalidInput(msg string) SlugResponse {
	return SlugResponse{
		Slug:  InvalidInputSlug,
		Error: msg,
	}
}

// ErrNotFound returns a SlugResponse with the NotFoundSlug and the error message
func ErrNotFound(msg string) SlugResponse {
	return SlugResponse{
		Slug:  NotFoundSlug,
		Error: msg,
	}
}

// ErrUnauthorized returns a SlugResponse with the UnauthorizedSlug and the error message
func ErrUnauthorized(msg string) SlugResponse {
	return SlugResponse{
		Slug:  UnauthorizedSlug,
		Error: msg,
	}
}

// ErrServer returns a SlugResponse with the ServerErrorSlug and the error message
func ErrServer(msg string) SlugResponse {
	return SlugResponse{
		Slug:  ServerErrorSlug,
		Error: msg,
	}
}

// ErrGeneric returns a SlugResponse with the ErrorSlug for errors with no dedicated slug
func ErrGeneric(msg string) SlugResponse {
	return SlugResponse{
		Slug:  ErrorSlug,
		Error: msg,
	}
}
