package usecases

// UseCaseError carries the HTTP status a handler should answer with.
type UseCaseError struct {
	Code    int
	Message string
}

func (e *UseCaseError) Error() string {
	return e.Message
}
