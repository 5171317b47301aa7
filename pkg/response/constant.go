package response

const (
	// MessageSuccess is the message of successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internals on 500s.
	DefaultErrorMessage = "Something went wrong"

	BadRequestErrorCode     = 1
	InternalServerErrorCode = 500
)
