package utility

// AppError is a plain message error used for framing and protocol faults
// where no wrapped cause exists.
type AppError struct {
	message string
}

func (e *AppError) Error() string {
	return e.message
}

func Err(m string) error {
	return &AppError{message: m}
}
