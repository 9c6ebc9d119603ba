package apperror

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrNoData        = Error("no records found")
	ErrAlreadySolved = Error("item already solved")
)
