package models

// Default envelope messages, one per verb family.
const (
	MsgDataGot     = "Data got correctly"
	MsgDataCreated = "Data created correctly"
	MsgDataUpdated = "Data updated correctly"
	MsgDataDeleted = "Data deleted correctly"
)

// Response is the uniform envelope wrapped around every successful payload.
type Response[T any] struct {
	Message string         `json:"message"`
	Meta    map[string]any `json:"meta"`
	Data    T              `json:"data"`
}

// WithMessage returns a copy of r carrying msg.
func (r Response[T]) WithMessage(msg string) Response[T] {
	r.Message = msg
	return r
}

func newResponse[T any](data T, msg string) Response[T] {
	return Response[T]{
		Message: msg,
		Meta:    map[string]any{},
		Data:    data,
	}
}

// GetResponse wraps the result of a read.
func GetResponse[T any](data T) Response[T] { return newResponse(data, MsgDataGot) }

// PostResponse wraps the result of a creation.
func PostResponse[T any](data T) Response[T] { return newResponse(data, MsgDataCreated) }

// PutResponse wraps the result of an update.
func PutResponse[T any](data T) Response[T] { return newResponse(data, MsgDataUpdated) }

// DeleteResponse wraps the result of a deletion.
func DeleteResponse[T any](data T) Response[T] { return newResponse(data, MsgDataDeleted) }

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
