package dto

// Response is the uniform wire envelope returned by every endpoint.
// Data is an empty list on failure and an object (or list of objects)
// on success; callers key off Message and Data emptiness, not the HTTP
// status code.
type Response struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
}

func Success(data any, message string) Response {
	return Response{Data: data, Message: message}
}

func Failure(message string) Response {
	return Response{Data: []any{}, Message: message}
}
