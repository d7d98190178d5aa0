package service

// Response is the uniform envelope every service operation returns.
// StatusCode is 200 exactly when the operation succeeded and Data is
// populated; any other code signals failure and Message explains it.
// Service methods never return an error to the caller: failures of any
// kind are flattened into the envelope at the method boundary, so a bad
// request and a store outage differ only in Message. The HTTP layer does
// not derive its transport status from StatusCode.
type Response[T any] struct {
	StatusCode int    `json:"status_code"`
	Data       T      `json:"data"`
	Message    string `json:"message"`
}

func ok[T any](data T, message string) Response[T] {
	return Response[T]{StatusCode: 200, Data: data, Message: message}
}

func fail[T any](code int, message string) Response[T] {
	var zero T
	return Response[T]{StatusCode: code, Data: zero, Message: message}
}

func failErr[T any](err error) Response[T] {
	return fail[T](400, err.Error())
}

const (
	msgSuccess       = "success"
	msgFilterSuccess = "filter success"
	msgInvalidInput  = "invalid request data"
	msgNotFound      = "record not found"
)
