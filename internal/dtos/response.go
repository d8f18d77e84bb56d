package dtos

// Response is the envelope every endpoint returns. Count is only set on
// list responses.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

func OK(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

func OKList(message string, data any, count int) Response {
	return Response{Success: true, Message: message, Data: data, Count: &count}
}

func Fail(message, errDetail string) Response {
	return Response{Success: false, Message: message, Error: errDetail}
}
