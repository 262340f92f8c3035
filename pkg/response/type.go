package response

// Resp is the JSON envelope every API route answers with. ErrorCode is 0 on
// success, 1 for a bad request, otherwise the HTTP status.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
