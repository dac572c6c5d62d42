package response

// Response is the standard JSON envelope
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorData  `json:"error,omitempty"`
}

// ErrorData carries error details in a response
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// OK builds a success response with data
func OK(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// Err builds a failure response
func Err(code, message, details string) Response {
	return Response{
		Success: false,
		Error: &ErrorData{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// BadRequest builds a 400 response body
func BadRequest(message string) Response {
	return Err("BAD_REQUEST", message, "")
}

// NotFound builds a 404 response body
func NotFound(message string) Response {
	return Err("NOT_FOUND", message, "")
}

// Unauthorized builds a 401 response body
func Unauthorized(message string) Response {
	return Err("UNAUTHORIZED", message, "")
}

// Forbidden builds a 403 response body
func Forbidden(message string) Response {
	return Err("FORBIDDEN", message, "")
}

// Conflict builds a 409 response body
func Conflict(message string) Response {
	return Err("CONFLICT", message, "")
}

// InternalError builds a 500 response body
func InternalError(message string) Response {
	return Err("INTERNAL_ERROR", "Internal Server Error", message)
}
