package dto

const (
	statusSuccess = "success"
	statusError   = "error"
)

// GenericResponse is the wire envelope: {status, data, message}. Error
// envelopes carry an empty data object rather than null.
type GenericResponse struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

func NewSuccessResponse(data interface{}, message string) GenericResponse {
	return GenericResponse{
		Status:  statusSuccess,
		Data:    data,
		Message: message,
	}
}

func NewErrorResponse(message string) GenericResponse {
	return GenericResponse{
		Status:  statusError,
		Data:    struct{}{},
		Message: message,
	}
}

type TokenRequest struct {
	Username string `json:"username"`
}
