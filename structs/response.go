package structs

type ErrorResponse struct {
	StatusCode int          `json:"statusCode"`
	Message    string       `json:"message"`
	Errors     []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
}
