package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	RegionNotFoundCode     = 1001
	RegionNotFoundMessage  = "region not found"
	RunNotFoundCode        = 1002
	RunNotFoundMessage     = "run not found"
	InvalidRunIDCode       = 1003
	InvalidRunIDMessage    = "invalid run id"
	ArchiveDisabledCode    = 1004
	ArchiveDisabledMessage = "results archive disabled"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
}

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	errorStruct := &ErrorStruct{
		ErrorCode:    UnknownErrorCode,
		ErrorMessage: UnknownErrorMessage,
	}

	switch code {
	case RegionNotFoundCode:
		errorStruct.ErrorCode = RegionNotFoundCode
		errorStruct.ErrorMessage = RegionNotFoundMessage
	case RunNotFoundCode:
		errorStruct.ErrorCode = RunNotFoundCode
		errorStruct.ErrorMessage = RunNotFoundMessage
	case InvalidRunIDCode:
		errorStruct.ErrorCode = InvalidRunIDCode
		errorStruct.ErrorMessage = InvalidRunIDMessage
	case ArchiveDisabledCode:
		errorStruct.ErrorCode = ArchiveDisabledCode
		errorStruct.ErrorMessage = ArchiveDisabledMessage
	}

	return errorStruct
}
