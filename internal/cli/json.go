package cli

import (
	stderrors "errors"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/rileyhilliard/sysmon/internal/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Machine mode flag - when true, errors are written as JSON to stdout
var machineMode bool

// MachineMode returns true if machine-readable output is enabled
func MachineMode() bool {
	return machineMode
}

// JSONEnvelope wraps command output in a consistent structure for machine parsing.
// All JSON output should use this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
	Details    interface{} `json:"details,omitempty"`
}

// Error codes for machine-readable output.
const (
	ErrCodeConfigNotFound      = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid       = "CONFIG_INVALID"
	ErrCodeTerminalUnavailable = "TERMINAL_UNAVAILABLE"
	ErrCodeRenderFailed        = "RENDER_FAILED"
	ErrCodeInputFailed         = "INPUT_FAILED"
	ErrCodeMetricsUnavailable  = "METRICS_UNAVAILABLE"
	ErrCodeUnknown             = "UNKNOWN"
)

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	env := JSONEnvelope{
		Success: true,
		Data:    data,
	}
	return writeJSONEnvelope(w, env)
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	env := JSONEnvelope{
		Success: false,
		Error:   ErrorToJSON(err),
	}
	return writeJSONEnvelope(w, env)
}

// writeJSONEnvelope writes the envelope with consistent formatting.
func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts a Go error to a JSONError with appropriate code mapping.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	// Check if it's our structured error type
	var smErr *errors.Error
	if stderrors.As(err, &smErr) {
		jsonErr := &JSONError{
			Code:       mapErrorCode(smErr.Code, smErr.Message),
			Message:    smErr.Message,
			Suggestion: smErr.Suggestion,
		}
		if smErr.Cause != nil {
			jsonErr.Details = map[string]interface{}{
				"cause": smErr.Cause.Error(),
			}
		}
		return jsonErr
	}

	// Generic error
	return &JSONError{
		Code:    ErrCodeUnknown,
		Message: err.Error(),
	}
}

// mapErrorCode maps internal error codes to machine-readable codes.
func mapErrorCode(internalCode, message string) string {
	switch internalCode {
	case errors.ErrConfig:
		// Distinguish between not found and invalid
		msgLower := strings.ToLower(message)
		if strings.Contains(msgLower, "not found") || strings.Contains(msgLower, "couldn't find") {
			return ErrCodeConfigNotFound
		}
		return ErrCodeConfigInvalid
	case errors.ErrTerminal:
		return ErrCodeTerminalUnavailable
	case errors.ErrRender:
		return ErrCodeRenderFailed
	case errors.ErrInput:
		return ErrCodeInputFailed
	case errors.ErrProvider:
		return ErrCodeMetricsUnavailable
	}

	return ErrCodeUnknown
}
