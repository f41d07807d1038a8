package cli

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/sysmon/internal/errors"
)

func TestMachineMode_DefaultValue(t *testing.T) {
	oldMode := machineMode
	defer func() { machineMode = oldMode }()

	machineMode = false
	assert.False(t, MachineMode())

	machineMode = true
	assert.True(t, MachineMode())
}

func TestWriteJSONSuccess_BasicData(t *testing.T) {
	var buf bytes.Buffer

	err := WriteJSONSuccess(&buf, map[string]string{"key": "value"})
	require.NoError(t, err)

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))

	assert.True(t, env.Success)
	assert.Nil(t, env.Error)

	dataMap, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "value", dataMap["key"])
}

func TestWriteJSONSuccess_ComplexData(t *testing.T) {
	var buf bytes.Buffer

	data := struct {
		Name  string   `json:"name"`
		Count int      `json:"count"`
		Items []string `json:"items"`
	}{
		Name:  "test",
		Count: 42,
		Items: []string{"a", "b", "c"},
	}

	require.NoError(t, WriteJSONSuccess(&buf, data))

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))

	assert.True(t, env.Success)
	dataMap, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "test", dataMap["name"])
	assert.Equal(t, float64(42), dataMap["count"])
}

func TestWriteJSONSuccess_NilData(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteJSONSuccess(&buf, nil))

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))

	assert.True(t, env.Success)
	assert.Nil(t, env.Data)
	assert.Nil(t, env.Error)
}

func TestWriteJSONFromError_NilError(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteJSONFromError(&buf, nil))

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))

	assert.False(t, env.Success)
	assert.Nil(t, env.Error)
}

func TestWriteJSONFromError_GenericError(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteJSONFromError(&buf, fmt.Errorf("something went wrong")))

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))

	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeUnknown, env.Error.Code)
	assert.Equal(t, "something went wrong", env.Error.Message)
}

func TestWriteJSONFromError_StructuredError(t *testing.T) {
	var buf bytes.Buffer

	smErr := errors.New(errors.ErrConfig, "Config file not found: /tmp/x.yaml", "Check the path passed to --config")
	require.NoError(t, WriteJSONFromError(&buf, smErr))

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))

	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeConfigNotFound, env.Error.Code)
	assert.Equal(t, "Config file not found: /tmp/x.yaml", env.Error.Message)
	assert.Equal(t, "Check the path passed to --config", env.Error.Suggestion)
}

func TestWriteJSONFromError_WrappedStructuredError(t *testing.T) {
	var buf bytes.Buffer

	inner := errors.New(errors.ErrProvider, "Couldn't read system metrics", "")
	wrapped := fmt.Errorf("snapshot: %w", inner)
	require.NoError(t, WriteJSONFromError(&buf, wrapped))

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))

	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeMetricsUnavailable, env.Error.Code)
}

func TestErrorToJSON_NilReturnsNil(t *testing.T) {
	assert.Nil(t, ErrorToJSON(nil))
}

func TestErrorToJSON_CauseInDetails(t *testing.T) {
	err := errors.WrapWithCode(fmt.Errorf("inappropriate ioctl for device"), errors.ErrTerminal, "Couldn't enter raw mode", "")
	result := ErrorToJSON(err)

	require.NotNil(t, result)
	assert.Equal(t, ErrCodeTerminalUnavailable, result.Code)
	details, ok := result.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "inappropriate ioctl for device", details["cause"])
}

func TestErrorToJSON_AllInternalErrorCodes(t *testing.T) {
	tests := []struct {
		name         string
		internalCode string
		message      string
		wantCode     string
	}{
		{"config not found", errors.ErrConfig, "Config file not found", ErrCodeConfigNotFound},
		{"config couldn't find", errors.ErrConfig, "Couldn't find config file", ErrCodeConfigNotFound},
		{"config invalid", errors.ErrConfig, "Interval 5ms is too short", ErrCodeConfigInvalid},
		{"terminal", errors.ErrTerminal, "Not a terminal", ErrCodeTerminalUnavailable},
		{"render", errors.ErrRender, "Couldn't draw the dashboard", ErrCodeRenderFailed},
		{"input", errors.ErrInput, "Couldn't read keyboard input", ErrCodeInputFailed},
		{"provider", errors.ErrProvider, "Couldn't read system metrics", ErrCodeMetricsUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ErrorToJSON(errors.New(tt.internalCode, tt.message, "some suggestion"))

			require.NotNil(t, result)
			assert.Equal(t, tt.wantCode, result.Code)
			assert.Equal(t, tt.message, result.Message)
			assert.Equal(t, "some suggestion", result.Suggestion)
		})
	}
}

func TestMapErrorCode_UnknownCode(t *testing.T) {
	assert.Equal(t, ErrCodeUnknown, mapErrorCode("UNKNOWN_INTERNAL_CODE", "Some message"))
}

func TestJSONEnvelope_Structure(t *testing.T) {
	data, err := json.Marshal(JSONEnvelope{Success: true, Data: "test"})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"success":true`)
	assert.Contains(t, string(data), `"data":"test"`)
	assert.NotContains(t, string(data), `"error"`)
}

func TestJSONError_OmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(JSONError{Code: "TEST", Message: "Test"})
	require.NoError(t, err)

	assert.NotContains(t, string(data), `"suggestion"`)
	assert.NotContains(t, string(data), `"details"`)
}

func TestWriteJSONEnvelope_Formatting(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteJSONSuccess(&buf, map[string]string{"test": "value"}))

	output := buf.String()
	assert.Contains(t, output, "\n  ")
	assert.True(t, output[len(output)-1] == '\n')
}

func TestErrorCodes_AreUnique(t *testing.T) {
	codes := []string{
		ErrCodeConfigNotFound,
		ErrCodeConfigInvalid,
		ErrCodeTerminalUnavailable,
		ErrCodeRenderFailed,
		ErrCodeInputFailed,
		ErrCodeMetricsUnavailable,
		ErrCodeUnknown,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.False(t, seen[code], "duplicate error code: %s", code)
		seen[code] = true
		assert.Regexp(t, `^[A-Z_]+$`, code)
	}
}
