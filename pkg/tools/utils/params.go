package utils

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/rusty-server/pkg/tools"
)

// GetStringParam safely extracts a string parameter from the request
func GetStringParam(req mcp.CallToolRequest, key string, required bool) (string, error) {
	val, exists := req.GetArguments()[key]
	if !exists || val == nil {
		if required {
			return "", missing(key)
		}
		return "", nil
	}

	str, ok := val.(string)
	if !ok {
		return "", tools.InvalidParams(fmt.Sprintf("parameter '%s' must be a string", key))
	}

	return str, nil
}

// GetRequiredStringParam is a shorthand for GetStringParam with required=true
func GetRequiredStringParam(req mcp.CallToolRequest, key string) (string, error) {
	return GetStringParam(req, key, true)
}

// GetFloat64Param safely extracts a float64 parameter from the request.
// Integer values are accepted, since decoders other than encoding/json may produce them.
func GetFloat64Param(req mcp.CallToolRequest, key string, required bool) (float64, error) {
	val, exists := req.GetArguments()[key]
	if !exists || val == nil {
		if required {
			return 0, missing(key)
		}
		return 0, nil
	}

	switch n := val.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}

	return 0, tools.InvalidParams(fmt.Sprintf("parameter '%s' must be a number", key))
}

// GetRequiredFloat64Param is a shorthand for GetFloat64Param with required=true
func GetRequiredFloat64Param(req mcp.CallToolRequest, key string) (float64, error) {
	return GetFloat64Param(req, key, true)
}

func missing(key string) error {
	return tools.InvalidParams(fmt.Sprintf("missing required parameter: '%s'", key))
}
