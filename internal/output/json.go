package output

import (
	"encoding/json"
	"fmt"
	"io"
)

func encoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc
}

// JSON writes data as indented JSON to the given writer.
func JSON(w io.Writer, data interface{}) error {
	if err := encoder(w).Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ErrorResponse is the JSON envelope for structured error output.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Code    string         `json:"code"`
	Details map[string]any `json:"details,omitempty"`
}

// JSONError writes a structured error envelope. Best-effort: a failing
// writer at this point leaves nothing else to report to.
func JSONError(w io.Writer, code, msg string, details map[string]any) {
	_ = encoder(w).Encode(ErrorResponse{Error: msg, Code: code, Details: details})
}

// BatchResult is the per-ID outcome of a comma-separated batch command.
type BatchResult struct {
	ID    int    `json:"id"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
	Code  string `json:"code,omitempty"`
}
