package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// handleResponse applies the shared success, not-found and error rules.
func handleResponse(req request, resp *http.Response, out any) (bool, error) {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return false, &Error{Op: req.op, StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode), Message: "read response: " + err.Error(), Err: err}
		}
		if out == nil || len(bytes.TrimSpace(data)) == 0 {
			return true, nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return false, &Error{
				Op:         req.op,
				StatusCode: resp.StatusCode,
				Status:     http.StatusText(resp.StatusCode),
				Message:    fmt.Sprintf("invalid JSON response: %v", err),
				Err:        err,
			}
		}
		return true, nil
	}

	if resp.StatusCode == http.StatusNotFound && req.absentOn404 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, errorBodyLimit))
		return false, nil
	}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	return false, statusError(req.op, resp.StatusCode, errorMessage(resp.StatusCode, data))
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type detailItem struct {
	Msg string `json:"msg"`
}

// errorMessage extracts a readable message from an error body. detail may be
// a string or a list of {msg} objects; anything else falls back to the raw
// text, then to the status line.
func errorMessage(status int, data []byte) string {
	raw := strings.TrimSpace(string(data))

	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil && len(body.Detail) > 0 {
		if msg := detailMessage(body.Detail); msg != "" {
			return msg
		}
	}
	if raw != "" {
		return raw
	}
	return fmt.Sprintf("API error: %d %s", status, http.StatusText(status))
}

func detailMessage(detail json.RawMessage) string {
	var text string
	if err := json.Unmarshal(detail, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var items []detailItem
	if err := json.Unmarshal(detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if msg := strings.TrimSpace(item.Msg); msg != "" {
				msgs = append(msgs, msg)
			}
		}
		return strings.Join(msgs, "; ")
	}

	var single detailItem
	if err := json.Unmarshal(detail, &single); err == nil {
		return strings.TrimSpace(single.Msg)
	}
	return ""
}
