package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"strconv"
	"strings"
)

const (
	maxLimit     = 100
	maxBodyBytes = 1 << 20
)

// queryInt reads a non-negative integer query value, returning def when absent.
func queryInt(r *nethttp.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return n, nil
}

// queryLimit is queryInt capped at maxLimit.
func queryLimit(r *nethttp.Request, def int) (int, error) {
	n, err := queryInt(r, "limit", def)
	if err != nil {
		return 0, err
	}
	return min(n, maxLimit), nil
}

// pathID reads a positive integer path wildcard.
func pathID(r *nethttp.Request, name string) (int, error) {
	n, err := strconv.Atoi(r.PathValue(name))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return n, nil
}

// decodeBody reads a bounded JSON request body into dest.
func decodeBody(w nethttp.ResponseWriter, r *nethttp.Request, dest any) error {
	body := nethttp.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dest); err != nil {
		var tooLarge *nethttp.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return errors.New("request body too large")
		case errors.Is(err, io.EOF):
			return errors.New("request body required")
		default:
			return errors.New("invalid JSON body")
		}
	}
	return nil
}
