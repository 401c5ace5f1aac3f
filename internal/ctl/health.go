package ctl

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Health checks the daemon's health endpoint and reports the result.
// Returns an error (for a non-zero exit) when the daemon is unreachable
// or unhealthy.
func Health(baseURL string, jsonOutput bool) error {
	baseURL = strings.TrimRight(baseURL, "/")

	status, body, err := getRaw(baseURL, "/healthz")
	if err != nil {
		if jsonOutput {
			_ = printJSON(map[string]string{"status": "unreachable", "error": err.Error()})
		} else {
			fmt.Printf("  %s %s\n", colorize(red, "unreachable"), colorize(dim, err.Error()))
		}
		return err
	}

	if jsonOutput {
		var v map[string]any
		if err := json.Unmarshal(body, &v); err != nil {
			return err
		}
		return printJSON(v)
	}

	if status != http.StatusOK {
		fmt.Printf("  %s HTTP %d\n", colorize(red, "unhealthy"), status)
		return fmt.Errorf("health check failed with HTTP %d", status)
	}

	var v struct {
		Status string `json:"status"`
		State  string `json:"state"`
	}
	if err := json.Unmarshal(body, &v); err != nil {
		return err
	}

	fmt.Printf("  %s  state %s\n",
		colorize(green, "healthy"),
		colorize(stateColor(v.State), v.State),
	)
	return nil
}
