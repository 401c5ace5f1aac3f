package ctl

import (
	"fmt"
	"strings"
)

// Version prints the daemon's build information.
func Version(baseURL string, jsonOutput bool) error {
	baseURL = strings.TrimRight(baseURL, "/")

	var v struct {
		Version   string `json:"version"`
		GoVersion string `json:"go_version"`
		BuiltAt   string `json:"built_at"`
	}
	if err := getJSON(baseURL, "/api/version", &v); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(v)
	}

	fmt.Printf("  gnssd %s (%s, built %s)\n", v.Version, v.GoVersion, v.BuiltAt)
	return nil
}
