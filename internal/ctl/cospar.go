package ctl

import (
	"fmt"
	"net/url"
	"strings"
)

// COSPAR resolves a launch designator like "2014-011B" against the
// vehicle catalog and prints the result.
func COSPAR(baseURL, id string, jsonOutput bool) error {
	baseURL = strings.TrimRight(baseURL, "/")

	var resp struct {
		COSPAR      string `json:"cospar"`
		Year        int    `json:"year"`
		Launch      int    `json:"launch"`
		Code        string `json:"code"`
		Label       string `json:"label"`
		Description string `json:"description"`
	}
	if err := getJSON(baseURL, "/api/cospar?id="+url.QueryEscape(id), &resp); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Println()
	fmt.Printf("  %-12s %s\n", colorize(dim, "Designator:"), colorize(bold, resp.COSPAR))
	fmt.Printf("  %-12s %d\n", colorize(dim, "Year:"), resp.Year)
	fmt.Printf("  %-12s %d\n", colorize(dim, "Launch:"), resp.Launch)
	fmt.Printf("  %-12s %s\n", colorize(dim, "Piece:"), resp.Code)
	if resp.Label != "" {
		fmt.Printf("  %-12s %s\n", colorize(dim, "Vehicle:"), resp.Label)
	} else {
		fmt.Printf("  %-12s %s\n", colorize(dim, "Vehicle:"), colorize(dim, "(unresolved)"))
	}
	fmt.Println()

	return nil
}
