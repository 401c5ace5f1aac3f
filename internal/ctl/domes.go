package ctl

import (
	"fmt"
	"net/url"
	"strings"
)

// DOMES resolves an IERS site number like "10002M006" and prints its
// fields.
func DOMES(baseURL, id string, jsonOutput bool) error {
	baseURL = strings.TrimRight(baseURL, "/")

	var resp struct {
		DOMES      string `json:"domes"`
		Area       int    `json:"area"`
		Site       int    `json:"site"`
		Point      string `json:"point"`
		Sequential int    `json:"sequential"`
	}
	if err := getJSON(baseURL, "/api/domes?id="+url.QueryEscape(id), &resp); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Println()
	fmt.Printf("  %-12s %s\n", colorize(dim, "DOMES:"), colorize(bold, resp.DOMES))
	fmt.Printf("  %-12s %d\n", colorize(dim, "Area:"), resp.Area)
	fmt.Printf("  %-12s %d\n", colorize(dim, "Site:"), resp.Site)
	fmt.Printf("  %-12s %s\n", colorize(dim, "Point:"), resp.Point)
	fmt.Printf("  %-12s %d\n", colorize(dim, "Sequential:"), resp.Sequential)
	fmt.Println()

	return nil
}
