package ctl

import (
	"fmt"
	"net/url"
	"strings"
)

// SV resolves a space vehicle identifier like "G01" or "S23" and prints
// the normalized record.
func SV(baseURL, id string, jsonOutput bool) error {
	baseURL = strings.TrimRight(baseURL, "/")

	var resp struct {
		SV            string            `json:"sv"`
		Constellation constellationInfo `json:"constellation"`
		PRN           int               `json:"prn"`
		TimeScale     string            `json:"timescale"`
		Designation   string            `json:"designation"`
		BeiDouGEO     bool              `json:"beidou_geo"`
		Launched      string            `json:"launched"`
	}
	if err := getJSON(baseURL, "/api/sv?id="+url.QueryEscape(id), &resp); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Println()
	fmt.Printf("  %-14s %s\n", colorize(dim, "Vehicle:"), colorize(bold, resp.SV))
	fmt.Printf("  %-14s %s\n", colorize(dim, "Constellation:"), resp.Constellation.Name)
	fmt.Printf("  %-14s %d\n", colorize(dim, "PRN:"), resp.PRN)
	fmt.Printf("  %-14s %s\n", colorize(dim, "Timescale:"), resp.TimeScale)
	if resp.Designation != resp.SV {
		fmt.Printf("  %-14s %s\n", colorize(dim, "Designation:"), resp.Designation)
	}
	if resp.Launched != "" {
		fmt.Printf("  %-14s %s\n", colorize(dim, "Launched:"), resp.Launched)
	}
	if resp.BeiDouGEO {
		fmt.Printf("  %-14s %s\n", colorize(dim, "Orbit:"), "geostationary")
	}
	fmt.Println()

	return nil
}
