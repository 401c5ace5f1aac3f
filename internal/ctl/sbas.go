package ctl

import (
	"fmt"
	"strconv"
	"strings"
)

// SBASOptions carries the query position for the sbas command.
type SBASOptions struct {
	Lat float64
	Lon float64
}

// SBAS asks the daemon which augmentation service covers a position.
func SBAS(baseURL string, opts SBASOptions, jsonOutput bool) error {
	baseURL = strings.TrimRight(baseURL, "/")

	path := "/api/sbas?lat=" + strconv.FormatFloat(opts.Lat, 'f', -1, 64) +
		"&lon=" + strconv.FormatFloat(opts.Lon, 'f', -1, 64)

	var resp struct {
		Covered bool               `json:"covered"`
		Service *constellationInfo `json:"service"`
	}
	if err := getJSON(baseURL, path, &resp); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Println()
	fmt.Printf("  %-10s %.5f, %.5f\n", colorize(dim, "Position:"), opts.Lat, opts.Lon)
	if resp.Covered && resp.Service != nil {
		fmt.Printf("  %-10s %s\n", colorize(dim, "Service:"), colorize(green, resp.Service.Name))
		fmt.Printf("  %-10s %s\n", colorize(dim, "Timescale:"), resp.Service.TimeScale)
	} else {
		fmt.Printf("  %-10s %s\n", colorize(dim, "Service:"), colorize(yellow, "none"))
	}
	fmt.Println()

	return nil
}
