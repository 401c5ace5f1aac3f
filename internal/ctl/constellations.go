package ctl

import (
	"fmt"
	"net/url"
	"strings"
)

// constellationInfo mirrors the JSON projection the API uses for a
// single constellation.
type constellationInfo struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Letter    string `json:"letter"`
	TimeScale string `json:"timescale"`
	SBAS      bool   `json:"sbas"`
	Country   string `json:"country"`
}

// Constellations lists the full constellation registry.
func Constellations(baseURL string, jsonOutput bool) error {
	baseURL = strings.TrimRight(baseURL, "/")

	var out []constellationInfo
	if err := getJSON(baseURL, "/api/constellations", &out); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(out)
	}

	fmt.Println()
	fmt.Println(header("  CONSTELLATION REGISTRY"))

	t := newTable("  ", "Code", "Name", "Letter", "Timescale", "Country", "SBAS")
	for _, c := range out {
		sbas := ""
		if c.SBAS {
			sbas = "yes"
		}
		t.row(c.Code, c.Name, c.Letter, c.TimeScale, c.Country, sbas)
	}
	t.flush()
	fmt.Println()

	return nil
}

// Constellation resolves a constellation name or alias and prints the
// canonical record.
func Constellation(baseURL, name string, jsonOutput bool) error {
	baseURL = strings.TrimRight(baseURL, "/")

	var c constellationInfo
	if err := getJSON(baseURL, "/api/constellation?name="+url.QueryEscape(name), &c); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(c)
	}

	fmt.Println()
	fmt.Printf("  %-12s %s\n", colorize(dim, "Code:"), colorize(bold, c.Code))
	fmt.Printf("  %-12s %s\n", colorize(dim, "Name:"), c.Name)
	fmt.Printf("  %-12s %s\n", colorize(dim, "Letter:"), c.Letter)
	fmt.Printf("  %-12s %s\n", colorize(dim, "Timescale:"), c.TimeScale)
	if c.Country != "" {
		fmt.Printf("  %-12s %s\n", colorize(dim, "Country:"), c.Country)
	}
	if c.SBAS {
		fmt.Printf("  %-12s %s\n", colorize(dim, "Kind:"), "augmentation service")
	}
	fmt.Println()

	return nil
}
