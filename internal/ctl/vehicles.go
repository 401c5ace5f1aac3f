package ctl

import (
	"fmt"
	"strings"
)

// Vehicles lists the embedded SBAS vehicle catalog.
func Vehicles(baseURL string, jsonOutput bool) error {
	baseURL = strings.TrimRight(baseURL, "/")

	var out []struct {
		PRN           int    `json:"prn"`
		Name          string `json:"name"`
		Constellation string `json:"constellation"`
		COSPAR        string `json:"cospar"`
		Launched      string `json:"launched"`
	}
	if err := getJSON(baseURL, "/api/vehicles", &out); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(out)
	}

	fmt.Println()
	fmt.Println(header("  SBAS VEHICLE CATALOG"))

	t := newTable("  ", "PRN", "Name", "Service", "COSPAR", "Launched")
	for _, v := range out {
		t.row(fmt.Sprintf("%d", v.PRN), v.Name, v.Constellation, v.COSPAR, v.Launched)
	}
	t.flush()
	fmt.Println()

	return nil
}
