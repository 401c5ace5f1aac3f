package app

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/large-farva/gnss"
)

// routes builds the daemon's HTTP mux. Split out from Run so handler
// tests can exercise the API without a listener.
func (a *App) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", a.handleHealthz)
	mux.HandleFunc("/api/status", a.handleStatus)
	mux.HandleFunc("/api/version", a.handleVersion)
	mux.HandleFunc("/api/constellations", a.handleConstellations)
	mux.HandleFunc("/api/constellation", a.handleConstellation)
	mux.HandleFunc("/api/sv", a.handleSV)
	mux.HandleFunc("/api/cospar", a.handleCOSPAR)
	mux.HandleFunc("/api/domes", a.handleDOMES)
	mux.HandleFunc("/api/sbas", a.handleSBAS)
	mux.HandleFunc("/api/vehicles", a.handleVehicles)
	mux.Handle("/ws", a.hub.Handler())
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (a *App) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"state":  a.State(),
	})
}

func (a *App) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"state":          a.State(),
		"uptime_seconds": int64(time.Since(a.started).Seconds()),
		"lookups":        a.lookups.Load(),
		"ws_clients":     a.hub.Count(),
		"bind":           a.bind,
		"prn_width":      a.cfg.Format.PRNWidth,
	})
}

func (a *App) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"version":    Version,
		"go_version": GoVersion,
		"built_at":   BuiltAt,
	})
}

// constellationInfo is the JSON projection of a constellation tag.
type constellationInfo struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Letter    string `json:"letter"`
	TimeScale string `json:"timescale"`
	SBAS      bool   `json:"sbas"`
	Country   string `json:"country,omitempty"`
}

func describeConstellation(c gnss.Constellation) constellationInfo {
	info := constellationInfo{
		Code:      c.Code(),
		Name:      c.String(),
		Letter:    string(c.Letter()),
		TimeScale: c.TimeScale().String(),
		SBAS:      c.IsSBAS(),
	}
	if country, ok := c.CountryCode(); ok {
		info.Country = country
	}
	return info
}

func (a *App) handleConstellations(w http.ResponseWriter, r *http.Request) {
	out := make([]constellationInfo, 0, len(gnss.Constellations))
	for _, c := range gnss.Constellations {
		out = append(out, describeConstellation(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *App) handleConstellation(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		jsonError(w, "missing name parameter", http.StatusBadRequest)
		return
	}

	c, err := gnss.ParseConstellation(name)
	if err != nil {
		a.recordLookup("constellation", name, "", false)
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	a.recordLookup("constellation", name, c.Code(), true)
	writeJSON(w, http.StatusOK, describeConstellation(c))
}

func (a *App) handleSV(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		jsonError(w, "missing id parameter", http.StatusBadRequest)
		return
	}

	sv, err := gnss.ParseSV(id)
	if err != nil {
		a.recordLookup("sv", id, "", false)
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := map[string]any{
		"sv":            gnss.FormatSV(sv, a.cfg.Format.PRNWidth),
		"constellation": describeConstellation(sv.Constellation()),
		"prn":           sv.PRN(),
		"timescale":     sv.TimeScale().String(),
		"designation":   sv.Designation(),
		"beidou_geo":    sv.IsBeiDouGEO(),
	}
	if launched, ok := sv.LaunchDate(); ok {
		resp["launched"] = launched.Format("2006-01-02")
	}

	a.recordLookup("sv", id, sv.String(), true)
	writeJSON(w, http.StatusOK, resp)
}

func (a *App) handleCOSPAR(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		jsonError(w, "missing id parameter", http.StatusBadRequest)
		return
	}

	c, err := gnss.ParseCOSPAR(id)
	if err != nil {
		a.recordLookup("cospar", id, "", false)
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := map[string]any{
		"cospar":      c.String(),
		"year":        c.Year(),
		"launch":      c.Launch(),
		"code":        c.Code(),
		"description": c.Describe(),
	}
	if label, ok := c.Label(); ok {
		resp["label"] = label
	}

	a.recordLookup("cospar", id, c.Describe(), true)
	writeJSON(w, http.StatusOK, resp)
}

func (a *App) handleDOMES(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		jsonError(w, "missing id parameter", http.StatusBadRequest)
		return
	}

	d, err := gnss.ParseDOMES(id)
	if err != nil {
		a.recordLookup("domes", id, "", false)
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	a.recordLookup("domes", id, d.String(), true)
	writeJSON(w, http.StatusOK, map[string]any{
		"domes":      d.String(),
		"area":       d.Area,
		"site":       d.Site,
		"point":      d.Point.String(),
		"sequential": d.Sequential,
	})
}

func (a *App) handleSBAS(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		jsonError(w, "invalid lat parameter", http.StatusBadRequest)
		return
	}
	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil {
		jsonError(w, "invalid lon parameter", http.StatusBadRequest)
		return
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		jsonError(w, "coordinates out of range", http.StatusBadRequest)
		return
	}

	c, covered := gnss.SelectSBAS(lat, lon)
	query := q.Get("lat") + "," + q.Get("lon")

	resp := map[string]any{
		"covered": covered,
	}
	if covered {
		resp["service"] = describeConstellation(c)
		a.recordLookup("sbas", query, c.Code(), true)
	} else {
		a.recordLookup("sbas", query, "", false)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *App) handleVehicles(w http.ResponseWriter, r *http.Request) {
	type vehicleInfo struct {
		PRN           uint16 `json:"prn"`
		Name          string `json:"name"`
		Constellation string `json:"constellation"`
		COSPAR        string `json:"cospar"`
		Launched      string `json:"launched"`
	}

	vehicles := gnss.SBASVehicles()
	out := make([]vehicleInfo, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, vehicleInfo{
			PRN:           v.PRN,
			Name:          v.Name,
			Constellation: v.Constellation.Code(),
			COSPAR:        v.COSPAR.String(),
			Launched:      v.Launched.Format("2006-01-02"),
		})
	}
	writeJSON(w, http.StatusOK, out)
}
