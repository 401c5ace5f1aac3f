// Gnssctl is the command-line client for querying a running gnssd
// instance. It connects over HTTP and WebSocket to resolve GNSS
// identifiers and stream live events from the daemon.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/large-farva/gnss/internal/ctl"
)

func main() {
	var (
		host    = pflag.StringP("host", "H", "http://127.0.0.1:8080", "GNSS daemon URL (e.g. http://192.168.8.1:8080)")
		jsonOut = pflag.Bool("json", false, "Output raw JSON instead of formatted text")
		filter  = pflag.StringSlice("filter", nil, "Event types to show in watch (e.g. --filter state,lookup)")
	)

	// Stop parsing global flags at the first non-flag argument (the command
	// name), so command arguments are not rejected.
	pflag.CommandLine.SetInterspersed(false)
	pflag.Parse()

	if pflag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	cmd := pflag.Arg(0)
	subArgs := pflag.Args()[1:]

	var err error
	switch cmd {
	// ── Daemon commands ───────────────────────────────────────────
	case "status":
		err = ctl.Status(*host, *jsonOut)

	case "health":
		err = ctl.Health(*host, *jsonOut)

	case "version":
		err = ctl.Version(*host, *jsonOut)

	// ── Lookup commands ───────────────────────────────────────────
	case "constellations":
		err = ctl.Constellations(*host, *jsonOut)

	case "constellation":
		if len(subArgs) < 1 {
			err = fmt.Errorf("constellation requires a name argument (e.g. gnssctl constellation BeiDou)")
			break
		}
		err = ctl.Constellation(*host, subArgs[0], *jsonOut)

	case "sv":
		if len(subArgs) < 1 {
			err = fmt.Errorf("sv requires an identifier argument (e.g. gnssctl sv G01)")
			break
		}
		err = ctl.SV(*host, subArgs[0], *jsonOut)

	case "cospar":
		if len(subArgs) < 1 {
			err = fmt.Errorf("cospar requires a designator argument (e.g. gnssctl cospar 2014-011B)")
			break
		}
		err = ctl.COSPAR(*host, subArgs[0], *jsonOut)

	case "domes":
		if len(subArgs) < 1 {
			err = fmt.Errorf("domes requires a site number argument (e.g. gnssctl domes 10002M006)")
			break
		}
		err = ctl.DOMES(*host, subArgs[0], *jsonOut)

	case "sbas":
		if len(subArgs) < 2 {
			err = fmt.Errorf("sbas requires latitude and longitude arguments (e.g. gnssctl sbas 48.8 2.38)")
			break
		}
		var opts ctl.SBASOptions
		opts.Lat, err = strconv.ParseFloat(subArgs[0], 64)
		if err != nil {
			err = fmt.Errorf("invalid latitude %q", subArgs[0])
			break
		}
		opts.Lon, err = strconv.ParseFloat(subArgs[1], 64)
		if err != nil {
			err = fmt.Errorf("invalid longitude %q", subArgs[1])
			break
		}
		err = ctl.SBAS(*host, opts, *jsonOut)

	case "vehicles":
		err = ctl.Vehicles(*host, *jsonOut)

	// ── Live streaming ────────────────────────────────────────────
	case "watch":
		err = ctl.Watch(*host, ctl.WatchOptions{
			Filter: *filter,
			JSON:   *jsonOut,
		})

	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Print(`
  gnssctl — GNSS daemon control CLI

  USAGE
    gnssctl [flags] <command> [arguments]

  COMMANDS (daemon)
    status          Show daemon state, uptime, and lookup counters
    health          Check daemon health
    version         Show daemon version information

  COMMANDS (lookup)
    constellations  List the constellation registry
    constellation   Resolve a constellation name or alias
    sv              Resolve a space vehicle identifier (e.g. G01, S23)
    cospar          Resolve a COSPAR launch designator (e.g. 2014-011B)
    domes           Resolve a DOMES site number (e.g. 10002M006)
    sbas            Select the SBAS service covering a position
    vehicles        List the SBAS vehicle catalog

  COMMANDS (live)
    watch           Stream live events from the daemon (Ctrl-C to stop)

  GLOBAL FLAGS
    -H, --host URL      Daemon base URL (default: http://127.0.0.1:8080)
        --json          Output raw JSON instead of formatted text
        --filter TYPE   Event types to show in watch (comma-separated)

  EXAMPLES
    gnssctl status
    gnssctl --json status
    gnssctl constellation BeiDou
    gnssctl sv G01
    gnssctl sv S23
    gnssctl cospar 2014-011B
    gnssctl domes 10002M006
    gnssctl sbas 48.8 2.38
    gnssctl vehicles
    gnssctl --host http://192.168.8.1:8080 watch
    gnssctl watch --filter state,lookup

`)
}
