package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/vendormac/vendormac/hwaddr"
	"github.com/vendormac/vendormac/ifaces"
	"github.com/vendormac/vendormac/oui"
)

const (
	version = "0.1.0"

	// registryKeyword switches the two-argument form from a survey search
	// to a registry-wide random pick.
	registryKeyword = "ouilist"
)

// Exit codes, one per failure class. Validation failures (1-4, 8, 9) occur
// before any interface mutation; mutation failures (5-7) report the state
// the interface was left in.
const (
	exitOK                   = 0
	exitInterfaceNotSupplied = 1
	exitTooManyParameters    = 2
	exitPatternNotFound      = 3
	exitInvalidInterfaceName = 4
	exitInterfaceDownFailed  = 5
	exitAddressApplyFailed   = 6
	exitInterfaceUpFailed    = 7
	exitRegistryNotFound     = 8
	exitRecordNotFound       = 9
	exitUIFailed             = 10
)

// Invocation modes
const (
	modeInteractive = iota
	modeRegistry
	modeFiltered
)

type invocation struct {
	mode   int
	iface  string
	search string
}

func main() {
	debugFlag := flag.Bool("debug", false, "Enable debug mode (writes debug.log in the current directory)")
	versionFlag := flag.Bool("version", false, "Display version information and exit")
	flag.Usage = usage
	flag.Parse()

	if *versionFlag {
		fmt.Printf("vendormac %s\n", version)
		os.Exit(exitOK)
	}

	setupLogging(*debugFlag)

	args := flag.Args()
	if len(args) == 1 && args[0] == "help" {
		usage()
		os.Exit(exitOK)
	}

	inv, code, msg := parseInvocation(args)
	if code != exitOK {
		fmt.Fprintf(os.Stderr, "Error: %s\n\n", msg)
		usage()
		os.Exit(code)
	}

	available, err := ifaces.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitInvalidInterfaceName)
	}
	if err := ifaces.Validate(inv.iface, available); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitInvalidInterfaceName)
	}

	paths := oui.DefaultPaths()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	switch inv.mode {
	case modeInteractive:
		os.Exit(runInteractive(inv.iface, available, paths, rng))
	case modeRegistry:
		os.Exit(runRegistryPick(inv.iface, paths, rng))
	default:
		os.Exit(runFilteredPick(inv.iface, inv.search, paths, rng))
	}
}

// parseInvocation maps the positional arguments onto an invocation mode, or
// an exit code and message when the argument shape is wrong.
func parseInvocation(args []string) (invocation, int, string) {
	switch len(args) {
	case 0:
		return invocation{}, exitInterfaceNotSupplied, "an interface to operate on is required"
	case 1:
		if args[0] == registryKeyword {
			return invocation{}, exitInterfaceNotSupplied,
				"a target interface must be supplied before " + registryKeyword
		}
		return invocation{mode: modeInteractive, iface: args[0]}, exitOK, ""
	case 2:
		if args[1] == registryKeyword {
			return invocation{mode: modeRegistry, iface: args[0]}, exitOK, ""
		}
		return invocation{mode: modeFiltered, iface: args[0], search: args[1]}, exitOK, ""
	}
	return invocation{}, exitTooManyParameters, "too many parameters"
}

// runUI hands the model to bubbletea; swapped out in tests.
var runUI = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithAltScreen()).Run()
}

// runInteractive browses the survey in the terminal UI; the chosen address
// is applied only after the program exits and releases the terminal.
func runInteractive(ifaceName string, available []ifaces.Interface, paths oui.Paths, rng *rand.Rand) int {
	survey, err := oui.LoadSurvey(paths.Survey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitRegistryNotFound
	}

	current, _ := ifaces.ByName(ifaceName, available)

	m := newBrowseModel(ifaceName, current.MACAddress, survey, rng)
	final, err := runUI(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		return exitUIFailed
	}

	bm := final.(*browseModel)
	if !bm.confirmed {
		fmt.Println("aborted, mac address was not changed")
		return exitOK
	}

	rec := bm.chosen
	fmt.Printf("Selected line %d: %s %s %s %s\n",
		rec.LineNumber, rec.ProductType, rec.Manufacturer, rec.ProductName, rec.Model)

	return applyAddress(ifaceName, bm.address, ifaces.ExecApplier{})
}

// runFilteredPick selects uniformly among survey entries matching search.
func runFilteredPick(ifaceName, search string, paths oui.Paths, rng *rand.Rand) int {
	survey, err := oui.LoadSurvey(paths.Survey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitRegistryNotFound
	}

	rec, err := survey.PickRandom(ifaceName, search, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitPatternNotFound
	}

	fmt.Printf("Type: %s\nManufacturer: %s\nProduct: %s\nModel: %s\n",
		rec.ProductType, rec.Manufacturer, rec.ProductName, rec.Model)

	addr := hwaddr.Assemble(rec.OUI, rng)
	return applyAddress(ifaceName, addr, ifaces.ExecApplier{})
}

// runRegistryPick selects uniformly across the full IEEE registry.
func runRegistryPick(ifaceName string, paths oui.Paths, rng *rand.Rand) int {
	src, err := oui.ResolveRegistry(paths.RegistryPrimary, paths.RegistryFallback, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitRegistryNotFound
	}
	logrus.WithFields(logrus.Fields{
		"source": src.Kind.String(),
		"path":   src.Path,
		"lines":  src.Lines,
	}).Debug("resolved registry")

	reg, err := oui.LoadRegistry(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitRegistryNotFound
	}

	rec := reg.PickRandom(rng)
	fmt.Println(rec.Raw)

	addr := hwaddr.Assemble(rec.Octets, rng)
	return applyAddress(ifaceName, addr, ifaces.ExecApplier{})
}

// applyAddress runs the down → apply → up sequence and reports the result.
func applyAddress(name, addr string, applier ifaces.Applier) int {
	code, msg := changeAddress(name, addr, applier)
	if code == exitOK {
		fmt.Println(msg)
	} else {
		fmt.Fprintln(os.Stderr, msg)
	}
	return code
}

// changeAddress brings the interface down, writes the address, and brings it
// back up. The apply step only runs after a successful down, and the
// interface only comes back up after a successful apply; on apply failure it
// is deliberately left down. Each failure message states exactly what state
// the interface was left in, since there is no automatic rollback.
func changeAddress(name, addr string, applier ifaces.Applier) (int, string) {
	if err := applier.SetState(name, false); err != nil {
		logrus.WithError(err).Error("interface down failed")
		return exitInterfaceDownFailed,
			fmt.Sprintf("could not bring %s down: %v\nmac address was not changed", name, err)
	}

	if err := applier.ApplyAddress(name, addr); err != nil {
		logrus.WithError(err).Error("address apply failed")
		return exitAddressApplyFailed,
			fmt.Sprintf("could not set address on %s: %v\ninterface is down, address unchanged", name, err)
	}

	if err := applier.SetState(name, true); err != nil {
		logrus.WithError(err).Error("interface up failed")
		return exitInterfaceUpFailed,
			fmt.Sprintf("could not bring %s up: %v\naddress changed to %s, interface still down", name, err, addr)
	}

	return exitOK, fmt.Sprintf("%s hardware address changed to %s", name, addr)
}

func setupLogging(debug bool) {
	if debug {
		f, err := os.OpenFile("debug.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening debug.log: %v\n", err)
			os.Exit(1)
		}
		logrus.SetOutput(f)
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetOutput(io.Discard)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "vendormac %s - Vendor-Consistent MAC Spoofing Tool\n\n", version)
	fmt.Fprintf(os.Stderr, "Usage: %s [options] <interface> [search|%s]\n\n", os.Args[0], registryKeyword)
	fmt.Fprintf(os.Stderr, "  %s wlan0            browse the device survey and pick a line\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s wlan0 samsung    random pick among survey entries matching 'samsung'\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s wlan0 %s    random pick across the full IEEE registry\n\n", os.Args[0], registryKeyword)
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
