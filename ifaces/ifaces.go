// Package ifaces enumerates the system's network interfaces and carries out
// the privileged state changes the selection engine itself never performs.
package ifaces

import (
	"net"
	"sort"
	"strings"

	"github.com/jackpal/gateway"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrInvalidInterface is returned when the requested interface does not
// exist on this system.
var ErrInvalidInterface = errors.New("invalid interface name")

// Interface describes one live network interface.
type Interface struct {
	Name       string
	IPAddress  string
	MACAddress string
	Gateway    string
	IsUp       bool
	Priority   int
}

// List enumerates the system's network interfaces, annotated with the default
// gateway when it falls inside an interface's subnet, sorted by how likely
// each is to be the one an operator wants to re-address. Loopback interfaces
// are excluded.
func List() ([]Interface, error) {
	netIfaces, err := net.Interfaces()
	if err != nil {
		return nil, errors.Wrap(err, "enumerate interfaces")
	}

	gatewayIP, err := gateway.DiscoverGateway()
	if err != nil {
		logrus.WithError(err).Debug("no default gateway detected")
		gatewayIP = nil
	}

	var out []Interface
	for _, iface := range netIfaces {
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		entry := Interface{
			Name:       iface.Name,
			MACAddress: iface.HardwareAddr.String(),
			Gateway:    "Not detected",
			IsUp:       iface.Flags&net.FlagUp != 0,
			Priority:   priority(iface.Name),
		}

		if addrs, err := iface.Addrs(); err == nil {
			for _, addr := range addrs {
				ipNet, ok := addr.(*net.IPNet)
				if !ok || ipNet.IP.To4() == nil {
					continue
				}
				entry.IPAddress = ipNet.IP.String()
				if gatewayIP != nil && ipNet.Contains(gatewayIP) {
					entry.Gateway = gatewayIP.String()
				}
				break
			}
		}

		out = append(out, entry)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})

	return out, nil
}

// Validate checks that name is one of the available interfaces. The error
// lists the valid set so the operator can correct the invocation.
func Validate(name string, available []Interface) error {
	names := make([]string, 0, len(available))
	for _, iface := range available {
		if iface.Name == name {
			return nil
		}
		names = append(names, iface.Name)
	}
	return errors.Wrapf(ErrInvalidInterface, "%s (valid: %s)", name, strings.Join(names, ", "))
}

// ByName returns the interface entry matching name.
func ByName(name string, available []Interface) (Interface, bool) {
	for _, iface := range available {
		if iface.Name == name {
			return iface, true
		}
	}
	return Interface{}, false
}

func priority(name string) int {
	switch {
	case strings.HasPrefix(name, "wlan"):
		return 1 // WiFi on Linux, the usual spoofing target
	case strings.HasPrefix(name, "eth"):
		return 2 // Ethernet on Linux
	case strings.HasPrefix(name, "en"):
		return 3 // Ethernet/WiFi on macOS/BSD
	default:
		return 100 // Other interfaces
	}
}
