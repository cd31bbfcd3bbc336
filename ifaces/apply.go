package ifaces

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Applier changes live interface state. It is the privileged boundary: the
// selection engine hands a finished address string to it and nothing more.
type Applier interface {
	// SetState brings the named interface up or down.
	SetState(name string, up bool) error
	// ApplyAddress writes the hardware address to the named interface.
	ApplyAddress(name, addr string) error
}

// ExecApplier drives the platform's interface tooling.
type ExecApplier struct{}

// SetState brings the interface up or down via ip/ifconfig.
func (ExecApplier) SetState(name string, up bool) error {
	state := "down"
	if up {
		state = "up"
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("ip", "link", "set", "dev", name, state)
	default:
		cmd = exec.Command("ifconfig", name, state)
	}
	return run(cmd)
}

// ApplyAddress writes addr to the interface via ip/ifconfig.
func (ExecApplier) ApplyAddress(name, addr string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("ip", "link", "set", "dev", name, "address", addr)
	case "darwin":
		cmd = exec.Command("ifconfig", name, "ether", addr)
	default:
		cmd = exec.Command("ifconfig", name, "hw", "ether", addr)
	}
	return run(cmd)
}

func run(cmd *exec.Cmd) error {
	out, err := cmd.CombinedOutput()
	if err != nil {
		logrus.WithField("cmd", strings.Join(cmd.Args, " ")).
			Debugf("command failed: %s", out)
		return errors.Wrapf(err, "%s: %s",
			strings.Join(cmd.Args, " "), strings.TrimSpace(string(out)))
	}
	return nil
}
