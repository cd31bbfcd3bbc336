package main

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendormac/vendormac/ifaces"
	"github.com/vendormac/vendormac/oui"
)

func Test_ParseInvocation(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantMode int
		wantCode int
	}{
		{name: "no args", args: nil, wantCode: exitInterfaceNotSupplied},
		{name: "keyword without interface", args: []string{registryKeyword}, wantCode: exitInterfaceNotSupplied},
		{name: "interface only", args: []string{"wlan0"}, wantMode: modeInteractive},
		{name: "interface and keyword", args: []string{"wlan0", registryKeyword}, wantMode: modeRegistry},
		{name: "interface and search", args: []string{"wlan0", "samsung"}, wantMode: modeFiltered},
		{name: "three args", args: []string{"wlan0", "samsung", "extra"}, wantCode: exitTooManyParameters},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inv, code, msg := parseInvocation(tc.args)
			assert.Equal(t, tc.wantCode, code)
			if tc.wantCode != exitOK {
				assert.NotEmpty(t, msg)
				return
			}
			assert.Equal(t, tc.wantMode, inv.mode)
			assert.Equal(t, "wlan0", inv.iface)
			if tc.wantMode == modeFiltered {
				assert.Equal(t, "samsung", inv.search)
			}
		})
	}
}

// fakeApplier records the privileged call sequence and can fail any step.
type fakeApplier struct {
	calls     []string
	failDown  bool
	failApply bool
	failUp    bool
}

func (f *fakeApplier) SetState(_ string, up bool) error {
	if up {
		f.calls = append(f.calls, "up")
		if f.failUp {
			return errors.New("up failed")
		}
		return nil
	}
	f.calls = append(f.calls, "down")
	if f.failDown {
		return errors.New("down failed")
	}
	return nil
}

func (f *fakeApplier) ApplyAddress(_, addr string) error {
	f.calls = append(f.calls, "apply "+addr)
	if f.failApply {
		return errors.New("apply failed")
	}
	return nil
}

func Test_RunInteractive_UIFailure(t *testing.T) {
	surveyPath := filepath.Join(t.TempDir(), "maclist.lst")
	line := "1 N WL Samsung GalaxyS8 SM-G950F 28 10 7B\n"
	require.NoError(t, os.WriteFile(surveyPath, []byte(line), 0644))

	orig := runUI
	runUI = func(_ tea.Model) (tea.Model, error) {
		return nil, errors.New("terminal unavailable")
	}
	defer func() { runUI = orig }()

	available := []ifaces.Interface{{Name: "wlan0", MACAddress: "00:11:22:33:44:55"}}
	rng := rand.New(rand.NewSource(1))

	code := runInteractive("wlan0", available, oui.Paths{Survey: surveyPath}, rng)
	assert.Equal(t, exitUIFailed, code)
}

func Test_ChangeAddress(t *testing.T) {
	applier := &fakeApplier{}
	code, msg := changeAddress("wlan0", "28:10:7B:10:20:30", applier)

	assert.Equal(t, exitOK, code)
	assert.Contains(t, msg, "28:10:7B:10:20:30")
	require.Equal(t, []string{"down", "apply 28:10:7B:10:20:30", "up"}, applier.calls)
}

func Test_ChangeAddress_DownFails(t *testing.T) {
	applier := &fakeApplier{failDown: true}
	code, msg := changeAddress("wlan0", "28:10:7B:10:20:30", applier)

	assert.Equal(t, exitInterfaceDownFailed, code)
	assert.Contains(t, msg, "mac address was not changed")
	// neither the apply nor the up transition may run
	require.Equal(t, []string{"down"}, applier.calls)
}

func Test_ChangeAddress_ApplyFails(t *testing.T) {
	applier := &fakeApplier{failApply: true}
	code, msg := changeAddress("wlan0", "28:10:7B:10:20:30", applier)

	assert.Equal(t, exitAddressApplyFailed, code)
	// the interface is deliberately left down for manual recovery
	assert.Contains(t, msg, "interface is down, address unchanged")
	require.Equal(t, []string{"down", "apply 28:10:7B:10:20:30"}, applier.calls)
}

func Test_ChangeAddress_UpFails(t *testing.T) {
	applier := &fakeApplier{failUp: true}
	code, msg := changeAddress("wlan0", "28:10:7B:10:20:30", applier)

	assert.Equal(t, exitInterfaceUpFailed, code)
	assert.Contains(t, msg, "address changed to 28:10:7B:10:20:30, interface still down")
	require.Equal(t, []string{"down", "apply 28:10:7B:10:20:30", "up"}, applier.calls)
}
