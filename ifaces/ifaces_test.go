package ifaces

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func available() []Interface {
	return []Interface{
		{Name: "wlan0", IPAddress: "192.168.1.10", IsUp: true, Priority: 1},
		{Name: "eth0", IPAddress: "10.0.0.2", IsUp: true, Priority: 2},
		{Name: "docker0", Priority: 100},
	}
}

func Test_Validate(t *testing.T) {
	require.NoError(t, Validate("wlan0", available()))
	require.NoError(t, Validate("docker0", available()))

	err := Validate("wlan1", available())
	require.True(t, errors.Is(err, ErrInvalidInterface))
	// the error names the valid set so the operator can correct the call
	assert.Contains(t, err.Error(), "wlan0")
	assert.Contains(t, err.Error(), "eth0")
	assert.Contains(t, err.Error(), "docker0")
}

func Test_ByName(t *testing.T) {
	iface, ok := ByName("eth0", available())
	require.True(t, ok)
	assert.Equal(t, "10.0.0.2", iface.IPAddress)

	_, ok = ByName("tun0", available())
	assert.False(t, ok)
}

func Test_Priority(t *testing.T) {
	assert.Less(t, priority("wlan0"), priority("eth0"))
	assert.Less(t, priority("eth0"), priority("en0"))
	assert.Less(t, priority("en0"), priority("docker0"))
}
