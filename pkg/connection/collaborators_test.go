package connection_test

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sandbot-io/wifimgr/pkg/connection"
	"github.com/sandbot-io/wifimgr/pkg/connection/mocks"
	"github.com/sandbot-io/wifimgr/pkg/persistence"
)

var testHW = net.HardwareAddr{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}

func newMockRadio(t *testing.T) *mocks.MockRadio {
	radio := mocks.NewMockRadio(t)
	radio.EXPECT().HardwareAddr().Return(testHW).Maybe()
	radio.EXPECT().Status().Return(connection.LinkIdle).Maybe()
	return radio
}

func TestPortalDrivesCollaborators(t *testing.T) {
	radio := newMockRadio(t)
	store := mocks.NewMockCredentialStore(t)
	gateway := mocks.NewMockGateway(t)
	status := mocks.NewMockStatusSink(t)

	store.EXPECT().Load().Return(persistence.Credentials{}, nil).Once()

	radio.EXPECT().Disconnect().Return(nil).Once()
	radio.EXPECT().StartAccessPoint("sandBot-EF0001", connection.DefaultAPPassword).Return(nil).Once()
	gateway.EXPECT().Start().Return(nil).Once()
	status.EXPECT().SetStatus(connection.StatusPortal).Once()

	m, err := connection.NewManager(connection.DefaultConfig(), connection.Deps{
		Radio:   radio,
		Store:   store,
		Gateway: gateway,
		Status:  status,
	})
	require.NoError(t, err)

	m.Tick()
	assert.True(t, m.IsPortalMode())

	gateway.EXPECT().Service().Return().Times(2)
	m.Tick()
	m.Tick()

	gateway.EXPECT().Stop().Return(nil).Once()
	radio.EXPECT().StopAccessPoint().Return(nil).Once()
	status.EXPECT().SetStatus(connection.StatusDisconnected).Once()
	m.ExitPortal()
	assert.Equal(t, connection.ModeDisconnected, m.Mode())
}

func TestDriverErrorsAreAbsorbed(t *testing.T) {
	radio := newMockRadio(t)
	gateway := mocks.NewMockGateway(t)
	store := persistence.NewMemoryCredentialStore(persistence.Credentials{})

	boom := errors.New("driver busy")
	radio.EXPECT().Disconnect().Return(boom).Once()
	radio.EXPECT().StartAccessPoint(mock.Anything, mock.Anything).Return(boom).Once()
	gateway.EXPECT().Start().Return(boom).Once()

	m, err := connection.NewManager(connection.DefaultConfig(), connection.Deps{
		Radio:   radio,
		Store:   store,
		Gateway: gateway,
	})
	require.NoError(t, err)

	m.EnterPortal()
	assert.Equal(t, connection.ModePortal, m.Mode())
}

func TestSaveErrorIsReturned(t *testing.T) {
	radio := newMockRadio(t)
	store := mocks.NewMockCredentialStore(t)

	store.EXPECT().Load().Return(persistence.Credentials{SSID: "home"}, nil).Once()
	store.EXPECT().Save(persistence.Credentials{SSID: "next", Password: "pw", Hostname: "sandbot"}).
		Return(errors.New("disk full")).Once()

	m, err := connection.NewManager(connection.DefaultConfig(), connection.Deps{
		Radio: radio,
		Store: store,
	})
	require.NoError(t, err)

	err = m.SetCredentials("next", "pw", "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	// In-memory state follows the request regardless
	assert.Equal(t, "next", m.Credentials().SSID)
}

func TestLoadErrorStartsEmpty(t *testing.T) {
	radio := newMockRadio(t)
	store := mocks.NewMockCredentialStore(t)
	store.EXPECT().Load().Return(persistence.Credentials{}, persistence.ErrCorruptDocument).Once()

	radio.EXPECT().Disconnect().Return(nil).Once()
	radio.EXPECT().StartAccessPoint(mock.Anything, mock.Anything).Return(nil).Once()

	m, err := connection.NewManager(connection.DefaultConfig(), connection.Deps{
		Radio: radio,
		Store: store,
	})
	require.NoError(t, err)
	assert.Equal(t, connection.DefaultHostname, m.Hostname())

	m.Tick()
	assert.True(t, m.IsPortalMode())
}

func TestRegistersHostnameOnAddress(t *testing.T) {
	radio := newMockRadio(t)
	names := mocks.NewMockNameRegistrar(t)
	restarter := mocks.NewMockRestarter(t)

	radio.EXPECT().Reconnect().Return(nil).Maybe()
	names.EXPECT().Register("bench").Return(errors.New("multicast unavailable")).Once()

	m, err := connection.NewManager(connection.DefaultConfig(), connection.Deps{
		Radio:     radio,
		Store:     persistence.NewMemoryCredentialStore(persistence.Credentials{SSID: "lab", Hostname: "bench"}),
		Names:     names,
		Restarter: restarter,
	})
	require.NoError(t, err)

	m.OnEvent(connection.GotAddress(net.IPv4(10, 1, 1, 5)))
	m.Tick()

	// A failed registration does not affect the connection
	assert.True(t, m.IsConnected())
}

func TestPortalWithdrawsRegisteredName(t *testing.T) {
	radio := newMockRadio(t)
	names := mocks.NewMockNameRegistrar(t)

	names.EXPECT().Register("bench").Return(nil).Once()
	names.EXPECT().Withdraw().Return(errors.New("multicast unavailable")).Once()
	radio.EXPECT().Disconnect().Return(nil).Once()
	radio.EXPECT().StartAccessPoint("sandBot-EF0001", connection.DefaultAPPassword).Return(nil).Once()

	m, err := connection.NewManager(connection.DefaultConfig(), connection.Deps{
		Radio: radio,
		Store: persistence.NewMemoryCredentialStore(persistence.Credentials{SSID: "lab", Hostname: "bench"}),
		Names: names,
	})
	require.NoError(t, err)

	m.OnEvent(connection.GotAddress(net.IPv4(10, 1, 1, 5)))
	m.Tick()
	require.True(t, m.IsConnected())

	// A failed withdrawal does not keep the manager out of the portal
	m.EnterPortal()
	assert.True(t, m.IsPortalMode())
}
