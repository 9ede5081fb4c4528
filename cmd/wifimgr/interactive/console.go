// Package interactive provides the interactive console of the wifimgr
// daemon.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/sandbot-io/wifimgr/pkg/connection"
	"github.com/sandbot-io/wifimgr/pkg/persistence"
	"github.com/sandbot-io/wifimgr/pkg/radio"
)

// Controller is the part of the connection manager the console drives.
type Controller interface {
	Status() connection.Status
	Credentials() persistence.Credentials
	SetCredentials(ssid, password, hostname string, requestRestart bool) error
	ClearCredentials() error
	EnterPortal()
	ExitPortal()
}

// Radio is the part of the simulated radio the console drives.
type Radio interface {
	Networks() []radio.Network
	SetNetwork(n radio.Network)
	RemoveNetwork(ssid string)
	Drop(reason connection.DisconnectReason)
}

var (
	_ Controller = (*connection.Manager)(nil)
	_ Radio      = (*radio.Sim)(nil)
)

// dropReasons maps console names to disconnect reasons.
var dropReasons = map[string]connection.DisconnectReason{
	"lost":      connection.ReasonConnectionLost,
	"beacon":    connection.ReasonBeaconTimeout,
	"nonet":     connection.ReasonNoNetwork,
	"auth":      connection.ReasonAuthFailed,
	"handshake": connection.ReasonHandshakeTimeout,
	"assoc":     connection.ReasonAssocRejected,
	"generic":   connection.ReasonDisconnected,
}

// Console handles interactive mode for wifimgr.
type Console struct {
	ctl   Controller
	radio Radio
	out   io.Writer
	rl    *readline.Instance
}

// New creates a console reading from the terminal.
func New(ctl Controller, r Radio) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "wifimgr> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("help"),
			readline.PcItem("status"),
			readline.PcItem("creds"),
			readline.PcItem("clear"),
			readline.PcItem("portal"),
			readline.PcItem("exit-portal"),
			readline.PcItem("drop",
				readline.PcItem("lost"),
				readline.PcItem("beacon"),
				readline.PcItem("nonet"),
				readline.PcItem("auth"),
				readline.PcItem("handshake"),
				readline.PcItem("assoc"),
				readline.PcItem("generic"),
			),
			readline.PcItem("networks",
				readline.PcItem("add"),
				readline.PcItem("remove"),
			),
			readline.PcItem("quit"),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Console{ctl: ctl, radio: r, out: rl.Stdout(), rl: rl}, nil
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (c *Console) Stdout() io.Writer {
	return c.rl.Stdout()
}

// Run reads commands until quit, EOF or ctx is done. cancel is called when
// the user quits.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc) {
	defer c.rl.Close()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.out, "Exiting...")
			cancel()
			return
		}

		if c.Execute(line) {
			cancel()
			return
		}
	}
}

// Execute runs one command line and reports whether the user asked to quit.
func (c *Console) Execute(line string) bool {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		c.printHelp()
	case "status", "s":
		c.cmdStatus()
	case "creds", "c":
		c.cmdCreds(args)
	case "clear":
		c.cmdClear()
	case "portal":
		c.ctl.EnterPortal()
		fmt.Fprintln(c.out, "Portal requested")
	case "exit-portal":
		c.ctl.ExitPortal()
		fmt.Fprintln(c.out, "Portal exit requested")
	case "drop":
		c.cmdDrop(args)
	case "networks", "n":
		c.cmdNetworks(args)
	case "quit", "exit", "q":
		fmt.Fprintln(c.out, "Exiting...")
		return true
	default:
		fmt.Fprintf(c.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, `
wifimgr Commands:
  Connection:
    status                          - Show mode, failures and link
    creds                           - Show stored credentials
    creds <ssid> [pw] [hostname]    - Store credentials (no restart)
    clear                           - Clear credentials and open the portal
    portal                          - Open the provisioning portal
    exit-portal                     - Leave the portal and retry

  Simulated radio:
    drop [reason]                   - Drop the link (lost, beacon, nonet, auth,
                                      handshake, assoc, generic or a code)
    networks                        - List networks in range
    networks add <ssid> [pw] [rssi] - Add or replace a network
    networks remove <ssid>          - Remove a network

  Other:
    help                            - Show this help
    quit                            - Exit`)
}

func (c *Console) cmdStatus() {
	st := c.ctl.Status()
	fmt.Fprintf(c.out, "Mode:      %s\n", st.Mode)
	fmt.Fprintf(c.out, "Link:      %s\n", st.Link)
	fmt.Fprintf(c.out, "Failures:  %d\n", st.Failures)
	fmt.Fprintf(c.out, "SSID:      %s\n", orDash(st.SSID))
	fmt.Fprintf(c.out, "Hostname:  %s\n", st.Hostname)
	if st.Mode == connection.ModePortal {
		fmt.Fprintf(c.out, "Portal:    %s (since %s)\n", st.PortalName, st.PortalSince.Format(time.TimeOnly))
	}
	if st.RestartPending {
		fmt.Fprintln(c.out, "Restart:   pending")
	}
}

func (c *Console) cmdCreds(args []string) {
	if len(args) == 0 {
		creds := c.ctl.Credentials()
		fmt.Fprintf(c.out, "SSID:      %s\n", orDash(creds.SSID))
		fmt.Fprintf(c.out, "Password:  %s\n", mask(creds.Password))
		fmt.Fprintf(c.out, "Hostname:  %s\n", creds.Hostname)
		return
	}

	ssid := args[0]
	var password, hostname string
	if len(args) > 1 {
		password = args[1]
	}
	if len(args) > 2 {
		hostname = args[2]
	}

	if err := c.ctl.SetCredentials(ssid, password, hostname, false); err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Credentials stored for %q\n", ssid)
}

func (c *Console) cmdClear() {
	if err := c.ctl.ClearCredentials(); err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "Credentials cleared")
}

func (c *Console) cmdDrop(args []string) {
	reason := connection.ReasonConnectionLost
	if len(args) > 0 {
		r, ok := parseReason(args[0])
		if !ok {
			fmt.Fprintf(c.out, "Unknown reason: %s\n", args[0])
			return
		}
		reason = r
	}
	c.radio.Drop(reason)
	fmt.Fprintf(c.out, "Link dropped (%s)\n", reason)
}

func (c *Console) cmdNetworks(args []string) {
	if len(args) == 0 {
		networks := c.radio.Networks()
		if len(networks) == 0 {
			fmt.Fprintln(c.out, "No networks in range")
			return
		}
		for _, n := range networks {
			hidden := ""
			if n.Hidden {
				hidden = " (hidden)"
			}
			fmt.Fprintf(c.out, "  %-32s %4d dBm%s\n", n.SSID, n.RSSI, hidden)
		}
		return
	}

	switch strings.ToLower(args[0]) {
	case "add":
		if len(args) < 2 {
			fmt.Fprintln(c.out, "Usage: networks add <ssid> [password] [rssi]")
			return
		}
		n := radio.Network{SSID: args[1], RSSI: -50}
		if len(args) > 2 {
			if err := radio.ValidatePassphrase(args[2]); err != nil {
				fmt.Fprintf(c.out, "Error: %v\n", err)
				return
			}
			n.Password = args[2]
		}
		if len(args) > 3 {
			rssi, err := strconv.Atoi(args[3])
			if err != nil {
				fmt.Fprintf(c.out, "Invalid rssi: %s\n", args[3])
				return
			}
			n.RSSI = rssi
		}
		c.radio.SetNetwork(n)
		fmt.Fprintf(c.out, "Network %q in range\n", n.SSID)

	case "remove", "rm":
		if len(args) < 2 {
			fmt.Fprintln(c.out, "Usage: networks remove <ssid>")
			return
		}
		c.radio.RemoveNetwork(args[1])
		fmt.Fprintf(c.out, "Network %q removed\n", args[1])

	default:
		fmt.Fprintf(c.out, "Unknown networks command: %s\n", args[0])
	}
}

func parseReason(s string) (connection.DisconnectReason, bool) {
	if r, ok := dropReasons[strings.ToLower(s)]; ok {
		return r, true
	}
	code, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, false
	}
	return connection.DisconnectReason(code), true
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func mask(s string) string {
	if s == "" {
		return "-"
	}
	return strings.Repeat("*", len(s))
}
