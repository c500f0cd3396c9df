package tickbridge

import (
	"errors"
	"os"

	"tickbridge/bind"
	"tickbridge/game"
	"tickbridge/telemetry"
)

// libraryPathEnv names the core library when Options.LibraryPath is
// empty.
const libraryPathEnv = "TICKBRIDGE_LIB"

// Options configures a Client.
type Options struct {
	// LibraryPath locates the engine's core library. Empty means
	// read the TICKBRIDGE_LIB environment variable.
	LibraryPath string
	// Logger receives bridge diagnostics. Nil discards them.
	Logger telemetry.Logger
	// Counters, when set, is shared by every poller the client
	// creates.
	Counters *telemetry.PollCounters
	// Metrics, when set, receives the same recordings as Counters in
	// keyed form. Nil discards them.
	Metrics telemetry.Metrics
}

// Client owns one connection to the engine and hands out boundary and
// poller instances built on it.
type Client struct {
	iface *Interface
	opts  Options
}

// Connect loads the core library and resolves its entry points.
func Connect(opts Options) (*Client, error) {
	path := opts.LibraryPath
	if path == "" {
		path = os.Getenv(libraryPathEnv)
	}
	if path == "" {
		return nil, errors.New("tickbridge: no core library path; set Options.LibraryPath or " + libraryPathEnv)
	}
	core, err := bind.Load(path)
	if err != nil {
		return nil, err
	}
	return NewClient(core, opts), nil
}

// NewClient wires a client over an already-resolved entry-point set.
// This is the injection seam: tests and tools pass a bind.Core built
// from closures.
func NewClient(core *bind.Core, opts Options) *Client {
	return &Client{iface: NewInterface(core), opts: opts}
}

// Interface returns the shared boundary translation layer.
func (c *Client) Interface() *Interface {
	if c == nil {
		return nil
	}
	return c.iface
}

// Physicist returns a fresh physics-tick poller session.
func (c *Client) Physicist() *Physicist {
	return NewPhysicist(c.iface, c.pollerDeps())
}

// Packeteer returns a fresh snapshot poller session.
func (c *Client) Packeteer() *Packeteer {
	return NewPacketeer(c.iface, c.pollerDeps())
}

// SendPlayerInput serializes and sends one frame of controller input.
func (c *Client) SendPlayerInput(playerIndex int32, controls game.ControllerState) error {
	return c.iface.SendPlayerInput(game.EncodePlayerInput(playerIndex, controls))
}

// SendChat serializes and sends a chat message.
func (c *Client) SendChat(playerIndex int32, teamOnly bool, text string) error {
	return c.iface.SendChat(game.EncodeChatMessage(playerIndex, teamOnly, text))
}

// SendRenderGroup forwards a pre-serialized render command group.
func (c *Client) SendRenderGroup(buf []byte) error {
	return c.iface.SendRenderGroup(buf)
}

// SetGameState forwards a pre-serialized desired-state command.
func (c *Client) SetGameState(buf []byte) error {
	return c.iface.SetGameState(buf)
}

// StartMatch forwards pre-serialized match settings.
func (c *Client) StartMatch(buf []byte) error {
	return c.iface.StartMatch(buf)
}

func (c *Client) pollerDeps() PollerDeps {
	if c == nil {
		return PollerDeps{}
	}
	return PollerDeps{Logger: c.opts.Logger, Counters: c.opts.Counters, Metrics: c.opts.Metrics}
}
