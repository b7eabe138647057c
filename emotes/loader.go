package emotes

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// LoadedMsg is the result of a one-shot emote-set load. On any failure the
// Emotes slice is empty; the failure is logged and never surfaced.
type LoadedMsg struct {
	SetID  string
	Emotes []Emote
}

// Load returns a command that fetches the set exactly once and resolves to a
// LoadedMsg. Fetch, status, and schema failures all degrade to an empty list;
// there is no retry.
func Load(c *Client, setID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return load(ctx, c, setID)
	}
}

// LoadInto is the result-channel form of Load for hosts that are not running
// a Bubble Tea program. The channel carries exactly one message and is then
// closed.
func LoadInto(ctx context.Context, c *Client, setID string) <-chan LoadedMsg {
	out := make(chan LoadedMsg, 1)
	go func() {
		defer close(out)
		out <- load(ctx, c, setID)
	}()
	return out
}

func load(ctx context.Context, c *Client, setID string) LoadedMsg {
	set, err := c.FetchSet(ctx, setID)
	if err != nil {
		c.logger.Error().Err(err).Str("set_id", setID).Msg("emote set load failed")
		return LoadedMsg{SetID: setID}
	}
	return LoadedMsg{SetID: setID, Emotes: set.Emotes}
}
