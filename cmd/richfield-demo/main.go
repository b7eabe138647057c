package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/codingconcepts/env"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/iw2rmb/richfield/emotes"
	"github.com/iw2rmb/richfield/field"
)

type Config struct {
	EmoteSetID  string `env:"EMOTE_SET_ID" default:"62cdd34e72a832540de95857"`
	EmoteAPIURL string `env:"EMOTE_API_URL" default:"https://7tv.io"`
	MaxLength   int    `env:"MAX_LENGTH" default:"500"`
	LogPath     string `env:"LOG_PATH" default:"richfield-demo.log"`
}

type model struct {
	field  field.Model
	client *emotes.Client
	setID  string
}

func newModel(cfg Config, client *emotes.Client) model {
	f := field.New(field.Config{
		Label:       "Message",
		Name:        "message",
		Placeholder: "Say something... type : for emotes",
		MaxLength:   cfg.MaxLength,
		Width:       60,
		Height:      5,
		ShowToolbar: true,
	})
	return model{field: f, client: client, setID: cfg.EmoteSetID}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.field.Init(), emotes.Load(m.client, m.setID))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.field = m.field.SetSize(msg.Width-2, msg.Height-4)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.field.View() + "\nCtrl+Q to quit.\n"
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("error loading .env file: %v", err)
	}
	config := Config{}
	if err := env.Set(&config); err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	// The TUI owns stdout; diagnostics go to a file.
	logFile, err := os.OpenFile(config.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer logFile.Close()
	logger := zerolog.New(logFile).With().Timestamp().Logger()

	lipgloss.SetColorProfile(termenv.ColorProfile())

	client := emotes.NewClient(
		emotes.WithBaseURL(config.EmoteAPIURL),
		emotes.WithLogger(logger),
	)

	p := tea.NewProgram(newModel(config, client), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
