package cli

import (
	"fmt"
	"os"

	"github.com/sirxnine/cartas/internal/client"
	"github.com/sirxnine/cartas/internal/config"
	"github.com/sirxnine/cartas/internal/model"
	"github.com/sirxnine/cartas/internal/prompt"
	"github.com/sirxnine/cartas/internal/resolver"
	"github.com/sirxnine/cartas/internal/service"
	"github.com/sirxnine/cartas/internal/store"
)

// AppOptions are the global flags every command sees.
type AppOptions struct {
	ConfigPath  string
	Server      string
	Interactive bool
}

// App holds the dependencies of the client-side commands.
type App struct {
	Paths        *config.Paths
	Config       *model.AppConfig
	Client       *client.Client
	Prompter     prompt.Prompter
	CardResolver *resolver.CardResolver
}

// NewApp loads config and points a client at the server.
// If opts.Interactive is false, uses NoopPrompter that fails on prompts.
func NewApp(opts AppOptions) (*App, error) {
	paths := config.NewPaths(opts.ConfigPath)

	cfg, err := service.LoadConfig(store.NewConfigStore(paths))
	if err != nil {
		return nil, err
	}

	server := opts.Server
	if server == "" {
		server = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}
	c := client.New(server, nil)

	var prompter prompt.Prompter
	if opts.Interactive {
		prompter = prompt.NewHuhPrompter()
	} else {
		prompter = &prompt.NoopPrompter{}
	}

	return &App{
		Paths:        paths,
		Config:       cfg,
		Client:       c,
		Prompter:     prompter,
		CardResolver: resolver.NewCardResolver(c, prompter),
	}, nil
}

// Fatal prints an error and exits.
func Fatal(err error) {
	PrintError("Error: %v", err)
	os.Exit(1)
}
