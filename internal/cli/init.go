package cli

import (
	"github.com/amterp/ra"

	"github.com/sirxnine/cartas/internal/config"
	"github.com/sirxnine/cartas/internal/model"
	"github.com/sirxnine/cartas/internal/prompt"
	"github.com/sirxnine/cartas/internal/service"
	"github.com/sirxnine/cartas/internal/store"
)

func registerInit(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("init")
	cmd.SetDescription("Write a starter config file")

	ctx.InitDeck, _ = ra.NewString("deck").
		SetShort("d").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Deck preset: clasico or proyecto (prompted if not provided)").
		Register(cmd)

	ctx.InitTitle, _ = ra.NewString("title").
		SetShort("t").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Page title (default: the deck's title)").
		Register(cmd)

	ctx.InitPort, _ = ra.NewInt("port").
		SetShort("p").
		SetOptional(true).
		SetDefault(0).
		SetFlagOnly(true).
		SetUsage("Port for serve (default 3000)").
		Register(cmd)

	ctx.InitForce, _ = ra.NewBool("force").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Overwrite an existing config file").
		Register(cmd)

	ctx.InitUsed, _ = parent.RegisterCmd(cmd)
}

func runInit(opts AppOptions, deck, title string, port int, force bool) {
	// No NewApp: the config may not exist yet, or be the broken file being replaced.
	configStore := store.NewConfigStore(config.NewPaths(opts.ConfigPath))
	initService := service.NewInitService(configStore)

	if deck == "" && opts.Interactive {
		var p prompt.Prompter = prompt.NewHuhPrompter()
		choice, err := p.Select("Mazo", model.DeckNames())
		if err != nil {
			Fatal(err)
		}
		deck = choice
	}

	cfg, err := initService.Initialize(service.InitOptions{
		Deck:  deck,
		Title: title,
		Port:  port,
		Force: force,
	})
	if err != nil {
		Fatal(err)
	}

	PrintSuccess("Wrote %s", RenderURL(configStore.Path()))
	PrintInfo("Deck %s. Run %s to start.", RenderBold(cfg.Deck), RenderBold("cartas serve"))
}
