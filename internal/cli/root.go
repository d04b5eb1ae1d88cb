package cli

import (
	"os"

	"github.com/amterp/ra"
)

// CommandContext holds parsed values and used flags for all commands.
type CommandContext struct {
	// Global flags
	NonInteractive *bool
	ConfigPath     *string
	Server         *string

	// init command
	InitUsed  *bool
	InitDeck  *string
	InitTitle *string
	InitPort  *int
	InitForce *bool

	// serve command
	ServeUsed   *bool
	ServePort   *int
	ServeNoOpen *bool

	// list command
	ListUsed  *bool
	ListQuery *string
	ListJson  *bool

	// show command
	ShowUsed *bool
	ShowCard *string
	ShowJson *bool

	// add command
	AddUsed        *bool
	AddName        *string
	AddDescription *string
	AddAttack      *string
	AddDefense     *string
	AddImage       *string
	AddJson        *bool

	// edit command
	EditUsed        *bool
	EditCard        *string
	EditName        *string
	EditDescription *string
	EditAttack      *string
	EditDefense     *string
	EditImage       *string
	EditEditor      *bool

	// delete command
	DeleteUsed  *bool
	DeleteCard  *string
	DeleteForce *bool

	// completion command
	CompletionUsed  *bool
	CompletionShell *string
}

// Run is the main entry point for the CLI.
func Run() {
	ctx := &CommandContext{}

	cmd := ra.NewCmd("cartas")
	cmd.SetDescription("Card collection manager")

	ctx.NonInteractive, _ = ra.NewBool("non-interactive").
		SetShort("I").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Fail instead of prompting for missing input").
		Register(cmd, ra.WithGlobal(true))

	ctx.ConfigPath, _ = ra.NewString("config").
		SetShort("c").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Config file (default ~/.config/cartas/config.toml)").
		Register(cmd, ra.WithGlobal(true))

	ctx.Server, _ = ra.NewString("server").
		SetShort("s").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Server URL (default http://localhost:<configured port>)").
		Register(cmd, ra.WithGlobal(true))

	registerInit(cmd, ctx)
	registerServe(cmd, ctx)
	registerList(cmd, ctx)
	registerShow(cmd, ctx)
	registerAdd(cmd, ctx)
	registerEdit(cmd, ctx)
	registerDelete(cmd, ctx)
	registerCompletion(cmd, ctx)

	cmd.ParseOrExit(os.Args[1:])

	executeCommand(ctx, cmd)
}

func executeCommand(ctx *CommandContext, rootCmd *ra.Cmd) {
	opts := AppOptions{
		ConfigPath:  *ctx.ConfigPath,
		Server:      *ctx.Server,
		Interactive: !*ctx.NonInteractive,
	}

	switch {
	case *ctx.InitUsed:
		runInit(opts, *ctx.InitDeck, *ctx.InitTitle, *ctx.InitPort, *ctx.InitForce)

	case *ctx.ServeUsed:
		runServe(opts, *ctx.ServePort, *ctx.ServeNoOpen)

	case *ctx.ListUsed:
		runList(opts, *ctx.ListQuery, *ctx.ListJson)

	case *ctx.ShowUsed:
		runShow(opts, *ctx.ShowCard, *ctx.ShowJson)

	case *ctx.AddUsed:
		runAdd(opts, cardFields{
			Name:        *ctx.AddName,
			Description: *ctx.AddDescription,
			Attack:      *ctx.AddAttack,
			Defense:     *ctx.AddDefense,
			ImageURL:    *ctx.AddImage,
		}, *ctx.AddJson)

	case *ctx.EditUsed:
		runEdit(opts, *ctx.EditCard, cardFields{
			Name:        *ctx.EditName,
			Description: *ctx.EditDescription,
			Attack:      *ctx.EditAttack,
			Defense:     *ctx.EditDefense,
			ImageURL:    *ctx.EditImage,
		}, *ctx.EditEditor)

	case *ctx.DeleteUsed:
		runDelete(opts, *ctx.DeleteCard, *ctx.DeleteForce)

	case *ctx.CompletionUsed:
		runCompletion(*ctx.CompletionShell, rootCmd)
	}
}
