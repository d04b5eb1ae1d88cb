package cli

import (
	"context"

	"github.com/amterp/ra"
)

func registerAdd(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("add")
	cmd.SetDescription("Create a card")

	ctx.AddName, _ = ra.NewString("name").
		SetOptional(true).
		SetUsage("Card name (prompted if not provided)").
		Register(cmd)

	ctx.AddDescription, _ = ra.NewString("description").
		SetShort("d").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Card description").
		Register(cmd)

	ctx.AddAttack, _ = ra.NewString("attack").
		SetShort("a").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Attack points").
		Register(cmd)

	ctx.AddDefense, _ = ra.NewString("defense").
		SetShort("D").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Defense points").
		Register(cmd)

	ctx.AddImage, _ = ra.NewString("image").
		SetShort("i").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Image URL (the deck's fallback image if empty)").
		Register(cmd)

	ctx.AddJson, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output the created card as JSON").
		Register(cmd)

	ctx.AddUsed, _ = parent.RegisterCmd(cmd)
}

func runAdd(opts AppOptions, fields cardFields, jsonOutput bool) {
	app, err := NewApp(opts)
	if err != nil {
		Fatal(err)
	}

	// Only prompt for the image when prompting for everything.
	if opts.Interactive {
		fields, err = promptMissing(app.Prompter, fields, fields.isEmpty())
		if err != nil {
			Fatal(err)
		}
	}

	card, err := app.Client.CreateCard(context.Background(), fields.input())
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(NewCardOutput(card)); err != nil {
			Fatal(err)
		}
		return
	}

	PrintSuccess("Created card %s %q", RenderID(card.ID), card.Name)
}
