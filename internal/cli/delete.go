package cli

import (
	"context"
	"fmt"

	"github.com/amterp/ra"
)

func registerDelete(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("delete")
	cmd.SetDescription("Delete a card")

	ctx.DeleteCard, _ = ra.NewString("card").
		SetUsage("Card id or name").
		SetCompletionFunc(completeCards).
		Register(cmd)

	ctx.DeleteForce, _ = ra.NewBool("force").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Skip confirmation (required in non-interactive mode)").
		Register(cmd)

	ctx.DeleteUsed, _ = parent.RegisterCmd(cmd)
}

func runDelete(opts AppOptions, cardArg string, force bool) {
	app, err := NewApp(opts)
	if err != nil {
		Fatal(err)
	}

	ctx := context.Background()
	card, err := app.CardResolver.Resolve(ctx, cardArg)
	if err != nil {
		Fatal(err)
	}

	if !force {
		if !opts.Interactive {
			Fatal(fmt.Errorf("deleting card %q (%d) requires --force in non-interactive mode", card.Name, card.ID))
		}

		confirmed, err := app.Prompter.Confirm(
			fmt.Sprintf("¿Eliminar la carta %q (%d)?", card.Name, card.ID),
			false,
		)
		if err != nil {
			Fatal(err)
		}
		if !confirmed {
			PrintInfo("Cancelled")
			return
		}
	}

	if err := app.Client.DeleteCard(ctx, card.ID); err != nil {
		Fatal(err)
	}

	PrintSuccess("Deleted card %s %q", RenderID(card.ID), card.Name)
}
