package cli

import (
	"context"

	"github.com/amterp/ra"

	"github.com/sirxnine/cartas/internal/editor"
)

func registerEdit(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("edit")
	cmd.SetDescription("Edit a card")

	ctx.EditCard, _ = ra.NewString("card").
		SetUsage("Card id or name").
		SetCompletionFunc(completeCards).
		Register(cmd)

	ctx.EditName, _ = ra.NewString("name").
		SetShort("n").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("New name").
		Register(cmd)

	ctx.EditDescription, _ = ra.NewString("description").
		SetShort("d").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("New description").
		Register(cmd)

	ctx.EditAttack, _ = ra.NewString("attack").
		SetShort("a").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("New attack points").
		Register(cmd)

	ctx.EditDefense, _ = ra.NewString("defense").
		SetShort("D").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("New defense points").
		Register(cmd)

	ctx.EditImage, _ = ra.NewString("image").
		SetShort("i").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("New image URL").
		Register(cmd)

	ctx.EditEditor, _ = ra.NewBool("editor").
		SetShort("e").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Edit the description in $EDITOR").
		Register(cmd)

	ctx.EditUsed, _ = parent.RegisterCmd(cmd)
}

// runEdit applies the given fields over the card's current values. With no
// fields and a terminal, every field is prompted for, prefilled.
func runEdit(opts AppOptions, cardArg string, changes cardFields, useEditor bool) {
	app, err := NewApp(opts)
	if err != nil {
		Fatal(err)
	}

	ctx := context.Background()
	card, err := app.CardResolver.Resolve(ctx, cardArg)
	if err != nil {
		Fatal(err)
	}

	if useEditor {
		description := card.Description
		if changes.Description != "" {
			description = changes.Description
		}
		edited, err := editor.NewEditor(app.Config.Editor).Edit(description)
		if err != nil {
			Fatal(err)
		}
		changes.Description = edited
	}

	fields := changes.over(fieldsFromCard(card))
	if changes.isEmpty() {
		if !opts.Interactive {
			PrintInfo("Nothing to change")
			return
		}
		fields, err = promptAll(app.Prompter, fields)
		if err != nil {
			Fatal(err)
		}
	}

	updated, err := app.Client.UpdateCard(ctx, card.ID, fields.input())
	if err != nil {
		Fatal(err)
	}

	PrintSuccess("Updated card %s %q", RenderID(updated.ID), updated.Name)
}
