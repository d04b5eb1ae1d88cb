package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/amterp/ra"

	"github.com/sirxnine/cartas/internal/model"
)

func registerShow(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("show")
	cmd.SetDescription("Display card details")

	ctx.ShowCard, _ = ra.NewString("card").
		SetUsage("Card id or name").
		SetCompletionFunc(completeCards).
		Register(cmd)

	ctx.ShowJson, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output as JSON").
		Register(cmd)

	ctx.ShowUsed, _ = parent.RegisterCmd(cmd)
}

func runShow(opts AppOptions, cardArg string, jsonOutput bool) {
	app, err := NewApp(opts)
	if err != nil {
		Fatal(err)
	}

	card, err := app.CardResolver.Resolve(context.Background(), cardArg)
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(NewCardOutput(card)); err != nil {
			Fatal(err)
		}
		return
	}

	printCard(card)
}

func printCard(card *model.Card) {
	const labelWidth = 8

	fmt.Println(TitleBox(card.Name))
	fmt.Println()

	fmt.Println(LabelValue("ID", RenderID(card.ID), labelWidth))
	fmt.Println(LabelValue("Stats", RenderStats(card.Attack, card.Defense), labelWidth))
	if card.ImageURL != "" {
		fmt.Println(LabelValue("Imagen", RenderURL(card.ImageURL), labelWidth))
	} else {
		fmt.Println(LabelValue("Imagen", RenderMuted("(ninguna)"), labelWidth))
	}

	fmt.Println()
	fmt.Println(Box(strings.TrimSpace(card.Description)))
}
