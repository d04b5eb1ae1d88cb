package cli

import (
	"context"
	"fmt"

	"github.com/amterp/ra"

	"github.com/sirxnine/cartas/internal/model"
)

func registerList(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("list")
	cmd.SetDescription("List cards")

	ctx.ListQuery, _ = ra.NewString("query").
		SetShort("q").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Only cards whose name or description contains these words").
		Register(cmd)

	ctx.ListJson, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output as JSON").
		Register(cmd)

	ctx.ListUsed, _ = parent.RegisterCmd(cmd)
}

func runList(opts AppOptions, query string, jsonOutput bool) {
	app, err := NewApp(opts)
	if err != nil {
		Fatal(err)
	}

	cards, err := app.Client.ListCards(context.Background(), query)
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(NewListOutput(cards)); err != nil {
			Fatal(err)
		}
		return
	}

	if len(cards) == 0 {
		if query != "" {
			PrintInfo("No cards match %q", query)
		} else {
			PrintInfo("No cards yet")
		}
		return
	}

	for i := range cards {
		printCardLine(&cards[i])
	}
	fmt.Println(RenderMuted(fmt.Sprintf("\n%d cards", len(cards))))
}

func printCardLine(card *model.Card) {
	fmt.Printf("  %s  %s  %s\n", RenderID(card.ID), card.Name, RenderStats(card.Attack, card.Defense))
}
