package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/amterp/ra"

	"github.com/sirxnine/cartas/internal/model"
	"github.com/sirxnine/cartas/internal/util"
)

const completionTimeout = 500 * time.Millisecond

// completeCards returns card ids and name slugs matching the given prefix.
// Completion runs during ParseOrExit, before flags are parsed, so the config
// and server flags are read straight from os.Args. No running server means no
// completions.
func completeCards(toComplete string) ([]string, ra.CompletionDirective) {
	app, err := NewApp(AppOptions{
		ConfigPath: flagFromArgs(os.Args, "config", "c"),
		Server:     flagFromArgs(os.Args, "server", "s"),
	})
	if err != nil {
		return nil, ra.CompletionDirectiveNoFileComp
	}

	ctx, cancel := context.WithTimeout(context.Background(), completionTimeout)
	defer cancel()

	cards, err := app.Client.ListCards(ctx, "")
	if err != nil {
		return nil, ra.CompletionDirectiveNoFileComp
	}
	return cardCompletions(cards, toComplete), ra.CompletionDirectiveNoFileComp
}

// cardCompletions lists ids and slugs with the given prefix.
func cardCompletions(cards []model.Card, prefix string) []string {
	var result []string
	for _, card := range cards {
		if id := strconv.Itoa(card.ID); strings.HasPrefix(id, prefix) {
			result = append(result, id)
		}
		if slug := util.Slug(card.Name); slug != "" && strings.HasPrefix(slug, prefix) {
			result = append(result, slug)
		}
	}
	return result
}

// flagFromArgs scans the argument list for an explicit --long/-short flag value.
func flagFromArgs(args []string, long, short string) string {
	longEq, shortEq := "--"+long+"=", "-"+short+"="
	for i, arg := range args {
		// --flag=value or -f=value (skip empty values so fallback logic runs)
		if strings.HasPrefix(arg, longEq) {
			if v := strings.TrimPrefix(arg, longEq); v != "" {
				return v
			}
		}
		if strings.HasPrefix(arg, shortEq) {
			if v := strings.TrimPrefix(arg, shortEq); v != "" {
				return v
			}
		}
		// --flag value or -f value
		if (arg == "--"+long || arg == "-"+short) && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// registerCompletion adds the "cartas completion <shell>" command.
func registerCompletion(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("completion")
	cmd.SetDescription("Output shell completion script")

	ctx.CompletionShell, _ = ra.NewString("shell").
		SetUsage("Shell type").
		SetEnumConstraint([]string{"bash", "zsh"}).
		Register(cmd)

	ctx.CompletionUsed, _ = parent.RegisterCmd(cmd)
}

// runCompletion outputs the shell completion script to stdout.
func runCompletion(shell string, rootCmd *ra.Cmd) {
	var err error
	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(os.Stdout)
	case "zsh":
		err = rootCmd.GenZshCompletion(os.Stdout)
	default:
		Fatal(fmt.Errorf("unsupported shell: %s (supported: bash, zsh)", shell))
	}
	if err != nil {
		Fatal(fmt.Errorf("failed to generate completion script: %w", err))
	}
}
