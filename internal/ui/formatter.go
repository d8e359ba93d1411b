package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/ryo246912/gh-coding-agent-issue/internal/models"
)

func PadRight(str string, width int) string {
	w := runewidth.StringWidth(str)
	if w < width {
		return str + strings.Repeat(" ", width-w)
	}
	return str
}

// FormatActors renders suggested actors as a table, marking the coding agent with '*'
func FormatActors(actors []models.AssignableActor) string {
	if len(actors) == 0 {
		return "No assignable actors found.\n"
	}

	loginWidth := runewidth.StringWidth("LOGIN")
	for _, actor := range actors {
		loginWidth = max(loginWidth, runewidth.StringWidth(actor.Login))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %s %s %s\n", PadRight("LOGIN", loginWidth), PadRight("KIND", 5), "ID")
	marked := false
	for _, actor := range actors {
		marker := " "
		if !marked && actor.Kind == models.ActorKindBot {
			marker = "*"
			marked = true
		}
		fmt.Fprintf(&b, "%s %s %s %s\n",
			marker,
			PadRight(actor.Login, loginWidth),
			PadRight(string(actor.Kind), 5),
			actor.ID,
		)
	}
	return b.String()
}
