package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

func FormatJournalPrompt(today int) (string, string) {
	title := "Timeline reminder"
	if today == 0 {
		return title, "Nothing on your timeline today. Add what happened?"
	}
	msg := fmt.Sprintf("You logged %d event(s) today. Anything to add?", today)
	return title, msg
}
