// Package seed installs scripted demo tickets at startup.
package seed

import (
	"time"

	"github.com/supportdesk-ai/ticket-chat-platform/internal/model"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/store"
)

type fixture struct {
	id      string
	product string
	turns   []model.Turn
}

var fixtures = []fixture{
	{
		id:      "TICKET001",
		product: "mouse",
		turns: []model.Turn{
			model.UserTurn("Hi, my wireless mouse is not working anymore."),
			model.BotTurn("👋 Hello! I'm here to assist you with your mouse issue. May I know when you purchased it?"),
			model.UserTurn("March 2024"),
			model.BotTurn("✅ Your mouse is still under warranty."),
			model.BotTurn("Let's troubleshoot. Is there any LED indicator lighting up on the mouse?"),
			model.UserTurn("Nope, no lights."),
			model.BotTurn("Could you test it on a different computer or USB port?"),
			model.UserTurn("Yes, still no response."),
			model.BotTurn("🤖 Mouse Bot: Based on the behavior, the internal sensor might be damaged."),
			model.BotTurn("✅ Verified. You're eligible for a free replacement."),
			model.UserTurn("No thanks, this was perfect."),
			model.BotTurn("📌 Ticket ID: TICKET001 has been marked as resolved with replacement issued."),
		},
	},
	{
		id:      "TICKET002",
		product: "keyboard",
		turns: []model.Turn{
			model.UserTurn("Hi, some keys on my keyboard are stuck and won't press down properly."),
			model.BotTurn("👋 Hello! I'm here to help. Which specific keys are giving you trouble?"),
			model.UserTurn("Spacebar, Shift and A."),
			model.BotTurn("Got it. Was there any liquid spill or dust recently?"),
			model.UserTurn("Just some crumbs I think."),
			model.BotTurn("Okay. Try turning it upside down and gently tapping it."),
			model.UserTurn("Done. A little improvement."),
			model.BotTurn("🤖 Keyboard Bot: Welcome! You may need a deep cleaning service."),
			model.UserTurn("Yes, that would help."),
			model.BotTurn("🛠️ Service ticket created. Pickup scheduled in 48 hours."),
			model.BotTurn("📌 Ticket TICKET002 is now active and awaiting pickup for cleaning."),
		},
	},
	{
		id:      "TICKET003",
		product: "monitor",
		turns: []model.Turn{
			model.UserTurn("My monitor is not powering on. The screen is completely black."),
			model.BotTurn("👋 Hi! Let's check that together. Is the power cable plugged in tightly?"),
			model.UserTurn("Yes, I double-checked."),
			model.BotTurn("Have you tried using another wall socket or a different cable?"),
			model.UserTurn("Yes, I tried both. Still the same."),
			model.BotTurn("🤖 Monitor Bot: This seems to be a power board failure."),
			model.UserTurn("Nov 2023"),
			model.BotTurn("✅ Great, still under warranty."),
			model.BotTurn("📦 Replacement pickup has been scheduled from your address."),
			model.UserTurn("No, you've covered everything."),
			model.BotTurn("📌 Ticket TICKET003 has been logged with replacement in progress."),
		},
	},
}

// DemoTickets loads the scripted demo tickets into the store.
func DemoTickets(st *store.TicketStore) {
	now := time.Now()
	for _, f := range fixtures {
		t := model.CreateTicket(f.id, f.product, now)
		t.History = append(t.History, f.turns...)
		st.Seed(t)
	}
}
