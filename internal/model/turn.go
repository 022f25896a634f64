package model

// Author identifies who produced a turn.
type Author string

const (
	AuthorUser Author = "user"
	AuthorBot  Author = "bot"
)

// Turn is a single utterance in a ticket's history. History is
// append-only; turns are never edited or removed.
type Turn struct {
	Author Author `json:"author"`
	Text   string `json:"text"`
}

// UserTurn builds a user-authored turn.
func UserTurn(text string) Turn {
	return Turn{Author: AuthorUser, Text: text}
}

// BotTurn builds a bot-authored turn.
func BotTurn(text string) Turn {
	return Turn{Author: AuthorBot, Text: text}
}
