package models

// Role identifies the author of a chat turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatTurn is one message of the chat transcript.
type ChatTurn struct {
	Role    Role
	Content string
}

// Answer is the AI query response.
type Answer struct {
	SQL    string `json:"sql"`
	Result string `json:"result,omitempty"`
}

// Content is the text shown as the assistant turn.
func (a Answer) Content() string {
	if a.Result == "" {
		return a.SQL
	}
	return a.SQL + "\n" + a.Result
}

// Transcript is an append-only list of chat turns that keeps at most Limit
// of the newest turns. Limit <= 0 keeps everything.
//
// Append never mutates the receiver, so older copies stay valid.
type Transcript struct {
	turns []ChatTurn
	limit int
}

func NewTranscript(limit int) Transcript {
	return Transcript{limit: limit}
}

// Append returns a transcript with turn added, dropping the oldest turns
// past the limit.
func (t Transcript) Append(turn ChatTurn) Transcript {
	start := 0
	if t.limit > 0 && len(t.turns)+1 > t.limit {
		start = len(t.turns) + 1 - t.limit
	}

	next := make([]ChatTurn, 0, len(t.turns)-start+1)
	next = append(next, t.turns[start:]...)
	next = append(next, turn)

	return Transcript{turns: next, limit: t.limit}
}

// Turns returns a copy of the retained turns, oldest first.
func (t Transcript) Turns() []ChatTurn {
	return append([]ChatTurn(nil), t.turns...)
}

func (t Transcript) Len() int   { return len(t.turns) }
func (t Transcript) Limit() int { return t.limit }

// Last returns the newest turn.
func (t Transcript) Last() (ChatTurn, bool) {
	if len(t.turns) == 0 {
		return ChatTurn{}, false
	}
	return t.turns[len(t.turns)-1], true
}
