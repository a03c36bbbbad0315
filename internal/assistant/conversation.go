package assistant

import (
	"github.com/google/uuid"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
)

// Conversation is the append-only chat transcript. One question at a time:
// the busy flag mirrors the disabled send affordance while a question is in
// flight, so there is no queueing and no concurrent mutation.
type Conversation struct {
	engine   *Engine
	messages []models.ChatMessage
	busy     bool
}

// NewConversation creates an empty conversation backed by the given engine.
func NewConversation(engine *Engine) *Conversation {
	return &Conversation{engine: engine}
}

// Ask appends the user turn, answers it over the snapshot, appends the
// assistant turn, and returns the result. Re-entrant calls are rejected.
func (c *Conversation) Ask(text string, expenses []models.Expense) (Result, error) {
	if c.busy {
		return Result{}, apperrors.ErrBusy
	}
	c.busy = true
	defer func() { c.busy = false }()

	c.messages = append(c.messages, models.ChatMessage{
		ID:   uuid.NewString(),
		Role: models.RoleUser,
		Text: text,
	})

	result := c.engine.Ask(text, expenses)

	c.messages = append(c.messages, models.ChatMessage{
		ID:   uuid.NewString(),
		Role: models.RoleAssistant,
		Text: result.Answer,
		Data: result.Data,
	})
	return result, nil
}

// Messages returns the transcript in request order.
func (c *Conversation) Messages() []models.ChatMessage {
	return c.messages
}
