package models

// Role identifies who produced a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// CategoryTotal pairs a category label with its summed spend.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// Payload is the optional structured data attached to an assistant message,
// enabling rich rendering beyond the plain-text answer.
type Payload struct {
	Total      *float64        `json:"total,omitempty"`
	Count      *int            `json:"count,omitempty"`
	Category   string          `json:"category,omitempty"`
	Expenses   []Expense       `json:"expenses,omitempty"`
	Categories []CategoryTotal `json:"categories,omitempty"`
}

// ChatMessage is one turn in the assistant transcript. Messages are appended
// monotonically and never mutated or removed.
type ChatMessage struct {
	ID   string   `json:"id"`
	Role Role     `json:"role"`
	Text string   `json:"text"`
	Data *Payload `json:"data,omitempty"`
}
