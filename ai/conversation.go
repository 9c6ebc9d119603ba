package ai

import (
	"sync"

	"github.com/ollama/ollama/api"
	"github.com/twinj/uuid"
)

// conversationRegistry keeps per-handle chat histories in memory.
// Handles are opaque to clients; an unknown handle simply starts a fresh
// conversation under that handle.
type conversationRegistry struct {
	mu       sync.Mutex
	sessions map[string][]api.Message
}

func newConversationRegistry() *conversationRegistry {
	return &conversationRegistry{
		sessions: make(map[string][]api.Message),
	}
}

func (r *conversationRegistry) create() string {
	handle := uuid.NewV4().String()

	r.mu.Lock()
	r.sessions[handle] = []api.Message{}
	r.mu.Unlock()

	return handle
}

// snapshot returns a copy of the history plus the new user turn appended,
// without committing it yet (the provider call may still fail)
func (r *conversationRegistry) snapshot(handle string, message string) []api.Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	history := r.sessions[handle]
	out := make([]api.Message, len(history), len(history)+1)
	copy(out, history)

	return append(out, api.Message{Role: "user", Content: message})
}

// commit stores the exchanged turns after a successful provider call
func (r *conversationRegistry) commit(handle string, message string, reply string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[handle] = append(r.sessions[handle],
		api.Message{Role: "user", Content: message},
		api.Message{Role: "assistant", Content: reply},
	)
}

func (r *conversationRegistry) length(handle string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions[handle])
}
