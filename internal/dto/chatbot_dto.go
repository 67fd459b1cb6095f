package dto

import (
	"github.com/google/uuid"
)

// ChatMessageDTO is one turn of the client-held conversation. The server is
// stateless: the full history is replayed on every request.
type ChatMessageDTO struct {
	Role    string `json:"role" validate:"required,oneof=user assistant system"`
	Content string `json:"content" validate:"required"`
}

type ChatRequest struct {
	Message             string           `json:"message" validate:"required"`
	ConversationHistory []ChatMessageDTO `json:"conversationHistory" validate:"dive"`
}

// ChatLitepaperRef is the reference bundle returned when a chat turn produced
// a persisted litepaper.
type ChatLitepaperRef struct {
	Id          uuid.UUID          `json:"id"`
	ProjectName string             `json:"projectName"`
	Documents   *DocumentsResponse `json:"documents"`
}

type ChatResponse struct {
	Response  string            `json:"response"`
	Litepaper *ChatLitepaperRef `json:"litepaper,omitempty"`
}
