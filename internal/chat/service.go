// Package chat orchestrates the portfolio chat assistant: a remote model
// when one is configured, the rule-based responder otherwise.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/adarshvish/portfolio-api/internal/chatbot"
	"github.com/adarshvish/portfolio-api/internal/logger"
)

// Completer defines the interface for remote chat completions.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Service answers chat messages.
type Service struct {
	llm       Completer // nil when no API key is configured
	responder *chatbot.Responder
	system    string
	log       *logger.Logger
}

// NewService creates a chat service. llm may be nil, in which case every
// message is answered locally from the knowledge base.
func NewService(llm Completer, kb *chatbot.KnowledgeBase, log *logger.Logger) *Service {
	return &Service{
		llm:       llm,
		responder: chatbot.NewResponder(kb),
		system:    buildSystemPrompt(kb),
		log:       log.Component("chat"),
	}
}

// Reply answers a chat message. fromModel reports whether the reply came
// from the remote model. A remote failure is returned to the caller for
// status mapping; an empty remote reply falls back to the local responder.
func (s *Service) Reply(ctx context.Context, message string) (reply string, fromModel bool, err error) {
	if s.llm == nil {
		return s.responder.Respond(message), false, nil
	}

	reply, err = s.llm.Complete(ctx, s.system, message)
	if err != nil {
		return "", false, err
	}

	if strings.TrimSpace(reply) == "" {
		s.log.Warn().Msg("model returned an empty reply, answering locally")
		return s.responder.Respond(message), false, nil
	}

	return reply, true, nil
}

// buildSystemPrompt embeds the knowledge base so the model answers about
// the actual portfolio instead of inventing one.
func buildSystemPrompt(kb *chatbot.KnowledgeBase) string {
	skills, _ := json.Marshal(kb.Skills)
	projects, _ := json.Marshal(kb.Projects)
	experience, _ := json.Marshal(kb.Experience)

	return fmt.Sprintf(`You are %s, an AI assistant for %s's portfolio website. You have access to this information:
- Skills: %s
- Projects: %s
- Experience: %s
- Contact: %s
- Education: %s

Provide helpful, accurate responses about the portfolio. Keep responses conversational and informative.`,
		kb.Assistant, kb.Owner, skills, projects, experience, kb.Contact, kb.Education)
}
