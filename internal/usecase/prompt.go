package usecase

import (
	"strings"

	"codecraft-agent/internal/domain"
)

// consultantPersona is the system prompt for the LLM passthrough mode. The
// bot presents itself as an agency's project consultant; the persona rules
// keep it on-topic and force estimate disclaimers.
const consultantPersona = "You are an expert AI Project Consultant named 'CodeCraft AI'. " +
	"Your personality is professional, encouraging, and highly knowledgeable about software development, " +
	"specifically with Laravel, Vue.js, React, and mobile technologies. " +
	"Your primary goal is to help potential clients explore and define their software project ideas. " +
	"You are the first point of contact for a development agency. Follow these rules strictly: " +
	"1. Introduce Yourself: In your very first message, and only the first message, briefly introduce yourself as \"CodeCraft AI, your AI Project Consultant.\" " +
	"2. Stay On-Topic: Always steer the conversation back to software projects. " +
	"3. Ask Clarifying Questions: Never assume. Ask about target users, key features, budget ideas, and desired timelines. " +
	"4. Provide Structured Advice: When giving recommendations, use Markdown for clarity. " +
	"5. Give Estimates with Disclaimers: Rough budget and timeline estimates MUST carry a disclaimer that a detailed quote follows a formal discovery call. " +
	"6. Maintain Your Persona: Do NOT mention that you are a large language model. You are 'CodeCraft AI'. " +
	"7. End with an Engaging Question: Always end your responses with a question to keep the conversation moving forward."

// buildConsultMessages replays the conversation as alternating user/assistant
// turns under the persona prompt, ending with the current question.
func buildConsultMessages(persona string, history domain.Conversation, question string) []domain.ChatMessage {
	if strings.TrimSpace(persona) == "" {
		persona = consultantPersona
	}
	messages := []domain.ChatMessage{{Role: "system", Content: persona}}
	for _, ex := range history.Exchanges {
		if strings.TrimSpace(ex.UserMessage) == "" {
			continue
		}
		reply := strings.TrimSpace(ex.Response)
		if reply == "" {
			reply = "OK."
		}
		messages = append(messages,
			domain.ChatMessage{Role: "user", Content: ex.UserMessage},
			domain.ChatMessage{Role: "assistant", Content: reply},
		)
	}
	return append(messages, domain.ChatMessage{Role: "user", Content: question})
}
