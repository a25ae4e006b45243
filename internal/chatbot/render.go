package chatbot

import (
	"fmt"
	"html"
	"strings"

	"codecraft-agent/internal/domain"
)

// escape is the single point where user-controlled text enters a rendered
// document. Everything interpolated from outside goes through it.
func escape(s string) string {
	return html.EscapeString(s)
}

// RenderRecommendation turns a recommendation record into the HTML document
// consumed by the existing front end. Section order and CSS classes are part
// of the interface and must not change.
func RenderRecommendation(t domain.ResponseTemplate) string {
	var b strings.Builder
	b.WriteString("<div class='response-content'>")

	b.WriteString("<div class='overview-section'>")
	fmt.Fprintf(&b, "<p>📌 This recommendation covers %d key features and a %d-part technology stack.</p>",
		len(t.Features), len(t.Technologies))
	b.WriteString("</div>")

	b.WriteString("<div class='advice-section'>")
	b.WriteString("<h3>💡 Project Recommendations</h3>")
	b.WriteString("<p>" + t.Advice + "</p>")
	b.WriteString("</div>")

	b.WriteString("<div class='duration-section'>")
	b.WriteString("<h3>⏱️ Development Timeline</h3>")
	b.WriteString("<p>" + t.Duration + "</p>")
	b.WriteString("</div>")

	writeListSection(&b, "features-section", "✨ Recommended Features", t.Features)
	writeListSection(&b, "tech-section", "🔧 Technology Stack", t.Technologies)

	b.WriteString("<div class='budget-section'>")
	b.WriteString("<h3>💰 Investment Overview</h3>")
	b.WriteString("<div style='background: #f8f9fa; padding: 15px; border-radius: 5px; border-left: 4px solid #007cba;'>")
	b.WriteString(t.Budget)
	b.WriteString("</div>")
	b.WriteString("</div>")

	writeListSection(&b, "terms-section", "📋 Project Terms", t.Terms)

	b.WriteString("<div class='summary-section' style='background: #e7f3ff; padding: 20px; border-radius: 8px; border-left: 5px solid #007cba;'>")
	b.WriteString("<h3>📋 Executive Summary</h3>")
	b.WriteString("<p><strong>" + t.Summary + "</strong></p>")
	b.WriteString("</div>")

	b.WriteString("<div class='questions-section'>")
	b.WriteString("<h3>❓ Next Steps</h3>")
	b.WriteString("<p>Consider these important questions for your project planning:</p>")
	b.WriteString("<ul>")
	for _, q := range t.Questions {
		b.WriteString("<li>" + q + "</li>")
	}
	b.WriteString("</ul>")
	b.WriteString("</div>")

	b.WriteString("</div>")
	return b.String()
}

func writeListSection(b *strings.Builder, class, heading string, items []string) {
	b.WriteString("<div class='" + class + "'>")
	b.WriteString("<h3>" + heading + "</h3>")
	b.WriteString("<ul>")
	for _, item := range items {
		b.WriteString("<li>" + item + "</li>")
	}
	b.WriteString("</ul>")
	b.WriteString("</div>")
}

// RenderFollowup builds the short continuation document: a fixed preamble, an
// escaped echo of the user's message, and one prompt drawn from the
// category's pool.
func RenderFollowup(userMessage string, category domain.Category) string {
	var b strings.Builder
	b.WriteString("<div class='response-content followup'>")
	b.WriteString("<p>Following up on your " + category.Label() + ":</p>")
	b.WriteString("<p class='user-echo'>&ldquo;" + escape(userMessage) + "&rdquo;</p>")
	b.WriteString("<p>" + pickFollowup(category) + "</p>")
	b.WriteString("</div>")
	return b.String()
}

// RenderPlain wraps free-form collaborator output (LLM mode) in the standard
// document shell. The text is escaped: the collaborator is opaque and its
// output is not trusted markup.
func RenderPlain(text string) string {
	return "<div class='response-content'><p>" + escape(text) + "</p></div>"
}

// CollaboratorFallback is rendered when the LLM collaborator fails. The turn
// is not recorded.
const collaboratorFallback = "😥 Sorry, I'm having trouble connecting to my brain right now. Please try again in a moment."

// RenderCollaboratorFallback returns the fixed apology document for a failed
// collaborator call.
func RenderCollaboratorFallback() string {
	return "<div class='response-content error'><p>" + collaboratorFallback + "</p></div>"
}
