package prompt

import (
	"strconv"
	"strings"

	"mock-interview-be/internal/catalog"
	"mock-interview-be/pkg/store"
)

// contextCharLimit caps how much of each uploaded document reaches the
// prompt. The cut is a plain prefix, not a token- or word-boundary cut.
const contextCharLimit = 1000

// startedMarker stands in for the transcript before the first answer.
const startedMarker = "Interview just started."

// QuestionBuilder assembles the next-question prompt from the domain
// persona, the user's profile and documents, the running transcript, and the
// template question for the current index. Pure: same inputs, same prompt.
type QuestionBuilder struct {
	domain        *catalog.DomainTemplate
	profile       store.Profile
	resumeText    string
	jobDescText   string
	transcript    string
	questionIndex int
}

func NewQuestionBuilder(
	domain *catalog.DomainTemplate,
	profile store.Profile,
	resumeText string,
	jobDescText string,
	transcript string,
	questionIndex int,
) *QuestionBuilder {
	return &QuestionBuilder{
		domain:        domain,
		profile:       profile,
		resumeText:    resumeText,
		jobDescText:   jobDescText,
		transcript:    transcript,
		questionIndex: questionIndex,
	}
}

func (b *QuestionBuilder) Build() string {
	var prompt strings.Builder

	prompt.WriteString(b.domain.Persona)
	prompt.WriteString("\n")

	b.writeProfile(&prompt)
	b.writeDocument(&prompt, "Resume", b.resumeText)
	b.writeDocument(&prompt, "Job Description", b.jobDescText)

	prompt.WriteString("\nYou are conducting an interview. Here is the conversation so far:\n")
	if b.transcript != "" {
		prompt.WriteString(b.transcript)
	} else {
		prompt.WriteString(startedMarker)
	}
	prompt.WriteString("\n\n")

	prompt.WriteString("Suggested question from the template (optional): \"")
	prompt.WriteString(b.templateQuestion())
	prompt.WriteString("\"\n\n")

	prompt.WriteString("Based on the user's previous answers, resume, and job description, ask the next most relevant interview question.\n")
	prompt.WriteString("You may use the template question, rephrase it, or ask a follow-up that builds on the user's last answer.\n")
	prompt.WriteString("Make the interview feel natural and adaptive. Only output the next question, nothing else.\n")

	return prompt.String()
}

func (b *QuestionBuilder) writeProfile(prompt *strings.Builder) {
	if b.profile.IsEmpty() {
		return
	}
	prompt.WriteString("User Info: Name: ")
	prompt.WriteString(b.profile.Name())
	prompt.WriteString(", Background: ")
	prompt.WriteString(b.profile.Background())
	prompt.WriteString(", Goals: ")
	prompt.WriteString(b.profile.Goals())
	prompt.WriteString(".\n")
}

func (b *QuestionBuilder) writeDocument(prompt *strings.Builder, label, text string) {
	if text == "" {
		return
	}
	prompt.WriteString("\n")
	prompt.WriteString(label)
	prompt.WriteString(":\n")
	prompt.WriteString(truncate(text, contextCharLimit))
	prompt.WriteString("\n")
}

// templateQuestion returns the 1-based template question, or an empty string
// when the index runs past the template list.
func (b *QuestionBuilder) templateQuestion() string {
	if b.questionIndex < 1 || b.questionIndex > len(b.domain.Questions) {
		return ""
	}
	return b.domain.Questions[b.questionIndex-1]
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

// SummaryBuilder assembles the final-summary prompt: the full Q/A recap, the
// requested report structure, and the closing score contract the extractor
// parses back out.
type SummaryBuilder struct {
	domain    *catalog.DomainTemplate
	qaHistory []store.QARecord
	profile   store.Profile
	score     int
}

func NewSummaryBuilder(
	domain *catalog.DomainTemplate,
	qaHistory []store.QARecord,
	profile store.Profile,
	score int,
) *SummaryBuilder {
	return &SummaryBuilder{
		domain:    domain,
		qaHistory: qaHistory,
		profile:   profile,
		score:     score,
	}
}

func (b *SummaryBuilder) Build() string {
	var prompt strings.Builder

	prompt.WriteString("Based on this ")
	prompt.WriteString(b.domain.DisplayName)
	prompt.WriteString(" interview, provide a concise professional summary:\n")

	for i, qa := range b.qaHistory {
		if i > 0 {
			prompt.WriteString("\n\n")
		}
		prompt.WriteString("Q: ")
		prompt.WriteString(qa.Question)
		prompt.WriteString("\nA: ")
		prompt.WriteString(qa.Answer)
	}
	prompt.WriteString("\n")

	prompt.WriteString("Generate a personal bulleted, organized summary with:\n")
	prompt.WriteString("1. Overall Assessment (2-3 sentences)\n")
	prompt.WriteString("2. Key Strengths (3-4 bullet points)\n")
	prompt.WriteString("3. Areas for Development (2-3 bullet points)\n")
	prompt.WriteString("4. Pitfalls (and websites/sources/links to study from, for better performance)\n")
	prompt.WriteString("5. Recommendation (Hire/Prepare and try again/Maybe with brief reason)\n")
	prompt.WriteString("End with the interview score in the exact form \"Score: N/100\".\n")

	// Profile and the accumulated heuristic score are advisory context; the
	// model decides the final score itself.
	prompt.WriteString("User Profile: Name: ")
	prompt.WriteString(b.profile.Name())
	prompt.WriteString(", Background: ")
	prompt.WriteString(b.profile.Background())
	prompt.WriteString(", Goals: ")
	prompt.WriteString(b.profile.Goals())
	prompt.WriteString("\nUser Score: ")
	prompt.WriteString(strconv.Itoa(b.score))

	return prompt.String()
}
