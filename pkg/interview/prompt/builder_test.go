package prompt

import (
	"strings"
	"testing"

	"mock-interview-be/internal/catalog"
	"mock-interview-be/pkg/store"
)

func engineeringDomain(t *testing.T) *catalog.DomainTemplate {
	t.Helper()
	domain, err := catalog.Get(catalog.DomainEngineering)
	if err != nil {
		t.Fatalf("catalog.Get: %v", err)
	}
	return domain
}

func fullProfile() store.Profile {
	return store.Profile{
		store.ProfileFieldName:       "Ada",
		store.ProfileFieldBackground: "Backend engineer, 6 years",
		store.ProfileFieldGoals:      "Staff engineer role",
	}
}

func TestQuestionPromptTruncatesResumeToPrefix(t *testing.T) {
	resume := strings.Repeat("r", 5000)
	p := NewQuestionBuilder(engineeringDomain(t), fullProfile(), resume, "", "", 1).Build()

	want := "Resume:\n" + resume[:1000] + "\n"
	if !strings.Contains(p, want) {
		t.Fatal("prompt does not contain the exact 1000-character resume prefix")
	}
	if strings.Contains(p, resume[:1001]) {
		t.Fatal("prompt contains more than 1000 resume characters")
	}
}

func TestQuestionPromptShortDocumentsAreKeptWhole(t *testing.T) {
	p := NewQuestionBuilder(engineeringDomain(t), fullProfile(), "short resume", "short jd", "", 1).Build()
	if !strings.Contains(p, "Resume:\nshort resume") {
		t.Error("short resume was altered")
	}
	if !strings.Contains(p, "Job Description:\nshort jd") {
		t.Error("short job description was altered")
	}
}

func TestQuestionPromptOmitsEmptySections(t *testing.T) {
	p := NewQuestionBuilder(engineeringDomain(t), store.Profile{}, "", "", "", 1).Build()

	if strings.Contains(p, "Resume:") {
		t.Error("empty resume still produced a Resume section")
	}
	if strings.Contains(p, "Job Description:") {
		t.Error("empty job description still produced a section")
	}
	if strings.Contains(p, "User Info:") {
		t.Error("empty profile still produced a User Info line")
	}
}

func TestQuestionPromptTranscript(t *testing.T) {
	domain := engineeringDomain(t)

	fresh := NewQuestionBuilder(domain, fullProfile(), "", "", "", 1).Build()
	if !strings.Contains(fresh, "Interview just started.") {
		t.Error("empty transcript should produce the started marker")
	}

	transcript := "\nQ: First question?\nA: First answer."
	ongoing := NewQuestionBuilder(domain, fullProfile(), "", "", transcript, 2).Build()
	if !strings.Contains(ongoing, transcript) {
		t.Error("transcript was not included verbatim")
	}
	if strings.Contains(ongoing, "Interview just started.") {
		t.Error("started marker should not appear with a non-empty transcript")
	}
}

func TestQuestionPromptSuggestedQuestion(t *testing.T) {
	domain := engineeringDomain(t)

	p := NewQuestionBuilder(domain, fullProfile(), "", "", "", 3).Build()
	if !strings.Contains(p, `Suggested question from the template (optional): "`+domain.Questions[2]+`"`) {
		t.Error("suggested question does not match the 1-based template index")
	}

	// Past the end of the template list the slot is empty.
	overflow := NewQuestionBuilder(domain, fullProfile(), "", "", "", len(domain.Questions)+1).Build()
	if !strings.Contains(overflow, `Suggested question from the template (optional): ""`) {
		t.Error("overflow index should leave an empty suggested-question slot")
	}
}

func TestQuestionPromptIncludesPersonaAndProfile(t *testing.T) {
	domain := engineeringDomain(t)
	p := NewQuestionBuilder(domain, fullProfile(), "", "", "", 1).Build()

	if !strings.HasPrefix(p, domain.Persona) {
		t.Error("prompt should start with the domain persona verbatim")
	}
	if !strings.Contains(p, "User Info: Name: Ada, Background: Backend engineer, 6 years, Goals: Staff engineer role.") {
		t.Error("profile line is missing or malformed")
	}
	if !strings.Contains(p, "Only output the next question, nothing else.") {
		t.Error("output instruction missing")
	}
}

func TestSummaryPrompt(t *testing.T) {
	domain := engineeringDomain(t)
	qaHistory := []store.QARecord{
		{Question: "Q one?", Answer: "A one."},
		{Question: "Q two?", Answer: "A two."},
	}

	p := NewSummaryBuilder(domain, qaHistory, fullProfile(), 2).Build()

	if !strings.Contains(p, "Based on this Software Engineering interview") {
		t.Error("summary prompt should name the domain")
	}
	if !strings.Contains(p, "Q: Q one?\nA: A one.\n\nQ: Q two?\nA: A two.") {
		t.Error("Q/A pairs should be concatenated in order, separated by blank lines")
	}
	for _, section := range []string{
		"1. Overall Assessment",
		"2. Key Strengths",
		"3. Areas for Development",
		"4. Pitfalls",
		"5. Recommendation",
	} {
		if !strings.Contains(p, section) {
			t.Errorf("summary prompt missing section %q", section)
		}
	}
	if !strings.Contains(p, `"Score: N/100"`) {
		t.Error("summary prompt missing the score phrasing contract")
	}
	if !strings.Contains(p, "User Score: 2") {
		t.Error("summary prompt missing the heuristic score context")
	}
	if !strings.Contains(p, "Name: Ada") {
		t.Error("summary prompt missing the profile context")
	}
}

func TestBuildersAreDeterministic(t *testing.T) {
	domain := engineeringDomain(t)
	a := NewQuestionBuilder(domain, fullProfile(), "resume", "jd", "\nQ: q\nA: a", 2).Build()
	b := NewQuestionBuilder(domain, fullProfile(), "resume", "jd", "\nQ: q\nA: a", 2).Build()
	if a != b {
		t.Error("question builder is not deterministic")
	}
}
