package domain

import "strings"

// Topic content is stored as a single markup string split into four fixed
// sections. The section names and the <h2>/<p> wrapper are a stable external
// contract: CSV import reconstructs content through this template and export
// recovers the sections by scanning for the same headings. Content authored
// with other headings is not representable and exports as empty sections.
const (
	SectionObjective = "Objective"
	SectionProcess   = "Process Explained"
	SectionTask      = "Task Breakdown"
	SectionSelfCheck = "Self Check"
)

// SectionNames lists the four canonical sections in storage order.
var SectionNames = []string{SectionObjective, SectionProcess, SectionTask, SectionSelfCheck}

// Sections holds the plain text of the four canonical content sections.
type Sections struct {
	Objective string
	Process   string
	Task      string
	SelfCheck string
}

// bySection returns the section texts keyed by canonical name.
func (s Sections) bySection() map[string]string {
	return map[string]string{
		SectionObjective: s.Objective,
		SectionProcess:   s.Process,
		SectionTask:      s.Task,
		SectionSelfCheck: s.SelfCheck,
	}
}

// RenderContent assembles the canonical content string from section texts.
// Every section is always rendered, even when empty, so that two contents
// built from the same sections compare byte-identical.
func RenderContent(s Sections) string {
	texts := s.bySection()

	var b strings.Builder
	for _, name := range SectionNames {
		b.WriteString("<h2>")
		b.WriteString(name)
		b.WriteString("</h2><p>")
		b.WriteString(texts[name])
		b.WriteString("</p>")
	}
	return b.String()
}

// ParseContent recovers section texts from a stored content string.
// Each section is located by its <h2> heading and runs until the next <h2>
// or the end of the string; paragraph tags are stripped. Sections whose
// heading is absent come back empty.
func ParseContent(content string) Sections {
	return Sections{
		Objective: extractSection(content, SectionObjective),
		Process:   extractSection(content, SectionProcess),
		Task:      extractSection(content, SectionTask),
		SelfCheck: extractSection(content, SectionSelfCheck),
	}
}

func extractSection(content, name string) string {
	heading := "<h2>" + name + "</h2>"
	start := strings.Index(content, heading)
	if start < 0 {
		return ""
	}
	rest := content[start+len(heading):]

	if next := strings.Index(rest, "<h2>"); next >= 0 {
		rest = rest[:next]
	}

	rest = strings.ReplaceAll(rest, "<p>", "")
	rest = strings.ReplaceAll(rest, "</p>", "")
	return strings.TrimSpace(rest)
}
