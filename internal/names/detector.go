// Package names guesses the candidate's name from resume text using
// pretrained named-entity recognition.
package names

import (
	"fmt"
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// maxHeadRunes caps how much text is fed to the NER model. Names appear near
// the top of a resume, and tagging a whole multi-page document is wasted work.
const maxHeadRunes = 2000

// Detect returns the most likely person name in the text, or "" if the model
// finds no person entity. The heuristic is intentionally simple: the first
// multi-word PERSON entity wins, falling back to the first PERSON entity of
// any length. It is a best guess, not a guarantee — resumes that open with
// reference names will fool it.
func Detect(text string) (string, error) {
	head := headSegment(text)
	if strings.TrimSpace(head) == "" {
		return "", nil
	}

	// Tag line by line. Resume headers stack the name, job title, and
	// contact details on separate lines; tagged as one document, the model
	// merges the name with the title that follows it.
	var persons []string
	for _, line := range strings.Split(head, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		doc, err := prose.NewDocument(line)
		if err != nil {
			return "", fmt.Errorf("failed to run entity recognition: %w", err)
		}
		for _, ent := range doc.Entities() {
			if ent.Label == "PERSON" {
				persons = append(persons, strings.TrimSpace(ent.Text))
			}
		}
	}
	return pickName(persons), nil
}

// pickName selects the first multi-word name, else the first name found.
func pickName(persons []string) string {
	for _, name := range persons {
		if len(strings.Fields(name)) > 1 {
			return name
		}
	}
	if len(persons) > 0 {
		return persons[0]
	}
	return ""
}

// headSegment returns the first maxHeadRunes runes, cut back to the last
// line break so the model never sees a half line.
func headSegment(text string) string {
	runes := []rune(text)
	if len(runes) <= maxHeadRunes {
		return text
	}
	head := string(runes[:maxHeadRunes])
	if idx := strings.LastIndexByte(head, '\n'); idx > 0 {
		head = head[:idx]
	}
	return head
}
