package names

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_EmptyText(t *testing.T) {
	name, err := Detect("")
	require.NoError(t, err)
	assert.Equal(t, "", name)

	name, err = Detect("   \n\t  ")
	require.NoError(t, err)
	assert.Equal(t, "", name)
}

func TestDetect_ResumeHeader(t *testing.T) {
	text := "John Smith\n" +
		"Senior Software Engineer\n" +
		"john.smith@example.com | (212) 555-0173\n" +
		"\n" +
		"Experience with Python, SQL and Docker in production systems."

	name, err := Detect(text)
	require.NoError(t, err)
	assert.Equal(t, "John Smith", name, "the title line must not bleed into the detected name")
}

func TestPickName_PrefersMultiWord(t *testing.T) {
	assert.Equal(t, "Jane Doe", pickName([]string{"Smith", "Jane Doe", "Bob Jones"}))
}

func TestPickName_FallsBackToFirst(t *testing.T) {
	assert.Equal(t, "Smith", pickName([]string{"Smith", "Jones"}))
}

func TestPickName_Empty(t *testing.T) {
	assert.Equal(t, "", pickName(nil))
}

func TestHeadSegment_ShortTextUnchanged(t *testing.T) {
	text := "Jane Doe\nSoftware Engineer"
	assert.Equal(t, text, headSegment(text))
}

func TestHeadSegment_CutsAtLineBreak(t *testing.T) {
	line := strings.Repeat("x", 100) + "\n"
	text := strings.Repeat(line, 50) // 5050 runes

	head := headSegment(text)
	assert.LessOrEqual(t, len([]rune(head)), maxHeadRunes)
	assert.Equal(t, byte('x'), head[len(head)-1], "head should end on a full line, not mid-line")
}
