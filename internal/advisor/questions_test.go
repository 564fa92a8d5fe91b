package advisor

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionsCatalog(t *testing.T) {
	qs := Questions()
	require.Len(t, qs, 8)
	ids := make([]string, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
		assert.NotEmpty(t, q.Options, q.ID)
	}
	assert.Equal(t, []string{"motivation", "skills", "idea", "commitment", "resources", "location", "structure", "goals"}, ids)
	assert.True(t, qs[3].HasOther)

	qs[0].Options[0] = "mutated"
	assert.Equal(t, "Gain income quickly", Questions()[0].Options[0])
}

func TestValidateComplete(t *testing.T) {
	assert.NoError(t, completeAnswers("", "").Validate())
}

func TestValidateMissingAndUnknown(t *testing.T) {
	a := completeAnswers("", "")
	delete(a, QuestionGoals)
	a[QuestionIdea] = "Maybe later"
	err := a.Validate()
	require.True(t, errors.Is(err, ErrInvalidAnswers))
	assert.Contains(t, err.Error(), "goals is required")
	assert.Contains(t, err.Error(), "idea has an unknown option")
}

func TestValidateOtherRequiresText(t *testing.T) {
	a := completeAnswers("", OptionOther)
	assert.True(t, errors.Is(a.Validate(), ErrInvalidAnswers))

	a[KeyCommitmentOther] = "Weekends"
	assert.NoError(t, a.Validate())
}

func TestNormalizeDropsOtherUnlessSelected(t *testing.T) {
	a := completeAnswers("", "")
	a[KeyCommitmentOther] = "ignored"
	a["unexpected"] = "x"
	n := a.Normalize()
	_, hasOther := n[KeyCommitmentOther]
	_, hasUnexpected := n["unexpected"]
	assert.False(t, hasOther)
	assert.False(t, hasUnexpected)
}

func TestNormalizeCapsOtherLength(t *testing.T) {
	a := completeAnswers("", OptionOther)
	a[KeyCommitmentOther] = strings.Repeat("é", maxOtherLength+50)
	n := a.Normalize()
	assert.Equal(t, maxOtherLength, len([]rune(n[KeyCommitmentOther])))
}

func TestOrderedFollowsCatalog(t *testing.T) {
	a := completeAnswers("", OptionOther)
	a[KeyCommitmentOther] = "Nights"
	entries := a.Ordered()
	require.Len(t, entries, 9)
	assert.Equal(t, QuestionMotivation, entries[0].Key)
	assert.Equal(t, KeyCommitmentOther, entries[8].Key)
}
