package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeAnswers(skills, commitment string) Answers {
	a := Answers{}
	for _, q := range questions {
		a[q.ID] = q.Options[0]
	}
	if skills != "" {
		a[QuestionSkills] = skills
	}
	if commitment != "" {
		a[QuestionCommitment] = commitment
	}
	return a
}

func titles(recs []BusinessRecommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}

func TestFallbackRecommendationsCreative(t *testing.T) {
	recs := FallbackRecommendations(completeAnswers("Creative work (design, content, marketing)", "20–40 hours/week with moderate funding or savings"))
	require.Len(t, recs, 3)
	assert.Equal(t, []string{TitleFreelanceCreative, TitleOnlineCourse, TitleConsulting}, titles(recs))
	assert.Equal(t, "$200-$800", recs[0].StartupCost)
	assert.Equal(t, "$300-$1,000", recs[1].StartupCost)
}

func TestFallbackRecommendationsLowRiskCosts(t *testing.T) {
	recs := FallbackRecommendations(completeAnswers("Hands-on or technical tasks (crafts, repair, IT)", ""))
	require.Len(t, recs, 3)
	assert.Equal(t, []string{TitleTechnical, TitleOnlineCourse, TitleFreelanceCreative}, titles(recs))
	assert.Equal(t, "$100-$500", recs[0].StartupCost)
	assert.Equal(t, "$50-$300", recs[1].StartupCost)
	assert.Equal(t, "$0-$200", recs[2].StartupCost)
}

func TestFallbackRecommendationsPeopleFocused(t *testing.T) {
	recs := FallbackRecommendations(completeAnswers("People-focused roles (customer service, teaching, sales)", "Other"))
	assert.Equal(t, []string{TitleConsulting, TitleOnlineCourse, TitleFreelanceCreative}, titles(recs))
}

func TestFallbackRecommendationsNoMatch(t *testing.T) {
	recs := FallbackRecommendations(completeAnswers("Business or financial management", ""))
	assert.Equal(t, []string{TitleOnlineCourse, TitleFreelanceCreative, TitleConsulting}, titles(recs))
}

func TestFallbackRecommendationsEarlierMatchesCrowdOutDefault(t *testing.T) {
	a := Answers{QuestionSkills: "Creative work, People-focused roles and technical tasks"}
	recs := FallbackRecommendations(a)
	assert.Equal(t, []string{TitleFreelanceCreative, TitleConsulting, TitleTechnical}, titles(recs))
}

func TestFallbackRecommendationsDeterministic(t *testing.T) {
	for _, q := range questions[1].Options {
		a := completeAnswers(q, "")
		first := FallbackRecommendations(a)
		second := FallbackRecommendations(a)
		assert.Equal(t, first, second, q)
		assert.Len(t, first, 3, q)
	}
	assert.Len(t, FallbackRecommendations(nil), 3)
}

func TestFallbackRecommendationsReturnsCopies(t *testing.T) {
	recs := FallbackRecommendations(completeAnswers("Creative work (design, content, marketing)", ""))
	recs[0].SkillsNeeded[0] = "mutated"
	again := FallbackRecommendations(completeAnswers("Creative work (design, content, marketing)", ""))
	assert.Equal(t, "Creative skills", again[0].SkillsNeeded[0])
}

func TestFallbackCourses(t *testing.T) {
	cases := []struct {
		title string
		first string
	}{
		{TitleFreelanceCreative, "Graphic Design Fundamentals"},
		{"Web Design Studio", "Graphic Design Fundamentals"},
		{TitleConsulting, "Consulting Fundamentals"},
		{"Career COACHING", "Consulting Fundamentals"},
		{TitleOnlineCourse, "Online Course Creation"},
		{"Dog Walking", "Online Course Creation"},
	}
	for _, tc := range cases {
		got := FallbackCourses(tc.title)
		require.NotEmpty(t, got.Foundational, tc.title)
		assert.NotEmpty(t, got.Specialized, tc.title)
		assert.NotEmpty(t, got.Advanced, tc.title)
		assert.Equal(t, tc.first, got.Foundational[0].Title, tc.title)
	}
}

func TestFallbackCoursesAreShapeValid(t *testing.T) {
	for _, idea := range Ideas() {
		raw := mustJSON(t, FallbackCourses(idea.Title))
		assert.NoError(t, checkShape(coursesSchema, raw), idea.Title)
	}
}

func TestFallbackRecommendationsAreShapeValid(t *testing.T) {
	raw := mustJSON(t, RecommendationSet{Recommendations: FallbackRecommendations(nil)})
	assert.NoError(t, checkShape(recommendationsSchema, raw))
}

func TestIdeaAtDefaultsToFirst(t *testing.T) {
	idea, idx := IdeaAt(7)
	assert.Equal(t, 0, idx)
	assert.Equal(t, TitleFreelanceCreative, idea.Title)

	idea, idx = IdeaAt(1)
	assert.Equal(t, 1, idx)
	assert.Equal(t, TitleConsulting, idea.Title)
	assert.Equal(t, "$300-$1,000", idea.StartupCost)
}
