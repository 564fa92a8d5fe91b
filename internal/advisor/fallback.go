package advisor

import "strings"

const recommendationCount = 3

const (
	lowRiskMarker   = "10 hours/week and little to no savings"
	creativeMarker  = "Creative work"
	peopleMarker    = "People-focused roles"
	technicalMarker = "technical tasks"
)

type recommendationRule struct {
	match func(Answers) bool
	entry canned
}

// recommendationRules are evaluated independently in priority order.
var recommendationRules = []recommendationRule{
	{match: skillsContain(creativeMarker), entry: freelanceCreative},
	{match: skillsContain(peopleMarker), entry: consultingCoaching},
	{match: skillsContain(technicalMarker), entry: technicalServices},
}

func skillsContain(marker string) func(Answers) bool {
	return func(a Answers) bool {
		return strings.Contains(a[QuestionSkills], marker)
	}
}

// FallbackRecommendations maps answers to exactly three canned recommendations.
// Matched rules contribute first, the online course entry is always appended,
// and the list is topped up from the idea catalog when short.
func FallbackRecommendations(answers Answers) []BusinessRecommendation {
	lowRisk := strings.Contains(answers[QuestionCommitment], lowRiskMarker)

	out := make([]BusinessRecommendation, 0, recommendationCount+1)
	seen := make(map[string]struct{}, recommendationCount+1)
	add := func(c canned) {
		if _, ok := seen[c.rec.Title]; ok {
			return
		}
		seen[c.rec.Title] = struct{}{}
		out = append(out, c.build(lowRisk))
	}

	for _, rule := range recommendationRules {
		if rule.match(answers) {
			add(rule.entry)
		}
	}
	add(onlineCourse)
	for _, c := range ideaCatalog {
		if len(out) >= recommendationCount {
			break
		}
		add(c)
	}
	if len(out) > recommendationCount {
		out = out[:recommendationCount]
	}
	return out
}

// FallbackCourses maps an idea title to one of the fixed course sets.
func FallbackCourses(title string) CourseRecommendations {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "creative") || strings.Contains(lower, "design"):
		return creativeCourses()
	case strings.Contains(lower, "consulting") || strings.Contains(lower, "coaching"):
		return consultingCourses()
	default:
		return courseCreationCourses()
	}
}

func creativeCourses() CourseRecommendations {
	return CourseRecommendations{
		Foundational: []Course{
			{
				Title:       "Graphic Design Fundamentals",
				Provider:    ProviderCoursera,
				Instructor:  "California Institute of the Arts",
				Duration:    "4 weeks",
				Rating:      4.7,
				Students:    "150K+",
				Price:       "$49/month",
				Level:       LevelBeginner,
				Description: "Learn the fundamentals of graphic design including typography, color theory, and composition.",
				URL:         "https://coursera.org/learn/fundamentals-of-graphic-design",
				Skills:      []string{"Typography", "Color Theory", "Adobe Creative Suite"},
			},
			{
				Title:       "Freelancing Fundamentals",
				Provider:    ProviderLinkedIn,
				Instructor:  "John Doe",
				Duration:    "2 hours",
				Rating:      4.5,
				Students:    "50K+",
				Price:       "$29.99/month",
				Level:       LevelBeginner,
				Description: "Essential skills for starting and managing a successful freelance business.",
				URL:         "https://linkedin.com/learning/freelancing-fundamentals",
				Skills:      []string{"Client Management", "Pricing", "Contracts"},
			},
		},
		Specialized: []Course{
			{
				Title:       "Advanced Adobe Photoshop",
				Provider:    ProviderUdemy,
				Instructor:  "Jane Smith",
				Duration:    "12 hours",
				Rating:      4.8,
				Students:    "75K+",
				Price:       "$84.99",
				Level:       LevelIntermediate,
				Description: "Master advanced Photoshop techniques for professional design work.",
				URL:         "https://udemy.com/course/advanced-photoshop",
				Skills:      []string{"Photo Manipulation", "Digital Art", "Retouching"},
			},
		},
		Advanced: []Course{
			{
				Title:       "Building a Creative Agency",
				Provider:    ProviderLinkedIn,
				Instructor:  "Creative Director Pro",
				Duration:    "3 hours",
				Rating:      4.6,
				Students:    "25K+",
				Price:       "$29.99/month",
				Level:       LevelAdvanced,
				Description: "Scale your creative services into a full-service agency.",
				URL:         "https://linkedin.com/learning/building-creative-agency",
				Skills:      []string{"Team Management", "Business Development", "Client Relations"},
			},
		},
	}
}

func consultingCourses() CourseRecommendations {
	return CourseRecommendations{
		Foundational: []Course{
			{
				Title:       "Consulting Fundamentals",
				Provider:    ProviderCoursera,
				Instructor:  "University of Virginia",
				Duration:    "6 weeks",
				Rating:      4.6,
				Students:    "100K+",
				Price:       "$49/month",
				Level:       LevelBeginner,
				Description: "Learn the core principles of management consulting and problem-solving.",
				URL:         "https://coursera.org/learn/consulting-fundamentals",
				Skills:      []string{"Problem Solving", "Client Relations", "Business Analysis"},
			},
		},
		Specialized: []Course{
			{
				Title:       "Executive Coaching Certification",
				Provider:    ProviderUdemy,
				Instructor:  "Coaching Institute",
				Duration:    "20 hours",
				Rating:      4.7,
				Students:    "30K+",
				Price:       "$129.99",
				Level:       LevelIntermediate,
				Description: "Become a certified executive coach with proven methodologies.",
				URL:         "https://udemy.com/course/executive-coaching",
				Skills:      []string{"Leadership Development", "Communication", "Goal Setting"},
			},
		},
		Advanced: []Course{
			{
				Title:       "Strategic Business Consulting",
				Provider:    ProviderLinkedIn,
				Instructor:  "Strategy Expert",
				Duration:    "4 hours",
				Rating:      4.8,
				Students:    "40K+",
				Price:       "$29.99/month",
				Level:       LevelAdvanced,
				Description: "Advanced strategies for high-level business consulting.",
				URL:         "https://linkedin.com/learning/strategic-consulting",
				Skills:      []string{"Strategic Planning", "Change Management", "Executive Presence"},
			},
		},
	}
}

func courseCreationCourses() CourseRecommendations {
	return CourseRecommendations{
		Foundational: []Course{
			{
				Title:       "Online Course Creation",
				Provider:    ProviderUdemy,
				Instructor:  "Course Creator Pro",
				Duration:    "8 hours",
				Rating:      4.5,
				Students:    "80K+",
				Price:       "$94.99",
				Level:       LevelBeginner,
				Description: "Complete guide to creating and selling online courses.",
				URL:         "https://udemy.com/course/online-course-creation",
				Skills:      []string{"Course Design", "Video Production", "Student Engagement"},
			},
		},
		Specialized: []Course{
			{
				Title:       "Video Production for Educators",
				Provider:    ProviderLinkedIn,
				Instructor:  "Video Expert",
				Duration:    "3 hours",
				Rating:      4.6,
				Students:    "35K+",
				Price:       "$29.99/month",
				Level:       LevelIntermediate,
				Description: "Professional video production techniques for online education.",
				URL:         "https://linkedin.com/learning/video-production-educators",
				Skills:      []string{"Video Editing", "Lighting", "Audio Production"},
			},
		},
		Advanced: []Course{
			{
				Title:       "Building an Online Education Empire",
				Provider:    ProviderCoursera,
				Instructor:  "EdTech University",
				Duration:    "8 weeks",
				Rating:      4.7,
				Students:    "20K+",
				Price:       "$79/month",
				Level:       LevelAdvanced,
				Description: "Scale your online education business to multiple revenue streams.",
				URL:         "https://coursera.org/learn/education-empire",
				Skills:      []string{"Business Scaling", "Marketing", "Platform Management"},
			},
		},
	}
}
