package advisor

// BusinessRecommendation is one suggested business for a questionnaire submission.
type BusinessRecommendation struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	StartupCost  string   `json:"startupCost"`
	TimeToProfit string   `json:"timeToProfit"`
	SkillsNeeded []string `json:"skillsNeeded"`
	NextSteps    []string `json:"nextSteps"`
}

// RecommendationSet is the shape the model is asked to return.
type RecommendationSet struct {
	Recommendations []BusinessRecommendation `json:"recommendations"`
}

// BusinessIdea is the input to the course pipeline. It shares its shape with
// BusinessRecommendation so a saved recommendation can be used directly.
type BusinessIdea = BusinessRecommendation

const (
	ProviderLinkedIn = "LinkedIn Learning"
	ProviderUdemy    = "Udemy"
	ProviderCoursera = "Coursera"

	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Course is a single course suggestion.
type Course struct {
	Title       string   `json:"title"`
	Provider    string   `json:"provider"`
	Instructor  string   `json:"instructor"`
	Duration    string   `json:"duration"`
	Rating      float64  `json:"rating"`
	Students    string   `json:"students"`
	Price       string   `json:"price"`
	Level       string   `json:"level"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Skills      []string `json:"skills"`
}

// CourseRecommendations groups courses by learning-stage tier.
type CourseRecommendations struct {
	Foundational []Course `json:"foundational"`
	Specialized  []Course `json:"specialized"`
	Advanced     []Course `json:"advanced"`
}
