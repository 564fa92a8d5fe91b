package advisor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAnswers is returned when a submission is incomplete or uses unknown options.
var ErrInvalidAnswers = errors.New("invalid questionnaire answers")

const (
	QuestionMotivation = "motivation"
	QuestionSkills     = "skills"
	QuestionIdea       = "idea"
	QuestionCommitment = "commitment"
	QuestionResources  = "resources"
	QuestionLocation   = "location"
	QuestionStructure  = "structure"
	QuestionGoals      = "goals"

	// KeyCommitmentOther holds free text when commitment is OptionOther.
	KeyCommitmentOther = "commitmentOther"
	OptionOther        = "Other"

	maxOtherLength = 500
)

// Question is one entry of the questionnaire.
type Question struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Options  []string `json:"options"`
	HasOther bool     `json:"hasOther,omitempty"`
}

var questions = []Question{
	{
		ID:    QuestionMotivation,
		Title: "What motivates you to start a business now, and what are you hoping to achieve?",
		Options: []string{
			"Gain income quickly",
			"Greater work-life flexibility",
			"Follow a passion or purpose",
			"Make a community or social impact",
			"Not sure yet — just exploring",
		},
	},
	{
		ID:    QuestionSkills,
		Title: "What types of work energize you, and what skills or experiences from your previous job could carry over into a business?",
		Options: []string{
			"Creative work (design, content, marketing)",
			"Hands-on or technical tasks (crafts, repair, IT)",
			"People-focused roles (customer service, teaching, sales)",
			"Business or financial management",
			"I'm still figuring out what I'm good at",
		},
	},
	{
		ID:      QuestionIdea,
		Title:   "Do you already have a business idea, or are you open to exploring?",
		Options: []string{"Yes", "No", "Somewhat"},
	},
	{
		ID:    QuestionCommitment,
		Title: "How much time, energy, and money can you commit, and how long can you operate without a profit?",
		Options: []string{
			"10 hours/week and little to no savings — needs to be low-risk",
			"10–20 hours/week and can invest a small budget",
			"20–40 hours/week with moderate funding or savings",
			"Full-time commitment and willing to self-fund or raise money",
			"Eligible for unemployment, grants, or other support",
			"Still figuring this out",
			OptionOther,
		},
		HasOther: true,
	},
	{
		ID:    QuestionResources,
		Title: "What resources do you have or need to launch your Minimum Viable Product (MVP)?",
		Options: []string{
			"I have most tools and can start solo",
			"I need a partner or part-time help",
			"I'll need to raise funds or find low-cost solutions",
			"I don't know",
		},
	},
	{
		ID:    QuestionLocation,
		Title: "Can your business operate online or from home, and are there legal/logistical constraints?",
		Options: []string{
			"Yes, home-based and online-friendly",
			"Requires physical space (storefront, workshop, storage, shipping)",
			"Need to check on permits, zoning, or home business rules",
			"Not sure about legal requirements yet",
		},
	},
	{
		ID:    QuestionStructure,
		Title: "Have you planned the basics of your business structure?",
		Options: []string{
			"Yes, I've registered my business and opened a bank account",
			"I've picked a structure (LLC, Sole Prop, etc.), but haven't registered",
			"I have nothing in place yet",
			"Not sure where to start with legal stuff",
		},
	},
	{
		ID:    QuestionGoals,
		Title: "What are your goals would you like to achieve with this project by month 12?",
		Options: []string{
			"Launch a working product/service and get my first paying customers",
			"Earn consistent monthly income that replaces or supplements my job",
			"Build a loyal customer base and grow through word of mouth or marketing",
			"All of the above",
			"Not sure yet",
		},
	},
}

// Questions returns a copy of the questionnaire in display order.
func Questions() []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

// Answers maps question ids to the selected option, plus the optional
// commitmentOther free text.
type Answers map[string]string

// Normalize trims values, drops unknown keys and keeps commitmentOther only
// when commitment is OptionOther.
func (a Answers) Normalize() Answers {
	out := make(Answers, len(questions)+1)
	for _, q := range questions {
		if v := strings.TrimSpace(a[q.ID]); v != "" {
			out[q.ID] = v
		}
	}
	if out[QuestionCommitment] == OptionOther {
		other := strings.TrimSpace(a[KeyCommitmentOther])
		if len([]rune(other)) > maxOtherLength {
			other = string([]rune(other)[:maxOtherLength])
		}
		if other != "" {
			out[KeyCommitmentOther] = other
		}
	}
	return out
}

// Validate reports whether every question has a known option selected.
func (a Answers) Validate() error {
	var problems []string
	for _, q := range questions {
		v, ok := a[q.ID]
		if !ok || strings.TrimSpace(v) == "" {
			problems = append(problems, q.ID+" is required")
			continue
		}
		if !containsOption(q.Options, v) {
			problems = append(problems, q.ID+" has an unknown option")
		}
	}
	if a[QuestionCommitment] == OptionOther && strings.TrimSpace(a[KeyCommitmentOther]) == "" {
		problems = append(problems, KeyCommitmentOther+" is required when commitment is Other")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidAnswers, strings.Join(problems, "; "))
	}
	return nil
}

// Entry is one key/value pair of an ordered answer listing.
type Entry struct {
	Key   string
	Value string
}

// Ordered lists the answers in questionnaire order with commitmentOther last.
func (a Answers) Ordered() []Entry {
	out := make([]Entry, 0, len(a))
	for _, q := range questions {
		if v, ok := a[q.ID]; ok {
			out = append(out, Entry{Key: q.ID, Value: v})
		}
	}
	if v, ok := a[KeyCommitmentOther]; ok {
		out = append(out, Entry{Key: KeyCommitmentOther, Value: v})
	}
	return out
}

func containsOption(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
