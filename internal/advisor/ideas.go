package advisor

const (
	TitleFreelanceCreative = "Freelance Creative Services"
	TitleConsulting        = "Consulting & Coaching"
	TitleTechnical         = "Technical Services Business"
	TitleOnlineCourse      = "Online Course Creation"
)

type canned struct {
	rec          BusinessRecommendation
	lowRiskCost  string
	standardCost string
}

func (c canned) build(lowRisk bool) BusinessRecommendation {
	out := c.rec
	out.StartupCost = c.standardCost
	if lowRisk {
		out.StartupCost = c.lowRiskCost
	}
	out.SkillsNeeded = append([]string(nil), c.rec.SkillsNeeded...)
	out.NextSteps = append([]string(nil), c.rec.NextSteps...)
	return out
}

var (
	freelanceCreative = canned{
		rec: BusinessRecommendation{
			Title:        TitleFreelanceCreative,
			Description:  "Start a freelance business offering design, content creation, or marketing services based on your creative skills.",
			TimeToProfit: "1-3 months",
			SkillsNeeded: []string{"Creative skills", "Client communication", "Project management"},
			NextSteps: []string{
				"Build a portfolio of your best work",
				"Set up profiles on freelance platforms",
				"Network with potential clients",
				"Create pricing packages",
			},
		},
		lowRiskCost:  "$0-$200",
		standardCost: "$200-$800",
	}
	consultingCoaching = canned{
		rec: BusinessRecommendation{
			Title:        TitleConsulting,
			Description:  "Leverage your people skills and professional experience to offer consulting or coaching services.",
			TimeToProfit: "2-4 months",
			SkillsNeeded: []string{"Industry expertise", "Communication", "Problem-solving"},
			NextSteps: []string{
				"Define your niche and target market",
				"Create a simple website",
				"Develop service packages",
				"Reach out to your professional network",
			},
		},
		lowRiskCost:  "$0-$300",
		standardCost: "$300-$1,000",
	}
	technicalServices = canned{
		rec: BusinessRecommendation{
			Title:        TitleTechnical,
			Description:  "Offer technical services like IT support, repairs, or digital solutions to local businesses or consumers.",
			TimeToProfit: "2-6 months",
			SkillsNeeded: []string{"Technical expertise", "Problem-solving", "Customer service"},
			NextSteps: []string{
				"Identify your core technical services",
				"Create marketing materials",
				"Network with local businesses",
				"Set up a simple booking system",
			},
		},
		lowRiskCost:  "$100-$500",
		standardCost: "$500-$2,000",
	}
	onlineCourse = canned{
		rec: BusinessRecommendation{
			Title:        TitleOnlineCourse,
			Description:  "Create and sell online courses teaching skills you've mastered in your career or personal interests.",
			TimeToProfit: "3-6 months",
			SkillsNeeded: []string{"Subject expertise", "Content creation", "Basic video editing"},
			NextSteps: []string{
				"Choose your course topic and validate demand",
				"Outline your course curriculum",
				"Record pilot lessons",
				"Choose a platform like Teachable or Udemy",
			},
		},
		lowRiskCost:  "$50-$300",
		standardCost: "$300-$1,000",
	}
)

// ideaCatalog is the business-ideas page listing, in display order.
var ideaCatalog = []canned{freelanceCreative, consultingCoaching, onlineCourse}

// Ideas returns the canonical business ideas with standard startup costs.
func Ideas() []BusinessIdea {
	out := make([]BusinessIdea, len(ideaCatalog))
	for i, c := range ideaCatalog {
		out[i] = c.build(false)
	}
	return out
}

// IdeaAt returns the idea at index, or the first idea when index is out of range.
func IdeaAt(index int) (BusinessIdea, int) {
	if index < 0 || index >= len(ideaCatalog) {
		index = 0
	}
	return ideaCatalog[index].build(false), index
}
