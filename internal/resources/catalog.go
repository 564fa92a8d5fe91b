package resources

// Category groups resources on the resources page.
type Category struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Resource is one curated entrepreneurship resource.
type Resource struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Type         string   `json:"type"`
	Link         string   `json:"link"`
	Location     string   `json:"location,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
	Tags         []string `json:"tags"`
	Featured     bool     `json:"featured"`
}

const (
	CategoryAll        = "all"
	CategoryFunding    = "funding"
	CategoryNetworking = "networking"
	CategoryBootcamps  = "bootcamps"
	CategoryMentorship = "mentorship"
	CategoryWorkspace  = "workspace"
	CategoryTools      = "tools"
	CategoryLegal      = "legal"
	CategoryLocal      = "local"
)

const featuredLimit = 3

var categories = []Category{
	{ID: CategoryFunding, Title: "Funding & Grants", Description: "Loans, grants, and investment opportunities"},
	{ID: CategoryNetworking, Title: "Networking", Description: "Connect with like-minded entrepreneurs"},
	{ID: CategoryBootcamps, Title: "Bootcamps & Programs", Description: "Intensive training and accelerator programs"},
	{ID: CategoryMentorship, Title: "Mentorship", Description: "Get guidance from experienced entrepreneurs"},
	{ID: CategoryWorkspace, Title: "Workspace", Description: "Co-working spaces and office solutions"},
	{ID: CategoryTools, Title: "Business Tools", Description: "Essential tools and software for startups"},
	{ID: CategoryLegal, Title: "Legal & Compliance", Description: "Legal resources and business registration"},
	{ID: CategoryLocal, Title: "Local Resources", Description: "Resources in your area"},
}

var catalog = []Resource{
	{
		ID:           "1",
		Title:        "SBA Small Business Loans",
		Description:  "Government-backed loans with competitive rates for small businesses. Get up to $5 million in funding.",
		Category:     CategoryFunding,
		Type:         "Government Loan",
		Link:         "https://www.sba.gov/funding-programs/loans",
		Requirements: []string{"US-based business", "Good credit score", "Business plan"},
		Tags:         []string{"loan", "government", "low-interest"},
		Featured:     true,
	},
	{
		ID:           "2",
		Title:        "Kiva Microlending",
		Description:  "Crowdfunded microloans up to $15,000 with 0% interest for entrepreneurs.",
		Category:     CategoryFunding,
		Type:         "Microloan",
		Link:         "https://www.kiva.org",
		Requirements: []string{"Business plan", "Community support"},
		Tags:         []string{"microloan", "0% interest", "crowdfunded"},
	},
	{
		ID:           "3",
		Title:        "SCORE Mentorship & Grants",
		Description:  "Free mentorship and access to grant opportunities for small businesses.",
		Category:     CategoryFunding,
		Type:         "Grants",
		Link:         "https://www.score.org",
		Requirements: []string{"US-based", "Small business"},
		Tags:         []string{"grants", "free", "mentorship"},
	},
	{
		ID:          "4",
		Title:       "Startup Grind",
		Description: "Global startup community with 600+ chapters worldwide. Monthly events and networking.",
		Category:    CategoryNetworking,
		Type:        "Community",
		Link:        "https://www.startupgrind.com",
		Location:    "Global",
		Tags:        []string{"events", "global", "community"},
		Featured:    true,
	},
	{
		ID:          "5",
		Title:       "LinkedIn Local",
		Description: "Local meetups for LinkedIn members to connect in person.",
		Category:    CategoryNetworking,
		Type:        "Meetup",
		Link:        "https://www.linkedin.com",
		Location:    "Various cities",
		Tags:        []string{"local", "professional", "in-person"},
	},
	{
		ID:           "6",
		Title:        "Entrepreneurs' Organization (EO)",
		Description:  "Peer-to-peer network for entrepreneurs with $1M+ in revenue.",
		Category:     CategoryNetworking,
		Type:         "Professional Network",
		Link:         "https://www.eonetwork.org",
		Requirements: []string{"$1M+ annual revenue", "Business owner"},
		Tags:         []string{"high-growth", "peer-to-peer", "exclusive"},
	},
	{
		ID:          "7",
		Title:       "Y Combinator Startup School",
		Description: "Free online program for early-stage founders with lectures and group sessions.",
		Category:    CategoryBootcamps,
		Type:        "Online Program",
		Link:        "https://www.startupschool.org",
		Tags:        []string{"free", "online", "YC"},
		Featured:    true,
	},
	{
		ID:           "8",
		Title:        "Techstars Accelerator",
		Description:  "3-month mentorship-driven accelerator programs in various cities.",
		Category:     CategoryBootcamps,
		Type:         "Accelerator",
		Link:         "https://www.techstars.com",
		Location:     "Multiple cities",
		Requirements: []string{"Scalable business", "Team", "MVP"},
		Tags:         []string{"accelerator", "mentorship", "funding"},
	},
	{
		ID:          "9",
		Title:       "Google for Startups",
		Description: "Programs and resources to help startups build and grow.",
		Category:    CategoryBootcamps,
		Type:        "Program",
		Link:        "https://startup.google.com",
		Tags:        []string{"Google", "free resources", "global"},
	},
	{
		ID:          "10",
		Title:       "Local SBDC Office",
		Description: "Small Business Development Centers offer free consulting and training.",
		Category:    CategoryLocal,
		Type:        "Government Service",
		Link:        "https://americassbdc.org/find-your-sbdc/",
		Location:    "Find nearest location",
		Tags:        []string{"free", "consulting", "local"},
		Featured:    true,
	},
	{
		ID:          "11",
		Title:       "Chamber of Commerce",
		Description: "Local business networks and resources in your community.",
		Category:    CategoryLocal,
		Type:        "Business Association",
		Link:        "https://www.uschamber.com",
		Location:    "Local chapters",
		Tags:        []string{"networking", "local", "advocacy"},
	},
	{
		ID:          "12",
		Title:       "MicroMentor",
		Description: "Free online mentoring for entrepreneurs worldwide.",
		Category:    CategoryMentorship,
		Type:        "Online Mentoring",
		Link:        "https://www.micromentor.org",
		Tags:        []string{"free", "online", "global"},
		Featured:    true,
	},
	{
		ID:           "13",
		Title:        "Founders Network",
		Description:  "Peer mentorship community for tech startup founders.",
		Category:     CategoryMentorship,
		Type:         "Peer Network",
		Link:         "https://foundersnetwork.com",
		Requirements: []string{"Tech startup", "Revenue or funding"},
		Tags:         []string{"tech", "peer-mentorship", "exclusive"},
	},
	{
		ID:          "14",
		Title:       "WeWork",
		Description: "Flexible workspace solutions with locations worldwide.",
		Category:    CategoryWorkspace,
		Type:        "Coworking",
		Link:        "https://www.wework.com",
		Location:    "Global",
		Tags:        []string{"coworking", "flexible", "global"},
	},
	{
		ID:          "15",
		Title:       "Impact Hub",
		Description: "Coworking spaces focused on social impact entrepreneurs.",
		Category:    CategoryWorkspace,
		Type:        "Coworking",
		Link:        "https://impacthub.net",
		Location:    "100+ locations",
		Tags:        []string{"social-impact", "community", "global"},
	},
	{
		ID:          "16",
		Title:       "Canva for Business",
		Description: "Design platform with templates for marketing materials.",
		Category:    CategoryTools,
		Type:        "Design Tool",
		Link:        "https://www.canva.com/business",
		Tags:        []string{"design", "marketing", "easy-to-use"},
	},
	{
		ID:           "17",
		Title:        "HubSpot for Startups",
		Description:  "Up to 90% off HubSpot software for eligible startups.",
		Category:     CategoryTools,
		Type:         "CRM/Marketing",
		Link:         "https://www.hubspot.com/startups",
		Requirements: []string{"Under $2M funding"},
		Tags:         []string{"CRM", "marketing", "discount"},
	},
	{
		ID:          "18",
		Title:       "LegalZoom",
		Description: "Online legal services for business formation and compliance.",
		Category:    CategoryLegal,
		Type:        "Legal Service",
		Link:        "https://www.legalzoom.com",
		Tags:        []string{"incorporation", "legal", "online"},
	},
	{
		ID:          "19",
		Title:       "Nolo Legal Resources",
		Description: "Free legal information and DIY legal forms for businesses.",
		Category:    CategoryLegal,
		Type:        "Legal Information",
		Link:        "https://www.nolo.com",
		Tags:        []string{"free resources", "DIY", "legal guides"},
	},
}
