package linkedin

// generalHashtags work for any post regardless of topic or industry.
// Only the first entry participates in a suggestion by default.
var generalHashtags = []string{"#LinkedIn", "#Professional", "#Career", "#Business", "#Growth"}

// Catalog maps a lower-cased industry key to its hashtags, most relevant first.
type Catalog map[string][]string

// defaultCatalog is the canonical industry catalog. Demo surfaces that only
// care about a subset prune it with WithCatalog instead of shipping their
// own table.
var defaultCatalog = Catalog{
	"tech":             {"#Technology", "#Innovation", "#AI", "#Software", "#TechTrends"},
	"marketing":        {"#Marketing", "#DigitalMarketing", "#ContentMarketing", "#Branding", "#SocialMedia"},
	"leadership":       {"#Leadership", "#Management", "#TeamBuilding", "#ExecutiveCoaching", "#WorkplaceCulture"},
	"entrepreneurship": {"#Entrepreneur", "#Startup", "#SmallBusiness", "#Innovation", "#BusinessGrowth"},
	"finance":          {"#Finance", "#Investing", "#FinTech", "#Banking", "#Economics"},
	"sales":            {"#Sales", "#B2B", "#CustomerSuccess", "#SalesStrategy", "#Networking"},
	"hr":               {"#HumanResources", "#Recruiting", "#TalentAcquisition", "#WorkplaceCulture", "#EmployeeEngagement"},
	"consulting":       {"#Consulting", "#Strategy", "#BusinessConsulting", "#ProfessionalServices", "#Advisory"},
}

// DefaultCatalog returns a copy of the canonical industry catalog
func DefaultCatalog() Catalog {
	ret := make(Catalog, len(defaultCatalog))
	for k, v := range defaultCatalog {
		tags := make([]string, len(v))
		copy(tags, v)
		ret[k] = tags
	}
	return ret
}

// topicRule appends its hashtags when any trigger occurs as a substring of
// the lower-cased topic. Rules are evaluated in declared order, not by
// trigger specificity.
type topicRule struct {
	triggers []string
	hashtags []string
}

var topicRules = []topicRule{
	{[]string{"learn", "education"}, []string{"#Learning", "#ProfessionalDevelopment", "#SkillBuilding"}},
	{[]string{"success", "achievement"}, []string{"#Success", "#Achievement", "#Goals"}},
	{[]string{"team", "collaboration"}, []string{"#Teamwork", "#Collaboration", "#TeamSuccess"}},
	{[]string{"tip", "advice"}, []string{"#Tips", "#Advice", "#BestPractices"}},
}

// personalIndicators mark first-person narrative, matched case-insensitively.
var personalIndicators = []string{"I learned", "My experience", "When I", "I discovered", "I realized"}

// actionWords mark actionable advice content.
var actionWords = []string{"tip", "strategy", "how to", "step", "method", "technique"}

// ctaIndicators mark a call-to-action in the formatting validator.
var ctaIndicators = []string{"?", "comment", "share", "thoughts", "experience", "story"}
