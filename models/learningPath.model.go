package models

// LearningPath and LearningProgress are document-store entities: one JSON file
// per user identifier in the record store, not relational rows.

type Milestone struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Timeframe   string   `json:"timeframe"`
	Project     string   `json:"project"`
}

type LearningPath struct {
	ID                  string      `json:"id,omitempty"`
	PathTitle           string      `json:"path_title" validate:"required"`
	PathDescription     string      `json:"path_description" validate:"required"`
	Milestones          []Milestone `json:"milestones" validate:"required"`
	CareerOpportunities []string    `json:"career_opportunities" validate:"required"`
}

type LearningProgress struct {
	CurrentMilestone int    `json:"currentMilestone"`
	LastUpdated      string `json:"lastUpdated"`
}

// SimulatedUserPrefix marks identifiers that get the canned default path when
// nothing has been persisted for them yet.
const SimulatedUserPrefix = "user_"

// DefaultLearningPath returns the fixed four-milestone path served verbatim to
// simulated users with no stored path.
func DefaultLearningPath() LearningPath {
	return LearningPath{
		PathTitle:       "Digital Skills Foundation",
		PathDescription: "A starter path covering the digital skills needed for remote and office work, from first steps on a computer to earning online.",
		Milestones: []Milestone{
			{
				Title:       "Computer Basics",
				Description: "Get comfortable with files, folders, email and safe browsing.",
				Skills:      []string{"typing", "file management", "email", "internet safety"},
				Timeframe:   "2 weeks",
				Project:     "Set up an email account and organize a folder of practice documents",
			},
			{
				Title:       "Office Tools",
				Description: "Learn documents, spreadsheets and presentations with free office suites.",
				Skills:      []string{"word processing", "spreadsheets", "presentations"},
				Timeframe:   "4 weeks",
				Project:     "Build a monthly household budget spreadsheet with charts",
			},
			{
				Title:       "Data Entry & Accuracy",
				Description: "Practice fast, accurate data entry and basic data cleanup.",
				Skills:      []string{"data entry", "attention to detail", "data formatting"},
				Timeframe:   "3 weeks",
				Project:     "Digitize a handwritten ledger into a clean spreadsheet",
			},
			{
				Title:       "Freelancing Platforms",
				Description: "Create a profile, find first clients and deliver small paid tasks online.",
				Skills:      []string{"profile writing", "client communication", "time management"},
				Timeframe:   "3 weeks",
				Project:     "Complete and deliver one small paid or practice gig end to end",
			},
		},
		CareerOpportunities: []string{
			"Data Entry Operator",
			"Virtual Assistant",
			"Customer Support Executive",
			"Freelance Transcriptionist",
		},
	}
}
