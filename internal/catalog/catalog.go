// Package catalog lists the topics offered by the picker and the sections
// shown on the dashboard.
package catalog

// Topic is a selectable question set. Name is what the loader resolves.
type Topic struct {
	Name  string
	Label string
}

// Group is a heading in the topic picker.
type Group struct {
	Title  string
	Topics []Topic
}

// Groups returns the picker groups in display order.
func Groups() []Group {
	return []Group{
		{
			Title: "Companies",
			Topics: []Topic{
				{Name: "amazon", Label: "Amazon"},
				{Name: "zoho", Label: "Zoho"},
				{Name: "tcs", Label: "TCS"},
			},
		},
		{
			Title: "Languages",
			Topics: []Topic{
				{Name: "python", Label: "Python"},
				{Name: "javascript", Label: "JavaScript"},
				{Name: "typescript", Label: "TypeScript"},
			},
		},
	}
}

// SectionID identifies a dashboard entry.
type SectionID string

const (
	SectionQuiz       SectionID = "quiz"
	SectionDSA        SectionID = "dsa"
	SectionMock       SectionID = "mock-interview"
	SectionFrontend   SectionID = "frontend"
	SectionLinux      SectionID = "linux"
	SectionRoadmap    SectionID = "roadmap"
	SectionStatistics SectionID = "statistics"
)

// Section is one dashboard entry. Only available sections have a screen.
type Section struct {
	ID        SectionID
	Label     string
	Available bool
}

// SectionGroup is a heading on the dashboard.
type SectionGroup struct {
	Title    string
	Sections []Section
}

func Sections() []SectionGroup {
	return []SectionGroup{
		{
			Title: "Practice",
			Sections: []Section{
				{ID: SectionQuiz, Label: "Quiz", Available: true},
				{ID: SectionDSA, Label: "DSA Problems"},
				{ID: SectionMock, Label: "Mock Interview"},
				{ID: SectionFrontend, Label: "Frontend Problems"},
				{ID: SectionLinux, Label: "Linux Problems"},
			},
		},
		{
			Title: "Progress",
			Sections: []Section{
				{ID: SectionRoadmap, Label: "Roadmap"},
				{ID: SectionStatistics, Label: "Statistics"},
			},
		},
	}
}
