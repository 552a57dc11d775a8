package assistant

// SummaryResult is the canned reply of the content summarizer.
type SummaryResult struct {
	Summary []string `json:"summary"`
	Tasks   []string `json:"tasks"`
	Tip     string   `json:"tip"`
}

type GoalTask struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Deadline  string `json:"deadline"`
	Priority  string `json:"priority"`
	Completed bool   `json:"completed"`
}

type BreakdownResult struct {
	Goal  string     `json:"goal"`
	Tasks []GoalTask `json:"tasks"`
}

// ExtractedTask is one actionable item pulled out of a journal entry.
// Priority runs from 1 (most pressing) upward.
type ExtractedTask struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
	Priority int    `json:"priority"`
}

type JournalResult struct {
	Tasks []ExtractedTask `json:"tasks"`
}

type DashboardTask struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Priority  string `json:"priority"`
}

type DashboardResult struct {
	Tasks           []DashboardTask `json:"tasks"`
	CompletedCount  int             `json:"completed_count"`
	ProgressPercent int             `json:"progress_percent"`
	Encouragement   string          `json:"encouragement"`
}

func sampleSummary() SummaryResult {
	return SummaryResult{
		Summary: []string{
			"This content discusses productivity strategies for neurodivergent individuals",
			"Key points include time-blocking, energy management, and reducing decision fatigue",
			"Emphasizes the importance of self-compassion and realistic goal-setting",
		},
		Tasks: []string{
			"Try the Pomodoro Technique for 25-minute focused work sessions",
			"Identify your peak energy hours and schedule important tasks then",
			"Create a 'brain dump' list to capture all thoughts and ideas",
		},
		Tip: "Remember: Your brain works differently, and that's your superpower! Work with your natural rhythms, not against them.",
	}
}

func sampleGoalTasks() []GoalTask {
	return []GoalTask{
		{ID: 1, Title: "Research and list target colleges (3-5 schools)", Deadline: "2024-02-15", Priority: "high"},
		{ID: 2, Title: "Request official transcripts from high school", Deadline: "2024-02-10", Priority: "high"},
		{ID: 3, Title: "Draft personal statement (first version)", Deadline: "2024-02-20", Priority: "high"},
		{ID: 4, Title: "Reach out to 2 teachers for recommendation letters", Deadline: "2024-02-08", Priority: "medium"},
		{ID: 5, Title: "Complete FAFSA application", Deadline: "2024-02-25", Priority: "medium"},
		{ID: 6, Title: "Schedule and take SAT/ACT if needed", Deadline: "2024-02-28", Priority: "low"},
	}
}

func sampleJournalTasks() []ExtractedTask {
	return []ExtractedTask{
		{ID: 1, Text: "Call mom back about dinner plans", Category: "urgent", Priority: 1},
		{ID: 2, Text: "Schedule dentist appointment", Category: "important", Priority: 2},
		{ID: 3, Text: "Buy groceries for the week", Category: "routine", Priority: 3},
		{ID: 4, Text: "Research vacation destinations for summer", Category: "idea", Priority: 4},
		{ID: 5, Text: "Update resume with recent projects", Category: "important", Priority: 2},
	}
}

func sampleDashboardTasks() []DashboardTask {
	return []DashboardTask{
		{ID: 1, Text: "Review client emails", Completed: true, Priority: "high"},
		{ID: 2, Text: "Complete project proposal", Priority: "high"},
		{ID: 3, Text: "Schedule doctor appointment", Priority: "medium"},
		{ID: 4, Text: "Take a 15-minute walk", Completed: true, Priority: "low"},
	}
}

var encouragements = []string{
	"You've got this! One step at a time. 🌟",
	"Progress over perfection - you're doing great! 💪",
	"Remember: it's okay to take breaks when you need them. 🌸",
	"Small wins add up to big victories! 🎉",
}
