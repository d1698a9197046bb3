package domain

// WorkspaceOverview is the denormalized read model of one workspace.
// It is rebuilt on every request and never persisted.
type WorkspaceOverview struct {
	Workspace
	Books []BookOverview `json:"books"`
}

// BookOverview is a book with all of its children attached.
type BookOverview struct {
	Book
	Tasks            []TaskOverview    `json:"tasks"`
	PublishingStages []PublishingStage `json:"publishingStages"`
	Royalties        []Royalty         `json:"royalties"`
	LaunchPlans      []LaunchPlan      `json:"launchPlans"`
}

// TaskOverview is a task with its comments attached.
type TaskOverview struct {
	Task
	Comments []Comment `json:"comments"`
}
