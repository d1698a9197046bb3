package domain

// BookPriority ranks a book within its workspace.
type BookPriority string

const (
	BookPriorityLow    BookPriority = "LOW"
	BookPriorityMedium BookPriority = "MEDIUM"
	BookPriorityHigh   BookPriority = "HIGH"
)

func (p BookPriority) String() string { return string(p) }

func (p BookPriority) IsValid() bool {
	switch p {
	case BookPriorityLow, BookPriorityMedium, BookPriorityHigh:
		return true
	}
	return false
}

// BookStatus is the lifecycle state of a book project.
type BookStatus string

const (
	BookStatusPlanning  BookStatus = "PLANNING"
	BookStatusActive    BookStatus = "ACTIVE"
	BookStatusOnHold    BookStatus = "ON_HOLD"
	BookStatusCompleted BookStatus = "COMPLETED"
	BookStatusCancelled BookStatus = "CANCELLED"
)

func (s BookStatus) String() string { return string(s) }

func (s BookStatus) IsValid() bool {
	switch s {
	case BookStatusPlanning, BookStatusActive, BookStatusOnHold, BookStatusCompleted, BookStatusCancelled:
		return true
	}
	return false
}

// BookTypeHybrid marks books that carry royalty splits.
const BookTypeHybrid = "HYBRID"

// TaskStatus is the progress state of a task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// MemberStatus tracks whether an invitee has joined.
type MemberStatus string

const (
	MemberStatusPending MemberStatus = "pending"
	MemberStatusActive  MemberStatus = "active"
)

func (s MemberStatus) String() string { return string(s) }

func (s MemberStatus) IsValid() bool {
	switch s {
	case MemberStatusPending, MemberStatusActive:
		return true
	}
	return false
}

// Workspace roles as stored locally. Any role is accepted; only RoleAdmin
// changes the identity-provider role.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleAuthor = "author"
	RoleMember = "member"
)

// Identity-provider organization roles.
const (
	OrgRoleAdmin  = "org:admin"
	OrgRoleMember = "org:member"
)

// OrgRole maps a local workspace role onto the identity provider's role set.
// Unrecognized roles collapse to the least-privileged role.
func OrgRole(role string) string {
	if role == RoleAdmin {
		return OrgRoleAdmin
	}
	return OrgRoleMember
}

// CategoryPrintPartner is the resource category reserved for print partners.
const CategoryPrintPartner = "print_partner"

// ResourceSort selects the ordering of a resource listing.
type ResourceSort string

const (
	ResourceSortTitle         ResourceSort = ""
	ResourceSortViews         ResourceSort = "views"
	ResourceSortRecentlyAdded ResourceSort = "recently_added"
)
