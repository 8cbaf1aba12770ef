package models

// Category is a single budget category with its month-dependent amounts.
// Budgeted, Activity and Balance are relative to the month the category was
// fetched for; on the plain categories endpoint they refer to the current
// month.
type Category struct {
	ID                     string     `json:"id"`
	CategoryGroupID        string     `json:"category_group_id"`
	Name                   string     `json:"name"`
	Hidden                 bool       `json:"hidden"`
	Note                   *string    `json:"note,omitempty"`
	Budgeted               Milliunits `json:"budgeted"`
	Activity               Milliunits `json:"activity"`
	Balance                Milliunits `json:"balance"`
	GoalType               *string    `json:"goal_type,omitempty"`
	GoalTarget             *int64     `json:"goal_target,omitempty"`
	GoalPercentageComplete *int       `json:"goal_percentage_complete,omitempty"`
	GoalUnderFunded        *int64     `json:"goal_under_funded,omitempty"`
	Deleted                bool       `json:"deleted"`
}

func (c Category) EntityID() string { return c.ID }
func (c Category) IsDeleted() bool  { return c.Deleted }

// CategoryGroup is a named group of categories. The delta protocol treats the
// group (with its nested categories) as one record: an update replaces the
// whole group.
type CategoryGroup struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Hidden     bool       `json:"hidden"`
	Deleted    bool       `json:"deleted"`
	Categories []Category `json:"categories"`
}

func (g CategoryGroup) EntityID() string { return g.ID }
func (g CategoryGroup) IsDeleted() bool  { return g.Deleted }
