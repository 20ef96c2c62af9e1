package domain

import "github.com/google/uuid"

// GroupFilter restricts a card listing by group.
// The zero value matches every card.
type GroupFilter struct {
	set     bool
	groupID *uuid.UUID
}

// AllGroups matches every card regardless of group.
func AllGroups() GroupFilter { return GroupFilter{} }

// Ungrouped matches only cards that belong to no group.
func Ungrouped() GroupFilter { return GroupFilter{set: true} }

// InGroup matches only cards in the given group.
func InGroup(id uuid.UUID) GroupFilter { return GroupFilter{set: true, groupID: &id} }

// GroupFilterFor builds a filter from an optional group id: nil means ungrouped.
func GroupFilterFor(id *uuid.UUID) GroupFilter {
	if id == nil {
		return Ungrouped()
	}
	return InGroup(*id)
}

// IsSet reports whether the filter restricts anything.
func (f GroupFilter) IsSet() bool { return f.set }

// GroupID returns the group the filter matches; nil when it matches ungrouped
// cards or when the filter is not set.
func (f GroupFilter) GroupID() *uuid.UUID { return f.groupID }

// Matches reports whether the card passes the filter.
func (f GroupFilter) Matches(c *Card) bool {
	if !f.set {
		return true
	}
	if f.groupID == nil {
		return c.GroupID == nil
	}
	return c.GroupID != nil && *c.GroupID == *f.groupID
}

func (f GroupFilter) String() string {
	switch {
	case !f.set:
		return "all"
	case f.groupID == nil:
		return "ungrouped"
	default:
		return f.groupID.String()
	}
}
