// Package authz holds the authorization policy: a pure, stateless decision
// over (caller role/id, action, target owner). It performs no I/O and keeps
// no state; every call is decided from its arguments alone.
package authz

// Canonical role codes. The domain package aliases these.
const (
	RoleAdmin     = "admin"
	RoleOrganiser = "organiser"
)

// Action identifies an intent a caller wants gated.
type Action string

// Actions reachable anonymously.
const (
	ActionViewRegistrationForm    Action = "view_registration_form"
	ActionSubmitGuestRegistration Action = "submit_guest_registration"
	ActionViewAuthPages           Action = "view_auth_pages"
)

// Admin actions. None of these are ownership-scoped.
const (
	ActionViewDashboard   Action = "view_dashboard"
	ActionCreateOrganiser Action = "create_organiser"
	ActionListOrganisers  Action = "list_organisers"
	ActionListAllEvents   Action = "list_all_events"
	ActionDeleteAnyEvent  Action = "delete_any_event"
	ActionDeleteOrganiser Action = "delete_organiser"
)

// Organiser actions. The item-level ones require ownership of the target.
const (
	ActionListOwnEvents Action = "list_own_events"
	ActionCreateEvent   Action = "create_event"
	ActionViewEvent     Action = "view_event"
	ActionEditEvent     Action = "edit_event"
	ActionDeleteEvent   Action = "delete_event"
)

// Reason explains a denial.
type Reason string

const (
	ReasonAuthenticationRequired Reason = "authentication_required"
	ReasonInsufficientRole       Reason = "insufficient_role"
	ReasonNotOwner               Reason = "not_owner"
)

// Caller is the authenticated identity making a request. A nil *Caller means
// the request is anonymous.
type Caller struct {
	ID    int64
	Roles []string
}

// HasRole reports whether the caller carries the given role code.
func (c *Caller) HasRole(code string) bool {
	if c == nil {
		return false
	}
	for _, r := range c.Roles {
		if r == code {
			return true
		}
	}
	return false
}

// Target describes the resource an item-level action operates on.
type Target struct {
	OwnerID int64
}

// Decision is the outcome of a policy evaluation.
type Decision struct {
	Allowed bool
	Reason  Reason
}

func allow() Decision        { return Decision{Allowed: true} }
func deny(r Reason) Decision { return Decision{Reason: r} }

// Decide evaluates the policy for the given caller, action, and target.
// Rules, in priority order: anonymous callers get only the public surface;
// admins get the admin surface without ownership scoping; organisers get
// their own events, with ownership re-checked on every item-level action;
// everything else is denied with ReasonInsufficientRole.
func Decide(caller *Caller, action Action, target *Target) Decision {
	switch action {
	case ActionViewRegistrationForm, ActionSubmitGuestRegistration, ActionViewAuthPages:
		return allow()
	}
	if caller == nil {
		return deny(ReasonAuthenticationRequired)
	}

	switch action {
	case ActionViewDashboard, ActionCreateOrganiser, ActionListOrganisers,
		ActionListAllEvents, ActionDeleteAnyEvent, ActionDeleteOrganiser:
		if caller.HasRole(RoleAdmin) {
			return allow()
		}
		return deny(ReasonInsufficientRole)

	case ActionListOwnEvents, ActionCreateEvent:
		if caller.HasRole(RoleOrganiser) {
			return allow()
		}
		return deny(ReasonInsufficientRole)

	case ActionViewEvent, ActionEditEvent, ActionDeleteEvent:
		if !caller.HasRole(RoleOrganiser) {
			return deny(ReasonInsufficientRole)
		}
		if target == nil || target.OwnerID != caller.ID {
			return deny(ReasonNotOwner)
		}
		return allow()
	}

	return deny(ReasonInsufficientRole)
}
