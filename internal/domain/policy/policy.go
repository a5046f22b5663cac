// Package policy decides whether an actor may perform an operation on a
// target. Decisions are pure functions of the actor's role and the actor's
// relationships to the target; nothing here touches storage.
//
// Every operation has an explicit rule for every role in one table, so a
// role that is never granted anything shows up as a row of Never() rather
// than as a missing case.
package policy

import (
	"strings"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
)

// Operation names an authorization-checked action. The prefix before the
// dot names the entity used in error codes.
type Operation string

const (
	OpViewTask           Operation = "task.view"
	OpCreateTask         Operation = "task.create"
	OpUpdateTask         Operation = "task.update"
	OpAssignTask         Operation = "task.assign"
	OpCompleteTask       Operation = "task.complete"
	OpDeleteTask         Operation = "task.delete"
	OpListTasksBySubject Operation = "task.list_by_subject"

	OpCreateTeam        Operation = "team.create"
	OpUpdateTeam        Operation = "team.update"
	OpDeleteTeam        Operation = "team.delete"
	OpViewTeam          Operation = "team.view"
	OpManageTeamMembers Operation = "team.manage_members"

	OpCreateUser    Operation = "user.create"
	OpUpdateUser    Operation = "user.update"
	OpDeleteUser    Operation = "user.delete"
	OpViewUser      Operation = "user.view"
	OpListTeamUsers Operation = "user.list_team"
)

// Entity returns the entity name used in error codes for the operation.
func (o Operation) Entity() string {
	prefix, _, _ := strings.Cut(string(o), ".")
	switch prefix {
	case "task":
		return "Task"
	case "team":
		return "Team"
	default:
		return "User"
	}
}

// String implements fmt.Stringer.
func (o Operation) String() string {
	return string(o)
}

// Relation is a set of relationships between an actor and a target.
type Relation uint8

const (
	// RelManagesTeam: the actor is the manager of the target's team.
	RelManagesTeam Relation = 1 << iota
	// RelCreator: the actor created the target task.
	RelCreator
	// RelAssignee: the target task is assigned to the actor.
	RelAssignee
	// RelSelf: the target subject is the actor.
	RelSelf
	// RelTeamMember: the actor belongs to the target team.
	RelTeamMember
)

// Has reports whether every relation in other is present in r.
func (r Relation) Has(other Relation) bool {
	return r&other == other
}

// String lists the relations in r, joined with "|".
func (r Relation) String() string {
	names := []struct {
		rel  Relation
		name string
	}{
		{RelManagesTeam, "manages_team"},
		{RelCreator, "creator"},
		{RelAssignee, "assignee"},
		{RelSelf, "self"},
		{RelTeamMember, "team_member"},
	}
	var parts []string
	for _, n := range names {
		if r.Has(n.rel) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Actor is the authenticated identity performing an operation.
type Actor struct {
	ID     int64
	Role   user.Role
	TeamID *int64
}

// ActorOf builds an Actor from a stored user.
func ActorOf(u *user.User) Actor {
	return Actor{ID: u.ID, Role: u.Role, TeamID: u.TeamID}
}

// Target carries the facts about the entity being acted on that relations
// are derived from. Unset fields never produce a relation.
type Target struct {
	// TeamID is the team the target belongs to (a task's team, a user's
	// team, or the team itself).
	TeamID *int64
	// TeamManagerID is the manager of TeamID.
	TeamManagerID *int64
	// CreatorID is the creator of a target task.
	CreatorID *int64
	// AssigneeID is the assignee of a target task.
	AssigneeID *int64
	// SubjectID is the user a target refers to (the user being viewed,
	// updated, or whose tasks are listed).
	SubjectID *int64
}

// Relations derives the actor's relationships to the target.
func Relations(a Actor, t Target) Relation {
	var r Relation
	if t.TeamManagerID != nil && *t.TeamManagerID == a.ID {
		r |= RelManagesTeam
	}
	if t.CreatorID != nil && *t.CreatorID == a.ID {
		r |= RelCreator
	}
	if t.AssigneeID != nil && *t.AssigneeID == a.ID {
		r |= RelAssignee
	}
	if t.SubjectID != nil && *t.SubjectID == a.ID {
		r |= RelSelf
	}
	if t.TeamID != nil && a.TeamID != nil && *t.TeamID == *a.TeamID {
		r |= RelTeamMember
	}
	return r
}

// Rule permits an operation unconditionally or when any of a set of
// relations holds.
type Rule struct {
	always bool
	anyOf  Relation
}

// Always permits regardless of relationships.
func Always() Rule { return Rule{always: true} }

// Never denies regardless of relationships.
func Never() Rule { return Rule{} }

// AnyOf permits when at least one of rels holds.
func AnyOf(rels ...Relation) Rule {
	var r Rule
	for _, rel := range rels {
		r.anyOf |= rel
	}
	return r
}

// Permits evaluates the rule against a relation set.
func (r Rule) Permits(rels Relation) bool {
	return r.always || rels&r.anyOf != 0
}

// table is the complete authorization matrix. Every operation lists every
// role; a role missing from a row is denied.
var table = map[Operation]map[user.Role]Rule{
	OpViewTask: {
		user.RoleAdmin:      Always(),
		user.RoleManager:    AnyOf(RelManagesTeam, RelCreator, RelAssignee),
		user.RoleTeamLeader: AnyOf(RelCreator, RelAssignee),
		user.RoleMember:     AnyOf(RelCreator, RelAssignee),
	},
	OpCreateTask: {
		user.RoleAdmin:      Always(),
		user.RoleManager:    Always(),
		user.RoleTeamLeader: Never(),
		user.RoleMember:     Never(),
	},
	OpUpdateTask: {
		user.RoleAdmin:      Always(),
		user.RoleManager:    AnyOf(RelManagesTeam, RelAssignee),
		user.RoleTeamLeader: AnyOf(RelAssignee),
		user.RoleMember:     AnyOf(RelAssignee),
	},
	OpAssignTask: {
		user.RoleAdmin:      Always(),
		user.RoleManager:    AnyOf(RelManagesTeam),
		user.RoleTeamLeader: Never(),
		user.RoleMember:     Never(),
	},
	OpCompleteTask: {
		user.RoleAdmin:      Always(),
		user.RoleManager:    AnyOf(RelAssignee),
		user.RoleTeamLeader: AnyOf(RelAssignee),
		user.RoleMember:     AnyOf(RelAssignee),
	},
	OpDeleteTask: {
		user.RoleAdmin:      Always(),
		user.RoleManager:    Always(),
		user.RoleTeamLeader: Never(),
		user.RoleMember:     Never(),
	},
	OpListTasksBySubject: {
		user.RoleAdmin:      Always(),
		user.RoleManager:    AnyOf(RelSelf, RelManagesTeam),
		user.RoleTeamLeader: AnyOf(RelSelf, RelManagesTeam),
		user.RoleMember:     AnyOf(RelSelf, RelManagesTeam),
	},
	OpCreateTeam: {
		user.RoleAdmin:      Always(),
		user.RoleManager:    Always(),
		user.RoleTeamLeader: Never(),
		user.RoleMember:     Never(),
	},
	OpUpdateTeam: {
		user.RoleAdmin:      Always(),
		user.RoleManager:    Always(),
		user.RoleTeamLeader: Never(),
		user.RoleMember:     Never(),
	},
	OpDeleteTeam: {
		user.RoleAdmin:      Always(),
		user.RoleManager:    Always(),
		user.RoleTeamLeader: Never(),
		user.RoleMember:     Never(),
	},
	OpViewTeam: {
		user.RoleAdmin:      Always(),
		user.RoleManager:    Always(),
		user.RoleTeamLeader: AnyOf(RelTeamMember),
		user.RoleMember:     AnyOf(RelTeamMember),
	},
	OpManageTeamMembers: {
		user.RoleAdmin:      Always(),
		user.RoleManager:    AnyOf(RelManagesTeam),
		user.RoleTeamLeader: Never(),
		user.RoleMember:     Never(),
	},
	OpCreateUser: {
		user.RoleAdmin:      Always(),
		user.RoleManager:    Always(),
		user.RoleTeamLeader: Never(),
		user.RoleMember:     Never(),
	},
	OpUpdateUser: {
		user.RoleAdmin:      Always(),
		user.RoleManager:    AnyOf(RelManagesTeam, RelSelf),
		user.RoleTeamLeader: AnyOf(RelSelf),
		user.RoleMember:     AnyOf(RelSelf),
	},
	OpDeleteUser: {
		user.RoleAdmin:      Always(),
		user.RoleManager:    AnyOf(RelManagesTeam),
		user.RoleTeamLeader: Never(),
		user.RoleMember:     Never(),
	},
	OpViewUser: {
		user.RoleAdmin:      Always(),
		user.RoleManager:    AnyOf(RelManagesTeam, RelSelf),
		user.RoleTeamLeader: AnyOf(RelSelf),
		user.RoleMember:     AnyOf(RelSelf),
	},
	OpListTeamUsers: {
		user.RoleAdmin:      Always(),
		user.RoleManager:    AnyOf(RelManagesTeam),
		user.RoleTeamLeader: AnyOf(RelTeamMember),
		user.RoleMember:     AnyOf(RelTeamMember),
	},
}

// Operations returns every operation in the table.
func Operations() []Operation {
	ops := make([]Operation, 0, len(table))
	for op := range table {
		ops = append(ops, op)
	}
	return ops
}

// RuleFor returns the rule for op and role, and false when the table has no
// entry (which denies).
func RuleFor(op Operation, role user.Role) (Rule, bool) {
	rules, ok := table[op]
	if !ok {
		return Rule{}, false
	}
	rule, ok := rules[role]
	return rule, ok
}

// Decision is the outcome of evaluating one operation.
type Decision struct {
	Operation Operation
	Role      user.Role
	Relations Relation
	Allowed   bool
}

// Evaluate decides op for actor on target.
func Evaluate(op Operation, a Actor, t Target) Decision {
	rels := Relations(a, t)
	rule, ok := RuleFor(op, a.Role)
	return Decision{
		Operation: op,
		Role:      a.Role,
		Relations: rels,
		Allowed:   ok && rule.Permits(rels),
	}
}

// Allowed reports whether actor may perform op on target.
func Allowed(op Operation, a Actor, t Target) bool {
	return Evaluate(op, a, t).Allowed
}

// Check is Allowed as an error: it returns a NotAuthorized domain error when
// the operation is denied.
func Check(op Operation, a Actor, t Target) error {
	d := Evaluate(op, a, t)
	if d.Allowed {
		return nil
	}
	return Denied(d)
}

// Denied builds the NotAuthorized error for a denied decision.
func Denied(d Decision) *domain.Error {
	return domain.NotAuthorized(d.Operation.Entity(),
		"role %s may not perform %s (relations: %s)", d.Role, d.Operation, d.Relations)
}
