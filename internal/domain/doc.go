// Package domain holds what users, teams and tasks share: the classified
// error type every layer returns, field validation errors and the audit
// timestamps. Entities live in user, team and task; who may do what is
// decided in policy.
package domain
