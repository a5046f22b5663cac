// Package ports holds the interfaces the layers meet at. Handlers call the
// service ports (tasks, teams, users, auth); the app services call the store,
// password and token ports, which the postgres/memory adapters and the auth
// package satisfy. Views are the read models the services return.
package ports
