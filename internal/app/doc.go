// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
//
// Every service call runs inside exactly one store transaction, loads the
// acting user, consults the policy engine and only then mutates state through
// domain functions.
package app
