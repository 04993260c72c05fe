// Package types defines the contact record and address book entities, the
// view interface, and standard error types for the blackbook contact
// manager.
package types
