// Package recipe projects compiled shops into the bounded recipe form the
// presentation layer consumes.
package recipe
