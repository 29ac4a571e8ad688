/*
Package debug switches precondition checking of the containers on and off.

Build (or test) with

	go test -tags labdebug ./...

to have violated preconditions panic with an assertion failure. Without the tag
preconditions are the caller's responsibility and are not checked.
*/
package debug
