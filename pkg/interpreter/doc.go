// Package interpreter executes bound trees produced by the binder. Evaluation
// walks the tree directly and keeps every variable in the caller's flat
// runtime.Variables store; only division by zero can fail at run time.
package interpreter
