package logfacade

import (
	"path"
	"strings"
)

// NamespaceDebugger is a DebugSink that enables namespaces by glob pattern.
//
// Patterns use path.Match syntax; a leading '-' excludes matching
// namespaces and exclusions win. With no include pattern, every namespace
// not excluded is enabled. Enabled messages are prefixed with their namespace.
type NamespaceDebugger struct {
	include []string
	exclude []string
}

// NewNamespaceDebugger returns a debugger for the given patterns. Patterns
// may also be comma- or space-separated lists.
func NewNamespaceDebugger(patterns ...string) *NamespaceDebugger {
	d := &NamespaceDebugger{}
	for _, p := range patterns {
		for _, field := range strings.FieldsFunc(p, func(r rune) bool { return r == ',' || r == ' ' }) {
			if rest, ok := strings.CutPrefix(field, "-"); ok {
				if rest != emptyString {
					d.exclude = append(d.exclude, rest)
				}
				continue
			}
			d.include = append(d.include, field)
		}
	}
	return d
}

// Enabled reports whether namespace passes the patterns.
func (d *NamespaceDebugger) Enabled(namespace string) bool {
	for _, p := range d.exclude {
		if match(p, namespace) {
			return false
		}
	}
	if len(d.include) == 0 {
		return true
	}
	for _, p := range d.include {
		if match(p, namespace) {
			return true
		}
	}
	return false
}

// Bind implements DebugSink. The enabled check runs once, at bind time.
func (d *NamespaceDebugger) Bind(namespace string, out func(msg string)) func(msg string) {
	if out == nil || !d.Enabled(namespace) {
		return func(string) {}
	}
	prefix := namespace + " "
	return func(msg string) {
		out(prefix + msg)
	}
}

// match treats "*" at the end of a pattern as matching across '/'.
func match(pattern, namespace string) bool {
	if pattern == "*" {
		return true
	}
	if head, ok := strings.CutSuffix(pattern, "*"); ok && !strings.ContainsAny(head, "*?[\\") {
		return strings.HasPrefix(namespace, head)
	}
	ok, err := path.Match(pattern, namespace)
	return err == nil && ok
}
