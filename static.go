package logfacade

import "runtime"

// StaticPaths is a PathResolver with fixed values.
type StaticPaths struct {
	Root string
	Name string
}

func (p StaticPaths) AppPath() string { return p.Root }
func (p StaticPaths) AppName() string { return p.Name }

// StaticProcessKind is a ProcessKindProvider with a fixed label.
type StaticProcessKind string

func (k StaticProcessKind) ProcessKind() string { return string(k) }

// SourceFile returns the path of the file that called it, for use as a
// source identifier. It returns "" if the caller cannot be determined.
func SourceFile() string {
	_, file, _, ok := runtime.Caller(1)
	if !ok {
		return emptyString
	}
	return file
}
