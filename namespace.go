package logfacade

import (
	"path"
	"strings"
)

// DeriveNamespace turns a source identifier into "<app>:<module>[:<kind>]".
//
// The identifier is made relative to root/sourceDir, its separators are
// normalized to '/', and the extension of the final element is dropped.
// Modules under common/ run in several process kinds, so they get the kind
// appended.
func DeriveNamespace(sourceID, root, sourceDir, appName, processKind string) string {
	name := toSlash(sourceID)

	prefix := toSlash(path.Join(toSlash(root), toSlash(sourceDir)))
	if prefix != emptyString && prefix != "." {
		prefix = strings.TrimSuffix(prefix, "/") + "/"
		name = strings.TrimPrefix(name, prefix)
	}

	if ext := path.Ext(name); ext != emptyString {
		name = strings.TrimSuffix(name, ext)
	}

	if strings.HasPrefix(name, sharedPrefix) {
		name += nsSeparator + processKind
	}

	return appName + nsSeparator + name
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
