package logfacade

import (
	stderrs "errors"
	"strings"

	smerrors "github.com/Station-Manager/errors"
)

const (
	maxChainDepth  = 50
	chainSeparator = " -> "
)

// chainLink is one error in a cause chain. op is set for DetailedError links.
type chainLink struct {
	msg string
	op  string
}

// errorChain lists an error and its causes, outermost first.
type errorChain []chainLink

// walkErrorChain follows DetailedError causes, falling back to errors.Unwrap
// for other values. The walk stops at maxChainDepth or on a message it has
// already seen.
func walkErrorChain(err error) errorChain {
	var chain errorChain
	seen := make(map[string]struct{})

	for err != nil && len(chain) < maxChainDepth {
		if dErr, ok := smerrors.AsDetailedError(err); ok && dErr != nil {
			chain = append(chain, chainLink{msg: dErr.Error(), op: string(dErr.Op())})
			err = dErr.Cause()
			continue
		}

		msg := err.Error()
		if _, dup := seen[msg]; dup {
			break
		}
		seen[msg] = struct{}{}
		chain = append(chain, chainLink{msg: msg})
		err = stderrs.Unwrap(err)
	}
	return chain
}

func (c errorChain) messages() []string {
	out := make([]string, len(c))
	for i, l := range c {
		out[i] = l.msg
	}
	return out
}

// root is the innermost link, or the zero link for an empty chain.
func (c errorChain) root() chainLink {
	if len(c) == 0 {
		return chainLink{}
	}
	return c[len(c)-1]
}

func (c errorChain) String() string {
	return strings.Join(c.messages(), chainSeparator)
}
