package intake

import (
	"context"
	"strings"
)

type actionFunc func(context.Context, Event) error

type actionFactory struct {
	byStatus map[string]actionFunc
}

func newActionFactory(onPlaced, onCanceled actionFunc) *actionFactory {
	return &actionFactory{
		byStatus: map[string]actionFunc{
			"placed":  onPlaced,
			"created": onPlaced,
			// the ordering system emits both depending on its version
			"canceled": onCanceled,
			"deleted":  onCanceled,
		},
	}
}

func (f *actionFactory) get(status string) (actionFunc, bool) {
	status = strings.ToLower(strings.TrimSpace(status))
	fn, ok := f.byStatus[status]
	return fn, ok
}
