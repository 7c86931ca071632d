package editevents

import (
	"context"
	"strings"
)

type actionFunc func(context.Context, Event) error

type actionFactory struct {
	byType map[string]actionFunc
}

func newActionFactory(p *Processor) *actionFactory {
	return &actionFactory{
		byType: map[string]actionFunc{
			TypePath:   p.onPath,
			TypeMove:   p.onMove,
			TypeRemove: p.onRemove,
			TypeRename: p.onRename,
			TypeSave:   p.onSave,
			TypeCancel: p.onCancel,
		},
	}
}

func (f *actionFactory) get(kind string) (actionFunc, bool) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	fn, ok := f.byType[kind]
	return fn, ok
}
