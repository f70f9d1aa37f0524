package script

import (
	"github.com/selkie-editor/selkie/internal/dispatcher"
	"github.com/selkie-editor/selkie/internal/engine/motion"
	"github.com/selkie-editor/selkie/internal/engine/text"
)

// Bind registers every motion of the host as a dispatcher action named
// "lua:<motion>". A failing script leaves the cursor where it was;
// onError, when non-nil, receives the failure.
func Bind(h *Host, reg *dispatcher.Registry, onError func(error)) error {
	for _, name := range h.Motions() {
		name := name
		spec := dispatcher.NewPointAction("lua:"+name, func(c motion.Context, p text.Position) text.Position {
			target, err := h.Apply(c.Source, name, p, 1)
			if err != nil {
				if onError != nil {
					onError(err)
				}
				return p
			}
			return target
		})
		if err := reg.RegisterAction(spec); err != nil {
			return err
		}
	}
	return nil
}
