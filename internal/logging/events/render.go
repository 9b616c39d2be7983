package events

import "github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/logging"

type RenderTracer struct{}

var Render = RenderTracer{}

func (RenderTracer) Frame(header string, screen, motion int) {
	logging.Trace("render.frame", map[string]interface{}{
		"header": header,
		"screen": screen,
		"motion": motion,
	})
}
