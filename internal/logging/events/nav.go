package events

import "github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Move(direction string, item, screen int, changed bool) {
	logging.Trace("nav.move", map[string]interface{}{
		"direction": direction,
		"item":      item,
		"screen":    screen,
		"changed":   changed,
	})
}

func (NavTracer) Enter(item int, descended bool) {
	logging.Trace("nav.enter", map[string]interface{}{"item": item, "descended": descended})
}

func (NavTracer) Back(ascended bool) {
	logging.Trace("nav.back", map[string]interface{}{"ascended": ascended})
}

func (NavTracer) Jump(item int) {
	logging.Trace("nav.jump", map[string]interface{}{"item": item})
}
