// Package events groups the trace entry points by domain so call sites
// stay short and event names stay consistent.
package events

import "github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) MenuLoaded(path string, items int) {
	logging.Trace("app.menu-loaded", map[string]interface{}{"path": path, "items": items})
}
