package events

import "github.com/atomicstack/termdesk/internal/logging"

type WindowTracer struct{}

var Window = WindowTracer{}

func (WindowTracer) Open(id, title string, z int) {
	logging.Trace("window.open", map[string]interface{}{"id": id, "title": title, "z": z})
}

func (WindowTracer) Reopen(id string, z int) {
	logging.Trace("window.reopen", map[string]interface{}{"id": id, "z": z})
}

func (WindowTracer) Close(id string, wasActive bool) {
	logging.Trace("window.close", map[string]interface{}{"id": id, "wasActive": wasActive})
}

func (WindowTracer) Minimize(id string, wasActive bool) {
	logging.Trace("window.minimize", map[string]interface{}{"id": id, "wasActive": wasActive})
}

func (WindowTracer) Maximize(id string) {
	logging.Trace("window.maximize", map[string]interface{}{"id": id})
}

func (WindowTracer) Restore(id string, z int) {
	logging.Trace("window.restore", map[string]interface{}{"id": id, "z": z})
}

func (WindowTracer) Focus(id string, z int) {
	logging.Trace("window.focus", map[string]interface{}{"id": id, "z": z})
}

func (WindowTracer) Move(id string, x, y int) {
	logging.Trace("window.move", map[string]interface{}{"id": id, "x": x, "y": y})
}
