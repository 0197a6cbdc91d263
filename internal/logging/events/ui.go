package events

import "github.com/atomicstack/termdesk/internal/logging"

type DragTracer struct{}

type TaskbarTracer struct{}

type LauncherTracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

type dragReason string

const (
	ReasonRelease  dragReason = "release"
	ReasonNoButton dragReason = "no-button"
	ReasonGone     dragReason = "gone"
)

var (
	Drag     = DragTracer{}
	Taskbar  = TaskbarTracer{}
	Launcher = LauncherTracer{}
	Filter   = FilterTracer{}
	Command  = CommandTracer{}
)

func (DragTracer) Begin(id string, offsetX, offsetY int) {
	logging.Trace("drag.begin", map[string]interface{}{"id": id, "offsetX": offsetX, "offsetY": offsetY})
}

func (DragTracer) End(id string, reason dragReason) {
	logging.Trace("drag.end", map[string]interface{}{"id": id, "reason": string(reason)})
}

func (TaskbarTracer) Click(id string, minimized bool) {
	logging.Trace("taskbar.click", map[string]interface{}{"id": id, "minimized": minimized})
}

func (TaskbarTracer) Overflow(open bool, hidden int) {
	logging.Trace("taskbar.overflow", map[string]interface{}{"open": open, "hidden": hidden})
}

func (LauncherTracer) Toggle(open bool) {
	logging.Trace("launcher.toggle", map[string]interface{}{"open": open})
}

func (LauncherTracer) Launch(id string, x, y int) {
	logging.Trace("launcher.launch", map[string]interface{}{"id": id, "x": x, "y": y})
}

func (FilterTracer) Append(levelID, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"level": levelID, "filter": filter})
}

func (FilterTracer) Backspace(levelID, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"level": levelID, "filter": filter})
}

func (FilterTracer) Cleared(levelID string) {
	logging.Trace("filter.clear", map[string]interface{}{"level": levelID})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}

func (CommandTracer) Dropped(id, msgType string) {
	logging.Trace("command.dropped", map[string]interface{}{"id": id, "msg": msgType})
}
