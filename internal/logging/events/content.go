package events

import "github.com/atomicstack/termdesk/internal/logging"

type ContentTracer struct{}

var Content = ContentTracer{}

func (ContentTracer) Run(requestID, language string, codeBytes int) {
	logging.Trace("content.run", map[string]interface{}{"request": requestID, "language": language, "bytes": codeBytes})
}

func (ContentTracer) RunResult(requestID, status string, err error) {
	payload := map[string]interface{}{"request": requestID, "status": status}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("content.run.result", payload)
}

func (ContentTracer) Load(app string, page int, err error) {
	payload := map[string]interface{}{"app": app, "page": page}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("content.load", payload)
}

func (ContentTracer) Submit(problemID int64, language, status string, err error) {
	payload := map[string]interface{}{"problem": problemID, "language": language, "status": status}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("content.submit", payload)
}

func (ContentTracer) Admin(action string, id int64, err error) {
	payload := map[string]interface{}{"action": action, "id": id}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("content.admin", payload)
}
