package events

import "github.com/atomicstack/tabfinder/internal/logging"

type QueryTracer struct{}

type SelectionTracer struct{}

type LazyTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

type BackendTracer struct{}

var (
	Query     = QueryTracer{}
	Selection = SelectionTracer{}
	Lazy      = LazyTracer{}
	Action    = ActionTracer{}
	Command   = CommandTracer{}
	Backend   = BackendTracer{}
)

func (QueryTracer) Issue(seq uint64, query string) {
	logging.Trace("query.issue", map[string]interface{}{"seq": seq, "query": query})
}

func (QueryTracer) Apply(seq uint64, query string, rows int) {
	logging.Trace("query.apply", map[string]interface{}{"seq": seq, "query": query, "rows": rows})
}

// Stale records a discarded out-of-order completion. Not an error.
func (QueryTracer) Stale(seq, latest uint64) {
	logging.Trace("query.stale", map[string]interface{}{"seq": seq, "latest": latest})
}

func (QueryTracer) Failed(seq uint64, query string, err error) {
	payload := map[string]interface{}{"seq": seq, "query": query}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("query.failed", payload)
}

func (SelectionTracer) Changed(index int, id string) {
	logging.Trace("selection.changed", map[string]interface{}{"index": index, "id": id})
}

func (SelectionTracer) Activate(index int, id string, secondary bool) {
	logging.Trace("selection.activate", map[string]interface{}{"index": index, "id": id, "secondary": secondary})
}

func (LazyTracer) Frame(drained, realized, deferred int) {
	logging.Trace("lazy.frame", map[string]interface{}{"drained": drained, "realized": realized, "deferred": deferred})
}

func (LazyTracer) Visible(count int) {
	logging.Trace("lazy.visible", map[string]interface{}{"count": count})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
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

func (BackendTracer) Change(path, op string) {
	logging.Trace("backend.change", map[string]interface{}{"path": path, "op": op})
}

func (BackendTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("backend.error", map[string]interface{}{"error": err.Error()})
}
