package sync

// Op называет операцию синхронизации, породившую результат.
type Op string

const (
	OpFetch  Op = "fetch"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
	OpSave   Op = "save"
	OpSend   Op = "send"
)

// Result описывает исход одной операции. Err равен nil при успехе.
type Result struct {
	Op     Op
	Entity string
	Err    error
}

// Reporter накапливает результаты операций в ограниченном буфере.
// Каждая операция дает отдельный результат вместо единственной
// глобальной строки ошибки.
type Reporter struct {
	limit   int
	results []Result
}

// NewReporter создает репортер, хранящий не более limit последних
// результатов. Неположительный limit заменяется разумным умолчанием.
func NewReporter(limit int) *Reporter {
	if limit <= 0 {
		limit = 64
	}
	return &Reporter{limit: limit}
}

func (r *Reporter) Report(res Result) {
	r.results = append(r.results, res)
	if len(r.results) > r.limit {
		r.results = r.results[len(r.results)-r.limit:]
	}
}

// Results возвращает копию накопленных результатов, от старых к новым.
func (r *Reporter) Results() []Result {
	out := make([]Result, len(r.results))
	copy(out, r.results)
	return out
}

// Last возвращает последний результат, если он есть.
func (r *Reporter) Last() (Result, bool) {
	if len(r.results) == 0 {
		return Result{}, false
	}
	return r.results[len(r.results)-1], true
}

// Clear очищает буфер.
func (r *Reporter) Clear() {
	r.results = r.results[:0]
}
