package domain

// ConformanceRequest — то, что ядро видит во входящем запросе. Ядро его не изменяет.
type ConformanceRequest struct {
	Method      string
	ContentType string
	Body        []byte
	// BodyErr — ошибка чтения тела (обрыв соединения, превышение лимита).
	BodyErr error
	// Headers — имя заголовка → значение; несколько значений одного заголовка уже склеены.
	Headers map[string]string
}

// CheckOutcome — результат одной проверки: вердикт и упорядоченные диагностические сообщения.
type CheckOutcome struct {
	Name        string   `json:"name"`
	Passed      bool     `json:"passed"`
	Diagnostics []string `json:"diagnostics,omitempty"`
}

// Pass — успешная проверка.
func Pass(name string) CheckOutcome {
	return CheckOutcome{Name: name, Passed: true}
}

// Fail — проваленная проверка с диагностикой.
func Fail(name string, diagnostics ...string) CheckOutcome {
	return CheckOutcome{Name: name, Passed: false, Diagnostics: diagnostics}
}

// Имена проверок /metrics в порядке выполнения.
const (
	CheckMethod      = "HTTP method"
	CheckContentType = "Content-Type"
	CheckMessageBody = "SAND message validation"
)

// ReportKind — форма отчёта (от неё зависит отрисовка и HTTP-статус).
type ReportKind string

const (
	KindMessage ReportKind = "message" // /metrics: общий вердикт по трём проверкам
	KindHeaders ReportKind = "headers" // /headers: построчный отчёт по SAND-заголовкам
)

// ConformanceReport — отчёт по одному запросу. Живёт ровно столько, сколько обработка запроса.
type ConformanceReport struct {
	Kind     ReportKind
	Outcomes []CheckOutcome
	// NoSANDHeader — в запросе не было ни одного SAND-заголовка (отдельная форма отчёта).
	NoSANDHeader bool
}

// NewReport — пустой отчёт заданного вида.
func NewReport(kind ReportKind) *ConformanceReport {
	return &ConformanceReport{Kind: kind}
}

// Add — добавить результат проверки.
func (r *ConformanceReport) Add(outcome CheckOutcome) {
	r.Outcomes = append(r.Outcomes, outcome)
}

// Passed — логическое И всех проверок; отчёт без проверок считается успешным.
func (r *ConformanceReport) Passed() bool {
	for i := range r.Outcomes {
		if !r.Outcomes[i].Passed {
			return false
		}
	}
	return true
}

// Failed — список проваленных проверок в исходном порядке.
func (r *ConformanceReport) Failed() []CheckOutcome {
	var out []CheckOutcome
	for i := range r.Outcomes {
		if !r.Outcomes[i].Passed {
			out = append(out, r.Outcomes[i])
		}
	}
	return out
}
