package domain

import "strings"

// Маркеры итоговой строки отчёта /metrics — по ним клиентский тест-раннер определяет результат.
const (
	SuccessMarker = "[RESULT][OK]"
	FailureMarker = "[RESULT][KO]"
)

// NoSANDHeaderText — тело отчёта /headers, когда SAND-заголовков нет.
const NoSANDHeaderText = "No SAND header found."

const diagnosticIndent = "    "

// Render — текстовое представление отчёта для тела ответа.
func (r *ConformanceReport) Render() string {
	var b strings.Builder
	switch r.Kind {
	case KindHeaders:
		r.renderHeaders(&b)
	default:
		r.renderMessage(&b)
	}
	return b.String()
}

// renderMessage:
//
//	[TEST][OK] HTTP method
//	[TEST][KO] Content-Type
//	    observed "text/xml", expected "application/sand+xml"
//	[RESULT][KO]
func (r *ConformanceReport) renderMessage(b *strings.Builder) {
	for _, o := range r.Outcomes {
		if o.Passed {
			b.WriteString("[TEST][OK] ")
		} else {
			b.WriteString("[TEST][KO] ")
		}
		b.WriteString(o.Name)
		b.WriteByte('\n')
		writeDiagnostics(b, "", o.Diagnostics)
	}
	if r.Passed() {
		b.WriteString(SuccessMarker)
	} else {
		b.WriteString(FailureMarker)
	}
	b.WriteByte('\n')
}

// renderHeaders:
//
//	SAND-BufferLevel: PASSED
//	SAND-Foo: FAILED
//	    - header not supported by this version
func (r *ConformanceReport) renderHeaders(b *strings.Builder) {
	if r.NoSANDHeader {
		b.WriteString(NoSANDHeaderText)
		b.WriteByte('\n')
		return
	}
	for _, o := range r.Outcomes {
		b.WriteString(o.Name)
		if o.Passed {
			b.WriteString(": PASSED\n")
			continue
		}
		b.WriteString(": FAILED\n")
		writeDiagnostics(b, "- ", o.Diagnostics)
	}
}

func writeDiagnostics(b *strings.Builder, bullet string, diagnostics []string) {
	for _, d := range diagnostics {
		// многострочные сообщения (например, от libxml2) выравниваем построчно
		for i, line := range strings.Split(strings.TrimRight(d, "\n"), "\n") {
			b.WriteString(diagnosticIndent)
			if i == 0 {
				b.WriteString(bullet)
			} else {
				b.WriteString(strings.Repeat(" ", len(bullet)))
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
}
