// Пакет sandheader — проверки синтаксиса SAND-заголовков (ISO/IEC 23009-5) и их реестр.
package sandheader

import (
	"sort"
	"strings"

	"github.com/Gunvolt24/sand_conformance/internal/ports"
)

// Проверка, что Registry удовлетворяет интерфейсу CheckerRegistry.
var _ ports.CheckerRegistry = (*Registry)(nil)

// Prefix — общий префикс SAND-заголовков (в нижнем регистре).
const Prefix = "sand-"

// UnsupportedDiagnostic — диагностика для SAND-заголовка, которого нет в реестре.
const UnsupportedDiagnostic = "header not supported by this version"

// IsSANDHeader — начинается ли имя заголовка с SAND-префикса (без учёта регистра).
func IsSANDHeader(name string) bool {
	return len(name) >= len(Prefix) && strings.EqualFold(name[:len(Prefix)], Prefix)
}

// Registry — неизменяемое соответствие «имя заголовка в нижнем регистре → проверка».
// Собирается один раз при старте, дальше только читается (конкурентно, без блокировок).
type Registry struct {
	checkers map[string]ports.HeaderChecker
}

// NewRegistry — реестр из переданных проверок; при совпадении имён побеждает последняя.
func NewRegistry(checkers ...ports.HeaderChecker) *Registry {
	r := &Registry{checkers: make(map[string]ports.HeaderChecker, len(checkers))}
	for _, c := range checkers {
		if c == nil {
			continue
		}
		r.checkers[strings.ToLower(strings.TrimSpace(c.Name()))] = c
	}
	return r
}

// DefaultRegistry — реестр со всеми поддерживаемыми SAND-заголовками.
func DefaultRegistry() *Registry {
	return NewRegistry(
		NewBufferLevelChecker(),
		NewThroughputChecker(),
		NewLocationChecker(),
		NewMaxRTTChecker(),
		NewAbsoluteDeadlineChecker(),
	)
}

// Extend — новый реестр: текущие проверки плюс переданные. Исходный реестр не меняется.
func (r *Registry) Extend(checkers ...ports.HeaderChecker) *Registry {
	all := make([]ports.HeaderChecker, 0, len(r.checkers)+len(checkers))
	for _, name := range r.Names() {
		all = append(all, r.checkers[name])
	}
	return NewRegistry(append(all, checkers...)...)
}

// Lookup — найти проверку по имени заголовка без учёта регистра.
func (r *Registry) Lookup(headerName string) (ports.HeaderChecker, bool) {
	c, ok := r.checkers[strings.ToLower(strings.TrimSpace(headerName))]
	return c, ok
}

// Names — имена зарегистрированных заголовков (нижний регистр, по алфавиту).
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.checkers))
	for name := range r.checkers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
