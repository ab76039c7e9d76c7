package ports

// HeaderChecker — проверка синтаксиса значения одного SAND-заголовка.
// Пустой результат означает, что значение синтаксически корректно.
type HeaderChecker interface {
	Name() string
	CheckSyntax(value string) []string
}

// CheckerRegistry — неизменяемое соответствие «имя заголовка → проверка».
// Поиск нечувствителен к регистру; (nil, false) для неподдерживаемых заголовков.
type CheckerRegistry interface {
	Lookup(headerName string) (HeaderChecker, bool)
}
