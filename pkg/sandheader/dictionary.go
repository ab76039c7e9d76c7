package sandheader

import (
	"fmt"
	"strings"

	"github.com/dunglas/httpsfv"
)

// paramRule — правило для одного параметра значения заголовка.
type paramRule struct {
	name     string
	required bool
	check    func(v any) string // "" — значение корректно
}

// dictionaryChecker — значение заголовка как словарь RFC 8941: `level=1200, t=1476873600000`.
// Каждая проблема даёт ровно одну строку диагностики; порядок детерминирован.
type dictionaryChecker struct {
	name  string
	rules []paramRule
}

func (c *dictionaryChecker) Name() string { return c.name }

// CheckSyntax — проверяет значение; пустой результат означает корректный синтаксис.
func (c *dictionaryChecker) CheckSyntax(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return []string{"empty header value"}
	}

	dict, err := httpsfv.UnmarshalDictionary([]string{value})
	if err != nil {
		return []string{fmt.Sprintf("malformed value %q: %v", value, err)}
	}

	var diags []string

	// неизвестные параметры — в порядке появления в значении
	known := make(map[string]struct{}, len(c.rules))
	for _, rule := range c.rules {
		known[rule.name] = struct{}{}
	}
	for _, name := range dict.Names() {
		if _, ok := known[name]; !ok {
			diags = append(diags, fmt.Sprintf("unknown parameter %q", name))
		}
	}

	for _, rule := range c.rules {
		member, ok := dict.Get(rule.name)
		if !ok {
			if rule.required {
				diags = append(diags, fmt.Sprintf("missing required parameter %q", rule.name))
			}
			continue
		}
		item, isItem := member.(httpsfv.Item)
		if !isItem {
			diags = append(diags, fmt.Sprintf("parameter %q must be a single value, not a list", rule.name))
			continue
		}
		if msg := rule.check(item.Value); msg != "" {
			diags = append(diags, fmt.Sprintf("parameter %q %s", rule.name, msg))
		}
		// у значений SAND-параметров атрибутов нет: `level=1200;foo=bar`
		if item.Params != nil {
			for _, attr := range item.Params.Names() {
				diags = append(diags, fmt.Sprintf("unknown attribute %q on parameter %q", attr, rule.name))
			}
		}
	}

	return diags
}

// ------ проверки значений ------

func nonNegativeInteger(v any) string {
	n, ok := v.(int64)
	if !ok {
		return fmt.Sprintf("must be an integer, got %s", describe(v))
	}
	if n < 0 {
		return fmt.Sprintf("must be >= 0, got %d", n)
	}
	return ""
}

func positiveInteger(v any) string {
	n, ok := v.(int64)
	if !ok {
		return fmt.Sprintf("must be an integer, got %s", describe(v))
	}
	if n <= 0 {
		return fmt.Sprintf("must be > 0, got %d", n)
	}
	return ""
}

// numberInRange — целое или десятичное число в [lo, hi].
func numberInRange(lo, hi float64) func(v any) string {
	return func(v any) string {
		f, ok := asNumber(v)
		if !ok {
			return fmt.Sprintf("must be a number, got %s", describe(v))
		}
		if f < lo || f > hi {
			return fmt.Sprintf("must be in [%g, %g], got %g", lo, hi, f)
		}
		return ""
	}
}

func nonNegativeNumber(v any) string {
	f, ok := asNumber(v)
	if !ok {
		return fmt.Sprintf("must be a number, got %s", describe(v))
	}
	if f < 0 {
		return fmt.Sprintf("must be >= 0, got %g", f)
	}
	return ""
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// describe — тип значения RFC 8941 в человекочитаемом виде.
func describe(v any) string {
	switch v.(type) {
	case int64:
		return "integer"
	case float64:
		return "decimal"
	case string:
		return "string"
	case httpsfv.Token:
		return "token"
	case []byte:
		return "byte sequence"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
