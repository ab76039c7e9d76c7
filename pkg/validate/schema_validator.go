package validate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Gunvolt24/sand_conformance/internal/domain"
	"github.com/Gunvolt24/sand_conformance/internal/ports"
	"github.com/lestrrat-go/libxml2"
	"github.com/lestrrat-go/libxml2/xsd"
)

// Проверка, что SchemaValidator удовлетворяет интерфейсу MessageValidator.
var _ ports.MessageValidator = (*SchemaValidator)(nil)

// CheckName — имя проверки тела сообщения в отчёте.
const CheckName = domain.CheckMessageBody

var (
	// ErrSchemaLoad — схему не удалось прочитать или разобрать (фатально для старта сервиса).
	ErrSchemaLoad = errors.New("sand schema load failed")
	// ErrInvalidMessage — базовая (sentinel error) ошибка невалидного SAND-сообщения.
	ErrInvalidMessage = errors.New("sand message validation failed")
)

// SchemaValidator — проверка SAND-сообщений по XSD.
// Схема загружается один раз и дальше только читается: Validate безопасен для конкурентных вызовов.
type SchemaValidator struct {
	schema *xsd.Schema
}

// NewSchemaValidator — разбирает XSD из памяти.
func NewSchemaValidator(definition []byte) (*SchemaValidator, error) {
	if len(bytes.TrimSpace(definition)) == 0 {
		return nil, fmt.Errorf("%w: empty schema definition", ErrSchemaLoad)
	}
	schema, err := xsd.Parse(definition)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaLoad, err)
	}
	return &SchemaValidator{schema: schema}, nil
}

// LoadSchemaValidator — читает XSD с диска и разбирает его.
func LoadSchemaValidator(path string) (*SchemaValidator, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrSchemaLoad, path, err)
	}
	return NewSchemaValidator(raw)
}

// Validate — разбор тела как XML и проверка по схеме.
// Ошибка разбора — обычный (ожидаемый) провал проверки, а не дефект.
func (v *SchemaValidator) Validate(_ context.Context, body []byte) domain.CheckOutcome {
	if len(bytes.TrimSpace(body)) == 0 {
		return domain.Fail(CheckName, "XML parse error: empty message body")
	}

	doc, err := libxml2.Parse(body)
	if err != nil {
		return domain.Fail(CheckName, fmt.Sprintf("XML parse error: %v", err))
	}
	defer doc.Free()

	if err := v.schema.Validate(doc); err != nil {
		return domain.Fail(CheckName, violations(err)...)
	}
	return domain.Pass(CheckName)
}

// Close — освобождает схему (C-память libxml2).
func (v *SchemaValidator) Close() {
	if v.schema != nil {
		v.schema.Free()
		v.schema = nil
	}
}

// violations — по одной строке на каждое нарушение схемы.
func violations(err error) []string {
	var multi interface{ Errors() []error }
	if errors.As(err, &multi) {
		errs := multi.Errors()
		out := make([]string, 0, len(errs))
		for _, e := range errs {
			out = append(out, "schema violation: "+e.Error())
		}
		if len(out) > 0 {
			return out
		}
	}
	return []string{"schema violation: " + err.Error()}
}
