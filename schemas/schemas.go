// Пакет schemas — встроенные XSD-схемы SAND-сообщений (ISO/IEC 23009-5).
package schemas

import _ "embed"

// SANDMessages — схема по умолчанию; используется, если путь к XSD не задан в конфигурации.
//
//go:embed sand_messages.xsd
var SANDMessages []byte
