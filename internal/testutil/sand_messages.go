package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// SANDNamespace — пространство имён встроенной схемы.
const SANDNamespace = "urn:mpeg:dash:schema:sand:2016"

// MalformedMessage — тело, которое не является корректным XML.
const MalformedMessage = `<SANDMessage xmlns="urn:mpeg:dash:schema:sand:2016" senderId="c1"><MaxRTT maxRTT="10">`

// Message — параметры генерируемого SAND-сообщения.
type Message struct {
	SenderID       string // пустое значение — атрибут не выводится (нарушение схемы)
	GenerationTime time.Time
	Elements       []string // сырые XML-фрагменты внутри SANDMessage
}

// Мини-генератор валидного SAND-сообщения
func MakeMessage(opts ...func(*Message)) []byte {
	now := time.Now().UTC().Truncate(time.Second)

	m := Message{
		SenderID:       "client-" + UniqSuffix(),
		GenerationTime: now,
		Elements: []string{
			`<MaxRTT messageId="1" maxRTT="150"/>`,
			fmt.Sprintf(`<BufferLevel><Entry time="%s" level="1200"/></BufferLevel>`, now.Format(time.RFC3339)),
		},
	}
	for _, opt := range opts {
		opt(&m)
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString(`<SANDMessage xmlns="` + SANDNamespace + `"`)
	if m.SenderID != "" {
		b.WriteString(` senderId="` + m.SenderID + `"`)
	}
	if !m.GenerationTime.IsZero() {
		b.WriteString(` generationTime="` + m.GenerationTime.Format(time.RFC3339) + `"`)
	}
	b.WriteString(">")
	for _, el := range m.Elements {
		b.WriteString(el)
	}
	b.WriteString("</SANDMessage>")
	return []byte(b.String())
}

// WithoutSender — сообщение без обязательного атрибута senderId.
func WithoutSender() func(*Message) {
	return func(m *Message) { m.SenderID = "" }
}

// WithElements — заменяет содержимое SANDMessage.
func WithElements(elements ...string) func(*Message) {
	return func(m *Message) { m.Elements = elements }
}
