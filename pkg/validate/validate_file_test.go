package validate_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gunvolt24/sand_conformance/internal/testutil"
	"github.com/Gunvolt24/sand_conformance/pkg/validate"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
}

func TestValidateFile_SingleValid(t *testing.T) {
	v := newValidator(t)

	path := filepath.Join(t.TempDir(), "one.xml")
	writeFile(t, path, testutil.MakeMessage())

	var out bytes.Buffer
	sum, err := validate.ValidateFile(context.Background(), v, path, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.String() != "1 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %s", sum)
	}
	if !strings.Contains(out.String(), path+": OK") {
		t.Fatalf("expected OK line, got %q", out.String())
	}
}

func TestValidateFile_DirectoryMixed(t *testing.T) {
	v := newValidator(t)

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.xml"), testutil.MakeMessage())
	writeFile(t, filepath.Join(dir, "b.xml"), []byte(testutil.MalformedMessage))
	writeFile(t, filepath.Join(dir, "c.XML"), testutil.MakeMessage(testutil.WithoutSender()))
	writeFile(t, filepath.Join(dir, "notes.txt"), []byte("ignored"))

	var out bytes.Buffer
	sum, err := validate.ValidateFile(context.Background(), v, dir, &out)
	if !errors.Is(err, validate.ErrInvalidMessage) {
		t.Fatalf("want ErrInvalidMessage, got %v", err)
	}
	if sum.Valid != 1 || sum.Invalid != 2 {
		t.Fatalf("unexpected summary: %s", sum)
	}

	report := out.String()
	if strings.Contains(report, "notes.txt") {
		t.Fatalf("non-xml files must be skipped: %q", report)
	}
	// файлы обрабатываются в отсортированном порядке
	ia := strings.Index(report, "a.xml: OK")
	ib := strings.Index(report, "b.xml: KO")
	ic := strings.Index(report, "c.XML: KO")
	if ia < 0 || ib < 0 || ic < 0 || !(ia < ib && ib < ic) {
		t.Fatalf("unexpected report order:\n%s", report)
	}
}

func TestValidateFile_EmptyDirectory(t *testing.T) {
	v := newValidator(t)

	if _, err := validate.ValidateFile(context.Background(), v, t.TempDir(), &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for directory without xml files")
	}
}

func TestValidateFile_Missing(t *testing.T) {
	v := newValidator(t)

	_, err := validate.ValidateFile(context.Background(), v, filepath.Join(t.TempDir(), "nope.xml"), &bytes.Buffer{})
	if err == nil || errors.Is(err, validate.ErrInvalidMessage) {
		t.Fatalf("expected I/O error, got %v", err)
	}
}

func TestValidateReader_Stdin(t *testing.T) {
	v := newValidator(t)

	var out bytes.Buffer
	ok, err := validate.ValidateReader(context.Background(), v, "<stdin>", bytes.NewReader([]byte(testutil.MalformedMessage)), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("malformed message must be reported as invalid")
	}
	if !strings.HasPrefix(out.String(), "<stdin>: KO\n    XML parse error") {
		t.Fatalf("unexpected report: %q", out.String())
	}
}
