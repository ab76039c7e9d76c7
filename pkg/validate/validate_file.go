package validate

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Gunvolt24/sand_conformance/internal/ports"
)

// Summary — статистика офлайн-валидации.
type Summary struct {
	Valid   int
	Invalid int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d valid / %d invalid", s.Valid, s.Invalid)
}

// ValidateFile — валидирует SAND-сообщение из файла или все *.xml в каталоге и пишет отчёт в writer.
// При наличии невалидных сообщений возвращает ErrInvalidMessage (с обёрнутой статистикой).
func ValidateFile(ctx context.Context, validator ports.MessageValidator, path string, ow io.Writer) (Summary, error) {
	var sum Summary

	files, err := collectFiles(path)
	if err != nil {
		return sum, err
	}

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		f, err := os.Open(name)
		if err != nil {
			return sum, fmt.Errorf("open file: %w", err)
		}
		ok, err := ValidateReader(ctx, validator, name, f, ow)
		_ = f.Close()
		if err != nil {
			return sum, err
		}
		if ok {
			sum.Valid++
		} else {
			sum.Invalid++
		}
	}

	if sum.Invalid > 0 {
		return sum, fmt.Errorf("%w (%s)", ErrInvalidMessage, sum)
	}
	return sum, nil
}

// ValidateReader — валидирует одно сообщение из reader’а; печатает `<name>: OK|KO` и диагностику.
func ValidateReader(ctx context.Context, validator ports.MessageValidator, name string, ir io.Reader, ow io.Writer) (bool, error) {
	raw, err := io.ReadAll(ir)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", name, err)
	}

	outcome := validator.Validate(ctx, raw)
	verdict := "OK"
	if !outcome.Passed {
		verdict = "KO"
	}
	if _, err := fmt.Fprintf(ow, "%s: %s\n", name, verdict); err != nil {
		return false, fmt.Errorf("write report: %w", err)
	}
	for _, d := range outcome.Diagnostics {
		if _, err := fmt.Fprintf(ow, "    %s\n", strings.TrimRight(d, "\n")); err != nil {
			return false, fmt.Errorf("write report: %w", err)
		}
	}
	return outcome.Passed, nil
}

// collectFiles — сам файл или отсортированный список *.xml внутри каталога.
func collectFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".xml") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no *.xml files in %s", path)
	}
	sort.Strings(files)
	return files, nil
}
