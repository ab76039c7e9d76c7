package httpx

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrBodyTooLarge — тело запроса превысило допустимый размер.
var ErrBodyTooLarge = errors.New("request body too large")

// ReadBody — читает тело запроса не больше limit байт (limit <= 0 — без ограничения).
// При превышении возвращает прочитанную часть и ErrBodyTooLarge.
func ReadBody(c *gin.Context, limit int64) ([]byte, error) {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return nil, nil
	}
	if limit <= 0 {
		return io.ReadAll(c.Request.Body)
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, limit))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return body, fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, maxErr.Limit)
		}
		return body, err
	}
	return body, nil
}

// HeaderMap — заголовки запроса «имя → значение»; несколько значений склеиваются через ", ".
func HeaderMap(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		out[name] = strings.Join(values, ", ")
	}
	return out
}
