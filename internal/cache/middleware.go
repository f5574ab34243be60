package cache

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type bodyRecorder struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// cachedPage is the stored envelope: the body plus the Content-Type it was
// originally served with, so replays keep the header intact.
type cachedPage struct {
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// Page serves successful GET responses from store for ttl, keyed by request
// path plus raw query. A hit replays the recorded body and Content-Type
// without running the handler at all.
func Page(store Store, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			key += "?" + c.Request.URL.RawQuery
		}

		if raw, ok := store.Get(c.Request.Context(), key); ok {
			var page cachedPage
			if err := json.Unmarshal(raw, &page); err == nil {
				c.Data(http.StatusOK, page.ContentType, page.Body)
				c.Abort()
				return
			}
			// An undecodable entry counts as a miss and gets overwritten.
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer, buf: &bytes.Buffer{}}
		c.Writer = recorder
		c.Next()

		if recorder.Status() == http.StatusOK {
			raw, err := json.Marshal(cachedPage{
				ContentType: recorder.Header().Get("Content-Type"),
				Body:        recorder.buf.Bytes(),
			})
			if err != nil {
				return
			}
			store.Set(c.Request.Context(), key, raw, ttl)
		}
	}
}
