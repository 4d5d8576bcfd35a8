package api

import (
	"io"
	"net/http"
	"net/url"
	"sync"
)

// ProgressEvent reports how much of a request body has been sent.
type ProgressEvent struct {
	Loaded  int64
	Total   int64
	Percent int
}

type ProgressFunc func(ProgressEvent)

// FormField is a plain multipart field.
type FormField struct {
	Name  string
	Value string
}

// FilePart is the file of a multipart request.
type FilePart struct {
	Field  string
	Name   string
	Reader io.Reader
	Size   int64
}

// Multipart is a multipart/form-data body. Fields are written before the
// file, in order.
type Multipart struct {
	Fields []FormField
	File   *FilePart
}

// Request is one backend call. Data is sent as JSON; Multipart wins when
// both are set.
type Request struct {
	Path      string
	Method    string
	Params    url.Values
	Data      any
	Multipart *Multipart
	Headers   http.Header
	Progress  ProgressFunc
}

func (r Request) method() string {
	if r.Method == "" {
		return http.MethodGet
	}
	return r.Method
}

// progressReader counts bytes read and reports them as floor percentages.
type progressReader struct {
	r      io.Reader
	total  int64
	fn     ProgressFunc
	mu     sync.Mutex
	loaded int64
}

func newProgressReader(r io.Reader, total int64, fn ProgressFunc) io.Reader {
	if fn == nil {
		return r
	}
	return &progressReader{r: r, total: total, fn: fn}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.mu.Lock()
		p.loaded += int64(n)
		ev := ProgressEvent{Loaded: p.loaded, Total: p.total, Percent: percent(p.loaded, p.total)}
		p.mu.Unlock()
		p.fn(ev)
	}
	return n, err
}

func percent(loaded, total int64) int {
	if total <= 0 {
		return 0
	}
	if loaded >= total {
		return 100
	}
	return int(loaded * 100 / total)
}
