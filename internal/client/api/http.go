package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// HTTPClient talks to the backend over HTTP. Cookies set by the backend are
// kept for the lifetime of the client.
type HTTPClient struct {
	baseURL        string
	http           *http.Client
	requestTimeout time.Duration
	uploadTimeout  time.Duration
}

func NewHTTPClient(baseURL string, requestTimeout, uploadTimeout time.Duration) *HTTPClient {
	jar, _ := cookiejar.New(nil)
	return &HTTPClient{
		baseURL:        strings.TrimRight(baseURL, "/"),
		http:           &http.Client{Jar: jar},
		requestTimeout: requestTimeout,
		uploadTimeout:  uploadTimeout,
	}
}

// Do performs one call and decodes the JSON object it returns. A response
// with a falsy RESULT is not an error here; callers check Response.OK.
func (c *HTTPClient) Do(ctx context.Context, r Request) (Response, error) {
	timeout := c.requestTimeout
	if r.Multipart != nil {
		timeout = c.uploadTimeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	u := c.baseURL + "/" + strings.TrimLeft(r.Path, "/")
	if len(r.Params) > 0 {
		u += "?" + r.Params.Encode()
	}

	body, contentType, err := c.body(r)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, r.method(), u, body)
	if err != nil {
		if rc, ok := body.(io.Closer); ok {
			rc.Close()
		}
		return nil, fmt.Errorf("build request %s: %w", r.Path, err)
	}
	for k, vs := range r.Headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, mapError(err)
	}
	defer resp.Body.Close()

	if err := mapStatus(resp); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var out Response
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedResponse, r.Path, err)
	}
	if out == nil {
		return nil, fmt.Errorf("%w: %s: empty body", ErrMalformedResponse, r.Path)
	}
	return out, nil
}

func (c *HTTPClient) body(r Request) (io.Reader, string, error) {
	switch {
	case r.Multipart != nil:
		return multipartBody(r.Multipart, r.Progress)
	case r.Data != nil:
		b, err := json.Marshal(r.Data)
		if err != nil {
			return nil, "", fmt.Errorf("encode %s: %w", r.Path, err)
		}
		return newProgressReader(bytes.NewReader(b), int64(len(b)), r.Progress), "application/json", nil
	default:
		return nil, "", nil
	}
}

// multipartBody streams the form through a pipe so large files are not
// buffered. Progress covers the file part.
func multipartBody(m *Multipart, progress ProgressFunc) (io.Reader, string, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		err := func() error {
			for _, f := range m.Fields {
				if err := mw.WriteField(f.Name, f.Value); err != nil {
					return err
				}
			}
			if m.File != nil {
				fw, err := mw.CreateFormFile(m.File.Field, m.File.Name)
				if err != nil {
					return err
				}
				if _, err := io.Copy(fw, newProgressReader(m.File.Reader, m.File.Size, progress)); err != nil {
					return err
				}
			}
			return mw.Close()
		}()
		pw.CloseWithError(err)
	}()

	return pr, mw.FormDataContentType(), nil
}

func mapStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, resp.Status)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s", ErrUnavailable, resp.Status)
	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("request failed: %s; body: %s", resp.Status, string(b))
	}
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
