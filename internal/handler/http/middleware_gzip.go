// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Voronova

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Writers and readers are pooled: supply list pages with large tag sets are
// the common payload and allocating a fresh gzip state per request is the
// dominant cost of the middleware.
var (
	gzipWriters = sync.Pool{
		New: func() any { return gzip.NewWriter(nil) },
	}
	gzipReaders = sync.Pool{
		New: func() any { return new(gzip.Reader) },
	}
)

// withGzip transparently inflates gzip request bodies and, when the client
// sends Accept-Encoding: gzip, deflates the response.
func withGzip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			if !inflateRequestBody(w, req) {
				return
			}
		}

		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		zw := gzipWriters.Get().(*gzip.Writer)
		zw.Reset(w)

		next.ServeHTTP(&gzipResponse{ResponseWriter: w, zw: zw}, req)

		zw.Close()
		gzipWriters.Put(zw)
	})
}

// inflateRequestBody swaps req.Body for an inflating reader. Reports false
// after writing a 400 when the body is not valid gzip.
func inflateRequestBody(w http.ResponseWriter, req *http.Request) bool {
	zr := gzipReaders.Get().(*gzip.Reader)
	if err := zr.Reset(req.Body); err != nil {
		gzipReaders.Put(zr)
		http.Error(w, "Invalid gzip data", http.StatusBadRequest)
		return false
	}

	req.Body = &inflatedBody{
		Reader: zr,
		release: func() {
			zr.Close()
			gzipReaders.Put(zr)
		},
	}
	req.Header.Del("Content-Encoding")
	return true
}

// inflatedBody returns the pooled reader on Close.
type inflatedBody struct {
	io.Reader
	release func()
}

func (b *inflatedBody) Close() error {
	if b.release != nil {
		b.release()
	}
	return nil
}

// gzipResponse funnels handler writes through the pooled gzip writer.
type gzipResponse struct {
	http.ResponseWriter
	zw *gzip.Writer
}

func (g *gzipResponse) WriteHeader(statusCode int) {
	g.Header().Set("Content-Encoding", "gzip")
	g.ResponseWriter.WriteHeader(statusCode)
}

func (g *gzipResponse) Write(data []byte) (int, error) {
	return g.zw.Write(data)
}
