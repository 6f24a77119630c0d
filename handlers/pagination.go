package handlers

import (
	"net/url"
	"strconv"

	"blogserver/config"

	"github.com/gin-gonic/gin"
)

// PageEnvelope is the wire shape of every windowed list response.
type PageEnvelope struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// parseWindow reads limit/offset query values, clamping the limit to a
// positive default and the offset to zero or more.
func parseWindow(limitParam, offsetParam string) (limit, offset int) {
	limit = config.PAGE_SIZE
	if limit <= 0 {
		limit = 10
	}
	if n, err := strconv.Atoi(limitParam); err == nil && n > 0 {
		limit = n
	}
	if n, err := strconv.Atoi(offsetParam); err == nil && n > 0 {
		offset = n
	}
	return
}

// windowLinks computes the next/previous cursor URLs for the window
// [offset, offset+limit) over count items. A nil link means no page in
// that direction.
func windowLinks(base *url.URL, count int64, limit, offset int) (next, previous *string) {
	if int64(offset+limit) < count {
		next = windowURL(base, limit, offset+limit)
	}
	if offset > 0 {
		prev := offset - limit
		if prev < 0 {
			prev = 0
		}
		previous = windowURL(base, limit, prev)
	}
	return
}

func windowURL(base *url.URL, limit, offset int) *string {
	u := *base
	query := u.Query()
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))
	u.RawQuery = query.Encode()
	s := u.String()
	return &s
}

// requestWindow extracts the window from the request query.
func requestWindow(c *gin.Context) (limit, offset int) {
	return parseWindow(c.Query("limit"), c.Query("offset"))
}

// paginate wraps one page of results in the list envelope, with cursors
// rebuilt from the inbound request URL.
func paginate(c *gin.Context, count int64, limit, offset int, results interface{}) PageEnvelope {
	base := *c.Request.URL
	if base.Host == "" {
		base.Host = c.Request.Host
	}
	if base.Scheme == "" {
		base.Scheme = "http"
		if c.Request.TLS != nil {
			base.Scheme = "https"
		}
	}
	next, previous := windowLinks(&base, count, limit, offset)
	return PageEnvelope{
		Count:    count,
		Next:     next,
		Previous: previous,
		Results:  results,
	}
}
