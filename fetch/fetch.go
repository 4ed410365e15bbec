// Package fetch acquires vendor product pages. A fetch never escalates to a
// retry: the first response is classified as OK, Blocked, or Error and the
// pipeline branches on that classification.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	tls2 "github.com/refraction-networking/utls"
)

const chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

// maxBodyBytes caps how much of a vendor page is read.
const maxBodyBytes = 10 * 1024 * 1024

// Kind classifies a fetch result.
type Kind int

const (
	// KindOK: an HTML body was retrieved.
	KindOK Kind = iota

	// KindBlocked: the vendor answered 403 or 404. The pipeline switches to
	// the identity-only degraded path; a blocking vendor will not yield
	// useful markup, so no time is spent parsing.
	KindBlocked

	// KindError: network failure, timeout, or a non-block error status.
	KindError
)

// Result is a classified page fetch.
type Result struct {
	Kind       Kind
	HTML       string
	StatusCode int
	FinalURL   string
	Origin     string // scheme + host of the final URL
	Err        error
}

// Fetcher performs HTTP requests with a Chrome TLS fingerprint and
// browser-like headers.
type Fetcher struct {
	timeout      time.Duration
	probeTimeout time.Duration
	defaultProxy string
}

// New creates a Fetcher. timeout bounds a page GET; probeTimeout bounds the
// image HEAD probe.
func New(timeout, probeTimeout time.Duration, defaultProxy string) *Fetcher {
	return &Fetcher{
		timeout:      timeout,
		probeTimeout: probeTimeout,
		defaultProxy: defaultProxy,
	}
}

// Page retrieves targetURL and classifies the response. Redirects are
// followed; 403/404 map to KindBlocked, other failures to KindError. The
// returned Result is never nil.
func (f *Fetcher) Page(ctx context.Context, targetURL string) *Result {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	client := f.newClient()
	defer client.CloseIdleConnections()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return &Result{Kind: KindError, Err: fmt.Errorf("fetch: build request: %w", err)}
	}
	setBrowserHeaders(req, targetURL)

	resp, err := client.Do(req)
	if err != nil {
		return &Result{Kind: KindError, Err: fmt.Errorf("fetch: request failed: %w", err)}
	}
	defer resp.Body.Close()

	finalURL := targetURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusNotFound {
		return &Result{
			Kind:       KindBlocked,
			StatusCode: resp.StatusCode,
			FinalURL:   finalURL,
			Origin:     originOf(finalURL),
		}
	}
	if resp.StatusCode >= 400 {
		return &Result{
			Kind:       KindError,
			StatusCode: resp.StatusCode,
			FinalURL:   finalURL,
			Err:        fmt.Errorf("fetch: HTTP %d for %s", resp.StatusCode, targetURL),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &Result{Kind: KindError, StatusCode: resp.StatusCode, Err: fmt.Errorf("fetch: read body: %w", err)}
	}

	return &Result{
		Kind:       KindOK,
		HTML:       string(body),
		StatusCode: resp.StatusCode,
		FinalURL:   finalURL,
		Origin:     originOf(finalURL),
	}
}

// ProbeImage checks that imageURL resolves to an actual image with a HEAD
// request. A failed probe never affects the scrape payload beyond the
// image_error flag.
func (f *Fetcher) ProbeImage(ctx context.Context, imageURL string) bool {
	ctx, cancel := context.WithTimeout(ctx, f.probeTimeout)
	defer cancel()

	client := f.newClient()
	defer client.CloseIdleConnections()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, imageURL, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", chromeUA)

	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false
	}
	ct := resp.Header.Get("Content-Type")
	return ct == "" || strings.HasPrefix(ct, "image/")
}

func (f *Fetcher) newClient() *http.Client {
	proxy := f.defaultProxy

	transport := &http.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return dialTLSChrome(ctx, network, addr, proxy)
		},
	}
	if proxy != "" {
		if proxyURL, err := url.Parse(proxy); err == nil && (proxyURL.Scheme == "http" || proxyURL.Scheme == "https") {
			transport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	return &http.Client{Transport: transport}
}

func setBrowserHeaders(req *http.Request, targetURL string) {
	req.Header.Set("User-Agent", chromeUA)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Referer", originOf(targetURL)+"/")
}

// dialTLSChrome establishes a TLS connection using a Chrome fingerprint.
func dialTLSChrome(ctx context.Context, network, addr, proxy string) (net.Conn, error) {
	var rawConn net.Conn
	var err error

	dialer := &net.Dialer{}

	if proxy != "" {
		if proxyURL, parseErr := url.Parse(proxy); parseErr == nil &&
			(proxyURL.Scheme == "socks5" || proxyURL.Scheme == "socks5h") {
			socksConn, socksErr := dialer.DialContext(ctx, "tcp", proxyURL.Host)
			if socksErr != nil {
				return nil, fmt.Errorf("socks5 dial: %w", socksErr)
			}
			rawConn = socksConn
		}
	}

	if rawConn == nil {
		rawConn, err = dialer.DialContext(ctx, network, addr)
		if err != nil {
			return nil, err
		}
	}

	host, _, _ := net.SplitHostPort(addr)
	tlsConn := tls2.UClient(rawConn, &tls2.Config{
		ServerName:         host,
		InsecureSkipVerify: false,
	}, tls2.HelloChrome_Auto)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		rawConn.Close()
		return nil, err
	}
	return tlsConn, nil
}

func originOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
