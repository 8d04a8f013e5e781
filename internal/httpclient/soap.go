package httpclient

import (
	"encoding/xml"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hooklift/gowsdl/soap"

	"bridges/internal/bridge"
)

// SOAP returns a SOAP client that posts envelopes to the base URL through the
// same http.Client, so calls share its timeouts, tracing and metrics.
func (c *Client) SOAP(opts ...soap.Option) *soap.Client {
	next := c.http.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	hc := *c.http
	hc.Transport = &observedTransport{next: next, c: c}

	base := []soap.Option{soap.WithHTTPClient(&hc)}
	// gowsdl stamps its own agent on every request; headers set here win.
	if c.userAgent != "" {
		base = append(base, soap.WithHTTPHeaders(map[string]string{"User-Agent": c.userAgent}))
	}
	return soap.NewClient(c.baseURL, append(base, opts...)...)
}

// observedTransport records each round trip on the client's metrics.
type observedTransport struct {
	next http.RoundTripper
	c    *Client
}

func (t *observedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		t.c.metrics.Observe(t.c.name, "error", time.Since(start))
		return nil, err
	}
	t.c.metrics.Observe(t.c.name, strconv.Itoa(resp.StatusCode), time.Since(start))
	return resp, nil
}

// faultEnvelope picks the Fault out of an error response body. Element names
// match regardless of the envelope prefix the server uses.
type faultEnvelope struct {
	Body struct {
		Fault *struct {
			Code   string `xml:"faultcode"`
			String string `xml:"faultstring"`
			Actor  string `xml:"faultactor"`
		} `xml:"Fault"`
	} `xml:"Body"`
}

// faultFromHTTP extracts the SOAP fault carried by an HTTP error response,
// which is how SOAP 1.1 servers report faults (usually with status 500).
func faultFromHTTP(he *soap.HTTPError) *soap.SOAPFault {
	if len(he.ResponseBody) == 0 {
		return nil
	}
	var env faultEnvelope
	if err := xml.Unmarshal(he.ResponseBody, &env); err != nil || env.Body.Fault == nil {
		return nil
	}
	f := env.Body.Fault
	return &soap.SOAPFault{
		Code:   strings.TrimSpace(f.Code),
		String: strings.TrimSpace(f.String),
		Actor:  strings.TrimSpace(f.Actor),
	}
}

// WrapSOAP classifies a SOAP call failure. Faults are remote errors unless
// notFound recognises the fault as a missing record. Error responses without
// a fault envelope become *bridge.StatusError.
func WrapSOAP(bridgeName, op string, err error, notFound func(*soap.SOAPFault) bool) error {
	if err == nil {
		return nil
	}

	var fault *soap.SOAPFault
	var he *soap.HTTPError
	switch {
	case errors.As(err, &fault):
	case errors.As(err, &he):
		fault = faultFromHTTP(he)
		if fault == nil {
			body := string(he.ResponseBody)
			if len(body) > maxErrorBody {
				body = body[:maxErrorBody]
			}
			return bridge.Wrap(bridgeName, op, &bridge.StatusError{StatusCode: he.StatusCode, Body: body})
		}
		err = fault
	default:
		return bridge.Wrap(bridgeName, op, err)
	}

	if notFound != nil && notFound(fault) {
		return bridge.New(bridgeName, op, bridge.KindNotFound, errors.Join(bridge.ErrNotFound, err))
	}
	return bridge.New(bridgeName, op, bridge.KindRemote, err)
}
