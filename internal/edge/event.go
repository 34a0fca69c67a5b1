package edge

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// EventTypeViewerRequest is the only event type the handler accepts
const EventTypeViewerRequest = "viewer-request"

var (
	// ErrMissingRequest is returned for events without a request object
	ErrMissingRequest = errors.New("event has no request")
	// ErrMissingURI is returned for requests without a uri
	ErrMissingURI = errors.New("request has no uri")
	// ErrUnsupportedEventType is returned for events other than viewer-request
	ErrUnsupportedEventType = errors.New("unsupported event type")
)

// Event is the object the edge host passes to the viewer-request function
type Event struct {
	Version string   `json:"version,omitempty"`
	Context *Context `json:"context,omitempty"`
	Viewer  *Viewer  `json:"viewer,omitempty"`
	Request *Request `json:"request"`
}

// Context describes the distribution and invocation
type Context struct {
	DistributionDomainName string `json:"distributionDomainName,omitempty"`
	DistributionID         string `json:"distributionId,omitempty"`
	EventType              string `json:"eventType,omitempty"`
	RequestID              string `json:"requestId,omitempty"`
}

// Viewer describes the client
type Viewer struct {
	IP string `json:"ip,omitempty"`
}

// Request is the viewer request. Only URI is ever changed by the handler.
type Request struct {
	Method      string           `json:"method,omitempty"`
	URI         string           `json:"uri"`
	QueryString map[string]Value `json:"querystring,omitempty"`
	Headers     map[string]Value `json:"headers,omitempty"`
	Cookies     map[string]Value `json:"cookies,omitempty"`
}

// Value is a query string, header or cookie value. MultiValue is set when
// the same key appears more than once.
type Value struct {
	Value      string  `json:"value"`
	MultiValue []Value `json:"multiValue,omitempty"`
}

// DecodeEvent reads a single JSON event from r
func DecodeEvent(r io.Reader) (*Event, error) {
	var event Event

	if err := json.NewDecoder(r).Decode(&event); err != nil {
		return nil, fmt.Errorf("decoding event: %w", err)
	}

	if err := event.validate(); err != nil {
		return nil, err
	}

	return &event, nil
}

func (e *Event) validate() error {
	if e.Context != nil && e.Context.EventType != "" && e.Context.EventType != EventTypeViewerRequest {
		return fmt.Errorf("%w: %q", ErrUnsupportedEventType, e.Context.EventType)
	}

	if e.Request == nil {
		return ErrMissingRequest
	}

	if e.Request.URI == "" {
		return ErrMissingURI
	}

	return nil
}

// EncodeRequest writes req to w as indented JSON
func EncodeRequest(w io.Writer, req *Request) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(req); err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	return nil
}
