package methods

import (
	"fmt"
	"strings"

	"github.com/conduit-lang/lspcontract/internal/schema"
)

// Category says who sends a method and whether it expects a response
type Category int

const (
	// Request is sent by the client and answered by the server
	Request Category = iota + 1
	// Notification is sent by the client and never answered
	Notification
	// ServerRequest is sent by the server and answered by the client
	ServerRequest
	// ServerNotification is sent by the server and never answered
	ServerNotification
	// RegistrationOnly names a capability that is registered but never sent
	RegistrationOnly
)

var categories = []Category{Request, Notification, ServerRequest, ServerNotification, RegistrationOnly}

// Categories returns every category in display order
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// String returns the string representation of the category
func (c Category) String() string {
	switch c {
	case Request:
		return "request"
	case Notification:
		return "notification"
	case ServerRequest:
		return "server-request"
	case ServerNotification:
		return "server-notification"
	case RegistrationOnly:
		return "registration-only"
	default:
		return "unknown"
	}
}

// ExpectsResponse reports whether messages of this category carry an id and
// must be answered
func (c Category) ExpectsResponse() bool {
	return c == Request || c == ServerRequest
}

// FromServer reports whether the server is the sender
func (c Category) FromServer() bool {
	return c == ServerRequest || c == ServerNotification
}

// ParseCategory converts a category name back into a Category
func ParseCategory(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, c := range categories {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// Descriptor is one row of the method table. A nil type means the slot is
// absent: notifications have no Result, and requests answered with null have
// no Result either.
type Descriptor struct {
	Method              string
	Category            Category
	RegistrationOptions schema.Type
	Params              schema.Type
	Result              schema.Type
}

// Part names select one of the three type slots of a descriptor
const (
	PartOptions = "options"
	PartParams  = "params"
	PartResult  = "result"
)

var parts = []string{PartOptions, PartParams, PartResult}

// Parts returns the part names in table order
func Parts() []string {
	return append([]string(nil), parts...)
}

// Part returns the type in the named slot. The boolean is false for an
// unknown part name; a known but absent slot returns nil, true.
func (d Descriptor) Part(part string) (schema.Type, bool) {
	switch part {
	case PartOptions:
		return d.RegistrationOptions, true
	case PartParams:
		return d.Params, true
	case PartResult:
		return d.Result, true
	}
	return nil, false
}
