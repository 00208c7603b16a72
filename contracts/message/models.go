// Package message defines the envelope sent to the messaging transport.
package message

// TypeDataSend is the fixed inbox message type for application data sends.
const TypeDataSend = "inbox/type/dataSend"

// Payload is the application-level message body. The transport does not
// interpret it beyond the firstName field used for the subject line.
type Payload map[string]any

// FirstName returns the firstName field when present.
func (p Payload) FirstName() string {
	v, _ := p["firstName"].(string)
	return v
}

// Data wraps the payload the way the inbox transport expects: a single
// element data array nested under a data key.
type Data struct {
	Data []Payload `json:"data"`
}

// Config addresses the message: the recipient DID and the context the
// recipient reads its inbox from.
type Config struct {
	DID                  string `json:"did"`
	RecipientContextName string `json:"recipientContextName"`
}

// Envelope is the complete outbound message handed to the transport.
type Envelope struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Data    Data   `json:"data"`
	Subject string `json:"subject"`
	Config  Config `json:"config"`
}
