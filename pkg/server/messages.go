package server

// Server to browser message types.
const (
	MessageRender   = "render"
	MessageNavigate = "navigate"
)

// Message is a server to browser bridge message.
type Message struct {
	Type string `json:"type"`
	HTML string `json:"html,omitempty"`
	URL  string `json:"url,omitempty"`
}
