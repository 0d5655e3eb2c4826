// Package control turns touch events into key codes and delivers them to sinks.
package control

// Message is a control websocket payload sent by the keyboard client.
type Message struct {
	T  string  `json:"t"`
	ID int     `json:"id,omitempty"`
	X  float64 `json:"x,omitempty"`
	Y  float64 `json:"y,omitempty"`
	// Px marks X/Y as surface pixels instead of normalized [0..1] values.
	Px      bool  `json:"px,omitempty"`
	Code    int32 `json:"code,omitempty"`
	Enabled *bool `json:"enabled,omitempty"`
}

// Reply is a control websocket payload sent back to the keyboard client.
type Reply struct {
	T    string `json:"t"`
	Code int32  `json:"code,omitempty"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	Dir  string `json:"dir,omitempty"`
}
