// Package transport carries framed protocol messages between the station
// and the central system. The station core only sees the Channel interface;
// the websocket client below is the single implementation.
package transport

// Channel is a live connection to the central system. Send writes a call
// frame and blocks until the correlated response frame arrives or the
// request times out. Write pushes a frame without expecting a reply, used
// for responses to inbound calls.
type Channel interface {
	PeerId() string
	Send(requestId string, data []byte) ([]byte, error)
	Write(data []byte) error
	IsAlive() bool
	Close() error
}
