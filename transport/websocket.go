package transport

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"evstation/internal"
	"evstation/internal/config"
	"evstation/ocpp"
	"evstation/types"
	"evstation/utility"
)

// WebSocketClient dials the central system and keeps the connection alive.
// Inbound CALL frames go to the registered message handler; CALLRESULT and
// CALLERROR frames are matched to pending requests by unique id.
type WebSocketClient struct {
	conf            *config.Config
	conn            *websocket.Conn
	logger          internal.LogHandler
	messageHandler  func(data []byte) error
	pendingRequests map[string]chan []byte
	requestTimeout  time.Duration
	mutex           sync.Mutex
	writeMutex      sync.Mutex
}

func NewWebSocketClient(conf *config.Config) *WebSocketClient {
	timeout := time.Duration(conf.Csms.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &WebSocketClient{
		conf:            conf,
		pendingRequests: make(map[string]chan []byte),
		requestTimeout:  timeout,
	}
}

func (c *WebSocketClient) SetLogger(logger internal.LogHandler) {
	c.logger = logger
}

func (c *WebSocketClient) SetMessageHandler(handler func(data []byte) error) {
	c.messageHandler = handler
}

func (c *WebSocketClient) Connect() error {
	dialer := websocket.Dialer{
		Subprotocols:     []string{types.SubProtocol21},
		HandshakeTimeout: 10 * time.Second,
	}
	header := http.Header{}
	if c.conf.Csms.BasicAuthUser != "" {
		credentials := fmt.Sprintf("%s:%s", c.conf.Csms.BasicAuthUser, c.conf.Csms.BasicAuthPass)
		header.Add("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(credentials)))
	}
	conn, _, err := dialer.Dial(c.conf.Csms.Url, header)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.conf.Csms.Url, err)
	}
	c.logger.Debug(fmt.Sprintf("connected to %s with subprotocol %s", c.conf.Csms.Url, conn.Subprotocol()))
	c.mutex.Lock()
	c.conn = conn
	c.mutex.Unlock()
	go c.messageReader(conn)
	return nil
}

func (c *WebSocketClient) PeerId() string {
	return c.conf.Csms.Url
}

func (c *WebSocketClient) IsAlive() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.conn != nil
}

func (c *WebSocketClient) Close() error {
	c.mutex.Lock()
	conn := c.conn
	c.conn = nil
	c.mutex.Unlock()
	if conn == nil {
		return nil
	}
	return conn.Close()
}

// Send writes a CALL frame and blocks until the correlated CALLRESULT or
// CALLERROR frame arrives. The returned bytes are the raw frame, left to
// the caller to decode.
func (c *WebSocketClient) Send(requestId string, data []byte) ([]byte, error) {
	waiter := make(chan []byte, 1)
	c.mutex.Lock()
	c.pendingRequests[requestId] = waiter
	c.mutex.Unlock()
	defer func() {
		c.mutex.Lock()
		delete(c.pendingRequests, requestId)
		c.mutex.Unlock()
	}()

	if err := c.Write(data); err != nil {
		return nil, err
	}
	select {
	case response := <-waiter:
		return response, nil
	case <-time.After(c.requestTimeout):
		return nil, fmt.Errorf("request %s timed out after %s", requestId, c.requestTimeout)
	}
}

func (c *WebSocketClient) Write(data []byte) error {
	c.mutex.Lock()
	conn := c.conn
	c.mutex.Unlock()
	if conn == nil {
		return utility.Err("no connection to central system")
	}
	c.logger.RawDataEvent("OUT", string(data))
	c.writeMutex.Lock()
	defer c.writeMutex.Unlock()
	return conn.WriteMessage(websocket.TextMessage, data)
}

func (c *WebSocketClient) messageReader(conn *websocket.Conn) {
	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("central system closed the session")
			} else {
				c.logger.Debug(fmt.Sprintf("session closing: %s", err))
			}
			c.mutex.Lock()
			if c.conn == conn {
				c.conn = nil
			}
			c.mutex.Unlock()
			_ = conn.Close()
			return
		}
		c.logger.RawDataEvent("IN", string(message))
		if err = c.route(message); err != nil {
			c.logger.Error("handling inbound frame", err)
		}
	}
}

// route hands CALLRESULT/CALLERROR frames to the waiting sender and CALL
// frames to the message handler.
func (c *WebSocketClient) route(message []byte) error {
	fields, err := utility.ParseJson(message)
	if err != nil {
		return err
	}
	callType, err := ocpp.MessageType(fields)
	if err != nil {
		return err
	}
	switch callType {
	case ocpp.CallTypeResult, ocpp.CallTypeError:
		uniqueId, ok := fields[1].(string)
		if !ok {
			return utility.Err("invalid unique id in response frame")
		}
		c.mutex.Lock()
		waiter, found := c.pendingRequests[uniqueId]
		c.mutex.Unlock()
		if !found {
			c.logger.Warn(fmt.Sprintf("response %s matches no pending request", uniqueId))
			return nil
		}
		waiter <- message
		return nil
	case ocpp.CallTypeRequest:
		if c.messageHandler == nil {
			return utility.Err("no message handler registered")
		}
		return c.messageHandler(message)
	default:
		return fmt.Errorf("unsupported message type %d", callType)
	}
}
