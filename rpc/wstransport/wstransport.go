// Package wstransport is the default JsonRpcTransport implementation:
// JSON-RPC 2.0 request/response and subscription framing over a single
// persistent websocket connection.
package wstransport

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"github.com/snowfork/substrate-go/rpc"
)

type request struct {
	JsonRpc string        `json:"jsonrpc"`
	Id      uint64        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type response struct {
	Id     uint64          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
	// subscription notification framing
	Method string `json:"method"`
	Params struct {
		Subscription string          `json:"subscription"`
		Result       json.RawMessage `json:"result"`
	} `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Transport is a websocket-backed JsonRpcTransport. One Transport owns
// exactly one connection; Dial again for a fresh one after a failure.
type Transport struct {
	conn *websocket.Conn

	nextId uint64

	mu       sync.Mutex
	pending  map[uint64]chan response
	subs     map[string]*subscription
	readErr  error
	closedCh chan struct{}
}

// Dial opens a websocket connection to endpoint and starts the
// background read loop.
func Dial(ctx context.Context, endpoint string) (*Transport, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("wstransport: dial %s: %w", endpoint, err)
	}

	t := &Transport{
		conn:     conn,
		pending:  make(map[uint64]chan response),
		subs:     make(map[string]*subscription),
		closedCh: make(chan struct{}),
	}
	go t.readLoop()
	return t, nil
}

func (t *Transport) readLoop() {
	defer close(t.closedCh)
	for {
		_, data, err := t.conn.ReadMessage()
		if err != nil {
			t.mu.Lock()
			t.readErr = err
			for _, ch := range t.pending {
				close(ch)
			}
			for _, s := range t.subs {
				s.errCh <- err
			}
			t.mu.Unlock()
			return
		}

		var resp response
		if err := json.Unmarshal(data, &resp); err != nil {
			continue
		}

		if resp.Method != "" && resp.Params.Subscription != "" {
			t.mu.Lock()
			s, ok := t.subs[resp.Params.Subscription]
			t.mu.Unlock()
			if ok {
				s.notifyCh <- resp.Params.Result
			}
			continue
		}

		t.mu.Lock()
		ch, ok := t.pending[resp.Id]
		delete(t.pending, resp.Id)
		t.mu.Unlock()
		if ok {
			ch <- resp
		}
	}
}

// Call issues a JSON-RPC request and blocks for its response.
func (t *Transport) Call(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error) {
	id := atomic.AddUint64(&t.nextId, 1)
	ch := make(chan response, 1)

	t.mu.Lock()
	t.pending[id] = ch
	t.mu.Unlock()

	if params == nil {
		params = []interface{}{}
	}
	req := request{JsonRpc: "2.0", Id: id, Method: method, Params: params}

	if err := t.conn.WriteJSON(req); err != nil {
		t.mu.Lock()
		delete(t.pending, id)
		t.mu.Unlock()
		return nil, fmt.Errorf("wstransport: write %s: %w", method, err)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case resp, ok := <-ch:
		if !ok {
			return nil, fmt.Errorf("wstransport: connection closed while waiting for %s", method)
		}
		if resp.Error != nil {
			return nil, rpc.CallError(resp.Error.Code, resp.Error.Message)
		}
		return resp.Result, nil
	}
}

type subscription struct {
	unsubscribe func()
	notifyCh    chan json.RawMessage
	errCh       chan error
	once        sync.Once
}

func (s *subscription) Chan() <-chan json.RawMessage { return s.notifyCh }
func (s *subscription) Err() <-chan error             { return s.errCh }
func (s *subscription) Unsubscribe() {
	s.once.Do(s.unsubscribe)
}

// Subscribe starts a JSON-RPC subscription and returns a handle whose
// Chan delivers each notification's `result` payload.
func (t *Transport) Subscribe(ctx context.Context, subscribeMethod, unsubscribeMethod, notificationMethod string, params ...interface{}) (rpc.Subscription, error) {
	raw, err := t.Call(ctx, subscribeMethod, params...)
	if err != nil {
		return nil, err
	}

	var subId string
	if err := json.Unmarshal(raw, &subId); err != nil {
		return nil, fmt.Errorf("wstransport: malformed subscription id: %w", err)
	}

	s := &subscription{
		notifyCh: make(chan json.RawMessage, 16),
		errCh:    make(chan error, 1),
	}
	s.unsubscribe = func() {
		t.mu.Lock()
		delete(t.subs, subId)
		t.mu.Unlock()
		_, _ = t.Call(context.Background(), unsubscribeMethod, subId)
	}

	t.mu.Lock()
	t.subs[subId] = s
	t.mu.Unlock()

	return s, nil
}

// Close closes the underlying connection.
func (t *Transport) Close() error {
	return t.conn.Close()
}
