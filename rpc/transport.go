package rpc

import (
	"context"
	"encoding/json"
)

// JsonRpcTransport is the abstract capability this facade is built on:
// a JSON-RPC 2.0 call/subscribe channel. Transport (dial, retry,
// keep-alive, TLS) is entirely the caller's concern; this package only
// ever blocks inside Call/Subscribe.
type JsonRpcTransport interface {
	Call(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error)
	Subscribe(ctx context.Context, subscribeMethod, unsubscribeMethod, notificationMethod string, params ...interface{}) (Subscription, error)
}

// Subscription is a live JSON-RPC subscription. Notifications arrive on
// Chan; a transport error (not a notification payload) arrives on Err,
// at most once, after which the subscription is dead.
type Subscription interface {
	Chan() <-chan json.RawMessage
	Err() <-chan error
	Unsubscribe()
}
