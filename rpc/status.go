package rpc

import (
	"encoding/json"
	"strings"

	"github.com/snowfork/substrate-go/scale"
)

// ExtrinsicStatus mirrors the JSON shape the `author_submitAndWatchExtrinsic`
// subscription emits: unit variants as a bare string ("ready", "broadcast",
// ...), data-carrying variants as a single-key object ({"inBlock": "0x.."}).
type ExtrinsicStatus struct {
	IsReady           bool
	IsBroadcast       bool
	IsInBlock         bool
	AsInBlock         [32]byte
	IsRetracted       bool
	IsFinalityTimeout bool
	IsFinalized       bool
	AsFinalized       [32]byte
	IsUsurped         bool
	IsDropped         bool
	IsInvalid         bool
}

func (s *ExtrinsicStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		switch strings.ToLower(name) {
		case "ready":
			s.IsReady = true
		case "broadcast":
			s.IsBroadcast = true
		case "retracted":
			s.IsRetracted = true
		case "finalitytimeout":
			s.IsFinalityTimeout = true
		case "usurped":
			s.IsUsurped = true
		case "dropped":
			s.IsDropped = true
		case "invalid":
			s.IsInvalid = true
		}
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return errResponseMalformed("malformed extrinsic status", err)
	}

	for k, v := range obj {
		var hexStr string
		if err := json.Unmarshal(v, &hexStr); err != nil {
			continue
		}
		b, err := scale.HexDecode(hexStr)
		if err != nil || len(b) != 32 {
			continue
		}
		var hash [32]byte
		copy(hash[:], b)

		switch strings.ToLower(k) {
		case "inblock":
			s.IsInBlock = true
			s.AsInBlock = hash
		case "finalized":
			s.IsFinalized = true
			s.AsFinalized = hash
		}
	}
	return nil
}

// terminalReason names why status requires no further watching, or
// returns "" if watching should continue.
func (s *ExtrinsicStatus) terminalReason() string {
	switch {
	case s.IsDropped:
		return "Dropped"
	case s.IsInvalid:
		return "Invalid"
	case s.IsUsurped:
		return "Usurped"
	case s.IsFinalityTimeout:
		return "FinalityTimeout"
	}
	return ""
}
