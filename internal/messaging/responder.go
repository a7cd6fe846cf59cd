package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pixil98/go-codex/internal/codex"
)

// Bus subjects served by the codex.
const (
	SubjectCraft      = "codex.craft"
	SubjectResearch   = "codex.research"
	SubjectRecycle    = "codex.recycle"
	SubjectDurability = "codex.durability"
	SubjectOptions    = "codex.options"
	SubjectStats      = "codex.stats"
)

// Engine is the query surface the responder serves over the bus.
type Engine interface {
	GetCraftDetails(nameOrId string) *codex.CraftDetails
	GetResearchDetails(nameOrId string) *codex.ResearchDetails
	GetRecycleDetails(nameOrId string) *codex.RecycleDetails
	GetDurabilityDetails(nameOrId string, q codex.Query) *codex.DurabilityDetails
}

// Request is the JSON body of a query-bus request.
type Request struct {
	// Query is the item name, key, or id being looked up
	Query string `json:"query"`

	// Group, Which, and OrderBy narrow durability queries
	Group   string `json:"group,omitempty"`
	Which   string `json:"which,omitempty"`
	OrderBy string `json:"order_by,omitempty"`
}

// Response wraps one query result. Found is false when the query
// resolved nothing; Error carries request decoding problems.
type Response struct {
	Found      bool                     `json:"found"`
	Craft      *codex.CraftDetails      `json:"craft,omitempty"`
	Research   *codex.ResearchDetails   `json:"research,omitempty"`
	Recycle    *codex.RecycleDetails    `json:"recycle,omitempty"`
	Durability *codex.DurabilityDetails `json:"durability,omitempty"`
	Options    *OptionSet               `json:"options,omitempty"`
	Error      string                   `json:"error,omitempty"`
}

// OptionSet lists the filter vocabulary durability queries accept.
type OptionSet struct {
	Groups []codex.Group `json:"groups"`
	Which  []codex.Which `json:"which"`
	Orders []codex.Order `json:"orders"`
}

// Responder serves codex queries over the message bus.
type Responder struct {
	server *NatsServer
	engine Engine
}

func NewResponder(server *NatsServer, engine Engine) *Responder {
	return &Responder{
		server: server,
		engine: engine,
	}
}

// Start subscribes the query subjects once the server's client
// connection is up, then serves until the context is canceled.
func (r *Responder) Start(ctx context.Context) error {
	select {
	case <-r.server.Ready():
	case <-ctx.Done():
		return ctx.Err()
	}

	subjects := map[string]func([]byte) []byte{
		SubjectCraft:      r.handleCraft,
		SubjectResearch:   r.handleResearch,
		SubjectRecycle:    r.handleRecycle,
		SubjectDurability: r.handleDurability,
		SubjectOptions:    r.handleOptions,
	}

	unsubs := make([]func(), 0, len(subjects))
	for subject, handler := range subjects {
		unsub, err := r.server.Respond(subject, handler)
		if err != nil {
			for _, u := range unsubs {
				u()
			}
			return fmt.Errorf("subscribing to %s: %w", subject, err)
		}
		unsubs = append(unsubs, unsub)
	}

	<-ctx.Done()
	for _, u := range unsubs {
		u()
	}

	return nil
}

func (r *Responder) handleCraft(data []byte) []byte {
	req, err := decodeRequest(data)
	if err != nil {
		return encodeResponse(Response{Error: err.Error()})
	}

	details := r.engine.GetCraftDetails(req.Query)
	if details == nil {
		return encodeResponse(Response{})
	}
	return encodeResponse(Response{Found: true, Craft: details})
}

func (r *Responder) handleResearch(data []byte) []byte {
	req, err := decodeRequest(data)
	if err != nil {
		return encodeResponse(Response{Error: err.Error()})
	}

	details := r.engine.GetResearchDetails(req.Query)
	if details == nil {
		return encodeResponse(Response{})
	}
	return encodeResponse(Response{Found: true, Research: details})
}

func (r *Responder) handleRecycle(data []byte) []byte {
	req, err := decodeRequest(data)
	if err != nil {
		return encodeResponse(Response{Error: err.Error()})
	}

	details := r.engine.GetRecycleDetails(req.Query)
	if details == nil {
		return encodeResponse(Response{})
	}
	return encodeResponse(Response{Found: true, Recycle: details})
}

func (r *Responder) handleDurability(data []byte) []byte {
	req, err := decodeRequest(data)
	if err != nil {
		return encodeResponse(Response{Error: err.Error()})
	}

	details := r.engine.GetDurabilityDetails(req.Query, codex.Query{
		Group:   req.Group,
		Which:   req.Which,
		OrderBy: req.OrderBy,
	})
	if details == nil {
		return encodeResponse(Response{})
	}
	return encodeResponse(Response{Found: true, Durability: details})
}

func (r *Responder) handleOptions(_ []byte) []byte {
	return encodeResponse(Response{
		Found: true,
		Options: &OptionSet{
			Groups: codex.Groups(),
			Which:  codex.WhichOptions(),
			Orders: codex.OrderOptions(),
		},
	})
}

func decodeRequest(data []byte) (Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return Request{}, fmt.Errorf("decoding request: %w", err)
	}
	return req, nil
}

func encodeResponse(resp Response) []byte {
	data, err := json.Marshal(resp)
	if err != nil {
		return []byte(`{"found":false,"error":"encoding response"}`)
	}
	return data
}
