// Package broker answers route queries received over NATS request/reply.
package broker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/katalvlaran/tanroute/internal/planner"
)

// Request is the JSON payload of a route query.
type Request struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type errorReply struct {
	Error string `json:"error"`
}

// Responder subscribes to a subject and replies with planner results.
type Responder struct {
	nc      *nats.Conn
	sub     *nats.Subscription
	planner *planner.Planner
	logger  *slog.Logger
}

// Connect dials NATS and returns a Responder that is not yet subscribed.
func Connect(url string, p *planner.Planner, logger *slog.Logger) (*Responder, error) {
	if logger == nil {
		logger = slog.Default()
	}
	nc, err := nats.Connect(url,
		nats.Name("tanroute"),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("nats disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected", "url", c.ConnectedUrl())
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			logger.Info("nats closed")
		}),
	)
	if err != nil {
		return nil, err
	}
	return &Responder{nc: nc, planner: p, logger: logger}, nil
}

// Serve subscribes to subject within a queue group so several instances
// can share the load. Each message is handled with ctx as parent.
func (r *Responder) Serve(ctx context.Context, subject string) error {
	sub, err := r.nc.QueueSubscribe(subject, "tanroute", func(msg *nats.Msg) {
		reply := r.Handle(ctx, msg.Data)
		if err := msg.Respond(reply); err != nil {
			r.logger.Warn("nats respond failed", "subject", msg.Subject, "error", err)
		}
	})
	if err != nil {
		return err
	}
	r.sub = sub
	r.logger.Info("nats responder listening", "subject", subject)
	return nil
}

// Handle decodes a Request, runs it, and encodes the reply.
func (r *Responder) Handle(ctx context.Context, data []byte) []byte {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return encode(errorReply{Error: "invalid request: " + err.Error()})
	}

	start := time.Now()
	path, err := r.planner.Plan(ctx, req.From, req.To)
	if err != nil {
		return encode(errorReply{Error: err.Error()})
	}
	r.logger.Debug("nats route", "from", req.From, "to", req.To, "found", path.Found(), "elapsed", time.Since(start))

	return encode(planner.Body(req.From, req.To, path))
}

// Close drains the subscription and the connection.
func (r *Responder) Close() {
	if r.nc != nil {
		_ = r.nc.Drain()
		r.nc.Close()
	}
}

func encode(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		b, _ = json.Marshal(errorReply{Error: err.Error()})
	}
	return b
}
