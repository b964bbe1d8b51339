// connect4-ws serves the §6.1 JSON decision request/response over a
// websocket connection, one request per message: an external wire format
// translated to/from the façade's in-memory types at the binding boundary
// only, mirroring the shape (not the protocol) of the teacher's
// cmd/livechess-uci adaptor.
package main

import (
	"context"
	"flag"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/lineworks/connect4/pkg/engine"
	"github.com/lineworks/connect4/pkg/wire"
	"github.com/seekerror/logw"
)

var addr = flag.String("addr", ":8080", "Listen address")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func main() {
	flag.Parse()
	ctx := context.Background()

	http.HandleFunc("/decide", func(w http.ResponseWriter, r *http.Request) {
		serve(ctx, w, r)
	})

	logw.Infof(ctx, "Listening on %v", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		logw.Exitf(ctx, "ListenAndServe failed: %v", err)
	}
}

// serve owns one Engine per connection: per §5, a core is not shared
// across concurrent games, so a host that wants concurrency opens one
// connection (and hence one Engine) per game.
func serve(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logw.Errorf(ctx, "upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	e := engine.New(ctx, "connect4-ws", "lineworks")

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		resp, err := decide(ctx, e, data)
		if err != nil {
			logw.Errorf(ctx, "decide failed: %v", err)
			if writeErr := conn.WriteJSON(map[string]string{"error": err.Error()}); writeErr != nil {
				return
			}
			continue
		}

		if err := conn.WriteMessage(websocket.TextMessage, resp); err != nil {
			return
		}
	}
}

// decide dispatches one §6.1 request to the matching façade method and
// renders its decision back to the §6.1 response shape.
func decide(ctx context.Context, e *engine.Engine, data []byte) ([]byte, error) {
	req, err := wire.DecodeRequest(data)
	if err != nil {
		return nil, err
	}

	if len(req.RawGeneticParams) > 0 {
		e.LoadGeneticParameters(ctx, req.RawGeneticParams)
	}

	switch req.Mode {
	case wire.ModeHeuristic:
		return wire.EncodeSearchResponse(e.HeuristicMove(ctx, req.Position))

	case wire.ModeNeural:
		d, err := e.NeuralMove(ctx, req.Position)
		if err != nil {
			return nil, err
		}
		return wire.EncodeNeuralResponse(d, req.Position.LegalMoves())

	default:
		depth, _ := req.Depth.V()
		return wire.EncodeSearchResponse(e.BestMoveBySearch(ctx, req.Position, depth))
	}
}
