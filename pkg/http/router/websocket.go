package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// handleWebsocket streams propagation traces over a websocket. the client sends
// {"source": "...", "mode": "dfs|bfs"} and receives one frame per step then {"done": true}.
func (api *API) handleWebsocket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	api.hub.Serve(w, r)
}
