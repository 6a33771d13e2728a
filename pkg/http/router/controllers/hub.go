package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"go.uber.org/zap"
)

// errControlFrame marks a control frame that was handled instead of a request.
var errControlFrame = errors.New("control frame")

// User is one websocket client streaming propagation traces.
type User struct {
	io   sync.Mutex
	conn io.ReadWriteCloser

	id  uint
	hub *Hub
}

func (u *User) readRequest() (*traceRequest, error) {
	u.io.Lock()
	defer u.io.Unlock()

	h, r, err := wsutil.NextReader(u.conn, ws.StateServerSide)
	if err != nil {
		return nil, err
	}
	if h.OpCode.IsControl() {
		if err := wsutil.ControlFrameHandler(u.conn, ws.StateServerSide)(h, r); err != nil {
			return nil, err
		}
		return nil, errControlFrame
	}

	req := &traceRequest{}
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(req); err != nil {
		return nil, err
	}
	req.Mode = strings.ToLower(req.Mode)
	return req, nil
}

// StreamTrace reads one trace request and writes one frame per step followed by a done frame.
// invalid requests get an error frame and keep the connection open.
func (u *User) StreamTrace() error {
	req, err := u.readRequest()
	if errors.Is(err, errControlFrame) {
		return nil
	}
	if err != nil {
		u.conn.Close()
		return err
	}

	if err := validateRequest(req); err != nil {
		return u.write(envelope{"error": newErrorResponse(http.StatusBadRequest, err.Error()).Error})
	}

	mode, steps, err := u.hub.zoneService.Trace(req.Mode, req.Source)
	if err != nil {
		return u.write(envelope{"error": newErrorResponse(http.StatusBadRequest, err.Error()).Error})
	}

	for _, s := range steps {
		frame := envelope{"mode": mode.String(), "step": newStepResponse(steps, s)}
		if err := u.write(frame); err != nil {
			return err
		}
	}
	return u.write(envelope{"done": true, "mode": mode.String(), "zones": len(steps)})
}

func (u *User) write(x interface{}) error {
	w := wsutil.NewWriter(u.conn, ws.StateServerSide, ws.OpText)
	encoder := json.NewEncoder(w)

	u.io.Lock()
	defer u.io.Unlock()

	if err := encoder.Encode(x); err != nil {
		return err
	}

	return w.Flush()
}

// Hub keeps the connected users so they can be closed together on shutdown.
type Hub struct {
	mu          sync.RWMutex
	seq         uint
	us          []*User
	ns          map[uint]*User
	zoneService ZoneService
	log         *zap.Logger
}

func NewHub(zoneService ZoneService, log *zap.Logger) *Hub {
	return &Hub{
		ns:          make(map[uint]*User),
		us:          make([]*User, 0),
		zoneService: zoneService,
		log:         log,
	}
}

func (h *Hub) Register(conn net.Conn) *User {
	user := &User{
		hub:  h,
		conn: conn,
	}

	h.mu.Lock()
	user.id = h.seq
	h.ns[user.id] = user
	h.us = append(h.us, user)

	h.seq++
	h.mu.Unlock()

	return user
}

func (h *Hub) Remove(user *User) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.ns[user.id]; !ok {
		return
	}
	delete(h.ns, user.id)

	i := sort.Search(len(h.us), func(i int) bool {
		return h.us[i].id >= user.id
	})

	newUs := make([]*User, len(h.us)-1)
	copy(newUs[:i], h.us[:i])
	copy(newUs[i:], h.us[i+1:])
	h.us = newUs
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.us)
}

func (h *Hub) RemoveAllUser() {
	h.mu.RLock()
	users := make([]*User, len(h.us))
	copy(users, h.us)
	h.mu.RUnlock()

	for _, user := range users {
		user.conn.Close()
		h.Remove(user)
	}
}

// Serve upgrades the request and streams traces until the client goes away.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) {
	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		h.log.Info("upgrade error", zap.Error(err))
		return
	}
	user := h.Register(conn)
	h.log.Info("established websocket connection", zap.String("remote", conn.RemoteAddr().String()))

	go func() {
		defer h.Remove(user)
		defer conn.Close()
		for {
			if err := user.StreamTrace(); err != nil {
				h.log.Info("websocket connection closed", zap.Uint("user", user.id), zap.Error(err))
				return
			}
		}
	}()
}
