package network_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/network"
	"github.com/ratel-online/uno/service"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return network.Router(network.Tables{PlayerCount: 3})
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) service.View {
	t.Helper()
	var view service.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	return view
}

func createTable(t *testing.T, r http.Handler, body interface{}) service.View {
	t.Helper()
	w := do(t, r, http.MethodPost, "/tables", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	view := decodeView(t, w)
	t.Cleanup(func() { _ = service.DeleteTable(view.ID) })
	return view
}

func TestCreateTable(t *testing.T) {
	r := newRouter()

	view := createTable(t, r, gin.H{"name": "http"})
	require.Len(t, view.TurnOrder, 3)
	require.Len(t, view.Hand, consts.StartingHandSize)

	view = createTable(t, r, gin.H{"name": "http", "players": 5})
	require.Len(t, view.TurnOrder, 5)

	w := do(t, r, http.MethodPost, "/tables", gin.H{"players": 3})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/tables", gin.H{"name": "x", "players": 12})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), consts.ErrorsPlayerCountInvalid.Msg)
}

func TestTableRoutes(t *testing.T) {
	r := newRouter()
	view := createTable(t, r, gin.H{"name": "routes"})
	base := "/tables/" + view.ID

	w := do(t, r, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, view.ID, decodeView(t, w).ID)

	w = do(t, r, http.MethodGet, "/tables", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), view.ID)

	w = do(t, r, http.MethodPost, base+"/draw", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var drawn struct {
		Card  string       `json:"card"`
		Table service.View `json:"table"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &drawn))
	require.Contains(t, drawn.Table.Hand, drawn.Card)

	w = do(t, r, http.MethodPost, base+"/play", gin.H{"index": 99})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), consts.ErrorsCardNotInHand.Msg)

	w = do(t, r, http.MethodPost, base+"/play", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, base+"/play", gin.H{"index": 0, "color": "purple"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, base+"/uno", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, base+"/pass", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodDelete, base, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, base, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	w = do(t, r, http.MethodDelete, base, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestStepFeed(t *testing.T) {
	r := newRouter()
	server := httptest.NewServer(r)
	defer server.Close()
	view := createTable(t, r, gin.H{"name": "feed", "players": 2})

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/tables/" + view.ID + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var first struct {
		Type  string       `json:"type"`
		Table service.View `json:"table"`
	}
	require.NoError(t, conn.ReadJSON(&first))
	require.Equal(t, "table", first.Type)
	require.Equal(t, view.ID, first.Table.ID)

	for len(view.Playable) == 0 {
		w := do(t, r, http.MethodPost, "/tables/"+view.ID+"/draw", nil)
		require.Equal(t, http.StatusOK, w.Code)
		view = decodeView(t, do(t, r, http.MethodGet, "/tables/"+view.ID, nil))
	}
	w := do(t, r, http.MethodPost, "/tables/"+view.ID+"/play", gin.H{"index": view.Playable[0], "color": "red"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var next struct {
		Type string       `json:"type"`
		Step service.Step `json:"step"`
	}
	require.NoError(t, conn.ReadJSON(&next))
	require.Equal(t, "step", next.Type)
	require.Equal(t, view.ID, next.Step.TableID)

	w = do(t, r, http.MethodGet, "/tables/missing/ws", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
