package server

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

// runIPC feeds frames to a fresh server and returns its decoder over stdout,
// positioned after the ready frame.
func runIPC(t *testing.T, frames ...any) (*msgpack.Decoder, error) {
	t.Helper()
	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, f := range frames {
		if raw, ok := f.([]byte); ok {
			in.Write(raw)
			continue
		}
		require.NoError(t, enc.Encode(f))
	}

	var out bytes.Buffer
	err := NewIPCServer(newEngine(), &in, &out).Start()

	dec := msgpack.NewDecoder(&out)
	var ready map[string]string
	require.NoError(t, dec.Decode(&ready))
	assert.Equal(t, "ready", ready["status"])
	return dec, err
}

func TestIPCSearch(t *testing.T) {
	dec, err := runIPC(t, Request{ID: "q1", Command: "search", Query: "bit"})
	require.NoError(t, err)

	var resp AssetsResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "q1", resp.ID)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Assets, 2)
	assert.Equal(t, "BTC", resp.Assets[0].Symbol)
	assert.Equal(t, 100, resp.Assets[0].Score)
	assert.GreaterOrEqual(t, resp.TimeTaken, int64(0))
}

func TestIPCRecommendStatsHealth(t *testing.T) {
	dec, err := runIPC(t,
		Request{ID: "r", Command: "recommend", Type: "crypto"},
		Request{ID: "s", Command: "stats"},
		Request{ID: "h", Command: "health"},
	)
	require.NoError(t, err)

	var rec AssetsResponse
	require.NoError(t, dec.Decode(&rec))
	assert.Equal(t, "r", rec.ID)
	assert.Equal(t, 5, rec.Count)

	var st StatsResponse
	require.NoError(t, dec.Decode(&st))
	assert.Equal(t, "s", st.ID)
	assert.Equal(t, 89, st.Stats.Total)
	assert.Equal(t, 87, st.Stats.AvgScore)
	assert.InDelta(t, 25.333849, st.Stats.TotalCap, 1e-9)

	var health HealthResponse
	require.NoError(t, dec.Decode(&health))
	assert.Equal(t, HealthResponse{ID: "h", Status: "ok", Assets: 89}, health)

	_, err = dec.DecodeRaw()
	assert.ErrorIs(t, err, io.EOF)
}

func TestIPCUnknownCommandKeepsServing(t *testing.T) {
	dec, err := runIPC(t,
		Request{ID: "x", Command: "complete"},
		Request{ID: "h", Command: "health"},
	)
	require.NoError(t, err)

	var errResp ErrorResponse
	require.NoError(t, dec.Decode(&errResp))
	assert.Equal(t, "x", errResp.ID)
	assert.Equal(t, 400, errResp.Code)
	assert.Contains(t, errResp.Error, ErrUnknownCommand.Error())

	var health HealthResponse
	require.NoError(t, dec.Decode(&health))
	assert.Equal(t, "h", health.ID)
}

func TestIPCMalformedFrameKeepsServing(t *testing.T) {
	dec, err := runIPC(t,
		"not a map",
		Request{ID: "h", Command: "health"},
	)
	require.NoError(t, err)

	var errResp ErrorResponse
	require.NoError(t, dec.Decode(&errResp))
	assert.Equal(t, 400, errResp.Code)

	var health HealthResponse
	require.NoError(t, dec.Decode(&health))
	assert.Equal(t, "h", health.ID)
}

func TestIPCTruncatedStream(t *testing.T) {
	full, err := msgpack.Marshal(Request{ID: "q", Command: "search", Query: "bitcoin"})
	require.NoError(t, err)

	_, err = runIPC(t, full[:len(full)-3])
	assert.Error(t, err)
}

func TestIPCEmptyInput(t *testing.T) {
	dec, err := runIPC(t)
	require.NoError(t, err)

	_, err = dec.DecodeRaw()
	assert.ErrorIs(t, err, io.EOF)
}
