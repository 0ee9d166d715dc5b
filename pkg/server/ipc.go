package server

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/assetserve/pkg/asset"
	"github.com/bastiangx/assetserve/pkg/present"
	"github.com/bastiangx/assetserve/pkg/search"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// IPCServer answers msgpack requests read from a stream.
type IPCServer struct {
	searcher     search.Searcher
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	requestCount int
}

// NewIPCServer reads requests from r and writes replies to w.
// The command layer passes os.Stdin and os.Stdout.
func NewIPCServer(searcher search.Searcher, r io.Reader, w io.Writer) *IPCServer {
	return &IPCServer{
		searcher: searcher,
		decoder:  msgpack.NewDecoder(r),
		encoder:  msgpack.NewEncoder(w),
	}
}

// Start announces readiness and serves requests until the input ends.
// A clean EOF returns nil.
func (s *IPCServer) Start() error {
	log.Debug("Starting IPC server.")

	if err := s.send(map[string]string{"status": "ready"}); err != nil {
		return err
	}

	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("IPC input closed after %d requests", s.requestCount)
				return nil
			}
			return fmt.Errorf("read request: %w", err)
		}
		s.requestCount++

		var req Request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			log.Errorf("Unmarshaling request: %v", err)
			if err := s.sendError("", "Invalid msgpack request", 400); err != nil {
				return err
			}
			continue
		}
		if err := s.handleRequest(req); err != nil {
			return err
		}
	}
}

// handleRequest dispatches on the command. Only write failures are returned.
func (s *IPCServer) handleRequest(req Request) error {
	start := time.Now()
	switch req.Command {
	case "search":
		return s.sendAssets(req.ID, s.searcher.Search(req.Query, req.Type), start)
	case "recommend":
		return s.sendAssets(req.ID, s.searcher.Recommend(req.Type), start)
	case "stats":
		st := s.searcher.Stats()
		return s.send(StatsResponse{
			ID:        req.ID,
			Stats:     present.Stats(st),
			TimeTaken: time.Since(start).Microseconds(),
		})
	case "health":
		return s.send(HealthResponse{
			ID:     req.ID,
			Status: "ok",
			Assets: s.searcher.Stats().Total,
		})
	default:
		log.Debugf("Request %q: %v %q", req.ID, ErrUnknownCommand, req.Command)
		return s.sendError(req.ID, fmt.Sprintf("%v: %s", ErrUnknownCommand, req.Command), 400)
	}
}

func (s *IPCServer) sendAssets(id string, list []asset.Asset, start time.Time) error {
	views := present.Assets(list, s.searcher)
	return s.send(AssetsResponse{
		ID:        id,
		Assets:    views,
		Count:     len(views),
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *IPCServer) send(v any) error {
	if err := s.encoder.Encode(v); err != nil {
		log.Errorf("Encoding response: %v", err)
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}

func (s *IPCServer) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
