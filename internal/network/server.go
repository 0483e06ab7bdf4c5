package network

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vskvj3/seqlist/internal/core"
	"github.com/vskvj3/seqlist/internal/utils"
)

type Server struct {
	CommandHandler *core.CommandHandler
	Port           string

	mu       sync.Mutex
	listener net.Listener
	conns    map[net.Conn]struct{}
	closed   bool
	wg       sync.WaitGroup
}

// NewServer creates a server for handler on the configured port and sets up
// the process logger from the configured log file and debug mode.
func NewServer(handler *core.CommandHandler) (*Server, error) {
	config, err := utils.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if handler == nil || handler.Database == nil {
		return nil, errors.New("database is not initialized")
	}

	logger := utils.NewLogger(config.LogFile, config.Debug)
	port := strconv.Itoa(config.Port)
	logger.Info("TCP server initialized on port " + port)
	return &Server{
		CommandHandler: handler,
		Port:           port,
		conns:          make(map[net.Conn]struct{}),
	}, nil
}

// Listen binds the server port. Port 0 picks a free port.
func (s *Server) Listen() error {
	logger := utils.GetLogger()

	listener, err := net.Listen("tcp", ":"+s.Port)
	if err != nil {
		return fmt.Errorf("error starting server: %w", err)
	}
	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	logger.Info("Server is listening on " + listener.Addr().String())
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Serve accepts client connections until Close is called.
func (s *Server) Serve() error {
	logger := utils.GetLogger()

	s.mu.Lock()
	listener := s.listener
	s.mu.Unlock()
	if listener == nil {
		return errors.New("server is not listening")
	}

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			logger.Error("Error accepting connection: " + err.Error())
			continue
		}
		logger.Info("Accepted client: " + conn.RemoteAddr().String())

		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			conn.Close()
			return nil
		}
		s.conns[conn] = struct{}{}
		s.wg.Add(1)
		s.mu.Unlock()

		go func() {
			defer s.wg.Done()
			s.HandleConnection(conn)
		}()
	}
}

// Start the TCP server and block serving client connections
func (s *Server) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

// Close stops accepting connections, closes open ones and waits for their handlers.
func (s *Server) Close() error {
	s.mu.Lock()
	s.closed = true
	var err error
	if s.listener != nil {
		err = s.listener.Close()
	}
	for conn := range s.conns {
		conn.Close()
	}
	s.mu.Unlock()

	s.wg.Wait()
	return err
}

// Handle an incoming client connection. Requests and responses are msgpack
// maps streamed back to back on the connection.
func (s *Server) HandleConnection(conn net.Conn) {
	logger := utils.GetLogger()
	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		conn.Close()
		logger.Info("Client disconnected: " + conn.RemoteAddr().String())
	}()

	decoder := msgpack.NewDecoder(conn)
	encoder := msgpack.NewEncoder(conn)

	for {
		var request map[string]interface{}
		if err := decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
				logger.Info("Client closed the connection: " + conn.RemoteAddr().String())
			} else {
				logger.Error("Failed to decode request: " + err.Error())
			}
			return
		}

		logger.Debug("Received request from client: " + conn.RemoteAddr().String())

		response, err := s.CommandHandler.HandleCommand(request)
		if err != nil {
			response = errorResponse(err.Error())
		}
		if err := encoder.Encode(response); err != nil {
			logger.Error("Failed to send response: " + err.Error())
			return
		}
	}
}

func errorResponse(message string) map[string]interface{} {
	return map[string]interface{}{"status": "ERROR", "message": message}
}
