package websocket

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"aura-backend/pkg/auth"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const maxConnectionsPerUser = 10

// Server handles WebSocket upgrade requests. It is mounted on the REST
// router rather than running its own listener.
type Server struct {
	hub       *Hub
	upgrader  websocket.Upgrader
	logger    *zap.Logger
	validator *auth.JWTValidator
}

// NewServer creates a new WebSocket server
func NewServer(hub *Hub, validator *auth.JWTValidator, logger *zap.Logger) *Server {
	return &Server{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Origin checking is delegated to the CORS layer in front
				return true
			},
		},
		logger:    logger,
		validator: validator,
	}
}

// HandleWebSocket handles WebSocket upgrade requests
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticateRequest(r)
	if err != nil {
		s.logger.Warn("WebSocket authentication failed",
			zap.Error(err),
			zap.String("remoteAddr", r.RemoteAddr),
		)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if s.hub.GetConnectionCount(userID) >= maxConnectionsPerUser {
		s.logger.Warn("Connection limit exceeded for user",
			zap.String("userID", userID),
			zap.Int("currentConnections", s.hub.GetConnectionCount(userID)),
		)
		http.Error(w, "Connection limit exceeded", http.StatusTooManyRequests)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection",
			zap.Error(err),
			zap.String("remoteAddr", r.RemoteAddr),
		)
		return
	}

	client := NewClient(userID, s.hub, conn, s.logger)
	client.Start()

	s.logger.Info("New WebSocket connection established",
		zap.String("userID", userID),
		zap.String("connectionID", client.GetID()),
		zap.String("remoteAddr", r.RemoteAddr),
	)
}

// authenticateRequest validates the JWT token from the request. Browsers
// cannot set headers on WebSocket upgrades, so the token may arrive as a
// query parameter.
func (s *Server) authenticateRequest(r *http.Request) (string, error) {
	token := r.URL.Query().Get("token")

	if token == "" {
		authHeader := r.Header.Get("Authorization")
		if authHeader != "" {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}

	if token == "" {
		cookie, err := r.Cookie("auth_token")
		if err == nil {
			token = cookie.Value
		}
	}

	if token == "" {
		return "", errors.New("no authentication token provided")
	}

	claims, err := s.validator.ValidateToken(token)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	return claims.UserID, nil
}
