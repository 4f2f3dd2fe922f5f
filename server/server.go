package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"golang.org/x/time/rate"

	"github.com/umputun/companion/pkg/domain"
)

//go:generate moq -out mocks/user_store.go -pkg mocks -skip-ensure -fmt goimports . UserStore
//go:generate moq -out mocks/boundary_store.go -pkg mocks -skip-ensure -fmt goimports . BoundaryStore
//go:generate moq -out mocks/turn_store.go -pkg mocks -skip-ensure -fmt goimports . TurnStore
//go:generate moq -out mocks/processor.go -pkg mocks -skip-ensure -fmt goimports . Processor
//go:generate moq -out mocks/evaluator.go -pkg mocks -skip-ensure -fmt goimports . Evaluator

// UserStore provides user persistence for API handlers
type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	Get(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// BoundaryStore provides boundary persistence for API handlers
type BoundaryStore interface {
	ListForUser(ctx context.Context, userID int64) ([]domain.Boundary, error)
	Create(ctx context.Context, b domain.Boundary) (int64, error)
	ExistsActive(ctx context.Context, userID int64, btype domain.BoundaryType, value string) (bool, error)
	Delete(ctx context.Context, userID, boundaryID int64) (bool, error)
}

// TurnStore provides conversation history queries for API handlers
type TurnStore interface {
	RecentMoods(ctx context.Context, userID int64, limit int) ([]domain.Mood, error)
}

// Processor turns an inbound user message into the companion's reply
type Processor interface {
	ProcessMessage(ctx context.Context, user *domain.User, raw string) (string, error)
}

// Evaluator runs the proactive gates without sending anything
type Evaluator interface {
	Generate(ctx context.Context, user *domain.User) (*domain.ProactiveResult, error)
}

// Server represents HTTP server instance
type Server struct {
	users      UserStore
	boundaries BoundaryStore
	turns      TurnStore
	processor  Processor
	evaluator  Evaluator

	listen        string
	timeout       time.Duration
	version       string
	debug         bool
	maxMessageLen int

	limiters *userLimiters

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Params holds server dependencies and configuration
type Params struct {
	Users      UserStore
	Boundaries BoundaryStore
	Turns      TurnStore
	Processor  Processor
	Evaluator  Evaluator

	Listen  string        // default :8080
	Timeout time.Duration // default 30s
	Version string
	Debug   bool

	MessageRate   rate.Limit    // per-user message rate, default one per 3s (20/min)
	MessageBurst  int           // default 5
	DedupWindow   time.Duration // identical messages within this window are dropped, default 5s
	MaxMessageLen int           // inbound message size cap in bytes, default 4000
}

// New initializes a new server instance
func New(params Params) *Server {
	if params.Listen == "" {
		params.Listen = ":8080"
	}
	if params.Timeout == 0 {
		params.Timeout = 30 * time.Second
	}
	if params.MessageRate == 0 {
		params.MessageRate = rate.Every(3 * time.Second)
	}
	if params.MessageBurst == 0 {
		params.MessageBurst = 5
	}
	if params.DedupWindow == 0 {
		params.DedupWindow = 5 * time.Second
	}
	if params.MaxMessageLen == 0 {
		params.MaxMessageLen = 4000
	}

	s := &Server{
		users:         params.Users,
		boundaries:    params.Boundaries,
		turns:         params.Turns,
		processor:     params.Processor,
		evaluator:     params.Evaluator,
		listen:        params.Listen,
		timeout:       params.Timeout,
		version:       params.Version,
		debug:         params.Debug,
		maxMessageLen: params.MaxMessageLen,
		limiters:      newUserLimiters(params.MessageRate, params.MessageBurst, params.DedupWindow),
		router:        routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	log.Printf("[INFO] starting server on %s", s.listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         s.listen,
		Handler:      s.router,
		ReadTimeout:  s.timeout,
		WriteTimeout: s.timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("companion", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("POST /users", s.createUserHandler)
		r.HandleFunc("GET /users/{id}", s.getUserHandler)
		r.HandleFunc("PUT /users/{id}", s.updateUserHandler)

		r.HandleFunc("POST /users/{id}/message", s.messageHandler)
		r.HandleFunc("GET /users/{id}/moods", s.moodsHandler)
		r.HandleFunc("GET /users/{id}/proactive", s.proactivePreviewHandler)

		r.HandleFunc("GET /users/{id}/boundaries", s.listBoundariesHandler)
		r.HandleFunc("POST /users/{id}/boundaries", s.createBoundaryHandler)
		r.HandleFunc("DELETE /users/{id}/boundaries/{bid}", s.deleteBoundaryHandler)
	})
}

// userLimiters caches a token bucket and the last accepted message per user
// for the message endpoint
type userLimiters struct {
	limit  rate.Limit
	burst  int
	window time.Duration

	mu    sync.Mutex
	users map[int64]*userLimitState
}

type userLimitState struct {
	limiter *rate.Limiter
	lastMsg string
	lastAt  time.Time
}

func newUserLimiters(limit rate.Limit, burst int, window time.Duration) *userLimiters {
	return &userLimiters{limit: limit, burst: burst, window: window, users: make(map[int64]*userLimitState)}
}

func (u *userLimiters) state(userID int64) *userLimitState {
	st, ok := u.users[userID]
	if !ok {
		st = &userLimitState{limiter: rate.NewLimiter(u.limit, u.burst)}
		u.users[userID] = st
	}
	return st
}

// allow consumes one rate token for the user
func (u *userLimiters) allow(userID int64) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state(userID).limiter.Allow()
}

// duplicate reports whether msg repeats the user's last message within the
// dedup window; a fresh message is recorded as the new last one
func (u *userLimiters) duplicate(userID int64, msg string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	st := u.state(userID)
	now := time.Now()
	if msg == st.lastMsg && now.Sub(st.lastAt) < u.window {
		return true
	}
	st.lastMsg = msg
	st.lastAt = now
	return false
}
