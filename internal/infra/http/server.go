package http

import (
	"net/http"
	"time"

	"eventos/internal/config"
	"eventos/internal/domain"
	"eventos/internal/infra/auth/rbac"
	"eventos/internal/infra/auth/token"
	"eventos/internal/infra/db"
	"eventos/internal/infra/ratelimit"
	"eventos/internal/usecase"

	"github.com/gin-gonic/gin"
)

type Server struct {
	cfg   config.Config
	store *db.Store
	r     *gin.Engine

	auth       *usecase.AuthService
	events     *usecase.EventService
	users      *usecase.UserService
	milestones *usecase.MilestoneService
	guests     *usecase.GuestService

	codec      domain.TokenCodec
	authorizer domain.Authorizer

	rateLimiter       domain.RateLimiter
	rateLimitRequests int
	rateLimitWindow   time.Duration

	authInitErr error
}

func NewServer(cfg config.Config, store *db.Store) *Server {
	r := gin.New()
	r.Use(gin.Recovery())

	s := &Server{cfg: cfg, store: store, r: r}
	s.initDeps()
	s.routes()
	return s
}

// ServerDeps lets tests wire fakes in place of the gorm-backed repositories.
type ServerDeps struct {
	Users       usecase.UserRepository
	Events      usecase.EventRepository
	Milestones  usecase.MilestoneRepository
	Guests      usecase.GuestRepository
	Codec       domain.TokenCodec
	Authorizer  domain.Authorizer
	RateLimiter domain.RateLimiter
}

func NewServerWithDeps(cfg config.Config, deps ServerDeps) *Server {
	r := gin.New()
	r.Use(gin.Recovery())

	s := &Server{
		cfg:         cfg,
		r:           r,
		codec:       deps.Codec,
		authorizer:  deps.Authorizer,
		rateLimiter: deps.RateLimiter,
	}
	if s.codec == nil {
		codec, err := token.NewCodec(cfg)
		if err != nil {
			s.authInitErr = err
		} else {
			s.codec = codec
		}
	}
	if s.authorizer == nil {
		s.authorizer = rbac.NewAuthorizer()
	}
	if deps.Users != nil {
		s.auth = usecase.NewAuthService(deps.Users, s.codec)
		s.users = usecase.NewUserService(deps.Users)
	}
	if deps.Events != nil && deps.Users != nil {
		s.events = usecase.NewEventService(deps.Events, deps.Users)
	}
	if deps.Milestones != nil && deps.Events != nil && deps.Users != nil {
		s.milestones = usecase.NewMilestoneService(deps.Milestones, deps.Events, deps.Users)
	}
	if deps.Guests != nil && deps.Events != nil {
		s.guests = usecase.NewGuestService(deps.Guests, deps.Events)
	}
	s.initRateLimit()
	s.routes()
	return s
}

func (s *Server) initDeps() {
	codec, err := token.NewCodec(s.cfg)
	if err != nil {
		s.authInitErr = err
		return
	}
	s.codec = codec
	s.authorizer = rbac.NewAuthorizer()

	var userRepo *db.UserRepository
	var eventRepo *db.EventRepository
	var milestoneRepo *db.MilestoneRepository
	var guestRepo *db.GuestRepository
	if s.store != nil {
		userRepo = db.NewUserRepository(s.store.DB)
		eventRepo = db.NewEventRepository(s.store.DB)
		milestoneRepo = db.NewMilestoneRepository(s.store.DB)
		guestRepo = db.NewGuestRepository(s.store.DB)
	}

	if userRepo != nil {
		s.auth = usecase.NewAuthService(userRepo, s.codec)
		s.users = usecase.NewUserService(userRepo)
	}
	if eventRepo != nil && userRepo != nil {
		s.events = usecase.NewEventService(eventRepo, userRepo)
		s.milestones = usecase.NewMilestoneService(milestoneRepo, eventRepo, userRepo)
		s.guests = usecase.NewGuestService(guestRepo, eventRepo)
	}

	s.initRateLimit()
}

func (s *Server) initRateLimit() {
	if s.rateLimiter == nil && s.cfg.RateLimitRequests > 0 {
		if s.cfg.RedisAddr != "" {
			if limiter, err := ratelimit.NewRedisLimiter(s.cfg.RedisAddr, s.cfg.RedisPassword, s.cfg.RedisDB, nil); err == nil {
				s.rateLimiter = limiter
			}
		}
		if s.rateLimiter == nil {
			s.rateLimiter = ratelimit.NewMemoryLimiter(ratelimit.MemoryLimiterConfig{})
		}
	}
	s.rateLimitRequests = s.cfg.RateLimitRequests
	if s.cfg.RateLimitWindowSeconds > 0 {
		s.rateLimitWindow = time.Duration(s.cfg.RateLimitWindowSeconds) * time.Second
	}
}

func (s *Server) routes() {
	s.r.Use(s.authenticate)

	s.r.GET("/healthz", func(c *gin.Context) {
		dbMode := "no-db"
		if s.store != nil && s.store.DB != nil {
			dbMode = "db"
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "mode": dbMode})
	})

	v1 := s.r.Group("/api/v1")
	{
		v1.POST("/auth/register", s.handleRegister)
		v1.POST("/auth/login", s.handleLogin)

		eventos := v1.Group("/eventos")
		{
			eventos.GET("/activos", s.handleActiveEvents)
			eventos.GET("/historico", s.handleEventHistory)
			eventos.GET("/proximo", s.handleNextEvent)
			eventos.GET("/activos/count", s.handleActiveEventCount)
			eventos.GET("/activos/participantes", s.handleActiveParticipantCounts)
			eventos.GET("/activos/total-participantes", s.handleTotalActiveParticipants)
			eventos.GET("/mis-eventos", s.handleMyEvents)
			eventos.GET("/:id", s.handleGetEvent)
			eventos.GET("/:id/participantes", s.handleEventParticipants)
			eventos.POST("", s.handleCreateEvent)
			eventos.PUT("/:id", s.handleUpdateEvent)
			eventos.DELETE("/:id", s.handleDeleteEvent)
			eventos.PUT("/:id/inscribirse", s.handleJoinEvent)
			eventos.DELETE("/:id/inscripcion", s.handleLeaveEvent)
			eventos.POST("/:id/invitados-externos", s.handleInviteGuest)
			eventos.GET("/:id/invitados-externos", s.handleListGuests)
		}

		usuario := v1.Group("/usuario")
		{
			usuario.GET("/perfil", s.handleGetProfile)
			usuario.PUT("/perfil", s.handleUpdateProfile)
			usuario.DELETE("/perfil", s.handleDeleteProfile)
			usuario.GET("/todos", s.handleListUsers)
			usuario.PUT("/:id/rol", s.handleChangeRole)
		}

		hitos := v1.Group("/hitos")
		{
			hitos.GET("", s.handleListMilestones)
			hitos.GET("/mis-hitos", s.handleMyMilestones)
			hitos.GET("/:id", s.handleGetMilestone)
			hitos.POST("/:eventoId/logro", s.handleGrantMilestone)
			hitos.PUT("/:id", s.handleUpdateMilestone)
			hitos.DELETE("/:id", s.handleDeleteMilestone)
		}
	}

	s.r.NoRoute(func(c *gin.Context) {
		writeErrorCode(c, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
}

func (s *Server) Run() error {
	if s.authInitErr != nil {
		return s.authInitErr
	}
	return s.r.Run(s.cfg.HTTPAddr)
}

// Handler exposes the router for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.r
}

// Readiness guards for partially wired servers. A handler whose backing
// service is absent answers 503 instead of panicking.

func (s *Server) eventsReady(c *gin.Context) bool {
	if s.events == nil {
		writeErrorCode(c, http.StatusServiceUnavailable, "NO_STORE", "event store unavailable")
		return false
	}
	return true
}

func (s *Server) usersReady(c *gin.Context) bool {
	if s.users == nil {
		writeErrorCode(c, http.StatusServiceUnavailable, "NO_STORE", "identity store unavailable")
		return false
	}
	return true
}

func (s *Server) milestonesReady(c *gin.Context) bool {
	if s.milestones == nil {
		writeErrorCode(c, http.StatusServiceUnavailable, "NO_STORE", "milestone store unavailable")
		return false
	}
	return true
}

func (s *Server) guestsReady(c *gin.Context) bool {
	if s.guests == nil {
		writeErrorCode(c, http.StatusServiceUnavailable, "NO_STORE", "guest store unavailable")
		return false
	}
	return true
}
