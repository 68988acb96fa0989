package api

import (
	"net/http"
	"time"

	"finance/src/api/controllers"
	"finance/src/api/handlers"
	"finance/src/clients/quotes"
	"finance/src/config"
	"finance/src/database"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router    *chi.Mux
	Handler   *handlers.Handler
	TokenAuth *jwtauth.JWTAuth
}

func NewServer(cfg *config.Config, logger *logrus.Logger) (*Server, error) {
	db, err := database.SetupDB(cfg)
	if err != nil {
		return nil, err
	}

	tokenAuth := jwtauth.New("HS256", []byte(cfg.Auth.SessionSecret), nil)
	sessionTTL := time.Duration(cfg.Auth.SessionTTLMinutes) * time.Minute
	if sessionTTL <= 0 {
		sessionTTL = time.Hour
	}

	controller := controllers.NewController(db, quotes.NewClient(cfg), tokenAuth, sessionTTL)
	server := &Server{
		Router:    chi.NewRouter(),
		Handler:   handlers.NewHandler(controller),
		TokenAuth: tokenAuth,
	}
	server.InitRoutes(logger)
	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes(logger *logrus.Logger) {
	s.Router.Use(NoCache)
	s.Router.Use(RequestLogger(logger))

	s.Router.Get("/alive", handlers.Healthcheck)

	// Public routes
	s.Router.Group(func(r chi.Router) {
		r.Get("/register", s.Handler.RegisterForm)
		r.Post("/register", s.Handler.Register)
		r.Get("/login", s.Handler.LoginForm)
		r.Post("/login", s.Handler.Login)
	})

	// Session-gated routes
	s.Router.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(s.TokenAuth))
		r.Use(SessionAuthenticator)

		r.Get("/", s.Handler.Index)
		r.Get("/buy", s.Handler.BuyForm)
		r.Post("/buy", s.Handler.Buy)
		r.Get("/sell", s.Handler.SellForm)
		r.Post("/sell", s.Handler.Sell)
		r.Get("/quote", s.Handler.GetQuote)
		r.Post("/quote", s.Handler.PostQuote)
		r.Get("/history", s.Handler.History)
		r.Get("/logout", s.Handler.Logout)
	})
}

func NewHTTPServer(server *Server, cfg *config.Config) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Service.Port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
}
