package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/iAndrei22/DisciplineBuddy/internal/service"
)

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	tasksService       service.TasksServiceI
	challengesService  service.ChallengesServiceI
	progressionService service.ProgressionServiceI
	jwtService         JWTServiceI
}

type ServicesList struct {
	UserService        service.UserServiceI
	TasksService       service.TasksServiceI
	ChallengesService  service.ChallengesServiceI
	ProgressionService service.ProgressionServiceI
	JwtService         JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		tasksService:       servicesOptions.TasksService,
		challengesService:  servicesOptions.ChallengesService,
		progressionService: servicesOptions.ProgressionService,
		jwtService:         servicesOptions.JwtService,
	}
}

func (s *Server) setupRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/register", s.Register)
		r.Post("/login", s.Login)
		r.Get("/challenges/categories", s.GetCategories)
		r.Get("/leaderboard", s.GetLeaderboard)
		r.Group(func(pr chi.Router) {
			pr.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			pr.Route("/tasks", func(tr chi.Router) {
				tr.Post("/", s.CreateTask)
				tr.Get("/", s.GetTasks)
				tr.Patch("/{id}", s.EditTask)
				tr.Put("/{id}/complete", s.ToggleTask)
				tr.Delete("/{id}", s.DeleteTask)
			})
			pr.Route("/challenges", func(cr chi.Router) {
				cr.Post("/", s.CreateChallenge)
				cr.Get("/", s.ListChallenges)
				cr.Delete("/{id}", s.DeleteChallenge)
				cr.Post("/{id}/enroll", s.EnrollChallenge)
				cr.Get("/{id}/participants", s.GetParticipants)
				cr.Get("/{id}/tasks", s.GetChallengeTasks)
			})
			pr.Route("/users/me", func(ur chi.Router) {
				ur.Get("/level", s.GetMyLevel)
				ur.Post("/level", s.UpdateMyLevel)
				ur.Get("/stats", s.GetMyStats)
				ur.Get("/decay", s.GetMyDecay)
			})
		})
	})
}

func (s *Server) Run(address string) error {
	s.setupRoutes()
	return http.ListenAndServe(address, s.mx)
}
