package main

import (
	"log"

	"github.com/iAndrei22/DisciplineBuddy/internal/api"
	"github.com/iAndrei22/DisciplineBuddy/internal/repository"
	"github.com/iAndrei22/DisciplineBuddy/internal/service"
	"github.com/iAndrei22/DisciplineBuddy/pkg/badges"
	"github.com/iAndrei22/DisciplineBuddy/pkg/cleanup"
	"github.com/iAndrei22/DisciplineBuddy/pkg/config"
	jwtservice "github.com/iAndrei22/DisciplineBuddy/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	catalog, err := badges.Load(cfg.GetStringOrDefault("BADGES_PATH", "./configs/badges.json"))
	if err != nil {
		log.Fatal("loading badge catalog error: " + err.Error())
	}
	usersRepo := repository.NewUsersRepo(&dbCfg)
	tasksRepo := repository.NewTasksRepo(&dbCfg)
	challengesRepo := repository.NewChallengesRepo(&dbCfg)

	progressionService := service.NewProgressionService(usersRepo, tasksRepo, catalog)
	challengesService := service.NewChallengesService(challengesRepo, tasksRepo, usersRepo, progressionService)
	tasksService := service.NewTasksService(tasksRepo, progressionService, challengesService)
	userService := service.NewUserService(usersRepo, progressionService)

	serv := api.New(&api.ServicesList{
		UserService:        userService,
		TasksService:       tasksService,
		ChallengesService:  challengesService,
		ProgressionService: progressionService,
		JwtService:         jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err = serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
