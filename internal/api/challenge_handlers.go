package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/iAndrei22/DisciplineBuddy/internal/error_values"
	"github.com/iAndrei22/DisciplineBuddy/internal/service"
	"github.com/iAndrei22/DisciplineBuddy/pkg/httputil"
)

type TaskTemplateRequest struct {
	Title       string `json:"title"`
	Description string `json:"desc"`
	Points      int    `json:"points"`
}

type CreateChallengeRequest struct {
	Title        string                `json:"title"`
	Description  string                `json:"desc"`
	DurationDays int                   `json:"duration_days"`
	Category     string                `json:"category"`
	Tasks        []TaskTemplateRequest `json:"tasks"`
}

func (s *Server) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateChallengeRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create challenge error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	templates := make([]service.TaskTemplate, 0, len(req.Tasks))
	for _, t := range req.Tasks {
		templates = append(templates, service.TaskTemplate{
			Title:       t.Title,
			Description: t.Description,
			Points:      t.Points,
		})
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	challenge, err := s.challengesService.CreateChallenge(ctx, uid, &service.CreateChallengeRequest{
		Title:        req.Title,
		Description:  req.Description,
		DurationDays: req.DurationDays,
		Category:     req.Category,
		Tasks:        templates,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUnknownCategory):
			logger.Error("create challenge error: unknown category")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown challenge category", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create challenge error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create challenge: user doesn't exists", nil)
		default:
			logger.Error("create challenge error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "couldn't create challenge", err)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, challenge)
	logger.Info("challenge created")
}

func (s *Server) ListChallenges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	challenges, err := s.challengesService.ListChallenges(ctx, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Error("listing challenges error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while listing challenges", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"page":       page,
		"limit":      limit,
		"challenges": challenges,
	})
	logger.Info("challenges provided")
}

func (s *Server) DeleteChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("challenge deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("challenge deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.challengesService.DeleteChallenge(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrChallengeNotFound):
			logger.Error("challenge deletion error: unexist challenge")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "challenge doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("challenge deletion error: not a creator")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "only the creator can delete a challenge", nil)
		default:
			logger.Error("challenge deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting challenge", nil)
		}
		return
	}
	logger.Info("challenge deleted")
}

func (s *Server) EnrollChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("enroll error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("enroll error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	err = s.challengesService.Enroll(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrChallengeNotFound):
			logger.Error("enroll error: unexist challenge")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "challenge doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrDuplicateEnrollment):
			logger.Error("enroll error: already enrolled")
			httputil.WriteErrorResponse(w, http.StatusConflict, "already enrolled in this challenge", nil)
		default:
			logger.Error("enroll error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while enrolling", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"challenge_id": id.String(),
		"uid":          uid.String(),
		"status":       "in-progress",
	})
	logger.Info("enrolled in challenge")
}

func (s *Server) GetParticipants(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get participants error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	participants, err := s.challengesService.GetParticipants(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrChallengeNotFound):
			logger.Error("get participants error: unexist challenge")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "challenge doesn't exist", nil)
		default:
			logger.Error("get participants error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting participants", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, participants)
	logger.Info("participants provided")
}

func (s *Server) GetChallengeTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get challenge tasks error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	tasks, err := s.challengesService.GetTemplateTasks(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrChallengeNotFound):
			logger.Error("get challenge tasks error: unexist challenge")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "challenge doesn't exist", nil)
		default:
			logger.Error("get challenge tasks error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting challenge tasks", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, tasks)
	logger.Info("challenge tasks provided")
}

func (s *Server) GetCategories(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	httputil.WriteJSONResponse(w, http.StatusOK, s.challengesService.Categories())
	logger.Info("categories provided")
}
