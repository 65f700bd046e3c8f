package api

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"rr-scheduler/config"
	"rr-scheduler/internal/logging"
	"rr-scheduler/internal/requests"
	"rr-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	RoundRobin(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// NewApp wires the scheduler routes under /api/v1.
func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/rr", handler.RoundRobin)
		v1.Get("/health", handler.Health)
	}
	return app
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, "invalid request format")
	}

	specifier := strings.TrimSpace(request.Quantum)
	if specifier == "" {
		specifier = s.config.RoundRobinTimeQuantum
	}
	policy, err := schedulers.ParseQuantum(specifier)
	if err != nil {
		slog.Info("rejected schedule request", logging.ErrAttr(err))
		return badRequest(ctx, err.Error())
	}

	response, err := schedulers.ScheduleRoundRobin(&request, policy)
	if err != nil {
		slog.Info("rejected schedule request", logging.ErrAttr(err))
		return badRequest(ctx, err.Error())
	}

	slog.Info("scheduled processes",
		slog.Int("processes", len(request.Jobs)),
		slog.String("quantum", response.Quantum),
		slog.Float64("average_waiting_time", response.AverageWaitingTime))
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}
