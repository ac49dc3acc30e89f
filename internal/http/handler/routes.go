package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/utils"

	"platelookup/internal/http/chirouter"
	"platelookup/internal/http/middleware"
	"platelookup/internal/logger"
	"platelookup/internal/model"
	"platelookup/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// The chi router is mounted under /lookup so both lookup mountings share one server.
func RegisterRoutes(app *fiber.App, svc service.LookupService, log *logger.Logger) {
	app.Get("/health", HealthCheck())
	app.Get("/healthz", LivenessProbe())

	app.Get("/api/lookup/:licensePlate", LookupVehicle(svc, log))

	app.All("/lookup/*", adaptor.HTTPHandler(chirouter.NewRouter(svc, log)))
}

// HealthCheck reports the process as healthy. There are no owned dependencies to probe;
// the upstream is deliberately not called from here.
func HealthCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is the bare liveness endpoint.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// LookupVehicle godoc
// @Summary  Look up a vehicle by license plate
// @Description Forwards the plate to tjekbil.dk and relays the JSON record unchanged.
// @Tags     lookup
// @Produce  json
// @Param    licensePlate path string true "License plate"
// @Success  200 {object} object
// @Failure  400 {object} model.LookupError
// @Failure  500 {object} model.LookupError
// @Router   /api/lookup/{licensePlate} [get]
func LookupVehicle(svc service.LookupService, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		plate := utils.CopyString(c.Params("licensePlate"))

		res, err := svc.Lookup(c.UserContext(), plate)
		if err != nil {
			if errors.Is(err, service.ErrInvalidPlate) {
				log.Warn("lookup rejected",
					"request_id", middleware.GetRequestID(c),
					"license_plate", plate,
				)
				return writeLookupError(c, fiber.StatusBadRequest, model.MsgInvalidPlate)
			}
			log.Error("lookup failed",
				"request_id", middleware.GetRequestID(c),
				"license_plate", plate,
				"error", err,
			)
			return writeLookupError(c, fiber.StatusInternalServerError, model.MsgLookupFailed)
		}

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(fiber.StatusOK).Send(res.Body)
	}
}
