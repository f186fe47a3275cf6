package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/niramoy/niramoy_backend/config"
	"github.com/niramoy/niramoy_backend/internal/api/http/handler"
	"github.com/niramoy/niramoy_backend/internal/api/http/middleware"
	"github.com/niramoy/niramoy_backend/internal/repo"
	"github.com/niramoy/niramoy_backend/internal/service/auth"
	"github.com/niramoy/niramoy_backend/internal/service/canteen"
	"github.com/niramoy/niramoy_backend/internal/service/display"
	"github.com/niramoy/niramoy_backend/internal/service/finance"
	"github.com/niramoy/niramoy_backend/internal/service/lab"
	"github.com/niramoy/niramoy_backend/internal/service/patient"
	"github.com/niramoy/niramoy_backend/internal/service/pharmacy"
	"github.com/niramoy/niramoy_backend/internal/service/prescription"
	"github.com/niramoy/niramoy_backend/internal/service/queue"
	"github.com/niramoy/niramoy_backend/internal/service/scheduling"
	"github.com/niramoy/niramoy_backend/internal/service/staff"
	"github.com/niramoy/niramoy_backend/pkg/authorize"
	pasetotoken "github.com/niramoy/niramoy_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	Auth            authorize.IAuthorization
	DB              *repo.Client
	AuthSvc         auth.Service
	StaffSvc        staff.Service
	PatientSvc      patient.Service
	QueueSvc        queue.Service
	SchedulingSvc   scheduling.Service
	PrescriptionSvc prescription.Service
	LabSvc          lab.Service
	PharmacySvc     pharmacy.Service
	CanteenSvc      canteen.Service
	FinanceSvc      finance.Service
	DisplaySvc      display.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	staffH := handler.NewStaffHandler(r.p.StaffSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	queueH := handler.NewQueueHandler(r.p.QueueSvc)
	scheduleH := handler.NewScheduleHandler(r.p.SchedulingSvc)
	prescriptionH := handler.NewPrescriptionHandler(r.p.PrescriptionSvc)
	labH := handler.NewLabHandler(r.p.LabSvc)
	pharmacyH := handler.NewPharmacyHandler(r.p.PharmacySvc)
	canteenH := handler.NewCanteenHandler(r.p.CanteenSvc)
	financeH := handler.NewFinanceHandler(r.p.FinanceSvc)
	displayH := handler.NewDisplayHandler(r.p.DisplaySvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerStaffRoutes(api, staffH, authRequired, requirePerm)
	r.registerPatientRoutes(api, patientH, prescriptionH, authRequired, requirePerm)
	r.registerQueueRoutes(api, queueH, authRequired, requirePerm)
	r.registerScheduleRoutes(api, scheduleH, authRequired, requirePerm)
	r.registerPrescriptionRoutes(api, prescriptionH, authRequired, requirePerm)
	r.registerLabRoutes(api, labH, authRequired, requirePerm)
	r.registerPharmacyRoutes(api, pharmacyH, authRequired, requirePerm)
	r.registerCanteenRoutes(api, canteenH, authRequired, requirePerm)
	r.registerFinanceRoutes(api, financeH, authRequired, requirePerm)
	r.registerDisplayRoutes(api, displayH, authRequired, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
