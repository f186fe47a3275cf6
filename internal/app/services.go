package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/niramoy/niramoy_backend/config"
	"github.com/niramoy/niramoy_backend/internal/notify"
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

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideNotifier,
		ProvideAuthService,
		ProvideStaffService,
		ProvidePatientService,
		ProvideQueueService,
		ProvideSchedulingService,
		ProvidePrescriptionService,
		ProvideLabService,
		ProvidePharmacyService,
		ProvideCanteenService,
		ProvideFinanceService,
		ProvideDisplayService,
		ProvidePasetoManager,
	),
)

func ProvideNotifier(nc *nats.Conn) notify.Notifier {
	return notify.NewNATS(nc)
}

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, paseto, cfg)
}

func ProvideStaffService(db *repo.Client, authz authorize.IAuthorization, cfg *config.Config) staff.Service {
	return staff.New(db, authz, cfg.Hospital.DefaultRegion)
}

func ProvidePatientService(db *repo.Client, cfg *config.Config) patient.Service {
	return patient.New(db, cfg.Hospital.DefaultRegion)
}

func ProvideQueueService(db *repo.Client, notifier notify.Notifier) queue.Service {
	return queue.New(db, notifier)
}

func ProvideSchedulingService(db *repo.Client) scheduling.Service {
	return scheduling.New(db)
}

func ProvidePrescriptionService(db *repo.Client) prescription.Service {
	return prescription.New(db)
}

func ProvideLabService(db *repo.Client) lab.Service {
	return lab.New(db)
}

func ProvidePharmacyService(db *repo.Client, notifier notify.Notifier) pharmacy.Service {
	return pharmacy.New(db, notifier)
}

func ProvideCanteenService(db *repo.Client) canteen.Service {
	return canteen.New(db)
}

func ProvideFinanceService(db *repo.Client) finance.Service {
	return finance.New(db)
}

func ProvideDisplayService(db *repo.Client, rdb *redis.Client) display.Service {
	return display.New(db, rdb)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
