package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/niramoy/niramoy_backend/config"
	"github.com/niramoy/niramoy_backend/internal/notify"
	"github.com/niramoy/niramoy_backend/internal/service/display"
	"github.com/niramoy/niramoy_backend/pkg/email"
)

// nowServingTTL bounds how long a stale now-serving entry can linger on the
// waiting-room board if no further call-next events arrive.
const nowServingTTL = 4 * time.Hour

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc    fx.Lifecycle
	NC    *nats.Conn
	Redis *redis.Client
	Email *email.Client
	Cfg   *config.Config
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startDisplayWorker(p.NC, p.Redis)
			startLowStockWorker(p.NC, p.Email, p.Cfg)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// display_worker
// ---------------------------------------------------------------------------

// startDisplayWorker keeps the per-doctor now-serving cache current so the
// waiting-room board can render without touching the database.
func startDisplayWorker(nc *nats.Conn, rdb *redis.Client) {
	_, err := nc.Subscribe(notify.SubjectQueueCalled, func(msg *nats.Msg) {
		var ev notify.QueueCalledEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("display_worker: bad queue.called payload", "err", err)
			return
		}

		payload, err := json.Marshal(display.NowServing{
			SerialNumber: ev.SerialNumber,
			PatientName:  ev.PatientName,
			RoomNumber:   ev.RoomNumber,
			CalledAt:     ev.CalledAt,
		})
		if err != nil {
			slog.Warn("display_worker: marshal now-serving failed", "err", err)
			return
		}

		ctx := context.Background()
		key := display.NowServingKey(ev.DoctorID)
		if err := rdb.Set(ctx, key, payload, nowServingTTL).Err(); err != nil {
			slog.Warn("display_worker: cache write failed", "key", key, "err", err)
		}
	})
	if err != nil {
		slog.Error("display_worker: subscribe queue.called failed", "err", err)
	}

	slog.Info("display_worker: started")
}

// ---------------------------------------------------------------------------
// low_stock_worker
// ---------------------------------------------------------------------------

func startLowStockWorker(nc *nats.Conn, emailCli *email.Client, cfg *config.Config) {
	_, err := nc.Subscribe(notify.SubjectPharmacyLowStock, func(msg *nats.Msg) {
		var ev notify.LowStockEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("low_stock_worker: bad payload", "err", err)
			return
		}

		recipients := cfg.Hospital.AlertEmails
		if len(recipients) == 0 {
			slog.Debug("low_stock_worker: no alert recipients configured",
				"drug", ev.DrugName)
			return
		}

		body := fmt.Sprintf(
			"Stock for %s has dropped to %d units (reorder level %d). Drug ID: %s",
			ev.DrugName, ev.StockQuantity, ev.ReorderLevel, ev.DrugID,
		)
		err := emailCli.Send(context.Background(), email.Message{
			To:       recipients,
			Subject:  "Low stock alert: " + ev.DrugName,
			TextBody: body,
		})
		if err != nil {
			slog.Warn("low_stock_worker: alert email failed",
				"drug", ev.DrugName, "err", err)
		}
	})
	if err != nil {
		slog.Error("low_stock_worker: subscribe pharmacy.low_stock failed", "err", err)
	}

	slog.Info("low_stock_worker: started")
}
