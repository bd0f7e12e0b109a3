package billing

import (
	"context"
	"fmt"

	"github.com/facebookgo/clock"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"backoffice.app/billing/attachment"
	"backoffice.app/billing/business/bill"
	"backoffice.app/billing/business/directory"
	"backoffice.app/billing/repository"
	"backoffice.app/billing/workflow"
)

var backofficeDB = sqldb.NewDatabase("backoffice", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

//encore:service
type Service struct {
	business  bill.Business
	directory directory.Business
	temporal  client.Client
	worker    worker.Worker
	policy    attachment.Policy
	clock     clock.Clock
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver[*pgxpool.Pool](backofficeDB)
	repo := repository.NewRepository(pgxdb)

	policy := attachment.DefaultPolicy()
	policy.Dir = cfg.Uploads.Dir()
	policy.MaxBytes = cfg.Uploads.MaxBytes()
	store := attachment.NewStore(policy)
	rlog.Info("Initializing attachment store", "dir", policy.Dir, "max_bytes", policy.MaxBytes)

	temporalClient, err := client.NewLazyClient(client.Options{
		HostPort:  cfg.Temporal.HostPort(),
		Namespace: cfg.Temporal.Namespace(),
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal client: %v", err)
	}

	taskQueue := cfg.Temporal.TaskQueue()
	workflow.SetActivityDependencies(store)
	w := worker.New(temporalClient, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.PurgeAttachments)
	w.RegisterActivity(workflow.PurgeAttachmentActivity)
	if err := w.Start(); err != nil {
		// Requests do not depend on the worker; orphaned files wait in the queue.
		rlog.Error("failed to start attachment cleanup worker", "task_queue", taskQueue, "error", err)
		w = nil
	}

	clk := clock.New()
	directoryBusiness := directory.NewDirectoryBusiness(repo.Directory)
	janitor := &attachmentJanitor{temporal: temporalClient, taskQueue: taskQueue}

	return &Service{
		business:  bill.NewBillBusiness(repo.Bills, directoryBusiness, store, janitor, clk),
		directory: directoryBusiness,
		temporal:  temporalClient,
		worker:    w,
		policy:    policy,
		clock:     clk,
	}, nil
}

// Shutdown stops the cleanup worker before the client it polls with.
func (s *Service) Shutdown(force context.Context) {
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.temporal != nil {
		s.temporal.Close()
	}
}
