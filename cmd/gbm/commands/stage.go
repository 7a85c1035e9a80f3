package commands

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wonny/brownian/internal/contracts"
	"github.com/wonny/brownian/internal/staging"
	"github.com/wonny/brownian/pkg/config"
	"github.com/wonny/brownian/pkg/logger"
)

// stageRun bundles what one stage execution needs
type stageRun struct {
	number  int
	name    string
	runID   string
	started time.Time

	cfg   *config.Config
	log   *logger.Logger
	store *staging.Store
	out   *Printer
	in    *bufio.Reader
}

// sharedEnv is built once per command invocation and reused by every stage it runs
type sharedEnv struct {
	cfg *config.Config
	log *logger.Logger
	out *Printer
	in  *bufio.Reader
}

func newSharedEnv(cmd *cobra.Command) (*sharedEnv, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return &sharedEnv{
		cfg: cfg,
		log: logger.New(cfg, cmd.ErrOrStderr()),
		out: NewPrinter(cmd.OutOrStdout()),
		in:  bufio.NewReader(cmd.InOrStdin()),
	}, nil
}

// begin starts a stage: assigns a run id, prints the header and logs the start
func (env *sharedEnv) begin(number int, name string) *stageRun {
	runID := uuid.New().String()
	log := env.log.WithStage(name, runID)

	r := &stageRun{
		number:  number,
		name:    name,
		runID:   runID,
		started: time.Now(),
		cfg:     env.cfg,
		log:     log,
		store:   staging.NewStore(env.cfg.Simulation.StageDir, log),
		out:     env.out,
		in:      env.in,
	}

	r.out.StageHeader(StageMetadata{
		Number:    number,
		Name:      name,
		RunID:     runID,
		StageDir:  env.cfg.Simulation.StageDir,
		Workers:   env.cfg.Simulation.Workers,
		Timestamp: r.started.Format(time.RFC3339),
	})
	log.WithField("workers", env.cfg.Simulation.Workers).Infof("Stage %d (%s) started", number, name)

	return r
}

// end logs the outcome; err is returned unchanged
func (r *stageRun) end(count int, err error) error {
	elapsed := time.Since(r.started)
	if err != nil {
		r.log.WithError(err).WithField("elapsed_ms", elapsed.Milliseconds()).Errorf("Stage %d (%s) failed", r.number, r.name)
		return fmt.Errorf("stage %d (%s): %w", r.number, r.name, err)
	}

	r.log.WithFields(map[string]interface{}{
		"len":        count,
		"elapsed_ms": elapsed.Milliseconds(),
	}).Infof("Stage %d (%s) finished", r.number, r.name)
	r.out.Completion(r.number, elapsed)
	return nil
}

// readInt reads one integer from the stage input
func readInt(in io.Reader, what string) (int, error) {
	var v int
	if _, err := fmt.Fscan(in, &v); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", contracts.ErrInvalidInput, what, err)
	}
	return v, nil
}

// readFloat reads one decimal value from the stage input
func readFloat(in io.Reader, what string) (float64, error) {
	var v float64
	if _, err := fmt.Fscan(in, &v); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", contracts.ErrInvalidInput, what, err)
	}
	return v, nil
}
