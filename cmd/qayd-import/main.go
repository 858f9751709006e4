// Command qayd-import loads a CSV of detainee rows through the ingestion
// pipeline and reports per-row dispositions
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"os"
	"time"

	"qayd/internal/modkit"
	"qayd/internal/platform/config"
	"qayd/internal/platform/logger"
	"qayd/internal/platform/store"

	ingdom "qayd/internal/services/ingest/domain"
	ingmod "qayd/internal/services/ingest/module"
	recrepo "qayd/internal/services/records/repo"
	recsvc "qayd/internal/services/records/service"
)

func main() {
	var (
		path = flag.String("file", "", "CSV file with a header row")
		org  = flag.String("org", "", "source organization stamped on inserted records")
	)
	flag.Parse()

	l := logger.Named("import")
	if *path == "" {
		l.Fatal().Msg("-file is required")
	}

	rows, err := readCSV(*path)
	if err != nil {
		l.Fatal().Err(err).Str("file", *path).Msg("read csv")
	}

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	st, err := store.Open(context.Background(), store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*logger.Get()))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() { _ = st.Close(context.Background()) }()

	deps := modkit.Deps{Cfg: root, PG: st.PG}
	records := recsvc.New(deps.PG, recrepo.NewPG())
	worker, err := ingmod.New(deps, records, ingmod.Options{})
	if err != nil {
		l.Fatal().Err(err).Msg("ingest worker init")
	}
	defer worker.Close()
	runner := worker.Ports().(ingmod.Ports).Runner

	id, err := runner.Submit(context.Background(), rows, *org)
	if err != nil {
		l.Fatal().Err(err).Msg("submit batch")
	}
	l.Info().Str("batch_id", id).Int("rows", len(rows)).Msg("batch submitted")

	sum := watch(l, runner, id)
	l.Info().
		Int("total", sum.Total).
		Int("valid", sum.Valid).
		Int("invalid", sum.Invalid).
		Int("duplicate", sum.Duplicate).
		Msg("batch finished")
	for _, row := range sum.Errors {
		l.Warn().
			Int("row", row.Index).
			Str("disposition", string(row.Disposition)).
			Str("error", row.Err).
			Any("fields", row.Errors).
			Msg("row rejected")
	}
	if sum.Valid == 0 && sum.Total > 0 {
		os.Exit(1)
	}
}

// watch polls the session until it reaches a terminal status
func watch(l *logger.Logger, runner ingdom.RunnerPort, id string) ingdom.Summary {
	for {
		p, ok := runner.Progress(id)
		if !ok {
			l.Fatal().Str("batch_id", id).Msg("batch vanished")
		}
		if p.Status == ingdom.StatusFailed {
			l.Fatal().Str("batch_id", id).Str("error", p.Err).Msg("batch failed")
		}
		if p.Status == ingdom.StatusCompleted {
			sum, _ := runner.Result(id)
			return sum
		}
		l.Info().
			Int("processed", p.Processed).
			Int("total", p.Total).
			Msg("processing")
		time.Sleep(500 * time.Millisecond)
	}
}

// readCSV maps each data line onto its header, skipping blank lines.
// Header cells become row keys as-is; alias resolution happens downstream
func readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, err
	}

	var rows []map[string]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(rec) {
				row[h] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
