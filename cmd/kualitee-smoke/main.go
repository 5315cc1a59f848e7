/*
Copyright 2026 the Kualitee API Tests Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/LUCASCNASC/kualitee-api-tests/pkg/config"
	"github.com/LUCASCNASC/kualitee-api-tests/pkg/constants"
	"github.com/LUCASCNASC/kualitee-api-tests/pkg/kualitee"
	"github.com/LUCASCNASC/kualitee-api-tests/pkg/smoke"
)

type options struct {
	envFile     string
	configFile  string
	metricsFile string
	burst       int
	debug       bool
}

func (o *options) addFlags(f *pflag.FlagSet) {
	f.StringVar(&o.envFile, "env-file", "", "Dotenv file to load, defaults to the first of .env and test/.env that exists.")
	f.StringVar(&o.configFile, "config", "", "Optional YAML configuration file.")
	f.StringVar(&o.metricsFile, "metrics-file", "", "Write request metrics in the Prometheus text format to this file.")
	f.IntVar(&o.burst, "burst", -1, "Size of the rate limit probe, 0 disables it, negative uses RATE_LIMIT_BURST.")
	f.BoolVar(&o.debug, "debug", false, "Enable debug logging.")
}

func newLogger(debug bool) (logr.Logger, func(), error) {
	zl, err := zap.NewProduction()
	if debug {
		zl, err = zap.NewDevelopment()
	}

	if err != nil {
		return logr.Discard(), nil, err
	}

	return zapr.NewLogger(zl), func() { _ = zl.Sync() }, nil
}

func run(ctx context.Context, o *options, logger logr.Logger) error {
	envFile := o.envFile
	if envFile == "" {
		envFile = config.FindEnvFile(".env", "test/.env")
	}

	cfg, err := config.Load(config.Options{
		EnvFile:    envFile,
		ConfigFile: o.configFile,
	})
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()

	metrics, err := kualitee.NewMetrics(registry)
	if err != nil {
		return err
	}

	client := kualitee.New(cfg.BaseURL, cfg.Token,
		kualitee.WithTimeout(cfg.RequestTimeout),
		kualitee.WithLogger(logger.WithName("client")),
		kualitee.WithMetrics(metrics),
		kualitee.WithAgent(constants.Application),
		kualitee.WithRequestLogging(cfg.LogRequests),
		kualitee.WithResponseLogging(cfg.LogResponses),
	)

	burst := o.burst
	if burst < 0 {
		burst = cfg.RateLimitBurst
	}

	checks := smoke.DefaultChecks(cfg)

	logger.Info("running smoke checks", "baseURL", cfg.BaseURL, "checks", len(checks), "burst", burst)

	report := smoke.New(client, checks, smoke.Options{
		Burst:  burst,
		Logger: logger.WithName("smoke"),
	}).Run(ctx)

	if o.metricsFile != "" {
		if err := prometheus.WriteToTextfile(o.metricsFile, registry); err != nil {
			return err
		}
	}

	logger.Info("smoke checks complete", "results", len(report.Results), "failed", len(report.Failed()))

	if err := ctx.Err(); err != nil {
		return err
	}

	return report.Err()
}

func main() {
	var o options

	o.addFlags(pflag.CommandLine)

	pflag.Parse()

	logger, flush, err := newLogger(o.debug)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	defer flush()

	logger.Info("smoke test starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, &o, logger); err != nil {
		logger.Error(err, "smoke test failed")
		stop()
		flush()
		os.Exit(1) //nolint:gocritic
	}
}
