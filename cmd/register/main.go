package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/suparena/registration"
	"github.com/suparena/registration/config"
	"github.com/suparena/registration/datastore/ddb"
	"github.com/suparena/registration/handler"
	"github.com/suparena/registration/logging"
	"github.com/suparena/registration/models"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := registration.GetVersionInfo()
		fmt.Printf("registration version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	// The store is built once per execution environment and shared by all invocations.
	store, err := ddb.NewDynamodbDataStore[models.Registration](context.Background(), cfg.ClientOptions(), cfg.TableName)
	if err != nil {
		logger.Fatal("failed to create datastore", zap.Error(err))
	}

	logger.Info("DynamoDB client initialized",
		zap.String("table", store.TableName()),
		zap.String("region", cfg.Region),
		zap.String("endpoint", cfg.Endpoint),
		zap.String("version", registration.Version),
	)

	h := handler.New(store, logger)
	lambda.Start(h.Handle)
}
