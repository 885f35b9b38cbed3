package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-task-manager/internal/lifecycle"
	"github.com/MKhiriev/go-task-manager/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	controller := lifecycle.NewController(lifecycle.WithBuildInfo(buildInfo))
	if err := controller.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "task-manager-api: %v\n", err)
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
