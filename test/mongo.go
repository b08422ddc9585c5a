// Package test provides testing utilities for the CMS backend service,
// including a MongoDB test container.
package test

import (
	"context"
	"fmt"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/bangladeshiit/cms-backend/internal"
)

// MongoPort is the port exposed by the MongoDB test container.
const MongoPort = 27017

// StartMongoContainer starts a MongoDB container for testing. It returns the
// container and any error encountered during startup.
func StartMongoContainer(ctx context.Context) (testcontainers.Container, error) {
	exposedPort := fmt.Sprintf("%d/tcp", MongoPort)
	return testcontainers.GenericContainer(ctx,
		testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "mongo:7",
				ExposedPorts: []string{exposedPort},
				WaitingFor:   wait.ForListeningPort(nat.Port(exposedPort)),
			},
			Started: true,
		})
}

// RandomDatabaseName returns a random database name, so concurrent test runs
// against the same container don't step on each other.
func RandomDatabaseName() string {
	return fmt.Sprintf("testdb_%s", internal.RandomHex(8))
}
