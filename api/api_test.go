package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"go.vocdoni.io/dvote/log"

	"github.com/bangladeshiit/cms-backend/db"
	"github.com/bangladeshiit/cms-backend/test"
	"github.com/bangladeshiit/cms-backend/uploads"
)

const (
	testHost = "0.0.0.0"
	testPort = 7788

	testUserEmail = "user@email.test"
)

// testDB is the MongoDB storage for the tests. Make it global so it can be
// accessed by the tests directly.
var testDB *db.MongoStorage

// testStorage is the upload storage for the tests, rooted at a temporary
// directory. Global for the same reason.
var testStorage *uploads.Storage

// testURL helper function returns the full URL for the given path using the
// test host and port.
func testURL(path string) string {
	return fmt.Sprintf("http://%s:%d%s", testHost, testPort, path)
}

// mustMarshal helper function marshalls the input interface into a byte slice.
// It panics if the marshalling fails.
func mustMarshal(i any) []byte {
	b, err := json.Marshal(i)
	if err != nil {
		panic(err)
	}
	return b
}

// testRequest helper function executes a request against the test server with
// the given method, path and JSON body. A []byte body is sent as-is so the
// tests can submit raw invalid payloads. It returns the trimmed response body
// and the status code.
func testRequest(t *testing.T, method, path string, body any) ([]byte, int) {
	var bodyReader io.Reader
	if body != nil {
		if raw, ok := body.([]byte); ok {
			bodyReader = bytes.NewReader(raw)
		} else {
			bodyReader = bytes.NewReader(mustMarshal(body))
		}
	}
	req, err := http.NewRequest(method, testURL(path), bodyReader)
	qt.Assert(t, err, qt.IsNil)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	qt.Assert(t, err, qt.IsNil)
	defer func() { _ = resp.Body.Close() }()
	respBody, err := io.ReadAll(resp.Body)
	qt.Assert(t, err, qt.IsNil)
	return bytes.TrimSpace(respBody), resp.StatusCode
}

// pingAPI helper function pings the API endpoint and retries the request
// if it fails until the retries limit is reached. It returns an error if the
// request fails or the status code is not 200 as many times as the retries
// limit.
func pingAPI(endpoint string, retries int) error {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	var pingErr error
	for i := 0; i < retries; i++ {
		var resp *http.Response
		if resp, pingErr = http.DefaultClient.Do(req); pingErr == nil {
			if resp.StatusCode == http.StatusOK {
				return nil
			}
			pingErr = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}
		time.Sleep(time.Second)
	}
	return pingErr
}

// TestMain function starts the MongoDB container and the API server before
// running the tests. It creates a new MongoDB connection with a random
// database name and an upload storage under a temporary directory, starts the
// API server and waits for it to answer before running the tests.
func TestMain(m *testing.M) {
	log.Init("debug", "stdout", nil)
	ctx := context.Background()
	// start a MongoDB container for testing
	dbContainer, err := test.StartMongoContainer(ctx)
	if err != nil {
		panic(err)
	}
	// ensure the container is stopped when the test finishes
	defer func() { _ = dbContainer.Terminate(ctx) }()
	// get the MongoDB connection string
	mongoURI, err := dbContainer.Endpoint(ctx, "mongodb")
	if err != nil {
		panic(err)
	}
	// create a new MongoDB connection with the test database
	if testDB, err = db.New(mongoURI, test.RandomDatabaseName()); err != nil {
		panic(err)
	}
	defer testDB.Close()
	// create the upload storage in a temporary directory
	uploadDir, err := os.MkdirTemp("", "teamImages")
	if err != nil {
		panic(err)
	}
	defer func() { _ = os.RemoveAll(uploadDir) }()
	if testStorage, err = uploads.New(uploadDir); err != nil {
		panic(err)
	}
	// start the API
	New(&Config{
		Host:    testHost,
		Port:    testPort,
		DB:      testDB,
		Storage: testStorage,
	}).Start()
	// wait for the API to start
	if err := pingAPI(testURL(pingEndpoint), 5); err != nil {
		panic(err)
	}
	// run the tests
	os.Exit(m.Run())
}

func TestWelcome(t *testing.T) {
	c := qt.New(t)
	resp, code := testRequest(t, http.MethodGet, rootEndpoint, nil)
	c.Assert(code, qt.Equals, http.StatusOK)
	c.Assert(strings.TrimSpace(string(resp)), qt.Equals, "Welcome to you in Bangladeshi IT page")
}
