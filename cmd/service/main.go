package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.vocdoni.io/dvote/log"

	"github.com/bangladeshiit/cms-backend/api"
	"github.com/bangladeshiit/cms-backend/db"
	"github.com/bangladeshiit/cms-backend/uploads"
)

func main() {
	// load a local .env first, if there is one; flags and env vars win
	_ = godotenv.Load()
	// define flags
	flag.StringP("host", "h", "0.0.0.0", "listen address")
	flag.IntP("port", "p", 5000, "listen port")
	flag.String("mongo-url", "", "The URL of the MongoDB server")
	flag.String("mongo-db", "BangladeshiITDB", "The name of the MongoDB database")
	flag.String("upload-dir", "uploads/teamImages", "directory where team images are stored")
	flag.String("log-level", "info", "log level (debug, info, warn, error)")
	// parse flags
	flag.Parse()
	// initialize Viper
	viper.SetEnvPrefix("CMS")
	if err := viper.BindPFlags(flag.CommandLine); err != nil {
		panic(err)
	}
	viper.AutomaticEnv()
	// read the configuration
	host := viper.GetString("host")
	port := viper.GetInt("port")
	mongoURL := viper.GetString("mongo-url")
	mongoDB := viper.GetString("mongo-db")
	uploadDir := viper.GetString("upload-dir")
	log.Init(viper.GetString("log-level"), "stdout", nil)
	// initialize the MongoDB database
	database, err := db.New(mongoURL, mongoDB)
	if err != nil {
		log.Fatalf("could not create the MongoDB database: %v", err)
	}
	defer database.Close()
	// initialize the local upload storage
	storage, err := uploads.New(uploadDir)
	if err != nil {
		log.Fatalf("could not create the upload storage: %v", err)
	}
	// create the local API server
	api.New(&api.Config{
		Host:    host,
		Port:    port,
		DB:      database,
		Storage: storage,
	}).Start()
	// wait forever, as the server is running in a goroutine
	log.Infow("server started", "host", host, "port", port)
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
}
