package main

import (
	"log"
	"os"

	"snowschool_backend/internals/configs"
	database "snowschool_backend/internals/databases"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	configs.LoadEnv()
	cfg := configs.Get()

	db, err := database.ConnectDB(cfg)
	errAndDie(err)
	database.TunePool(db)
	errAndDie(database.Migrate(db))

	cli := commandLine{db: db, in: os.Stdin, out: os.Stdout}
	err = cli.run(os.Args)

	if sqlDB, derr := db.DB(); derr == nil {
		_ = sqlDB.Close()
	}
	if err != nil {
		if msg := failureMessage(err); msg != "" {
			logger.Printf("\nerror: %s\n", msg)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
