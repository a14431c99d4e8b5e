package main

import (
	"fmt"
	"log"
	"os"
	"solrisk/cmd"
	"strconv"

	_ "github.com/lib/pq"
)

func main() {
	fmt.Println(os.Getenv("commit_hash"))
	apiHandler, secrets, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	port := 3010
	if secrets.Port != "" {
		port, err = strconv.Atoi(secrets.Port)
		if err != nil {
			log.Fatal(fmt.Errorf("invalid port %s: %w", secrets.Port, err))
		}
	}

	err = apiHandler.StartApi(port)
	if err != nil {
		log.Fatal(err)
	}
}
