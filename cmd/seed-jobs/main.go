package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

func postJob(httpClient *http.Client, baseURL string, password string, job json.RawMessage, overwrite bool) (int, []byte, error) {
	url := fmt.Sprintf("%s/api/jobs", baseURL)
	if overwrite {
		url += "?overwrite=true"
	}

	req, err := http.NewRequest("POST", url, bytes.NewReader(job))
	if err != nil {
		return -1, nil, fmt.Errorf("constructing request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Website-Password", password)

	resp, err := httpClient.Do(req)
	if err != nil {
		return -1, nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return -1, nil, fmt.Errorf("reading response: %w", err)
	}

	return resp.StatusCode, data, nil
}

func main() {
	baseURL := flag.String("url", "http://localhost:3001", "Base URL of the gridline server")
	filePath := flag.String("file", "", "Path to a JSON file containing an array of scraped jobs")
	overwrite := flag.Bool("overwrite", false, "Replace jobs that are already stored")
	flag.Parse()

	password := os.Getenv("WEBSITE_PASSWORD")
	if password == "" {
		log.Fatal("No website password provided")
	}

	if *filePath == "" {
		fmt.Println("Usage: seed-jobs -file <scraped-jobs.json> [-url <base-url>] [-overwrite]")
		os.Exit(1)
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *filePath, err)
	}

	var jobs []json.RawMessage
	if err := json.Unmarshal(data, &jobs); err != nil {
		log.Fatalf("Failed to parse %s: %v", *filePath, err)
	}

	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	stored := 0
	skipped := 0
	for i, job := range jobs {
		statusCode, body, err := postJob(httpClient, *baseURL, password, job, *overwrite)
		if err != nil {
			log.Fatalf("Failed to store job %d: %v", i, err)
		}

		switch statusCode {
		case http.StatusCreated, http.StatusOK:
			stored++
		case http.StatusConflict:
			skipped++
		default:
			log.Fatalf("Server rejected job %d: %d - %s", i, statusCode, string(body))
		}
	}

	log.Printf("Stored %d jobs, skipped %d duplicates", stored, skipped)
}
