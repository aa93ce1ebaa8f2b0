package main

import (
	"compress/gzip"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

type coupon struct {
	code   string
	amount float64
}

// main creates sample gzipped coupon tables. Each line is `code,amount`;
// when the same code appears in more than one file, the first file wins.
func main() {
	dataDir := "data/coupons"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	coupons := map[string][]coupon{
		"couponbase1.gz": {
			{"FRESH5OFF", 5},
			{"SAVEBIG10", 10},
			{"SUMMER2026", 7.5},
		},
		"couponbase2.gz": {
			{"SAVEBIG10", 12}, // shadowed by file 1
			{"WINTER2026", 8},
			{"MEGA15OFF", 15},
		},
	}

	for filename, entries := range coupons {
		filePath := filepath.Join(dataDir, filename)

		if err := createCouponFile(filePath, entries); err != nil {
			log.Fatalf("Failed to create %s: %v", filename, err)
		}

		fmt.Printf("Created %s with %d codes\n", filePath, len(entries))
	}

	fmt.Println("\nSample coupon files created successfully!")
	fmt.Println("Run the server with COUPON_FILES=data/coupons/couponbase1.gz,data/coupons/couponbase2.gz")
}

func createCouponFile(filePath string, entries []coupon) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	for _, c := range entries {
		if _, err := fmt.Fprintf(gzipWriter, "%s,%g\n", c.code, c.amount); err != nil {
			return fmt.Errorf("failed to write coupon: %w", err)
		}
	}

	return nil
}
