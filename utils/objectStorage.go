package utils

import (
	"fmt"
	"time"

	"coursecraft/config"

	"github.com/go-resty/resty/v2"
)

// UploadToStorage pushes image bytes to the configured object-storage HTTP
// API and returns the public URL of the stored object.
func UploadToStorage(cfg *config.Config, filename string, contentType string, data []byte) (string, error) {
	client := resty.New().SetTimeout(30 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", contentType).
		SetHeader("Authorization", "Bearer "+cfg.StorageApiKey).
		SetBody(data).
		Put(cfg.StorageApiURL + "/" + filename)
	if err != nil {
		return "", err
	}

	if resp.IsError() {
		return "", fmt.Errorf("object storage returned %s: %s", resp.Status(), resp.String())
	}

	return cfg.StorageApiURL + "/" + filename, nil
}
