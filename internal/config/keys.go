package config

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// Keys holds the field-encryption key material, decoded once at process
// start and passed down by injection. It is immutable after load and
// must never be logged.
type Keys struct {
	FieldEncryptionKey []byte
}

// LoadKeys decodes FIELD_ENCRYPTION_KEY (base64, 32 bytes once decoded).
func LoadKeys() (*Keys, error) {
	raw := GetEnv("FIELD_ENCRYPTION_KEY", "")
	if raw == "" {
		return nil, errors.New("FIELD_ENCRYPTION_KEY not configured")
	}
	key, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("FIELD_ENCRYPTION_KEY is not valid base64: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("FIELD_ENCRYPTION_KEY must decode to 32 bytes, got %d", len(key))
	}
	return &Keys{FieldEncryptionKey: key}, nil
}

// SMSConfig holds the iletimerkezi gateway credentials.
type SMSConfig struct {
	APIKey string
	Secret string
	Sender string
}

func LoadSMSConfig() SMSConfig {
	return SMSConfig{
		APIKey: GetEnv("ILETIMERKEZI_API_KEY", ""),
		Secret: GetEnv("ILETIMERKEZI_SECRET", ""),
		Sender: GetEnv("ILETIMERKEZI_SENDER", ""),
	}
}

// S3Config holds the media bucket credentials.
type S3Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
}

func LoadS3Config() S3Config {
	return S3Config{
		AccessKeyID:     GetEnv("AWS_ACCESS_KEY_ID", ""),
		SecretAccessKey: GetEnv("AWS_SECRET_ACCESS_KEY", ""),
		Region:          GetEnv("AWS_S3_REGION_NAME", "eu-central-1"),
		Bucket:          GetEnv("AWS_STORAGE_BUCKET_NAME", ""),
	}
}
