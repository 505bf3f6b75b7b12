package config

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretsClient is the subset of the Secrets Manager API used here
type SecretsClient interface {
	GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// LoadAWS loads the default AWS configuration for the configured region
func LoadAWS(ctx context.Context, region string) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
}

// ResolveSecrets fills JWT.Secret from Secrets Manager when JWT_SECRET_ARN is set.
// The secret may be a bare string or a JSON object with a JWT_SECRET key.
func (c *Config) ResolveSecrets(ctx context.Context, sm SecretsClient) error {
	if c.JWT.SecretARN == "" {
		return nil
	}
	out, err := sm.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{SecretId: aws.String(c.JWT.SecretARN)})
	if err != nil {
		return fmt.Errorf("get secret: %w", err)
	}
	raw := strings.TrimSpace(aws.ToString(out.SecretString))
	if raw == "" {
		return fmt.Errorf("secret %s is empty", c.JWT.SecretARN)
	}

	if strings.HasPrefix(raw, "{") {
		var payload struct {
			JWTSecret string `json:"JWT_SECRET"`
		}
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			return fmt.Errorf("parse secret: %w", err)
		}
		if payload.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET missing in secret")
		}
		raw = payload.JWTSecret
	}

	c.JWT.Secret = raw
	return nil
}
