package main

import (
	"context"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
)

type AppConfig struct {
	servicePort       string
	catalogConfigPath string
	policyPath        string
	notifierEndpoint  string
}

func LoadConfiguration(ctx context.Context) *AppConfig {
	return &AppConfig{
		servicePort:       env.GetVariableOrDefault(ctx, "SERVICE_PORT", "8080"),
		catalogConfigPath: env.GetVariableOrDefault(ctx, "CATALOG_CONFIG_PATH", "/opt/template-broker/config/catalog.yaml"),
		policyPath:        env.GetVariableOrDefault(ctx, "POLICY_PATH", "/opt/template-broker/config/authz.rego"),
		notifierEndpoint:  env.GetVariableOrDefault(ctx, "NOTIFIER_ENDPOINT", ""),
	}
}
