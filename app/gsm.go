package app

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	log "github.com/sirupsen/logrus"
)

func accessSecretVersion(client *secretmanager.Client, name string) (string, error) {
	req := &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", Config.GoogleSecretManager.ProjectID, name),
	}

	result, err := client.AccessSecretVersion(context.Background(), req)
	if err != nil {
		return "", err
	}

	return string(result.Payload.Data), nil
}

func readSecret(client *secretmanager.Client, label string, secretName string, target *string) {
	if *target != "" {
		return
	}
	if secretName == "" {
		log.Debugf("[GSM] No secret name for %s, skipping", label)
		return
	}

	log.Debugf("[GSM] Reading %s", label)
	value, err := accessSecretVersion(client, secretName)
	if err != nil {
		log.Fatalf("[GSM] Failed to access %s: %v", label, err)
	}
	*target = value
	log.Infof("[GSM] Successfully read %s", label)
}

func readKeysFromGSM() {
	if !Config.GoogleSecretManager.Enabled {
		log.Debug("[GSM] Google Secret Manager is disabled")
		return
	}

	if Config.GoogleSecretManager.ProjectID == "" {
		log.Fatalf("[GSM] ProjectID is empty")
	}

	ctx := context.Background()
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		log.Fatalf("[GSM] Failed to create secretmanager client: %v", err)
	}
	defer client.Close()

	readSecret(client, "mongo uri", Config.GoogleSecretManager.MongoSecretName, &Config.MongoDB.URI)
	readSecret(client, "wallet mnemonic", Config.GoogleSecretManager.MnemonicSecretName, &Config.Wallet.Mnemonic)
	readSecret(client, "decent api key", Config.GoogleSecretManager.DecentAPIKeySecret, &Config.Decent.APIKey)
	readSecret(client, "jwt secret", Config.GoogleSecretManager.JWTSecretName, &Config.Server.JWTSecret)
}
