package env

import (
	"os"
)

// PodName example: k8ssta-listingpage-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName example: k8ssta
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// WalletKey is the signer key injected by the deployment, preferred over the config file value
func WalletKey() string {
	return os.Getenv("WALLET_PRIVATE_KEY")
}
